// Package comparisonhistory defines the interface for comparison history persistence
package comparisonhistory

//go:generate mockgen -destination=mock/mock_repository.go -package=comparisonhistorymock github.com/dexkit/pokedex-api/internal/repositories/comparison_history Repository

import (
	"context"
)

// Record is one remembered comparison pair. Timestamp is unix milliseconds.
type Record struct {
	ID           string `json:"id"`
	Name1        string `json:"name1"`
	DisplayName1 string `json:"displayName1"`
	Name2        string `json:"name2"`
	DisplayName2 string `json:"displayName2"`
	Timestamp    int64  `json:"timestamp"`
}

// Repository defines the interface for comparison history persistence.
// History is a single bounded list: newest first, pairs deduplicated
// regardless of order, capped at a fixed size.
type Repository interface {
	// Save records a comparison pair at the head of the history.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// List returns the history, newest first.
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// SaveInput defines the input for recording a comparison
type SaveInput struct {
	Name1        string
	DisplayName1 string
	Name2        string
	DisplayName2 string
}

// SaveOutput defines the output for recording a comparison
type SaveOutput struct {
	Record *Record
}

// ListInput defines the input for listing the history
type ListInput struct{}

// ListOutput defines the output for listing the history
type ListOutput struct {
	Records []*Record
}
