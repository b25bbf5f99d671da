package comparisonhistory

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/dexkit/pokedex-api/internal/errors"
	"github.com/dexkit/pokedex-api/internal/pkg/clock"
	"github.com/dexkit/pokedex-api/internal/pkg/idgen"
	redisclient "github.com/dexkit/pokedex-api/internal/redis"
)

const (
	historyKey = "pokemon-comparison-history"
	maxHistory = 10

	// Error messages
	errName1Empty = "first pokemon name cannot be empty"
	errName2Empty = "second pokemon name cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	IDGen  idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.IDGen == nil {
		return errors.InvalidArgument("id generator is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	idGen  idgen.Generator
}

// NewRedisRepository creates a new Redis repository for comparison history
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		idGen:  cfg.IDGen,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Name1 == "" {
		return nil, errors.InvalidArgument(errName1Empty)
	}
	if input.Name2 == "" {
		return nil, errors.InvalidArgument(errName2Empty)
	}

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	// Drop any earlier record of the same pair, in either order.
	kept := records[:0]
	for _, rec := range records {
		if samePair(rec, input.Name1, input.Name2) {
			continue
		}
		kept = append(kept, rec)
	}

	record := &Record{
		ID:           r.idGen.Generate(),
		Name1:        input.Name1,
		DisplayName1: input.DisplayName1,
		Name2:        input.Name2,
		DisplayName2: input.DisplayName2,
		Timestamp:    r.clock.Now().UnixMilli(),
	}

	records = append([]*Record{record}, kept...)
	if len(records) > maxHistory {
		records = records[:maxHistory]
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal history")
	}

	if err := r.client.Set(ctx, historyKey, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store history in Redis")
	}

	return &SaveOutput{Record: record}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	return &ListOutput{Records: records}, nil
}

// load reads the full history blob. A missing key is an empty history,
// and a corrupt blob is treated the same so one bad write cannot wedge
// the feature.
func (r *redisRepository) load(ctx context.Context) ([]*Record, error) {
	result, err := r.client.Get(ctx, historyKey).Result()
	if err != nil {
		if err == redis.Nil {
			return []*Record{}, nil
		}
		return nil, errors.Wrapf(err, "failed to get history")
	}

	var records []*Record
	if err := json.Unmarshal([]byte(result), &records); err != nil {
		slog.Warn("discarding corrupt comparison history",
			"key", historyKey,
			"error", err.Error())
		return []*Record{}, nil
	}

	return records, nil
}

func samePair(rec *Record, name1, name2 string) bool {
	return (rec.Name1 == name1 && rec.Name2 == name2) ||
		(rec.Name1 == name2 && rec.Name2 == name1)
}
