package personality_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	pokeapimock "github.com/dexkit/pokedex-api/internal/clients/pokeapi/mock"
	"github.com/dexkit/pokedex-api/internal/entities/dex"
	"github.com/dexkit/pokedex-api/internal/errors"
	"github.com/dexkit/pokedex-api/internal/orchestrators/personality"
)

type OrchestratorTestSuite struct {
	suite.Suite

	ctrl       *gomock.Controller
	mockClient *pokeapimock.MockClient
	service    personality.Service
	ctx        context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = pokeapimock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	service, err := personality.New(&personality.Config{
		PokeAPIClient: s.mockClient,
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestListQuestions() {
	out, err := s.service.ListQuestions(s.ctx, &personality.ListQuestionsInput{})
	s.Require().NoError(err)

	s.Require().Len(out.Questions, 10)
	s.Equal(personality.QuestionEnergy, out.Questions[0].ID)
	s.Equal(personality.QuestionEnvironment, out.Questions[9].ID)
}

func (s *OrchestratorTestSuite) TestDiagnoseMatchesComputedID() {
	// No answers hashes to type ID 130.
	catalog := []*dex.Pokemon{
		{ID: 1, Name: "bulbasaur", DisplayName: "フシギダネ", Types: []string{"grass"}},
		{ID: 130, Name: "gyarados", DisplayName: "ギャラドス", Height: 6.5, Types: []string{"water", "flying"}},
	}
	s.mockClient.EXPECT().
		ListPokemonData(s.ctx, dex.CatalogSize).
		Return(catalog, nil)

	out, err := s.service.Diagnose(s.ctx, &personality.DiagnoseInput{Answers: personality.Answers{}})
	s.Require().NoError(err)

	s.Equal(130, out.TypeID)
	s.Equal("gyarados", out.Pokemon.Name)
	s.Equal("ギャラドス型", out.TypeName)
	s.NotEmpty(out.Comment)
}

func (s *OrchestratorTestSuite) TestDiagnoseFallsBackToFirstCandidate() {
	catalog := []*dex.Pokemon{
		{ID: 1, Name: "bulbasaur", DisplayName: "フシギダネ", Types: []string{"grass"}},
		{ID: 2, Name: "ivysaur", DisplayName: "フシギソウ", Types: []string{"grass"}},
	}
	s.mockClient.EXPECT().
		ListPokemonData(s.ctx, dex.CatalogSize).
		Return(catalog, nil)

	out, err := s.service.Diagnose(s.ctx, &personality.DiagnoseInput{Answers: personality.Answers{}})
	s.Require().NoError(err)

	s.Equal(130, out.TypeID)
	s.Equal("bulbasaur", out.Pokemon.Name)
	s.Equal("フシギダネ型", out.TypeName)
}

func (s *OrchestratorTestSuite) TestDiagnoseCatalogFailurePropagates() {
	s.mockClient.EXPECT().
		ListPokemonData(s.ctx, dex.CatalogSize).
		Return(nil, errors.Unavailablef("upstream down"))

	_, err := s.service.Diagnose(s.ctx, &personality.DiagnoseInput{})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
