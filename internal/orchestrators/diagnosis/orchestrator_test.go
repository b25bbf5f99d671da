package diagnosis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	pokeapimock "github.com/dexkit/pokedex-api/internal/clients/pokeapi/mock"
	"github.com/dexkit/pokedex-api/internal/entities/dex"
	"github.com/dexkit/pokedex-api/internal/errors"
	"github.com/dexkit/pokedex-api/internal/orchestrators/diagnosis"
)

type OrchestratorTestSuite struct {
	suite.Suite

	ctrl       *gomock.Controller
	mockClient *pokeapimock.MockClient
	service    diagnosis.Service
	ctx        context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = pokeapimock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	service, err := diagnosis.New(&diagnosis.Config{
		PokeAPIClient: s.mockClient,
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func stats(hp, atk, def, spAtk, spDef, spd int) []dex.Stat {
	return []dex.Stat{
		{Name: dex.StatHP, Value: hp},
		{Name: dex.StatAttack, Value: atk},
		{Name: dex.StatDefense, Value: def},
		{Name: dex.StatSpecialAttack, Value: spAtk},
		{Name: dex.StatSpecialDefense, Value: spDef},
		{Name: dex.StatSpeed, Value: spd},
	}
}

func candidates() []*dex.Pokemon {
	return []*dex.Pokemon{
		{ID: 4, Name: "charmander", Types: []string{"fire"}, Stats: stats(39, 52, 43, 60, 50, 65)},
		{ID: 7, Name: "squirtle", Types: []string{"water"}, Stats: stats(44, 48, 65, 50, 64, 43)},
		{ID: 25, Name: "pikachu", Types: []string{"electric"}, Stats: stats(35, 55, 40, 50, 50, 90)},
	}
}

func (s *OrchestratorTestSuite) TestListQuestions() {
	out, err := s.service.ListQuestions(s.ctx, &diagnosis.ListQuestionsInput{Mode: diagnosis.ModeSimple})
	s.Require().NoError(err)
	s.Len(out.Questions, 5)

	out, err = s.service.ListQuestions(s.ctx, &diagnosis.ListQuestionsInput{Mode: diagnosis.ModeDetailed})
	s.Require().NoError(err)
	s.Len(out.Questions, 10)

	// The simple set is a strict prefix of the detailed set.
	s.Equal(out.Questions[0].ID, diagnosis.QuestionFavoriteType)
}

func (s *OrchestratorTestSuite) TestListQuestionsUnknownMode() {
	_, err := s.service.ListQuestions(s.ctx, &diagnosis.ListQuestionsInput{Mode: "psychoanalysis"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestDiagnosePicksHighestScore() {
	s.mockClient.EXPECT().
		ListPokemonData(s.ctx, dex.CatalogSize).
		Return(candidates(), nil)

	out, err := s.service.Diagnose(s.ctx, &diagnosis.DiagnoseInput{
		Mode:    diagnosis.ModeSimple,
		Answers: diagnosis.Answers{diagnosis.QuestionFavoriteType: "water"},
	})
	s.Require().NoError(err)

	s.Equal("squirtle", out.Pokemon.Name)
	s.InDelta(40, out.Score, 0.0001)
	s.NotEmpty(out.Comment)
}

func (s *OrchestratorTestSuite) TestDiagnoseTieResolvesToCatalogOrder() {
	s.mockClient.EXPECT().
		ListPokemonData(s.ctx, dex.CatalogSize).
		Return(candidates(), nil)

	// No answers: every candidate scores zero, so the first catalog
	// entry wins.
	out, err := s.service.Diagnose(s.ctx, &diagnosis.DiagnoseInput{
		Mode:    diagnosis.ModeSimple,
		Answers: diagnosis.Answers{},
	})
	s.Require().NoError(err)
	s.Equal("charmander", out.Pokemon.Name)
}

func (s *OrchestratorTestSuite) TestDiagnoseIsDeterministic() {
	input := &diagnosis.DiagnoseInput{
		Mode: diagnosis.ModeDetailed,
		Answers: diagnosis.Answers{
			diagnosis.QuestionPersonality: "speed",
			diagnosis.QuestionPurpose:     "collection",
		},
	}

	s.mockClient.EXPECT().
		ListPokemonData(s.ctx, dex.CatalogSize).
		Return(candidates(), nil).
		Times(2)

	first, err := s.service.Diagnose(s.ctx, input)
	s.Require().NoError(err)
	second, err := s.service.Diagnose(s.ctx, input)
	s.Require().NoError(err)

	s.Equal(first.Pokemon.Name, second.Pokemon.Name)
	s.Equal(first.Score, second.Score)
	s.Equal(first.Comment, second.Comment)
	s.Equal("pikachu", first.Pokemon.Name)
}

func (s *OrchestratorTestSuite) TestDiagnoseUnknownMode() {
	_, err := s.service.Diagnose(s.ctx, &diagnosis.DiagnoseInput{Mode: "vibes"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestDiagnoseCatalogFailurePropagates() {
	s.mockClient.EXPECT().
		ListPokemonData(s.ctx, dex.CatalogSize).
		Return(nil, errors.Unavailablef("upstream down"))

	_, err := s.service.Diagnose(s.ctx, &diagnosis.DiagnoseInput{Mode: diagnosis.ModeSimple})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
