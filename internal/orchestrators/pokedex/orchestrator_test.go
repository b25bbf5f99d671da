package pokedex_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	pokeapimock "github.com/dexkit/pokedex-api/internal/clients/pokeapi/mock"
	"github.com/dexkit/pokedex-api/internal/entities/dex"
	"github.com/dexkit/pokedex-api/internal/errors"
	"github.com/dexkit/pokedex-api/internal/orchestrators/pokedex"
)

type OrchestratorTestSuite struct {
	suite.Suite

	ctrl       *gomock.Controller
	mockClient *pokeapimock.MockClient
	service    pokedex.Service
	ctx        context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = pokeapimock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	service, err := pokedex.New(&pokedex.Config{
		PokeAPIClient: s.mockClient,
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func catalogFixture() []*dex.Pokemon {
	return []*dex.Pokemon{
		{
			ID: 1, Name: "bulbasaur", DisplayName: "フシギダネ",
			Types: []string{"grass", "poison"},
		},
		{
			ID: 4, Name: "charmander", DisplayName: "ヒトカゲ",
			Types: []string{"fire"},
		},
		{
			ID: 25, Name: "pikachu", DisplayName: "ピカチュウ",
			Types: []string{"electric"},
		},
	}
}

func (s *OrchestratorTestSuite) TestListPokemon() {
	refs := []*dex.Ref{{ID: 1, Name: "bulbasaur", DisplayName: "フシギダネ"}}
	s.mockClient.EXPECT().
		ListPokemon(s.ctx, 151).
		Return(refs, nil)

	out, err := s.service.ListPokemon(s.ctx, &pokedex.ListPokemonInput{Limit: 151})
	s.Require().NoError(err)
	s.Equal(refs, out.Refs)
}

func (s *OrchestratorTestSuite) TestGetPokemon() {
	s.mockClient.EXPECT().
		GetPokemon(s.ctx, "pikachu").
		Return(catalogFixture()[2], nil)

	out, err := s.service.GetPokemon(s.ctx, &pokedex.GetPokemonInput{NameOrID: "pikachu"})
	s.Require().NoError(err)
	s.Equal(25, out.Pokemon.ID)
}

func (s *OrchestratorTestSuite) TestGetPokemonRequiresName() {
	_, err := s.service.GetPokemon(s.ctx, &pokedex.GetPokemonInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetPokemonPropagatesNotFound() {
	s.mockClient.EXPECT().
		GetPokemon(s.ctx, "missingno").
		Return(nil, errors.NotFoundf("resource pokemon/missingno not found"))

	_, err := s.service.GetPokemon(s.ctx, &pokedex.GetPokemonInput{NameOrID: "missingno"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestSearchPokemonByQuery() {
	s.mockClient.EXPECT().
		ListPokemonData(s.ctx, 0).
		Return(catalogFixture(), nil)

	out, err := s.service.SearchPokemon(s.ctx, &pokedex.SearchPokemonInput{Query: "chu"})
	s.Require().NoError(err)

	s.Require().Len(out.Pokemon, 1)
	s.Equal("pikachu", out.Pokemon[0].Name)
}

func (s *OrchestratorTestSuite) TestSearchPokemonByLocalizedName() {
	s.mockClient.EXPECT().
		ListPokemonData(s.ctx, 0).
		Return(catalogFixture(), nil)

	out, err := s.service.SearchPokemon(s.ctx, &pokedex.SearchPokemonInput{Query: "フシギ"})
	s.Require().NoError(err)

	s.Require().Len(out.Pokemon, 1)
	s.Equal("bulbasaur", out.Pokemon[0].Name)
}

func (s *OrchestratorTestSuite) TestSearchPokemonByType() {
	s.mockClient.EXPECT().
		ListPokemonData(s.ctx, 0).
		Return(catalogFixture(), nil)

	out, err := s.service.SearchPokemon(s.ctx, &pokedex.SearchPokemonInput{Type: "fire"})
	s.Require().NoError(err)

	s.Require().Len(out.Pokemon, 1)
	s.Equal("charmander", out.Pokemon[0].Name)
}

func (s *OrchestratorTestSuite) TestSearchPokemonNoFilterReturnsAll() {
	s.mockClient.EXPECT().
		ListPokemonData(s.ctx, 0).
		Return(catalogFixture(), nil)

	out, err := s.service.SearchPokemon(s.ctx, &pokedex.SearchPokemonInput{})
	s.Require().NoError(err)
	s.Len(out.Pokemon, 3)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
