package comparisonhistory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dexkit/pokedex-api/internal/pkg/clock"
	"github.com/dexkit/pokedex-api/internal/pkg/idgen"
	"github.com/dexkit/pokedex-api/internal/redis"
	comparisonhistory "github.com/dexkit/pokedex-api/internal/repositories/comparison_history"
	"github.com/dexkit/pokedex-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite

	ctx     context.Context
	client  redis.Client
	cleanup func()
	clock   *clock.Fixed
	repo    comparisonhistory.Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())
	s.clock = clock.NewFixed(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	repo, err := comparisonhistory.NewRedisRepository(&comparisonhistory.Config{
		Client: s.client,
		Clock:  s.clock,
		IDGen:  idgen.NewSequential("cmp"),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) save(name1, name2 string) {
	_, err := s.repo.Save(s.ctx, comparisonhistory.SaveInput{
		Name1:        name1,
		DisplayName1: name1,
		Name2:        name2,
		DisplayName2: name2,
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndList() {
	s.save("pikachu", "raichu")

	out, err := s.repo.List(s.ctx, comparisonhistory.ListInput{})
	s.Require().NoError(err)

	s.Require().Len(out.Records, 1)
	s.Equal("pikachu", out.Records[0].Name1)
	s.Equal("raichu", out.Records[0].Name2)
	s.Equal(s.clock.Now().UnixMilli(), out.Records[0].Timestamp)
	s.NotEmpty(out.Records[0].ID)
}

func (s *RedisRepositoryTestSuite) TestSaveNewestFirst() {
	s.save("pikachu", "raichu")
	s.clock.Advance(time.Minute)
	s.save("bulbasaur", "charmander")

	out, err := s.repo.List(s.ctx, comparisonhistory.ListInput{})
	s.Require().NoError(err)

	s.Require().Len(out.Records, 2)
	s.Equal("bulbasaur", out.Records[0].Name1)
	s.Equal("pikachu", out.Records[1].Name1)
}

func (s *RedisRepositoryTestSuite) TestSaveDeduplicatesReversedPair() {
	s.save("pikachu", "raichu")
	s.clock.Advance(time.Minute)
	s.save("bulbasaur", "charmander")
	s.clock.Advance(time.Minute)
	s.save("raichu", "pikachu")

	out, err := s.repo.List(s.ctx, comparisonhistory.ListInput{})
	s.Require().NoError(err)

	s.Require().Len(out.Records, 2)
	s.Equal("raichu", out.Records[0].Name1)
	s.Equal("pikachu", out.Records[0].Name2)
	s.Equal("bulbasaur", out.Records[1].Name1)
}

func (s *RedisRepositoryTestSuite) TestSaveCapsAtTen() {
	for i := 0; i < 11; i++ {
		s.save(fmt.Sprintf("pokemon-%d", i), fmt.Sprintf("pokemon-%d-b", i))
		s.clock.Advance(time.Minute)
	}

	out, err := s.repo.List(s.ctx, comparisonhistory.ListInput{})
	s.Require().NoError(err)

	s.Require().Len(out.Records, 10)
	s.Equal("pokemon-10", out.Records[0].Name1)
	s.Equal("pokemon-1", out.Records[9].Name1)
}

func (s *RedisRepositoryTestSuite) TestSaveValidatesNames() {
	_, err := s.repo.Save(s.ctx, comparisonhistory.SaveInput{Name2: "raichu"})
	s.Require().Error(err)

	_, err = s.repo.Save(s.ctx, comparisonhistory.SaveInput{Name1: "pikachu"})
	s.Require().Error(err)
}

func (s *RedisRepositoryTestSuite) TestListEmptyHistory() {
	out, err := s.repo.List(s.ctx, comparisonhistory.ListInput{})
	s.Require().NoError(err)
	s.Empty(out.Records)
}

func (s *RedisRepositoryTestSuite) TestCorruptHistoryResets() {
	err := s.client.Set(s.ctx, "pokemon-comparison-history", "not json", 0).Err()
	s.Require().NoError(err)

	out, err := s.repo.List(s.ctx, comparisonhistory.ListInput{})
	s.Require().NoError(err)
	s.Empty(out.Records)

	s.save("pikachu", "raichu")

	out, err = s.repo.List(s.ctx, comparisonhistory.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 1)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
