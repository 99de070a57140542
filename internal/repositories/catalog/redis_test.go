package catalog

import (
	"context"
	"testing"

	"careerparty/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndListJobCards() {
	cards := []*models.Card{
		{ID: 2, Type: models.CardTypeJob, NameEN: "Designer", NameJA: "デザイナー", TargetPoints: 6},
		{ID: 1, Type: models.CardTypeJob, NameEN: "Engineer", NameJA: "エンジニア", TargetPoints: 5},
	}

	for _, card := range cards {
		s.Require().NoError(s.repo.SaveCard(s.ctx, &SaveCardInput{Card: card}))
	}

	out, err := s.repo.ListJobCards(s.ctx, &ListJobCardsInput{})
	s.Require().NoError(err)

	s.Require().Len(out.Cards, 2)
	s.Equal(1, out.Cards[0].ID, "cards come back sorted by ID")
	s.Equal("Engineer", out.Cards[0].NameEN)
	s.Equal(5, out.Cards[0].TargetPoints)
	s.Equal("デザイナー", out.Cards[1].NameJA)
}

func (s *RedisRepositoryTestSuite) TestSaveCardOverwrites() {
	card := &models.Card{ID: 1, Type: models.CardTypeJob, NameEN: "Engineer", TargetPoints: 5}
	s.Require().NoError(s.repo.SaveCard(s.ctx, &SaveCardInput{Card: card}))

	card.TargetPoints = 7
	s.Require().NoError(s.repo.SaveCard(s.ctx, &SaveCardInput{Card: card}))

	out, err := s.repo.ListJobCards(s.ctx, &ListJobCardsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Cards, 1)
	s.Equal(7, out.Cards[0].TargetPoints)
}

func (s *RedisRepositoryTestSuite) TestListSkillCardsKeepsMatches() {
	skill := &models.Card{
		ID:          3,
		Type:        models.CardTypeSkill,
		NameEN:      "Debugging",
		MatchesJobs: []int{1, 4},
	}
	s.Require().NoError(s.repo.SaveCard(s.ctx, &SaveCardInput{Card: skill}))

	out, err := s.repo.ListSkillCards(s.ctx, &ListSkillCardsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Cards, 1)
	s.Equal([]int{1, 4}, out.Cards[0].MatchesJobs)
}

func (s *RedisRepositoryTestSuite) TestListMissionsSplitsSpecials() {
	regular := &models.Card{ID: 101, Type: models.CardTypeMission, NameEN: "System Down", CategoryID: 1}
	special := &models.Card{ID: 105, Type: models.CardTypeMission, NameEN: "Resignation", IsSpecial: true}

	s.Require().NoError(s.repo.SaveCard(s.ctx, &SaveCardInput{Card: regular}))
	s.Require().NoError(s.repo.SaveCard(s.ctx, &SaveCardInput{Card: special}))

	regularOut, err := s.repo.ListMissions(s.ctx, &ListMissionsInput{IsSpecial: false})
	s.Require().NoError(err)
	s.Require().Len(regularOut.Cards, 1)
	s.Equal(101, regularOut.Cards[0].ID)

	specialOut, err := s.repo.ListMissions(s.ctx, &ListMissionsInput{IsSpecial: true})
	s.Require().NoError(err)
	s.Require().Len(specialOut.Cards, 1)
	s.Equal(105, specialOut.Cards[0].ID)
	s.True(specialOut.Cards[0].IsSpecial)
}

func (s *RedisRepositoryTestSuite) TestListEmptyCatalog() {
	out, err := s.repo.ListJobCards(s.ctx, &ListJobCardsInput{})
	s.Require().NoError(err)
	s.Empty(out.Cards)
}

func (s *RedisRepositoryTestSuite) TestSaveCardNilInput() {
	s.Error(s.repo.SaveCard(s.ctx, nil))
	s.Error(s.repo.SaveCard(s.ctx, &SaveCardInput{}))
}

func (s *RedisRepositoryTestSuite) TestCategoriesSortedByOrder() {
	categories := []*models.MissionCategory{
		{ID: 2, NameEN: "Decision Making", SortOrder: 2},
		{ID: 1, NameEN: "Crisis Management", SortOrder: 1},
	}

	for _, category := range categories {
		s.Require().NoError(s.repo.SaveCategory(s.ctx, &SaveCategoryInput{Category: category}))
	}

	out, err := s.repo.ListCategories(s.ctx, &ListCategoriesInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Categories, 2)
	s.Equal("Crisis Management", out.Categories[0].NameEN)
	s.Equal("Decision Making", out.Categories[1].NameEN)
}

func (s *RedisRepositoryTestSuite) TestSeedPopulatesEmptyCatalog() {
	s.Require().NoError(Seed(s.ctx, s.repo))

	jobs, err := s.repo.ListJobCards(s.ctx, &ListJobCardsInput{})
	s.Require().NoError(err)
	s.NotEmpty(jobs.Cards)

	skills, err := s.repo.ListSkillCards(s.ctx, &ListSkillCardsInput{})
	s.Require().NoError(err)
	s.NotEmpty(skills.Cards)

	specials, err := s.repo.ListMissions(s.ctx, &ListMissionsInput{IsSpecial: true})
	s.Require().NoError(err)
	s.NotEmpty(specials.Cards)

	// Seeding again must not duplicate anything
	jobCount := len(jobs.Cards)
	s.Require().NoError(Seed(s.ctx, s.repo))

	jobs, err = s.repo.ListJobCards(s.ctx, &ListJobCardsInput{})
	s.Require().NoError(err)
	s.Len(jobs.Cards, jobCount)
}
