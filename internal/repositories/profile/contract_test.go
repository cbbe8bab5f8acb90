package profile

import (
	"context"
	"time"

	"github.com/KirkDiggler/tipsy/internal/models"
	"github.com/stretchr/testify/suite"
)

// repositoryContractSuite holds the behaviour every backend must share
type repositoryContractSuite struct {
	suite.Suite
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *repositoryContractSuite) TestSaveAndGetProfile() {
	err := s.repo.SaveProfile(s.ctx, &SaveProfileInput{
		Profile: &models.Profile{
			UserID:        "user-1",
			WeightKg:      82.5,
			Gender:        models.GenderMale,
			DrinkingSpeed: models.DrinkingSpeedFast,
			Unit:          models.BacUnitPermille,
			UpdatedAt:     s.testNow,
		},
	})
	s.Require().NoError(err)

	got, err := s.repo.GetProfile(s.ctx, &GetProfileInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal("user-1", got.UserID)
	s.Equal(82.5, got.WeightKg)
	s.Equal(models.GenderMale, got.Gender)
	s.Equal(models.DrinkingSpeedFast, got.DrinkingSpeed)
	s.Equal(models.BacUnitPermille, got.Unit)
	s.Equal(s.testNow.UnixMilli(), got.UpdatedAt.UnixMilli())
	s.True(got.IsSetup())
}

func (s *repositoryContractSuite) TestSaveReplacesProfile() {
	profile := &models.Profile{
		UserID:        "user-1",
		WeightKg:      60,
		Gender:        models.GenderFemale,
		DrinkingSpeed: models.DrinkingSpeedSlow,
		UpdatedAt:     s.testNow,
	}
	s.Require().NoError(s.repo.SaveProfile(s.ctx, &SaveProfileInput{Profile: profile}))

	updated := *profile
	updated.WeightKg = 62
	updated.UpdatedAt = s.testNow.Add(time.Hour)
	s.Require().NoError(s.repo.SaveProfile(s.ctx, &SaveProfileInput{Profile: &updated}))

	got, err := s.repo.GetProfile(s.ctx, &GetProfileInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal(62.0, got.WeightKg)
	s.Equal(models.DrinkingSpeedSlow, got.DrinkingSpeed)
}

func (s *repositoryContractSuite) TestGetMissingProfile() {
	_, err := s.repo.GetProfile(s.ctx, &GetProfileInput{UserID: "nobody"})
	s.ErrorIs(err, ErrProfileNotFound)
}

func (s *repositoryContractSuite) TestInvalidInput() {
	s.Error(s.repo.SaveProfile(s.ctx, nil))
	s.Error(s.repo.SaveProfile(s.ctx, &SaveProfileInput{}))
	s.Error(s.repo.SaveProfile(s.ctx, &SaveProfileInput{Profile: &models.Profile{WeightKg: 70}}))

	_, err := s.repo.GetProfile(s.ctx, &GetProfileInput{})
	s.Error(err)
}
