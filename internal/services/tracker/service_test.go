package tracker

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/KirkDiggler/tipsy/internal/bac"
	clockMocks "github.com/KirkDiggler/tipsy/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/tipsy/internal/common/uuid/mocks"
	"github.com/KirkDiggler/tipsy/internal/models"
	drinkLogRepo "github.com/KirkDiggler/tipsy/internal/repositories/drink_log"
	drinkLogMocks "github.com/KirkDiggler/tipsy/internal/repositories/drink_log/mocks"
	profileRepo "github.com/KirkDiggler/tipsy/internal/repositories/profile"
	profileMocks "github.com/KirkDiggler/tipsy/internal/repositories/profile/mocks"
	"github.com/KirkDiggler/tipsy/internal/services/messaging"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TrackerServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockDrinkRepo   *drinkLogMocks.MockRepository
	mockProfileRepo *profileMocks.MockRepository
	mockClock       *clockMocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	service         *service
	ctx             context.Context

	// Test data
	testTime    time.Time
	testUserID  string
	testDrinkID string
	testProfile *models.Profile
}

func (s *TrackerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDrinkRepo = drinkLogMocks.NewMockRepository(s.mockCtrl)
	s.mockProfileRepo = profileMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 21, 0, 0, 0, time.UTC)
	s.testUserID = "test-user-id"
	s.testDrinkID = "test-drink-id"
	s.testProfile = &models.Profile{
		UserID:        s.testUserID,
		WeightKg:      80,
		Gender:        models.GenderMale,
		DrinkingSpeed: models.DrinkingSpeedAverage,
		Unit:          models.BacUnitPercent,
	}

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	msg, err := messaging.NewService(&messaging.ServiceConfig{Rand: rand.New(rand.NewSource(1))})
	s.Require().NoError(err)

	svc, err := New(&Config{
		WatchInterval: 5 * time.Millisecond,
		DrinkRepo:     s.mockDrinkRepo,
		ProfileRepo:   s.mockProfileRepo,
		Calculator:    bac.New(nil),
		Messaging:     msg,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *TrackerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTrackerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TrackerServiceTestSuite))
}

func (s *TrackerServiceTestSuite) vodka(id string, at time.Time) *models.Drink {
	return &models.Drink{
		ID:        id,
		UserID:    s.testUserID,
		Name:      "Vodka",
		VolumeMl:  40,
		ABV:       40,
		Timestamp: at,
		IsChug:    true,
		Type:      models.DrinkTypeSpirit,
	}
}

func (s *TrackerServiceTestSuite) expectProfile() {
	s.mockProfileRepo.EXPECT().
		GetProfile(gomock.Any(), &profileRepo.GetProfileInput{UserID: s.testUserID}).
		Return(s.testProfile, nil).
		AnyTimes()
}

func (s *TrackerServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilDrinkRepo)

	_, err = New(&Config{DrinkRepo: s.mockDrinkRepo})
	s.ErrorIs(err, ErrNilProfileRepo)

	_, err = New(&Config{DrinkRepo: s.mockDrinkRepo, ProfileRepo: s.mockProfileRepo})
	s.ErrorIs(err, ErrNilCalculator)

	_, err = New(&Config{
		DrinkRepo:   s.mockDrinkRepo,
		ProfileRepo: s.mockProfileRepo,
		Calculator:  bac.New(nil),
	})
	s.ErrorIs(err, ErrNilMessaging)
}

func (s *TrackerServiceTestSuite) TestSetProfileAppliesDefaults() {
	s.mockProfileRepo.EXPECT().
		SaveProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *profileRepo.SaveProfileInput) error {
			s.Equal(s.testUserID, input.Profile.UserID)
			s.Equal(models.DrinkingSpeedAverage, input.Profile.DrinkingSpeed)
			s.Equal(models.BacUnitPercent, input.Profile.Unit)
			s.Equal(s.testTime, input.Profile.UpdatedAt)
			return nil
		})

	out, err := s.service.SetProfile(s.ctx, &SetProfileInput{
		UserID:   s.testUserID,
		WeightKg: 72,
		Gender:   models.GenderFemale,
	})
	s.Require().NoError(err)
	s.Equal(72.0, out.Profile.WeightKg)
	s.True(out.Profile.IsSetup())
}

func (s *TrackerServiceTestSuite) TestSetProfileValidation() {
	cases := []struct {
		name  string
		input *SetProfileInput
		err   error
	}{
		{"missing user", &SetProfileInput{WeightKg: 70, Gender: models.GenderMale}, ErrInvalidUserID},
		{"zero weight", &SetProfileInput{UserID: s.testUserID, Gender: models.GenderMale}, ErrInvalidWeight},
		{"negative weight", &SetProfileInput{UserID: s.testUserID, WeightKg: -3, Gender: models.GenderMale}, ErrInvalidWeight},
		{"bad gender", &SetProfileInput{UserID: s.testUserID, WeightKg: 70, Gender: "other"}, ErrInvalidGender},
		{"bad speed", &SetProfileInput{UserID: s.testUserID, WeightKg: 70, Gender: models.GenderMale, DrinkingSpeed: "ludicrous"}, ErrInvalidSpeed},
		{"bad unit", &SetProfileInput{UserID: s.testUserID, WeightKg: 70, Gender: models.GenderMale, Unit: "mg"}, ErrInvalidUnit},
	}
	for _, tc := range cases {
		_, err := s.service.SetProfile(s.ctx, tc.input)
		s.ErrorIs(err, tc.err, tc.name)
	}
}

func (s *TrackerServiceTestSuite) TestGetProfileNotFound() {
	s.mockProfileRepo.EXPECT().
		GetProfile(gomock.Any(), gomock.Any()).
		Return(nil, profileRepo.ErrProfileNotFound)

	_, err := s.service.GetProfile(s.ctx, &GetProfileInput{UserID: s.testUserID})
	s.ErrorIs(err, ErrProfileNotFound)
}

func (s *TrackerServiceTestSuite) TestAddDrink() {
	var stored *models.Drink

	s.mockUUID.EXPECT().NewUUID().Return(s.testDrinkID)
	s.mockDrinkRepo.EXPECT().
		AddDrink(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *drinkLogRepo.AddDrinkInput) error {
			stored = input.Drink
			return nil
		})
	s.expectProfile()
	s.mockDrinkRepo.EXPECT().
		GetDrinks(gomock.Any(), &drinkLogRepo.GetDrinksInput{
			UserID: s.testUserID,
			Since:  s.testTime.Add(-DefaultLookback),
			Until:  s.testTime.Add(MaxFutureSkew),
		}).
		DoAndReturn(func(_ context.Context, _ *drinkLogRepo.GetDrinksInput) (*drinkLogRepo.GetDrinksOutput, error) {
			return &drinkLogRepo.GetDrinksOutput{Drinks: []*models.Drink{stored}}, nil
		})

	out, err := s.service.AddDrink(s.ctx, &AddDrinkInput{
		UserID:   s.testUserID,
		Name:     "Lager",
		VolumeMl: 500,
		ABV:      5,
		Type:     models.DrinkTypeBeer,
	})
	s.Require().NoError(err)

	s.Equal(s.testDrinkID, out.Drink.ID)
	s.Equal(s.testTime, out.Drink.Timestamp)
	s.Equal("Lager", out.Drink.Name)
	s.Equal(500.0, out.Drink.VolumeMl)
	s.Require().NotNil(out.Status)
	s.Equal(models.TierBuzzy, out.Status.Tier)
	s.Greater(out.Status.PeakBac, out.Status.CurrentBac)
	s.Contains(out.Message, "Lager")
}

func (s *TrackerServiceTestSuite) TestAddDrinkWithMixer() {
	var stored *models.Drink

	s.mockUUID.EXPECT().NewUUID().Return(s.testDrinkID)
	s.mockDrinkRepo.EXPECT().
		AddDrink(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *drinkLogRepo.AddDrinkInput) error {
			stored = input.Drink
			return nil
		})
	s.expectProfile()
	s.mockDrinkRepo.EXPECT().
		GetDrinks(gomock.Any(), gomock.Any()).
		Return(&drinkLogRepo.GetDrinksOutput{}, nil)

	_, err := s.service.AddDrink(s.ctx, &AddDrinkInput{
		UserID:   s.testUserID,
		Name:     "Vodka",
		VolumeMl: 45.4,
		ABV:      40,
		Type:     models.DrinkTypeCocktail,
		Mixer: &MixerInput{
			Name:     "Tonic Water",
			VolumeMl: 100.3,
		},
	})
	s.Require().NoError(err)
	s.Require().NotNil(stored)

	s.Equal("Vodka & Tonic Water", stored.Name)
	s.Equal(146.0, stored.VolumeMl)
	s.Equal(12.5, stored.ABV)
}

func (s *TrackerServiceTestSuite) TestAddDrinkDefaultsName() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testDrinkID)
	s.mockDrinkRepo.EXPECT().AddDrink(gomock.Any(), gomock.Any()).Return(nil)
	s.mockProfileRepo.EXPECT().
		GetProfile(gomock.Any(), gomock.Any()).
		Return(nil, profileRepo.ErrProfileNotFound)

	out, err := s.service.AddDrink(s.ctx, &AddDrinkInput{
		UserID:    s.testUserID,
		VolumeMl:  125,
		ABV:       12,
		Type:      models.DrinkTypeWine,
		Timestamp: s.testTime.Add(-time.Hour),
	})
	s.Require().NoError(err)
	s.Equal("Wine", out.Drink.Name)
	s.Equal(s.testTime.Add(-time.Hour), out.Drink.Timestamp)
	s.Equal(models.TierSetupRequired, out.Status.Tier)
}

func (s *TrackerServiceTestSuite) TestAddDrinkValidation() {
	base := func() *AddDrinkInput {
		return &AddDrinkInput{UserID: s.testUserID, VolumeMl: 330, ABV: 5, Type: models.DrinkTypeBeer}
	}

	in := base()
	in.VolumeMl = 0
	_, err := s.service.AddDrink(s.ctx, in)
	s.ErrorIs(err, ErrInvalidVolume)

	in = base()
	in.ABV = 101
	_, err = s.service.AddDrink(s.ctx, in)
	s.ErrorIs(err, ErrInvalidABV)

	in = base()
	in.ABV = -1
	_, err = s.service.AddDrink(s.ctx, in)
	s.ErrorIs(err, ErrInvalidABV)

	in = base()
	in.Type = "smoothie"
	_, err = s.service.AddDrink(s.ctx, in)
	s.ErrorIs(err, ErrInvalidDrinkType)

	in = base()
	in.Mixer = &MixerInput{Name: "Cola"}
	_, err = s.service.AddDrink(s.ctx, in)
	s.ErrorIs(err, ErrInvalidMixer)

	in = base()
	in.UserID = ""
	_, err = s.service.AddDrink(s.ctx, in)
	s.ErrorIs(err, ErrInvalidUserID)
}

func (s *TrackerServiceTestSuite) TestAddDrinkVolumeLimits() {
	base := func() *AddDrinkInput {
		return &AddDrinkInput{UserID: s.testUserID, VolumeMl: 330, ABV: 40, Type: models.DrinkTypeCocktail}
	}

	in := base()
	in.VolumeMl = MaxVolumeMl + 1
	_, err := s.service.AddDrink(s.ctx, in)
	s.ErrorIs(err, ErrInvalidVolume)

	in = base()
	in.VolumeMl = 1e9
	_, err = s.service.AddDrink(s.ctx, in)
	s.ErrorIs(err, ErrInvalidVolume)

	in = base()
	in.VolumeMl = math.Inf(1)
	_, err = s.service.AddDrink(s.ctx, in)
	s.ErrorIs(err, ErrInvalidVolume)

	in = base()
	in.Mixer = &MixerInput{Name: "Cola", VolumeMl: MaxVolumeMl + 1}
	_, err = s.service.AddDrink(s.ctx, in)
	s.ErrorIs(err, ErrInvalidMixer)

	// Each part is within bounds but the glass is not
	in = base()
	in.VolumeMl = 3000
	in.Mixer = &MixerInput{Name: "Cola", VolumeMl: 2500}
	_, err = s.service.AddDrink(s.ctx, in)
	s.ErrorIs(err, ErrInvalidVolume)
}

func (s *TrackerServiceTestSuite) TestAddDrinkRejectsFutureTimestamp() {
	in := &AddDrinkInput{
		UserID:    s.testUserID,
		VolumeMl:  330,
		ABV:       5,
		Type:      models.DrinkTypeBeer,
		Timestamp: s.testTime.Add(MaxFutureSkew + time.Second),
	}
	_, err := s.service.AddDrink(s.ctx, in)
	s.ErrorIs(err, ErrFutureTimestamp)

	in.Timestamp = s.testTime.AddDate(30, 0, 0)
	_, err = s.service.AddDrink(s.ctx, in)
	s.ErrorIs(err, ErrFutureTimestamp)
}

func (s *TrackerServiceTestSuite) TestAddDrinkAllowsSmallClockSkew() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testDrinkID)
	s.mockDrinkRepo.EXPECT().AddDrink(gomock.Any(), gomock.Any()).Return(nil)
	s.mockProfileRepo.EXPECT().
		GetProfile(gomock.Any(), gomock.Any()).
		Return(nil, profileRepo.ErrProfileNotFound)

	out, err := s.service.AddDrink(s.ctx, &AddDrinkInput{
		UserID:    s.testUserID,
		VolumeMl:  330,
		ABV:       5,
		Type:      models.DrinkTypeBeer,
		Timestamp: s.testTime.Add(MaxFutureSkew),
	})
	s.Require().NoError(err)
	s.Equal(s.testTime.Add(MaxFutureSkew), out.Drink.Timestamp)
}

func (s *TrackerServiceTestSuite) TestAddDrinkRepositoryError() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testDrinkID)
	s.mockDrinkRepo.EXPECT().AddDrink(gomock.Any(), gomock.Any()).Return(errors.New("boom"))

	_, err := s.service.AddDrink(s.ctx, &AddDrinkInput{
		UserID: s.testUserID, VolumeMl: 330, ABV: 5, Type: models.DrinkTypeBeer,
	})
	s.Error(err)
	s.Contains(err.Error(), "boom")
}

func (s *TrackerServiceTestSuite) TestRemoveDrink() {
	drink := s.vodka(s.testDrinkID, s.testTime)
	s.mockDrinkRepo.EXPECT().
		GetDrink(gomock.Any(), &drinkLogRepo.GetDrinkInput{UserID: s.testUserID, DrinkID: s.testDrinkID}).
		Return(drink, nil)
	s.mockDrinkRepo.EXPECT().
		RemoveDrink(gomock.Any(), &drinkLogRepo.RemoveDrinkInput{UserID: s.testUserID, DrinkID: s.testDrinkID}).
		Return(nil)

	out, err := s.service.RemoveDrink(s.ctx, &RemoveDrinkInput{UserID: s.testUserID, DrinkID: s.testDrinkID})
	s.Require().NoError(err)
	s.Equal(drink, out.Drink)
}

func (s *TrackerServiceTestSuite) TestRemoveDrinkNotFound() {
	s.mockDrinkRepo.EXPECT().
		GetDrink(gomock.Any(), gomock.Any()).
		Return(nil, drinkLogRepo.ErrDrinkNotFound)

	_, err := s.service.RemoveDrink(s.ctx, &RemoveDrinkInput{UserID: s.testUserID, DrinkID: "nope"})
	s.ErrorIs(err, ErrDrinkNotFound)
}

func (s *TrackerServiceTestSuite) TestRemoveLastDrink() {
	first := s.vodka("first", s.testTime.Add(-time.Hour))
	last := s.vodka("last", s.testTime)

	s.mockDrinkRepo.EXPECT().
		GetDrinks(gomock.Any(), &drinkLogRepo.GetDrinksInput{UserID: s.testUserID}).
		Return(&drinkLogRepo.GetDrinksOutput{Drinks: []*models.Drink{first, last}}, nil)
	s.mockDrinkRepo.EXPECT().
		RemoveDrink(gomock.Any(), &drinkLogRepo.RemoveDrinkInput{UserID: s.testUserID, DrinkID: "last"}).
		Return(nil)

	out, err := s.service.RemoveLastDrink(s.ctx, &RemoveLastDrinkInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Equal("last", out.Drink.ID)
}

func (s *TrackerServiceTestSuite) TestRemoveLastDrinkEmptyLog() {
	s.mockDrinkRepo.EXPECT().
		GetDrinks(gomock.Any(), gomock.Any()).
		Return(&drinkLogRepo.GetDrinksOutput{}, nil)

	_, err := s.service.RemoveLastDrink(s.ctx, &RemoveLastDrinkInput{UserID: s.testUserID})
	s.ErrorIs(err, ErrNoDrinks)
}

func (s *TrackerServiceTestSuite) TestListDrinksPassesRange() {
	since := s.testTime.Add(-6 * time.Hour)
	s.mockDrinkRepo.EXPECT().
		GetDrinks(gomock.Any(), &drinkLogRepo.GetDrinksInput{UserID: s.testUserID, Since: since}).
		Return(&drinkLogRepo.GetDrinksOutput{Drinks: []*models.Drink{s.vodka("a", s.testTime)}}, nil)

	out, err := s.service.ListDrinks(s.ctx, &ListDrinksInput{UserID: s.testUserID, Since: since})
	s.Require().NoError(err)
	s.Len(out.Drinks, 1)
}

func (s *TrackerServiceTestSuite) TestClearDrinks() {
	s.mockDrinkRepo.EXPECT().
		ClearDrinks(gomock.Any(), &drinkLogRepo.ClearDrinksInput{UserID: s.testUserID}).
		Return(nil)

	s.NoError(s.service.ClearDrinks(s.ctx, &ClearDrinksInput{UserID: s.testUserID}))
	s.ErrorIs(s.service.ClearDrinks(s.ctx, &ClearDrinksInput{}), ErrInvalidUserID)
}

func (s *TrackerServiceTestSuite) TestGetStatusWithoutProfile() {
	s.mockProfileRepo.EXPECT().
		GetProfile(gomock.Any(), gomock.Any()).
		Return(nil, profileRepo.ErrProfileNotFound)

	out, err := s.service.GetStatus(s.ctx, &GetStatusInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Equal(models.TierSetupRequired, out.Status.Tier)
	s.Equal("Setup Required", out.Status.Message)
	s.Nil(out.Profile)
	s.NotEmpty(out.Message)
}

func (s *TrackerServiceTestSuite) TestGetStatusProfileError() {
	s.mockProfileRepo.EXPECT().
		GetProfile(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := s.service.GetStatus(s.ctx, &GetStatusInput{UserID: s.testUserID})
	s.Error(err)
}

func (s *TrackerServiceTestSuite) TestGetStatusWhileDrinking() {
	s.expectProfile()
	s.mockDrinkRepo.EXPECT().
		GetDrinks(gomock.Any(), gomock.Any()).
		Return(&drinkLogRepo.GetDrinksOutput{Drinks: []*models.Drink{
			s.vodka("a", s.testTime.Add(-2*time.Hour)),
			s.vodka("b", s.testTime.Add(-2*time.Hour)),
			s.vodka("c", s.testTime.Add(-2*time.Hour)),
			s.vodka("d", s.testTime.Add(-2*time.Hour)),
			s.vodka("e", s.testTime.Add(-2*time.Hour)),
		}}, nil)

	out, err := s.service.GetStatus(s.ctx, &GetStatusInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Equal(models.TierTipsy, out.Status.Tier)
	s.Require().NotNil(out.Status.PeakTime)
	s.Require().NotNil(out.Status.SoberTime)
	s.True(out.Status.SoberTime.After(s.testTime))
	s.Equal(s.testProfile, out.Profile)
}

func (s *TrackerServiceTestSuite) TestGetTrendInThePastBoundsByClock() {
	center := s.testTime.Add(-3 * time.Hour)

	s.expectProfile()
	s.mockDrinkRepo.EXPECT().
		GetDrinks(gomock.Any(), &drinkLogRepo.GetDrinksInput{
			UserID: s.testUserID,
			Since:  center.Add(-DefaultLookback),
			Until:  s.testTime.Add(MaxFutureSkew),
		}).
		Return(&drinkLogRepo.GetDrinksOutput{Drinks: []*models.Drink{s.vodka("a", s.testTime.Add(-time.Hour))}}, nil)

	out, err := s.service.GetTrend(s.ctx, &GetTrendInput{UserID: s.testUserID, Center: center})
	s.Require().NoError(err)
	s.Len(out.Points, 169)

	// The drink two hours after the center still shows in the later half
	s.Equal(0.0, out.Points[84].Bac)
	peak := 0.0
	for _, p := range out.Points[85:] {
		peak = math.Max(peak, p.Bac)
	}
	s.Greater(peak, 0.0)
}

func (s *TrackerServiceTestSuite) TestGetTrend() {
	s.expectProfile()
	s.mockDrinkRepo.EXPECT().
		GetDrinks(gomock.Any(), gomock.Any()).
		Return(&drinkLogRepo.GetDrinksOutput{Drinks: []*models.Drink{s.vodka("a", s.testTime)}}, nil)

	out, err := s.service.GetTrend(s.ctx, &GetTrendInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Len(out.Points, 169)
	s.Equal(s.testTime.Add(-7*time.Hour), out.Points[0].Time)
	s.Equal(s.testTime.Add(7*time.Hour), out.Points[168].Time)
}

func (s *TrackerServiceTestSuite) TestGetTrendWithoutProfile() {
	s.mockProfileRepo.EXPECT().
		GetProfile(gomock.Any(), gomock.Any()).
		Return(nil, profileRepo.ErrProfileNotFound)

	out, err := s.service.GetTrend(s.ctx, &GetTrendInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Empty(out.Points)
}

func (s *TrackerServiceTestSuite) TestWatchWarnsOnTierChange() {
	heavy := []*models.Drink{
		s.vodka("a", s.testTime.Add(-2*time.Hour)),
		s.vodka("b", s.testTime.Add(-2*time.Hour)),
		s.vodka("c", s.testTime.Add(-2*time.Hour)),
		s.vodka("d", s.testTime.Add(-2*time.Hour)),
		s.vodka("e", s.testTime.Add(-2*time.Hour)),
	}

	s.expectProfile()
	gomock.InOrder(
		s.mockDrinkRepo.EXPECT().
			GetDrinks(gomock.Any(), gomock.Any()).
			Return(&drinkLogRepo.GetDrinksOutput{}, nil),
		s.mockDrinkRepo.EXPECT().
			GetDrinks(gomock.Any(), gomock.Any()).
			Return(&drinkLogRepo.GetDrinksOutput{Drinks: heavy}, nil).
			AnyTimes(),
	)

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	updates, err := s.service.Watch(ctx, &WatchInput{UserID: s.testUserID})
	s.Require().NoError(err)

	first := <-updates
	s.Require().NotNil(first)
	s.Equal(models.TierSober, first.Status.Tier)
	s.Empty(first.Warning)

	second := <-updates
	s.Require().NotNil(second)
	s.Equal(models.TierTipsy, second.Status.Tier)
	s.Equal(`Nothing to be proud of, you are "Tipsy" and might end up "Loaded".`, second.Warning)

	third := <-updates
	s.Require().NotNil(third)
	s.Empty(third.Warning)

	cancel()
	for range updates {
	}
}

func (s *TrackerServiceTestSuite) TestWatchStopsOnCancel() {
	s.mockProfileRepo.EXPECT().
		GetProfile(gomock.Any(), gomock.Any()).
		Return(nil, profileRepo.ErrProfileNotFound).
		AnyTimes()

	ctx, cancel := context.WithCancel(s.ctx)
	updates, err := s.service.Watch(ctx, &WatchInput{UserID: s.testUserID, Interval: time.Hour})
	s.Require().NoError(err)

	first := <-updates
	s.Equal(models.TierSetupRequired, first.Status.Tier)

	cancel()
	_, open := <-updates
	s.False(open)
}

func (s *TrackerServiceTestSuite) TestWatchRequiresUser() {
	_, err := s.service.Watch(s.ctx, &WatchInput{})
	s.ErrorIs(err, ErrInvalidUserID)
}
