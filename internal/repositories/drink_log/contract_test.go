package drink_log

import (
	"context"
	"time"

	"github.com/KirkDiggler/tipsy/internal/models"
	"github.com/stretchr/testify/suite"
)

// repositoryContractSuite holds the behaviour every backend must share.
// Backend suites embed it and assign repo in SetupTest.
type repositoryContractSuite struct {
	suite.Suite
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *repositoryContractSuite) drink(id, userID string, offset time.Duration) *models.Drink {
	return &models.Drink{
		ID:        id,
		UserID:    userID,
		Name:      "Lager",
		VolumeMl:  500,
		ABV:       5.0,
		Timestamp: s.testNow.Add(offset),
		Type:      models.DrinkTypeBeer,
		Icon:      "🍺",
	}
}

func (s *repositoryContractSuite) addDrinks(drinks ...*models.Drink) {
	for _, d := range drinks {
		s.Require().NoError(s.repo.AddDrink(s.ctx, &AddDrinkInput{Drink: d}))
	}
}

func (s *repositoryContractSuite) TestAddAndGetDrink() {
	drink := s.drink("drink-1", "user-1", 0)
	drink.IsChug = true
	s.addDrinks(drink)

	got, err := s.repo.GetDrink(s.ctx, &GetDrinkInput{UserID: "user-1", DrinkID: "drink-1"})
	s.Require().NoError(err)
	s.Equal("drink-1", got.ID)
	s.Equal("user-1", got.UserID)
	s.Equal("Lager", got.Name)
	s.Equal(500.0, got.VolumeMl)
	s.Equal(5.0, got.ABV)
	s.True(got.IsChug)
	s.Equal(models.DrinkTypeBeer, got.Type)
	s.Equal("🍺", got.Icon)
	s.Equal(s.testNow.UnixMilli(), got.Timestamp.UnixMilli())
}

func (s *repositoryContractSuite) TestGetDrinkIsScopedToOwner() {
	s.addDrinks(s.drink("drink-1", "user-1", 0))

	_, err := s.repo.GetDrink(s.ctx, &GetDrinkInput{UserID: "user-2", DrinkID: "drink-1"})
	s.ErrorIs(err, ErrDrinkNotFound)

	_, err = s.repo.GetDrink(s.ctx, &GetDrinkInput{UserID: "user-1", DrinkID: "missing"})
	s.ErrorIs(err, ErrDrinkNotFound)
}

func (s *repositoryContractSuite) TestGetDrinksOrderedByTimestamp() {
	s.addDrinks(
		s.drink("drink-3", "user-1", 2*time.Hour),
		s.drink("drink-1", "user-1", 0),
		s.drink("drink-2", "user-1", time.Hour),
		s.drink("other", "user-2", 30*time.Minute),
	)

	output, err := s.repo.GetDrinks(s.ctx, &GetDrinksInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Require().Len(output.Drinks, 3)
	s.Equal("drink-1", output.Drinks[0].ID)
	s.Equal("drink-2", output.Drinks[1].ID)
	s.Equal("drink-3", output.Drinks[2].ID)
}

func (s *repositoryContractSuite) TestGetDrinksWindow() {
	s.addDrinks(
		s.drink("drink-1", "user-1", 0),
		s.drink("drink-2", "user-1", time.Hour),
		s.drink("drink-3", "user-1", 2*time.Hour),
	)

	output, err := s.repo.GetDrinks(s.ctx, &GetDrinksInput{
		UserID: "user-1",
		Since:  s.testNow.Add(time.Hour),
	})
	s.Require().NoError(err)
	s.Require().Len(output.Drinks, 2)
	s.Equal("drink-2", output.Drinks[0].ID)

	output, err = s.repo.GetDrinks(s.ctx, &GetDrinksInput{
		UserID: "user-1",
		Since:  s.testNow.Add(30 * time.Minute),
		Until:  s.testNow.Add(90 * time.Minute),
	})
	s.Require().NoError(err)
	s.Require().Len(output.Drinks, 1)
	s.Equal("drink-2", output.Drinks[0].ID)
}

func (s *repositoryContractSuite) TestGetDrinksEmpty() {
	output, err := s.repo.GetDrinks(s.ctx, &GetDrinksInput{UserID: "nobody"})
	s.Require().NoError(err)
	s.NotNil(output.Drinks)
	s.Empty(output.Drinks)
}

func (s *repositoryContractSuite) TestRemoveDrink() {
	s.addDrinks(
		s.drink("drink-1", "user-1", 0),
		s.drink("drink-2", "user-1", time.Hour),
	)

	s.Require().NoError(s.repo.RemoveDrink(s.ctx, &RemoveDrinkInput{UserID: "user-1", DrinkID: "drink-1"}))

	output, err := s.repo.GetDrinks(s.ctx, &GetDrinksInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Require().Len(output.Drinks, 1)
	s.Equal("drink-2", output.Drinks[0].ID)

	err = s.repo.RemoveDrink(s.ctx, &RemoveDrinkInput{UserID: "user-1", DrinkID: "drink-1"})
	s.ErrorIs(err, ErrDrinkNotFound)
}

func (s *repositoryContractSuite) TestRemoveDrinkOfAnotherUser() {
	s.addDrinks(s.drink("drink-1", "user-1", 0))

	err := s.repo.RemoveDrink(s.ctx, &RemoveDrinkInput{UserID: "user-2", DrinkID: "drink-1"})
	s.ErrorIs(err, ErrDrinkNotFound)

	_, err = s.repo.GetDrink(s.ctx, &GetDrinkInput{UserID: "user-1", DrinkID: "drink-1"})
	s.NoError(err)
}

func (s *repositoryContractSuite) TestClearDrinks() {
	s.addDrinks(
		s.drink("drink-1", "user-1", 0),
		s.drink("drink-2", "user-1", time.Hour),
		s.drink("other", "user-2", 0),
	)

	s.Require().NoError(s.repo.ClearDrinks(s.ctx, &ClearDrinksInput{UserID: "user-1"}))

	output, err := s.repo.GetDrinks(s.ctx, &GetDrinksInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Empty(output.Drinks)

	output, err = s.repo.GetDrinks(s.ctx, &GetDrinksInput{UserID: "user-2"})
	s.Require().NoError(err)
	s.Len(output.Drinks, 1)
}

func (s *repositoryContractSuite) TestInvalidInput() {
	s.Error(s.repo.AddDrink(s.ctx, nil))
	s.Error(s.repo.AddDrink(s.ctx, &AddDrinkInput{}))
	s.Error(s.repo.AddDrink(s.ctx, &AddDrinkInput{Drink: s.drink("", "user-1", 0)}))
	s.Error(s.repo.AddDrink(s.ctx, &AddDrinkInput{Drink: s.drink("drink-1", "", 0)}))

	_, err := s.repo.GetDrinks(s.ctx, &GetDrinksInput{})
	s.Error(err)
	_, err = s.repo.GetDrink(s.ctx, &GetDrinkInput{UserID: "user-1"})
	s.Error(err)
	s.Error(s.repo.RemoveDrink(s.ctx, nil))
	s.Error(s.repo.ClearDrinks(s.ctx, &ClearDrinksInput{}))
}
