package importer

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/tipsy/internal/models"
	"github.com/stretchr/testify/suite"
)

type ImporterTestSuite struct {
	suite.Suite
	testTime   time.Time
	testUserID string
}

func (s *ImporterTestSuite) SetupTest() {
	s.testTime = time.Date(2025, 4, 19, 23, 0, 0, 0, time.UTC)
	s.testUserID = "local"
}

func TestImporterTestSuite(t *testing.T) {
	suite.Run(t, new(ImporterTestSuite))
}

const sampleLog = `
profile:
  weight_kg: 80
  gender: male
  drinking_speed: fast
drinks:
  - preset: lager
    at: 2025-04-19T20:00:00Z
  - name: Negroni
    volume_ml: 90
    abv: 24
    type: cocktail
    minutes_ago: 30
  - preset: vodka
    mixer: tonic
    mixer_volume_ml: 160
    chug: true
`

func (s *ImporterTestSuite) TestDecodeAndConvert() {
	f, err := Decode(strings.NewReader(sampleLog))
	s.Require().NoError(err)

	profile := f.ProfileInput(s.testUserID)
	s.Require().NotNil(profile)
	s.Equal(80.0, profile.WeightKg)
	s.Equal(models.GenderMale, profile.Gender)
	s.Equal(models.DrinkingSpeedFast, profile.DrinkingSpeed)

	inputs, err := f.DrinkInputs(s.testUserID, s.testTime)
	s.Require().NoError(err)
	s.Require().Len(inputs, 3)

	s.Equal("Lager", inputs[0].Name)
	s.Equal(500.0, inputs[0].VolumeMl)
	s.Equal(time.Date(2025, 4, 19, 20, 0, 0, 0, time.UTC), inputs[0].Timestamp.UTC())

	s.Equal("Negroni", inputs[1].Name)
	s.Equal(24.0, inputs[1].ABV)
	s.Equal(models.DrinkTypeCocktail, inputs[1].Type)
	s.Equal(s.testTime.Add(-30*time.Minute), inputs[1].Timestamp)

	s.True(inputs[2].IsChug)
	s.Equal(s.testTime, inputs[2].Timestamp)
	s.Require().NotNil(inputs[2].Mixer)
	s.Equal("Tonic Water", inputs[2].Mixer.Name)
	s.Equal(160.0, inputs[2].Mixer.VolumeMl)
}

func (s *ImporterTestSuite) TestZeroABVIsExplicit() {
	f, err := Decode(strings.NewReader("drinks:\n  - name: Alcohol-free beer\n    volume_ml: 330\n    abv: 0\n"))
	s.Require().NoError(err)

	inputs, err := f.DrinkInputs(s.testUserID, s.testTime)
	s.Require().NoError(err)
	s.Equal(0.0, inputs[0].ABV)
}

func (s *ImporterTestSuite) TestRejectsIncompleteEntries() {
	f, err := Decode(strings.NewReader("drinks:\n  - name: Mystery\n    volume_ml: 100\n"))
	s.Require().NoError(err)

	_, err = f.DrinkInputs(s.testUserID, s.testTime)
	s.ErrorContains(err, "drink 1")
}

func (s *ImporterTestSuite) TestRejectsFutureTimes() {
	f, err := Decode(strings.NewReader("drinks:\n  - preset: lager\n    minutes_ago: -90\n"))
	s.Require().NoError(err)

	_, err = f.DrinkInputs(s.testUserID, s.testTime)
	s.ErrorContains(err, "drink 1")
	s.ErrorContains(err, "minutes_ago")

	f, err = Decode(strings.NewReader("drinks:\n  - preset: vodka\n    at: 2055-04-19T20:00:00Z\n"))
	s.Require().NoError(err)

	_, err = f.DrinkInputs(s.testUserID, s.testTime)
	s.ErrorContains(err, "in the future")

	// A drink stamped a minute ahead of now is within clock skew
	f, err = Decode(strings.NewReader("drinks:\n  - preset: vodka\n    at: 2025-04-19T23:01:00Z\n"))
	s.Require().NoError(err)

	inputs, err := f.DrinkInputs(s.testUserID, s.testTime)
	s.Require().NoError(err)
	s.Equal(s.testTime.Add(time.Minute), inputs[0].Timestamp)
}

func (s *ImporterTestSuite) TestRejectsUnknownFields() {
	_, err := Decode(strings.NewReader("drinks:\n  - nme: typo\n"))
	s.Error(err)
}

func (s *ImporterTestSuite) TestEmptyDocument() {
	f, err := Decode(strings.NewReader(""))
	s.Require().NoError(err)
	s.Nil(f.ProfileInput(s.testUserID))
	s.Empty(f.Drinks)
}

func (s *ImporterTestSuite) TestEncodeThenDecode() {
	profile := &models.Profile{WeightKg: 65, Gender: models.GenderFemale, DrinkingSpeed: models.DrinkingSpeedSlow}
	drinks := []*models.Drink{{
		Name:      "Red Wine",
		VolumeMl:  125,
		ABV:       13.5,
		Type:      models.DrinkTypeWine,
		Timestamp: s.testTime,
	}}

	var buf bytes.Buffer
	s.Require().NoError(Encode(&buf, profile, drinks))

	f, err := Decode(&buf)
	s.Require().NoError(err)

	inputs, err := f.DrinkInputs(s.testUserID, s.testTime.Add(time.Hour))
	s.Require().NoError(err)
	s.Require().Len(inputs, 1)
	s.Equal("Red Wine", inputs[0].Name)
	s.Equal(13.5, inputs[0].ABV)
	s.True(s.testTime.Equal(inputs[0].Timestamp))
	s.Equal(65.0, f.Profile.WeightKg)
}
