package repositories

import (
	"testing"
	"time"

	"lumber-inventory/models"
	"lumber-inventory/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type LumberRepositoryTestSuite struct {
	suite.Suite
	repos *Repositories
	base  time.Time
}

func (s *LumberRepositoryTestSuite) SetupTest() {
	s.repos = NewRepositories(testutil.NewTestDB(s.T()))
	s.base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (s *LumberRepositoryTestSuite) add(species string, length float64, planed bool, loc *models.Location, tags ...models.Tag) *models.Lumber {
	l := &models.Lumber{
		Species:   species,
		Length:    length,
		Width:     6,
		Thickness: 1,
		Planed:    planed,
		Tags:      tags,
		DateAdded: s.base,
	}
	if loc != nil {
		l.LocationID = &loc.ID
	}
	s.base = s.base.Add(time.Hour)
	s.Require().NoError(s.repos.Lumber.Create(l))
	return l
}

func (s *LumberRepositoryTestSuite) list(p models.LumberSearchParams) []string {
	items, err := s.repos.Lumber.GetList(models.NewLumberFilter(p))
	s.Require().NoError(err)
	var species []string
	for _, it := range items {
		species = append(species, it.Species)
	}
	return species
}

func (s *LumberRepositoryTestSuite) TestSpeciesAndLengthComposition() {
	s.add("Red Oak", 48, false, nil)
	s.add("White Oak", 96, false, nil)

	s.ElementsMatch([]string{"Red Oak", "White Oak"}, s.list(models.LumberSearchParams{Species: "oak"}))
	s.Equal([]string{"White Oak"}, s.list(models.LumberSearchParams{MinLength: "50"}))
	s.Equal([]string{"Red Oak"}, s.list(models.LumberSearchParams{Species: "oak", MaxLength: "50"}))
	s.Equal([]string{"Red Oak"}, s.list(models.LumberSearchParams{Species: "RED"}))
}

func (s *LumberRepositoryTestSuite) TestNewestFirst() {
	s.add("Pine", 10, false, nil)
	s.add("Fir", 10, false, nil)
	s.add("Cedar", 10, false, nil)

	s.Equal([]string{"Cedar", "Fir", "Pine"}, s.list(models.LumberSearchParams{}))
}

func (s *LumberRepositoryTestSuite) TestLengthBoundsAreInclusive() {
	s.add("Ash", 48, false, nil)

	s.Equal([]string{"Ash"}, s.list(models.LumberSearchParams{MinLength: "48", MaxLength: "48"}))
}

func (s *LumberRepositoryTestSuite) TestMalformedNumbersAreIgnored() {
	s.add("Elm", 30, false, nil)
	s.add("Birch", 60, true, nil)

	got := s.list(models.LumberSearchParams{Location: "abc", Tag: "x", MinLength: "long", MaxLength: "?"})
	s.Len(got, 2)
}

func (s *LumberRepositoryTestSuite) TestPlanedLocationAndTag() {
	shed, err := s.repos.Location.GetOrCreate("Shed A")
	s.Require().NoError(err)
	rack, err := s.repos.Location.GetOrCreate("Rack")
	s.Require().NoError(err)
	figured, err := s.repos.Tag.GetOrCreate("Figured")
	s.Require().NoError(err)

	s.add("Maple", 40, true, shed, *figured)
	s.add("Cherry", 40, false, rack)
	s.add("Walnut", 40, false, shed)

	s.Equal([]string{"Maple"}, s.list(models.LumberSearchParams{Planed: "true"}))
	s.Equal([]string{"Walnut", "Cherry"}, s.list(models.LumberSearchParams{Planed: "rough"}))
	s.Equal([]string{"Walnut", "Maple"}, s.list(models.LumberSearchParams{Location: "1"}))
	s.Equal([]string{"Maple"}, s.list(models.LumberSearchParams{Tag: "1"}))
	s.Empty(s.list(models.LumberSearchParams{Tag: "99"}))
	s.Empty(s.list(models.LumberSearchParams{Location: "-1"}))
}

func (s *LumberRepositoryTestSuite) TestSpeciesWildcardsMatchLiterally() {
	s.add("Oak_Rough", 10, false, nil)
	s.add("OakXRough", 10, false, nil)
	s.add("100% Ash", 10, false, nil)

	s.Equal([]string{"Oak_Rough"}, s.list(models.LumberSearchParams{Species: "k_r"}))
	s.Equal([]string{"100% Ash"}, s.list(models.LumberSearchParams{Species: "%"}))
}

func (s *LumberRepositoryTestSuite) TestGetByIDPreloadsSortedTags() {
	b, _ := s.repos.Tag.GetOrCreate("beta")
	a, _ := s.repos.Tag.GetOrCreate("Alpha")
	loc, _ := s.repos.Location.GetOrCreate("Loft")
	l := s.add("Poplar", 12, false, loc, *b, *a)

	got, err := s.repos.Lumber.GetByID(l.ID)
	s.Require().NoError(err)
	s.Equal("Loft", got.LocationName())
	s.Require().Len(got.Tags, 2)
	s.Equal("Alpha", got.Tags[0].Name)
	s.Equal("beta", got.Tags[1].Name)
	s.False(got.DateAdded.IsZero())
}

func (s *LumberRepositoryTestSuite) TestUpdateReplacesFieldsAndTags() {
	a, _ := s.repos.Tag.GetOrCreate("a")
	b, _ := s.repos.Tag.GetOrCreate("b")
	loc, _ := s.repos.Location.GetOrCreate("Garage")
	l := s.add("Pine", 12, true, loc, *a)

	l.Species = "Fir"
	l.Planed = false
	l.LocationID = nil
	l.Tags = []models.Tag{*b}
	s.Require().NoError(s.repos.Lumber.Update(l))

	got, err := s.repos.Lumber.GetByID(l.ID)
	s.Require().NoError(err)
	s.Equal("Fir", got.Species)
	s.False(got.Planed)
	s.Nil(got.LocationID)
	s.Require().Len(got.Tags, 1)
	s.Equal("b", got.Tags[0].Name)

	got.Tags = nil
	s.Require().NoError(s.repos.Lumber.Update(got))
	got, err = s.repos.Lumber.GetByID(l.ID)
	s.Require().NoError(err)
	s.Empty(got.Tags)
}

func (s *LumberRepositoryTestSuite) TestDelete() {
	tag, _ := s.repos.Tag.GetOrCreate("offcut")
	l := s.add("Alder", 12, false, nil, *tag)

	s.Require().NoError(s.repos.Lumber.Delete(l))

	_, err := s.repos.Lumber.GetByID(l.ID)
	s.Error(err)
	s.Empty(s.list(models.LumberSearchParams{}))

	kept, err := s.repos.Tag.GetByID(tag.ID)
	s.Require().NoError(err)
	s.Equal("offcut", kept.Name)
}

func TestLumberRepositorySuite(t *testing.T) {
	suite.Run(t, new(LumberRepositoryTestSuite))
}

func TestTransactionRollsBack(t *testing.T) {
	repos := NewRepositories(testutil.NewTestDB(t))

	err := repos.Transaction(func(tx *Repositories) error {
		if _, err := tx.Location.GetOrCreate("Basement"); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	locations, err := repos.Location.GetAll()
	require.NoError(t, err)
	assert.Empty(t, locations)
}
