package memory_test

import (
	"errors"
	"testing"

	"github.com/dom/superheroes-api/internal/domain"
	"github.com/dom/superheroes-api/internal/repository/memory"
	"github.com/dom/superheroes-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		heroes  []*domain.Hero
		wantErr error
	}{
		{
			name: "duplicate id",
			heroes: []*domain.Hero{
				testutil.NewHeroBuilder().WithID("1").Build(),
				testutil.NewHeroBuilder().WithID("1").Build(),
			},
			wantErr: domain.ErrDuplicateHeroID,
		},
		{
			name:    "blank id",
			heroes:  []*domain.Hero{testutil.NewHeroBuilder().WithID(" ").Build()},
			wantErr: domain.ErrMissingHeroID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := memory.NewCatalog(tt.heroes)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}

	_, err := memory.NewCatalog([]*domain.Hero{nil})
	assert.Error(t, err)
}

func TestCatalog_FindByID(t *testing.T) {
	catalog := testutil.NewTestCatalog(t, testutil.SampleHeroes()...)

	tests := []struct {
		name     string
		id       domain.HeroID
		wantName string
		wantOK   bool
	}{
		{name: "existing hero", id: "1", wantName: "A-Bomb", wantOK: true},
		{name: "another hero", id: "3", wantName: "Abin Sur", wantOK: true},
		{name: "unknown id", id: "9999"},
		{name: "non-numeric id", id: "abc"},
		{name: "leading zero is a different id", id: "01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hero, ok := catalog.FindByID(tt.id)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantName, hero.Name)
			} else {
				assert.Nil(t, hero)
			}
		})
	}
}

func TestCatalog_FindByName(t *testing.T) {
	catalog := testutil.NewTestCatalog(t, testutil.SampleHeroes()...)

	hero, ok := catalog.FindByName("abe sapien")
	require.True(t, ok)
	assert.Equal(t, domain.HeroID("2"), hero.ID)

	hero, ok = catalog.FindByName("  A-BOMB ")
	require.True(t, ok)
	assert.Equal(t, domain.HeroID("1"), hero.ID)

	_, ok = catalog.FindByName("")
	assert.False(t, ok)

	_, ok = catalog.FindByName("Batman")
	assert.False(t, ok)
}

func TestCatalog_FindByIDOrName(t *testing.T) {
	catalog := testutil.NewTestCatalog(t, testutil.SampleHeroes()...)

	tests := []struct {
		name   string
		id     domain.HeroID
		hero   string
		wantID domain.HeroID
		wantOK bool
	}{
		{name: "by id", id: "2", wantID: "2", wantOK: true},
		{name: "by name", hero: "Abin Sur", wantID: "3", wantOK: true},
		{name: "first match in dataset order", id: "3", hero: "A-Bomb", wantID: "1", wantOK: true},
		{name: "unknown name falls back to id", id: "2", hero: "Batman", wantID: "2", wantOK: true},
		{name: "nothing given"},
		{name: "nothing matches", id: "42", hero: "Batman"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hero, ok := catalog.FindByIDOrName(tt.id, tt.hero)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, hero.ID)
			}
		})
	}
}

func TestCatalog_AllReturnsCopyInDatasetOrder(t *testing.T) {
	catalog := testutil.NewTestCatalog(t, testutil.SampleHeroes()...)

	all := catalog.All()
	require.Len(t, all, 3)
	assert.Equal(t, 3, catalog.Len())
	assert.Equal(t, []domain.HeroID{"1", "2", "3"}, []domain.HeroID{all[0].ID, all[1].ID, all[2].ID})

	all[0] = nil
	assert.NotNil(t, catalog.All()[0])
}

func TestCatalog_Version(t *testing.T) {
	same := testutil.NewTestCatalog(t, testutil.SampleHeroes()...)
	again := testutil.NewTestCatalog(t, testutil.SampleHeroes()...)
	assert.NotEmpty(t, same.Version())
	assert.Equal(t, same.Version(), again.Version())

	changed := testutil.SampleHeroes()
	changed[0].Powerstats.Strength = domain.Stat(99)
	assert.NotEqual(t, same.Version(), testutil.NewTestCatalog(t, changed...).Version())

	reordered := testutil.SampleHeroes()
	reordered[0], reordered[1] = reordered[1], reordered[0]
	assert.NotEqual(t, same.Version(), testutil.NewTestCatalog(t, reordered...).Version())
}
