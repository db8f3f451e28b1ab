package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinbook/models"
)

func placeAt(name, tabID string, created time.Time) models.Place {
	return models.Place{ID: "id-" + name, Name: name, TabID: tabID, CreatedAt: created}
}

// ── FilterByTab ──────────────────────────────────────────────────────────────

func TestFilterByTab_AllIsIdentity(t *testing.T) {
	places := []models.Place{
		placeAt("a", models.TabFrequent, time.Now()),
		placeAt("b", models.TabPlanned, time.Now()),
	}

	got := FilterByTab(places, models.TabAll)
	assert.Equal(t, places, got)
}

func TestFilterByTab_PreservesRelativeOrder(t *testing.T) {
	places := []models.Place{
		placeAt("a", models.TabFrequent, time.Now()),
		placeAt("b", models.TabPlanned, time.Now()),
		placeAt("c", models.TabFrequent, time.Now()),
	}

	got := FilterByTab(places, models.TabFrequent)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, "c", got[1].Name)
}

func TestFilterByTab_NoMatches(t *testing.T) {
	places := []models.Place{placeAt("a", models.TabFrequent, time.Now())}

	got := FilterByTab(places, "custom-ghost")
	assert.Empty(t, got)
}

// ── SortPlaces ───────────────────────────────────────────────────────────────

func TestSortPlaces_CreatedDescAndAscAreReverses(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	places := []models.Place{
		placeAt("old", models.TabOther, base),
		placeAt("new", models.TabOther, base.Add(2*time.Hour)),
		placeAt("mid", models.TabOther, base.Add(time.Hour)),
	}

	desc := SortPlaces(places, SortCreatedDesc)
	asc := SortPlaces(places, SortCreatedAsc)

	require.Len(t, desc, 3)
	assert.Equal(t, "new", desc[0].Name)
	assert.Equal(t, "old", desc[2].Name)

	for i := range desc {
		assert.Equal(t, desc[i].Name, asc[len(asc)-1-i].Name)
	}
}

func TestSortPlaces_NameAscJapaneseCollation(t *testing.T) {
	now := time.Now()
	places := []models.Place{
		placeAt("さくら公園", models.TabOther, now),
		placeAt("あおば食堂", models.TabOther, now),
		placeAt("かもめ書店", models.TabOther, now),
	}

	got := SortPlaces(places, SortNameAsc)
	require.Len(t, got, 3)
	assert.Equal(t, "あおば食堂", got[0].Name)
	assert.Equal(t, "かもめ書店", got[1].Name)
	assert.Equal(t, "さくら公園", got[2].Name)
}

func TestSortPlaces_InputUntouchedAndIdempotent(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	places := []models.Place{
		placeAt("old", models.TabOther, base),
		placeAt("new", models.TabOther, base.Add(time.Hour)),
	}

	got := SortPlaces(places, SortCreatedDesc)
	assert.Equal(t, "old", places[0].Name, "input slice must not be reordered")

	again := SortPlaces(got, SortCreatedDesc)
	assert.Equal(t, got, again)
}

func TestSortPlaces_StableTies(t *testing.T) {
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	places := []models.Place{
		placeAt("first", models.TabOther, at),
		placeAt("second", models.TabOther, at),
	}

	got := SortPlaces(places, SortCreatedDesc)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Name)
	assert.Equal(t, "second", got[1].Name)
}

func TestNextSortPolicy_Cycles(t *testing.T) {
	policy := SortCreatedDesc
	policy = NextSortPolicy(policy)
	assert.Equal(t, SortCreatedAsc, policy)
	policy = NextSortPolicy(policy)
	assert.Equal(t, SortNameAsc, policy)
	policy = NextSortPolicy(policy)
	assert.Equal(t, SortCreatedDesc, policy)
}
