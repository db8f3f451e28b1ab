package models

// Built-in tab identifiers. They are seeded once at first run and cannot be
// deleted. TabAll is a query sentinel only and is never stored.
const (
	TabAll      = "all"
	TabFrequent = "frequent"
	TabPlanned  = "planned"
	TabFavorite = "favorite"

	// TabOther is the fallback bucket for places whose tab was deleted.
	TabOther = "other"
)

// MaxCustomTabs caps how many user-created tabs may exist at once.
const MaxCustomTabs = 5

// Tab is a user-facing grouping label for places.
type Tab struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Custom bool   `json:"custom"`
	Order  int    `json:"order"`
}

// BuiltinTabs returns the fixed tab set seeded on first run, in display
// order.
func BuiltinTabs() []Tab {
	return []Tab{
		{ID: TabFrequent, Name: "よく行く", Order: 0},
		{ID: TabPlanned, Name: "行きたい", Order: 1},
		{ID: TabFavorite, Name: "お気に入り", Order: 2},
		{ID: TabOther, Name: "その他", Order: 3},
	}
}
