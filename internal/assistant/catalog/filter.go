package catalog

import (
	"strings"

	"github.com/s2o-platform/dine-assist/internal/assistant/model"
)

// DefaultDrinkKeywords is the stock drink vocabulary matched against item
// name and description. The split is deliberately approximate and market
// specific; tenants can override it via NewFilterEngine.
var DefaultDrinkKeywords = []string{
	"trà", "tea", "cà phê", "coffee", "cafe", "nước", "water",
	"soda", "coke", "coca", "pepsi", "7up", "bia", "beer",
	"rượu", "wine", "sinh tố", "juice", "latte", "mocha", "ép", "sữa", "milk",
}

// FilterEngine classifies and filters a normalised menu list. It carries no
// I/O; callers hand it a freshly fetched catalog on every call.
type FilterEngine struct {
	drinkKeywords []string
}

// NewFilterEngine builds an engine with the supplied drink vocabulary, or
// DefaultDrinkKeywords when none is given.
func NewFilterEngine(drinkKeywords ...string) *FilterEngine {
	if len(drinkKeywords) == 0 {
		drinkKeywords = DefaultDrinkKeywords
	}
	return &FilterEngine{drinkKeywords: drinkKeywords}
}

// DrinkKeywords returns the active drink vocabulary.
func (e *FilterEngine) DrinkKeywords() []string {
	return e.drinkKeywords
}

// IsDrink reports whether the item matches the drink heuristic: any keyword
// contained in the lower-cased concatenation of name and description.
func (e *FilterEngine) IsDrink(item model.MenuItem) bool {
	text := strings.ToLower(item.Name + " " + item.Description)
	for _, k := range e.drinkKeywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// Filter returns the subset of items matching the filter type, preserving
// catalog order. Unrecognised filters return all items unchanged.
func (e *FilterEngine) Filter(items []model.MenuItem, ft model.FilterType) []model.MenuItem {
	var pred func(model.MenuItem) bool
	switch ft {
	case model.FilterAll:
		return items
	case model.FilterComingSoon:
		pred = func(i model.MenuItem) bool { return i.Status == model.StatusComingSoon }
	case model.FilterOutOfStock:
		pred = func(i model.MenuItem) bool { return i.Status == model.StatusOutOfStock }
	case model.FilterAvailable:
		pred = func(i model.MenuItem) bool { return i.Status.Orderable() }
	case model.FilterBestSeller:
		pred = func(i model.MenuItem) bool { return i.Status == model.StatusBestSeller }
	case model.FilterPromo:
		pred = func(i model.MenuItem) bool { return i.Status == model.StatusPromo }
	case model.FilterDrink:
		pred = e.IsDrink
	case model.FilterFood:
		pred = func(i model.MenuItem) bool { return !e.IsDrink(i) }
	default:
		return items
	}

	out := make([]model.MenuItem, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// FindByName returns the first item whose name contains the query,
// case-insensitively, in catalog order. No fuzzy matching, no ranking.
func (e *FilterEngine) FindByName(items []model.MenuItem, query string) *model.MenuItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	for i := range items {
		if strings.Contains(strings.ToLower(items[i].Name), q) {
			return &items[i]
		}
	}
	return nil
}
