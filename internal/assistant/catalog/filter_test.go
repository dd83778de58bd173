package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s2o-platform/dine-assist/internal/assistant/model"
)

func sampleMenu() []model.MenuItem {
	return []model.MenuItem{
		{Name: "Trà Đào", Price: 25000, Status: model.StatusPromo, Description: "Trà đào cam sả"},
		{Name: "Cơm Tấm", Price: 45000, Status: model.StatusOutOfStock, Description: "Cơm tấm sườn bì"},
		{Name: "Phở Bò", Price: 50000, Status: model.StatusBestSeller, Description: "Phở bò tái nạm"},
		{Name: "Cà Phê Sữa", Price: 29000, Status: model.StatusAvailable, Description: "Cà phê sữa đá"},
		{Name: "Bánh Flan", Price: 15000, Status: model.StatusComingSoon, Description: "Tráng miệng"},
	}
}

func names(items []model.MenuItem) []string {
	out := make([]string, 0, len(items))
	for _, i := range items {
		out = append(out, i.Name)
	}
	return out
}

func TestFilterAllPreservesInput(t *testing.T) {
	e := NewFilterEngine()
	items := sampleMenu()

	got := e.Filter(items, model.FilterAll)
	assert.Equal(t, items, got)
}

func TestFilterByStatus(t *testing.T) {
	e := NewFilterEngine()
	items := sampleMenu()

	assert.Equal(t, []string{"Trà Đào"}, names(e.Filter(items, model.FilterPromo)))
	assert.Equal(t, []string{"Cơm Tấm"}, names(e.Filter(items, model.FilterOutOfStock)))
	assert.Equal(t, []string{"Phở Bò"}, names(e.Filter(items, model.FilterBestSeller)))
	assert.Equal(t, []string{"Bánh Flan"}, names(e.Filter(items, model.FilterComingSoon)))
}

func TestFilterAvailableIsOrderableUnion(t *testing.T) {
	e := NewFilterEngine()
	items := sampleMenu()

	got := e.Filter(items, model.FilterAvailable)
	// Available means orderable: Available + BestSeller + Promo. OutOfStock
	// and ComingSoon are excluded.
	assert.Equal(t, []string{"Trà Đào", "Phở Bò", "Cà Phê Sữa"}, names(got))

	for _, ft := range []model.FilterType{model.FilterBestSeller, model.FilterPromo} {
		for _, item := range e.Filter(items, ft) {
			assert.Contains(t, got, item, "available must be a superset of %s", ft)
		}
	}
}

func TestFilterDrinkFoodPartition(t *testing.T) {
	e := NewFilterEngine()
	items := sampleMenu()

	drinks := e.Filter(items, model.FilterDrink)
	foods := e.Filter(items, model.FilterFood)

	assert.Len(t, drinks, 2)
	assert.Equal(t, len(items), len(drinks)+len(foods))
	for _, item := range items {
		inDrinks := e.IsDrink(item)
		if inDrinks {
			assert.Contains(t, drinks, item)
			assert.NotContains(t, foods, item)
		} else {
			assert.Contains(t, foods, item)
			assert.NotContains(t, drinks, item)
		}
	}
}

func TestFilterUnknownTypeReturnsAll(t *testing.T) {
	e := NewFilterEngine()
	items := sampleMenu()

	assert.Equal(t, items, e.Filter(items, model.FilterType("spicy")))
}

func TestFilterResultIsSubset(t *testing.T) {
	e := NewFilterEngine()
	items := sampleMenu()

	for _, ft := range []model.FilterType{
		model.FilterAll, model.FilterAvailable, model.FilterComingSoon,
		model.FilterOutOfStock, model.FilterBestSeller, model.FilterPromo,
		model.FilterDrink, model.FilterFood,
	} {
		got := e.Filter(items, ft)
		assert.LessOrEqual(t, len(got), len(items))
		for _, item := range got {
			assert.Contains(t, items, item)
		}
	}
}

func TestFindByNameCaseInsensitive(t *testing.T) {
	e := NewFilterEngine()
	items := sampleMenu()

	for _, q := range []string{"Cơm Tấm", "cơm tấm", "CƠM TẤM"} {
		got := e.FindByName(items, q)
		require.NotNil(t, got, "query %q", q)
		assert.Equal(t, "Cơm Tấm", got.Name)
	}
}

func TestFindByNameSubstringFirstMatch(t *testing.T) {
	e := NewFilterEngine()
	items := []model.MenuItem{
		{Name: "Trà Đào"},
		{Name: "Trà Sữa"},
	}

	got := e.FindByName(items, "trà")
	require.NotNil(t, got)
	assert.Equal(t, "Trà Đào", got.Name, "first match in catalog order wins")

	assert.Nil(t, e.FindByName(items, "pizza"))
	assert.Nil(t, e.FindByName(items, "  "))
}

func TestCustomDrinkKeywords(t *testing.T) {
	e := NewFilterEngine("matcha")
	item := model.MenuItem{Name: "Matcha Latte Đặc Biệt"}

	assert.True(t, e.IsDrink(item))
	assert.False(t, e.IsDrink(model.MenuItem{Name: "Trà Đào"}), "default keywords are replaced, not merged")
}
