package model

// ItemStatus is the lifecycle state of a menu item as reported by the menu
// service.
type ItemStatus string

const (
	StatusAvailable  ItemStatus = "Available"
	StatusBestSeller ItemStatus = "BestSeller"
	StatusPromo      ItemStatus = "Promo"
	StatusComingSoon ItemStatus = "ComingSoon"
	StatusOutOfStock ItemStatus = "OutOfStock"
)

// ParseItemStatus maps a raw catalog status onto the known set. Unrecognised
// or missing values normalise to Available instead of propagating unknown
// strings.
func ParseItemStatus(v string) ItemStatus {
	switch ItemStatus(v) {
	case StatusBestSeller:
		return StatusBestSeller
	case StatusPromo:
		return StatusPromo
	case StatusComingSoon:
		return StatusComingSoon
	case StatusOutOfStock:
		return StatusOutOfStock
	default:
		return StatusAvailable
	}
}

// Orderable reports whether an item in this state can be added to an order.
func (s ItemStatus) Orderable() bool {
	switch s {
	case StatusAvailable, StatusBestSeller, StatusPromo:
		return true
	default:
		return false
	}
}

// MenuItem is the normalised catalog record. The JSON tags follow the menu
// service wire shape so the same struct round-trips into tool results.
type MenuItem struct {
	Name        string     `json:"name"`
	Price       float64    `json:"price"`
	Status      ItemStatus `json:"status"`
	Description string     `json:"description"`
	CategoryID  int        `json:"categoryId,omitempty"`
}

// FilterType selects a slice of the catalog by status or by the drink/food
// heuristic.
type FilterType string

const (
	FilterAll        FilterType = "all"
	FilterAvailable  FilterType = "available"
	FilterComingSoon FilterType = "coming_soon"
	FilterOutOfStock FilterType = "out_of_stock"
	FilterBestSeller FilterType = "best_seller"
	FilterPromo      FilterType = "promo"
	FilterDrink      FilterType = "drink"
	FilterFood       FilterType = "food"
)
