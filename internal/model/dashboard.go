package model

// FilterParams carries the four multiselect dashboard dimensions as they
// arrive from the client. Providers are names; the reporting layer
// resolves them to identifiers. Empty slices mean the dimension is not
// filtered.
type FilterParams struct {
	Cities    []string `json:"cities,omitempty"`
	Providers []string `json:"providers,omitempty"`
	FoodTypes []string `json:"foodTypes,omitempty"`
	MealTypes []string `json:"mealTypes,omitempty"`
}

// Empty reports whether no dimension is active.
func (f FilterParams) Empty() bool {
	return len(f.Cities) == 0 && len(f.Providers) == 0 &&
		len(f.FoodTypes) == 0 && len(f.MealTypes) == 0
}

// DashboardSummary holds the headline numbers for the dashboard. The
// quantity and expiring counts respect the active filters; the provider
// and receiver totals are global.
type DashboardSummary struct {
	TotalQuantity  int64 `json:"totalQuantity"`
	ExpiringSoon   int64 `json:"expiringSoon"`
	TotalProviders int64 `json:"totalProviders"`
	TotalReceivers int64 `json:"totalReceivers"`
}

// FilterOptions lists the distinct values available for each dashboard
// filter dimension.
type FilterOptions struct {
	Cities    []string `json:"cities"`
	Providers []string `json:"providers"`
	FoodTypes []string `json:"foodTypes"`
	MealTypes []string `json:"mealTypes"`
}
