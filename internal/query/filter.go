package query

// ListingFilter is the set of multiselect dimensions applied to
// food_listings reads. Provider selections arrive as names at the API
// boundary and are resolved to identifiers before the filter is built;
// names that resolve to nothing leave the dimension inactive.
type ListingFilter struct {
	Cities      []string
	ProviderIDs []int64
	FoodTypes   []string
	MealTypes   []string
}

// Empty reports whether no dimension is active.
func (f ListingFilter) Empty() bool {
	return len(f.Cities) == 0 && len(f.ProviderIDs) == 0 &&
		len(f.FoodTypes) == 0 && len(f.MealTypes) == 0
}

// Predicate builds the WHERE fragments for the active dimensions. alias
// qualifies the listing columns for queries that join other tables; pass
// the empty string when food_listings is the only table in scope.
func (f ListingFilter) Predicate(alias string) *Predicate {
	prefix := ""
	if alias != "" {
		prefix = alias + "."
	}

	p := &Predicate{}
	p.In(prefix+"Location", Strings(f.Cities))
	p.In(prefix+"Provider_ID", Int64s(f.ProviderIDs))
	p.In(prefix+"Food_Type", Strings(f.FoodTypes))
	p.In(prefix+"Meal_Type", Strings(f.MealTypes))
	return p
}

// Strings widens a string slice for binding.
func Strings(values []string) []any {
	if len(values) == 0 {
		return nil
	}
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}

// Int64s widens an int64 slice for binding.
func Int64s(values []int64) []any {
	if len(values) == 0 {
		return nil
	}
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}
