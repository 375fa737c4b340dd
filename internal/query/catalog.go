package query

import (
	"strconv"
)

// ParamKind describes how a report parameter is parsed.
type ParamKind string

// Supported parameter kinds.
const (
	ParamInt    ParamKind = "int"
	ParamString ParamKind = "string"
)

// Param describes one bound parameter a report requires, in SQL
// placeholder order. A parameter with no default is mandatory.
type Param struct {
	Name    string    `json:"name"`
	Kind    ParamKind `json:"kind"`
	Default string    `json:"default,omitempty"`
}

// Definition is one entry of the fixed report catalog.
type Definition struct {
	ID     int     `json:"id"`
	Slug   string  `json:"slug"`
	Name   string  `json:"name"`
	SQL    string  `json:"-"`
	Params []Param `json:"params,omitempty"`
}

// The fifteen analytical reports. Each runs as a single statement against
// the store; aggregates return empty or zero rows on an empty database
// rather than failing. Day arithmetic compares calendar dates, so
// julianday('now') is anchored to date('now') to drop the time-of-day
// component.
var definitions = []Definition{
	{
		ID:   1,
		Slug: "all-providers",
		Name: "All Providers",
		SQL:  "SELECT * FROM providers ORDER BY Name",
	},
	{
		ID:   2,
		Slug: "all-receivers",
		Name: "All Receivers",
		SQL:  "SELECT * FROM receivers ORDER BY Name",
	},
	{
		ID:   3,
		Slug: "all-listings",
		Name: "All Food Listings",
		SQL:  "SELECT * FROM food_listings ORDER BY Expiry_Date",
	},
	{
		ID:   4,
		Slug: "all-claims",
		Name: "All Claims",
		SQL:  "SELECT * FROM claims ORDER BY Claim_ID DESC",
	},
	{
		ID:   5,
		Slug: "expiring-soon",
		Name: "Expiring soon (<= N days)",
		SQL: `
			SELECT Food_ID, Food_Name, Quantity, Expiry_Date, Location, Food_Type, Meal_Type, Provider_ID
			FROM food_listings
			WHERE julianday(Expiry_Date) - julianday(date('now')) <= ?
			ORDER BY Expiry_Date ASC`,
		Params: []Param{{Name: "days", Kind: ParamInt, Default: "3"}},
	},
	{
		ID:   6,
		Slug: "quantity-by-city",
		Name: "Total quantity by city",
		SQL: `
			SELECT Location AS City, SUM(Quantity) AS Total_Quantity
			FROM food_listings
			GROUP BY Location
			ORDER BY Total_Quantity DESC`,
	},
	{
		ID:   7,
		Slug: "top-providers",
		Name: "Top 5 providers by quantity",
		SQL: `
			SELECT p.Provider_ID, p.Name, SUM(f.Quantity) AS Total_Quantity
			FROM food_listings f
			JOIN providers p ON f.Provider_ID = p.Provider_ID
			GROUP BY p.Provider_ID, p.Name
			ORDER BY Total_Quantity DESC
			LIMIT 5`,
	},
	{
		ID:   8,
		Slug: "claims-by-receiver",
		Name: "Number of claims by receiver",
		SQL: `
			SELECT r.Receiver_ID, r.Name, COUNT(c.Claim_ID) AS Total_Claims
			FROM claims c
			JOIN receivers r ON c.Receiver_ID = r.Receiver_ID
			GROUP BY r.Receiver_ID, r.Name
			ORDER BY Total_Claims DESC`,
	},
	{
		ID:   9,
		Slug: "unclaimed-food",
		Name: "Unclaimed food items",
		SQL: `
			SELECT f.Food_ID, f.Food_Name, f.Quantity, f.Expiry_Date, f.Location, f.Food_Type, f.Meal_Type
			FROM food_listings f
			LEFT JOIN claims c ON f.Food_ID = c.Food_ID
			WHERE c.Claim_ID IS NULL
			ORDER BY f.Expiry_Date`,
	},
	{
		// Providers without listings keep a NULL rate and sort after
		// every numbered rate under DESC.
		ID:   10,
		Slug: "fulfillment-rate",
		Name: "Claim fulfillment rate per provider (%)",
		SQL: `
			SELECT p.Name,
			       ROUND(100.0 * SUM(CASE WHEN c.Status='Completed' THEN 1 ELSE 0 END) / NULLIF(COUNT(DISTINCT f.Food_ID),0), 2)
			         AS Fulfillment_Rate
			FROM providers p
			LEFT JOIN food_listings f ON p.Provider_ID = f.Provider_ID
			LEFT JOIN claims c ON f.Food_ID = c.Food_ID
			GROUP BY p.Provider_ID, p.Name
			ORDER BY Fulfillment_Rate DESC`,
	},
	{
		ID:   11,
		Slug: "average-days-to-expiry",
		Name: "Average days to expiry",
		SQL: `
			SELECT ROUND(AVG(julianday(Expiry_Date) - julianday(date('now'))), 2) AS Avg_Days_To_Expiry
			FROM food_listings`,
	},
	{
		ID:     12,
		Slug:   "receivers-by-city",
		Name:   "Receivers in a given city",
		SQL:    "SELECT * FROM receivers WHERE City = ? ORDER BY Name",
		Params: []Param{{Name: "city", Kind: ParamString}},
	},
	{
		ID:   13,
		Slug: "food-type-availability",
		Name: "Food type availability (count & qty)",
		SQL: `
			SELECT Food_Type, COUNT(*) AS Item_Count, SUM(Quantity) AS Total_Quantity
			FROM food_listings
			GROUP BY Food_Type
			ORDER BY Total_Quantity DESC`,
	},
	{
		ID:   14,
		Slug: "providers-without-claims",
		Name: "Providers with zero claims",
		SQL: `
			SELECT p.Provider_ID, p.Name
			FROM providers p
			LEFT JOIN food_listings f ON p.Provider_ID = f.Provider_ID
			LEFT JOIN claims c ON f.Food_ID = c.Food_ID
			GROUP BY p.Provider_ID, p.Name
			HAVING COUNT(c.Claim_ID) = 0
			ORDER BY p.Name`,
	},
	{
		ID:   15,
		Slug: "expiry-month-trend",
		Name: "Quantity trend by expiry month",
		SQL: `
			SELECT strftime('%Y-%m', Expiry_Date) AS Month, SUM(Quantity) AS Total_Quantity
			FROM food_listings
			GROUP BY Month
			ORDER BY Month`,
	},
}

// Catalog returns the report definitions in stable display order.
func Catalog() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Lookup finds a report by its numeric identifier or slug.
func Lookup(idOrSlug string) (Definition, bool) {
	if id, err := strconv.Atoi(idOrSlug); err == nil {
		for _, def := range definitions {
			if def.ID == id {
				return def, true
			}
		}
		return Definition{}, false
	}

	for _, def := range definitions {
		if def.Slug == idOrSlug {
			return def, true
		}
	}
	return Definition{}, false
}
