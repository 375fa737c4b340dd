package repository

import (
	"context"
	"fmt"

	"foodshare/internal/model"
	"foodshare/internal/query"

	"github.com/rs/zerolog"
)

// reportRepository implements the ReportRepository interface on the
// memoizing store. It owns the dashboard aggregations and runs the fixed
// report catalog; the filter predicate is rendered here, directly against
// the SQL each aggregation needs.
type reportRepository struct {
	store  *Store
	logger zerolog.Logger
}

// NewReportRepository creates a new store-backed report repository.
func NewReportRepository(store *Store, logger zerolog.Logger) ReportRepository {
	return &reportRepository{
		store:  store,
		logger: logger.With().Str("repository", "report").Logger(),
	}
}

// expirySoonDays is the dashboard's fixed expiring-soon window.
const expirySoonDays = 3

// Summary computes the dashboard headline numbers. Quantity and the
// expiring-soon count honour the filter; the provider and receiver counts
// are global.
func (r *reportRepository) Summary(ctx context.Context, f query.ListingFilter) (*model.DashboardSummary, error) {
	clause, args := f.Predicate("").Clause()
	qtyQuery := fmt.Sprintf("SELECT COALESCE(SUM(Quantity), 0) FROM food_listings %s", clause)

	soonClause, soonArgs := f.Predicate("").
		Cond("julianday(Expiry_Date) - julianday(date('now')) <= ?", expirySoonDays).
		Clause()
	soonQuery := fmt.Sprintf("SELECT COUNT(*) FROM food_listings %s", soonClause)

	quantity, err := r.scalar(ctx, qtyQuery, args)
	if err != nil {
		return nil, fmt.Errorf("failed to total quantity: %w", err)
	}

	soon, err := r.scalar(ctx, soonQuery, soonArgs)
	if err != nil {
		return nil, fmt.Errorf("failed to count expiring listings: %w", err)
	}

	providers, err := r.scalar(ctx, "SELECT COUNT(*) FROM providers", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count providers: %w", err)
	}

	receivers, err := r.scalar(ctx, "SELECT COUNT(*) FROM receivers", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count receivers: %w", err)
	}

	return &model.DashboardSummary{
		TotalQuantity:  quantity,
		ExpiringSoon:   soon,
		TotalProviders: providers,
		TotalReceivers: receivers,
	}, nil
}

// Listings retrieves the filtered listings joined with provider contact
// details, soonest expiry first. The provider join is outer so listings
// survive a missing provider row in old exports.
func (r *reportRepository) Listings(ctx context.Context, f query.ListingFilter) (*model.ResultSet, error) {
	clause, args := f.Predicate("f").Clause()
	q := fmt.Sprintf(`
		SELECT f.Food_ID, f.Food_Name, f.Quantity, f.Expiry_Date, f.Location,
		       f.Food_Type, f.Meal_Type, p.Name AS Provider, p.Contact AS Provider_Contact
		FROM food_listings f
		LEFT JOIN providers p ON f.Provider_ID = p.Provider_ID
		%s
		ORDER BY f.Expiry_Date
	`, clause)

	rs, err := r.store.Read(ctx, q, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query filtered listings")
		return nil, fmt.Errorf("failed to query filtered listings: %w", err)
	}

	return rs, nil
}

// QuantityByCity totals quantity per city under the filter, descending.
// limit > 0 keeps the top N cities.
func (r *reportRepository) QuantityByCity(ctx context.Context, f query.ListingFilter, limit int) (*model.ResultSet, error) {
	clause, args := f.Predicate("").Clause()
	q := fmt.Sprintf(`
		SELECT Location AS City, SUM(Quantity) AS Total_Quantity
		FROM food_listings
		%s
		GROUP BY Location
		ORDER BY Total_Quantity DESC
	`, clause)
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rs, err := r.store.Read(ctx, q, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to total quantity by city")
		return nil, fmt.Errorf("failed to total quantity by city: %w", err)
	}

	return rs, nil
}

// QuantityByFoodType totals quantity per food type under the filter,
// descending.
func (r *reportRepository) QuantityByFoodType(ctx context.Context, f query.ListingFilter) (*model.ResultSet, error) {
	clause, args := f.Predicate("").Clause()
	q := fmt.Sprintf(`
		SELECT Food_Type, SUM(Quantity) AS Total_Quantity
		FROM food_listings
		%s
		GROUP BY Food_Type
		ORDER BY Total_Quantity DESC
	`, clause)

	rs, err := r.store.Read(ctx, q, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to total quantity by food type")
		return nil, fmt.Errorf("failed to total quantity by food type: %w", err)
	}

	return rs, nil
}

// ExpiryTrend totals quantity per expiry month under the filter, in
// chronological order.
func (r *reportRepository) ExpiryTrend(ctx context.Context, f query.ListingFilter) (*model.ResultSet, error) {
	clause, args := f.Predicate("").Clause()
	q := fmt.Sprintf(`
		SELECT strftime('%%Y-%%m', Expiry_Date) AS Month, SUM(Quantity) AS Total_Quantity
		FROM food_listings
		%s
		GROUP BY Month
		ORDER BY Month
	`, clause)

	rs, err := r.store.Read(ctx, q, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to total quantity by expiry month")
		return nil, fmt.Errorf("failed to total quantity by expiry month: %w", err)
	}

	return rs, nil
}

// FilterOptions retrieves the distinct values for each filter dimension.
// NULL and empty values are dropped so the choices stay presentable.
func (r *reportRepository) FilterOptions(ctx context.Context) (*model.FilterOptions, error) {
	cities, err := r.distinct(ctx, "SELECT DISTINCT Location FROM food_listings ORDER BY Location")
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}

	providers, err := r.distinct(ctx, "SELECT DISTINCT Name FROM providers ORDER BY Name")
	if err != nil {
		return nil, fmt.Errorf("failed to list provider names: %w", err)
	}

	foodTypes, err := r.distinct(ctx, "SELECT DISTINCT Food_Type FROM food_listings ORDER BY Food_Type")
	if err != nil {
		return nil, fmt.Errorf("failed to list food types: %w", err)
	}

	mealTypes, err := r.distinct(ctx, "SELECT DISTINCT Meal_Type FROM food_listings ORDER BY Meal_Type")
	if err != nil {
		return nil, fmt.Errorf("failed to list meal types: %w", err)
	}

	return &model.FilterOptions{
		Cities:    cities,
		Providers: providers,
		FoodTypes: foodTypes,
		MealTypes: mealTypes,
	}, nil
}

// Run executes one catalog definition with its bound arguments.
func (r *reportRepository) Run(ctx context.Context, def query.Definition, args []any) (*model.ResultSet, error) {
	rs, err := r.store.Read(ctx, def.SQL, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("report", def.Slug).Msg("failed to run report")
		return nil, fmt.Errorf("failed to run report %s: %w", def.Slug, err)
	}

	r.logger.Debug().Str("report", def.Slug).Int("rows", rs.Len()).Msg("report executed")
	return rs, nil
}

// scalar runs a single-value aggregate and coerces the result.
func (r *reportRepository) scalar(ctx context.Context, q string, args []any) (int64, error) {
	rs, err := r.store.Read(ctx, q, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to run scalar aggregate")
		return 0, err
	}
	if rs.Len() == 0 {
		return 0, nil
	}
	return asInt64(rs.Rows[0][0]), nil
}

// distinct runs a single-column read and collects the non-empty values.
func (r *reportRepository) distinct(ctx context.Context, q string) ([]string, error) {
	rs, err := r.store.Read(ctx, q)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to run distinct read")
		return nil, err
	}

	values := make([]string, 0, rs.Len())
	for _, row := range rs.Rows {
		if s := asString(row[0]); s != "" {
			values = append(values, s)
		}
	}
	return values, nil
}
