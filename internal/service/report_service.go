package service

import (
	"context"
	"fmt"
	"strconv"

	"foodshare/internal/model"
	"foodshare/internal/query"
	"foodshare/internal/repository"

	"github.com/rs/zerolog"
)

// reportService implements ReportService.
type reportService struct {
	reportRepo   repository.ReportRepository
	providerRepo repository.ProviderRepository
	logger       zerolog.Logger
}

// NewReportService creates a new report service.
func NewReportService(
	reportRepo repository.ReportRepository,
	providerRepo repository.ProviderRepository,
	logger zerolog.Logger,
) ReportService {
	return &reportService{
		reportRepo:   reportRepo,
		providerRepo: providerRepo,
		logger:       logger.With().Str("service", "report").Logger(),
	}
}

// Summary computes the dashboard headline numbers under the filter.
func (s *reportService) Summary(ctx context.Context, params model.FilterParams) (*model.DashboardSummary, error) {
	f, err := s.resolveFilter(ctx, params)
	if err != nil {
		return nil, err
	}

	summary, err := s.reportRepo.Summary(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to compute dashboard summary: %w", err)
	}
	return summary, nil
}

// Listings retrieves the filtered listings with provider contacts.
func (s *reportService) Listings(ctx context.Context, params model.FilterParams) (*model.ResultSet, error) {
	f, err := s.resolveFilter(ctx, params)
	if err != nil {
		return nil, err
	}

	rs, err := s.reportRepo.Listings(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list filtered listings: %w", err)
	}
	return rs, nil
}

// QuantityByCity totals quantity for the top cities under the filter.
func (s *reportService) QuantityByCity(ctx context.Context, params model.FilterParams, limit int) (*model.ResultSet, error) {
	f, err := s.resolveFilter(ctx, params)
	if err != nil {
		return nil, err
	}

	rs, err := s.reportRepo.QuantityByCity(ctx, f, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to total quantity by city: %w", err)
	}
	return rs, nil
}

// QuantityByFoodType totals quantity per food type under the filter.
func (s *reportService) QuantityByFoodType(ctx context.Context, params model.FilterParams) (*model.ResultSet, error) {
	f, err := s.resolveFilter(ctx, params)
	if err != nil {
		return nil, err
	}

	rs, err := s.reportRepo.QuantityByFoodType(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to total quantity by food type: %w", err)
	}
	return rs, nil
}

// ExpiryTrend totals quantity per expiry month under the filter.
func (s *reportService) ExpiryTrend(ctx context.Context, params model.FilterParams) (*model.ResultSet, error) {
	f, err := s.resolveFilter(ctx, params)
	if err != nil {
		return nil, err
	}

	rs, err := s.reportRepo.ExpiryTrend(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to total quantity by expiry month: %w", err)
	}
	return rs, nil
}

// FilterOptions retrieves the selectable values per filter dimension.
func (s *reportService) FilterOptions(ctx context.Context) (*model.FilterOptions, error) {
	options, err := s.reportRepo.FilterOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list filter options: %w", err)
	}
	return options, nil
}

// Catalog lists the fixed analytical reports.
func (s *reportService) Catalog() []query.Definition {
	return query.Catalog()
}

// RunReport executes a catalog report by numeric id or slug.
func (s *reportService) RunReport(ctx context.Context, idOrSlug string, params map[string]string) (*model.ResultSet, error) {
	def, ok := query.Lookup(idOrSlug)
	if !ok {
		s.logger.Debug().Str("report", idOrSlug).Msg("report not found")
		return nil, model.ErrReportNotFound
	}

	args, err := bindParams(def, params)
	if err != nil {
		s.logger.Warn().Str("report", def.Slug).Err(err).Msg("report parameters rejected")
		return nil, err
	}

	rs, err := s.reportRepo.Run(ctx, def, args)
	if err != nil {
		return nil, fmt.Errorf("failed to run report: %w", err)
	}
	return rs, nil
}

// resolveFilter turns API filter parameters into a listing filter. Provider
// selections arrive as names and are resolved to identifiers; names that
// match nothing leave the provider dimension inactive rather than failing.
func (s *reportService) resolveFilter(ctx context.Context, params model.FilterParams) (query.ListingFilter, error) {
	f := query.ListingFilter{
		Cities:    params.Cities,
		FoodTypes: params.FoodTypes,
		MealTypes: params.MealTypes,
	}

	if len(params.Providers) > 0 {
		ids, err := s.providerRepo.IDsByName(ctx, params.Providers)
		if err != nil {
			return query.ListingFilter{}, fmt.Errorf("failed to resolve provider filter: %w", err)
		}
		if len(ids) == 0 {
			s.logger.Debug().Strs("providers", params.Providers).Msg("provider filter matched nothing")
		}
		f.ProviderIDs = ids
	}

	return f, nil
}

// bindParams binds caller-supplied values to a report's parameters in
// declaration order. Missing values fall back to the parameter default;
// a parameter without a default is mandatory.
func bindParams(def query.Definition, params map[string]string) ([]any, error) {
	args := make([]any, 0, len(def.Params))
	for _, p := range def.Params {
		raw, ok := params[p.Name]
		if !ok || raw == "" {
			if p.Default == "" {
				return nil, model.NewDomainError(model.ErrCodeMissingField,
					fmt.Sprintf("Report parameter %q is required", p.Name))
			}
			raw = p.Default
		}

		switch p.Kind {
		case query.ParamInt:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, model.NewDomainError(model.ErrCodeValidationFailed,
					fmt.Sprintf("Report parameter %q must be an integer", p.Name))
			}
			args = append(args, n)
		default:
			args = append(args, raw)
		}
	}
	return args, nil
}
