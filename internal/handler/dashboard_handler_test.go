package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodshare/internal/model"
	"foodshare/internal/query"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Summary(ctx context.Context, params model.FilterParams) (*model.DashboardSummary, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardSummary), args.Error(1)
}

func (m *MockReportService) Listings(ctx context.Context, params model.FilterParams) (*model.ResultSet, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ResultSet), args.Error(1)
}

func (m *MockReportService) QuantityByCity(ctx context.Context, params model.FilterParams, limit int) (*model.ResultSet, error) {
	args := m.Called(ctx, params, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ResultSet), args.Error(1)
}

func (m *MockReportService) QuantityByFoodType(ctx context.Context, params model.FilterParams) (*model.ResultSet, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ResultSet), args.Error(1)
}

func (m *MockReportService) ExpiryTrend(ctx context.Context, params model.FilterParams) (*model.ResultSet, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ResultSet), args.Error(1)
}

func (m *MockReportService) FilterOptions(ctx context.Context) (*model.FilterOptions, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FilterOptions), args.Error(1)
}

func (m *MockReportService) Catalog() []query.Definition {
	args := m.Called()
	return args.Get(0).([]query.Definition)
}

func (m *MockReportService) RunReport(ctx context.Context, idOrSlug string, params map[string]string) (*model.ResultSet, error) {
	args := m.Called(ctx, idOrSlug, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ResultSet), args.Error(1)
}

func TestDashboardHandler_Summary(t *testing.T) {
	mockService := new(MockReportService)
	handler := NewDashboardHandler(mockService, zerolog.Nop())

	mockService.On("Summary", mock.Anything, model.FilterParams{}).
		Return(&model.DashboardSummary{TotalQuantity: 50, ExpiringSoon: 2, TotalProviders: 3, TotalReceivers: 4}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
	w := httptest.NewRecorder()

	handler.Summary(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var summary model.DashboardSummary
	require.NoError(t, json.NewDecoder(w.Body).Decode(&summary))
	assert.Equal(t, int64(50), summary.TotalQuantity)
	assert.Equal(t, int64(2), summary.ExpiringSoon)
	mockService.AssertExpectations(t)
}

func TestDashboardHandler_Summary_ForwardsFilters(t *testing.T) {
	mockService := new(MockReportService)
	handler := NewDashboardHandler(mockService, zerolog.Nop())

	// repeated query parameters become multiselect dimensions
	mockService.On("Summary", mock.Anything, model.FilterParams{
		Cities:    []string{"Springfield", "Riverton"},
		Providers: []string{"Acme Grocers"},
		FoodTypes: []string{"Vegan"},
	}).Return(&model.DashboardSummary{}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/dashboard/summary?city=Springfield&city=Riverton&provider=Acme+Grocers&food_type=Vegan", nil)
	w := httptest.NewRecorder()

	handler.Summary(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestDashboardHandler_Summary_ServiceError(t *testing.T) {
	mockService := new(MockReportService)
	handler := NewDashboardHandler(mockService, zerolog.Nop())

	mockService.On("Summary", mock.Anything, model.FilterParams{}).
		Return(nil, errors.New("database error"))

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
	w := httptest.NewRecorder()

	handler.Summary(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDashboardHandler_Summary_MethodNotAllowed(t *testing.T) {
	mockService := new(MockReportService)
	handler := NewDashboardHandler(mockService, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/dashboard/summary", nil)
	w := httptest.NewRecorder()

	handler.Summary(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	mockService.AssertNotCalled(t, "Summary")
}

func TestDashboardHandler_Listings_JSON(t *testing.T) {
	mockService := new(MockReportService)
	handler := NewDashboardHandler(mockService, zerolog.Nop())

	rs := &model.ResultSet{
		Columns: []string{"Food_ID", "Food_Name", "Provider"},
		Rows:    [][]any{{int64(1), "Rice Bags", "Acme Grocers"}},
	}
	mockService.On("Listings", mock.Anything, model.FilterParams{}).Return(rs, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/listings", nil)
	w := httptest.NewRecorder()

	handler.Listings(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var decoded model.ResultSet
	require.NoError(t, json.NewDecoder(w.Body).Decode(&decoded))
	assert.Equal(t, rs.Columns, decoded.Columns)
	require.Len(t, decoded.Rows, 1)
}

func TestDashboardHandler_Listings_CSV(t *testing.T) {
	mockService := new(MockReportService)
	handler := NewDashboardHandler(mockService, zerolog.Nop())

	rs := &model.ResultSet{
		Columns: []string{"Food_ID", "Food_Name"},
		Rows:    [][]any{{int64(1), "Rice Bags"}},
	}
	mockService.On("Listings", mock.Anything, model.FilterParams{}).Return(rs, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/listings?format=csv", nil)
	w := httptest.NewRecorder()

	handler.Listings(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="listings.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "Food_ID,Food_Name\n1,Rice Bags\n", w.Body.String())
}

func TestDashboardHandler_QuantityByCity(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    string
		expectedStatus int
		expectService  bool
		limit          int
	}{
		{
			name:           "Default limit",
			queryParams:    "",
			expectedStatus: http.StatusOK,
			expectService:  true,
			limit:          10,
		},
		{
			name:           "Custom limit",
			queryParams:    "?limit=3",
			expectedStatus: http.StatusOK,
			expectService:  true,
			limit:          3,
		},
		{
			name:           "Zero limit",
			queryParams:    "?limit=0",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Non-numeric limit",
			queryParams:    "?limit=lots",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockReportService)
			handler := NewDashboardHandler(mockService, zerolog.Nop())

			if tt.expectService {
				mockService.On("QuantityByCity", mock.Anything, model.FilterParams{}, tt.limit).
					Return(&model.ResultSet{Columns: []string{"City", "Total_Quantity"}}, nil)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/dashboard/quantity-by-city"+tt.queryParams, nil)
			w := httptest.NewRecorder()

			handler.QuantityByCity(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestDashboardHandler_ExpiryTrend(t *testing.T) {
	mockService := new(MockReportService)
	handler := NewDashboardHandler(mockService, zerolog.Nop())

	mockService.On("ExpiryTrend", mock.Anything, model.FilterParams{MealTypes: []string{"Dinner"}}).
		Return(&model.ResultSet{Columns: []string{"Month", "Total_Quantity"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/expiry-trend?meal_type=Dinner", nil)
	w := httptest.NewRecorder()

	handler.ExpiryTrend(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestDashboardHandler_FilterOptions(t *testing.T) {
	mockService := new(MockReportService)
	handler := NewDashboardHandler(mockService, zerolog.Nop())

	mockService.On("FilterOptions", mock.Anything).Return(&model.FilterOptions{
		Cities:    []string{"Riverton", "Springfield"},
		Providers: []string{"Acme Grocers"},
		FoodTypes: []string{"Vegan", "Vegetarian"},
		MealTypes: []string{"Dinner", "Lunch"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/filters/options", nil)
	w := httptest.NewRecorder()

	handler.FilterOptions(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var options model.FilterOptions
	require.NoError(t, json.NewDecoder(w.Body).Decode(&options))
	assert.Equal(t, []string{"Riverton", "Springfield"}, options.Cities)
	mockService.AssertExpectations(t)
}
