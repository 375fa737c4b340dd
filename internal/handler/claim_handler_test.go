package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodshare/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockClaimService is a mock implementation of service.ClaimService.
type MockClaimService struct {
	mock.Mock
}

func (m *MockClaimService) Create(ctx context.Context, req *model.ClaimRequest) (*model.Claim, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Claim), args.Error(1)
}

func (m *MockClaimService) UpdateStatus(ctx context.Context, id int64, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockClaimService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClaimService) List(ctx context.Context) ([]model.ClaimDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ClaimDetail), args.Error(1)
}

func (m *MockClaimService) EligibleListings(ctx context.Context) ([]model.EligibleListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.EligibleListing), args.Error(1)
}

func TestClaimHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	created := &model.Claim{ID: 9, FoodID: 3, ReceiverID: 5, Status: model.ClaimPending}

	tests := []struct {
		name           string
		body           string
		mockReturn     *model.Claim
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success with defaulted status",
			body:           `{"foodId": 3, "receiverId": 5}`,
			mockReturn:     created,
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Invalid JSON",
			body:           `{"foodId": 3,`,
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Missing receiver",
			body:           `{"foodId": 3}`,
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Unknown status value",
			body:           `{"foodId": 3, "receiverId": 5, "status": "Done"}`,
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Listing not found",
			body:           `{"foodId": 77, "receiverId": 5}`,
			mockError:      model.ErrListingNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Listing already claimed",
			body:           `{"foodId": 3, "receiverId": 5}`,
			mockError:      model.ErrListingClaimed,
			expectedStatus: http.StatusConflict,
			expectService:  true,
		},
		{
			name:           "Receiver not found",
			body:           `{"foodId": 3, "receiverId": 88}`,
			mockError:      model.ErrReceiverNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Service error",
			body:           `{"foodId": 3, "receiverId": 5}`,
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockClaimService)
			handler := NewClaimHandler(mockService, validator.New(), logger)

			if tt.expectService {
				mockService.On("Create", mock.Anything, mock.AnythingOfType("*model.ClaimRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/claims", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var claim model.Claim
				require.NoError(t, json.NewDecoder(w.Body).Decode(&claim))
				assert.Equal(t, int64(9), claim.ID)
				assert.Equal(t, model.ClaimPending, claim.Status)
			}

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestClaimHandler_UpdateStatus(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		mockError      error
		expectedStatus int
		expectService  bool
		claimID        int64
		status         string
	}{
		{
			name:           "Success",
			method:         http.MethodPatch,
			path:           "/api/claims/9/status",
			body:           `{"status": "Completed"}`,
			expectedStatus: http.StatusNoContent,
			expectService:  true,
			claimID:        9,
			status:         model.ClaimCompleted,
		},
		{
			name:           "Unknown status value",
			method:         http.MethodPatch,
			path:           "/api/claims/9/status",
			body:           `{"status": "Delivered"}`,
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Missing status",
			method:         http.MethodPatch,
			path:           "/api/claims/9/status",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Invalid identifier",
			method:         http.MethodPatch,
			path:           "/api/claims/abc/status",
			body:           `{"status": "Completed"}`,
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodPost,
			path:           "/api/claims/9/status",
			body:           `{"status": "Completed"}`,
			expectedStatus: http.StatusMethodNotAllowed,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockClaimService)
			handler := NewClaimHandler(mockService, validator.New(), logger)

			if tt.expectService {
				mockService.On("UpdateStatus", mock.Anything, tt.claimID, tt.status).
					Return(tt.mockError)
			}

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.UpdateStatus(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestClaimHandler_Delete(t *testing.T) {
	mockService := new(MockClaimService)
	handler := NewClaimHandler(mockService, validator.New(), zerolog.Nop())

	mockService.On("Delete", mock.Anything, int64(9)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/claims/9", nil)
	w := httptest.NewRecorder()

	handler.Delete(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}

func TestClaimHandler_List(t *testing.T) {
	mockService := new(MockClaimService)
	handler := NewClaimHandler(mockService, validator.New(), zerolog.Nop())

	mockService.On("List", mock.Anything).Return([]model.ClaimDetail{
		{ID: 2, FoodID: 3, FoodName: "Bread Loaves", ReceiverID: 5, ReceiverName: "Hope Shelter", Status: model.ClaimPending},
		{ID: 1, FoodID: 1, FoodName: "", ReceiverID: 5, ReceiverName: "Hope Shelter", Status: model.ClaimCancelled},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/claims", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var claims []model.ClaimDetail
	require.NoError(t, json.NewDecoder(w.Body).Decode(&claims))
	require.Len(t, claims, 2)
	// a dangling claim keeps its row, food name and all, as stored
	assert.Equal(t, "", claims[1].FoodName)
	mockService.AssertExpectations(t)
}

func TestClaimHandler_EligibleListings(t *testing.T) {
	mockService := new(MockClaimService)
	handler := NewClaimHandler(mockService, validator.New(), zerolog.Nop())

	mockService.On("EligibleListings", mock.Anything).Return([]model.EligibleListing{
		{ID: 4, FoodName: "Soup Trays", Location: "Springfield", Quantity: 9, ExpiryDate: "2030-01-03"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/claims/eligible-listings", nil)
	w := httptest.NewRecorder()

	handler.EligibleListings(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var listings []model.EligibleListing
	require.NoError(t, json.NewDecoder(w.Body).Decode(&listings))
	require.Len(t, listings, 1)
	assert.Equal(t, "Soup Trays", listings[0].FoodName)
	mockService.AssertExpectations(t)
}
