package favorites_test

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"rentals/internal/api/handlers/favorites"
	"rentals/internal/api/middleware"
	"rentals/internal/lib/logger/utils"
	"rentals/internal/models"
	"rentals/internal/pagination"
	"rentals/internal/service"
	"rentals/internal/storage"
	mock_storage "rentals/internal/storage/mocks"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := utils.InitLogger(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	exitCode := m.Run()
	utils.Logger.Sync()
	os.Exit(exitCode)
}

func newHandler(ctrl *gomock.Controller) (*favorites.FavoriteHandlers, *mock_storage.MockPropertyStorage, *mock_storage.MockFavoriteStorage) {
	mockProperties := mock_storage.NewMockPropertyStorage(ctrl)
	mockFavorites := mock_storage.NewMockFavoriteStorage(ctrl)
	favoriteService := service.NewFavoriteService(mockProperties, mockFavorites, nil)
	return favorites.NewFavoriteHandlers(favoriteService, models.DefaultPageSize), mockProperties, mockFavorites
}

func TestGetFavoritesHandler_Unit(t *testing.T) {
	testCases := []struct {
		name           string
		userID         string
		queryParams    string
		mockStorageFn  func(f *mock_storage.MockFavoriteStorage)
		expectedStatus int
		expectedPages  []pagination.Entry
		expectedBody   string
	}{
		{
			name:        "Valid request",
			userID:      "user-1",
			queryParams: "?page=2&pageSize=3",
			mockStorageFn: func(f *mock_storage.MockFavoriteStorage) {
				f.EXPECT().CountProperties(gomock.Any(), "user-1").Return(7, nil)
				f.EXPECT().ListProperties(gomock.Any(), "user-1", models.NewPagination(2, 3)).Return([]models.Property{{ID: 4}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedPages:  []pagination.Entry{pagination.Page(1), pagination.Page(2), pagination.Page(3)},
		},
		{
			name:        "Oversized page size is capped",
			userID:      "user-1",
			queryParams: "?pageSize=9223372036854775807",
			mockStorageFn: func(f *mock_storage.MockFavoriteStorage) {
				f.EXPECT().CountProperties(gomock.Any(), "user-1").Return(5, nil)
				f.EXPECT().ListProperties(gomock.Any(), "user-1", &models.Pagination{Page: 1, PageSize: models.MaxPageSize}).Return([]models.Property{{ID: 4}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedPages:  []pagination.Entry{pagination.Page(1)},
		},
		{
			name:        "Nothing saved",
			userID:      "user-1",
			queryParams: "",
			mockStorageFn: func(f *mock_storage.MockFavoriteStorage) {
				f.EXPECT().CountProperties(gomock.Any(), "user-1").Return(0, nil)
				f.EXPECT().ListProperties(gomock.Any(), "user-1", models.NewPagination(1, models.DefaultPageSize)).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedPages:  []pagination.Entry{pagination.Page(1)},
		},
		{
			name:           "Missing user",
			userID:         "",
			mockStorageFn:  func(f *mock_storage.MockFavoriteStorage) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Authentication required"}`,
		},
		{
			name:   "Service error",
			userID: "user-1",
			mockStorageFn: func(f *mock_storage.MockFavoriteStorage) {
				f.EXPECT().CountProperties(gomock.Any(), "user-1").Return(0, errors.New("service error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to get favorites"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler, _, mockFavorites := newHandler(ctrl)
			tc.mockStorageFn(mockFavorites)

			req := httptest.NewRequest("GET", "/favorites"+tc.queryParams, nil)
			if tc.userID != "" {
				req.Header.Set(middleware.HeaderUserID, tc.userID)
			}
			w := httptest.NewRecorder()

			handler.GetFavoritesHandler(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, w.Body.String())
				return
			}
			var page models.PropertyPage
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
			assert.Equal(t, tc.expectedPages, page.Pages)
			assert.NotNil(t, page.Properties)
			assert.GreaterOrEqual(t, page.TotalPages, 1)
		})
	}
}

func TestGetFavoriteStatusHandler_Unit(t *testing.T) {
	testCases := []struct {
		name           string
		propertyID     string
		mockStorageFn  func(f *mock_storage.MockFavoriteStorage)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:       "Saved",
			propertyID: "3",
			mockStorageFn: func(f *mock_storage.MockFavoriteStorage) {
				f.EXPECT().IsFavorite(gomock.Any(), "user-1", 3).Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"propertyId":3,"isFavorite":true}`,
		},
		{
			name:           "Invalid property ID",
			propertyID:     "invalid",
			mockStorageFn:  func(f *mock_storage.MockFavoriteStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid property ID"}`,
		},
		{
			name:       "Service error",
			propertyID: "3",
			mockStorageFn: func(f *mock_storage.MockFavoriteStorage) {
				f.EXPECT().IsFavorite(gomock.Any(), "user-1", 3).Return(false, errors.New("service error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to get favorite status"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler, _, mockFavorites := newHandler(ctrl)
			tc.mockStorageFn(mockFavorites)

			req := httptest.NewRequest("GET", "/properties/"+tc.propertyID+"/favorite", nil)
			req = mux.SetURLVars(req, map[string]string{"id": tc.propertyID})
			req.Header.Set(middleware.HeaderUserID, "user-1")
			w := httptest.NewRecorder()

			handler.GetFavoriteStatusHandler(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestToggleFavoriteHandler_Unit(t *testing.T) {
	testCases := []struct {
		name           string
		mockStorageFn  func(s *mock_storage.MockPropertyStorage, f *mock_storage.MockFavoriteStorage)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Saves the property",
			mockStorageFn: func(s *mock_storage.MockPropertyStorage, f *mock_storage.MockFavoriteStorage) {
				s.EXPECT().GetByID(gomock.Any(), 3).Return(&models.Property{ID: 3}, nil)
				f.EXPECT().IsFavorite(gomock.Any(), "user-1", 3).Return(false, nil)
				f.EXPECT().Add(gomock.Any(), "user-1", 3).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"propertyId":3,"isFavorite":true}`,
		},
		{
			name: "Unsaves the property",
			mockStorageFn: func(s *mock_storage.MockPropertyStorage, f *mock_storage.MockFavoriteStorage) {
				s.EXPECT().GetByID(gomock.Any(), 3).Return(&models.Property{ID: 3}, nil)
				f.EXPECT().IsFavorite(gomock.Any(), "user-1", 3).Return(true, nil)
				f.EXPECT().Remove(gomock.Any(), "user-1", 3).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"propertyId":3,"isFavorite":false}`,
		},
		{
			name: "Property not found",
			mockStorageFn: func(s *mock_storage.MockPropertyStorage, f *mock_storage.MockFavoriteStorage) {
				s.EXPECT().GetByID(gomock.Any(), 3).Return(nil, storage.ErrPropertyNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Property not found"}`,
		},
		{
			name: "Service error",
			mockStorageFn: func(s *mock_storage.MockPropertyStorage, f *mock_storage.MockFavoriteStorage) {
				s.EXPECT().GetByID(gomock.Any(), 3).Return(&models.Property{ID: 3}, nil)
				f.EXPECT().IsFavorite(gomock.Any(), "user-1", 3).Return(false, errors.New("service error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to update favorite"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler, mockProperties, mockFavorites := newHandler(ctrl)
			tc.mockStorageFn(mockProperties, mockFavorites)

			req := httptest.NewRequest("POST", "/properties/3/favorite", nil)
			req = mux.SetURLVars(req, map[string]string{"id": "3"})
			req.Header.Set(middleware.HeaderUserID, "user-1")
			w := httptest.NewRecorder()

			handler.ToggleFavoriteHandler(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}
