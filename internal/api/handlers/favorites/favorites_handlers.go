// internal/api/handlers/favorites/favorites_handlers.go
package favorites

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"rentals/internal/api/middleware"
	"rentals/internal/lib/logger/utils"
	"rentals/internal/lib/response"
	"rentals/internal/models"
	"rentals/internal/service"
	"rentals/internal/storage"
)

type FavoriteHandlers struct {
	favoriteService *service.FavoriteService
	pageSize        int
}

func NewFavoriteHandlers(favoriteService *service.FavoriteService, pageSize int) *FavoriteHandlers {
	return &FavoriteHandlers{
		favoriteService: favoriteService,
		pageSize:        pageSize,
	}
}

// @Summary Saved properties
// @Tags favorites
// @Produce json
// @Param X-User-ID header string true "Authenticated user"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Properties per page"
// @Success 200 {object} models.PropertyPage
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Internal Server Error"
// @Router /favorites [get]
func (h *FavoriteHandlers) GetFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.RequireUser(w, r)
	if !ok {
		return
	}

	queryParams := r.URL.Query()
	page, _ := strconv.Atoi(queryParams.Get("page"))
	pageSize, _ := strconv.Atoi(queryParams.Get("pageSize"))
	if pageSize <= 0 {
		pageSize = h.pageSize
	}

	result, err := h.favoriteService.ListFavorites(r.Context(), userID, models.NewPagination(page, pageSize))
	if err != nil {
		utils.Logger.Error("GetFavoritesHandler - favoriteService.ListFavorites failed", zap.Error(err), zap.String("user_id", userID))
		response.Error(w, http.StatusInternalServerError, "Failed to get favorites")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// @Summary Is the property saved
// @Tags favorites
// @Produce json
// @Param X-User-ID header string true "Authenticated user"
// @Param id path int true "Property ID"
// @Success 200 {object} models.FavoriteStatus
// @Router /properties/{id}/favorite [get]
func (h *FavoriteHandlers) GetFavoriteStatusHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.RequireUser(w, r)
	if !ok {
		return
	}
	id, ok := propertyID(w, r)
	if !ok {
		return
	}

	status, err := h.favoriteService.FavoriteStatus(r.Context(), userID, id)
	if err != nil {
		utils.Logger.Error("GetFavoriteStatusHandler - favoriteService.FavoriteStatus failed", zap.Error(err), zap.Int("id", id))
		response.Error(w, http.StatusInternalServerError, "Failed to get favorite status")
		return
	}

	response.JSON(w, http.StatusOK, status)
}

// @Summary Save or unsave a property
// @Tags favorites
// @Produce json
// @Param X-User-ID header string true "Authenticated user"
// @Param id path int true "Property ID"
// @Success 200 {object} models.FavoriteStatus
// @Failure 404 {string} string "Not Found"
// @Router /properties/{id}/favorite [post]
func (h *FavoriteHandlers) ToggleFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.RequireUser(w, r)
	if !ok {
		return
	}
	id, ok := propertyID(w, r)
	if !ok {
		return
	}

	status, err := h.favoriteService.ToggleFavorite(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, storage.ErrPropertyNotFound) {
			response.Error(w, http.StatusNotFound, "Property not found")
			return
		}
		utils.Logger.Error("ToggleFavoriteHandler - favoriteService.ToggleFavorite failed", zap.Error(err), zap.Int("id", id))
		response.Error(w, http.StatusInternalServerError, "Failed to update favorite")
		return
	}

	response.JSON(w, http.StatusOK, status)
}

func propertyID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.Logger.Warn("favorites - invalid property ID", zap.Error(err), zap.String("id", idStr))
		response.Error(w, http.StatusBadRequest, "Invalid property ID")
		return 0, false
	}
	return id, true
}
