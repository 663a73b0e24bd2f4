// internal/api/handlers/properties/properties_handlers.go
package properties

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
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

type PropertyHandlers struct {
	propertyService *service.PropertyService
	pageSize        int
}

func NewPropertyHandlers(propertyService *service.PropertyService, pageSize int) *PropertyHandlers {
	return &PropertyHandlers{
		propertyService: propertyService,
		pageSize:        pageSize,
	}
}

// @Summary Search properties
// @Description List properties, optionally filtered by location text and type, one page at a time.
// @Tags properties
// @Produce json
// @Param location query string false "Matches name, description, street, city, state or zipcode"
// @Param propertyType query string false "Property type, All for any"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Properties per page"
// @Success 200 {object} models.PropertyPage
// @Failure 500 {string} string "Internal Server Error"
// @Router /properties [get]
func (h *PropertyHandlers) GetPropertiesHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("GetPropertiesHandler called")

	queryParams := r.URL.Query()
	page, _ := strconv.Atoi(queryParams.Get("page"))
	pageSize, _ := strconv.Atoi(queryParams.Get("pageSize"))
	if pageSize <= 0 {
		pageSize = h.pageSize
	}

	pagination := models.NewPagination(page, pageSize)

	filter := &models.PropertyFilter{
		Location:     stringPointer(queryParams.Get("location")),
		PropertyType: stringPointer(queryParams.Get("propertyType")),
	}

	result, err := h.propertyService.ListProperties(r.Context(), filter, pagination)
	if err != nil {
		utils.Logger.Error("GetPropertiesHandler - propertyService.ListProperties failed", zap.Error(err), zap.Any("filter", filter), zap.Any("pagination", pagination))
		response.Error(w, http.StatusInternalServerError, "Failed to get properties")
		return
	}

	response.JSON(w, http.StatusOK, result)
	utils.Logger.Debug("GetPropertiesHandler - properties retrieved", zap.Int("count", len(result.Properties)), zap.Int("total", result.Total))
}

// @Summary Featured properties
// @Tags properties
// @Produce json
// @Param limit query int false "Maximum number of properties" default(3)
// @Success 200 {array} models.Property
// @Router /properties/featured [get]
func (h *PropertyHandlers) GetFeaturedHandler(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	featured, err := h.propertyService.ListFeatured(r.Context(), limit)
	if err != nil {
		utils.Logger.Error("GetFeaturedHandler - propertyService.ListFeatured failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to get featured properties")
		return
	}

	response.JSON(w, http.StatusOK, featured)
}

// @Summary Get property by ID
// @Tags properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} models.Property
// @Failure 404 {string} string "Not Found"
// @Failure 500 {string} string "Internal Server Error"
// @Router /properties/{id} [get]
func (h *PropertyHandlers) GetPropertyHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := propertyID(w, r, "GetPropertyHandler")
	if !ok {
		return
	}

	property, err := h.propertyService.GetProperty(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrPropertyNotFound) {
			response.Error(w, http.StatusNotFound, "Property not found")
			return
		}
		utils.Logger.Error("GetPropertyHandler - propertyService.GetProperty failed", zap.Error(err), zap.Int("id", id))
		response.Error(w, http.StatusInternalServerError, "Failed to get property")
		return
	}

	response.JSON(w, http.StatusOK, property)
}

// @Summary Add a new property
// @Description Create a listing owned by the calling user. Coordinates are looked up from the address.
// @Tags properties
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Authenticated user"
// @Param body body models.PropertyRequest true "Property details"
// @Success 201 {object} models.Property
// @Failure 400 {string} string "Bad Request"
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Internal Server Error"
// @Router /properties [post]
func (h *PropertyHandlers) AddPropertyHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("AddPropertyHandler called")

	userID, ok := middleware.RequireUser(w, r)
	if !ok {
		return
	}

	var req models.PropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Logger.Warn("AddPropertyHandler - invalid request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	added, err := h.propertyService.AddProperty(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidProperty) {
			response.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.Logger.Error("AddPropertyHandler - propertyService.AddProperty failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to add property")
		return
	}

	response.JSON(w, http.StatusCreated, added)
	utils.Logger.Info("AddPropertyHandler - property added successfully", zap.Int("property_id", added.ID), zap.String("owner_id", userID))
}

// @Summary Update property by ID
// @Tags properties
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Authenticated user"
// @Param id path int true "Property ID"
// @Param body body models.PropertyRequest true "Property details"
// @Success 200 {object} models.Property
// @Failure 400 {string} string "Bad Request"
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not Found"
// @Failure 500 {string} string "Internal Server Error"
// @Router /properties/{id} [put]
func (h *PropertyHandlers) UpdatePropertyHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("UpdatePropertyHandler called")

	userID, ok := middleware.RequireUser(w, r)
	if !ok {
		return
	}
	id, ok := propertyID(w, r, "UpdatePropertyHandler")
	if !ok {
		return
	}

	var req models.PropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Logger.Warn("UpdatePropertyHandler - invalid request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.propertyService.UpdateProperty(r.Context(), userID, id, &req)
	if err != nil {
		writeServiceError(w, err, "UpdatePropertyHandler", "Failed to update property", id)
		return
	}

	response.JSON(w, http.StatusOK, updated)
	utils.Logger.Info("UpdatePropertyHandler - property updated successfully", zap.Int("property_id", updated.ID))
}

// @Summary Delete property by ID
// @Description Delete a property and remove it from every user's favorites.
// @Tags properties
// @Param X-User-ID header string true "Authenticated user"
// @Param id path int true "Property ID"
// @Success 204 "No Content"
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not Found"
// @Failure 500 {string} string "Internal Server Error"
// @Router /properties/{id} [delete]
func (h *PropertyHandlers) DeletePropertyHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("DeletePropertyHandler called")

	userID, ok := middleware.RequireUser(w, r)
	if !ok {
		return
	}
	id, ok := propertyID(w, r, "DeletePropertyHandler")
	if !ok {
		return
	}

	if err := h.propertyService.DeleteProperty(r.Context(), userID, id); err != nil {
		writeServiceError(w, err, "DeletePropertyHandler", "Failed to delete property", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	utils.Logger.Info("DeletePropertyHandler - property deleted successfully", zap.Int("property_id", id))
}

// @Summary Pagination strip
// @Description Page numbers and "..." gaps for rendering page links. Malformed input yields [1].
// @Tags pagination
// @Produce json
// @Param page query string true "Current page"
// @Param totalPages query string true "Total number of pages"
// @Success 200 {object} map[string]interface{}
// @Router /pagination [get]
func (h *PropertyHandlers) GetPagesHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()
	pages := h.propertyService.PageRange(queryValue(queryParams, "page"), queryValue(queryParams, "totalPages"))
	response.JSON(w, http.StatusOK, map[string]any{"pages": pages})
}

func (h *PropertyHandlers) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func writeServiceError(w http.ResponseWriter, err error, handler, message string, id int) {
	switch {
	case errors.Is(err, storage.ErrPropertyNotFound):
		response.Error(w, http.StatusNotFound, "Property not found")
	case errors.Is(err, service.ErrForbidden):
		response.Error(w, http.StatusForbidden, "Not allowed to modify this property")
	case errors.Is(err, service.ErrInvalidProperty):
		response.Error(w, http.StatusBadRequest, err.Error())
	default:
		utils.Logger.Error(handler+" - service call failed", zap.Error(err), zap.Int("id", id))
		response.Error(w, http.StatusInternalServerError, message)
	}
}

func propertyID(w http.ResponseWriter, r *http.Request, handler string) (int, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.Logger.Warn(handler+" - invalid property ID", zap.Error(err), zap.String("id", idStr))
		response.Error(w, http.StatusBadRequest, "Invalid property ID")
		return 0, false
	}
	return id, true
}

// decimalNumber is plain decimal notation. Exponents, hex, NaN and Inf stay
// strings.
var decimalNumber = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)

// queryValue keeps the shape of the raw input: integers, then decimal
// fractions, then the string itself. A missing key is nil.
func queryValue(queryParams map[string][]string, key string) any {
	values, ok := queryParams[key]
	if !ok || len(values) == 0 {
		return nil
	}
	raw := values[0]
	if !decimalNumber.MatchString(raw) {
		return raw
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

func stringPointer(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
