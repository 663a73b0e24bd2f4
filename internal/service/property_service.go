package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"rentals/internal/geocoder"
	"rentals/internal/lib/logger/utils"
	"rentals/internal/models"
	"rentals/internal/pagination"
	"rentals/internal/storage"

	"go.uber.org/zap"
)

var (
	ErrInvalidProperty = errors.New("invalid property")
	ErrForbidden       = errors.New("property belongs to another user")
)

const defaultFeaturedLimit = 3

type PropertyService struct {
	properties storage.PropertyStorage
	favorites  storage.FavoriteStorage
	geocoder   geocoder.Geocoder
	pager      *pagination.Generator
}

// NewPropertyService wires the service. geo may be nil, in which case
// properties are stored without coordinates; a nil pager logs through the
// process logger.
func NewPropertyService(properties storage.PropertyStorage, favorites storage.FavoriteStorage, geo geocoder.Geocoder, pager *pagination.Generator) *PropertyService {
	if pager == nil {
		pager = pagination.New(pagination.NewZapLogger(utils.Logger))
	}
	return &PropertyService{
		properties: properties,
		favorites:  favorites,
		geocoder:   geo,
		pager:      pager,
	}
}

func (s *PropertyService) ListProperties(ctx context.Context, filter *models.PropertyFilter, pagination *models.Pagination) (*models.PropertyPage, error) {
	utils.Logger.Debug("PropertyService.ListProperties", zap.Any("filter", filter), zap.Any("pagination", pagination))

	total, err := s.properties.Count(ctx, filter)
	if err != nil {
		utils.Logger.Error("PropertyService.ListProperties - storage.Count failed", zap.Error(err), zap.Any("filter", filter))
		return nil, fmt.Errorf("PropertyService.ListProperties - storage.Count failed: %w", err)
	}

	properties, err := s.properties.List(ctx, filter, pagination)
	if err != nil {
		utils.Logger.Error("PropertyService.ListProperties - storage.List failed", zap.Error(err), zap.Any("filter", filter), zap.Any("pagination", pagination))
		return nil, fmt.Errorf("PropertyService.ListProperties - storage.List failed: %w", err)
	}

	return newPage(s.pager, properties, pagination, total), nil
}

func (s *PropertyService) ListFeatured(ctx context.Context, limit int) ([]models.Property, error) {
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}
	properties, err := s.properties.ListFeatured(ctx, limit)
	if err != nil {
		utils.Logger.Error("PropertyService.ListFeatured - storage.ListFeatured failed", zap.Error(err), zap.Int("limit", limit))
		return nil, fmt.Errorf("PropertyService.ListFeatured - storage.ListFeatured failed: %w", err)
	}
	return properties, nil
}

func (s *PropertyService) GetProperty(ctx context.Context, id int) (*models.Property, error) {
	property, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrPropertyNotFound) {
			return nil, storage.ErrPropertyNotFound
		}
		utils.Logger.Error("PropertyService.GetProperty - storage.GetByID failed", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("PropertyService.GetProperty - storage.GetByID failed: %w", err)
	}
	return property, nil
}

func (s *PropertyService) AddProperty(ctx context.Context, ownerID string, req *models.PropertyRequest) (*models.Property, error) {
	utils.Logger.Debug("PropertyService.AddProperty", zap.String("owner_id", ownerID), zap.String("name", req.Name))

	if err := validate(req); err != nil {
		return nil, err
	}

	property := fromRequest(req)
	property.OwnerID = ownerID
	s.locate(ctx, property)

	added, err := s.properties.Create(ctx, property)
	if err != nil {
		utils.Logger.Error("PropertyService.AddProperty - storage.Create failed", zap.Error(err))
		return nil, fmt.Errorf("PropertyService.AddProperty - storage.Create failed: %w", err)
	}

	utils.Logger.Info("PropertyService.AddProperty - property added", zap.Int("property_id", added.ID), zap.String("owner_id", ownerID))
	return added, nil
}

func (s *PropertyService) UpdateProperty(ctx context.Context, ownerID string, id int, req *models.PropertyRequest) (*models.Property, error) {
	utils.Logger.Debug("PropertyService.UpdateProperty", zap.String("owner_id", ownerID), zap.Int("id", id))

	existing, err := s.owned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	property := fromRequest(req)
	property.ID = existing.ID
	property.OwnerID = existing.OwnerID
	property.IsFeatured = existing.IsFeatured
	if property.Location == existing.Location {
		property.Latitude, property.Longitude = existing.Latitude, existing.Longitude
	}
	if property.Latitude == nil {
		s.locate(ctx, property)
	}

	updated, err := s.properties.Update(ctx, property)
	if err != nil {
		if errors.Is(err, storage.ErrPropertyNotFound) {
			return nil, storage.ErrPropertyNotFound
		}
		utils.Logger.Error("PropertyService.UpdateProperty - storage.Update failed", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("PropertyService.UpdateProperty - storage.Update failed: %w", err)
	}

	utils.Logger.Info("PropertyService.UpdateProperty - property updated", zap.Int("property_id", updated.ID))
	return updated, nil
}

// DeleteProperty removes the property and every favorite pointing at it in a
// single transaction.
func (s *PropertyService) DeleteProperty(ctx context.Context, ownerID string, id int) (err error) {
	utils.Logger.Debug("PropertyService.DeleteProperty", zap.String("owner_id", ownerID), zap.Int("id", id))

	if _, err = s.owned(ctx, ownerID, id); err != nil {
		return err
	}

	tx, err := s.properties.BeginTx(ctx)
	if err != nil {
		utils.Logger.Error("PropertyService.DeleteProperty - BeginTx failed", zap.Error(err))
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				utils.Logger.Error("Transaction rollback failed", zap.Error(rollbackErr))
			}
		}
	}()

	if err = s.favorites.RemoveProperty(ctx, tx, id); err != nil {
		utils.Logger.Error("PropertyService.DeleteProperty - favorites.RemoveProperty failed", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("PropertyService.DeleteProperty - favorites.RemoveProperty failed: %w", err)
	}

	if err = s.properties.Delete(ctx, tx, id); err != nil {
		if errors.Is(err, storage.ErrPropertyNotFound) {
			return storage.ErrPropertyNotFound
		}
		utils.Logger.Error("PropertyService.DeleteProperty - storage.Delete failed", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("PropertyService.DeleteProperty - storage.Delete failed: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	utils.Logger.Info("PropertyService.DeleteProperty - property deleted", zap.Int("property_id", id))
	return nil
}

// PageRange exposes the pagination strip for callers holding untyped input.
func (s *PropertyService) PageRange(currentPage, totalPages any) []pagination.Entry {
	return s.pager.RangeOf(currentPage, totalPages)
}

func newPage(pager *pagination.Generator, properties []models.Property, p *models.Pagination, total int) *models.PropertyPage {
	if properties == nil {
		properties = []models.Property{}
	}
	totalPages := p.TotalPages(total)
	return &models.PropertyPage{
		Properties: properties,
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      total,
		TotalPages: totalPages,
		Pages:      pager.Range(p.Page, totalPages),
	}
}

func (s *PropertyService) owned(ctx context.Context, ownerID string, id int) (*models.Property, error) {
	existing, err := s.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != ownerID {
		utils.Logger.Warn("PropertyService - ownership check failed", zap.Int("id", id), zap.String("user_id", ownerID))
		return nil, ErrForbidden
	}
	return existing, nil
}

// locate fills coordinates. A failed lookup leaves them empty.
func (s *PropertyService) locate(ctx context.Context, property *models.Property) {
	if s.geocoder == nil {
		return
	}
	coordinates, err := s.geocoder.Geocode(ctx, property.Location.Address())
	if err != nil {
		utils.Logger.Warn("PropertyService - geocoding failed, storing without coordinates", zap.Error(err), zap.String("address", property.Location.Address()))
		return
	}
	property.Latitude = &coordinates.Lat
	property.Longitude = &coordinates.Lng
}

func validate(req *models.PropertyRequest) error {
	required := []struct {
		field string
		value string
	}{
		{"name", req.Name},
		{"type", req.Type},
		{"location.city", req.Location.City},
		{"location.state", req.Location.State},
		{"sellerInfo.email", req.SellerInfo.Email},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidProperty, r.field)
		}
	}
	if _, err := mail.ParseAddress(req.SellerInfo.Email); err != nil {
		return fmt.Errorf("%w: sellerInfo.email is not a valid address", ErrInvalidProperty)
	}
	if req.Beds < 0 || req.Baths < 0 || req.SquareFeet < 0 {
		return fmt.Errorf("%w: beds, baths and squareFeet cannot be negative", ErrInvalidProperty)
	}
	for _, rate := range []*int{req.Rates.Nightly, req.Rates.Weekly, req.Rates.Monthly} {
		if rate != nil && *rate < 0 {
			return fmt.Errorf("%w: rates cannot be negative", ErrInvalidProperty)
		}
	}
	return nil
}

func fromRequest(req *models.PropertyRequest) *models.Property {
	return &models.Property{
		Name:        strings.TrimSpace(req.Name),
		Type:        req.Type,
		Description: req.Description,
		Location:    req.Location,
		Beds:        req.Beds,
		Baths:       req.Baths,
		SquareFeet:  req.SquareFeet,
		Amenities:   req.Amenities,
		Rates:       req.Rates,
		SellerInfo:  req.SellerInfo,
		Images:      req.Images,
	}
}
