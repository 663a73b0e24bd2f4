package service

import (
	"context"
	"errors"
	"fmt"

	"rentals/internal/lib/logger/utils"
	"rentals/internal/models"
	"rentals/internal/pagination"
	"rentals/internal/storage"

	"go.uber.org/zap"
)

type FavoriteService struct {
	properties storage.PropertyStorage
	favorites  storage.FavoriteStorage
	pager      *pagination.Generator
}

func NewFavoriteService(properties storage.PropertyStorage, favorites storage.FavoriteStorage, pager *pagination.Generator) *FavoriteService {
	if pager == nil {
		pager = pagination.New(pagination.NewZapLogger(utils.Logger))
	}
	return &FavoriteService{
		properties: properties,
		favorites:  favorites,
		pager:      pager,
	}
}

// ToggleFavorite saves the property for the user, or unsaves it if it was
// already saved, and reports the new state.
func (s *FavoriteService) ToggleFavorite(ctx context.Context, userID string, propertyID int) (*models.FavoriteStatus, error) {
	utils.Logger.Debug("FavoriteService.ToggleFavorite", zap.String("user_id", userID), zap.Int("property_id", propertyID))

	if _, err := s.properties.GetByID(ctx, propertyID); err != nil {
		if errors.Is(err, storage.ErrPropertyNotFound) {
			return nil, storage.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("FavoriteService.ToggleFavorite - storage.GetByID failed: %w", err)
	}

	isFavorite, err := s.favorites.IsFavorite(ctx, userID, propertyID)
	if err != nil {
		return nil, fmt.Errorf("FavoriteService.ToggleFavorite - favorites.IsFavorite failed: %w", err)
	}

	if isFavorite {
		err = s.favorites.Remove(ctx, userID, propertyID)
		// Removed concurrently; the outcome is the same.
		if errors.Is(err, storage.ErrFavoriteNotFound) {
			err = nil
		}
	} else {
		err = s.favorites.Add(ctx, userID, propertyID)
	}
	if err != nil {
		utils.Logger.Error("FavoriteService.ToggleFavorite - update failed", zap.Error(err), zap.String("user_id", userID), zap.Int("property_id", propertyID))
		return nil, fmt.Errorf("FavoriteService.ToggleFavorite - update failed: %w", err)
	}

	utils.Logger.Info("FavoriteService.ToggleFavorite - favorite toggled", zap.String("user_id", userID), zap.Int("property_id", propertyID), zap.Bool("is_favorite", !isFavorite))
	return &models.FavoriteStatus{PropertyID: propertyID, IsFavorite: !isFavorite}, nil
}

func (s *FavoriteService) FavoriteStatus(ctx context.Context, userID string, propertyID int) (*models.FavoriteStatus, error) {
	isFavorite, err := s.favorites.IsFavorite(ctx, userID, propertyID)
	if err != nil {
		utils.Logger.Error("FavoriteService.FavoriteStatus - favorites.IsFavorite failed", zap.Error(err))
		return nil, fmt.Errorf("FavoriteService.FavoriteStatus - favorites.IsFavorite failed: %w", err)
	}
	return &models.FavoriteStatus{PropertyID: propertyID, IsFavorite: isFavorite}, nil
}

func (s *FavoriteService) ListFavorites(ctx context.Context, userID string, p *models.Pagination) (*models.PropertyPage, error) {
	utils.Logger.Debug("FavoriteService.ListFavorites", zap.String("user_id", userID), zap.Any("pagination", p))

	total, err := s.favorites.CountProperties(ctx, userID)
	if err != nil {
		utils.Logger.Error("FavoriteService.ListFavorites - favorites.CountProperties failed", zap.Error(err))
		return nil, fmt.Errorf("FavoriteService.ListFavorites - favorites.CountProperties failed: %w", err)
	}

	properties, err := s.favorites.ListProperties(ctx, userID, p)
	if err != nil {
		utils.Logger.Error("FavoriteService.ListFavorites - favorites.ListProperties failed", zap.Error(err))
		return nil, fmt.Errorf("FavoriteService.ListFavorites - favorites.ListProperties failed: %w", err)
	}

	return newPage(s.pager, properties, p, total), nil
}
