// internal/storage/storage.go
package storage

import (
	"context"
	"errors"
	"rentals/internal/models"
)

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

// Tx is a unit of work spanning several storage calls.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type PropertyStorage interface {
	BeginTx(ctx context.Context) (Tx, error)
	Create(ctx context.Context, property *models.Property) (*models.Property, error)
	GetByID(ctx context.Context, id int) (*models.Property, error)
	List(ctx context.Context, filter *models.PropertyFilter, pagination *models.Pagination) ([]models.Property, error)
	Count(ctx context.Context, filter *models.PropertyFilter) (int, error)
	ListFeatured(ctx context.Context, limit int) ([]models.Property, error)
	Update(ctx context.Context, property *models.Property) (*models.Property, error)
	Delete(ctx context.Context, tx Tx, id int) error
}

type FavoriteStorage interface {
	IsFavorite(ctx context.Context, userID string, propertyID int) (bool, error)
	Add(ctx context.Context, userID string, propertyID int) error
	Remove(ctx context.Context, userID string, propertyID int) error
	RemoveProperty(ctx context.Context, tx Tx, propertyID int) error
	ListProperties(ctx context.Context, userID string, pagination *models.Pagination) ([]models.Property, error)
	CountProperties(ctx context.Context, userID string) (int, error)
}
