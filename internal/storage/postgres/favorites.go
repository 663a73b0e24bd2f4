package postgres

import (
	"context"
	"fmt"
	"strings"

	"rentals/internal/lib/logger/utils"
	"rentals/internal/models"
	"rentals/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type PgFavoriteStorage struct {
	pool *pgxpool.Pool
}

func NewPgFavoriteStorage(pool *pgxpool.Pool) storage.FavoriteStorage {
	return &PgFavoriteStorage{pool: pool}
}

func (s *PgFavoriteStorage) IsFavorite(ctx context.Context, userID string, propertyID int) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND property_id = $2)`,
		userID, propertyID,
	).Scan(&exists)
	if err != nil {
		utils.Logger.Error("PgFavoriteStorage.IsFavorite - queryRow failed", zap.Error(err), zap.String("user_id", userID), zap.Int("property_id", propertyID))
		return false, fmt.Errorf("PgFavoriteStorage.IsFavorite - queryRow failed: %w", err)
	}
	return exists, nil
}

func (s *PgFavoriteStorage) Add(ctx context.Context, userID string, propertyID int) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO favorites (user_id, property_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, propertyID,
	)
	if err != nil {
		utils.Logger.Error("PgFavoriteStorage.Add - exec failed", zap.Error(err), zap.String("user_id", userID), zap.Int("property_id", propertyID))
		return fmt.Errorf("PgFavoriteStorage.Add - exec failed: %w", err)
	}
	return nil
}

func (s *PgFavoriteStorage) Remove(ctx context.Context, userID string, propertyID int) error {
	result, err := s.pool.Exec(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND property_id = $2`,
		userID, propertyID,
	)
	if err != nil {
		utils.Logger.Error("PgFavoriteStorage.Remove - exec failed", zap.Error(err), zap.String("user_id", userID), zap.Int("property_id", propertyID))
		return fmt.Errorf("PgFavoriteStorage.Remove - exec failed: %w", err)
	}
	if result.RowsAffected() == 0 {
		return storage.ErrFavoriteNotFound
	}
	return nil
}

// RemoveProperty drops the property from every user's favorites.
func (s *PgFavoriteStorage) RemoveProperty(ctx context.Context, tx storage.Tx, propertyID int) error {
	result, err := use(s.pool, tx).Exec(ctx, `DELETE FROM favorites WHERE property_id = $1`, propertyID)
	if err != nil {
		utils.Logger.Error("PgFavoriteStorage.RemoveProperty - exec failed", zap.Error(err), zap.Int("property_id", propertyID))
		return fmt.Errorf("PgFavoriteStorage.RemoveProperty - exec failed: %w", err)
	}
	utils.Logger.Debug("PgFavoriteStorage.RemoveProperty", zap.Int("property_id", propertyID), zap.Int64("removed", result.RowsAffected()))
	return nil
}

func (s *PgFavoriteStorage) ListProperties(ctx context.Context, userID string, pagination *models.Pagination) ([]models.Property, error) {
	query := `SELECT ` + qualified("p", propertyColumns) + `
        FROM favorites f JOIN properties p ON p.id = f.property_id
        WHERE f.user_id = $1
        ORDER BY f.created_at DESC, p.id DESC` +
		fmt.Sprintf(" LIMIT %d OFFSET %d", pagination.GetLimit(), pagination.GetOffset())

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		utils.Logger.Error("PgFavoriteStorage.ListProperties - query failed", zap.Error(err), zap.String("user_id", userID), zap.Any("pagination", pagination))
		return nil, fmt.Errorf("PgFavoriteStorage.ListProperties - query failed: %w", err)
	}

	properties, err := collectProperties(rows)
	if err != nil {
		utils.Logger.Error("PgFavoriteStorage.ListProperties - reading rows failed", zap.Error(err))
		return nil, fmt.Errorf("PgFavoriteStorage.ListProperties - %w", err)
	}
	return properties, nil
}

func (s *PgFavoriteStorage) CountProperties(ctx context.Context, userID string) (int, error) {
	var total int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM favorites WHERE user_id = $1`, userID).Scan(&total); err != nil {
		utils.Logger.Error("PgFavoriteStorage.CountProperties - queryRow failed", zap.Error(err), zap.String("user_id", userID))
		return 0, fmt.Errorf("PgFavoriteStorage.CountProperties - queryRow failed: %w", err)
	}
	return total, nil
}

// qualified prefixes each column of a comma separated list with alias.
func qualified(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, part := range parts {
		parts[i] = alias + "." + strings.TrimSpace(part)
	}
	return strings.Join(parts, ", ")
}
