package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rentals/internal/lib/logger/utils"
	"rentals/internal/models"
	"rentals/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const propertyColumns = `id, owner_id, name, type, description, street, city, state, zipcode,
beds, baths, square_feet, amenities, nightly_rate, weekly_rate, monthly_rate,
seller_name, seller_email, seller_phone, images, is_featured, latitude, longitude,
created_at, updated_at`

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// use runs statements inside tx when it is a pgx transaction.
func use(pool *pgxpool.Pool, tx storage.Tx) querier {
	if pgxTx, ok := tx.(pgx.Tx); ok {
		return pgxTx
	}
	return pool
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(row rowScanner, p *models.Property) error {
	return row.Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Type, &p.Description,
		&p.Location.Street, &p.Location.City, &p.Location.State, &p.Location.Zipcode,
		&p.Beds, &p.Baths, &p.SquareFeet, &p.Amenities,
		&p.Rates.Nightly, &p.Rates.Weekly, &p.Rates.Monthly,
		&p.SellerInfo.Name, &p.SellerInfo.Email, &p.SellerInfo.Phone,
		&p.Images, &p.IsFeatured, &p.Latitude, &p.Longitude,
		&p.CreatedAt, &p.UpdatedAt,
	)
}

func collectProperties(rows pgx.Rows) ([]models.Property, error) {
	defer rows.Close()

	properties := []models.Property{}
	for rows.Next() {
		var property models.Property
		if err := scanProperty(rows, &property); err != nil {
			return nil, fmt.Errorf("rows.Scan failed: %w", err)
		}
		properties = append(properties, property)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err failed: %w", err)
	}
	return properties, nil
}

type PgStorage struct {
	pool *pgxpool.Pool
}

func NewPgStorage(pool *pgxpool.Pool) storage.PropertyStorage {
	return &PgStorage{pool: pool}
}

// BeginTx starts a new transaction.
func (s *PgStorage) BeginTx(ctx context.Context) (storage.Tx, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	return tx, nil
}

// Create inserts a new property.
func (s *PgStorage) Create(ctx context.Context, p *models.Property) (*models.Property, error) {
	query := `
        INSERT INTO properties (owner_id, name, type, description, street, city, state, zipcode,
            beds, baths, square_feet, amenities, nightly_rate, weekly_rate, monthly_rate,
            seller_name, seller_email, seller_phone, images, is_featured, latitude, longitude)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
        RETURNING ` + propertyColumns

	var added models.Property
	err := scanProperty(s.pool.QueryRow(ctx, query,
		p.OwnerID, p.Name, p.Type, p.Description,
		p.Location.Street, p.Location.City, p.Location.State, p.Location.Zipcode,
		p.Beds, p.Baths, p.SquareFeet, nonNil(p.Amenities),
		p.Rates.Nightly, p.Rates.Weekly, p.Rates.Monthly,
		p.SellerInfo.Name, p.SellerInfo.Email, p.SellerInfo.Phone,
		nonNil(p.Images), p.IsFeatured, p.Latitude, p.Longitude,
	), &added)
	if err != nil {
		utils.Logger.Error("PgStorage.Create - queryRow failed", zap.Error(err))
		return nil, fmt.Errorf("PgStorage.Create - queryRow failed: %w", err)
	}
	return &added, nil
}

func (s *PgStorage) GetByID(ctx context.Context, id int) (*models.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	var property models.Property
	err := scanProperty(s.pool.QueryRow(ctx, query, id), &property)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrPropertyNotFound
		}
		utils.Logger.Error("PgStorage.GetByID - queryRow failed", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("PgStorage.GetByID - queryRow failed: %w", err)
	}
	return &property, nil
}

// likeEscaper makes user text match literally inside ILIKE, whose default
// escape character is a backslash.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// filterClause renders the WHERE clause shared by List and Count.
func filterClause(filter *models.PropertyFilter) (string, []any) {
	clause := ` WHERE 1=1`
	var params []any

	if filter == nil {
		return clause, params
	}
	if filter.Location != nil && *filter.Location != "" {
		params = append(params, "%"+likeEscaper.Replace(*filter.Location)+"%")
		n := len(params)
		clause += fmt.Sprintf(
			" AND (name ILIKE $%[1]d OR description ILIKE $%[1]d OR street ILIKE $%[1]d OR city ILIKE $%[1]d OR state ILIKE $%[1]d OR zipcode ILIKE $%[1]d)",
			n,
		)
	}
	if filter.PropertyType != nil && *filter.PropertyType != "" && !strings.EqualFold(*filter.PropertyType, models.PropertyTypeAll) {
		params = append(params, *filter.PropertyType)
		clause += fmt.Sprintf(" AND type ILIKE $%d", len(params))
	}
	return clause, params
}

func (s *PgStorage) List(ctx context.Context, filter *models.PropertyFilter, pagination *models.Pagination) ([]models.Property, error) {
	where, params := filterClause(filter)
	query := `SELECT ` + propertyColumns + ` FROM properties` + where +
		fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT %d OFFSET %d", pagination.GetLimit(), pagination.GetOffset())

	rows, err := s.pool.Query(ctx, query, params...)
	if err != nil {
		utils.Logger.Error("PgStorage.List - query failed", zap.Error(err), zap.Any("filter", filter), zap.Any("pagination", pagination))
		return nil, fmt.Errorf("PgStorage.List - query failed: %w", err)
	}

	properties, err := collectProperties(rows)
	if err != nil {
		utils.Logger.Error("PgStorage.List - reading rows failed", zap.Error(err))
		return nil, fmt.Errorf("PgStorage.List - %w", err)
	}
	return properties, nil
}

func (s *PgStorage) Count(ctx context.Context, filter *models.PropertyFilter) (int, error) {
	where, params := filterClause(filter)
	var total int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM properties`+where, params...).Scan(&total); err != nil {
		utils.Logger.Error("PgStorage.Count - queryRow failed", zap.Error(err), zap.Any("filter", filter))
		return 0, fmt.Errorf("PgStorage.Count - queryRow failed: %w", err)
	}
	return total, nil
}

func (s *PgStorage) ListFeatured(ctx context.Context, limit int) ([]models.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE is_featured ORDER BY created_at DESC, id DESC LIMIT $1`
	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		utils.Logger.Error("PgStorage.ListFeatured - query failed", zap.Error(err), zap.Int("limit", limit))
		return nil, fmt.Errorf("PgStorage.ListFeatured - query failed: %w", err)
	}

	properties, err := collectProperties(rows)
	if err != nil {
		utils.Logger.Error("PgStorage.ListFeatured - reading rows failed", zap.Error(err))
		return nil, fmt.Errorf("PgStorage.ListFeatured - %w", err)
	}
	return properties, nil
}

func (s *PgStorage) Update(ctx context.Context, p *models.Property) (*models.Property, error) {
	query := `
        UPDATE properties
        SET name = $1, type = $2, description = $3, street = $4, city = $5, state = $6, zipcode = $7,
            beds = $8, baths = $9, square_feet = $10, amenities = $11,
            nightly_rate = $12, weekly_rate = $13, monthly_rate = $14,
            seller_name = $15, seller_email = $16, seller_phone = $17, images = $18,
            latitude = $19, longitude = $20, updated_at = CURRENT_TIMESTAMP
        WHERE id = $21
        RETURNING ` + propertyColumns

	var updated models.Property
	err := scanProperty(s.pool.QueryRow(ctx, query,
		p.Name, p.Type, p.Description,
		p.Location.Street, p.Location.City, p.Location.State, p.Location.Zipcode,
		p.Beds, p.Baths, p.SquareFeet, nonNil(p.Amenities),
		p.Rates.Nightly, p.Rates.Weekly, p.Rates.Monthly,
		p.SellerInfo.Name, p.SellerInfo.Email, p.SellerInfo.Phone, nonNil(p.Images),
		p.Latitude, p.Longitude, p.ID,
	), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrPropertyNotFound
		}
		utils.Logger.Error("PgStorage.Update - queryRow failed", zap.Error(err), zap.Int("id", p.ID))
		return nil, fmt.Errorf("PgStorage.Update - queryRow failed: %w", err)
	}
	return &updated, nil
}

// Delete removes a property, inside tx when one is given.
func (s *PgStorage) Delete(ctx context.Context, tx storage.Tx, id int) error {
	result, err := use(s.pool, tx).Exec(ctx, "DELETE FROM properties WHERE id = $1", id)
	if err != nil {
		utils.Logger.Error("PgStorage.Delete - exec failed", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("PgStorage.Delete - exec failed: %w", err)
	}
	if result.RowsAffected() == 0 {
		return storage.ErrPropertyNotFound
	}
	return nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
