package postgres_test

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"rentals/internal/lib/logger/utils"
	"rentals/internal/models"
	"rentals/internal/storage"
	"rentals/internal/storage/postgres"
)

const postgresPort = nat.Port("5432/tcp")

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()
	if err := utils.InitLogger(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx := context.Background()
	container, dbURL, err := startPostgres(ctx)
	if err != nil {
		log.Printf("postgres container unavailable, skipping integration tests: %v", err)
		os.Exit(m.Run())
	}

	testPool, err = pgxpool.New(ctx, dbURL)
	if err != nil {
		container.Terminate(ctx)
		log.Fatalf("Failed to connect to test database: %v", err)
	}

	exitCode := m.Run()
	testPool.Close()
	container.Terminate(ctx)
	os.Exit(exitCode)
}

func startPostgres(ctx context.Context) (testcontainers.Container, string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{string(postgresPort)},
			Env: map[string]string{
				"POSTGRES_USER":     "rentals",
				"POSTGRES_PASSWORD": "rentals",
				"POSTGRES_DB":       "rentals_test",
			},
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort(postgresPort),
			).WithDeadline(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return nil, "", err
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(ctx)
		return nil, "", err
	}
	port, err := container.MappedPort(ctx, postgresPort)
	if err != nil {
		container.Terminate(ctx)
		return nil, "", err
	}

	dbURL := fmt.Sprintf("postgres://rentals:rentals@%s:%s/rentals_test?sslmode=disable", host, port.Port())
	m, err := migrate.New("file://../../migrations", dbURL)
	if err != nil {
		container.Terminate(ctx)
		return nil, "", fmt.Errorf("failed to initialize migration: %w", err)
	}
	defer m.Close()
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		container.Terminate(ctx)
		return nil, "", fmt.Errorf("failed to run migrations: %w", err)
	}
	return container, dbURL, nil
}

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testPool == nil {
		t.Skip("postgres integration tests need Docker")
	}
	_, err := testPool.Exec(context.Background(), "TRUNCATE favorites, properties RESTART IDENTITY")
	require.NoError(t, err, "Failed to cleanup test data")
	return testPool
}

func newProperty(owner, name, city string) *models.Property {
	nightly := 120
	return &models.Property{
		OwnerID:    owner,
		Name:       name,
		Type:       "Apartment",
		Location:   models.Location{Street: "1 Main St", City: city, State: "MA", Zipcode: "02101"},
		Beds:       2,
		Baths:      1,
		Amenities:  []string{"Wifi"},
		Rates:      models.Rates{Nightly: &nightly},
		SellerInfo: models.SellerInfo{Name: "Ann", Email: "ann@example.com"},
	}
}

func TestPgStorage_CreateGetUpdate_Integration(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	properties := postgres.NewPgStorage(pool)

	added, err := properties.Create(ctx, newProperty("owner-1", "Harbor Loft", "Boston"))
	require.NoError(t, err)
	assert.NotZero(t, added.ID)
	assert.Equal(t, []string{"Wifi"}, added.Amenities)
	assert.Equal(t, []string{}, added.Images)
	require.NotNil(t, added.Rates.Nightly)
	assert.Equal(t, 120, *added.Rates.Nightly)
	assert.Nil(t, added.Rates.Weekly)
	assert.Nil(t, added.Latitude)

	fetched, err := properties.GetByID(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, "Harbor Loft", fetched.Name)

	lat, lng := 42.36, -71.06
	fetched.Name = "Harbor Loft Renovated"
	fetched.Latitude, fetched.Longitude = &lat, &lng
	updated, err := properties.Update(ctx, fetched)
	require.NoError(t, err)
	assert.Equal(t, "Harbor Loft Renovated", updated.Name)
	require.NotNil(t, updated.Latitude)
	assert.InDelta(t, lat, *updated.Latitude, 1e-9)

	_, err = properties.GetByID(ctx, added.ID+100)
	assert.ErrorIs(t, err, storage.ErrPropertyNotFound)

	missing := *fetched
	missing.ID = added.ID + 100
	_, err = properties.Update(ctx, &missing)
	assert.ErrorIs(t, err, storage.ErrPropertyNotFound)
}

func TestPgStorage_ListAndCount_Integration(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	properties := postgres.NewPgStorage(pool)

	for i := 1; i <= 5; i++ {
		_, err := properties.Create(ctx, newProperty("owner-1", fmt.Sprintf("Boston Flat %d", i), "Boston"))
		require.NoError(t, err)
	}
	cottage := newProperty("owner-2", "Lake Cottage", "Portland")
	cottage.Type = "Cottage"
	_, err := properties.Create(ctx, cottage)
	require.NoError(t, err)

	all := &models.PropertyFilter{}
	total, err := properties.Count(ctx, all)
	require.NoError(t, err)
	assert.Equal(t, 6, total)

	firstPage, err := properties.List(ctx, all, models.NewPagination(1, 4))
	require.NoError(t, err)
	assert.Len(t, firstPage, 4)
	assert.Equal(t, "Lake Cottage", firstPage[0].Name)

	secondPage, err := properties.List(ctx, all, models.NewPagination(2, 4))
	require.NoError(t, err)
	assert.Len(t, secondPage, 2)

	location := "boston"
	byLocation := &models.PropertyFilter{Location: &location}
	total, err = properties.Count(ctx, byLocation)
	require.NoError(t, err)
	assert.Equal(t, 5, total)

	propertyType := "cottage"
	byType := &models.PropertyFilter{PropertyType: &propertyType}
	matches, err := properties.List(ctx, byType, models.NewPagination(1, 10))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Lake Cottage", matches[0].Name)

	anyType := models.PropertyTypeAll
	total, err = properties.Count(ctx, &models.PropertyFilter{PropertyType: &anyType})
	require.NoError(t, err)
	assert.Equal(t, 6, total)

	for _, wildcard := range []string{"_", "%"} {
		total, err = properties.Count(ctx, &models.PropertyFilter{Location: &wildcard})
		require.NoError(t, err)
		assert.Zero(t, total, "location %q", wildcard)
	}

	nowhere := "Atlantis"
	empty, err := properties.List(ctx, &models.PropertyFilter{Location: &nowhere}, models.NewPagination(1, 10))
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestPgStorage_ListFeatured_Integration(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	properties := postgres.NewPgStorage(pool)

	for i := 1; i <= 3; i++ {
		_, err := properties.Create(ctx, newProperty("owner-1", fmt.Sprintf("Flat %d", i), "Boston"))
		require.NoError(t, err)
	}
	_, err := pool.Exec(ctx, "UPDATE properties SET is_featured = TRUE WHERE id IN (1, 3)")
	require.NoError(t, err)

	featured, err := properties.ListFeatured(ctx, 5)
	require.NoError(t, err)
	require.Len(t, featured, 2)
	for _, p := range featured {
		assert.True(t, p.IsFeatured)
	}

	featured, err = properties.ListFeatured(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, featured, 1)
}

func TestPgFavoriteStorage_Integration(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	properties := postgres.NewPgStorage(pool)
	favorites := postgres.NewPgFavoriteStorage(pool)

	first, err := properties.Create(ctx, newProperty("owner-1", "Flat 1", "Boston"))
	require.NoError(t, err)
	second, err := properties.Create(ctx, newProperty("owner-1", "Flat 2", "Boston"))
	require.NoError(t, err)

	saved, err := favorites.IsFavorite(ctx, "user-1", first.ID)
	require.NoError(t, err)
	assert.False(t, saved)

	require.NoError(t, favorites.Add(ctx, "user-1", first.ID))
	require.NoError(t, favorites.Add(ctx, "user-1", first.ID))
	require.NoError(t, favorites.Add(ctx, "user-1", second.ID))
	require.NoError(t, favorites.Add(ctx, "user-2", second.ID))

	saved, err = favorites.IsFavorite(ctx, "user-1", first.ID)
	require.NoError(t, err)
	assert.True(t, saved)

	count, err := favorites.CountProperties(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	listed, err := favorites.ListProperties(ctx, "user-1", models.NewPagination(1, 10))
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	require.NoError(t, favorites.Remove(ctx, "user-1", first.ID))
	assert.ErrorIs(t, favorites.Remove(ctx, "user-1", first.ID), storage.ErrFavoriteNotFound)

	empty, err := favorites.ListProperties(ctx, "user-3", models.NewPagination(1, 10))
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestPgStorage_DeleteInTransaction_Integration(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	properties := postgres.NewPgStorage(pool)
	favorites := postgres.NewPgFavoriteStorage(pool)

	added, err := properties.Create(ctx, newProperty("owner-1", "Flat 1", "Boston"))
	require.NoError(t, err)
	require.NoError(t, favorites.Add(ctx, "user-1", added.ID))
	require.NoError(t, favorites.Add(ctx, "user-2", added.ID))

	t.Run("Favorites block a bare delete", func(t *testing.T) {
		err := properties.Delete(ctx, nil, added.ID)
		assert.Error(t, err)
	})

	t.Run("Rolled back transaction keeps everything", func(t *testing.T) {
		tx, err := properties.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, favorites.RemoveProperty(ctx, tx, added.ID))
		require.NoError(t, properties.Delete(ctx, tx, added.ID))
		require.NoError(t, tx.Rollback(ctx))

		_, err = properties.GetByID(ctx, added.ID)
		assert.NoError(t, err)
		saved, err := favorites.IsFavorite(ctx, "user-2", added.ID)
		require.NoError(t, err)
		assert.True(t, saved)
	})

	t.Run("Committed transaction removes property and favorites", func(t *testing.T) {
		tx, err := properties.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, favorites.RemoveProperty(ctx, tx, added.ID))
		require.NoError(t, properties.Delete(ctx, tx, added.ID))
		require.NoError(t, tx.Commit(ctx))

		_, err = properties.GetByID(ctx, added.ID)
		assert.ErrorIs(t, err, storage.ErrPropertyNotFound)
		count, err := favorites.CountProperties(ctx, "user-1")
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	assert.ErrorIs(t, properties.Delete(ctx, nil, added.ID), storage.ErrPropertyNotFound)
}
