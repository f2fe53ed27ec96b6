package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-hub/internal/database"
	"restaurant-hub/internal/model"
	"restaurant-hub/internal/repository"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestCategoryRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewCategoryRepository(testDB.Pool, logger)
	itemRepo := repository.NewMenuItemRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("Create defaults order index to zero", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		category, err := repo.Create(ctx, &model.CategoryCreate{Name: "Drinks"})
		require.NoError(t, err)
		assert.Equal(t, "Drinks", category.Name)
		assert.Equal(t, 0, category.OrderIndex)
		assert.False(t, category.CreatedAt.IsZero())
	})

	t.Run("List orders by order index then id", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		_, err := repo.Create(ctx, &model.CategoryCreate{Name: "Last", OrderIndex: 5})
		require.NoError(t, err)
		first, err := repo.Create(ctx, &model.CategoryCreate{Name: "First", OrderIndex: 0})
		require.NoError(t, err)
		second, err := repo.Create(ctx, &model.CategoryCreate{Name: "Second", OrderIndex: 0})
		require.NoError(t, err)

		categories, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 3)
		assert.Equal(t, first.ID, categories[0].ID)
		assert.Equal(t, second.ID, categories[1].ID)
		assert.Equal(t, "Last", categories[2].Name)
	})

	t.Run("Update touches only the supplied fields", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		category, err := repo.Create(ctx, &model.CategoryCreate{Name: "Drinks", Description: "Cold and hot"})
		require.NoError(t, err)

		updated, err := repo.Update(ctx, category.ID, &model.CategoryUpdate{OrderIndex: intPtr(7)})
		require.NoError(t, err)
		assert.Equal(t, "Drinks", updated.Name)
		assert.Equal(t, "Cold and hot", updated.Description)
		assert.Equal(t, 7, updated.OrderIndex)
	})

	t.Run("Empty update is rejected", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		category, err := repo.Create(ctx, &model.CategoryCreate{Name: "Drinks"})
		require.NoError(t, err)

		_, err = repo.Update(ctx, category.ID, &model.CategoryUpdate{})
		assert.ErrorIs(t, err, model.ErrNoFieldsToUpdate)
	})

	t.Run("Update of a missing category returns nil", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		updated, err := repo.Update(ctx, 9999, &model.CategoryUpdate{Name: strPtr("Ghost")})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("Delete refuses while menu items reference the category", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		category, err := repo.Create(ctx, &model.CategoryCreate{Name: "Mains"})
		require.NoError(t, err)

		for _, name := range []string{"Borscht", "Pelmeni"} {
			_, err = itemRepo.Create(ctx, &model.MenuItemCreate{
				Name:       name,
				Price:      intPtr(450),
				CategoryID: intPtr(category.ID),
			})
			require.NoError(t, err)
		}

		_, err = repo.Delete(ctx, category.ID)
		require.Error(t, err)

		var depErr *model.DependentItemsError
		require.ErrorAs(t, err, &depErr)
		assert.Equal(t, 2, depErr.Count)

		// The category survived the refused delete.
		still, err := repo.GetByID(ctx, category.ID)
		require.NoError(t, err)
		require.NotNil(t, still)
	})

	t.Run("Delete succeeds once the category is empty", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		category, err := repo.Create(ctx, &model.CategoryCreate{Name: "Seasonal"})
		require.NoError(t, err)

		name, err := repo.Delete(ctx, category.ID)
		require.NoError(t, err)
		assert.Equal(t, "Seasonal", name)

		gone, err := repo.GetByID(ctx, category.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("Delete of a missing category fails", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		_, err := repo.Delete(ctx, 9999)
		assert.ErrorIs(t, err, model.ErrCategoryNotFound)
	})
}

func TestMenuItemRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	categoryRepo := repository.NewCategoryRepository(testDB.Pool, logger)
	repo := repository.NewMenuItemRepository(testDB.Pool, logger)

	ctx := context.Background()

	newCategory := func(t *testing.T, name string) *model.Category {
		t.Helper()
		category, err := categoryRepo.Create(ctx, &model.CategoryCreate{Name: name})
		require.NoError(t, err)
		return category
	}

	t.Run("Create defaults availability to true", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		category := newCategory(t, "Mains")

		item, err := repo.Create(ctx, &model.MenuItemCreate{
			Name:       "Borscht",
			Price:      intPtr(450),
			CategoryID: intPtr(category.ID),
		})
		require.NoError(t, err)
		assert.True(t, item.IsAvailable)
		assert.False(t, item.IsFeatured)
		assert.Equal(t, 450, item.Price)
	})

	t.Run("ListFeatured filters to featured and available", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		category := newCategory(t, "Mains")

		_, err := repo.Create(ctx, &model.MenuItemCreate{
			Name: "Plain", Price: intPtr(100), CategoryID: intPtr(category.ID),
		})
		require.NoError(t, err)
		_, err = repo.Create(ctx, &model.MenuItemCreate{
			Name: "Hidden special", Price: intPtr(200), CategoryID: intPtr(category.ID),
			IsFeatured: true, IsAvailable: boolPtr(false),
		})
		require.NoError(t, err)
		featured, err := repo.Create(ctx, &model.MenuItemCreate{
			Name: "Special", Price: intPtr(300), CategoryID: intPtr(category.ID),
			IsFeatured: true,
		})
		require.NoError(t, err)

		items, err := repo.ListFeatured(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, featured.ID, items[0].ID)
	})

	t.Run("Sequential partial updates union", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		category := newCategory(t, "Mains")

		item, err := repo.Create(ctx, &model.MenuItemCreate{
			Name: "Borscht", Price: intPtr(450), CategoryID: intPtr(category.ID),
		})
		require.NoError(t, err)

		_, err = repo.Update(ctx, item.ID, &model.MenuItemUpdate{Price: intPtr(500)})
		require.NoError(t, err)
		updated, err := repo.Update(ctx, item.ID, &model.MenuItemUpdate{
			HasDiscount:        boolPtr(true),
			DiscountPercentage: float64Ptr(10),
		})
		require.NoError(t, err)

		// Both updates are present.
		assert.Equal(t, 500, updated.Price)
		assert.True(t, updated.HasDiscount)
		assert.InDelta(t, 10, updated.DiscountPercentage, 0.001)
		assert.Equal(t, "Borscht", updated.Name)
	})

	t.Run("Concurrent disjoint updates union", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		category := newCategory(t, "Mains")

		item, err := repo.Create(ctx, &model.MenuItemCreate{
			Name: "Borscht", Price: intPtr(450), CategoryID: intPtr(category.ID),
		})
		require.NoError(t, err)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, errs[0] = repo.Update(ctx, item.ID, &model.MenuItemUpdate{Price: intPtr(500)})
		}()
		go func() {
			defer wg.Done()
			_, errs[1] = repo.Update(ctx, item.ID, &model.MenuItemUpdate{
				HasDiscount:        boolPtr(true),
				DiscountPercentage: float64Ptr(10),
			})
		}()
		wg.Wait()
		require.NoError(t, errs[0])
		require.NoError(t, errs[1])

		// Disjoint fields survive regardless of commit order.
		final, err := repo.GetByID(ctx, item.ID)
		require.NoError(t, err)
		require.NotNil(t, final)
		assert.Equal(t, 500, final.Price)
		assert.True(t, final.HasDiscount)
		assert.InDelta(t, 10, final.DiscountPercentage, 0.001)
		assert.Equal(t, "Borscht", final.Name)
	})

	t.Run("Delete returns the item name", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		category := newCategory(t, "Mains")

		item, err := repo.Create(ctx, &model.MenuItemCreate{
			Name: "Borscht", Price: intPtr(450), CategoryID: intPtr(category.ID),
		})
		require.NoError(t, err)

		name, err := repo.Delete(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, "Borscht", name)

		_, err = repo.Delete(ctx, item.ID)
		assert.ErrorIs(t, err, model.ErrMenuItemNotFound)
	})
}

func TestMenuImageRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	categoryRepo := repository.NewCategoryRepository(testDB.Pool, logger)
	itemRepo := repository.NewMenuItemRepository(testDB.Pool, logger)
	repo := repository.NewMenuImageRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("First image becomes main, later ones do not", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		category, err := categoryRepo.Create(ctx, &model.CategoryCreate{Name: "Mains"})
		require.NoError(t, err)
		item, err := itemRepo.Create(ctx, &model.MenuItemCreate{
			Name: "Borscht", Price: intPtr(450), CategoryID: intPtr(category.ID),
		})
		require.NoError(t, err)

		first, err := repo.Create(ctx, &model.MenuImage{
			MenuItemID: item.ID, ImageURL: "https://cdn.example.com/menu/1.jpg", PublicID: "menu/1.jpg",
		})
		require.NoError(t, err)
		assert.True(t, first.IsMain)

		second, err := repo.Create(ctx, &model.MenuImage{
			MenuItemID: item.ID, ImageURL: "https://cdn.example.com/menu/2.jpg", PublicID: "menu/2.jpg",
		})
		require.NoError(t, err)
		assert.False(t, second.IsMain)

		images, err := repo.ListByMenuItem(ctx, item.ID)
		require.NoError(t, err)
		require.Len(t, images, 2)
		assert.Equal(t, first.ID, images[0].ID, "main image sorts first")
	})
}

func TestContactRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	repo := repository.NewContactRepository(testDB.Pool, zerolog.Nop())

	ctx := context.Background()

	t.Run("Get returns nil before the first write", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		info, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Nil(t, info)
	})

	t.Run("Upsert creates then updates a single row", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		created, err := repo.Upsert(ctx, &model.ContactInfo{
			Phone:   "+7 900 000 00 00",
			Address: "Main Street 1",
			SocialLinks: model.SocialLinks{
				Instagram: "https://instagram.com/example",
				VK:        "https://vk.com/example",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "Main Street 1", created.Address)

		updated, err := repo.Upsert(ctx, &model.ContactInfo{
			Phone:   "+7 911 111 11 11",
			Address: "Main Street 2",
			SocialLinks: model.SocialLinks{
				Instagram: "https://instagram.com/example",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "Main Street 2", updated.Address)
		assert.Equal(t, "https://instagram.com/example", updated.SocialLinks.Instagram)
		assert.Empty(t, updated.SocialLinks.VK)

		var count int
		err = testDB.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM contact_info").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "contact info stays a singleton")
	})
}

func TestUserRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	repo := repository.NewUserRepository(testDB.Pool, zerolog.Nop())

	ctx := context.Background()

	t.Run("GetByEmail is case-insensitive", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		created, err := repo.Create(ctx, &model.User{
			Email:        "Admin@Example.com",
			PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
			FirstName:    "Admin",
			LastName:     "User",
			IsAdmin:      true,
		})
		require.NoError(t, err)

		user, err := repo.GetByEmail(ctx, "admin@example.COM")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, created.ID, user.ID)
		assert.True(t, user.IsAdmin)
	})
}

func TestStatsRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	categoryRepo := repository.NewCategoryRepository(testDB.Pool, logger)
	itemRepo := repository.NewMenuItemRepository(testDB.Pool, logger)
	repo := repository.NewStatsRepository(testDB.Pool, logger)

	ctx := context.Background()

	CleanupDB(t, testDB.Pool)

	category, err := categoryRepo.Create(ctx, &model.CategoryCreate{Name: "Mains"})
	require.NoError(t, err)

	_, err = itemRepo.Create(ctx, &model.MenuItemCreate{
		Name: "Borscht", Price: intPtr(450), CategoryID: intPtr(category.ID), IsFeatured: true,
	})
	require.NoError(t, err)
	_, err = itemRepo.Create(ctx, &model.MenuItemCreate{
		Name: "Pelmeni", Price: intPtr(380), CategoryID: intPtr(category.ID),
		IsAvailable: boolPtr(false), HasDiscount: true, DiscountPercentage: 15,
	})
	require.NoError(t, err)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalCategories)
	assert.Equal(t, 2, stats.TotalItems)
	assert.Equal(t, 1, stats.AvailableItems)
	assert.Equal(t, 1, stats.FeaturedItems)
	assert.Equal(t, 1, stats.ItemsWithDiscount)
	assert.Equal(t, 0, stats.TotalSiteImages)
	assert.Equal(t, 0, stats.TotalMenuImages)
}

func TestMigrationsTracked_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	ctx := context.Background()

	// Setup already migrated once; a rerun must skip applied versions.
	require.NoError(t, database.Migrate(ctx, testDB.Pool.Pool, zerolog.Nop()))

	var count int
	err := testDB.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRepositoryAcquireBound_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(testDB.ConnStr)
	require.NoError(t, err)
	poolConfig.MinConns = 1
	poolConfig.MaxConns = 1
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	require.NoError(t, err)
	defer pool.Close()

	repo := repository.NewCategoryRepository(
		database.NewDB(pool, 300*time.Millisecond), zerolog.Nop())

	// Hold the pool's only connection so the repository has to wait.
	conn, err := pool.Acquire(ctx)
	require.NoError(t, err)
	defer conn.Release()

	start := time.Now()
	_, err = repo.List(ctx)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, elapsed, 3*time.Second)
}

func float64Ptr(v float64) *float64 { return &v }
