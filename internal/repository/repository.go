package repository

import (
	"context"

	"restaurant-hub/internal/model"
)

// CategoryRepository defines data access operations for menu categories.
type CategoryRepository interface {
	// List retrieves all categories ordered by (order_index, id).
	List(ctx context.Context) ([]model.Category, error)

	// GetByID retrieves a single category, or nil when absent.
	GetByID(ctx context.Context, id int) (*model.Category, error)

	// Create inserts a new category and returns the stored row.
	Create(ctx context.Context, in *model.CategoryCreate) (*model.Category, error)

	// Update writes only the supplied fields and returns the stored
	// row, or nil when the category does not exist. An empty field set
	// fails with model.ErrNoFieldsToUpdate.
	Update(ctx context.Context, id int, in *model.CategoryUpdate) (*model.Category, error)

	// Delete removes a category after verifying it exists and has no
	// dependent menu items. Fails with model.ErrCategoryNotFound or
	// *model.DependentItemsError. Returns the deleted category's name.
	Delete(ctx context.Context, id int) (string, error)
}

// MenuItemRepository defines data access operations for menu items.
type MenuItemRepository interface {
	// List retrieves all menu items, newest first.
	List(ctx context.Context) ([]model.MenuItem, error)

	// ListFeatured retrieves featured, available items, newest first.
	ListFeatured(ctx context.Context) ([]model.MenuItem, error)

	// GetByID retrieves a single menu item, or nil when absent.
	GetByID(ctx context.Context, id int) (*model.MenuItem, error)

	// Create inserts a new menu item and returns the stored row.
	Create(ctx context.Context, in *model.MenuItemCreate) (*model.MenuItem, error)

	// Update writes only the supplied fields and returns the stored
	// row, or nil when the item does not exist. An empty field set
	// fails with model.ErrNoFieldsToUpdate.
	Update(ctx context.Context, id int, in *model.MenuItemUpdate) (*model.MenuItem, error)

	// Delete removes a menu item after verifying it exists. Fails with
	// model.ErrMenuItemNotFound. Returns the deleted item's name.
	Delete(ctx context.Context, id int) (string, error)
}

// ContactRepository defines data access for the contact-info singleton.
type ContactRepository interface {
	// Get retrieves the singleton record, or nil when none exists yet.
	Get(ctx context.Context) (*model.ContactInfo, error)

	// Upsert replaces the singleton record, creating it on first write.
	Upsert(ctx context.Context, in *model.ContactInfo) (*model.ContactInfo, error)
}

// SiteImageRepository defines data access operations for site images.
type SiteImageRepository interface {
	// List retrieves all site images, newest first.
	List(ctx context.Context) ([]model.SiteImage, error)

	// GetByID retrieves a single site image, or nil when absent.
	GetByID(ctx context.Context, id int) (*model.SiteImage, error)

	// Create inserts a new site image record and returns the stored row.
	Create(ctx context.Context, img *model.SiteImage) (*model.SiteImage, error)

	// Delete removes a site image record. Fails with model.ErrImageNotFound.
	Delete(ctx context.Context, id int) error
}

// MenuImageRepository defines data access operations for menu-item images.
type MenuImageRepository interface {
	// ListByMenuItem retrieves an item's images, main image first.
	ListByMenuItem(ctx context.Context, menuItemID int) ([]model.MenuImage, error)

	// Create inserts a new menu image record. The first image stored
	// for a menu item is flagged main automatically.
	Create(ctx context.Context, img *model.MenuImage) (*model.MenuImage, error)
}

// UserRepository defines data access operations for user accounts.
type UserRepository interface {
	// GetByEmail retrieves a user by case-insensitive email, or nil
	// when absent.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByID retrieves a user by id, or nil when absent.
	GetByID(ctx context.Context, id int) (*model.User, error)

	// Create inserts a new user and returns the stored row.
	Create(ctx context.Context, user *model.User) (*model.User, error)
}

// StatsRepository provides the dashboard counters.
type StatsRepository interface {
	// Stats retrieves content counts for the admin dashboard.
	Stats(ctx context.Context) (*model.DashboardStats, error)
}
