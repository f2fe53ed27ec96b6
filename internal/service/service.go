package service

import (
	"context"
	"io"

	"restaurant-hub/internal/model"
	"restaurant-hub/internal/realtime"
)

// Publisher broadcasts a content change to connected subscribers.
// Satisfied by *realtime.Hub.
type Publisher interface {
	Publish(eventType string, action realtime.Action, payload any)
}

// CategoryService defines operations for menu category management.
type CategoryService interface {
	// List retrieves all categories in display order.
	List(ctx context.Context) ([]model.Category, error)

	// Create validates and stores a new category.
	Create(ctx context.Context, in *model.CategoryCreate) (*model.Category, error)

	// Update applies a partial update to an existing category.
	Update(ctx context.Context, id int, in *model.CategoryUpdate) (*model.Category, error)

	// Delete removes a category that has no dependent menu items.
	Delete(ctx context.Context, id int) error
}

// MenuItemService defines operations for menu item management.
type MenuItemService interface {
	// List retrieves all menu items.
	List(ctx context.Context) ([]model.MenuItem, error)

	// ListFeatured retrieves featured items that are available.
	ListFeatured(ctx context.Context) ([]model.MenuItem, error)

	// GetByID retrieves a single menu item.
	GetByID(ctx context.Context, id int) (*model.MenuItem, error)

	// Create validates and stores a new menu item.
	Create(ctx context.Context, in *model.MenuItemCreate) (*model.MenuItem, error)

	// Update applies a partial update to an existing menu item.
	Update(ctx context.Context, id int, in *model.MenuItemUpdate) (*model.MenuItem, error)

	// Delete removes a menu item.
	Delete(ctx context.Context, id int) error
}

// ContactService defines operations for the contact-info singleton.
type ContactService interface {
	// Get retrieves the current contact info, or nil when unset.
	Get(ctx context.Context) (*model.ContactInfo, error)

	// Save replaces the contact info, creating it on first write.
	Save(ctx context.Context, in *model.ContactInfo) (*model.ContactInfo, error)
}

// ImageService defines operations for hosted images.
type ImageService interface {
	// ListSiteImages retrieves all site images.
	ListSiteImages(ctx context.Context) ([]model.SiteImage, error)

	// UploadSiteImage stores the file and records the site image.
	UploadSiteImage(ctx context.Context, body io.Reader, filename string, meta *model.SiteImageUpload) (*model.SiteImage, error)

	// DeleteSiteImage removes a site image record and its stored object.
	DeleteSiteImage(ctx context.Context, id int) error

	// ListMenuImages retrieves a menu item's images, main image first.
	ListMenuImages(ctx context.Context, menuItemID int) ([]model.MenuImage, error)

	// UploadMenuImage stores the file and records the menu image. The
	// first image for an item becomes its main image.
	UploadMenuImage(ctx context.Context, menuItemID int, body io.Reader, filename string) (*model.MenuImage, error)
}

// AuthService defines session authentication operations.
type AuthService interface {
	// Login verifies credentials and returns the matching user.
	Login(ctx context.Context, creds *model.Credentials) (*model.User, error)

	// EnsureAdmin creates the bootstrap admin account when no user with
	// the given email exists.
	EnsureAdmin(ctx context.Context, email, password string) error
}

// StatsService provides the dashboard counters.
type StatsService interface {
	// Stats retrieves content counts for the admin dashboard.
	Stats(ctx context.Context) (*model.DashboardStats, error)
}
