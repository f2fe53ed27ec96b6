package model

import "time"

// SiteImage is a hosted image used on the public site (hero, gallery,
// logo and so on).
type SiteImage struct {
	ID          int       `json:"id"`
	ImageType   string    `json:"image_type"`
	ImageURL    string    `json:"image_url"`
	PublicID    string    `json:"public_id"`
	AltText     string    `json:"alt_text"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SiteImageUpload is the metadata accompanying a site image upload.
type SiteImageUpload struct {
	ImageType   string `json:"image_type" validate:"required"`
	AltText     string `json:"alt_text"`
	Description string `json:"description"`
}

// UploadResult identifies a stored object: the URL it is served from
// and the public ID needed to delete it.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// MenuImage is a hosted image attached to a menu item. The first image
// uploaded for an item becomes its main image.
type MenuImage struct {
	ID         int       `json:"id"`
	MenuItemID int       `json:"menuItemId"`
	ImageURL   string    `json:"imageUrl"`
	PublicID   string    `json:"publicId"`
	IsMain     bool      `json:"isMain"`
	CreatedAt  time.Time `json:"createdAt"`
}
