package model

import "time"

// MenuItem is a single dish on the menu. Price fields are whole
// currency units; DiscountPercentage is fractional.
type MenuItem struct {
	ID                 int       `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Details            string    `json:"details"`
	Price              int       `json:"price"`
	OriginalPrice      int       `json:"originalPrice"`
	CategoryID         int       `json:"categoryId"`
	IsAvailable        bool      `json:"isAvailable"`
	IsFeatured         bool      `json:"isFeatured"`
	HasDiscount        bool      `json:"hasDiscount"`
	DiscountPercentage float64   `json:"discountPercentage"`
	ImageURL           string    `json:"imageUrl"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// MenuItemCreate is the input for creating a menu item.
type MenuItemCreate struct {
	Name               string  `json:"name" validate:"required"`
	Description        string  `json:"description"`
	Details            string  `json:"details"`
	Price              *int    `json:"price" validate:"required"`
	OriginalPrice      int     `json:"originalPrice"`
	CategoryID         *int    `json:"categoryId" validate:"required"`
	IsAvailable        *bool   `json:"isAvailable"`
	IsFeatured         bool    `json:"isFeatured"`
	HasDiscount        bool    `json:"hasDiscount"`
	DiscountPercentage float64 `json:"discountPercentage"`
	ImageURL           string  `json:"imageUrl"`
}

// MenuItemUpdate is a partial update; only non-nil fields are written.
type MenuItemUpdate struct {
	Name               *string  `json:"name"`
	Description        *string  `json:"description"`
	Details            *string  `json:"details"`
	Price              *int     `json:"price"`
	OriginalPrice      *int     `json:"originalPrice"`
	CategoryID         *int     `json:"categoryId"`
	IsAvailable        *bool    `json:"isAvailable"`
	IsFeatured         *bool    `json:"isFeatured"`
	HasDiscount        *bool    `json:"hasDiscount"`
	DiscountPercentage *float64 `json:"discountPercentage"`
	ImageURL           *string  `json:"imageUrl"`
}

// IsEmpty reports whether no fields were supplied.
func (u *MenuItemUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Details == nil &&
		u.Price == nil && u.OriginalPrice == nil && u.CategoryID == nil &&
		u.IsAvailable == nil && u.IsFeatured == nil && u.HasDiscount == nil &&
		u.DiscountPercentage == nil && u.ImageURL == nil
}
