package model

import "time"

// Category groups menu items on the public site.
type Category struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OrderIndex  int       `json:"orderIndex"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryCreate is the input for creating a category. OrderIndex
// defaults to 0 when omitted.
type CategoryCreate struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	OrderIndex  int    `json:"orderIndex"`
}

// CategoryUpdate is a partial update; only non-nil fields are written.
type CategoryUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"orderIndex"`
}

// IsEmpty reports whether no fields were supplied.
func (u *CategoryUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.OrderIndex == nil
}
