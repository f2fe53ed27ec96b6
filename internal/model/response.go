package model

// Response is the uniform JSON envelope for every API response.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	User    any    `json:"user,omitempty"`
}

// DashboardStats carries the admin dashboard counters.
type DashboardStats struct {
	TotalCategories   int `json:"totalCategories"`
	TotalItems        int `json:"totalItems"`
	AvailableItems    int `json:"availableItems"`
	FeaturedItems     int `json:"featuredItems"`
	ItemsWithDiscount int `json:"itemsWithDiscount"`
	TotalSiteImages   int `json:"totalSiteImages"`
	TotalMenuImages   int `json:"totalMenuImages"`
}
