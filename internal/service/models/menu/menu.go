package menu

import "time"

// Category groups menu items on the ordering screen.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Position    int       `json:"position"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Items       []Item    `json:"items"`
}

// Item is a sellable menu entry. Price is in integer minor currency units.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"priceCents"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CategoryID  int64     `json:"categoryId"`
	IsActive    bool      `json:"isActive"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
