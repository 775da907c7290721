package models

import "time"

// Project is a house template from the sales catalog. Rows are seeded at
// bootstrap and never mutated through the API.
type Project struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:500;not null" json:"description"`
	Price       float64 `gorm:"type:decimal(18,2)" json:"price"`

	ImageURL string `gorm:"size:200;not null" json:"imageUrl"`
	PlanURL  string `gorm:"size:200" json:"planUrl"`

	Specifications string `gorm:"size:200;not null" json:"specifications"`
	Area           int    `json:"area"`
	Bedrooms       int    `json:"bedrooms"`
	Bathrooms      int    `json:"bathrooms"`

	CreatedAt time.Time `json:"createdAt"`
}
