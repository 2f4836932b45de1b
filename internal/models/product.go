package models

// Product represents a product listed in the catalog.
type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description" gorm:"not null"`
	Price       float64 `json:"price" gorm:"not null"`
	ImageURL    string  `json:"imageUrl" gorm:"not null"`
}

// ProductCandidate is the request shape for creating a product.
// Price is a pointer so an absent price can be told apart from a
// legitimate price of 0.
type ProductCandidate struct {
	Name        string   `json:"name" validate:"notblank"`
	Description string   `json:"description" validate:"notblank"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	ImageURL    string   `json:"imageUrl" validate:"notblank,imageurl"`
}
