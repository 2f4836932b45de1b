package models

// User represents a registered user. It is an inert data shape for now:
// it is auto-migrated with the rest of the schema but has no service,
// repository, or handler attached yet.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"not null" validate:"required"`
	Password string `gorm:"not null" validate:"required,containsany=@&$%^*#!?"` // No json tag for security
	Email    string `json:"email" gorm:"not null" validate:"required,email"`
	Role     string `json:"role"`
	Phone    string `json:"phone" gorm:"not null" validate:"required,len=10,numeric"`
}
