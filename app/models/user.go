package models

const (
	RoleAdmin   = "admin"
	RoleRegular = "regular"
)

// ValidRole reports whether role is part of the closed enumeration.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleRegular
}

type User struct {
	ID uint `gorm:"primaryKey"`
	Base
	Name     string `gorm:"size:200;not null"`
	Email    string `gorm:"uniqueIndex;size:191;not null"`
	Password string `gorm:"size:255;not null"`
	Role     string `gorm:"size:32;not null"`
}
