package models

// SlugMaxLength bounds slug columns, random suffix included.
const SlugMaxLength = 56

type Category struct {
	ID uint `gorm:"primaryKey"`
	Base
	Name             string `gorm:"size:100;not null"`
	Slug             string `gorm:"uniqueIndex;size:56;not null"`
	ParentCategoryID *uint  `gorm:"index"`

	ParentCategory *Category `gorm:"foreignKey:ParentCategoryID"`
}
