package models

// ItemImage references a stored image file by its generated name.
type ItemImage struct {
	ID uint `gorm:"primaryKey"`
	Base
	Image  string `gorm:"size:40;not null"`
	ItemID uint   `gorm:"not null;index"`

	Item *Item `gorm:"foreignKey:ItemID"`
}
