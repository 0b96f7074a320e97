package models

const (
	ReasonLookingFor = "looking_for"
	ReasonFound      = "found"
)

const (
	LookingForLost   = "lost"
	LookingForStolen = "stolen"
	LookingForOther  = "other"
)

func ValidReason(reason string) bool {
	return reason == ReasonLookingFor || reason == ReasonFound
}

func ValidLookingForReason(reason string) bool {
	switch reason {
	case LookingForLost, LookingForStolen, LookingForOther:
		return true
	}
	return false
}

// Item is a lost-or-found report. The check constraint requires a
// looking_for_reason whenever reason is looking_for; a found item may
// still carry one, which is deliberate.
type Item struct {
	ID uint `gorm:"primaryKey"`
	Base
	Name             string  `gorm:"size:200;not null"`
	Slug             string  `gorm:"uniqueIndex;size:56;not null"`
	Description      string  `gorm:"size:1000;not null"`
	CategoryID       *uint   `gorm:"index"`
	Reason           string  `gorm:"size:32;not null;index;check:ck_item_looking_for_reason,NOT (reason = 'looking_for' AND looking_for_reason IS NULL)"`
	LookingForReason *string `gorm:"size:32"`

	Category *Category `gorm:"foreignKey:CategoryID"`
}
