package models

import (
	"time"

	"lostandfound/app/authctx"

	"gorm.io/gorm"
)

// Base carries the audit fields shared by every persisted entity. Active
// doubles as the soft-delete flag: inactive records are treated as absent
// by every read path.
type Base struct {
	Active      bool      `gorm:"not null;default:true"`
	CreatedOn   time.Time `gorm:"autoCreateTime"`
	UpdatedOn   time.Time `gorm:"autoUpdateTime"`
	CreatedByID *uint     `gorm:"index"`
	UpdatedByID *uint
}

// BeforeCreate stamps the acting identity from the request context. A nil
// actor means the write was unauthenticated.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	b.Active = true
	actor := authctx.ActorID(tx.Statement.Context)
	b.CreatedByID = actor
	b.UpdatedByID = actor
	return nil
}

func (b *Base) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedByID = authctx.ActorID(tx.Statement.Context)
	return nil
}
