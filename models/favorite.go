package models

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks a country as favorite for one visitor.
type Favorite struct {
	OwnerID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"owner_id"`
	Code      string    `gorm:"type:varchar(2);primaryKey" json:"code"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for Favorite model
func (*Favorite) TableName() string {
	return "favorites"
}

// Validate performs validation on the favorite model
func (f *Favorite) Validate() error {
	if f.OwnerID == uuid.Nil {
		return ErrInvalidVisitorID
	}
	if !IsCountryCode(f.Code) {
		return ErrInvalidCountryCode
	}
	return nil
}
