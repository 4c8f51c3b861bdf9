package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

type User struct {
	ID       string    `gorm:"primaryKey;size:24" json:"_id"`
	Name     string    `json:"name"`
	Email    string    `gorm:"not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	CartData CartData  `gorm:"serializer:json" json:"cartData"`
	Date     time.Time `json:"date"`
}

// BeforeCreate gives relational rows the same ObjectID-shaped ids the
// document store hands out, so tokens look alike on both backends.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = primitive.NewObjectID().Hex()
	}
	if u.Date.IsZero() {
		u.Date = time.Now()
	}
	return nil
}
