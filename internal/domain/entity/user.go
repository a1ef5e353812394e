package entity

import (
	"time"
)

// User is the identity record created at registration. Password holds a
// bcrypt hash and is never serialized.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	AvatarURL string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
	UpdatedAt time.Time `json:"-"`
}
