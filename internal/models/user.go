package models

import "time"

type User struct {
	UserID       string    `json:"user_id" db:"user_id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	Phone        *string   `json:"phone,omitempty" db:"phone"`
	PasswordHash *string   `json:"-" db:"password_hash"`
	Role         UserRole  `json:"role" db:"role"`
	Picture      *string   `json:"picture,omitempty" db:"picture"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// PublicUser is the representation returned by the API.
type PublicUser struct {
	UserID  string   `json:"user_id"`
	Email   string   `json:"email"`
	Name    string   `json:"name"`
	Phone   *string  `json:"phone,omitempty"`
	Role    UserRole `json:"role"`
	Picture *string  `json:"picture,omitempty"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		UserID:  u.UserID,
		Email:   u.Email,
		Name:    u.Name,
		Phone:   u.Phone,
		Role:    u.Role,
		Picture: u.Picture,
	}
}
