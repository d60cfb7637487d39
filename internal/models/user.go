package models

import "time"

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"nome" gorm:"size:200;not null"`
	Email     string    `json:"email" gorm:"size:200;not null;uniqueIndex"` // Ensure email is unique across all users
	Password  string    `json:"-" gorm:"size:300;not null"`                 // bcrypt hash, never serialized
	CreatedAt time.Time `json:"criado_em"`
}

type RegisterRequest struct {
	Name     string `json:"nome" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email,max=200"`
	Password string `json:"senha" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required"`
}

// LoginFormRequest is the OAuth2 password-form shape: username carries the email.
type LoginFormRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// UserSummary is the public view used in follower listings.
type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
}

// UserProfile adds read-time counts to the public user view.
type UserProfile struct {
	ID             uint      `json:"id"`
	Name           string    `json:"nome"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"criado_em"`
	FollowersCount int64     `json:"seguidores_count"`
	FollowingCount int64     `json:"seguindo_count"`
	CommentsCount  int64     `json:"comentarios_count"`
	PollsCount     int64     `json:"enquetes_count"`
}
