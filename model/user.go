package model

import "github.com/muhammadheryan/micromarket/constant"

// User is the profile cached alongside the bearer token.
type User struct {
	ID        string        `json:"id"`
	Email     string        `json:"email"`
	Name      string        `json:"name"`
	Role      constant.Role `json:"user_type"`
	CreatedAt Timestamp     `json:"created_at"`
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Name     string        `json:"name" validate:"required"`
	Email    string        `json:"email" validate:"required,email"`
	Password string        `json:"password" validate:"required"`
	Role     constant.Role `json:"user_type" validate:"required,oneof=vendor supplier"`
}

// LoginRequest for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned by both login and register.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// SessionView is what the gateway renders for the current session.
type SessionView struct {
	Authenticated bool          `json:"authenticated"`
	User          *User         `json:"user,omitempty"`
	View          constant.View `json:"view"`
	Submitting    bool          `json:"submitting"`
}

// MessageResponse is the acknowledgement body of most mutations.
type MessageResponse struct {
	Message string `json:"message"`
}
