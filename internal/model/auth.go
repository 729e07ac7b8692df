package model

import "github.com/golang-jwt/jwt/v5"

// Roles carried in tokens
const (
	RoleAdmin = "admin"
	RoleOwner = "owner"
)

// UserClaims are the JWT claims for admin and housing-company owner tokens
type UserClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for POST /v1/auth/login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Role   string `json:"role"`
}
