package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sossut/adp2/internal/config"
	"github.com/sossut/adp2/internal/model"
)

// AuthService handles admin and housing-company owner authentication
type AuthService struct {
	adminUsername string
	adminPassword string
	jwtSecret     []byte
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		adminUsername: cfg.AdminUsername,
		adminPassword: cfg.AdminPassword,
		jwtSecret:     []byte(cfg.JWTSecret),
	}
}

// LoginAdmin validates the admin credentials and returns a token
func (s *AuthService) LoginAdmin(username, password string) (*model.LoginResponse, error) {
	if username != s.adminUsername || password != s.adminPassword {
		return nil, ErrInvalidCredentials
	}

	userID := "admin_" + uuid.New().String()[:8]
	token, err := s.sign(userID, model.RoleAdmin)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:  token,
		UserID: userID,
		Role:   model.RoleAdmin,
	}, nil
}

// GenerateOwnerToken creates a token for a housing-company owner
func (s *AuthService) GenerateOwnerToken(ownerID string) (string, error) {
	return s.sign(ownerID, model.RoleOwner)
}

func (s *AuthService) sign(userID, role string) (string, error) {
	claims := &model.UserClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken validates a JWT and returns its claims
func (s *AuthService) ValidateToken(tokenString string) (*model.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.UserClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
