package services

import (
	"context"
	"fmt"
	"time"

	"tokoadmin/internal/models"
	"tokoadmin/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// AuthService is the identity provider of the dashboard: it registers users,
// issues JWTs on login and resolves a bearer token back to a caller identity.
type AuthService struct {
	userRepo repositories.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

// DefaultTokenTTL is used when NewAuthService is given a non-positive TTL.
const DefaultTokenTTL = 24 * time.Hour

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &AuthService{
		userRepo: userRepo,
		secret:   []byte(jwtSecret),
		tokenTTL: tokenTTL,
	}
}

// RegisterUser hashes the user's password and stores the account. A taken
// username or email is reported as a *ConflictError.
func (s *AuthService) RegisterUser(ctx context.Context, user *models.User) error {
	field, err := s.userRepo.Conflict(ctx, user.Username, user.Email)
	if err != nil {
		return err
	}
	switch field {
	case "username":
		return &ConflictError{Field: field, Value: user.Username}
	case "email":
		return &ConflictError{Field: field, Value: user.Email}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)

	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	zlog.Info().Str("user_id", user.ID).Msg("user registered")
	return nil
}

// LoginUser checks the credentials and returns a signed token carrying the
// user's ID.
func (s *AuthService) LoginUser(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
		"iat":      time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		zlog.Debug().Err(err).Msg("token validation failed")
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// Identify resolves a bearer token to the caller's user ID. It returns ""
// for any token that is missing, malformed, expired or lacks a user_id claim.
func (s *AuthService) Identify(tokenString string) string {
	if tokenString == "" {
		return ""
	}
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return ""
	}
	userID, _ := claims["user_id"].(string)
	return userID
}
