package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/foodieapp/backend/internal/middleware"
	"github.com/foodieapp/backend/internal/model"
)

// AuthService is a deliberate stub: the only account is the built-in
// sample user. It exists so the identity collaborator (ownership
// stamping and my-food filtering) has a real token path to flow
// through.
type AuthService struct {
	jwtSecret    []byte
	user         model.User
	passwordHash []byte
}

// NewAuthService creates the stub with the sample user and the given
// plaintext password, hashed at construction.
func NewAuthService(jwtSecret, password string) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash sample password: %w", err)
	}
	return &AuthService{
		jwtSecret:    []byte(jwtSecret),
		user:         model.SampleUser(),
		passwordHash: hash,
	}, nil
}

// User returns the built-in user.
func (s *AuthService) User() model.User {
	return s.user
}

// Login checks the credentials against the built-in user and returns a
// signed session token.
func (s *AuthService) Login(email, password string) (string, error) {
	if email != s.user.Email {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.generateToken()
}

func (s *AuthService) generateToken() (string, error) {
	claims := jwt.MapClaims{
		"user_id": s.user.ID,
		"name":    s.user.Name,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken parses and verifies a session token.
func (s *AuthService) ValidateToken(tokenString string) (*middleware.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("invalid user_id claim")
	}
	name, _ := claims["name"].(string)

	return &middleware.TokenClaims{UserID: userID, Name: name}, nil
}
