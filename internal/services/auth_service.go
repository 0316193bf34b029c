package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidPasscode = errors.New("invalid passcode")

const adminSubject = "admin"

// AuthService guards the admin console with a single shared passcode.
type AuthService struct {
	passcodeHash []byte
	jwtSecret    []byte
	logger       *logrus.Logger
	now          func() time.Time
}

// NewAuthService hashes the configured passcode. The plain passcode is not
// kept.
func NewAuthService(passcode, jwtSecret string, logger *logrus.Logger) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash passcode: %w", err)
	}
	return &AuthService{
		passcodeHash: hash,
		jwtSecret:    []byte(jwtSecret),
		logger:       logger,
		now:          time.Now,
	}, nil
}

// Login checks the passcode and returns an admin token. Tokens do not
// expire; the admin session lasts until the client drops the token.
func (s *AuthService) Login(passcode string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.passcodeHash, []byte(passcode)); err != nil {
		s.logger.Warn("Admin login rejected")
		return "", ErrInvalidPasscode
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": adminSubject,
		"iat": s.now().Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("Admin logged in")
	return tokenString, nil
}

// ValidateToken parses and validates an admin token, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid || claims["sub"] != adminSubject {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
