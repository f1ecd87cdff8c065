package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"moviehub-backend/internal/apperr"
	"moviehub-backend/internal/models"
	"moviehub-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned by Login for a wrong username or
// password. Handlers translate it to 401.
var ErrInvalidCredentials = errors.New("invalid credentials")

type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (token string, err error)
	Login(ctx context.Context, username, password string) (token string, err error)
	VerifyToken(token string) (username string, err error)
}

type authService struct {
	userRepo repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
	logger   *logrus.Logger
}

func NewAuthService(userRepo repository.UserRepository, secret string, tokenTTL time.Duration, logger *logrus.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (string, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if len(req.Username) < 2 || len(req.Username) > 50 {
		return "", apperr.Validationf("username length must be in range of 2 to 50")
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return "", apperr.Validationf("a valid email address is required")
	}
	if len(req.Password) < 8 {
		return "", apperr.Validationf("password must be at least 8 characters long")
	}
	if req.Password != req.ConfirmPassword {
		return "", apperr.Validationf("passwords do not match")
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return "", err
	}
	if exists {
		return "", apperr.Conflictf("username %q already taken", req.Username)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Roles:    []models.Role{{Name: "USER"}},
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	s.logger.WithField("username", user.Username).Info("User registered")
	return s.generateToken(user.Username)
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
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

	return s.generateToken(user.Username)
}

func (s *authService) generateToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// VerifyToken parses a bearer token and returns the subject username.
func (s *authService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidCredentials
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidCredentials
	}
	return sub, nil
}
