package services

import (
	"context"
	"time"

	"shop-api/models"
	"shop-api/utils"
)

type AuthService struct {
	userStore UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(userStore UserStore, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{
		userStore: userStore,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	existing, err := s.userStore.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(s.jwtSecret, s.jwtExpiry, user.ID.Hex(), user.Email)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userStore.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(s.jwtSecret, s.jwtExpiry, user.ID.Hex(), user.Email)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}
