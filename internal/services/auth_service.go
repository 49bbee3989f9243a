package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/internal/repository"
	"github.com/Amadoujf/nouveauyama/utils"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users    *repository.UserRepository
	sessions repository.SessionRepository
	jwt      *JWTService
}

func NewAuthService(users *repository.UserRepository, sessions repository.SessionRepository, jwt *JWTService) *AuthService {
	return &AuthService{users: users, sessions: sessions, jwt: jwt}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	hashStr := string(hash)
	user := &models.User{
		UserID:       utils.GenerateEntityID("user_", 12, false),
		Email:        req.Email,
		Name:         req.Name,
		Phone:        req.Phone,
		PasswordHash: &hashStr,
		Role:         models.RoleCustomer,
		CreatedAt:    time.Now(),
	}

	if err := s.users.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.openSession(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.User, string, error) {
	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if err == models.ErrNotFound {
			return nil, "", models.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if user.PasswordHash == nil {
		return nil, "", models.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", models.ErrInvalidCredentials
	}

	token, err := s.openSession(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) ListUsers(limit, skip int) ([]models.User, error) {
	return s.users.List(limit, skip)
}

func (s *AuthService) GetUser(userID string) (*models.User, error) {
	return s.users.GetByID(userID)
}

// Logout revokes the session behind the token id. The JWT itself stays valid
// until expiry, so the middleware checks the session store.
func (s *AuthService) Logout(ctx context.Context, tokenID string) error {
	return s.sessions.DeleteSession(ctx, tokenID)
}

// IsSessionActive reports whether the token id still maps to a live session.
func (s *AuthService) IsSessionActive(ctx context.Context, tokenID string) bool {
	_, err := s.sessions.GetSession(ctx, tokenID)
	return err == nil
}

func (s *AuthService) openSession(ctx context.Context, user *models.User) (string, error) {
	token, tokenID, err := s.jwt.GenerateToken(user)
	if err != nil {
		return "", err
	}

	session := &repository.AuthSession{
		TokenID: tokenID,
		UserID:  user.UserID,
		Role:    string(user.Role),
	}
	if err := s.sessions.CreateSession(ctx, session, s.jwt.Expiry()); err != nil {
		return "", fmt.Errorf("failed to open session: %w", err)
	}

	return token, nil
}
