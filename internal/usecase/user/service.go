package user

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/natylliB/forum-api/domain"
)

type Service struct {
	userRepo  domain.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

var _ domain.UserUsecase = (*Service)(nil)

// NewService will create a new user service object
func NewService(u domain.UserRepository, jwtSecret string, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:  u,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

func (s *Service) Register(ctx context.Context, username, fullname, password string) (string, error) {
	_, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return "", domain.ErrConflict
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	u := &domain.User{
		ID:       "user-" + uuid.NewString(),
		Username: username,
		Fullname: fullname,
		Password: string(hashed),
		Date:     time.Now(),
	}
	if err := s.userRepo.Insert(ctx, u); err != nil {
		return "", err
	}
	return u.ID, nil
}

func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", domain.ErrBadParamInput
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      u.ID,
		"username": u.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}
