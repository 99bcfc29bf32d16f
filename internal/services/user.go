package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/maitriparekhcs2848/GearGuard/internal/dto"
	"github.com/maitriparekhcs2848/GearGuard/internal/entities"
	"github.com/maitriparekhcs2848/GearGuard/internal/repositories"
	apperrors "github.com/maitriparekhcs2848/GearGuard/pkg/errors"
	"github.com/maitriparekhcs2848/GearGuard/pkg/service"
	"github.com/maitriparekhcs2848/GearGuard/pkg/utils"
)

type UserServiceInterface interface {
	Signup(ctx context.Context, payload dto.SignupDTO) (*dto.AuthResponseDTO, error)
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error)
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	jwtSvc   service.JWTService
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepositoryInterface, jwtSvc service.JWTService, logger *zap.Logger) *UserService {
	return &UserService{userRepo: userRepo, jwtSvc: jwtSvc, logger: logger}
}

func (s *UserService) Signup(ctx context.Context, payload dto.SignupDTO) (*dto.AuthResponseDTO, error) {
	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	user := entities.User{
		ID:           uuid.NewString(),
		Email:        payload.Email,
		Name:         payload.Name,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("user registered", zap.String("userId", user.ID))

	return s.tokensFor(user)
}

func (s *UserService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		// A missing user and a bad password look identical to the caller.
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := utils.CheckPassword(user.PasswordHash, payload.Password); err != nil {
		return nil, err
	}

	return s.tokensFor(*user)
}

func (s *UserService) tokensFor(user entities.User) (*dto.AuthResponseDTO, error) {
	access, refresh, err := s.jwtSvc.GenerateTokens(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponseDTO{
		User:         dto.NewUserDTO(user),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
