package user

import (
	"BeerExpiryTracker/domain"
	"BeerExpiryTracker/entities"
	"BeerExpiryTracker/pkg/jwt"
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) error
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateDeviceToken(ctx context.Context, userID string, req domain.UpdateDeviceTokenRequest) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) error {
	taken, err := s.userRepository.UsernameExists(ctx, req.Username)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrUsernameTaken
	}

	used, err := s.userRepository.EmailExists(ctx, req.Email)
	if err != nil {
		return err
	}
	if used {
		return domain.ErrEmailUsed
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &entities.User{
		ID:          uuid.New(),
		Username:    req.Username,
		Email:       req.Email,
		Password:    string(hashed),
		DeviceToken: req.DeviceToken,
	}

	return s.userRepository.CreateUser(ctx, user)
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	if req.DeviceToken != "" && req.DeviceToken != user.DeviceToken {
		user.DeviceToken = req.DeviceToken
		if err := s.userRepository.UpdateUser(ctx, user); err != nil {
			return domain.LoginResponse{}, err
		}
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleUser)

	return domain.LoginResponse{
		Token:    token,
		UserID:   user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return domain.UserResponse{
		ID:          user.ID.String(),
		Username:    user.Username,
		Email:       user.Email,
		DeviceToken: user.DeviceToken,
	}, nil
}

func (s *userService) UpdateDeviceToken(ctx context.Context, userID string, req domain.UpdateDeviceTokenRequest) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.DeviceToken = req.DeviceToken
	return s.userRepository.UpdateUser(ctx, user)
}
