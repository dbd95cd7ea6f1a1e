package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type UserService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	GetUsers(ctx context.Context) ([]*entity.User, error)
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	UpdateUser(ctx context.Context, id string, req *request.UpdateUserRequest) (*entity.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type userService struct {
	users  repository.UserRepository
	config *utils.Config
	log    *zap.Logger
}

func NewUserService(users repository.UserRepository, config *utils.Config, log *zap.Logger) UserService {
	return &userService{
		users:  users,
		config: config,
		log:    log.With(zap.String("service", "user")),
	}
}

func (s *userService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Emails are stored lowercased so lookups stay case-insensitive.
	email := strings.ToLower(req.Email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email %s already registered", email)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := entity.RoleUser
	if req.Role == string(entity.RoleAdmin) {
		role = entity.RoleAdmin
	}

	now := time.Now()
	user := &entity.User{
		Base:        entity.Base{CreatedAt: now, UpdatedAt: now},
		Name:        req.Name,
		Email:       email,
		Password:    hashed,
		Role:        role,
		Preferences: req.Prefs,
		Status:      entity.UserStatusActive,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsDuplicateErr(err) {
			return nil, fmt.Errorf("email %s already registered", email)
		}
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID.Hex(), s.config.JWT.Secret, s.config.JWT.ExpiryHours)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.log.Info("User registered", zap.String("user_id", user.ID.Hex()), zap.String("email", user.Email))
	return response.NewAuthResponse(user, token), nil
}

func (s *userService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.Password) {
		return nil, fmt.Errorf("invalid credentials")
	}

	if user.Status == entity.UserStatusBlocked {
		return nil, fmt.Errorf("account is blocked")
	}

	token, err := utils.GenerateToken(user.ID.Hex(), s.config.JWT.Secret, s.config.JWT.ExpiryHours)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.Hex()))
	return response.NewAuthResponse(user, token), nil
}

func (s *userService) GetUsers(ctx context.Context) ([]*entity.User, error) {
	return s.users.FindAll(ctx)
}

func (s *userService) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format: %s", id)
	}

	user, err := s.users.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", id)
	}

	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, req *request.UpdateUserRequest) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format: %s", id)
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	update := bson.M{}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Role != nil {
		update["role"] = *req.Role
	}
	if req.Status != nil {
		update["status"] = *req.Status
	}
	if req.Preferences != nil {
		update["preferences"] = *req.Preferences
	}

	if len(update) == 0 {
		return s.GetUserByID(ctx, id)
	}
	update["updated_at"] = time.Now()

	user, err := s.users.Update(ctx, oid, update)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", id)
	}

	s.log.Info("User updated", zap.String("user_id", id))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid user ID format: %s", id)
	}

	return s.users.Delete(ctx, oid)
}
