package auth

import (
	"context"
	"errors"
	"time"

	"sacred-journey/internal/config"
	"sacred-journey/internal/features/group"
	"sacred-journey/internal/features/user"
	"sacred-journey/pkg/utils"

	"go.uber.org/zap"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
)

type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*user.UserResponse, error)
	Login(ctx context.Context, email, password string) (*Token, error)
	CurrentUser(ctx context.Context, userID string) (*user.UserResponse, error)
}

type AuthServiceImpl struct {
	UserRepo  user.UserRepository
	GroupRepo group.GroupRepository
	Config    *config.Config
	Logger    *zap.Logger
}

func NewAuthService(userRepo user.UserRepository, groupRepo group.GroupRepository, cfg *config.Config, logger *zap.Logger) AuthService {
	return &AuthServiceImpl{
		UserRepo:  userRepo,
		GroupRepo: groupRepo,
		Config:    cfg,
		Logger:    logger,
	}
}

// Register creates the account and, for a pilgrim joining a group,
// appends the roster entry. The roster write is a second independent
// store call: a crash in between leaves the user created but unlisted.
func (s *AuthServiceImpl) Register(ctx context.Context, req *RegisterRequest) (*user.UserResponse, error) {
	existing, err := s.UserRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	newUser := &user.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         req.Role,
		GroupID:      req.GroupID,
	}

	if err := s.UserRepo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	if newUser.Role == user.RolePilgrim && newUser.GroupID != "" {
		pilgrim := group.PilgrimInfo{
			ID:    newUser.ID,
			Name:  newUser.Name,
			Email: newUser.Email,
		}
		if err := s.GroupRepo.AddPilgrim(ctx, newUser.GroupID, pilgrim); err != nil {
			s.Logger.Error("failed to add pilgrim to group roster",
				zap.String("user_id", newUser.ID),
				zap.String("group_id", newUser.GroupID),
				zap.Error(err))
		}
	}

	resp := newUser.Response()
	return &resp, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*Token, error) {
	usr, err := s.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if usr == nil || !utils.CheckPassword(password, usr.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	ttl := time.Duration(s.Config.TokenTTLMinutes) * time.Minute
	token, err := utils.GenerateToken(usr.ID, usr.Email, usr.Role, usr.GroupID, ttl)
	if err != nil {
		return nil, err
	}

	return &Token{
		AccessToken: token,
		TokenType:   "bearer",
		User:        usr.Response(),
	}, nil
}

func (s *AuthServiceImpl) CurrentUser(ctx context.Context, userID string) (*user.UserResponse, error) {
	usr, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil || usr == nil {
		return nil, err
	}

	resp := usr.Response()
	return &resp, nil
}
