package user

import (
	"context"

	"sacred-journey/internal/features/group"
	"sacred-journey/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]UserResponse, error)
	ListUsersByGroup(ctx context.Context, groupID string) ([]UserResponse, error)
	UpdateUser(ctx context.Context, id string, req *UpdateUserRequest) (*UserResponse, error)
}

type UserServiceImpl struct {
	UserRepo  UserRepository
	GroupRepo group.GroupRepository
	Logger    *zap.Logger
}

func NewUserService(userRepo UserRepository, groupRepo group.GroupRepository, logger *zap.Logger) UserService {
	return &UserServiceImpl{
		UserRepo:  userRepo,
		GroupRepo: groupRepo,
		Logger:    logger,
	}
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]UserResponse, error) {
	users, err := s.UserRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(users), nil
}

func (s *UserServiceImpl) ListUsersByGroup(ctx context.Context, groupID string) ([]UserResponse, error) {
	users, err := s.UserRepo.FindByGroupID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return toResponses(users), nil
}

// UpdateUser merges the given fields into the stored account. A new
// password is rehashed before it reaches the store; the plaintext is
// never persisted. When the update moves a pilgrim to another group,
// the denormalized rosters are moved along with it.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, id string, req *UpdateUserRequest) (*UserResponse, error) {
	existing, err := s.UserRepo.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	update := &UserUpdate{
		Name:    req.Name,
		Email:   req.Email,
		GroupID: req.GroupID,
	}

	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = &hash
	}

	updated, err := s.UserRepo.Update(ctx, id, update)
	if err != nil || updated == nil {
		return nil, err
	}

	if req.GroupID != nil && updated.Role == RolePilgrim && *req.GroupID != existing.GroupID {
		s.moveRosterEntry(ctx, existing.GroupID, updated)
	}

	resp := updated.Response()
	return &resp, nil
}

// moveRosterEntry keeps the group rosters in line with a pilgrim's
// group_id after a reassignment. Roster failures are logged, not
// fatal, the same as the register path.
func (s *UserServiceImpl) moveRosterEntry(ctx context.Context, oldGroupID string, usr *User) {
	if oldGroupID != "" {
		if err := s.GroupRepo.RemovePilgrim(ctx, oldGroupID, usr.ID); err != nil {
			s.Logger.Error("failed to remove pilgrim from old group roster",
				zap.String("user_id", usr.ID),
				zap.String("group_id", oldGroupID),
				zap.Error(err))
		}
	}
	if usr.GroupID != "" {
		pilgrim := group.PilgrimInfo{ID: usr.ID, Name: usr.Name, Email: usr.Email}
		if err := s.GroupRepo.AddPilgrim(ctx, usr.GroupID, pilgrim); err != nil {
			s.Logger.Error("failed to add pilgrim to new group roster",
				zap.String("user_id", usr.ID),
				zap.String("group_id", usr.GroupID),
				zap.Error(err))
		}
	}
}

func toResponses(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, u.Response())
	}
	return responses
}
