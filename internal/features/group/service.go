package group

import (
	"context"
	"errors"
)

var ErrInvalidStatus = errors.New("invalid pilgrimage status")

type GroupService interface {
	CreateGroup(ctx context.Context, req *CreateGroupRequest) (*PilgrimageGroup, error)
	GetGroup(ctx context.Context, id string) (*PilgrimageGroup, error)
	ListGroups(ctx context.Context) ([]PilgrimageGroup, error)
	UpdateGroup(ctx context.Context, id string, update *GroupUpdate) (*PilgrimageGroup, error)
	DeleteGroup(ctx context.Context, id string) (bool, error)
	AddPilgrim(ctx context.Context, groupID string, pilgrim PilgrimInfo) error
	RemovePilgrim(ctx context.Context, groupID, pilgrimID string) error
	ExportRoster(ctx context.Context, id string) ([]byte, string, error)
}

type GroupServiceImpl struct {
	GroupRepo GroupRepository
}

func NewGroupService(groupRepo GroupRepository) GroupService {
	return &GroupServiceImpl{
		GroupRepo: groupRepo,
	}
}

func (s *GroupServiceImpl) CreateGroup(ctx context.Context, req *CreateGroupRequest) (*PilgrimageGroup, error) {
	status := req.Status
	if status == "" {
		status = StatusUpcoming
	}
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	group := &PilgrimageGroup{
		Name:        req.Name,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      status,
		Pilgrims:    []PilgrimInfo{},
	}

	if err := s.GroupRepo.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupServiceImpl) GetGroup(ctx context.Context, id string) (*PilgrimageGroup, error) {
	return s.GroupRepo.FindByID(ctx, id)
}

func (s *GroupServiceImpl) ListGroups(ctx context.Context) ([]PilgrimageGroup, error) {
	return s.GroupRepo.FindAll(ctx)
}

func (s *GroupServiceImpl) UpdateGroup(ctx context.Context, id string, update *GroupUpdate) (*PilgrimageGroup, error) {
	if update.Status != nil && !ValidStatus(*update.Status) {
		return nil, ErrInvalidStatus
	}
	return s.GroupRepo.Update(ctx, id, update)
}

func (s *GroupServiceImpl) DeleteGroup(ctx context.Context, id string) (bool, error) {
	return s.GroupRepo.Delete(ctx, id)
}

func (s *GroupServiceImpl) AddPilgrim(ctx context.Context, groupID string, pilgrim PilgrimInfo) error {
	return s.GroupRepo.AddPilgrim(ctx, groupID, pilgrim)
}

func (s *GroupServiceImpl) RemovePilgrim(ctx context.Context, groupID, pilgrimID string) error {
	return s.GroupRepo.RemovePilgrim(ctx, groupID, pilgrimID)
}
