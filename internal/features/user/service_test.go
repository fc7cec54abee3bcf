package user

import (
	"context"
	"testing"

	"sacred-journey/internal/features/group"

	"go.uber.org/zap"
)

type fakeUserRepo struct {
	user *User
}

func (r *fakeUserRepo) Create(ctx context.Context, u *User) error { return nil }
func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	return nil, nil
}
func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*User, error) {
	if r.user != nil && r.user.ID == id {
		copied := *r.user
		return &copied, nil
	}
	return nil, nil
}
func (r *fakeUserRepo) FindAll(ctx context.Context) ([]User, error) { return nil, nil }
func (r *fakeUserRepo) FindByGroupID(ctx context.Context, groupID string) ([]User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Update(ctx context.Context, id string, update *UserUpdate) (*User, error) {
	if r.user == nil || r.user.ID != id {
		return nil, nil
	}
	if update.Name != nil {
		r.user.Name = *update.Name
	}
	if update.Email != nil {
		r.user.Email = *update.Email
	}
	if update.PasswordHash != nil {
		r.user.PasswordHash = *update.PasswordHash
	}
	if update.GroupID != nil {
		r.user.GroupID = *update.GroupID
	}
	copied := *r.user
	return &copied, nil
}
func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

type rosterCall struct {
	groupID   string
	pilgrimID string
}

type fakeGroupRepo struct {
	added   []rosterCall
	removed []rosterCall
}

func (r *fakeGroupRepo) Create(ctx context.Context, g *group.PilgrimageGroup) error { return nil }
func (r *fakeGroupRepo) FindAll(ctx context.Context) ([]group.PilgrimageGroup, error) {
	return nil, nil
}
func (r *fakeGroupRepo) FindByID(ctx context.Context, id string) (*group.PilgrimageGroup, error) {
	return nil, nil
}
func (r *fakeGroupRepo) Update(ctx context.Context, id string, update *group.GroupUpdate) (*group.PilgrimageGroup, error) {
	return nil, nil
}
func (r *fakeGroupRepo) UpdateStatus(ctx context.Context, id, status string) error { return nil }
func (r *fakeGroupRepo) Delete(ctx context.Context, id string) (bool, error)       { return false, nil }
func (r *fakeGroupRepo) AddPilgrim(ctx context.Context, groupID string, pilgrim group.PilgrimInfo) error {
	r.added = append(r.added, rosterCall{groupID: groupID, pilgrimID: pilgrim.ID})
	return nil
}
func (r *fakeGroupRepo) RemovePilgrim(ctx context.Context, groupID, pilgrimID string) error {
	r.removed = append(r.removed, rosterCall{groupID: groupID, pilgrimID: pilgrimID})
	return nil
}

func strPtr(s string) *string { return &s }

func newUpdateFixture(usr *User) (UserService, *fakeGroupRepo) {
	groupRepo := &fakeGroupRepo{}
	svc := NewUserService(&fakeUserRepo{user: usr}, groupRepo, zap.NewNop())
	return svc, groupRepo
}

func TestUpdateUser_MovesRosterEntry(t *testing.T) {
	svc, groupRepo := newUpdateFixture(&User{
		ID: "u1", Email: "maria@email.com", Name: "Maria Santos",
		Role: RolePilgrim, GroupID: "group_001",
	})

	updated, err := svc.UpdateUser(context.Background(), "u1", &UpdateUserRequest{
		GroupID: strPtr("group_002"),
	})
	if err != nil {
		t.Fatalf("UpdateUser() error = %v", err)
	}
	if updated.GroupID != "group_002" {
		t.Errorf("GroupID = %q, want group_002", updated.GroupID)
	}

	if len(groupRepo.removed) != 1 || groupRepo.removed[0] != (rosterCall{"group_001", "u1"}) {
		t.Errorf("removed = %v, want one pull from group_001 for u1", groupRepo.removed)
	}
	if len(groupRepo.added) != 1 || groupRepo.added[0] != (rosterCall{"group_002", "u1"}) {
		t.Errorf("added = %v, want one push into group_002 for u1", groupRepo.added)
	}
}

func TestUpdateUser_ClearsRosterEntry(t *testing.T) {
	svc, groupRepo := newUpdateFixture(&User{
		ID: "u1", Email: "maria@email.com", Name: "Maria Santos",
		Role: RolePilgrim, GroupID: "group_001",
	})

	if _, err := svc.UpdateUser(context.Background(), "u1", &UpdateUserRequest{
		GroupID: strPtr(""),
	}); err != nil {
		t.Fatalf("UpdateUser() error = %v", err)
	}

	if len(groupRepo.removed) != 1 || groupRepo.removed[0] != (rosterCall{"group_001", "u1"}) {
		t.Errorf("removed = %v, want one pull from group_001 for u1", groupRepo.removed)
	}
	if len(groupRepo.added) != 0 {
		t.Errorf("added = %v, want no pushes when the group is cleared", groupRepo.added)
	}
}

func TestUpdateUser_SameGroupLeavesRosterAlone(t *testing.T) {
	svc, groupRepo := newUpdateFixture(&User{
		ID: "u1", Email: "maria@email.com", Name: "Maria Santos",
		Role: RolePilgrim, GroupID: "group_001",
	})

	if _, err := svc.UpdateUser(context.Background(), "u1", &UpdateUserRequest{
		Name:    strPtr("Maria S."),
		GroupID: strPtr("group_001"),
	}); err != nil {
		t.Fatalf("UpdateUser() error = %v", err)
	}

	if len(groupRepo.added) != 0 || len(groupRepo.removed) != 0 {
		t.Errorf("roster touched (added %v, removed %v) for an unchanged group", groupRepo.added, groupRepo.removed)
	}
}

func TestUpdateUser_AdminNeverOnRoster(t *testing.T) {
	svc, groupRepo := newUpdateFixture(&User{
		ID: "a1", Email: "julian.alcalde@axisperegrinaciones.com", Name: "Julian Alcalde",
		Role: RoleAdmin,
	})

	if _, err := svc.UpdateUser(context.Background(), "a1", &UpdateUserRequest{
		GroupID: strPtr("group_001"),
	}); err != nil {
		t.Fatalf("UpdateUser() error = %v", err)
	}

	if len(groupRepo.added) != 0 || len(groupRepo.removed) != 0 {
		t.Errorf("roster touched (added %v, removed %v) for an admin", groupRepo.added, groupRepo.removed)
	}
}

func TestUpdateUser_UnknownID(t *testing.T) {
	svc, groupRepo := newUpdateFixture(&User{ID: "u1", Role: RolePilgrim})

	updated, err := svc.UpdateUser(context.Background(), "missing", &UpdateUserRequest{
		GroupID: strPtr("group_002"),
	})
	if err != nil {
		t.Fatalf("UpdateUser() error = %v", err)
	}
	if updated != nil {
		t.Errorf("expected nil for an unknown id, got %+v", updated)
	}
	if len(groupRepo.added) != 0 || len(groupRepo.removed) != 0 {
		t.Errorf("roster touched for an unknown id")
	}
}
