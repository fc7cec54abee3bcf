package policy

import "testing"

func TestCanReadGroup(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		own     string
		target  string
		allowed bool
	}{
		{"admin any group", RoleAdmin, "", "group_002", true},
		{"pilgrim own group", RolePilgrim, "group_001", "group_001", true},
		{"pilgrim other group", RolePilgrim, "group_001", "group_002", false},
		{"pilgrim without group", RolePilgrim, "", "group_001", false},
		{"pilgrim without group, empty target", RolePilgrim, "", "", false},
		{"unknown role", "guest", "group_001", "group_001", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanReadGroup(tt.role, tt.own, tt.target); got != tt.allowed {
				t.Errorf("CanReadGroup(%q, %q, %q) = %v, want %v", tt.role, tt.own, tt.target, got, tt.allowed)
			}
		})
	}
}

func TestCanWrite(t *testing.T) {
	if !CanWrite(RoleAdmin) {
		t.Error("CanWrite(admin) = false, want true")
	}
	if CanWrite(RolePilgrim) {
		t.Error("CanWrite(pilgrim) = true, want false")
	}
	if CanWrite("") {
		t.Error("CanWrite(\"\") = true, want false")
	}
}

func TestCanReadAll(t *testing.T) {
	if !CanReadAll(RoleAdmin) {
		t.Error("CanReadAll(admin) = false, want true")
	}
	if CanReadAll(RolePilgrim) {
		t.Error("CanReadAll(pilgrim) = true, want false")
	}
}

func TestValidRole(t *testing.T) {
	for role, want := range map[string]bool{
		RoleAdmin:   true,
		RolePilgrim: true,
		"":          false,
		"superuser": false,
	} {
		if got := ValidRole(role); got != want {
			t.Errorf("ValidRole(%q) = %v, want %v", role, got, want)
		}
	}
}
