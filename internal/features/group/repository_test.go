package group

import (
	"testing"
)

func strPtr(s string) *string { return &s }

func TestGroupUpdate_SetFields_PartialOnly(t *testing.T) {
	update := &GroupUpdate{
		Destination: strPtr("Santiago de Compostela"),
	}

	set := update.setFields()

	if set["destination"] != "Santiago de Compostela" {
		t.Errorf("destination = %v, want %q", set["destination"], "Santiago de Compostela")
	}
	for _, key := range []string{"name", "start_date", "end_date", "status"} {
		if _, present := set[key]; present {
			t.Errorf("unset field %q leaked into the update document", key)
		}
	}
	if _, present := set["updated_at"]; !present {
		t.Error("updated_at missing from the update document")
	}
}

func TestGroupUpdate_SetFields_AllSet(t *testing.T) {
	update := &GroupUpdate{
		Name:        strPtr("Holy Land Pilgrimage 2026"),
		Destination: strPtr("Jerusalem"),
		StartDate:   strPtr("2026-03-15"),
		EndDate:     strPtr("2026-03-22"),
		Status:      strPtr(StatusUpcoming),
	}

	set := update.setFields()

	// 5 payload fields plus updated_at
	if len(set) != 6 {
		t.Errorf("update document has %d fields, want 6: %v", len(set), set)
	}
	if set["status"] != StatusUpcoming {
		t.Errorf("status = %v, want %q", set["status"], StatusUpcoming)
	}
}

func TestGroupUpdate_SetFields_EmptyAlwaysTouchesTimestamp(t *testing.T) {
	set := (&GroupUpdate{}).setFields()

	if len(set) != 1 {
		t.Errorf("empty update document has %d fields, want only updated_at: %v", len(set), set)
	}
	if _, present := set["updated_at"]; !present {
		t.Error("updated_at missing from the update document")
	}
}
