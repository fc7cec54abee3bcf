package destination

import "testing"

func strPtr(s string) *string { return &s }

func TestDestinationUpdate_SetFields_DescriptionOnly(t *testing.T) {
	update := &DestinationUpdate{
		Description: strPtr("The Holy City, sacred to three major religions"),
	}

	set := update.setFields()

	if set["description"] != "The Holy City, sacred to three major religions" {
		t.Errorf("description = %v", set["description"])
	}
	for _, key := range []string{"name", "country", "facts", "spiritual_significance", "image_url"} {
		if _, present := set[key]; present {
			t.Errorf("unset field %q leaked into the update document", key)
		}
	}
	if _, present := set["updated_at"]; !present {
		t.Error("updated_at missing from the update document")
	}
}

func TestDestinationUpdate_SetFields_FactsReplaceWholesale(t *testing.T) {
	facts := []string{"The Western Wall is the last remaining wall of the Second Temple"}
	update := &DestinationUpdate{Facts: &facts}

	set := update.setFields()

	got, ok := set["facts"].([]string)
	if !ok || len(got) != 1 {
		t.Fatalf("facts = %v, want one-element []string", set["facts"])
	}
}
