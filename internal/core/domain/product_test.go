package domain

import "testing"

func TestValidCategory(t *testing.T) {
	for _, category := range Categories {
		if !ValidCategory(category) {
			t.Fatalf("known category rejected: %q", category)
		}
	}

	for _, category := range []string{"", "servo motor", "Time Machine", "LED "} {
		if ValidCategory(category) {
			t.Fatalf("unknown category accepted: %q", category)
		}
	}
}

func TestCategories_NoDuplicates(t *testing.T) {
	seen := make(map[string]struct{}, len(Categories))
	for _, category := range Categories {
		if _, dup := seen[category]; dup {
			t.Fatalf("duplicate category: %q", category)
		}
		seen[category] = struct{}{}
	}
}
