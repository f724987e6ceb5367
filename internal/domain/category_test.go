package domain

import (
	"testing"
	"time"
)

func TestSlugRoundTrip(t *testing.T) {
	for _, category := range CategoryOrder {
		slug := CategoryToSlug(category)

		got, ok := SlugToCategory(slug)
		if !ok {
			t.Errorf("slug %q did not resolve", slug)
			continue
		}
		if got != category {
			t.Errorf("slug %q resolved to %q, want %q", slug, got, category)
		}
	}
}

func TestSlugToCategoryUnknown(t *testing.T) {
	if _, ok := SlugToCategory("no-such-category"); ok {
		t.Error("expected unknown slug to fail resolution")
	}
}

func TestCategoryToSlugFormat(t *testing.T) {
	if got := CategoryToSlug("Rolling papers"); got != "rolling-papers" {
		t.Errorf("expected rolling-papers, got %q", got)
	}
	if got := CategoryToSlug("5 hr energy"); got != "5-hr-energy" {
		t.Errorf("expected 5-hr-energy, got %q", got)
	}
}

func TestNormalizeCategory(t *testing.T) {
	if got := NormalizeCategory("Lighters"); got != "Lighters" {
		t.Errorf("known category changed: %q", got)
	}
	if got := NormalizeCategory("Snacks"); got != DefaultCategory {
		t.Errorf("unknown category should map to %q, got %q", DefaultCategory, got)
	}
	if got := NormalizeCategory(""); got != DefaultCategory {
		t.Errorf("empty category should map to %q, got %q", DefaultCategory, got)
	}
}

func TestSessionIsAdminCaseInsensitive(t *testing.T) {
	s := NewSession("tok", "Admin@Example.COM", time.Now())

	if !s.IsAdmin("admin@example.com") {
		t.Error("expected case-insensitive match")
	}
	if s.IsAdmin("other@example.com") {
		t.Error("expected mismatch for different address")
	}

	var nilSession *Session
	if nilSession.IsAdmin("admin@example.com") {
		t.Error("nil session must never be admin")
	}
}
