package category_test

import (
	"testing"

	"github.com/codequiz/backend/internal/domain/category"
)

func TestByID(t *testing.T) {
	cat, ok := category.ByID("css")
	if !ok {
		t.Fatal("expected css to be a builtin category")
	}
	if cat.Name != "CSS" {
		t.Errorf("expected name %q, got %q", "CSS", cat.Name)
	}

	if _, ok := category.ByID("fortran"); ok {
		t.Error("expected fortran to be unknown")
	}
}

func TestDisplayName(t *testing.T) {
	if got := category.DisplayName("javascript"); got != "JavaScript" {
		t.Errorf("expected %q, got %q", "JavaScript", got)
	}

	// Unknown ids fall back to the id itself.
	if got := category.DisplayName("ruby"); got != "ruby" {
		t.Errorf("expected %q, got %q", "ruby", got)
	}
}
