package domain

import "testing"

func TestToggleListed(t *testing.T) {
	if got := ToggleListed(StatusListed); got != StatusUnlisted {
		t.Errorf("ToggleListed(%q) = %q, want %q", StatusListed, got, StatusUnlisted)
	}
	if got := ToggleListed(StatusUnlisted); got != StatusListed {
		t.Errorf("ToggleListed(%q) = %q, want %q", StatusUnlisted, got, StatusListed)
	}
}

// Toggling twice must return the original value for both status enums.
func TestToggleInvolution(t *testing.T) {
	for _, s := range []string{StatusListed, StatusUnlisted} {
		if got := ToggleListed(ToggleListed(s)); got != s {
			t.Errorf("ToggleListed twice on %q = %q", s, got)
		}
	}
	for _, s := range []string{StatusPublished, StatusDraft} {
		if got := TogglePublished(TogglePublished(s)); got != s {
			t.Errorf("TogglePublished twice on %q = %q", s, got)
		}
	}
}

func TestValidServiceCategory(t *testing.T) {
	for _, c := range ServiceCategories {
		if !ValidServiceCategory(c) {
			t.Errorf("category %q rejected", c)
		}
	}
	if ValidServiceCategory("不存在的分类") {
		t.Error("unknown category accepted")
	}
	// the filter sentinel is not a storable category
	if ValidServiceCategory(CategoryAll) {
		t.Errorf("%q accepted as a category", CategoryAll)
	}
}

func TestValidFAQCategory(t *testing.T) {
	if !ValidFAQCategory("服务相关") {
		t.Error("服务相关 rejected")
	}
	if ValidFAQCategory("赌约单") {
		t.Error("service category accepted as FAQ category")
	}
}
