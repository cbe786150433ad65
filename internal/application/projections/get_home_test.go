package projections

import (
	"context"
	"testing"
	"time"

	domainContent "peakdispatch/internal/domain/content"
)

// TestQueryGetHome_SubstitutesYear tests the {year} footer substitution.
func TestQueryGetHome_SubstitutesYear(t *testing.T) {
	deps := GetHomeDeps{
		ContentStore: &mockContentReader{doc: domainContent.Content{
			HeroTitle:  "Dispatch, handled",
			FooterText: "© {year} PeakDispatch",
		}},
		Now: func() time.Time { return time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC) },
	}

	result, err := QueryGetHome(context.Background(), deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FooterText != "© 2026 PeakDispatch" {
		t.Errorf("expected year substituted, got %q", result.FooterText)
	}
	if result.Content.HeroTitle != "Dispatch, handled" {
		t.Errorf("expected content passed through, got %+v", result.Content)
	}
}

// TestQueryGetHome_EmptyContent tests the empty-document case.
func TestQueryGetHome_EmptyContent(t *testing.T) {
	deps := GetHomeDeps{
		ContentStore: &mockContentReader{},
		Now:          time.Now,
	}
	result, err := QueryGetHome(context.Background(), deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FooterText != "" {
		t.Errorf("expected empty footer, got %q", result.FooterText)
	}
}
