package model

import (
	"testing"
	"time"
)

func TestNormalizedFillsDefaults(t *testing.T) {
	config := SessionConfig{Break: 10 * time.Minute}.Normalized()
	if config.Study != DefaultStudyDuration {
		t.Fatalf("expected default study, got %v", config.Study)
	}
	if config.Break != 10*time.Minute {
		t.Fatalf("break should be kept, got %v", config.Break)
	}
	if config.TickInterval != time.Second {
		t.Fatalf("expected 1s tick, got %v", config.TickInterval)
	}
}

func TestVariantFeatures(t *testing.T) {
	if got := ParseVariant(" Compact "); got != VariantCompact {
		t.Fatalf("expected compact, got %s", got)
	}
	if got := ParseVariant("unknown"); got != VariantClassic {
		t.Fatalf("expected classic fallback, got %s", got)
	}
	classic := VariantClassic.Features()
	if !classic.BreakButton || classic.NewSessionReveal {
		t.Fatalf("unexpected classic features %+v", classic)
	}
	compact := VariantCompact.Features()
	if compact.BreakButton || !compact.NewSessionReveal {
		t.Fatalf("unexpected compact features %+v", compact)
	}
}
