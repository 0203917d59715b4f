package model

import "strings"

// Variant names a layout preset: window geometry plus the session controls it
// exposes.
type Variant string

const (
	// VariantClassic shows "New study session" and "Break timer" side by side.
	VariantClassic Variant = "classic"
	// VariantCompact has no break button and reveals "New study session" only
	// once a countdown finishes.
	VariantCompact Variant = "compact"
)

// ParseVariant returns the variant with the given name, defaulting to classic.
func ParseVariant(value string) Variant {
	switch Variant(strings.ToLower(strings.TrimSpace(value))) {
	case VariantCompact:
		return VariantCompact
	default:
		return VariantClassic
	}
}

// Features returns the controls the variant exposes by default.
func (variant Variant) Features() Features {
	if variant == VariantCompact {
		return Features{BreakButton: false, NewSessionReveal: true}
	}
	return Features{BreakButton: true, NewSessionReveal: false}
}
