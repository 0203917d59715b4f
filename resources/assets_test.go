package resources

import "testing"

func TestEmbeddedIconsLoad(t *testing.T) {
	for _, name := range []string{AppIcon, TrayRunningIcon, TrayIdleIcon} {
		resource, err := Icon(name)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if len(resource.Content()) == 0 {
			t.Fatalf("%s is empty", name)
		}
		again := MustIcon(name)
		if again != resource {
			t.Fatalf("%s should be cached", name)
		}
	}
}

func TestMissingIcon(t *testing.T) {
	if _, err := Icon("missing.svg"); err == nil {
		t.Fatal("expected error for missing icon")
	}
}
