package styles

import (
	"testing"

	theme "github.com/goliatone/go-theme"
)

func TestRegistryLookupFallsBackToDefault(t *testing.T) {
	registry := NewRegistry()

	if got := registry.Lookup("bootstrap").Form(RoleInput); got != "form-control" {
		t.Fatalf("bootstrap input class: want %q, got %q", "form-control", got)
	}
	if got := registry.Lookup("bootstrap5").Form(RoleSelect); got != "form-select" {
		t.Fatalf("bootstrap5 alias should resolve, got %q", got)
	}
	if got := registry.Lookup("bulma").Table(RoleTable); got != "table is-striped is-hoverable is-fullwidth" {
		t.Fatalf("bulma table class mismatch: %q", got)
	}

	fallback := registry.Lookup("no-such-framework")
	if fallback.Name() != "default" {
		t.Fatalf("unknown name should fall back to default, got %q", fallback.Name())
	}
	if got := registry.Lookup("").Name(); got != "default" {
		t.Fatalf("empty name should fall back to default, got %q", got)
	}
}

func TestProfileUnknownRoleResolvesEmpty(t *testing.T) {
	profile := BootstrapProfile()
	if got := profile.Form("no-such-role"); got != "" {
		t.Fatalf("unknown role should resolve to empty string, got %q", got)
	}
	if got := profile.Button("no-such-variant"); got != "" {
		t.Fatalf("unknown button variant should resolve to empty string, got %q", got)
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(BootstrapProfile()); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
	if err := registry.Register(NewProfile("", nil, nil, nil)); err == nil {
		t.Fatal("expected empty name registration to fail")
	}
}

func TestProfileManifestRoundTrip(t *testing.T) {
	manifest := Manifest(BulmaProfile())
	if manifest.Tokens[tokenPrefixForm+RoleInput] != "input" {
		t.Fatalf("manifest should carry form tokens, got %q", manifest.Tokens[tokenPrefixForm+RoleInput])
	}

	profile, err := FromManifest(manifest)
	if err != nil {
		t.Fatalf("from manifest: %v", err)
	}
	if got := profile.Form(RoleSubmit); got != "button is-primary" {
		t.Fatalf("round-tripped submit class: want %q, got %q", "button is-primary", got)
	}
	if got := profile.Button(ButtonDanger); got != "button is-danger" {
		t.Fatalf("round-tripped danger class: want %q, got %q", "button is-danger", got)
	}
}

func TestRegisterManifest(t *testing.T) {
	registry := NewRegistry()
	err := registry.RegisterManifest(&theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"form.input":  "acme-input",
			"brand.color": "#123456",
		},
	})
	if err != nil {
		t.Fatalf("register manifest: %v", err)
	}
	if got := registry.Lookup("acme").Form(RoleInput); got != "acme-input" {
		t.Fatalf("acme input class: want %q, got %q", "acme-input", got)
	}
}
