package styles

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Token key prefixes used when a profile round-trips through a go-theme
// manifest. A token "form.input" carries the class string for the form
// "input" role, and so on for "table." and "button.".
const (
	tokenPrefixForm   = "form."
	tokenPrefixTable  = "table."
	tokenPrefixButton = "button."
)

// FromManifest builds a profile from a go-theme manifest whose tokens use the
// form./table./button. key convention. Tokens outside that convention are
// ignored so a manifest can carry colour tokens alongside class bundles.
func FromManifest(manifest *theme.Manifest) (Profile, error) {
	if manifest == nil {
		return Profile{}, fmt.Errorf("styles: manifest is required")
	}
	if strings.TrimSpace(manifest.Name) == "" {
		return Profile{}, fmt.Errorf("styles: manifest name is required")
	}

	form := make(map[string]string)
	table := make(map[string]string)
	button := make(map[string]string)
	for key, value := range manifest.Tokens {
		switch {
		case strings.HasPrefix(key, tokenPrefixForm):
			form[strings.TrimPrefix(key, tokenPrefixForm)] = value
		case strings.HasPrefix(key, tokenPrefixTable):
			table[strings.TrimPrefix(key, tokenPrefixTable)] = value
		case strings.HasPrefix(key, tokenPrefixButton):
			button[strings.TrimPrefix(key, tokenPrefixButton)] = value
		}
	}

	return NewProfile(manifest.Name, form, table, button), nil
}

// Manifest exports a profile as a go-theme manifest so hosts already running
// a theme registry can serve cruder class bundles through it.
func Manifest(profile Profile) *theme.Manifest {
	tokens := make(map[string]string)
	for role, class := range profile.form {
		tokens[tokenPrefixForm+role] = class
	}
	for role, class := range profile.table {
		tokens[tokenPrefixTable+role] = class
	}
	for variant, class := range profile.button {
		tokens[tokenPrefixButton+variant] = class
	}

	return &theme.Manifest{
		Name:    profile.Name(),
		Version: "1.0.0",
		Tokens:  tokens,
	}
}

// RegisterManifest converts a go-theme manifest into a profile and registers
// it in one step.
func (r *Registry) RegisterManifest(manifest *theme.Manifest) error {
	profile, err := FromManifest(manifest)
	if err != nil {
		return err
	}
	return r.Register(profile)
}
