package crud

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-cruder/pkg/entity"
	"github.com/goliatone/go-cruder/pkg/gate"
)

// ResourceConfig is the file form of a resource: the entity schema plus the
// view knobs. Sources are attached by the host after loading.
type ResourceConfig struct {
	Schema        entity.Schema       `json:"schema" yaml:"schema"`
	BasePath      string              `json:"basePath" yaml:"base_path"`
	Style         string              `json:"style" yaml:"style"`
	ExcludeFields []string            `json:"excludeFields" yaml:"exclude_fields"`
	ListFields    []string            `json:"listFields" yaml:"list_fields"`
	SearchFields  []string            `json:"searchFields" yaml:"search_fields"`
	SearchField   string              `json:"searchField" yaml:"search_field"`
	PerPage       int                 `json:"perPage" yaml:"per_page"`
	Permissions   map[string][]string `json:"permissions" yaml:"permissions"`
	ReadonlyMode  bool                `json:"readonlyMode" yaml:"readonly_mode"`
	CSRFField     string              `json:"csrfField" yaml:"csrf_field"`
}

// Resource converts the file form into a live resource. The permission keys
// accept both the single-letter C/R/U/D spellings and the full words.
func (c ResourceConfig) Resource() (Resource, error) {
	permissions, err := parsePermissions(c.Permissions)
	if err != nil {
		return Resource{}, fmt.Errorf("crud: resource %q: %w", c.Schema.Name, err)
	}
	return Resource{
		Schema:        c.Schema,
		BasePath:      c.BasePath,
		Profile:       c.Style,
		ExcludeFields: c.ExcludeFields,
		ListFields:    c.ListFields,
		SearchFields:  c.SearchFields,
		SearchField:   c.SearchField,
		PerPage:       c.PerPage,
		Permissions:   permissions,
		ReadonlyMode:  c.ReadonlyMode,
		CSRFField:     c.CSRFField,
	}, nil
}

func parsePermissions(raw map[string][]string) (gate.Map, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	permissions := make(gate.Map, len(raw))
	for key, roles := range raw {
		op, err := gate.ParseOperation(key)
		if err != nil {
			return nil, err
		}
		if _, exists := permissions[op]; exists {
			return nil, fmt.Errorf("crud: duplicate permission key %q", key)
		}
		permissions[op] = append([]string(nil), roles...)
	}
	return permissions, nil
}

// LoadResourcesFS walks fsys and parses every JSON/YAML resource file into
// a configuration keyed by schema name. Nil or empty filesystems yield an
// empty map.
func LoadResourcesFS(fsys fs.FS) (map[string]ResourceConfig, error) {
	configs := make(map[string]ResourceConfig)
	if fsys == nil {
		return configs, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isResourceFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("crud: read %s: %w", path, err)
		}

		config, err := parseResourceFile(data, path)
		if err != nil {
			return err
		}

		name := strings.TrimSpace(config.Schema.Name)
		if name == "" {
			return fmt.Errorf("crud: file %s declares no schema name", path)
		}
		if _, exists := configs[name]; exists {
			return fmt.Errorf("crud: duplicate resource %q (file %s)", name, path)
		}
		configs[name] = config
		return nil
	})
	if err != nil {
		return nil, err
	}
	return configs, nil
}

func parseResourceFile(data []byte, source string) (ResourceConfig, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return ResourceConfig{}, fmt.Errorf("crud: file %s is empty", source)
	}

	var config ResourceConfig
	switch strings.ToLower(filepath.Ext(source)) {
	case ".json":
		if err := json.Unmarshal(data, &config); err != nil {
			return ResourceConfig{}, fmt.Errorf("crud: parse %s: %w", source, err)
		}
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return ResourceConfig{}, fmt.Errorf("crud: parse %s: %w", source, err)
		}
	}
	return config, nil
}

func isResourceFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
