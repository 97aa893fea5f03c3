package lists

import (
	"strings"

	"github.com/goliatone/go-cruder/pkg/gate"
	"github.com/goliatone/go-cruder/pkg/source"
	"github.com/goliatone/go-cruder/pkg/styles"
)

// DefaultPerPage is the page size used when the caller does not set one.
const DefaultPerPage = 25

// Options carries the per-render inputs for a list view.
type Options struct {
	// Fields names the columns to show; empty defaults to every visible
	// schema field.
	Fields []string
	// PerPage is the page size; values below 1 default to DefaultPerPage.
	PerPage int
	// Page is the requested page number, clamped to the valid range.
	Page int
	// Search filters the collection before pagination.
	Search source.SearchSpec
	// BaseURL prefixes row action links ("/contacts/"). Empty falls back to
	// query-string action links ("?pk=1&action=view").
	BaseURL string
	// Permissions gates the action buttons and the create link.
	Permissions gate.Snapshot
	// Profile supplies the class strings for table and button roles.
	Profile styles.Profile
}

func (o Options) perPage() int {
	if o.PerPage < 1 {
		return DefaultPerPage
	}
	return o.PerPage
}

func (o Options) page() int {
	if o.Page < 1 {
		return 1
	}
	return o.Page
}

func (o Options) baseURL() string {
	base := strings.TrimSpace(o.BaseURL)
	if base == "" {
		return ""
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}

// PageResult is what a list render returns: the assembled fragment plus the
// pagination metadata the caller may surface elsewhere on the page.
type PageResult struct {
	HTML       string
	Page       source.Page
	TotalCount int
}
