package lists

import (
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-cruder/pkg/styles"
)

// writeSearchBar emits the search form when search fields are configured.
// The query input keeps its current value so the search survives pagination.
func writeSearchBar(b *strings.Builder, opts Options) {
	if len(opts.Search.Fields) == 0 {
		return
	}

	b.WriteString("  <form method=\"get\" class=\"crud-search\">\n")
	b.WriteString(`    <input type="text" name="search"`)
	writeClassAttr(b, opts.Profile.Form(styles.RoleInput))
	b.WriteString(` placeholder="`)
	b.WriteString(html.EscapeString(searchPlaceholder(opts.Search.Fields)))
	b.WriteString(`" value="`)
	b.WriteString(html.EscapeString(opts.Search.Query))
	b.WriteString("\">\n")
	b.WriteString(`    <button type="submit"`)
	writeClassAttr(b, opts.Profile.Button(styles.ButtonPrimary))
	b.WriteString(">Search</button>\n")
	b.WriteString("  </form>\n")
}

// searchPlaceholder builds user-friendly placeholder copy from the searched
// field names: one or two fields are listed in full, longer lists are
// summarised.
func searchPlaceholder(fields []string) string {
	switch {
	case len(fields) == 1:
		return fmt.Sprintf("Search %s...", fields[0])
	case len(fields) <= 3:
		return fmt.Sprintf("Search %s...", strings.Join(fields, ", "))
	default:
		return fmt.Sprintf("Search %s, and %d more...",
			strings.Join(fields[:2], ", "), len(fields)-2)
	}
}
