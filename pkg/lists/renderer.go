// Package lists renders the list view for an entity: search bar, data table
// with permission-gated row actions, summary counts, and pagination controls.
// Rendering is pure apart from the single read against the query source.
package lists

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-cruder/pkg/entity"
	"github.com/goliatone/go-cruder/pkg/source"
	"github.com/goliatone/go-cruder/pkg/styles"
)

// Render reads the query source, applies the search spec, paginates, and
// assembles the list fragment.
func Render(ctx context.Context, schema entity.Schema, src source.QuerySource, opts Options) (PageResult, error) {
	records, err := src.All(ctx)
	if err != nil {
		return PageResult{}, fmt.Errorf("lists: read query source: %w", err)
	}

	records = opts.Search.Filter(records)
	page := source.Paginate(records, opts.perPage(), opts.page())

	fields := resolveFields(schema, opts.Fields)
	headers := headerLabels(fields)

	var b strings.Builder
	b.Grow(4096)

	b.WriteString("<div class=\"crud-list-view\">\n")
	writeHeaderBar(&b, schema, opts)
	writeSearchBar(&b, opts)
	writeSummary(&b, page)
	writeTable(&b, headers, fields, page.Items, opts)
	writePagination(&b, page)
	b.WriteString("</div>\n")

	return PageResult{
		HTML:       b.String(),
		Page:       page,
		TotalCount: page.TotalItems,
	}, nil
}

// resolveFields maps requested column names onto schema fields, defaulting to
// every visible field. Names the schema does not know still produce a column;
// their cells read straight off the record.
func resolveFields(schema entity.Schema, names []string) []entity.Field {
	if len(names) == 0 {
		return schema.VisibleFields()
	}

	out := make([]entity.Field, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if field, ok := schema.FieldByName(name); ok {
			out = append(out, field)
			continue
		}
		out = append(out, entity.Field{Name: name})
	}
	return out
}

func headerLabels(fields []entity.Field) []string {
	headers := make([]string, 0, len(fields)+1)
	for _, field := range fields {
		headers = append(headers, field.DisplayLabel())
	}
	headers = append(headers, "Actions")
	return headers
}

func writeHeaderBar(b *strings.Builder, schema entity.Schema, opts Options) {
	b.WriteString("  <div class=\"crud-list-header\">\n")
	b.WriteString("    <h2>")
	b.WriteString(html.EscapeString(schema.PluralLabel()))
	b.WriteString("</h2>\n")

	if opts.Permissions.CanCreate {
		createURL := "?action=create"
		if base := opts.baseURL(); base != "" {
			createURL = base + "create/"
		}
		b.WriteString(`    <a href="`)
		b.WriteString(html.EscapeString(createURL))
		b.WriteString(`"`)
		writeClassAttr(b, opts.Profile.Button(styles.ButtonPrimary))
		b.WriteString(">Add New</a>\n")
	}
	b.WriteString("  </div>\n")
}

func writeSummary(b *strings.Builder, page source.Page) {
	b.WriteString("  <div class=\"crud-list-summary\"><small>Showing ")
	fmt.Fprintf(b, "%d-%d of %d items", page.StartIndex, page.EndIndex, page.TotalItems)
	b.WriteString("</small></div>\n")
}

func writeTable(b *strings.Builder, headers []string, fields []entity.Field, records []source.Record, opts Options) {
	b.WriteString("  <div")
	writeClassAttr(b, opts.Profile.Table(styles.RoleTableResponsive))
	b.WriteString(">\n")

	b.WriteString("    <table")
	writeClassAttr(b, opts.Profile.Table(styles.RoleTable))
	b.WriteString(">\n")

	b.WriteString("      <thead><tr>")
	for _, header := range headers {
		b.WriteString("<th")
		writeClassAttr(b, opts.Profile.Table(styles.RoleTH))
		b.WriteString(">")
		b.WriteString(html.EscapeString(header))
		b.WriteString("</th>")
	}
	b.WriteString("</tr></thead>\n")

	b.WriteString("      <tbody>\n")
	for _, record := range records {
		b.WriteString("        <tr")
		writeClassAttr(b, opts.Profile.Table(styles.RoleTR))
		b.WriteString(">")
		for _, field := range fields {
			b.WriteString("<td")
			writeClassAttr(b, opts.Profile.Table(styles.RoleTD))
			b.WriteString(">")
			b.WriteString(cellValue(record, field))
			b.WriteString("</td>")
		}
		b.WriteString("<td")
		writeClassAttr(b, opts.Profile.Table(styles.RoleActions))
		b.WriteString(">")
		writeRowActions(b, record, opts)
		b.WriteString("</td></tr>\n")
	}
	b.WriteString("      </tbody>\n")
	b.WriteString("    </table>\n")
	b.WriteString("  </div>\n")
}

// cellValue formats one record field for display. Anything unreadable renders
// as the placeholder so a broken field cannot break the row.
func cellValue(record source.Record, field entity.Field) string {
	value, ok := record.Get(field.Name)
	if !ok {
		return entity.EmptyPlaceholder
	}
	return sanitizeCell(entity.FormatValue(value))
}

func writeRowActions(b *strings.Builder, record source.Record, opts Options) {
	id := record.ID()
	base := opts.baseURL()

	viewURL := fmt.Sprintf("?pk=%s&action=view", id)
	editURL := fmt.Sprintf("?pk=%s&action=edit", id)
	deleteURL := fmt.Sprintf("?pk=%s&action=delete", id)
	if base != "" {
		viewURL = base + id + "/"
		editURL = base + id + "/edit/"
		deleteURL = base + id + "/delete/"
	}

	var actions []string
	if opts.Permissions.CanRead {
		actions = append(actions, actionLink(viewURL, "View", opts.Profile.Button(styles.ButtonInfo)))
	}
	if opts.Permissions.CanUpdate {
		actions = append(actions, actionLink(editURL, "Edit", opts.Profile.Button(styles.ButtonWarning)))
	}
	if opts.Permissions.CanDelete {
		actions = append(actions, actionLink(deleteURL, "Delete", opts.Profile.Button(styles.ButtonDanger)))
	}

	if len(actions) == 0 {
		b.WriteString(`<span class="crud-no-actions">No actions available</span>`)
		return
	}
	b.WriteString(`<div class="crud-actions">`)
	b.WriteString(strings.Join(actions, ""))
	b.WriteString("</div>")
}

func actionLink(url, label, class string) string {
	var b strings.Builder
	b.WriteString(`<a href="`)
	b.WriteString(html.EscapeString(url))
	b.WriteString(`"`)
	writeClassAttr(&b, class)
	b.WriteString(">")
	b.WriteString(label)
	b.WriteString("</a>")
	return b.String()
}

func writeClassAttr(b *strings.Builder, class string) {
	if strings.TrimSpace(class) == "" {
		return
	}
	b.WriteString(` class="`)
	b.WriteString(html.EscapeString(class))
	b.WriteString(`"`)
}
