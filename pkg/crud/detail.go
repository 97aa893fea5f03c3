package crud

import (
	"html"
	"strings"

	"github.com/goliatone/go-cruder/pkg/entity"
	"github.com/goliatone/go-cruder/pkg/forms"
	"github.com/goliatone/go-cruder/pkg/gate"
	"github.com/goliatone/go-cruder/pkg/source"
	"github.com/goliatone/go-cruder/pkg/styles"
)

// unsetPlaceholder is what detail views show for missing or nil values.
const unsetPlaceholder = "Not set"

type detailContext struct {
	resource Resource
	record   source.Record
	profile  styles.Profile
	snapshot gate.Snapshot
	listURL  string
}

// renderDetail assembles the read view: a heading, a description list of
// every visible field, and the gated action links.
func renderDetail(ctx detailContext) string {
	var b strings.Builder
	b.WriteString("<div class=\"crud-detail-view\">\n")
	b.WriteString("  <h2>")
	b.WriteString(html.EscapeString(ctx.resource.Schema.SingularLabel()))
	b.WriteString(" Details</h2>\n")
	writeFieldList(&b, ctx)

	b.WriteString("  <div class=\"crud-detail-actions\">\n")
	b.WriteString("    " + detailLink(ctx.listURL, "Back to List", ctx.profile.Button(styles.ButtonSecondary)) + "\n")
	if ctx.snapshot.CanUpdate {
		b.WriteString("    " + detailLink(ctx.listURL+ctx.record.ID()+"/edit/", "Edit", ctx.profile.Button(styles.ButtonWarning)) + "\n")
	}
	if ctx.snapshot.CanDelete {
		b.WriteString("    " + detailLink(ctx.listURL+ctx.record.ID()+"/delete/", "Delete", ctx.profile.Button(styles.ButtonDanger)) + "\n")
	}
	b.WriteString("  </div>\n")
	b.WriteString("</div>")
	return b.String()
}

// renderDeleteConfirm assembles the confirmation view: the same field list
// plus a warning and the POST form that performs the delete.
func renderDeleteConfirm(ctx detailContext, action string) string {
	var b strings.Builder
	b.WriteString("<div class=\"crud-delete-view\">\n")
	b.WriteString("  <h2>Delete ")
	b.WriteString(html.EscapeString(ctx.resource.Schema.SingularLabel()))
	b.WriteString("</h2>\n")
	b.WriteString("  <p class=\"crud-delete-warning\">Are you sure you want to delete this ")
	b.WriteString(html.EscapeString(strings.ToLower(ctx.resource.Schema.SingularLabel())))
	b.WriteString("? This action cannot be undone.</p>\n")
	writeFieldList(&b, ctx)

	csrf := ctx.resource.CSRFField
	if strings.TrimSpace(csrf) == "" {
		csrf = forms.DefaultCSRFField
	}
	b.WriteString("  <form method=\"POST\" action=\"" + html.EscapeString(action) + "\">\n")
	b.WriteString("    <input type=\"hidden\" name=\"" + html.EscapeString(csrf) + "\" value=\"" + forms.CSRFPlaceholder + "\">\n")
	b.WriteString("    <button type=\"submit\"")
	if class := ctx.profile.Button(styles.ButtonDanger); class != "" {
		b.WriteString(" class=\"" + html.EscapeString(class) + "\"")
	}
	b.WriteString(">Delete</button>\n")
	b.WriteString("    " + detailLink(ctx.listURL, "Cancel", ctx.profile.Button(styles.ButtonSecondary)) + "\n")
	b.WriteString("  </form>\n")
	b.WriteString("</div>")
	return b.String()
}

func writeFieldList(b *strings.Builder, ctx detailContext) {
	b.WriteString("  <dl class=\"crud-field-list\">\n")
	for _, field := range ctx.resource.Schema.VisibleFields() {
		b.WriteString("    <dt>")
		b.WriteString(html.EscapeString(field.DisplayLabel()))
		b.WriteString("</dt>\n    <dd>")
		b.WriteString(html.EscapeString(detailValue(ctx.record, field)))
		b.WriteString("</dd>\n")
	}
	b.WriteString("  </dl>\n")
}

func detailValue(record source.Record, field entity.Field) string {
	value, ok := record.Get(field.Name)
	if !ok || value == nil {
		return unsetPlaceholder
	}
	return entity.FormatValue(value)
}

func detailLink(url, label, class string) string {
	var b strings.Builder
	b.WriteString("<a href=\"" + html.EscapeString(url) + "\"")
	if class != "" {
		b.WriteString(" class=\"" + html.EscapeString(class) + "\"")
	}
	b.WriteString(">" + html.EscapeString(label) + "</a>")
	return b.String()
}
