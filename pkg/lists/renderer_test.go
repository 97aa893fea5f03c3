package lists

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-cruder/pkg/entity"
	"github.com/goliatone/go-cruder/pkg/gate"
	"github.com/goliatone/go-cruder/pkg/source"
	"github.com/goliatone/go-cruder/pkg/styles"
)

func contactSchema() entity.Schema {
	return entity.Schema{
		Name:     "contact",
		Singular: "Contact",
		Plural:   "Contacts",
		Fields: []entity.Field{
			{Name: "id", Type: entity.TypeInteger},
			{Name: "name", Type: entity.TypeString},
			{Name: "email", Type: entity.TypeEmail},
			{Name: "subscribed", Type: entity.TypeBoolean},
			{Name: "last_seen", Type: entity.TypeDateTime},
		},
	}
}

func seededSource(n int) *source.Memory {
	records := make([]source.Record, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, source.Record{
			"name":       fmt.Sprintf("Contact %02d", i),
			"email":      fmt.Sprintf("c%02d@example.com", i),
			"subscribed": i%2 == 0,
			"last_seen":  time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		})
	}
	return source.NewMemory(records...)
}

func render(t *testing.T, src source.QuerySource, opts Options) PageResult {
	t.Helper()
	result, err := Render(context.Background(), contactSchema(), src, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return result
}

func TestRenderTableHeadersAndFormatting(t *testing.T) {
	result := render(t, seededSource(2), Options{
		Permissions: gate.AllowAll(),
		Profile:     styles.BootstrapProfile(),
		BaseURL:     "/contacts/",
	})

	for _, header := range []string{"<th>Name</th>", "<th>Email</th>", "<th>Subscribed</th>", "<th>Last Seen</th>", "<th>Actions</th>"} {
		if !strings.Contains(result.HTML, header) {
			t.Fatalf("missing header %s in:\n%s", header, result.HTML)
		}
	}
	if strings.Contains(result.HTML, "<th>Id</th>") {
		t.Fatalf("identifier column should be hidden:\n%s", result.HTML)
	}
	if !strings.Contains(result.HTML, "2024-03-15 10:30") {
		t.Fatalf("datetime should format as YYYY-MM-DD HH:MM:\n%s", result.HTML)
	}
	if !strings.Contains(result.HTML, "<td>Yes</td>") || !strings.Contains(result.HTML, "<td>No</td>") {
		t.Fatalf("booleans should render Yes/No:\n%s", result.HTML)
	}
	if !strings.Contains(result.HTML, `class="table-responsive"`) {
		t.Fatalf("table should sit in a responsive container:\n%s", result.HTML)
	}
}

func TestRenderNullAndMissingValuesUsePlaceholder(t *testing.T) {
	src := source.NewMemory(source.Record{"name": "Ada", "email": nil})
	result := render(t, src, Options{Permissions: gate.AllowAll()})

	// nil email plus missing subscribed/last_seen all fall back to "-".
	if got := strings.Count(result.HTML, "<td>-</td>"); got != 3 {
		t.Fatalf("want 3 placeholder cells, got %d in:\n%s", got, result.HTML)
	}
}

func TestRenderSearchFiltersBeforePagination(t *testing.T) {
	result := render(t, seededSource(30), Options{
		Permissions: gate.AllowAll(),
		Search:      source.SearchSpec{Fields: []string{"name", "email"}, Query: "c01"},
	})

	if result.TotalCount != 1 {
		t.Fatalf("search should filter to 1 record, got %d", result.TotalCount)
	}
	if !strings.Contains(result.HTML, "Contact 01") {
		t.Fatalf("matching record missing:\n%s", result.HTML)
	}
	if strings.Contains(result.HTML, "Contact 02") {
		t.Fatalf("non-matching record should be filtered:\n%s", result.HTML)
	}
	if !strings.Contains(result.HTML, "Showing 1-1 of 1 items") {
		t.Fatalf("summary should reflect the filtered count:\n%s", result.HTML)
	}
}

func TestRenderSearchBarOnlyWhenConfigured(t *testing.T) {
	result := render(t, seededSource(2), Options{Permissions: gate.AllowAll()})
	if strings.Contains(result.HTML, `name="search"`) {
		t.Fatalf("no search fields configured, no search bar expected:\n%s", result.HTML)
	}

	result = render(t, seededSource(2), Options{
		Permissions: gate.AllowAll(),
		Search:      source.SearchSpec{Fields: []string{"name"}, Query: "ada"},
	})
	if !strings.Contains(result.HTML, `placeholder="Search name..."`) {
		t.Fatalf("expected search bar with placeholder:\n%s", result.HTML)
	}
	if !strings.Contains(result.HTML, `value="ada"`) {
		t.Fatalf("search input should keep the current query:\n%s", result.HTML)
	}
}

func TestRenderPageClampAndStrip(t *testing.T) {
	result := render(t, seededSource(30), Options{
		Permissions: gate.AllowAll(),
		PerPage:     10,
		Page:        4,
	})

	if result.Page.Number != 3 {
		t.Fatalf("page 4 of 3 should clamp to 3, got %d", result.Page.Number)
	}
	if !strings.Contains(result.HTML, "Showing 21-30 of 30 items") {
		t.Fatalf("summary should show the clamped page bounds:\n%s", result.HTML)
	}
	if !strings.Contains(result.HTML, `<li class="page-item disabled"><span class="page-link">Next</span></li>`) {
		t.Fatalf("Next should be disabled on the last page:\n%s", result.HTML)
	}
	if !strings.Contains(result.HTML, `<a class="page-link" href="?page=2">Previous</a>`) {
		t.Fatalf("Previous should link to page 2:\n%s", result.HTML)
	}
	if !strings.Contains(result.HTML, `<li class="page-item active"><span class="page-link">3</span></li>`) {
		t.Fatalf("current page should render as a non-linked active indicator:\n%s", result.HTML)
	}
	if !strings.Contains(result.HTML, `<a class="page-link" href="?page=1">1</a>`) {
		t.Fatalf("other pages should render as links:\n%s", result.HTML)
	}
}

func TestRenderPaginationSuppressedForSinglePage(t *testing.T) {
	result := render(t, seededSource(5), Options{Permissions: gate.AllowAll(), PerPage: 10})
	if strings.Contains(result.HTML, "crud-pagination") {
		t.Fatalf("single page should not render a pagination strip:\n%s", result.HTML)
	}
}

func TestRenderActionLinksFollowPermissions(t *testing.T) {
	src := seededSource(1)

	result := render(t, src, Options{
		Permissions: gate.AllowAll(),
		BaseURL:     "/contacts/",
	})
	for _, link := range []string{`href="/contacts/1/"`, `href="/contacts/1/edit/"`, `href="/contacts/1/delete/"`} {
		if !strings.Contains(result.HTML, link) {
			t.Fatalf("missing action link %s:\n%s", link, result.HTML)
		}
	}
	if !strings.Contains(result.HTML, `href="/contacts/create/"`) {
		t.Fatalf("create link expected when CanCreate:\n%s", result.HTML)
	}

	result = render(t, src, Options{
		Permissions: gate.Snapshot{CanRead: true},
		BaseURL:     "/contacts/",
	})
	if !strings.Contains(result.HTML, ">View</a>") {
		t.Fatalf("view link expected:\n%s", result.HTML)
	}
	if strings.Contains(result.HTML, ">Edit</a>") || strings.Contains(result.HTML, ">Delete</a>") {
		t.Fatalf("edit/delete links must be suppressed:\n%s", result.HTML)
	}
	if strings.Contains(result.HTML, "Add New") {
		t.Fatalf("create link must be suppressed without CanCreate:\n%s", result.HTML)
	}
}

func TestRenderNoActionsPlaceholder(t *testing.T) {
	result := render(t, seededSource(1), Options{Permissions: gate.Snapshot{}})

	if got := strings.Count(result.HTML, "No actions available"); got != 1 {
		t.Fatalf("want exactly one neutral placeholder, got %d:\n%s", got, result.HTML)
	}
	if strings.Contains(result.HTML, ">View</a>") {
		t.Fatalf("no action links expected:\n%s", result.HTML)
	}
}

func TestRenderQueryStringFallbackURLs(t *testing.T) {
	result := render(t, seededSource(1), Options{Permissions: gate.AllowAll()})
	if !strings.Contains(result.HTML, `href="?pk=1&amp;action=view"`) {
		t.Fatalf("expected query-string fallback action URL:\n%s", result.HTML)
	}
	if !strings.Contains(result.HTML, `href="?action=create"`) {
		t.Fatalf("expected query-string fallback create URL:\n%s", result.HTML)
	}
}

func TestRenderStripsHostileMarkupFromCells(t *testing.T) {
	src := source.NewMemory(source.Record{"name": `<script>alert(1)</script>Mallory`})
	result := render(t, src, Options{Permissions: gate.AllowAll()})

	if strings.Contains(result.HTML, "<script>") {
		t.Fatalf("cell markup must be stripped:\n%s", result.HTML)
	}
	if !strings.Contains(result.HTML, "Mallory") {
		t.Fatalf("cell text should survive sanitisation:\n%s", result.HTML)
	}
}

func TestRenderExplicitFieldSelection(t *testing.T) {
	result := render(t, seededSource(1), Options{
		Permissions: gate.AllowAll(),
		Fields:      []string{"name", "nickname"},
	})

	if !strings.Contains(result.HTML, "<th>Name</th>") || !strings.Contains(result.HTML, "<th>Nickname</th>") {
		t.Fatalf("explicit columns should render, unknown ones included:\n%s", result.HTML)
	}
	if strings.Contains(result.HTML, "<th>Email</th>") {
		t.Fatalf("unselected columns should be hidden:\n%s", result.HTML)
	}
	// The unknown column has no value on the record and falls back to "-".
	if !strings.Contains(result.HTML, "<td>-</td>") {
		t.Fatalf("unknown column should render the placeholder:\n%s", result.HTML)
	}
}
