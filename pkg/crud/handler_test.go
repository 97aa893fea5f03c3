package crud

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/goliatone/go-cruder/pkg/entity"
	"github.com/goliatone/go-cruder/pkg/gate"
	"github.com/goliatone/go-cruder/pkg/source"
)

type testUser struct {
	roles     []string
	superuser bool
}

func (u testUser) Roles() []string   { return u.roles }
func (u testUser) IsSuperuser() bool { return u.superuser }

func contactSchema() entity.Schema {
	return entity.Schema{
		Name: "contact",
		Fields: []entity.Field{
			{Name: "id", Type: entity.TypeInteger},
			{Name: "name", Type: entity.TypeString, Required: true},
			{Name: "email", Type: entity.TypeEmail},
			{Name: "active_client", Type: entity.TypeBoolean},
			{Name: "created_at", Type: entity.TypeDateTime},
		},
	}
}

func contactResource(t *testing.T, records ...source.Record) Resource {
	t.Helper()
	res, err := NewResource(contactSchema(), source.NewMemory(records...))
	if err != nil {
		t.Fatalf("NewResource() error = %v", err)
	}
	res.BasePath = "/contacts/"
	return res
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func postForm(t *testing.T, h http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestListView(t *testing.T) {
	res := contactResource(t,
		source.Record{"name": "Ada", "email": "ada@example.com"},
		source.Record{"name": "Grace", "email": "grace@example.com"},
	)
	h := NewHandler(res)

	rec := get(t, h, "/contacts/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"crud-list-view", "Ada", "Grace", "Showing 1-2 of 2 items"} {
		if !strings.Contains(body, want) {
			t.Errorf("list missing %q", want)
		}
	}
	if got := rec.Header().Get("Content-Type"); !strings.Contains(got, "text/html") {
		t.Errorf("Content-Type = %q", got)
	}
}

func TestCreateFlow(t *testing.T) {
	res := contactResource(t)
	var flashes []string
	h := NewHandler(res, WithFlash(func(_ *http.Request, message string) {
		flashes = append(flashes, message)
	}))

	rec := get(t, h, "/contacts/create/")
	if rec.Code != http.StatusOK {
		t.Fatalf("form status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<h2>Create Contact</h2>") {
		t.Errorf("missing create heading: %q", body)
	}
	if !strings.Contains(body, `action="/contacts/create/"`) {
		t.Errorf("form action missing: %q", body)
	}

	rec = postForm(t, h, "/contacts/create/", url.Values{
		"name":          {"Ada"},
		"email":         {"ada@example.com"},
		"active_client": {"True"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("submit status = %d, want 303", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/contacts/" {
		t.Errorf("redirect = %q, want %q", got, "/contacts/")
	}
	if len(flashes) != 1 || flashes[0] != "Contact created successfully!" {
		t.Errorf("flashes = %v", flashes)
	}

	records, err := res.Source.All(context.Background())
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0]["active_client"] != true {
		t.Errorf("active_client = %v, want true", records[0]["active_client"])
	}
}

func TestCreateValidationFailureReRendersForm(t *testing.T) {
	res := contactResource(t)
	h := NewHandler(res)

	rec := postForm(t, h, "/contacts/create/", url.Values{"email": {"no-name@example.com"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Name is required.") {
		t.Errorf("missing inline error: %q", body)
	}
	if !strings.Contains(body, `value="no-name@example.com"`) {
		t.Errorf("submitted value not preserved: %q", body)
	}

	records, _ := res.Source.All(context.Background())
	if len(records) != 0 {
		t.Errorf("invalid submission was persisted: %v", records)
	}
}

func TestDetailView(t *testing.T) {
	res := contactResource(t, source.Record{"name": "Ada"})
	h := NewHandler(res)

	rec := get(t, h, "/contacts/1/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<h2>Contact Details</h2>") {
		t.Errorf("missing heading: %q", body)
	}
	if !strings.Contains(body, "<dd>Ada</dd>") {
		t.Errorf("missing value: %q", body)
	}
	if !strings.Contains(body, "<dd>Not set</dd>") {
		t.Errorf("missing placeholder for unset fields: %q", body)
	}
}

func TestEditFlow(t *testing.T) {
	res := contactResource(t, source.Record{"name": "Ada", "email": "ada@example.com"})
	h := NewHandler(res)

	rec := get(t, h, "/contacts/1/edit/")
	if rec.Code != http.StatusOK {
		t.Fatalf("form status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<h2>Edit Contact</h2>") {
		t.Errorf("missing edit heading: %q", body)
	}
	if !strings.Contains(body, `value="ada@example.com"`) {
		t.Errorf("form not pre-populated: %q", body)
	}

	rec = postForm(t, h, "/contacts/1/edit/", url.Values{
		"name":  {"Ada Lovelace"},
		"email": {"ada@example.com"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("submit status = %d, want 303", rec.Code)
	}

	record, err := res.Source.Get(context.Background(), "1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if record["name"] != "Ada Lovelace" {
		t.Errorf("name = %v", record["name"])
	}
}

func TestDeleteFlow(t *testing.T) {
	res := contactResource(t, source.Record{"name": "Ada"})
	var flashes []string
	h := NewHandler(res, WithFlash(func(_ *http.Request, message string) {
		flashes = append(flashes, message)
	}))

	rec := get(t, h, "/contacts/1/delete/")
	if rec.Code != http.StatusOK {
		t.Fatalf("confirm status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Are you sure you want to delete this contact?") {
		t.Errorf("missing confirmation copy: %q", body)
	}
	if !strings.Contains(body, ">Delete</button>") {
		t.Errorf("missing delete button: %q", body)
	}

	rec = postForm(t, h, "/contacts/1/delete/", url.Values{})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("delete status = %d, want 303", rec.Code)
	}
	if len(flashes) != 1 || flashes[0] != "Contact 'Ada' deleted successfully!" {
		t.Errorf("flashes = %v", flashes)
	}

	if _, err := res.Source.Get(context.Background(), "1"); err == nil {
		t.Error("record still present after delete")
	}
}

func TestMissingRecordIs404(t *testing.T) {
	res := contactResource(t)
	h := NewHandler(res)

	for _, target := range []string{"/contacts/9/", "/contacts/9/edit/", "/contacts/9/delete/"} {
		if rec := get(t, h, target); rec.Code != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want 404", target, rec.Code)
		}
	}
}

func TestPermissionDenied(t *testing.T) {
	res := contactResource(t, source.Record{"name": "Ada"})
	res.Permissions = gate.Map{gate.Create: {"admin"}, gate.Delete: {"admin"}}
	h := NewHandler(res, WithUser(func(*http.Request) CurrentUser {
		return testUser{roles: []string{"viewer"}}
	}))

	if rec := get(t, h, "/contacts/create/"); rec.Code != http.StatusForbidden {
		t.Errorf("create status = %d, want 403", rec.Code)
	}
	if rec := get(t, h, "/contacts/1/delete/"); rec.Code != http.StatusForbidden {
		t.Errorf("delete status = %d, want 403", rec.Code)
	}
	// Read has no rule, so it stays open.
	if rec := get(t, h, "/contacts/"); rec.Code != http.StatusOK {
		t.Errorf("list status = %d, want 200", rec.Code)
	}
}

func TestReadonlyModeDeniesMutationsForSuperusers(t *testing.T) {
	res := contactResource(t, source.Record{"name": "Ada"})
	res.ReadonlyMode = true
	h := NewHandler(res, WithUser(func(*http.Request) CurrentUser {
		return testUser{superuser: true}
	}))

	if rec := get(t, h, "/contacts/"); rec.Code != http.StatusOK {
		t.Errorf("list status = %d, want 200", rec.Code)
	}
	if rec := postForm(t, h, "/contacts/create/", url.Values{"name": {"Eve"}}); rec.Code != http.StatusForbidden {
		t.Errorf("create status = %d, want 403", rec.Code)
	}
}

func TestQueryFallbackActions(t *testing.T) {
	res := contactResource(t, source.Record{"name": "Ada"})
	res.BasePath = ""
	h := NewHandler(res)

	rec := get(t, h, "/admin/contacts?action=view&pk=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<h2>Contact Details</h2>") {
		t.Errorf("query fallback did not reach the detail view: %q", rec.Body.String())
	}
}

func TestMethodNotAllowed(t *testing.T) {
	res := contactResource(t)
	h := NewHandler(res)

	req := httptest.NewRequest(http.MethodPut, "/contacts/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestRegisterRoutesOnServeMux(t *testing.T) {
	res := contactResource(t, source.Record{"name": "Ada"})
	res.BasePath = ""

	mux := http.NewServeMux()
	base, err := RegisterRoutes(mux, "/admin", res)
	if err != nil {
		t.Fatalf("RegisterRoutes() error = %v", err)
	}
	if base != "/admin/contact/" {
		t.Errorf("base = %q, want %q", base, "/admin/contact/")
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/contact/1/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Contact Details") {
		t.Errorf("detail view not routed: %q", rec.Body.String())
	}
}
