package crud

import (
	"errors"
	"fmt"
	"html"
	"net/http"
	"strconv"
	"strings"

	"github.com/goliatone/go-cruder/pkg/entity"
	"github.com/goliatone/go-cruder/pkg/forms"
	"github.com/goliatone/go-cruder/pkg/gate"
	"github.com/goliatone/go-cruder/pkg/lists"
	"github.com/goliatone/go-cruder/pkg/source"
	"github.com/goliatone/go-cruder/pkg/styles"
)

type action string

const (
	actionList   action = "list"
	actionCreate action = "create"
	actionView   action = "view"
	actionEdit   action = "edit"
	actionDelete action = "delete"
)

func (a action) operation() gate.Operation {
	switch a {
	case actionCreate:
		return gate.Create
	case actionEdit:
		return gate.Update
	case actionDelete:
		return gate.Delete
	}
	return gate.Read
}

// Handler builds the net/http handler serving every CRUD action for a
// resource. It is an alias of NewHandler to match the component API surface.
func Handler(res Resource, fns ...OptionFn) http.Handler {
	return NewHandler(res, fns...)
}

func NewHandler(res Resource, fns ...OptionFn) http.Handler {
	return HandlerWithOptions(res, NewOptions(fns...))
}

// HandlerWithOptions builds a handler from a pre-constructed Options value.
func HandlerWithOptions(res Resource, opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	h := &handler{resource: res, options: opts}
	return http.HandlerFunc(h.serve)
}

type handler struct {
	resource Resource
	options  Options
}

func (h *handler) serve(w http.ResponseWriter, r *http.Request) {
	if r == nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead && r.Method != http.MethodPost {
		w.Header().Set("Allow", strings.Join([]string{http.MethodGet, http.MethodHead, http.MethodPost}, ", "))
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	act, pk := h.target(r)
	snapshot := h.snapshot(r)
	if !allowed(snapshot, act.operation()) {
		writeError(w, StatusError{Code: http.StatusForbidden, Err: ErrPermission})
		return
	}

	var err error
	switch act {
	case actionList:
		err = h.list(w, r, snapshot)
	case actionCreate:
		err = h.create(w, r)
	case actionView:
		err = h.detail(w, r, pk, snapshot)
	case actionEdit:
		err = h.edit(w, r, pk)
	case actionDelete:
		err = h.delete(w, r, pk, snapshot)
	default:
		err = h.list(w, r, snapshot)
	}
	if err != nil {
		if errors.Is(err, source.ErrNotFound) {
			err = StatusError{Code: http.StatusNotFound, Err: err}
		}
		writeError(w, err)
	}
}

// target resolves the requested action and record id from the URL. Path
// segments win; the ?pk=&action= query form is the fallback for hosts that
// mount the handler on a single flat route.
func (h *handler) target(r *http.Request) (action, string) {
	segments := h.pathSegments(r.URL.Path)
	switch len(segments) {
	case 0:
		// fall through to the query form
	case 1:
		if segments[0] == string(actionCreate) {
			return actionCreate, ""
		}
		return actionView, segments[0]
	default:
		last := segments[len(segments)-1]
		prev := segments[len(segments)-2]
		switch last {
		case string(actionEdit):
			return actionEdit, prev
		case string(actionDelete):
			return actionDelete, prev
		case string(actionCreate):
			return actionCreate, ""
		}
		return actionView, last
	}

	query := r.URL.Query()
	pk := strings.TrimSpace(query.Get("pk"))
	switch strings.ToLower(strings.TrimSpace(query.Get("action"))) {
	case string(actionCreate):
		return actionCreate, ""
	case string(actionView):
		if pk != "" {
			return actionView, pk
		}
	case string(actionEdit):
		if pk != "" {
			return actionEdit, pk
		}
	case string(actionDelete):
		if pk != "" {
			return actionDelete, pk
		}
	}
	return actionList, ""
}

// pathSegments returns the request path segments below the resource base.
// Without a configured base the whole path is inspected and only suffixes
// that look like CRUD targets are kept, so the handler can be mounted
// anywhere.
func (h *handler) pathSegments(path string) []string {
	base := strings.TrimSpace(h.resource.BasePath)
	if base != "" {
		base = strings.TrimRight(base, "/")
		if !strings.HasPrefix(path, base) {
			return nil
		}
		return splitSegments(strings.TrimPrefix(path, base))
	}

	segments := splitSegments(path)
	if len(segments) == 0 {
		return nil
	}
	last := segments[len(segments)-1]
	switch last {
	case string(actionCreate):
		return []string{last}
	case string(actionEdit), string(actionDelete):
		if len(segments) >= 2 && isDigits(segments[len(segments)-2]) {
			return segments[len(segments)-2:]
		}
		return nil
	}
	if isDigits(last) {
		return []string{last}
	}
	return nil
}

func splitSegments(path string) []string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

func (h *handler) snapshot(r *http.Request) gate.Snapshot {
	if h.options.User == nil {
		return gate.TakeSnapshot(nil, true, h.resource.Permissions, h.resource.ReadonlyMode)
	}
	return h.resource.snapshot(h.options.User(r))
}

func (h *handler) profile() styles.Profile {
	return h.options.Styles.Lookup(h.resource.Profile)
}

func (h *handler) list(w http.ResponseWriter, r *http.Request, snapshot gate.Snapshot) error {
	query := r.URL.Query()
	pageNum, _ := strconv.Atoi(query.Get("page"))

	result, err := lists.Render(r.Context(), h.resource.Schema, h.resource.Source, lists.Options{
		Fields:  h.resource.ListFields,
		PerPage: h.resource.PerPage,
		Page:    pageNum,
		Search: source.SearchSpec{
			Fields: h.resource.searchFields(),
			Query:  query.Get("search"),
		},
		BaseURL:     ListURL(h.resource, r.URL.Path),
		Permissions: snapshot,
		Profile:     h.profile(),
	})
	if err != nil {
		return fmt.Errorf("crud: render list: %w", err)
	}
	return h.respond(w, r, h.resource.Schema.PluralLabel(), result.HTML)
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) error {
	title := "Create " + h.resource.Schema.SingularLabel()
	if r.Method != http.MethodPost {
		return h.respond(w, r, title, h.formView(r, title, nil, nil))
	}

	if err := r.ParseForm(); err != nil {
		return StatusError{Code: http.StatusBadRequest, Err: fmt.Errorf("crud: parse form: %w", err)}
	}
	record, verrs := forms.ParseRecord(h.resource.Schema, r.PostForm, h.resource.ExcludeFields...)
	if verrs.Any() {
		return h.respond(w, r, title, h.formView(r, title, record, verrs))
	}

	if _, err := h.resource.Source.Insert(r.Context(), record); err != nil {
		return fmt.Errorf("crud: insert %s: %w", h.resource.Schema.Name, err)
	}
	h.flash(r, fmt.Sprintf("%s created successfully!", h.resource.Schema.SingularLabel()))
	return h.redirect(w, r)
}

func (h *handler) edit(w http.ResponseWriter, r *http.Request, pk string) error {
	record, err := h.resource.Source.Get(r.Context(), pk)
	if err != nil {
		return fmt.Errorf("crud: load %s %s: %w", h.resource.Schema.Name, pk, err)
	}

	title := "Edit " + h.resource.Schema.SingularLabel()
	if r.Method != http.MethodPost {
		return h.respond(w, r, title, h.formView(r, title, record, nil))
	}

	if err := r.ParseForm(); err != nil {
		return StatusError{Code: http.StatusBadRequest, Err: fmt.Errorf("crud: parse form: %w", err)}
	}
	update, verrs := forms.ParseRecord(h.resource.Schema, r.PostForm, h.resource.ExcludeFields...)
	if verrs.Any() {
		merged := record.Clone()
		for key, value := range update {
			merged[key] = value
		}
		return h.respond(w, r, title, h.formView(r, title, merged, verrs))
	}

	if _, err := h.resource.Source.Update(r.Context(), pk, update); err != nil {
		return fmt.Errorf("crud: update %s %s: %w", h.resource.Schema.Name, pk, err)
	}
	h.flash(r, fmt.Sprintf("%s updated successfully!", h.resource.Schema.SingularLabel()))
	return h.redirect(w, r)
}

func (h *handler) detail(w http.ResponseWriter, r *http.Request, pk string, snapshot gate.Snapshot) error {
	record, err := h.resource.Source.Get(r.Context(), pk)
	if err != nil {
		return fmt.Errorf("crud: load %s %s: %w", h.resource.Schema.Name, pk, err)
	}
	view := renderDetail(detailContext{
		resource: h.resource,
		record:   record,
		profile:  h.profile(),
		snapshot: snapshot,
		listURL:  ListURL(h.resource, r.URL.Path),
	})
	return h.respond(w, r, h.resource.Schema.SingularLabel()+" Details", view)
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request, pk string, snapshot gate.Snapshot) error {
	record, err := h.resource.Source.Get(r.Context(), pk)
	if err != nil {
		return fmt.Errorf("crud: load %s %s: %w", h.resource.Schema.Name, pk, err)
	}

	if r.Method != http.MethodPost {
		view := renderDeleteConfirm(detailContext{
			resource: h.resource,
			record:   record,
			profile:  h.profile(),
			snapshot: snapshot,
			listURL:  ListURL(h.resource, r.URL.Path),
		}, r.URL.Path)
		return h.respond(w, r, "Delete "+h.resource.Schema.SingularLabel(), view)
	}

	if err := h.resource.Source.Delete(r.Context(), pk); err != nil {
		return fmt.Errorf("crud: delete %s %s: %w", h.resource.Schema.Name, pk, err)
	}
	h.flash(r, fmt.Sprintf("%s '%s' deleted successfully!", h.resource.Schema.SingularLabel(), displayName(record)))
	return h.redirect(w, r)
}

func (h *handler) formView(r *http.Request, title string, record source.Record, verrs forms.ValidationErrors) string {
	form := forms.Render(h.resource.Schema, record, forms.Options{
		Action:    r.URL.Path,
		Exclude:   h.resource.ExcludeFields,
		Profile:   h.profile(),
		Errors:    verrs,
		CSRFField: h.resource.CSRFField,
		CancelURL: ListURL(h.resource, r.URL.Path),
	})

	var b strings.Builder
	b.WriteString("<div class=\"crud-form-view\">\n")
	b.WriteString("  <h2>" + html.EscapeString(title) + "</h2>\n")
	b.WriteString(form)
	b.WriteString("\n</div>")
	return b.String()
}

func (h *handler) respond(w http.ResponseWriter, r *http.Request, title, fragment string) error {
	body := fragment
	if h.options.Pages != nil && h.options.Layout != "" {
		rendered, err := h.options.Pages.Render(h.options.Layout, map[string]any{
			"title":   title,
			"content": fragment,
		})
		if err != nil {
			return fmt.Errorf("crud: render page: %w", err)
		}
		body = rendered
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return nil
	}
	_, err := w.Write([]byte(body))
	return err
}

func (h *handler) redirect(w http.ResponseWriter, r *http.Request) error {
	http.Redirect(w, r, ListURL(h.resource, r.URL.Path), http.StatusSeeOther)
	return nil
}

func (h *handler) flash(r *http.Request, message string) {
	if h.options.Flash == nil {
		return
	}
	h.options.Flash(r, message)
}

// displayName picks a human identifier for flash copy: the record's name or
// title when present, its id otherwise.
func displayName(record source.Record) string {
	for _, key := range []string{"name", "title"} {
		if value, ok := record.Get(key); ok && value != nil {
			if text := entity.FormatValue(value); text != "" && text != entity.EmptyPlaceholder {
				return text
			}
		}
	}
	return record.ID()
}
