package crud

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// RegisterRoutes mounts the resource handler under basePath on mux. The
// handler serves the list view at the base plus the create/view/edit/delete
// paths below it. The cleaned base path is returned.
func RegisterRoutes(mux Mux, basePath string, res Resource, fns ...OptionFn) (string, error) {
	return RegisterRoutesWithOptions(mux, basePath, res, NewOptions(fns...))
}

// RegisterRoutesWithOptions mounts a handler using a pre-built Options value.
func RegisterRoutesWithOptions(mux Mux, basePath string, res Resource, opts Options) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("crud: missing mux")
	}
	base := mountPath(basePath, res.Schema.Name)
	res.BasePath = base
	mux.Handle(base, HandlerWithOptions(res, opts))
	return base, nil
}

// MountChi mounts the resource handler on a chi router. All five CRUD
// routes are served by the one handler under the resource base.
func MountChi(r chi.Router, basePath string, res Resource, fns ...OptionFn) (string, error) {
	if r == nil {
		return "", fmt.Errorf("crud: missing router")
	}
	base := mountPath(basePath, res.Schema.Name)
	res.BasePath = base
	handler := NewHandler(res, fns...)
	r.Handle(base, handler)
	r.Handle(base+"*", handler)
	return base, nil
}

// mountPath joins basePath and the resource segment into the canonical
// trailing-slash list path.
func mountPath(basePath, resource string) string {
	basePath = strings.TrimSpace(basePath)
	resource = strings.Trim(strings.TrimSpace(resource), "/")

	if basePath == "" || basePath == "/" {
		basePath = "/"
	} else {
		if !strings.HasPrefix(basePath, "/") {
			basePath = "/" + basePath
		}
		basePath = strings.TrimRight(basePath, "/") + "/"
	}
	if resource == "" {
		return basePath
	}
	return basePath + resource + "/"
}
