package crud

import (
	"net/http"

	"github.com/goliatone/go-cruder/pkg/page"
	"github.com/goliatone/go-cruder/pkg/styles"
)

// UserFunc extracts the current actor from a request. A nil return is
// treated as an anonymous request.
type UserFunc func(r *http.Request) CurrentUser

// FlashSink receives the success message recorded after a mutation. Hosts
// typically stash it in a session or cookie for the next render.
type FlashSink func(r *http.Request, message string)

// Options carries handler collaborators shared across requests.
type Options struct {
	// Styles resolves profile names; nil uses the shipped registry.
	Styles *styles.Registry
	// User extracts the actor for permission checks. When nil the gate runs
	// with a superuser actor so hosts without auth get the fail-open
	// behaviour; readonly mode still denies mutations.
	User UserFunc
	// Flash receives success messages after mutations. Nil drops them.
	Flash FlashSink
	// Pages wraps rendered fragments into full pages when Layout is set.
	Pages *page.Engine
	// Layout names the page template the engine wraps fragments with.
	// Empty emits bare fragments for host embedding.
	Layout string
}

// OptionFn mutates handler options during construction.
type OptionFn func(*Options)

// DefaultOptions returns the zero configuration with the shipped registry.
func DefaultOptions() Options {
	return Options{Styles: styles.NewRegistry()}
}

// NewOptions applies overrides on top of the defaults.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.Styles == nil {
		opts.Styles = styles.NewRegistry()
	}
	return opts
}

// WithStyles supplies a custom style registry.
func WithStyles(registry *styles.Registry) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Styles = registry
	}
}

// WithUser supplies the actor extractor.
func WithUser(fn UserFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.User = fn
	}
}

// WithFlash supplies the flash message sink.
func WithFlash(sink FlashSink) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Flash = sink
	}
}

// WithLayout wraps every fragment in the named page template.
func WithLayout(engine *page.Engine, layout string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Pages = engine
		o.Layout = layout
	}
}
