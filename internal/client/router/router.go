// Package router declares the client's screens as a tree of named routes and
// decides, before every navigation, whether the user may go there.
package router

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"
)

var (
	ErrRouteNotFound  = errors.New("route not found")
	ErrRedirectLoop   = errors.New("too many redirects")
	ErrDuplicateRoute = errors.New("duplicate route")
)

const maxRedirects = 8

// View renders one screen.
type View func(ctx context.Context) error

// Loader produces a View on first use. A failed load is retried on the next
// navigation.
type Loader func() (View, error)

// Route is the declaration of one node. Child paths are relative to their
// parent.
type Route struct {
	Path     string
	Name     string
	Load     Loader
	Redirect string
	Children []Route
}

// Record is a route flattened to its absolute path.
type Record struct {
	Path     string
	Name     string
	Redirect string
	Parent   *Record

	load Loader
	mu   sync.Mutex
	view View
}

// View resolves the record's view lazily and caches it. A record without a
// loader has a nil view.
func (r *Record) View() (View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.view != nil || r.load == nil {
		return r.view, nil
	}
	v, err := r.load()
	if err != nil {
		return nil, fmt.Errorf("load view %s: %w", r.Name, err)
	}
	r.view = v
	return v, nil
}

// Chain returns the record and its ancestors, outermost first.
func (r *Record) Chain() []*Record {
	var chain []*Record
	for cur := r; cur != nil; cur = cur.Parent {
		chain = append([]*Record{cur}, chain...)
	}
	return chain
}

type Router struct {
	byPath map[string]*Record
	byName map[string]*Record
	order  []*Record
}

// New flattens routes. Paths and non-empty names must be unique.
func New(routes []Route) (*Router, error) {
	r := &Router{
		byPath: make(map[string]*Record),
		byName: make(map[string]*Record),
	}
	if err := r.add(routes, nil); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Router) add(routes []Route, parent *Record) error {
	for _, rt := range routes {
		full := rt.Path
		if parent != nil && !strings.HasPrefix(rt.Path, "/") {
			full = parent.Path + "/" + rt.Path
		}
		full = Normalize(full)

		if _, ok := r.byPath[full]; ok {
			return fmt.Errorf("%w: path %s", ErrDuplicateRoute, full)
		}
		rec := &Record{Path: full, Name: rt.Name, Redirect: rt.Redirect, Parent: parent, load: rt.Load}
		if rt.Name != "" {
			if _, ok := r.byName[rt.Name]; ok {
				return fmt.Errorf("%w: name %s", ErrDuplicateRoute, rt.Name)
			}
			r.byName[rt.Name] = rec
		}
		r.byPath[full] = rec
		r.order = append(r.order, rec)

		if err := r.add(rt.Children, rec); err != nil {
			return err
		}
	}
	return nil
}

// Normalize cleans p into the absolute form used as a lookup key.
func Normalize(p string) string {
	if p == "" {
		return "/"
	}
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	return path.Clean("/" + p)
}

// Resolve follows record redirects from p. It returns the final path and
// its record, which is nil when nothing matches.
func (r *Router) Resolve(p string) (string, *Record, error) {
	p = Normalize(p)
	for i := 0; i <= maxRedirects; i++ {
		rec, ok := r.byPath[p]
		if !ok {
			return p, nil, nil
		}
		if rec.Redirect == "" {
			return p, rec, nil
		}
		p = Normalize(rec.Redirect)
	}
	return p, nil, fmt.Errorf("%w: %s", ErrRedirectLoop, p)
}

// Lookup finds a record by name.
func (r *Router) Lookup(name string) (*Record, bool) {
	rec, ok := r.byName[name]
	return rec, ok
}

// Records lists all routes in declaration order.
func (r *Router) Records() []*Record {
	out := make([]*Record, len(r.order))
	copy(out, r.order)
	return out
}
