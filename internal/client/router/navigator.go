package router

import (
	"context"
	"fmt"
	"sync"
)

// CredentialChecker tells the navigator whether a credential is stored.
type CredentialChecker interface {
	HasCredential(ctx context.Context) (bool, error)
}

// Navigation is an accepted navigation: the final path, the matched records
// outermost first, and their resolved views.
type Navigation struct {
	Requested  string
	Path       string
	Record     *Record
	Views      []View
	Redirected bool
}

// Navigator is safe for concurrent use; Current reflects whichever
// navigation was accepted last.
type Navigator struct {
	router *Router
	creds  CredentialChecker

	mu      sync.RWMutex
	current string
}

func NewNavigator(r *Router, creds CredentialChecker) *Navigator {
	return &Navigator{router: r, creds: creds}
}

// Current is the path of the last accepted navigation.
func (n *Navigator) Current() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.current
}

// Navigate resolves dest, runs the guard on the resolved path and follows
// its redirect (guarding again) until a destination is allowed. Views along
// the matched chain are loaded before returning. An allowed path with no
// route yields ErrRouteNotFound.
func (n *Navigator) Navigate(ctx context.Context, dest string) (*Navigation, error) {
	requested := Normalize(dest)
	target := requested
	redirected := false

	for hops := 0; ; hops++ {
		if hops > maxRedirects {
			return nil, fmt.Errorf("%w: %s", ErrRedirectLoop, requested)
		}

		resolved, rec, err := n.router.Resolve(target)
		if err != nil {
			return nil, err
		}
		if resolved != target {
			redirected = true
		}

		ok, err := n.creds.HasCredential(ctx)
		if err != nil {
			return nil, err
		}

		d := Guard(resolved, ok)
		if !d.Allowed {
			target = d.Redirect
			redirected = true
			continue
		}

		if rec == nil {
			return nil, fmt.Errorf("%w: %s", ErrRouteNotFound, resolved)
		}

		nav := &Navigation{Requested: requested, Path: resolved, Record: rec, Redirected: redirected}
		for _, r := range rec.Chain() {
			v, err := r.View()
			if err != nil {
				return nil, err
			}
			if v != nil {
				nav.Views = append(nav.Views, v)
			}
		}

		n.mu.Lock()
		n.current = resolved
		n.mu.Unlock()
		return nav, nil
	}
}
