package router

const (
	LoginPath    = "/login"
	RegisterPath = "/register"
)

// Decision is the guard's verdict for one navigation.
type Decision struct {
	Allowed  bool
	Redirect string
}

// Guard lets a navigation through unless it targets anything other than
// the login or registration page without a credential, in which case it
// redirects to login. It has no side effects.
func Guard(dest string, hasCredential bool) Decision {
	if dest != LoginPath && dest != RegisterPath && !hasCredential {
		return Decision{Redirect: LoginPath}
	}
	return Decision{Allowed: true}
}
