package model

// Session is the per-browser state tracked by the session store, keyed by
// an opaque identifier delivered via the session cookie.  A session exists
// from first contact; it counts as logged in only once Username is set.
//
// Fields:
//  ID       – opaque session identifier (the cookie value).
//  Username – acting identity; empty means not logged in.
//  IsAdmin  – whether the session holds the admin role.
type Session struct {
    ID       string `json:"id"`
    Username string `json:"username"`
    IsAdmin  bool   `json:"is_admin"`
}

// LoggedIn reports whether the session belongs to an authenticated user.
func (s *Session) LoggedIn() bool { return s.Username != "" }
