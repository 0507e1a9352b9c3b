package guard

import "strings"

// Route is a navigation target.
type Route string

const (
	Home       Route = "/"
	Messages   Route = "/messages"
	Profile    Route = "/profile"
	Create     Route = "/create"
	Auth       Route = "/auth"
	Onboarding Route = "/onboarding"
	NotFound   Route = "/404"
)

var (
	publicRoutes    = map[Route]struct{}{Auth: {}, Onboarding: {}}
	protectedRoutes = map[Route]struct{}{Home: {}, Messages: {}, Profile: {}, Create: {}}
)

// Normalize maps a raw path to a known route. Query strings, fragments and
// trailing slashes are ignored; anything unknown becomes NotFound.
func Normalize(path string) Route {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Home
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	r := Route(strings.ToLower(path))
	if r.IsPublic() || r.IsProtected() || r == NotFound {
		return r
	}
	return NotFound
}

// IsPublic reports whether r is reachable without a session.
func (r Route) IsPublic() bool {
	_, ok := publicRoutes[r]
	return ok
}

// IsProtected reports whether r requires an onboarded session.
func (r Route) IsProtected() bool {
	_, ok := protectedRoutes[r]
	return ok
}
