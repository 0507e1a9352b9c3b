// Package guard decides, for every navigation, whether the client may show
// the requested screen or must redirect to authentication or onboarding.
package guard

import (
	"go.uber.org/zap"

	"github.com/CrestNiraj12/terminalconfess/domain"
)

// Reason explains a Decision.
type Reason string

const (
	ReasonPublic       Reason = "public"
	ReasonNoToken      Reason = "no-token"
	ReasonNoUser       Reason = "no-user"
	ReasonNotOnboarded Reason = "not-onboarded"
	ReasonAllowed      Reason = "allowed"
	ReasonUnknownRoute Reason = "unknown-route"
)

// Chrome lists which navigation surfaces are mounted for a route.
type Chrome struct {
	TopNav    bool
	BottomNav bool
	Sidebar   bool
}

// Decision is the outcome of a navigation attempt.
type Decision struct {
	Requested Route
	Target    Route // Where the client ends up
	Redirect  bool
	Reason    Reason
	Chrome    Chrome
	// ScrollReset is set when Target differs from the previous route.
	ScrollReset bool
}

// Guard evaluates navigation events. It keeps the last resolved route so it
// can report scroll resets; it is not safe for concurrent use.
type Guard struct {
	log  *zap.Logger
	last Route
}

// New creates a Guard.
func New(log *zap.Logger) *Guard {
	if log == nil {
		log = zap.NewNop()
	}
	return &Guard{log: log.Named("guard")}
}

// Navigate evaluates path against the session and records the target.
func (g *Guard) Navigate(path string, s domain.Session) Decision {
	d := Evaluate(path, s)
	d.ScrollReset = d.Target != g.last
	g.last = d.Target
	g.log.Debug("navigation",
		zap.String("requested", string(d.Requested)),
		zap.String("target", string(d.Target)),
		zap.String("reason", string(d.Reason)),
	)
	return d
}

// Current returns the last resolved route.
func (g *Guard) Current() Route {
	return g.last
}

// Evaluate applies the gating rules in order: public routes are always
// allowed and unknown paths fall through to NotFound ungated; without a
// token every other route redirects to Auth; a protected route needs a user
// record that has finished onboarding.
func Evaluate(path string, s domain.Session) Decision {
	r := Normalize(path)
	d := Decision{Requested: r, Target: r, Reason: ReasonAllowed}

	switch {
	case r.IsPublic():
		d.Reason = ReasonPublic
	case r == NotFound:
		d.Reason = ReasonUnknownRoute
	case !s.HasToken():
		d.Target, d.Redirect, d.Reason = Auth, true, ReasonNoToken
	case r.IsProtected() && s.User == nil:
		d.Target, d.Redirect, d.Reason = Auth, true, ReasonNoUser
	case r.IsProtected() && !s.User.IsOnboarded:
		d.Target, d.Redirect, d.Reason = Onboarding, true, ReasonNotOnboarded
	}
	d.Chrome = ChromeFor(d.Target)
	return d
}

// ChromeFor returns the navigation surfaces mounted on r. Public screens
// and the not-found screen render bare; profile and create hide the top bar.
func ChromeFor(r Route) Chrome {
	if r.IsPublic() || r == NotFound {
		return Chrome{}
	}
	c := Chrome{TopNav: true, BottomNav: true, Sidebar: true}
	if r == Profile || r == Create {
		c.TopNav = false
	}
	return c
}

// AfterAuth returns where a freshly signed-in user goes: back to from when
// onboarded, otherwise to Onboarding.
func AfterAuth(u *domain.User, from Route) Route {
	if u == nil || !u.IsOnboarded {
		return Onboarding
	}
	if from == "" || from.IsPublic() || from == NotFound {
		return Home
	}
	return from
}
