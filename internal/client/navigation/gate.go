// Package navigation decides which screens are reachable for a given
// session state.
package navigation

import (
	"errors"
	"slices"
	"sync"

	"github.com/dmitrijs2005/gophsession/internal/client/models"
)

type Screen string

const (
	ScreenSplash Screen = "splash"
	ScreenLogin  Screen = "login"
	ScreenSignup Screen = "signup"
	ScreenHome   Screen = "home"
)

var ErrScreenUnavailable = errors.New("screen is not available")

// Route is the set of screens reachable in one session state and the one
// shown first.
type Route struct {
	Screens []Screen
	Initial Screen
}

// Allows reports whether screen belongs to the route.
func (r Route) Allows(screen Screen) bool {
	return slices.Contains(r.Screens, screen)
}

func (r Route) equal(o Route) bool {
	return r.Initial == o.Initial && slices.Equal(r.Screens, o.Screens)
}

// Resolve maps a session to its route. While restoring only the splash
// screen is shown; without a user only the auth screens; with a user only
// the home screen.
func Resolve(s models.Session) Route {
	switch {
	case s.Restoring:
		return Route{Screens: []Screen{ScreenSplash}, Initial: ScreenSplash}
	case s.User == nil:
		return Route{Screens: []Screen{ScreenLogin, ScreenSignup}, Initial: ScreenLogin}
	default:
		return Route{Screens: []Screen{ScreenHome}, Initial: ScreenHome}
	}
}

// Navigator tracks the current screen. It is safe for concurrent use.
type Navigator struct {
	mu      sync.Mutex
	route   Route
	current Screen
}

// NewNavigator starts on the route of s.
func NewNavigator(s models.Session) *Navigator {
	r := Resolve(s)
	return &Navigator{route: r, current: r.Initial}
}

// Sync applies a new session state. When the reachable screens change the
// navigator jumps to the new route's initial screen; otherwise the current
// screen is kept. It reports whether the screen changed.
func (n *Navigator) Sync(s models.Session) bool {
	r := Resolve(s)

	n.mu.Lock()
	defer n.mu.Unlock()

	if r.equal(n.route) {
		return false
	}
	n.route = r
	changed := n.current != r.Initial
	n.current = r.Initial
	return changed
}

// Navigate moves to screen if the current route allows it.
func (n *Navigator) Navigate(screen Screen) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.route.Allows(screen) {
		return ErrScreenUnavailable
	}
	n.current = screen
	return nil
}

func (n *Navigator) Current() Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *Navigator) Route() Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return Route{Screens: slices.Clone(n.route.Screens), Initial: n.route.Initial}
}
