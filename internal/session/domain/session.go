package domain

import (
	"errors"
	"sync"
)

// Screen identifies which of the four screens is active
type Screen string

const (
	ScreenLogin     Screen = "login"
	ScreenDashboard Screen = "dashboard"
	ScreenInventory Screen = "inventory"
	ScreenSales     Screen = "sales"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrUnknownScreen    = errors.New("unknown screen")
	ErrScreenNotActive  = errors.New("screen is not active")
)

// NavigationTargets are the screens reachable once authenticated. There is no
// transition back to the login screen; the session has no logout.
var NavigationTargets = []Screen{ScreenDashboard, ScreenInventory, ScreenSales}

// Credentials is what the login form submits
type Credentials struct {
	Email    string
	Password string
}

// Session is the process-lifetime state: the auth flag and the currently
// active screen. Exactly one screen is active at a time. The mutex is an
// artifact of serving the session over HTTP; the modeled workload is a single
// user driving one screen.
type Session struct {
	mu            sync.Mutex
	authenticator Authenticator
	authenticated bool
	current       Screen
	email         string
}

// NewSession creates a logged-out session gated by the given authenticator
func NewSession(authenticator Authenticator) *Session {
	return &Session{
		authenticator: authenticator,
		current:       ScreenLogin,
	}
}

// Login runs the credentials through the authenticator and, on success,
// moves the session from the login screen to the dashboard. With the default
// AllowAll authenticator this never fails.
func (s *Session) Login(creds Credentials) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.authenticator.Authenticate(creds) {
		return false
	}

	s.authenticated = true
	s.email = creds.Email
	s.current = ScreenDashboard
	return true
}

// Navigate jumps to the target screen. Any authenticated screen may navigate
// to any navigation target; the only rejections are an unauthenticated
// session and a target outside the screen set.
func (s *Session) Navigate(target Screen) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.authenticated {
		return ErrNotAuthenticated
	}

	for _, t := range NavigationTargets {
		if t == target {
			s.current = target
			return nil
		}
	}
	return ErrUnknownScreen
}

// Current returns the active screen
func (s *Session) Current() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Authenticated reports whether login has succeeded
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Email returns the address submitted at login
func (s *Session) Email() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.email
}

// Require verifies that the given screen is the active one
func (s *Session) Require(screen Screen) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.authenticated {
		return ErrNotAuthenticated
	}
	if s.current != screen {
		return ErrScreenNotActive
	}
	return nil
}
