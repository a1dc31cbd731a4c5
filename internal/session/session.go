// package session implements login, registration, and the reactive session store
package session

import (
	"github.com/charmbracelet/log"
	"github.com/pixelthorn/gdx/internal/models"
	"github.com/pixelthorn/gdx/internal/shared"
	"github.com/pixelthorn/gdx/internal/storage"
	"github.com/pixelthorn/gdx/internal/store"
)

// CredentialMatcher decides whether a presented secret matches a stored one.
//
// The default is plaintext equality, which is demo-only behavior carried over
// deliberately; a hashing scheme can be substituted here without touching any
// session call site.
type CredentialMatcher func(stored, presented string) bool

// PlaintextMatcher compares secrets byte for byte, case-sensitive.
func PlaintextMatcher(stored, presented string) bool { return stored == presented }

// Store is the session store: a [store.Store] over the current user's public
// profile, nil meaning anonymous, plus the durable user directory.
//
// State machine: Anonymous -> Authenticated only via a successful [Store.Login];
// Authenticated -> Anonymous only via [Store.Logout]. There is no automatic
// expiry; a session persists across restarts until explicit logout.
type Store struct {
	store     *store.Store[*models.User]
	directory *Directory
	match     CredentialMatcher
	logger    *log.Logger
}

// Opts contains configuration options for creating a session [Store].
type Opts struct {
	KV         storage.KV
	SessionKey string // durable-storage key for the session value
	UsersKey   string // durable-storage key for the user directory
	Matcher    CredentialMatcher
	Logger     *log.Logger
}

// New creates a session store, loading any persisted session and directory.
func New(opts Opts) *Store {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Matcher == nil {
		opts.Matcher = PlaintextMatcher
	}

	return &Store{
		store:     store.New(opts.KV, opts.SessionKey, (*models.User)(nil), opts.Logger),
		directory: NewDirectory(opts.KV, opts.UsersKey, opts.Logger),
		match:     opts.Matcher,
		logger:    opts.Logger,
	}
}

// Login scans the user directory for an entry whose email and secret both
// match exactly. On match the session becomes that user's public profile and
// ok is true. On no match nothing mutates and ok is false; bad credentials
// are a result, not an error.
func (s *Store) Login(email, password string) (bool, error) {
	user, found := s.directory.FindByEmail(email)
	if !found || !s.match(user.Password, password) {
		s.logger.Debug("login rejected", "email", email)
		return false, nil
	}

	profile := user.Public()
	if err := s.store.Replace(&profile); err != nil {
		return false, err
	}

	s.logger.Info("login", "user", user.ID)
	return true, nil
}

// Register adds user to the directory after assigning a fresh unique
// identifier. A duplicate email (case-sensitive exact match) yields ok=false
// with no mutation. Registration does not log the user in.
func (s *Store) Register(user models.User) (bool, error) {
	if err := user.Validate(); err != nil {
		return false, err
	}

	if _, exists := s.directory.FindByEmail(user.Email); exists {
		s.logger.Debug("registration rejected, email taken", "email", user.Email)
		return false, nil
	}

	user.ID = shared.GenerateID()
	if err := s.directory.Append(user); err != nil {
		return false, err
	}

	s.logger.Info("registered", "user", user.ID)
	return true, nil
}

// Logout replaces the session with anonymous. The user directory is untouched.
func (s *Store) Logout() error {
	return s.store.Replace(nil)
}

// IsAuthenticated reports whether a session is currently present.
func (s *Store) IsAuthenticated() bool {
	return s.store.Snapshot() != nil
}

// SubscribeAuthenticated registers fn on the derived "session is present"
// boolean stream. The current state is replayed immediately.
func (s *Store) SubscribeAuthenticated(fn func(bool)) store.Unsubscribe {
	return s.store.Subscribe(func(u *models.User) { fn(u != nil) })
}

// Subscribe registers fn on the session stream; nil means anonymous.
func (s *Store) Subscribe(fn func(*models.User)) store.Unsubscribe {
	return s.store.Subscribe(fn)
}

// CurrentUser returns the current session synchronously; nil means anonymous.
func (s *Store) CurrentUser() *models.User {
	return s.store.Snapshot()
}

// Directory exposes the durable user directory.
func (s *Store) Directory() *Directory {
	return s.directory
}
