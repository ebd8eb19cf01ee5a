// ABOUTME: Session and identity: active user, local accounts, guest migration.
// ABOUTME: Validation errors abort with no partial state change.

package session

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell-notes/inkwell/internal/clock"
	"github.com/inkwell-notes/inkwell/internal/models"
	"github.com/inkwell-notes/inkwell/internal/store"
)

const minPasswordLen = 6

var (
	ErrEmptyUsername      = errors.New("username is required")
	ErrUsernameTaken      = errors.New("that username is already taken")
	ErrEmailRegistered    = errors.New("that email is already registered")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidCredentials = errors.New("invalid login credentials")
)

// Manager owns the active-user scalar and the local account list. Cloud auth
// is a separate collaborator; everything here works offline.
type Manager struct {
	store *store.Store
	clock clock.Clock
	log   zerolog.Logger
}

type Option func(*Manager)

func WithClock(c clock.Clock) Option {
	return func(m *Manager) { m.clock = c }
}

func NewManager(s *store.Store, log zerolog.Logger, opts ...Option) *Manager {
	m := &Manager{store: s, clock: clock.System{}, log: log}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ActiveUser returns the persisted active username; empty means guest.
func (m *Manager) ActiveUser() string {
	return m.store.ActiveUser()
}

func (m *Manager) SetActiveUser(username string) {
	m.store.SetActiveUser(username)
}

func (m *Manager) ClearActiveUser() {
	m.store.ClearActiveUser()
}

// SignUp validates and creates a local account. On any validation failure
// the account list is left untouched.
func (m *Manager) SignUp(username, password, confirm, email string) (models.Account, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return models.Account{}, ErrEmptyUsername
	}
	if len(password) < minPasswordLen {
		return models.Account{}, ErrPasswordTooShort
	}
	if password != confirm {
		return models.Account{}, ErrPasswordMismatch
	}

	accounts := m.store.LoadAccounts()
	for _, a := range accounts {
		if strings.EqualFold(a.Username, username) {
			return models.Account{}, ErrUsernameTaken
		}
		if email != "" && a.Email != "" && strings.EqualFold(a.Email, email) {
			return models.Account{}, ErrEmailRegistered
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, err
	}

	account := models.Account{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		CreatedAt:    m.clock.Now(),
	}
	accounts = append(accounts, account)
	m.store.SaveAccounts(accounts)
	m.log.Info().Str("user", username).Msg("account created")
	return account, nil
}

// SignIn matches by username or email (case-insensitive) and verifies the
// password. The error never says which part was wrong.
func (m *Manager) SignIn(usernameOrEmail, password string) (models.Account, error) {
	needle := strings.TrimSpace(usernameOrEmail)
	for _, a := range m.store.LoadAccounts() {
		if !strings.EqualFold(a.Username, needle) &&
			!(a.Email != "" && strings.EqualFold(a.Email, needle)) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
			return models.Account{}, ErrInvalidCredentials
		}
		return a, nil
	}
	return models.Account{}, ErrInvalidCredentials
}

// MergeGuestData copies the guest note collection into the target user's
// namespace, but only when the target has no notes yet (merge-if-empty).
// Returns whether a merge happened so callers can trigger a follow-up cloud
// push.
func (m *Manager) MergeGuestData(target string) bool {
	if target == "" {
		return false
	}
	guest := m.store.LoadNotes("")
	if len(guest) == 0 {
		return false
	}
	if existing := m.store.LoadNotes(target); len(existing) > 0 {
		return false
	}
	m.store.SaveNotes(target, guest)
	m.log.Info().Str("user", target).Int("notes", len(guest)).Msg("guest notes migrated")
	return true
}
