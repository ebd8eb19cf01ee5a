// ABOUTME: Key-value persistence for notes, folders, accounts and session.
// ABOUTME: Badger-backed, namespaced per user, degrades gracefully on errors.

package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v3"
	"github.com/rs/zerolog"

	"github.com/inkwell-notes/inkwell/internal/models"
)

const (
	notesPrefix   = "inkwell.notes."
	foldersPrefix = "inkwell.folders."
	accountsKey   = "inkwell.accounts"
	activeUserKey = "inkwell.activeUser"
	themeKey      = "inkwell.theme"
)

// Store owns the underlying database. It is the only component that touches
// the persisted representation; repositories go through it.
//
// Reads never fail: a missing key, corrupt value, or wrong shape all come
// back as an empty collection. Writes log and swallow failures because the
// in-memory collections stay usable for the rest of the session.
type Store struct {
	db  *badger.DB
	log zerolog.Logger
}

func Open(dir string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, err
	}
	opts := badger.DefaultOptions(filepath.Join(dir, "workspace")).
		WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// NotesKey derives the notes namespace for a user identity. An empty user is
// the guest namespace; this is what keeps one user's records from bleeding
// into another's inside the shared database.
func NotesKey(user string) string {
	return notesPrefix + orGuest(user)
}

func FoldersKey(user string) string {
	return foldersPrefix + orGuest(user)
}

func orGuest(user string) string {
	if user == "" {
		return "guest"
	}
	return user
}

func (s *Store) LoadNotes(user string) []models.Note {
	var notes []models.Note
	s.loadList(NotesKey(user), &notes)
	return notes
}

func (s *Store) SaveNotes(user string, notes []models.Note) {
	s.saveList(NotesKey(user), notes)
}

func (s *Store) LoadFolders(user string) []models.Folder {
	var folders []models.Folder
	s.loadList(FoldersKey(user), &folders)
	return folders
}

func (s *Store) SaveFolders(user string, folders []models.Folder) {
	s.saveList(FoldersKey(user), folders)
}

func (s *Store) LoadAccounts() []models.Account {
	var accounts []models.Account
	s.loadList(accountsKey, &accounts)
	return accounts
}

func (s *Store) SaveAccounts(accounts []models.Account) {
	s.saveList(accountsKey, accounts)
}

// ActiveUser returns the persisted active username, or empty for guest.
func (s *Store) ActiveUser() string {
	return s.getString(activeUserKey)
}

func (s *Store) SetActiveUser(user string) {
	if user == "" {
		return
	}
	s.setString(activeUserKey, user)
}

func (s *Store) ClearActiveUser() {
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(activeUserKey))
	}); err != nil {
		s.log.Warn().Err(err).Msg("clear active user")
	}
}

// Theme returns the persisted UI theme preference, normalized to a known one.
func (s *Store) Theme() string {
	return models.NormalizeTheme(s.getString(themeKey))
}

func (s *Store) SetTheme(theme string) {
	s.setString(themeKey, models.NormalizeTheme(theme))
}

// loadList reads a JSON array value into out. Any failure leaves out empty.
func (s *Store) loadList(key string, out any) {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})
	if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		s.log.Warn().Err(err).Str("key", key).Msg("load degraded to empty collection")
	}
}

func (s *Store) saveList(key string, records any) {
	data, err := json.Marshal(records)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("serialize failed, write dropped")
		return
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	}); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("write failed, collection remains in-memory only")
	}
}

func (s *Store) getString(key string) string {
	var out string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			out = string(val)
			return nil
		})
	})
	if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		s.log.Warn().Err(err).Str("key", key).Msg("read scalar")
	}
	return out
}

func (s *Store) setString(key, val string) {
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(val))
	}); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("write scalar")
	}
}

// RawSet writes an arbitrary value under key. Used by tests to simulate
// corrupt persisted data.
func (s *Store) RawSet(key string, val []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), val)
	})
}
