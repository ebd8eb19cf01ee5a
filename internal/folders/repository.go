// ABOUTME: Folder repository scoped to the active user.
// ABOUTME: Create/rename/delete; cascade-to-null lives with the note repository.

package folders

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/inkwell-notes/inkwell/internal/clock"
	"github.com/inkwell-notes/inkwell/internal/ident"
	"github.com/inkwell-notes/inkwell/internal/models"
	"github.com/inkwell-notes/inkwell/internal/store"
)

const defaultName = "New Folder"

type Repository struct {
	store *store.Store
	clock clock.Clock
	newID func() string
	log   zerolog.Logger

	user    string
	folders []models.Folder
}

type Option func(*Repository)

func WithClock(c clock.Clock) Option {
	return func(r *Repository) { r.clock = c }
}

func WithIDFunc(fn func() string) Option {
	return func(r *Repository) { r.newID = fn }
}

func NewRepository(s *store.Store, log zerolog.Logger, opts ...Option) *Repository {
	r := &Repository{
		store: s,
		clock: clock.System{},
		newID: ident.NewID,
		log:   log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load replaces the collection with the user's persisted folders.
func (r *Repository) Load(user string) {
	r.user = user
	r.folders = r.store.LoadFolders(user)
}

func (r *Repository) All() []models.Folder {
	return r.folders
}

func (r *Repository) Get(id string) *models.Folder {
	for i := range r.folders {
		if r.folders[i].ID == id {
			return &r.folders[i]
		}
	}
	return nil
}

// Create appends a new folder and persists immediately.
func (r *Repository) Create(name string) models.Folder {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultName
	}
	folder := models.Folder{
		ID:        r.newID(),
		Name:      name,
		CreatedAt: r.clock.Now(),
	}
	r.folders = append(r.folders, folder)
	r.persist()
	return folder
}

// Rename updates the folder name in place. No-op when the id is gone.
func (r *Repository) Rename(id, newName string) bool {
	folder := r.Get(id)
	if folder == nil {
		return false
	}
	folder.Name = newName
	r.persist()
	return true
}

// Delete removes the folder record. The caller pairs this with the note
// repository's DetachFolder so referencing notes become unfiled; notes are
// never deleted by a folder delete.
func (r *Repository) Delete(id string) bool {
	for i := range r.folders {
		if r.folders[i].ID == id {
			r.folders = append(r.folders[:i], r.folders[i+1:]...)
			r.persist()
			return true
		}
	}
	return false
}

func (r *Repository) persist() {
	r.store.SaveFolders(r.user, r.folders)
}
