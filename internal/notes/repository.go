// ABOUTME: Note repository owning the in-memory collection for the active user.
// ABOUTME: Every mutation stamps updatedAt and persists synchronously.

package notes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/inkwell-notes/inkwell/internal/clock"
	"github.com/inkwell-notes/inkwell/internal/ident"
	"github.com/inkwell-notes/inkwell/internal/models"
	"github.com/inkwell-notes/inkwell/internal/remote"
	"github.com/inkwell-notes/inkwell/internal/store"
)

var (
	ErrPrefixTooShort  = errors.New("prefix must be at least 6 characters")
	ErrAmbiguousPrefix = errors.New("prefix matches multiple notes")
	ErrNoteNotFound    = errors.New("note not found")
)

// Repository holds the active user's notes. Switching users discards the
// collection and reloads from the store. Mutating methods that target a
// missing id are silent no-ops, reported through their return value.
type Repository struct {
	store   *store.Store
	clock   clock.Clock
	newID   func() string
	samples remote.SampleFetcher
	log     zerolog.Logger

	user        string
	notes       []models.Note
	sampleLimit int
}

// Option configures a Repository.
type Option func(*Repository)

// WithClock replaces the wall clock, for tests.
func WithClock(c clock.Clock) Option {
	return func(r *Repository) { r.clock = c }
}

// WithIDFunc replaces the id generator, for tests.
func WithIDFunc(fn func() string) Option {
	return func(r *Repository) { r.newID = fn }
}

// WithSampleLimit caps how many remote samples seed an empty collection.
func WithSampleLimit(n int) Option {
	return func(r *Repository) {
		if n > 0 {
			r.sampleLimit = n
		}
	}
}

func NewRepository(s *store.Store, samples remote.SampleFetcher, log zerolog.Logger, opts ...Option) *Repository {
	r := &Repository{
		store:       s,
		clock:       clock.System{},
		newID:       ident.NewID,
		samples:     samples,
		log:         log,
		sampleLimit: defaultSampleLimit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create fills defaults on a partial note. Pure constructor: no insertion,
// no persistence.
func (r *Repository) Create(partial models.Note) models.Note {
	now := r.clock.Now()
	note := partial
	if note.ID == "" {
		note.ID = r.newID()
	}
	if note.Tags == nil {
		note.Tags = []string{}
	}
	if note.CreatedAt == "" {
		note.CreatedAt = now
	}
	if note.UpdatedAt == "" {
		note.UpdatedAt = note.CreatedAt
	}
	return note
}

// Load replaces the in-memory collection with the user's persisted notes and
// guarantees at least one note exists afterwards.
func (r *Repository) Load(ctx context.Context, user string) {
	r.user = user
	r.notes = r.store.LoadNotes(user)
	r.ensureSeeded(ctx)
}

// User returns the identity the collection is currently scoped to.
func (r *Repository) User() string {
	return r.user
}

// All returns the live collection in most-recently-used order. Callers that
// need a reordered view go through the query engine, which copies.
func (r *Repository) All() []models.Note {
	return r.notes
}

// Get returns a pointer into the live collection, or nil.
func (r *Repository) Get(id string) *models.Note {
	for i := range r.notes {
		if r.notes[i].ID == id {
			return &r.notes[i]
		}
	}
	return nil
}

// GetByPrefix resolves a note by an id prefix of at least 6 characters.
func (r *Repository) GetByPrefix(prefix string) (*models.Note, error) {
	if len(prefix) < 6 {
		return nil, ErrPrefixTooShort
	}
	var match *models.Note
	count := 0
	for i := range r.notes {
		if strings.HasPrefix(r.notes[i].ID, prefix) {
			match = &r.notes[i]
			count++
		}
	}
	if count == 0 {
		return nil, ErrNoteNotFound
	}
	if count > 1 {
		return nil, fmt.Errorf("%w: %d matches", ErrAmbiguousPrefix, count)
	}
	return match, nil
}

// Persist writes the collection under the active namespace. An empty user
// writes under the guest namespace.
func (r *Repository) Persist() {
	r.store.SaveNotes(r.user, r.notes)
}

// NewOptions seeds a freshly created note from the surrounding view state.
type NewOptions struct {
	Tags      []string
	FolderID  string
	CreatedAt string // selected calendar date, midnight local, optional
}

// New front-inserts a fresh note so the list stays in most-recently-used
// order, then persists.
func (r *Repository) New(opts NewOptions) models.Note {
	note := r.Create(models.Note{
		Tags:      models.DedupeTags(opts.Tags),
		FolderID:  opts.FolderID,
		CreatedAt: opts.CreatedAt,
	})
	r.notes = append([]models.Note{note}, r.notes...)
	r.Persist()
	return note
}

// Save updates title, content and tags in place. Returns false without any
// state change when the id is gone.
func (r *Repository) Save(id, title, content string, tags []string) bool {
	note := r.Get(id)
	if note == nil {
		return false
	}
	note.Title = strings.TrimSpace(title)
	note.Content = content
	note.Tags = models.DedupeTags(tags)
	note.UpdatedAt = r.clock.Now()
	r.Persist()
	return true
}

// Delete removes the note and returns the id of the new active note. The
// collection never becomes empty: deleting the last remaining note clears its
// fields in place instead of removing it.
func (r *Repository) Delete(id string) (next string, ok bool) {
	idx := -1
	for i := range r.notes {
		if r.notes[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", false
	}

	if len(r.notes) == 1 {
		only := &r.notes[0]
		only.Title = ""
		only.Content = ""
		only.Tags = []string{}
		only.UpdatedAt = r.clock.Now()
		r.Persist()
		return only.ID, true
	}

	r.notes = append(r.notes[:idx], r.notes[idx+1:]...)
	r.Persist()
	// Simplest deterministic successor: first remaining note.
	return r.notes[0].ID, true
}

// Duplicate copies title, content and tags under a fresh id with fresh
// timestamps and front-inserts the copy.
func (r *Repository) Duplicate(id string) (models.Note, bool) {
	src := r.Get(id)
	if src == nil {
		return models.Note{}, false
	}
	title := "Untitled note (Copy)"
	if src.Title != "" {
		title = src.Title + " (Copy)"
	}
	copyNote := r.Create(models.Note{
		Title:   title,
		Content: src.Content,
		Tags:    append([]string(nil), src.Tags...),
	})
	r.notes = append([]models.Note{copyNote}, r.notes...)
	r.Persist()
	return copyNote, true
}

// AddTag appends tag to the note unless already present.
func (r *Repository) AddTag(id, tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	note := r.Get(id)
	if note == nil || note.HasTag(tag) {
		return false
	}
	note.Tags = append(note.Tags, tag)
	note.UpdatedAt = r.clock.Now()
	r.Persist()
	return true
}

func (r *Repository) RemoveTag(id, tag string) bool {
	note := r.Get(id)
	if note == nil {
		return false
	}
	kept := note.Tags[:0]
	removed := false
	for _, t := range note.Tags {
		if t == tag {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	if !removed {
		return false
	}
	note.Tags = kept
	note.UpdatedAt = r.clock.Now()
	r.Persist()
	return true
}

// MoveToFolder re-parents the note. An empty folderID files it as unfiled.
func (r *Repository) MoveToFolder(id, folderID string) bool {
	note := r.Get(id)
	if note == nil {
		return false
	}
	note.FolderID = folderID
	note.UpdatedAt = r.clock.Now()
	r.Persist()
	return true
}

// SetTheme records a per-note theme, normalized to a known one.
func (r *Repository) SetTheme(id, theme string) bool {
	note := r.Get(id)
	if note == nil {
		return false
	}
	note.Theme = models.NormalizeTheme(theme)
	r.Persist()
	return true
}

// SetEditorPattern records the editor surface for a note. Unknown patterns
// are rejected rather than normalized.
func (r *Repository) SetEditorPattern(id, pattern string) bool {
	if !models.ValidEditorPattern(pattern) {
		return false
	}
	note := r.Get(id)
	if note == nil {
		return false
	}
	note.EditorPattern = pattern
	r.Persist()
	return true
}

// DetachFolder clears folderID from every note referencing it and persists.
// Called when a folder is deleted; the cascade targets unfiled, never the
// notes themselves.
func (r *Repository) DetachFolder(folderID string) int {
	if folderID == "" {
		return 0
	}
	detached := 0
	for i := range r.notes {
		if r.notes[i].FolderID == folderID {
			r.notes[i].FolderID = ""
			detached++
		}
	}
	if detached > 0 {
		r.Persist()
	}
	return detached
}
