// ABOUTME: Application controller owning workspace state and repositories.
// ABOUTME: Observers replace callback bags; the core knows nothing of rendering.

package workspace

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/inkwell-notes/inkwell/internal/folders"
	"github.com/inkwell-notes/inkwell/internal/models"
	"github.com/inkwell-notes/inkwell/internal/notes"
	"github.com/inkwell-notes/inkwell/internal/query"
	"github.com/inkwell-notes/inkwell/internal/remote"
	"github.com/inkwell-notes/inkwell/internal/session"
	"github.com/inkwell-notes/inkwell/internal/store"
)

// Observer receives state-change notifications. Implementations render;
// the workspace never does.
type Observer interface {
	NotesChanged()
	ActiveNoteChanged(id string)
	FoldersChanged()
	UserChanged(user string)
}

// Workspace is the single owner of mutable application state. All mutations
// happen synchronously on the caller's goroutine; there is no background
// work in the core.
type Workspace struct {
	Notes   *notes.Repository
	Folders *folders.Repository
	Session *session.Manager

	store *store.Store
	auth  remote.AuthProvider
	log   zerolog.Logger

	observers []Observer

	activeNoteID string
	scope        query.Scope
	filterTag    string
	search       string
	date         string
	sort         query.SortMode
}

func New(s *store.Store, n *notes.Repository, f *folders.Repository, sess *session.Manager, auth remote.AuthProvider, log zerolog.Logger) *Workspace {
	return &Workspace{
		Notes:   n,
		Folders: f,
		Session: sess,
		store:   s,
		auth:    auth,
		log:     log,
		scope:   query.Unfiled(),
		sort:    query.SortUpdatedDesc,
	}
}

func (w *Workspace) Subscribe(o Observer) {
	w.observers = append(w.observers, o)
}

func (w *Workspace) notifyNotes() {
	for _, o := range w.observers {
		o.NotesChanged()
	}
}

func (w *Workspace) notifyActive() {
	for _, o := range w.observers {
		o.ActiveNoteChanged(w.activeNoteID)
	}
}

func (w *Workspace) notifyFolders() {
	for _, o := range w.observers {
		o.FoldersChanged()
	}
}

func (w *Workspace) notifyUser(user string) {
	for _, o := range w.observers {
		o.UserChanged(user)
	}
}

// Init loads the persisted session and the active user's collections. The
// first note becomes active.
func (w *Workspace) Init(ctx context.Context) {
	user := w.Session.ActiveUser()
	w.loadFor(ctx, user)
	w.notifyUser(user)
}

func (w *Workspace) loadFor(ctx context.Context, user string) {
	w.Notes.Load(ctx, user)
	w.Folders.Load(user)
	w.activeNoteID = ""
	if all := w.Notes.All(); len(all) > 0 {
		w.activeNoteID = all[0].ID
	}
	w.scope = query.Unfiled()
	w.notifyNotes()
	w.notifyFolders()
	w.notifyActive()
}

// ActiveNote returns the currently selected note, or nil.
func (w *Workspace) ActiveNote() *models.Note {
	return w.Notes.Get(w.activeNoteID)
}

func (w *Workspace) ActiveNoteID() string {
	return w.activeNoteID
}

func (w *Workspace) SetActiveNote(id string) {
	if w.Notes.Get(id) == nil {
		return
	}
	w.activeNoteID = id
	w.notifyActive()
}

// View controls.

func (w *Workspace) SetScope(s query.Scope) {
	w.scope = s
	w.notifyFolders()
	w.notifyNotes()
}

func (w *Workspace) Scope() query.Scope { return w.scope }

func (w *Workspace) SetFilterTag(tag string) {
	w.filterTag = tag
	w.notifyNotes()
}

func (w *Workspace) FilterTag() string { return w.filterTag }

func (w *Workspace) SetSearch(q string) {
	w.search = q
	w.notifyNotes()
}

func (w *Workspace) SetDate(date string) {
	w.date = date
	w.notifyNotes()
}

func (w *Workspace) SetSort(mode query.SortMode) {
	w.sort = mode
	w.notifyNotes()
}

// View runs the query pipeline over the live collection with the current
// controls. Pure with respect to the collection.
func (w *Workspace) View() []models.Note {
	return query.Apply(w.Notes.All(), query.Params{
		Scope:  w.scope,
		Tag:    w.filterTag,
		Search: w.search,
		Date:   w.date,
		Sort:   w.sort,
	})
}

// Note lifecycle.

// NewNote creates a note seeded from the current view state: active tag
// filter, active folder, selected calendar date.
func (w *Workspace) NewNote() models.Note {
	var tags []string
	if w.filterTag != "" && w.filterTag != query.TagAll {
		tags = []string{w.filterTag}
	}
	var createdAt string
	if w.date != "" {
		createdAt = w.date + "T00:00:00.000Z"
	}
	note := w.Notes.New(notes.NewOptions{
		Tags:      tags,
		FolderID:  w.scope.FolderID(),
		CreatedAt: createdAt,
	})
	w.activeNoteID = note.ID
	w.notifyNotes()
	w.notifyActive()
	return note
}

func (w *Workspace) SaveNote(id, title, content string, tags []string) bool {
	if len(tags) == 0 && w.filterTag != "" && w.filterTag != query.TagAll {
		// An untagged save while a filter chip is active keeps the note
		// visible in that filter.
		tags = []string{w.filterTag}
	}
	ok := w.Notes.Save(id, title, content, tags)
	if ok {
		w.notifyNotes()
	}
	return ok
}

func (w *Workspace) DeleteNote(id string) bool {
	next, ok := w.Notes.Delete(id)
	if !ok {
		return false
	}
	w.activeNoteID = next
	w.notifyNotes()
	w.notifyActive()
	return true
}

func (w *Workspace) DuplicateNote(id string) (models.Note, bool) {
	copyNote, ok := w.Notes.Duplicate(id)
	if !ok {
		return models.Note{}, false
	}
	w.activeNoteID = copyNote.ID
	w.notifyNotes()
	w.notifyActive()
	return copyNote, true
}

func (w *Workspace) AddTag(id, tag string) bool {
	if w.Notes.AddTag(id, tag) {
		w.notifyNotes()
		return true
	}
	return false
}

func (w *Workspace) RemoveTag(id, tag string) bool {
	if w.Notes.RemoveTag(id, tag) {
		w.notifyNotes()
		return true
	}
	return false
}

func (w *Workspace) MoveToFolder(noteID, folderID string) bool {
	if folderID != "" && w.Folders.Get(folderID) == nil {
		return false
	}
	if w.Notes.MoveToFolder(noteID, folderID) {
		w.notifyNotes()
		return true
	}
	return false
}

// Folder lifecycle.

func (w *Workspace) CreateFolder(name string) models.Folder {
	folder := w.Folders.Create(name)
	w.notifyFolders()
	return folder
}

func (w *Workspace) RenameFolder(id, name string) bool {
	if w.Folders.Rename(id, name) {
		w.notifyFolders()
		return true
	}
	return false
}

// DeleteFolder removes the folder and re-parents every referencing note to
// unfiled. Notes are never deleted here.
func (w *Workspace) DeleteFolder(id string) bool {
	if !w.Folders.Delete(id) {
		return false
	}
	w.Notes.DetachFolder(id)
	if w.scope.FolderID() == id {
		w.scope = query.Unfiled()
	}
	w.notifyFolders()
	w.notifyNotes()
	return true
}

// Theme preference (workspace-wide; notes may carry their own).

func (w *Workspace) Theme() string {
	return w.store.Theme()
}

func (w *Workspace) SetTheme(theme string) {
	w.store.SetTheme(theme)
}
