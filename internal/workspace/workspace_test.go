// ABOUTME: Tests for the workspace controller.
// ABOUTME: Exercises view controls, note/folder flows and observer fan-out.

package workspace

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-notes/inkwell/internal/folders"
	"github.com/inkwell-notes/inkwell/internal/models"
	"github.com/inkwell-notes/inkwell/internal/notes"
	"github.com/inkwell-notes/inkwell/internal/query"
	"github.com/inkwell-notes/inkwell/internal/session"
	"github.com/inkwell-notes/inkwell/internal/store"
)

type recordingObserver struct {
	notesChanged   int
	activeChanged  int
	foldersChanged int
	users          []string
}

func (r *recordingObserver) NotesChanged()              { r.notesChanged++ }
func (r *recordingObserver) ActiveNoteChanged(string)   { r.activeChanged++ }
func (r *recordingObserver) FoldersChanged()            { r.foldersChanged++ }
func (r *recordingObserver) UserChanged(user string)    { r.users = append(r.users, user) }

func newTestWorkspace(t *testing.T) (*Workspace, *store.Store) {
	t.Helper()
	s, err := store.Open(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})

	noteRepo := notes.NewRepository(s, nil, zerolog.Nop())
	folderRepo := folders.NewRepository(s, zerolog.Nop())
	sess := session.NewManager(s, zerolog.Nop())

	w := New(s, noteRepo, folderRepo, sess, nil, zerolog.Nop())
	w.Init(context.Background())
	return w, s
}

func TestInitSeedsAndSelectsFirstNote(t *testing.T) {
	w, _ := newTestWorkspace(t)

	all := w.Notes.All()
	require.NotEmpty(t, all, "a fresh workspace is never empty")
	assert.Equal(t, all[0].ID, w.ActiveNoteID())
	assert.NotNil(t, w.ActiveNote())
}

func TestNewNoteInheritsViewState(t *testing.T) {
	w, _ := newTestWorkspace(t)
	folder := w.CreateFolder("Trips")
	w.SetScope(query.Folder(folder.ID))
	w.SetFilterTag("travel")
	w.SetDate("2026-05-01")

	note := w.NewNote()

	assert.Equal(t, []string{"travel"}, note.Tags)
	assert.Equal(t, folder.ID, note.FolderID)
	assert.Equal(t, "2026-05-01T00:00:00.000Z", note.CreatedAt)
	assert.Equal(t, note.ID, w.ActiveNoteID())
}

func TestNewNoteIgnoresAllFilter(t *testing.T) {
	w, _ := newTestWorkspace(t)
	w.SetFilterTag(query.TagAll)

	note := w.NewNote()
	assert.Empty(t, note.Tags)
}

func TestSaveNoteKeepsActiveFilterVisible(t *testing.T) {
	w, _ := newTestWorkspace(t)
	w.SetFilterTag("work")
	note := w.NewNote()

	// Untagged save while the chip is active re-applies the filter tag.
	require.True(t, w.SaveNote(note.ID, "Title", "content", nil))
	assert.True(t, w.Notes.Get(note.ID).HasTag("work"))

	// Explicit tags win.
	require.True(t, w.SaveNote(note.ID, "Title", "content", []string{"other"}))
	assert.Equal(t, []string{"other"}, w.Notes.Get(note.ID).Tags)
}

func TestDeleteNoteMovesSelection(t *testing.T) {
	w, _ := newTestWorkspace(t)
	first := w.NewNote()
	second := w.NewNote()

	require.True(t, w.DeleteNote(second.ID))
	assert.Equal(t, first.ID, w.ActiveNoteID())

	assert.False(t, w.DeleteNote("missing"))
}

func TestDuplicateNoteBecomesActive(t *testing.T) {
	w, _ := newTestWorkspace(t)
	note := w.NewNote()
	w.SaveNote(note.ID, "Original", "", nil)

	dup, ok := w.DuplicateNote(note.ID)
	require.True(t, ok)
	assert.Equal(t, "Original (Copy)", dup.Title)
	assert.Equal(t, dup.ID, w.ActiveNoteID())
}

func TestMoveToFolderValidatesTarget(t *testing.T) {
	w, _ := newTestWorkspace(t)
	note := w.NewNote()

	assert.False(t, w.MoveToFolder(note.ID, "no-such-folder"))

	folder := w.CreateFolder("Trips")
	require.True(t, w.MoveToFolder(note.ID, folder.ID))
	assert.Equal(t, folder.ID, w.Notes.Get(note.ID).FolderID)

	// Empty folder id means unfile, always allowed.
	require.True(t, w.MoveToFolder(note.ID, ""))
	assert.Empty(t, w.Notes.Get(note.ID).FolderID)
}

func TestDeleteFolderUnfilesNotes(t *testing.T) {
	w, _ := newTestWorkspace(t)
	folder := w.CreateFolder("Trips")
	note := w.NewNote()
	require.True(t, w.MoveToFolder(note.ID, folder.ID))
	w.SetScope(query.Folder(folder.ID))

	require.True(t, w.DeleteFolder(folder.ID))

	// Note survives, unfiled; scope resets off the dead folder.
	got := w.Notes.Get(note.ID)
	require.NotNil(t, got)
	assert.Empty(t, got.FolderID)
	assert.Empty(t, w.Scope().FolderID())
	assert.Contains(t, ids(w.View()), note.ID)
}

func TestViewAppliesControls(t *testing.T) {
	w, _ := newTestWorkspace(t)
	folder := w.CreateFolder("Work")

	a := w.NewNote()
	w.SaveNote(a.ID, "Alpha", "about planning", []string{"work"})
	b := w.NewNote()
	w.SaveNote(b.ID, "Beta", "groceries", []string{"home"})
	w.MoveToFolder(b.ID, folder.ID)

	// Default scope is unfiled: b is hidden.
	assert.NotContains(t, ids(w.View()), b.ID)

	w.SetScope(query.Everything())
	w.SetFilterTag("work")
	w.SetSearch("planning")
	got := w.View()
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)
}

func TestSignInMergesGuestNotes(t *testing.T) {
	w, s := newTestWorkspace(t)
	note := w.NewNote()
	w.SaveNote(note.ID, "Guest work", "important", nil)
	guestCount := len(w.Notes.All())

	_, err := w.SignUp("alice", "secret123", "secret123", "")
	require.NoError(t, err)

	merged, err := w.SignIn(context.Background(), "alice", "secret123")
	require.NoError(t, err)
	assert.True(t, merged)

	assert.Equal(t, "alice", w.Session.ActiveUser())
	assert.Equal(t, "alice", w.Notes.User())
	assert.Len(t, w.Notes.All(), guestCount)
	assert.NotNil(t, w.Notes.Get(note.ID), "guest note should follow the user")
	assert.Len(t, s.LoadNotes("alice"), guestCount)
}

func TestSignInSkipsMergeForPopulatedAccount(t *testing.T) {
	w, s := newTestWorkspace(t)
	guestNote := w.NewNote()
	s.SaveNotes("alice", []models.Note{{ID: "existing", Title: "Mine"}})

	_, err := w.SignUp("alice", "secret123", "secret123", "")
	require.NoError(t, err)

	merged, err := w.SignIn(context.Background(), "alice", "secret123")
	require.NoError(t, err)
	assert.False(t, merged)

	assert.Nil(t, w.Notes.Get(guestNote.ID), "guest notes stay behind")
	assert.NotNil(t, w.Notes.Get("existing"))
}

func TestSignInBadPassword(t *testing.T) {
	w, _ := newTestWorkspace(t)
	_, err := w.SignUp("alice", "secret123", "secret123", "")
	require.NoError(t, err)

	_, err = w.SignIn(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, session.ErrInvalidCredentials)
	assert.Empty(t, w.Session.ActiveUser(), "failed login must not change identity")
}

func TestSignOutReturnsToGuest(t *testing.T) {
	w, _ := newTestWorkspace(t)
	guestNote := w.NewNote()
	_, err := w.SignUp("alice", "secret123", "secret123", "")
	require.NoError(t, err)
	_, err = w.SignIn(context.Background(), "alice", "secret123")
	require.NoError(t, err)

	w.SignOut(context.Background())

	assert.Empty(t, w.Session.ActiveUser())
	assert.Empty(t, w.Notes.User())
	assert.NotNil(t, w.Notes.Get(guestNote.ID), "guest collection restored")
}

func TestSessionPersistsAcrossInit(t *testing.T) {
	w, _ := newTestWorkspace(t)
	_, err := w.SignUp("alice", "secret123", "secret123", "")
	require.NoError(t, err)
	_, err = w.SignIn(context.Background(), "alice", "secret123")
	require.NoError(t, err)

	// A second Init simulates restart with the same store.
	w.Init(context.Background())
	assert.Equal(t, "alice", w.Notes.User())
}

func TestObserversNotified(t *testing.T) {
	w, _ := newTestWorkspace(t)
	obs := &recordingObserver{}
	w.Subscribe(obs)

	w.NewNote()
	assert.Positive(t, obs.notesChanged)
	assert.Positive(t, obs.activeChanged)

	w.CreateFolder("Trips")
	assert.Positive(t, obs.foldersChanged)

	w.Init(context.Background())
	assert.Equal(t, []string{""}, obs.users)
}

func TestThemeRoundTrip(t *testing.T) {
	w, _ := newTestWorkspace(t)

	assert.Equal(t, models.DefaultTheme, w.Theme())
	w.SetTheme("corporate-gray")
	assert.Equal(t, "corporate-gray", w.Theme())
}

func ids(notes []models.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.ID
	}
	return out
}
