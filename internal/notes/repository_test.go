// ABOUTME: Tests for the note repository.
// ABOUTME: Covers seeding, CRUD semantics, tags and the folder cascade.

package notes

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/inkwell-notes/inkwell/internal/clock"
	"github.com/inkwell-notes/inkwell/internal/models"
	"github.com/inkwell-notes/inkwell/internal/remote"
	"github.com/inkwell-notes/inkwell/internal/store"
)

type stubFetcher struct {
	samples []remote.Sample
}

func (s stubFetcher) Fetch(ctx context.Context, limit int) []remote.Sample {
	if len(s.samples) > limit {
		return s.samples[:limit]
	}
	return s.samples
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(t.TempDir(), zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%06d", prefix, n)
	}
}

func newTestRepo(t *testing.T, samples remote.SampleFetcher, opts ...Option) *Repository {
	t.Helper()
	base := []Option{
		WithClock(&clock.Fixed{Times: []string{
			"2026-01-01T00:00:00.000Z",
			"2026-01-02T00:00:00.000Z",
			"2026-01-03T00:00:00.000Z",
			"2026-01-04T00:00:00.000Z",
		}}),
		WithIDFunc(sequentialIDs("note")),
	}
	return NewRepository(newTestStore(t), samples, zerolog.Nop(), append(base, opts...)...)
}

func TestCreateDefaults(t *testing.T) {
	r := newTestRepo(t, nil)

	note := r.Create(models.Note{Title: "Hello"})

	if note.ID == "" {
		t.Error("expected generated id")
	}
	if note.Tags == nil {
		t.Error("tags should default to empty slice, not nil")
	}
	if note.CreatedAt == "" {
		t.Error("createdAt should be stamped")
	}
	if note.UpdatedAt != note.CreatedAt {
		t.Errorf("updatedAt %q should default to createdAt %q", note.UpdatedAt, note.CreatedAt)
	}
}

func TestCreatePreservesProvidedFields(t *testing.T) {
	r := newTestRepo(t, nil)

	note := r.Create(models.Note{ID: "fixed-id", CreatedAt: "2020-05-05T00:00:00.000Z"})

	if note.ID != "fixed-id" {
		t.Errorf("id overwritten: %q", note.ID)
	}
	if note.CreatedAt != "2020-05-05T00:00:00.000Z" {
		t.Errorf("createdAt overwritten: %q", note.CreatedAt)
	}
	if note.UpdatedAt != note.CreatedAt {
		t.Errorf("updatedAt should follow provided createdAt, got %q", note.UpdatedAt)
	}
}

func TestLoadSeedsFromSamples(t *testing.T) {
	fetcher := stubFetcher{samples: []remote.Sample{
		{Title: "alpha", Body: "body a"},
		{Title: "beta", Body: "body b"},
	}}
	r := newTestRepo(t, fetcher)

	r.Load(context.Background(), "")

	all := r.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 seeded notes, got %d", len(all))
	}
	if all[0].Title != "alpha" {
		t.Errorf("first seeded title = %q", all[0].Title)
	}
	if !all[0].HasTag("sample") {
		t.Errorf("seeded notes should carry the sample tag, got %v", all[0].Tags)
	}
}

func TestLoadFallsBackToWelcomeNote(t *testing.T) {
	r := newTestRepo(t, stubFetcher{})

	r.Load(context.Background(), "")

	all := r.All()
	if len(all) != 1 {
		t.Fatalf("expected 1 welcome note, got %d", len(all))
	}
	if all[0].Title != "Welcome to Inkwell" {
		t.Errorf("welcome title = %q", all[0].Title)
	}
	if !all[0].HasTag("getting-started") {
		t.Errorf("welcome tags = %v", all[0].Tags)
	}
}

func TestLoadSkipsSeedingWhenNotesExist(t *testing.T) {
	s := newTestStore(t)
	s.SaveNotes("", []models.Note{{ID: "existing", Title: "Mine"}})
	r := NewRepository(s, stubFetcher{samples: []remote.Sample{{Title: "sample"}}}, zerolog.Nop())

	r.Load(context.Background(), "")

	all := r.All()
	if len(all) != 1 || all[0].ID != "existing" {
		t.Fatalf("existing collection should not be reseeded: %v", all)
	}
}

func TestNewFrontInserts(t *testing.T) {
	r := newTestRepo(t, stubFetcher{})
	r.Load(context.Background(), "")

	created := r.New(NewOptions{Tags: []string{"work", "work"}})

	all := r.All()
	if all[0].ID != created.ID {
		t.Errorf("new note should be first, got %q", all[0].ID)
	}
	if len(created.Tags) != 1 || created.Tags[0] != "work" {
		t.Errorf("tags should be deduped: %v", created.Tags)
	}
}

func TestSave(t *testing.T) {
	r := newTestRepo(t, stubFetcher{})
	r.Load(context.Background(), "")
	id := r.All()[0].ID

	if !r.Save(id, "  Trimmed  ", "new content", []string{"a", "a", "b"}) {
		t.Fatal("save failed")
	}

	note := r.Get(id)
	if note.Title != "Trimmed" {
		t.Errorf("title not trimmed: %q", note.Title)
	}
	if note.Content != "new content" {
		t.Errorf("content = %q", note.Content)
	}
	if len(note.Tags) != 2 {
		t.Errorf("tags not deduped: %v", note.Tags)
	}
	if note.UpdatedAt <= note.CreatedAt {
		t.Errorf("updatedAt %q should advance past createdAt %q", note.UpdatedAt, note.CreatedAt)
	}
}

func TestSaveMissingNote(t *testing.T) {
	r := newTestRepo(t, stubFetcher{})
	r.Load(context.Background(), "")

	if r.Save("no-such-id", "t", "c", nil) {
		t.Error("saving a missing note should return false")
	}
}

func TestDeleteLastNoteClearsInPlace(t *testing.T) {
	r := newTestRepo(t, stubFetcher{})
	r.Load(context.Background(), "")
	id := r.All()[0].ID

	next, ok := r.Delete(id)
	if !ok {
		t.Fatal("delete failed")
	}
	if next != id {
		t.Errorf("successor should be the cleared note itself, got %q", next)
	}

	all := r.All()
	if len(all) != 1 {
		t.Fatalf("collection must never become empty, got %d notes", len(all))
	}
	if all[0].Title != "" || all[0].Content != "" || len(all[0].Tags) != 0 {
		t.Errorf("note should be blank after clearing: %+v", all[0])
	}
	if all[0].ID != id {
		t.Errorf("cleared note should keep its id, got %q", all[0].ID)
	}
}

func TestDeleteSelectsFirstRemaining(t *testing.T) {
	r := newTestRepo(t, stubFetcher{})
	r.Load(context.Background(), "")
	second := r.New(NewOptions{})
	third := r.New(NewOptions{})

	next, ok := r.Delete(third.ID)
	if !ok {
		t.Fatal("delete failed")
	}
	if next != second.ID {
		t.Errorf("successor = %q, want first remaining %q", next, second.ID)
	}
	if len(r.All()) != 2 {
		t.Errorf("expected 2 notes, got %d", len(r.All()))
	}
}

func TestDeleteMissingNote(t *testing.T) {
	r := newTestRepo(t, stubFetcher{})
	r.Load(context.Background(), "")

	if _, ok := r.Delete("no-such-id"); ok {
		t.Error("deleting a missing note should return false")
	}
}

func TestDuplicate(t *testing.T) {
	r := newTestRepo(t, stubFetcher{})
	r.Load(context.Background(), "")
	id := r.All()[0].ID
	r.Save(id, "Original", "body", []string{"keep"})

	dup, ok := r.Duplicate(id)
	if !ok {
		t.Fatal("duplicate failed")
	}

	if dup.ID == id {
		t.Error("copy must get a fresh id")
	}
	if dup.Title != "Original (Copy)" {
		t.Errorf("copy title = %q", dup.Title)
	}
	if dup.Content != "body" {
		t.Errorf("copy content = %q", dup.Content)
	}
	if len(dup.Tags) != 1 || dup.Tags[0] != "keep" {
		t.Errorf("copy tags = %v", dup.Tags)
	}
	if r.All()[0].ID != dup.ID {
		t.Error("copy should be front-inserted")
	}

	// Mutating the copy's tags must not touch the original.
	r.AddTag(dup.ID, "extra")
	if r.Get(id).HasTag("extra") {
		t.Error("original shares tag storage with the copy")
	}
}

func TestDuplicateUntitled(t *testing.T) {
	r := newTestRepo(t, stubFetcher{})
	r.Load(context.Background(), "")
	id := r.All()[0].ID
	r.Save(id, "", "body", nil)

	dup, ok := r.Duplicate(id)
	if !ok {
		t.Fatal("duplicate failed")
	}
	if dup.Title != "Untitled note (Copy)" {
		t.Errorf("untitled copy title = %q", dup.Title)
	}
}

func TestAddRemoveTag(t *testing.T) {
	r := newTestRepo(t, stubFetcher{})
	r.Load(context.Background(), "")
	id := r.All()[0].ID
	r.Save(id, "n", "", nil)

	if !r.AddTag(id, " work ") {
		t.Fatal("add tag failed")
	}
	if !r.Get(id).HasTag("work") {
		t.Errorf("tag should be trimmed before adding: %v", r.Get(id).Tags)
	}
	if r.AddTag(id, "work") {
		t.Error("duplicate tag should be rejected")
	}
	if r.AddTag(id, "   ") {
		t.Error("blank tag should be rejected")
	}

	if !r.RemoveTag(id, "work") {
		t.Fatal("remove tag failed")
	}
	if r.RemoveTag(id, "work") {
		t.Error("removing an absent tag should return false")
	}
}

func TestGetByPrefix(t *testing.T) {
	s := newTestStore(t)
	s.SaveNotes("", []models.Note{{ID: "alpha-note"}, {ID: "bravo-note"}})
	r := NewRepository(s, nil, zerolog.Nop())
	r.Load(context.Background(), "")

	note, err := r.GetByPrefix("alpha-")
	if err != nil {
		t.Fatalf("prefix lookup failed: %v", err)
	}
	if note.ID != "alpha-note" {
		t.Errorf("resolved wrong note %q", note.ID)
	}

	if _, err := r.GetByPrefix("abc"); err != ErrPrefixTooShort {
		t.Errorf("short prefix error = %v", err)
	}
	if _, err := r.GetByPrefix("zzzzzz"); err != ErrNoteNotFound {
		t.Errorf("missing prefix error = %v", err)
	}
}

func TestGetByPrefixAmbiguous(t *testing.T) {
	s := newTestStore(t)
	s.SaveNotes("", []models.Note{{ID: "shared-1"}, {ID: "shared-2"}})
	r := NewRepository(s, nil, zerolog.Nop())
	r.Load(context.Background(), "")

	_, err := r.GetByPrefix("shared")
	if err == nil {
		t.Fatal("expected ambiguity error")
	}
}

func TestSetThemeNormalizes(t *testing.T) {
	r := newTestRepo(t, stubFetcher{})
	r.Load(context.Background(), "")
	id := r.All()[0].ID

	if !r.SetTheme(id, "minimal-white") {
		t.Fatal("set theme failed")
	}
	if r.Get(id).Theme != "minimal-white" {
		t.Errorf("theme = %q", r.Get(id).Theme)
	}

	r.SetTheme(id, "not-a-theme")
	if r.Get(id).Theme != models.DefaultTheme {
		t.Errorf("unknown theme should normalize to default, got %q", r.Get(id).Theme)
	}
	if r.SetTheme("missing", "minimal-white") {
		t.Error("missing note should return false")
	}
}

func TestSetEditorPattern(t *testing.T) {
	r := newTestRepo(t, stubFetcher{})
	r.Load(context.Background(), "")
	id := r.All()[0].ID

	if !r.SetEditorPattern(id, "grid") {
		t.Fatal("set pattern failed")
	}
	if r.Get(id).EditorPattern != "grid" {
		t.Errorf("pattern = %q", r.Get(id).EditorPattern)
	}
	if r.SetEditorPattern(id, "zigzag") {
		t.Error("unknown pattern should be rejected")
	}
	if r.Get(id).EditorPattern != "grid" {
		t.Error("rejected pattern must not change state")
	}
}

func TestDetachFolder(t *testing.T) {
	s := newTestStore(t)
	s.SaveNotes("", []models.Note{
		{ID: "n1", FolderID: "trips"},
		{ID: "n2", FolderID: "trips"},
		{ID: "n3", FolderID: "work"},
	})
	r := NewRepository(s, nil, zerolog.Nop())
	r.Load(context.Background(), "")

	if detached := r.DetachFolder("trips"); detached != 2 {
		t.Errorf("detached = %d, want 2", detached)
	}
	if r.Get("n1").FolderID != "" || r.Get("n2").FolderID != "" {
		t.Error("trips notes should be unfiled")
	}
	if r.Get("n3").FolderID != "work" {
		t.Error("unrelated note lost its folder")
	}

	// The cascade never deletes notes and must hit the store.
	if got := s.LoadNotes(""); len(got) != 3 {
		t.Errorf("store has %d notes, want 3", len(got))
	}
	if r.DetachFolder("") != 0 {
		t.Error("empty folder id should detach nothing")
	}
}

func TestSwitchingUserReloadsCollection(t *testing.T) {
	s := newTestStore(t)
	s.SaveNotes("", []models.Note{{ID: "guest-note", Title: "guest"}})
	s.SaveNotes("alice", []models.Note{{ID: "alice-note", Title: "alice"}})
	r := NewRepository(s, nil, zerolog.Nop())

	r.Load(context.Background(), "")
	if r.All()[0].ID != "guest-note" {
		t.Fatalf("guest load got %q", r.All()[0].ID)
	}

	r.Load(context.Background(), "alice")
	if r.User() != "alice" {
		t.Errorf("user = %q", r.User())
	}
	if r.All()[0].ID != "alice-note" {
		t.Errorf("alice load got %q", r.All()[0].ID)
	}
}

func TestPersistWritesActiveNamespace(t *testing.T) {
	s := newTestStore(t)
	r := NewRepository(s, stubFetcher{}, zerolog.Nop())
	r.Load(context.Background(), "bob")

	r.New(NewOptions{})

	if got := s.LoadNotes("bob"); len(got) != 2 {
		t.Errorf("bob namespace has %d notes, want 2", len(got))
	}
	if got := s.LoadNotes(""); len(got) != 0 {
		t.Errorf("guest namespace should be untouched, got %d", len(got))
	}
}
