// ABOUTME: Tests for the folder repository.
// ABOUTME: Folder deletion here only removes the record, never any notes.

package folders

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/inkwell-notes/inkwell/internal/models"
	"github.com/inkwell-notes/inkwell/internal/store"
)

func newTestRepo(t *testing.T) (*Repository, *store.Store) {
	t.Helper()
	s, err := store.Open(t.TempDir(), zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})
	r := NewRepository(s, zerolog.Nop())
	r.Load("")
	return r, s
}

func TestCreate(t *testing.T) {
	r, s := newTestRepo(t)

	folder := r.Create("Trips")

	if folder.ID == "" {
		t.Error("expected generated id")
	}
	if folder.Name != "Trips" {
		t.Errorf("name = %q", folder.Name)
	}
	if folder.CreatedAt == "" {
		t.Error("createdAt should be stamped")
	}
	if got := s.LoadFolders(""); len(got) != 1 {
		t.Errorf("folder not persisted, store has %d", len(got))
	}
}

func TestCreateDefaultsName(t *testing.T) {
	r, _ := newTestRepo(t)

	if folder := r.Create(""); folder.Name != "New Folder" {
		t.Errorf("empty name should default, got %q", folder.Name)
	}
	if folder := r.Create("   "); folder.Name != "New Folder" {
		t.Errorf("blank name should default, got %q", folder.Name)
	}
}

func TestCreateAppendsInOrder(t *testing.T) {
	r, _ := newTestRepo(t)

	first := r.Create("A")
	second := r.Create("B")

	all := r.All()
	if len(all) != 2 || all[0].ID != first.ID || all[1].ID != second.ID {
		t.Errorf("creation order not preserved: %v", all)
	}
}

func TestRename(t *testing.T) {
	r, s := newTestRepo(t)
	folder := r.Create("Old")

	if !r.Rename(folder.ID, "New") {
		t.Fatal("rename failed")
	}
	if r.Get(folder.ID).Name != "New" {
		t.Errorf("name = %q", r.Get(folder.ID).Name)
	}
	if got := s.LoadFolders(""); got[0].Name != "New" {
		t.Errorf("rename not persisted: %q", got[0].Name)
	}

	if r.Rename("missing", "X") {
		t.Error("renaming a missing folder should return false")
	}
}

func TestDelete(t *testing.T) {
	r, s := newTestRepo(t)
	keep := r.Create("Keep")
	gone := r.Create("Gone")

	if !r.Delete(gone.ID) {
		t.Fatal("delete failed")
	}
	if r.Get(gone.ID) != nil {
		t.Error("folder still present after delete")
	}
	if r.Get(keep.ID) == nil {
		t.Error("unrelated folder removed")
	}
	if got := s.LoadFolders(""); len(got) != 1 {
		t.Errorf("store has %d folders, want 1", len(got))
	}

	if r.Delete(gone.ID) {
		t.Error("deleting a missing folder should return false")
	}
}

func TestLoadIsolatesUsers(t *testing.T) {
	r, s := newTestRepo(t)
	s.SaveFolders("alice", []models.Folder{{ID: "af", Name: "Alice's"}})
	r.Create("Guest folder")

	r.Load("alice")
	all := r.All()
	if len(all) != 1 || all[0].ID != "af" {
		t.Fatalf("alice load got %v", all)
	}

	r.Load("")
	if len(r.All()) != 1 || r.All()[0].Name != "Guest folder" {
		t.Fatalf("guest load got %v", r.All())
	}
}
