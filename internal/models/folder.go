// ABOUTME: Folder model for grouping notes.
// ABOUTME: Deleting a folder re-parents its notes to unfiled, never deletes them.

package models

type Folder struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}
