// ABOUTME: Charm cloud collaborator: SSH-key identity plus notes push/pull.
// ABOUTME: Best-effort only; the workspace functions fully without it.

package cloud

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
	"github.com/rs/zerolog"

	"github.com/inkwell-notes/inkwell/internal/models"
	"github.com/inkwell-notes/inkwell/internal/remote"
)

// DBName is the charm kv database holding synced note collections.
const DBName = "inkwell"

// Client talks to the charm cloud. It holds no persistent connection; each
// operation opens what it needs and closes it again.
type Client struct {
	log zerolog.Logger
}

// NewClient configures the charm host from config before any connection is
// made. An empty host keeps the charm default.
func NewClient(host string, log zerolog.Logger) (*Client, error) {
	if host != "" {
		if err := os.Setenv("CHARM_HOST", host); err != nil {
			return nil, err
		}
	}
	return &Client{log: log}, nil
}

// Session implements remote.AuthProvider. It returns nil without error when
// the device is not linked to a charm account.
func (c *Client) Session(ctx context.Context) (*remote.Session, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return nil, err
	}
	user, err := cc.Bio()
	if err != nil || user == nil {
		return nil, nil //nolint:nilerr // Not linked is not an error for callers
	}
	return &remote.Session{ID: user.CharmID, User: user.Name}, nil
}

// SignOut drops the local copy of synced data. The SSH identity itself stays
// with the device.
func (c *Client) SignOut(ctx context.Context) error {
	db, err := kv.OpenWithDefaults(DBName)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	return db.Reset()
}

func notesKey(user string) []byte {
	if user == "" {
		user = "guest"
	}
	return []byte("notes." + user)
}

// PushNotes uploads a user's note collection to charm kv and syncs. This is
// the follow-up sync a guest-data merge asks for.
func (c *Client) PushNotes(ctx context.Context, user string, notes []models.Note) error {
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("marshal notes: %w", err)
	}
	db, err := kv.OpenWithDefaults(DBName)
	if err != nil {
		return fmt.Errorf("open cloud kv: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Set(notesKey(user), data); err != nil {
		return fmt.Errorf("push notes: %w", err)
	}
	return db.Sync()
}

// PullNotes downloads a user's note collection from charm kv. A missing key
// comes back as an empty collection.
func (c *Client) PullNotes(ctx context.Context, user string) ([]models.Note, error) {
	db, err := kv.OpenWithDefaults(DBName)
	if err != nil {
		return nil, fmt.Errorf("open cloud kv: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Sync(); err != nil {
		c.log.Warn().Err(err).Msg("cloud sync before pull")
	}
	data, err := db.Get(notesKey(user))
	if err != nil || len(data) == 0 {
		return nil, nil //nolint:nilerr // Absent cloud copy is an empty collection
	}
	var notes []models.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("decode cloud notes: %w", err)
	}
	return notes, nil
}
