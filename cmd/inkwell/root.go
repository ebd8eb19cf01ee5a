// ABOUTME: Root command wiring config, store, repositories and workspace.
// ABOUTME: Every subcommand runs against an initialized workspace.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/inkwell-notes/inkwell/internal/cloud"
	"github.com/inkwell-notes/inkwell/internal/config"
	"github.com/inkwell-notes/inkwell/internal/folders"
	"github.com/inkwell-notes/inkwell/internal/models"
	"github.com/inkwell-notes/inkwell/internal/notes"
	"github.com/inkwell-notes/inkwell/internal/query"
	"github.com/inkwell-notes/inkwell/internal/remote"
	"github.com/inkwell-notes/inkwell/internal/session"
	"github.com/inkwell-notes/inkwell/internal/store"
	"github.com/inkwell-notes/inkwell/internal/workspace"
)

var (
	cfg         config.Config
	logger      zerolog.Logger
	st          *store.Store
	ws          *workspace.Workspace
	cloudClient *cloud.Client
)

var rootCmd = &cobra.Command{
	Use:   "inkwell",
	Short: "A local-first personal notes workspace",
	Long: `Inkwell keeps your notes, tags and folders in a local database,
works fully offline, and can link to a charm cloud account for sync.`,
	Version:       fmt.Sprintf("%s (%s, built %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = zerolog.WarnLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()

		st, err = store.Open(cfg.DataDir, logger)
		if err != nil {
			return fmt.Errorf("open data dir %s: %w", cfg.DataDir, err)
		}

		var samples remote.SampleFetcher
		if cfg.SampleAPI != "" {
			samples = remote.NewHTTPSampleFetcher(cfg.SampleAPI, logger)
		}

		cloudClient, err = cloud.NewClient(cfg.CloudHost, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("cloud unavailable, continuing offline")
			cloudClient = nil
		}
		var auth remote.AuthProvider
		if cloudClient != nil {
			auth = cloudClient
		}

		noteRepo := notes.NewRepository(st, samples, logger,
			notes.WithSampleLimit(cfg.SampleLimit))
		folderRepo := folders.NewRepository(st, logger)
		sess := session.NewManager(st, logger)

		ws = workspace.New(st, noteRepo, folderRepo, sess, auth, logger)
		ws.Init(cmd.Context())
		ws.SetSort(query.SortMode(cfg.DefaultSort))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if st != nil {
			return st.Close()
		}
		return nil
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// findFolder matches a folder by exact id first, then by name.
func findFolder(nameOrID string) *models.Folder {
	if f := ws.Folders.Get(nameOrID); f != nil {
		return f
	}
	for _, f := range ws.Folders.All() {
		if strings.EqualFold(f.Name, nameOrID) {
			folder := f
			return &folder
		}
	}
	return nil
}

// resolveNote maps an id or 6+ character id prefix to a note, with a
// CLI-friendly error.
func resolveNote(idOrPrefix string) (string, error) {
	if note := ws.Notes.Get(idOrPrefix); note != nil {
		return note.ID, nil
	}
	note, err := ws.Notes.GetByPrefix(idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("note %q: %w", idOrPrefix, err)
	}
	return note.ID, nil
}
