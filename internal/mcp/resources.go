// ABOUTME: MCP resources exposing notes via a URI scheme.
// ABOUTME: Allows AI agents to read note content directly.

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/inkwell-notes/inkwell/internal/export"
)

func (s *Server) registerResources() {
	s.server.AddResourceTemplate(
		&mcp.ResourceTemplate{
			URITemplate: "inkwell://note/{id}",
			Name:        "Note",
			Description: "Access individual notes by ID",
			MIMEType:    "text/markdown",
		},
		s.handleReadResource,
	)
}

func (s *Server) handleReadResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	id, ok := strings.CutPrefix(req.Params.URI, "inkwell://note/")
	if !ok || id == "" {
		return nil, fmt.Errorf("invalid resource URI: %s", req.Params.URI)
	}

	note := s.ws.Notes.Get(id)
	if note == nil {
		var err error
		note, err = s.ws.Notes.GetByPrefix(id)
		if err != nil {
			return nil, fmt.Errorf("resolve note: %w", err)
		}
	}

	title := note.Title
	if title == "" {
		title = "Untitled note"
	}
	content := fmt.Sprintf("# %s\n\n", title)
	if len(note.Tags) > 0 {
		content += fmt.Sprintf("**Tags:** %s\n\n", strings.Join(note.Tags, ", "))
	}
	content += export.ToMarkdown(note.Content)

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     content,
			},
		},
	}, nil
}
