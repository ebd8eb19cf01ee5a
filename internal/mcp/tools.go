// ABOUTME: MCP tools for workspace operations.
// ABOUTME: Maps CLI functionality to the MCP tool interface.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/inkwell-notes/inkwell/internal/models"
	"github.com/inkwell-notes/inkwell/internal/query"
)

func (s *Server) registerTools() {
	s.server.AddTool(&mcp.Tool{
		Name:        "create_note",
		Description: "Create a new note with title, content and optional tags",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string", "description": "Note title"},
				"content": {"type": "string", "description": "Note content"},
				"tags": {"type": "array", "items": {"type": "string"}, "description": "Optional tags"},
				"folder_id": {"type": "string", "description": "Optional folder id or prefix"}
			},
			"required": ["title"]
		}`),
	}, s.handleCreateNote)

	s.server.AddTool(&mcp.Tool{
		Name:        "list_notes",
		Description: "List notes with optional folder scope, tag filter, search, date and sort",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"folder_id": {"type": "string", "description": "Folder id; omit for unfiled, \"*\" for everything"},
				"tag": {"type": "string", "description": "Filter by exact tag"},
				"search": {"type": "string", "description": "Case-insensitive substring search"},
				"date": {"type": "string", "description": "Local calendar date YYYY-MM-DD"},
				"sort": {"type": "string", "description": "updated_desc (default), updated_asc, title_asc, title_desc"}
			}
		}`),
	}, s.handleListNotes)

	s.server.AddTool(&mcp.Tool{
		Name:        "get_note",
		Description: "Get a note by ID prefix",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix (6+ chars)"}
			},
			"required": ["id"]
		}`),
	}, s.handleGetNote)

	s.server.AddTool(&mcp.Tool{
		Name:        "update_note",
		Description: "Update a note's title, content or tags",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix"},
				"title": {"type": "string", "description": "New title"},
				"content": {"type": "string", "description": "New content"},
				"tags": {"type": "array", "items": {"type": "string"}, "description": "Replacement tag list"}
			},
			"required": ["id"]
		}`),
	}, s.handleUpdateNote)

	s.server.AddTool(&mcp.Tool{
		Name:        "delete_note",
		Description: "Delete a note (the last remaining note is cleared, not removed)",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix"}
			},
			"required": ["id"]
		}`),
	}, s.handleDeleteNote)

	s.server.AddTool(&mcp.Tool{
		Name:        "duplicate_note",
		Description: "Duplicate a note under a fresh id",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix"}
			},
			"required": ["id"]
		}`),
	}, s.handleDuplicateNote)

	s.server.AddTool(&mcp.Tool{
		Name:        "add_tag",
		Description: "Add a tag to a note",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix"},
				"tag": {"type": "string", "description": "Tag name"}
			},
			"required": ["id", "tag"]
		}`),
	}, s.handleAddTag)

	s.server.AddTool(&mcp.Tool{
		Name:        "remove_tag",
		Description: "Remove a tag from a note",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix"},
				"tag": {"type": "string", "description": "Tag name"}
			},
			"required": ["id", "tag"]
		}`),
	}, s.handleRemoveTag)

	s.server.AddTool(&mcp.Tool{
		Name:        "list_folders",
		Description: "List folders with note counts",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
	}, s.handleListFolders)

	s.server.AddTool(&mcp.Tool{
		Name:        "create_folder",
		Description: "Create a folder",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"name": {"type": "string", "description": "Folder name"}
			},
			"required": ["name"]
		}`),
	}, s.handleCreateFolder)

	s.server.AddTool(&mcp.Tool{
		Name:        "delete_folder",
		Description: "Delete a folder; its notes become unfiled",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Folder id"}
			},
			"required": ["id"]
		}`),
	}, s.handleDeleteFolder)

	s.server.AddTool(&mcp.Tool{
		Name:        "move_note",
		Description: "Move a note into a folder, or unfile it",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix"},
				"folder_id": {"type": "string", "description": "Target folder id; empty unfiles the note"}
			},
			"required": ["id"]
		}`),
	}, s.handleMoveNote)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

func (s *Server) resolveNote(id string) (*models.Note, *mcp.CallToolResult) {
	if note := s.ws.Notes.Get(id); note != nil {
		return note, nil
	}
	note, err := s.ws.Notes.GetByPrefix(id)
	if err != nil {
		return nil, errorResult("resolve note %q: %v", id, err)
	}
	return note, nil
}

func (s *Server) handleCreateNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Title    string   `json:"title"`
		Content  string   `json:"content"`
		Tags     []string `json:"tags"`
		FolderID string   `json:"folder_id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	note := s.ws.NewNote()
	if !s.ws.SaveNote(note.ID, params.Title, params.Content, params.Tags) {
		return errorResult("failed to save new note"), nil
	}
	if params.FolderID != "" && !s.ws.MoveToFolder(note.ID, params.FolderID) {
		return errorResult("note created (%s) but folder %q not found", note.ID, params.FolderID), nil
	}
	return textResult(fmt.Sprintf("Created note %s", note.ID)), nil
}

func (s *Server) handleListNotes(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		FolderID string `json:"folder_id"`
		Tag      string `json:"tag"`
		Search   string `json:"search"`
		Date     string `json:"date"`
		Sort     string `json:"sort"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	scope := query.Unfiled()
	switch params.FolderID {
	case "":
	case "*":
		scope = query.Everything()
	default:
		scope = query.Folder(params.FolderID)
	}

	view := query.Apply(s.ws.Notes.All(), query.Params{
		Scope:  scope,
		Tag:    params.Tag,
		Search: params.Search,
		Date:   params.Date,
		Sort:   query.SortMode(params.Sort),
	})

	data, _ := json.MarshalIndent(view, "", "  ")
	return textResult(string(data)), nil
}

func (s *Server) handleGetNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	note, errRes := s.resolveNote(params.ID)
	if errRes != nil {
		return errRes, nil
	}
	data, _ := json.MarshalIndent(note, "", "  ")
	return textResult(string(data)), nil
}

func (s *Server) handleUpdateNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID      string   `json:"id"`
		Title   *string  `json:"title"`
		Content *string  `json:"content"`
		Tags    []string `json:"tags"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	note, errRes := s.resolveNote(params.ID)
	if errRes != nil {
		return errRes, nil
	}

	title := note.Title
	if params.Title != nil {
		title = *params.Title
	}
	content := note.Content
	if params.Content != nil {
		content = *params.Content
	}
	tags := note.Tags
	if params.Tags != nil {
		tags = params.Tags
	}

	if !s.ws.SaveNote(note.ID, title, content, tags) {
		return errorResult("failed to update note %s", note.ID), nil
	}
	return textResult(fmt.Sprintf("Updated note %s", note.ID)), nil
}

func (s *Server) handleDeleteNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	note, errRes := s.resolveNote(params.ID)
	if errRes != nil {
		return errRes, nil
	}
	if !s.ws.DeleteNote(note.ID) {
		return errorResult("failed to delete note %s", note.ID), nil
	}
	return textResult(fmt.Sprintf("Deleted note %s", note.ID)), nil
}

func (s *Server) handleDuplicateNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	note, errRes := s.resolveNote(params.ID)
	if errRes != nil {
		return errRes, nil
	}
	copyNote, ok := s.ws.DuplicateNote(note.ID)
	if !ok {
		return errorResult("failed to duplicate note %s", note.ID), nil
	}
	return textResult(fmt.Sprintf("Created copy %s", copyNote.ID)), nil
}

func (s *Server) handleAddTag(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID  string `json:"id"`
		Tag string `json:"tag"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	note, errRes := s.resolveNote(params.ID)
	if errRes != nil {
		return errRes, nil
	}
	if !s.ws.AddTag(note.ID, params.Tag) {
		return textResult(fmt.Sprintf("Note %s already tagged %q", note.ID, params.Tag)), nil
	}
	return textResult(fmt.Sprintf("Tagged note %s with %q", note.ID, params.Tag)), nil
}

func (s *Server) handleRemoveTag(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID  string `json:"id"`
		Tag string `json:"tag"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	note, errRes := s.resolveNote(params.ID)
	if errRes != nil {
		return errRes, nil
	}
	s.ws.RemoveTag(note.ID, params.Tag)
	return textResult(fmt.Sprintf("Removed tag %q from note %s", params.Tag, note.ID)), nil
}

func (s *Server) handleListFolders(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type folderInfo struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Notes int    `json:"notes"`
	}

	counts := make(map[string]int)
	for _, n := range s.ws.Notes.All() {
		if n.FolderID != "" {
			counts[n.FolderID]++
		}
	}

	var out []folderInfo
	for _, f := range s.ws.Folders.All() {
		out = append(out, folderInfo{ID: f.ID, Name: f.Name, Notes: counts[f.ID]})
	}
	data, _ := json.MarshalIndent(out, "", "  ")
	return textResult(string(data)), nil
}

func (s *Server) handleCreateFolder(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.Name) == "" {
		return errorResult("folder name cannot be empty"), nil
	}
	folder := s.ws.CreateFolder(params.Name)
	return textResult(fmt.Sprintf("Created folder %s (%s)", folder.Name, folder.ID)), nil
}

func (s *Server) handleDeleteFolder(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}
	if !s.ws.DeleteFolder(params.ID) {
		return errorResult("folder %q not found", params.ID), nil
	}
	return textResult(fmt.Sprintf("Deleted folder %s; its notes are now unfiled", params.ID)), nil
}

func (s *Server) handleMoveNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID       string `json:"id"`
		FolderID string `json:"folder_id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	note, errRes := s.resolveNote(params.ID)
	if errRes != nil {
		return errRes, nil
	}
	if !s.ws.MoveToFolder(note.ID, params.FolderID) {
		return errorResult("folder %q not found", params.FolderID), nil
	}
	if params.FolderID == "" {
		return textResult(fmt.Sprintf("Unfiled note %s", note.ID)), nil
	}
	return textResult(fmt.Sprintf("Moved note %s into folder %s", note.ID, params.FolderID)), nil
}
