// ABOUTME: MCP server for inkwell integration with AI agents.
// ABOUTME: Exposes workspace operations as tools and notes as resources.

package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/inkwell-notes/inkwell/internal/workspace"
)

type Server struct {
	server *mcp.Server
	ws     *workspace.Workspace
}

func NewServer(ws *workspace.Workspace) *Server {
	s := &Server{ws: ws}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "inkwell",
			Version: "1.0.0",
		},
		&mcp.ServerOptions{
			HasTools:     true,
			HasResources: true,
		},
	)

	s.registerTools()
	s.registerResources()

	return s
}

func (s *Server) Serve(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
