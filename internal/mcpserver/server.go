// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes staticman entries for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/staticman/internal/apperr"
	"github.com/starford/staticman/internal/content"
)

// Server wraps the MCP server with staticman tools.
type Server struct {
	mcp     *server.MCPServer
	entries *content.Collection
}

// New creates a new MCP server with all tools registered.
func New(entries *content.Collection, version string) *Server {
	s := &Server{entries: entries}

	s.mcp = server.NewMCPServer(
		"staticman",
		version,
		server.WithToolCapabilities(false),
	)

	s.mcp.AddTool(mcp.NewTool("list_entries",
		mcp.WithDescription("List every content entry with its metadata and rendered HTML body. "+
			"Newest first unless order_by is given."),
		mcp.WithString("order_by", mcp.Description("Optional metadata key to sort by (compared as text)")),
		mcp.WithString("direction", mcp.Description("Sort direction: asc or desc (default desc)")),
	), s.listEntries)

	s.mcp.AddTool(mcp.NewTool("get_entry",
		mcp.WithDescription("Read a single entry by its slug."),
		mcp.WithString("slug", mcp.Required(), mcp.Description("Entry slug")),
	), s.getEntry)

	s.mcp.AddTool(mcp.NewTool("random_entry",
		mcp.WithDescription("Pick a random entry. When exclude is given, that entry and all private entries are skipped."),
		mcp.WithString("exclude", mcp.Description("Optional slug to exclude")),
	), s.randomEntry)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listEntries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries := s.entries
	key := optionalString(req, "order_by")
	direction := optionalString(req, "direction")
	if key != "" || direction != "" {
		dir, err := content.ParseDirection(direction)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		entries = entries.Ordered(content.Order{Key: key, Direction: dir})
	}

	recs, err := entries.List(ctx)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(recs)
}

func (s *Server) getEntry(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, err := req.RequireString("slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rec, err := s.entries.Get(ctx, slug)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(rec)
}

func (s *Server) randomEntry(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exclude, err := req.RequireString("exclude")
	if err != nil {
		rec, err := s.entries.Random(ctx)
		if err != nil {
			return toolError(err), nil
		}
		return jsonResult(rec)
	}
	rec, err := s.entries.RandomExcept(ctx, exclude)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(rec)
}

func optionalString(req mcp.CallToolRequest, name string) string {
	v, err := req.RequireString(name)
	if err != nil {
		return ""
	}
	return v
}

func toolError(err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return mcp.NewToolResultError("entry not found")
	case errors.Is(err, apperr.ErrEmptyResult):
		return mcp.NewToolResultError("no eligible entries")
	}
	return mcp.NewToolResultError(err.Error())
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(out)), nil
}
