package mcpserver

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/staticman/internal/content"
	"github.com/starford/staticman/internal/models"
	"github.com/starford/staticman/internal/render"
	"github.com/starford/staticman/internal/testutil"
)

func testServer(t *testing.T) (*Server, string) {
	t.Helper()
	dir, store := testutil.ContentDir(t)
	testutil.WriteEntry(t, dir, "Alpha", "public", "a", testutil.Now.Add(-2*time.Hour), "alpha")
	testutil.WriteEntry(t, dir, "Bravo", "private", "b", testutil.Now.Add(-time.Hour), "bravo")

	entries := content.New(store, render.NewMarkdown(render.Options{}), content.WithClock(testutil.Clock()))
	return New(entries, "test"), dir
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go has no direct "call tool" test helper, so the handlers are invoked directly.
	var result *mcp.CallToolResult
	var err error

	switch name {
	case "list_entries":
		result, err = srv.listEntries(ctx, req)
	case "get_entry":
		result, err = srv.getEntry(ctx, req)
	case "random_entry":
		result, err = srv.randomEntry(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestListEntries(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "list_entries", map[string]interface{}{})
	if r.IsError {
		t.Fatalf("error result: %s", resultText(r))
	}
	var recs []models.Record
	if err := json.Unmarshal([]byte(resultText(r)), &recs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(recs) != 2 || recs[0].Slug != "b" {
		t.Errorf("recs = %+v", recs)
	}
}

func TestListEntries_Ordered(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "list_entries", map[string]interface{}{"order_by": "title", "direction": "asc"})
	var recs []models.Record
	if err := json.Unmarshal([]byte(resultText(r)), &recs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(recs) != 2 || recs[0].Slug != "a" {
		t.Errorf("recs = %+v", recs)
	}

	r = callTool(t, srv, "list_entries", map[string]interface{}{"direction": "sideways"})
	if !r.IsError {
		t.Error("expected error for bad direction")
	}
}

func TestGetEntry(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "get_entry", map[string]interface{}{"slug": "a"})
	if r.IsError {
		t.Fatalf("error result: %s", resultText(r))
	}
	if !strings.Contains(resultText(r), `"title": "Alpha"`) {
		t.Errorf("text = %s", resultText(r))
	}
}

func TestGetEntryMissing(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "get_entry", map[string]interface{}{"slug": "nope"})
	if !r.IsError {
		t.Error("expected error for missing entry")
	}
	if resultText(r) != "entry not found" {
		t.Errorf("text = %q", resultText(r))
	}
}

func TestGetEntryRequiresSlug(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "get_entry", map[string]interface{}{})
	if !r.IsError {
		t.Error("expected error without slug")
	}
}

func TestRandomEntry_Exclude(t *testing.T) {
	srv, _ := testServer(t)

	// b is private, so excluding a leaves nothing.
	r := callTool(t, srv, "random_entry", map[string]interface{}{"exclude": "a"})
	if !r.IsError || resultText(r) != "no eligible entries" {
		t.Errorf("result = %q (error=%v)", resultText(r), r.IsError)
	}

	r = callTool(t, srv, "random_entry", map[string]interface{}{"exclude": "b"})
	if r.IsError || !strings.Contains(resultText(r), `"slug": "a"`) {
		t.Errorf("result = %q", resultText(r))
	}
}

func TestRandomEntry_Any(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "random_entry", map[string]interface{}{})
	if r.IsError {
		t.Errorf("error result: %s", resultText(r))
	}
}
