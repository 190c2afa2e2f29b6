// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the project collection to LLM clients via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/brighthorizon/showcase/internal/gallery"
	"github.com/brighthorizon/showcase/internal/models"
)

// Server wraps the MCP server with the gallery tools.
type Server struct {
	mcp   *server.MCPServer
	store *gallery.Store
}

// projectSummary is the tool-facing shape of a project card.
type projectSummary struct {
	SourceID    string   `json:"sourceId"`
	Title       string   `json:"title"`
	Tags        []string `json:"tags"`
	Preview     string   `json:"preview"`
	PublishedAt string   `json:"publishedAt,omitempty"`
	Unavailable bool     `json:"unavailable,omitempty"`
}

func summarize(ps []models.Project) []projectSummary {
	out := make([]projectSummary, 0, len(ps))
	for _, p := range ps {
		s := projectSummary{
			SourceID:    p.SourceID,
			Title:       p.Title,
			Tags:        p.Tags,
			Preview:     p.Preview,
			Unavailable: p.Unavailable,
		}
		if !p.PublishedAt.IsZero() {
			s.PublishedAt = p.PublishedAt.Format(time.RFC3339)
		}
		out = append(out, s)
	}
	return out
}

// New creates a new MCP server with all gallery tools registered.
func New(store *gallery.Store) *Server {
	s := &Server{store: store}

	s.mcp = server.NewMCPServer(
		"Showcase",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_projects",
		mcp.WithDescription("List all projects in the gallery, optionally sorted."),
		mcp.WithString("sort", mcp.Description("Sort order: newest (default), oldest or alphabetical")),
	), s.listProjects)

	s.mcp.AddTool(mcp.NewTool("search_projects",
		mcp.WithDescription("Search projects by title, preview text and tags. "+
			"Optionally restrict to an exact tag."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
		mcp.WithString("tag", mcp.Description("Optional exact tag filter")),
	), s.searchProjects)

	s.mcp.AddTool(mcp.NewTool("read_project",
		mcp.WithDescription("Read the full Markdown body of a project document."),
		mcp.WithString("source_id", mcp.Required(), mcp.Description("Source ID of the project (e.g. alpha.md)")),
	), s.readProject)

	s.mcp.AddTool(mcp.NewTool("list_tags",
		mcp.WithDescription("List the tags available in the collection, in order of first appearance."),
	), s.listTags)

	// Resource: document format contract.
	s.mcp.AddResource(
		mcp.NewResource("showcase://document-format", "Document Format",
			mcp.WithResourceDescription("Markdown document format the gallery derives its cards from."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readDocumentFormatResource,
	)

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

func (s *Server) listProjects(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	order := models.SortNewest
	if v, err := req.RequireString("sort"); err == nil && v != "" {
		order = models.SortOrder(v)
		if !order.Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("unknown sort order: %s", v)), nil
		}
	}
	results := s.store.Find("", "", order)
	out, _ := json.MarshalIndent(summarize(results), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) searchProjects(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tag := ""
	if v, terr := req.RequireString("tag"); terr == nil {
		tag = v
	}
	results := s.store.Find(query, tag, models.SortNewest)
	out, _ := json.MarshalIndent(summarize(results), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readProject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("source_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	p, err := s.store.Get(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", id)), nil
	}
	if p.Unavailable {
		return mcp.NewToolResultError(fmt.Sprintf("content unavailable: %s", id)), nil
	}
	return mcp.NewToolResultText(p.FullBody), nil
}

func (s *Server) listTags(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tags := s.store.Tags()
	if len(tags) == 0 {
		return mcp.NewToolResultText("no tags in the collection"), nil
	}
	return mcp.NewToolResultText(strings.Join(tags, "\n")), nil
}

func (s *Server) readDocumentFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "showcase://document-format",
			MIMEType: "text/markdown",
			Text:     DocumentFormatContract,
		},
	}, nil
}
