// Package mcp implements the Model Context Protocol server, exposing glint
// search operations to LLMs. This enables AI assistants to search the product
// catalog, look up products, and manage search history through a standardised
// protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mnl-au/glint/internal/catalog"
	"github.com/mnl-au/glint/internal/config"
	"github.com/mnl-au/glint/internal/search"
	"github.com/mnl-au/glint/internal/store"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// ErrNoCatalog is returned by tools when no catalog has been loaded.
// The user should configure catalog.path or pass --catalog at startup.
const ErrNoCatalog = "no catalog loaded - set catalog.path in config or start the server with --catalog"

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other MCP
// clients.
//
// Design: The server starts successfully even without a catalog. This lets an
// LLM discover the tools and report the configuration problem, rather than
// failing with an opaque startup error. Tools that require products return
// ErrNoCatalog with clear guidance.
func Serve(catalogPath string) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return err
	}
	if catalogPath == "" {
		catalogPath = cfg.CatalogPath()
	}

	hs, err := store.OpenDefault()
	if err != nil {
		slog.Error("failed to open history store", "error", err)
		return err
	}
	defer hs.Close()

	eng, err := search.New(cfg.SearchConfig(), hs)
	if err != nil {
		slog.Error("failed to build search engine", "error", err)
		return err
	}
	defer eng.Close()

	h := &handlers{eng: eng}
	if catalogPath != "" {
		products, err := catalog.LoadFile(catalogPath)
		if err != nil {
			slog.Error("failed to load catalog", "path", catalogPath, "error", err)
			return err
		}
		if err := catalog.Validate(products); err != nil {
			slog.Error("invalid catalog", "path", catalogPath, "error", err)
			return err
		}
		eng.UpdateProducts(products)
		h.catalog = catalogPath
	} else {
		slog.Info("no catalog configured, starting without products - tools will report ErrNoCatalog")
	}

	s := server.NewMCPServer(
		"glint",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, h)
	registerTools(s, h)

	slog.Info("glint MCP server ready", "version", Version, "transport", "stdio")

	err = server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers with access to the search engine.
// The catalog field is empty when no catalog is loaded.
type handlers struct {
	eng     *search.Engine
	catalog string // catalog file path, "" if not loaded
}

// requireCatalog returns an error result if no catalog has been loaded.
// Tools that need products should call this first.
func (h *handlers) requireCatalog() *mcp.CallToolResult {
	if h.catalog == "" {
		return mcp.NewToolResultError(ErrNoCatalog)
	}
	return nil
}

// registerResources adds URI-based resource access for direct product reading.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"glint://products/{id}",
			"Product",
			mcp.WithTemplateDescription("Read a product by its catalog ID"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		h.readProduct,
	)
}

// registerTools exposes glint search operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	// Search
	s.AddTool(
		mcp.NewTool("glint_search",
			mcp.WithDescription("Search the product catalog, returning ranked results with relevance scores and match types"),
			mcp.WithString("query", mcp.Required(), mcp.Description("Search query")),
			mcp.WithNumber("limit", mcp.Description("Maximum results to return (default: configured max)")),
		),
		h.searchProducts,
	)

	// Exact lookup
	s.AddTool(
		mcp.NewTool("glint_exact",
			mcp.WithDescription("Look up a single product whose name exactly matches the query (case and whitespace insensitive)"),
			mcp.WithString("query", mcp.Required(), mcp.Description("Product name to look up")),
		),
		h.exactMatch,
	)

	// Suggestions
	s.AddTool(
		mcp.NewTool("glint_suggest",
			mcp.WithDescription("Get typeahead suggestions from search history and product names"),
			mcp.WithString("prefix", mcp.Description("Partial query to complete (empty returns recent searches)")),
			mcp.WithNumber("limit", mcp.Description("Maximum suggestions to return (default: 10)")),
		),
		h.suggest,
	)

	// History
	s.AddTool(
		mcp.NewTool("glint_history",
			mcp.WithDescription("Get recent search queries, most recent first"),
		),
		h.history,
	)

	// Clear history
	s.AddTool(
		mcp.NewTool("glint_clear_history",
			mcp.WithDescription("Clear the persisted search history"),
		),
		h.clearHistory,
	)

	// Catalog listing
	s.AddTool(
		mcp.NewTool("glint_products",
			mcp.WithDescription("List products in the catalog"),
			mcp.WithString("category", mcp.Description("Filter by category (exact, case insensitive)")),
		),
		h.listProducts,
	)
}
