// tools.go implements the MCP tool handlers for search operations.
//
// Design: Results are returned as JSON for easy LLM parsing. Tool calls use
// the synchronous engine API (SearchProducts, ExactMatch) rather than the
// debounced pipeline - an MCP request is a single round-trip, so there is
// nothing to debounce. History entries are still recorded by the engine so
// suggestions improve across calls.

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mnl-au/glint/internal/log"
	"github.com/mnl-au/glint/internal/norm"
)

// searchProducts handles glint_search tool calls.
func (h *handlers) searchProducts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	if res := h.requireCatalog(); res != nil {
		return res, nil
	}

	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil //nolint:nilerr
	}

	results := h.eng.SearchProducts(query)
	limit := getInt(req, "limit", 0)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	log.Event("mcp:glint_search", "search").Query(query).Results(len(results)).Write(nil)

	return jsonResult(results)
}

// exactMatch handles glint_exact tool calls.
func (h *handlers) exactMatch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	if res := h.requireCatalog(); res != nil {
		return res, nil
	}

	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil //nolint:nilerr
	}

	p, ok := h.eng.ExactMatch(query)

	log.Event("mcp:glint_exact", "lookup").Query(query).Detail("found", ok).Write(nil)

	if !ok {
		return mcp.NewToolResultError("no product with that exact name"), nil
	}
	return jsonResult(p)
}

// suggest handles glint_suggest tool calls.
func (h *handlers) suggest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	prefix := getString(req, "prefix", "")
	limit := getInt(req, "limit", 0)

	suggestions := h.eng.Suggest(prefix, limit)

	log.Event("mcp:glint_suggest", "suggest").Query(prefix).Results(len(suggestions)).Write(nil)

	return jsonResult(suggestions)
}

// history handles glint_history tool calls.
func (h *handlers) history(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	history := h.eng.History()

	log.Event("mcp:glint_history", "list").Results(len(history)).Write(nil)

	return jsonResult(history)
}

// clearHistory handles glint_clear_history tool calls.
func (h *handlers) clearHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	h.eng.ClearHistory()

	log.Event("mcp:glint_clear_history", "clear").Write(nil)

	return mcp.NewToolResultText("search history cleared"), nil
}

// listProducts handles glint_products tool calls.
func (h *handlers) listProducts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	if res := h.requireCatalog(); res != nil {
		return res, nil
	}

	products := h.eng.Products()
	if category := getString(req, "category", ""); category != "" {
		want := norm.Normalize(category)
		filtered := products[:0]
		for _, p := range products {
			if norm.Normalize(p.Category) == want {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	log.Event("mcp:glint_products", "list").Results(len(products)).Write(nil)

	return jsonResult(products)
}
