// resources.go implements MCP resource handlers for product access.
//
// MCP resources provide read-only access to products via URI schemes,
// enabling LLM clients to reference a product without using tools. This is
// useful for context loading where the LLM needs the product record but
// isn't performing a search.
//
// Design: Resource URIs follow the pattern glint://products/{id}.

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

var (
	// ErrInvalidURI indicates a malformed resource URI, helping clients
	// debug URI construction issues.
	ErrInvalidURI = errors.New("invalid URI")
	// ErrProductNotFound indicates the requested product ID is not in the catalog.
	ErrProductNotFound = errors.New("product not found")
)

// readProduct handles glint://products/{id} resource requests.
func (h *handlers) readProduct(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) { //nolint:revive // ctx for future use
	if h.catalog == "" {
		return nil, errors.New(ErrNoCatalog)
	}

	id, err := parseProductURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	for _, p := range h.eng.Products() {
		if p.ID == id {
			data, err := json.MarshalIndent(p, "", "  ")
			if err != nil {
				return nil, err
			}
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      req.Params.URI,
					MIMEType: "application/json",
					Text:     string(data),
				},
			}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
}

// parseProductURI extracts the product ID from a glint://products/{id} URI.
func parseProductURI(uri string) (string, error) {
	const prefix = "glint://products/"
	if !strings.HasPrefix(uri, prefix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	id := strings.TrimPrefix(uri, prefix)
	if id == "" {
		return "", fmt.Errorf("%w: empty product id", ErrInvalidURI)
	}
	return id, nil
}
