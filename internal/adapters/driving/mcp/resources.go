package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for Kanz resources.
const uriScheme = "kanz://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for index statistics.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "stats",
		Name:        "stats",
		Description: "Knowledge index statistics",
		MIMEType:    "application/json",
	}, s.handleStatsResource)

	// Static resource listing every indexed item.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "items",
		Name:        "items",
		Description: "List of all indexed knowledge items",
		MIMEType:    "application/json",
	}, s.handleItemsResource)

	// Template for item content.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "items/{itemId}",
		Name:        "item-content",
		Description: "Content of a specific knowledge item",
		MIMEType:    "text/plain",
	}, s.handleItemContentResource)
}

// handleStatsResource returns index statistics.
func (s *Server) handleStatsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	stats := s.ports.Engine.Stats()

	out := struct {
		TotalItems  int            `json:"total_items"`
		ItemsByType map[string]int `json:"items_by_type"`
		LastIndexed string         `json:"last_indexed,omitempty"`
	}{
		TotalItems:  stats.TotalItems,
		ItemsByType: make(map[string]int, len(stats.ItemsBySourceType)),
	}
	for t, n := range stats.ItemsBySourceType {
		out.ItemsByType[string(t)] = n
	}
	if !stats.LastIndexedAt.IsZero() {
		out.LastIndexed = stats.LastIndexedAt.Format(time.RFC3339)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling stats: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleItemsResource returns a compact listing of all indexed items.
func (s *Server) handleItemsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	items := s.ports.Engine.AllItems()

	type itemInfo struct {
		ID         string `json:"id"`
		SourceType string `json:"source_type"`
		Title      string `json:"title"`
	}

	infos := make([]itemInfo, len(items))
	for i := range items {
		infos[i] = itemInfo{
			ID:         items[i].ID,
			SourceType: string(items[i].SourceType),
			Title:      items[i].Title,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling items: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleItemContentResource returns the content of a specific item.
func (s *Server) handleItemContentResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	itemID := extractItemID(req.Params.URI)
	if itemID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	for _, item := range s.ports.Engine.AllItems() {
		if item.ID != itemID {
			continue
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "text/plain",
				Text:     item.Content,
			}},
		}, nil
	}

	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

// extractItemID extracts the item ID from a URI like kanz://items/{itemId}.
func extractItemID(uri string) string {
	const prefix = uriScheme + "items/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
