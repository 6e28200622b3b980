package mcpserver

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"flightdesk/log"
)

// Static travel resources served verbatim from the data directory
func (s *Server) registerResources() {
	s.addFileResource(
		"file:///data/seasons_guide.txt",
		"seasons_guide",
		"Seasonal travel guide",
		"seasons_guide.txt",
		"Seasons guide file not found.",
	)
	s.addFileResource(
		"file:///data/documents_checklist.txt",
		"documents_checklist",
		"Travel documents checklist",
		"documents_checklist.txt",
		"Documents checklist file not found.",
	)
}

func (s *Server) addFileResource(uri, name, description, filename, missingMessage string) {
	resource := mcp.NewResource(uri, name,
		mcp.WithResourceDescription(description),
		mcp.WithMIMEType("text/plain"),
	)

	s.mcp.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		text := missingMessage
		content, err := os.ReadFile(filepath.Join(s.dataDir, filename))
		switch {
		case err == nil:
			text = string(content)
		case errors.Is(err, fs.ErrNotExist):
			log.Warnf(ctx, "resource file %s not found", filename)
		default:
			log.Errorf(ctx, "error reading %s: %v", filename, err)
			text = "Error loading resource data."
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "text/plain",
				Text:     text,
			},
		}, nil
	})
}
