// Package mcpserver is the MCP stdio presentation layer: it registers the
// search tools, the guidance prompts and the static travel resources, and
// converts every domain error into a structured tool error so nothing
// escapes the protocol boundary uncaught.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"flightdesk/config"
	"flightdesk/search"
)

// Server wires the application services to the MCP protocol
type Server struct {
	mcp     *server.MCPServer
	flights *search.Flights
	cities  *search.Cities
	dataDir string
}

// New builds the MCP server and registers tools, prompts and resources
func New(cfg *config.Config, flights *search.Flights, cities *search.Cities) *Server {
	s := &Server{
		mcp: server.NewMCPServer(
			"flight",
			"1.0.0",
			server.WithRecovery(),
		),
		flights: flights,
		cities:  cities,
		dataDir: cfg.Server.DataDir,
	}

	s.registerTools()
	s.registerPrompts()
	s.registerResources()
	return s
}

// ServeStdio blocks serving the MCP protocol over stdin/stdout
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}
