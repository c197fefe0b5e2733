package mcp

import (
	"net/http"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobshop/internal/domain/job"
	"github.com/honeycarbs/jobshop/internal/export"
	"github.com/honeycarbs/jobshop/internal/mcp/tools"
	"github.com/honeycarbs/jobshop/pkg/logging"
)

const (
	ServerName    = "jobshop"
	ServerVersion = "0.1.0"
)

// NewServer builds the MCP server exposing the job directory to agents
func NewServer(jobs job.Service, exporter export.Exporter, log *logging.Logger) *sdkmcp.Server {
	impl := &sdkmcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}

	mcpServer := sdkmcp.NewServer(impl, nil)

	names := tools.Register(mcpServer, log,
		tools.WithJobTools(jobs),
		tools.WithSheetsExport(jobs, exporter),
	)
	log.Info("MCP tools registered", "tools", names)

	return mcpServer
}

// NewHandler serves s over streamable HTTP
func NewHandler(s *sdkmcp.Server) http.Handler {
	return sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
		return s
	}, nil)
}
