// Package mcptool exposes the scoring engine as an MCP tool so assistants
// can score a disclosure document over stdio.
package mcptool

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/esgbuddy/esgbuddy/pkg/esg"
	"github.com/esgbuddy/esgbuddy/pkg/scoring"
	"github.com/esgbuddy/esgbuddy/pkg/surface"
)

// ToolName is the registered name of the compute tool.
const ToolName = "compute_esg_scores"

// ComputeTool scores a CompanyData document passed as a JSON string.
type ComputeTool struct {
	baseRoute string
}

// NewComputeTool creates the tool. An empty baseRoute uses the engine
// default.
func NewComputeTool(baseRoute string) *ComputeTool {
	return &ComputeTool{baseRoute: baseRoute}
}

func (t *ComputeTool) Definition() mcp.Tool {
	return mcp.NewTool(ToolName,
		mcp.WithDescription(
			"Score a company's GRI sustainability disclosure document. "+
				"Returns per-topic scores, SDG scores, the overall score, "+
				"the GRI content index and QA metrics.",
		),
		mcp.WithString("document",
			mcp.Required(),
			mcp.Description("The CompanyData document as a JSON string"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: json (default) or markdown"),
			mcp.Enum("json", "markdown"),
		),
		mcp.WithBoolean("notes",
			mcp.Description("Annotate topic scores with metrics that were missing and defaulted"),
		),
	)
}

func (t *ComputeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := strings.TrimSpace(req.GetString("document", ""))
	if raw == "" {
		return mcp.NewToolResultError("'document' is required"), nil
	}

	format := req.GetString("format", "json")
	if format != "json" && format != "markdown" {
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format %q (want json or markdown)", format)), nil
	}

	doc, err := esg.DecodeDocument(strings.NewReader(raw))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := []scoring.Option{scoring.WithNotes(req.GetBool("notes", false))}
	if t.baseRoute != "" {
		opts = append(opts, scoring.WithBaseRoute(t.baseRoute))
	}
	report, err := scoring.NewEngine(opts...).Compute(doc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	renderer, err := surface.ForFormat(format)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var sb strings.Builder
	if err := renderer.Render(&sb, report); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// NewServer creates an MCP server with the compute tool registered.
func NewServer(version, baseRoute string) *server.MCPServer {
	s := server.NewMCPServer(
		"esgbuddy",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	compute := NewComputeTool(baseRoute)
	s.AddTool(compute.Definition(), compute.Handle)
	return s
}
