package mcptool

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/esgbuddy/esgbuddy/pkg/scoring"
)

const samplePath = "../seed/data/company_data.json"

func isErrorResult(result *mcp.CallToolResult) bool {
	return result != nil && result.IsError
}

// getResultText extracts the text content from a CallToolResult.
func getResultText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func sampleDocument(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(samplePath)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	return string(data)
}

func call(t *testing.T, tool *ComputeTool, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	result, err := tool.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	return result
}

func TestComputeTool_Definition(t *testing.T) {
	def := NewComputeTool("").Definition()
	if def.Name != ToolName {
		t.Errorf("name = %q, want %s", def.Name, ToolName)
	}
	if len(def.InputSchema.Required) != 1 || def.InputSchema.Required[0] != "document" {
		t.Errorf("required = %v, want [document]", def.InputSchema.Required)
	}
}

func TestComputeTool_Handle_JSON(t *testing.T) {
	result := call(t, NewComputeTool(""), map[string]any{"document": sampleDocument(t)})
	if isErrorResult(result) {
		t.Fatalf("expected success, got error: %s", getResultText(result))
	}

	var report scoring.ComputedReport
	if err := json.Unmarshal([]byte(getResultText(result)), &report); err != nil {
		t.Fatalf("result is not a report: %v", err)
	}
	if report.OverallScore != 75.2 {
		t.Errorf("overall = %v, want 75.2", report.OverallScore)
	}
	if len(report.TopicScores) != 11 {
		t.Errorf("topic scores = %d, want 11", len(report.TopicScores))
	}
	if !strings.HasPrefix(report.ContentIndex[0].Location, "/disclosures/") {
		t.Errorf("location = %q", report.ContentIndex[0].Location)
	}
}

func TestComputeTool_Handle_MarkdownAndBaseRoute(t *testing.T) {
	result := call(t, NewComputeTool("/esg"), map[string]any{
		"document": sampleDocument(t),
		"format":   "markdown",
	})
	if isErrorResult(result) {
		t.Fatalf("expected success, got error: %s", getResultText(result))
	}
	text := getResultText(result)
	if !strings.Contains(text, "### GRI content index") {
		t.Error("markdown should include the content index")
	}
	if !strings.Contains(text, "/esg/") {
		t.Error("locations should use the configured base route")
	}
}

func TestComputeTool_Handle_Errors(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{name: "missing document", args: map[string]any{}, want: "'document' is required"},
		{name: "bad format", args: map[string]any{"document": "{}", "format": "xml"}, want: "unsupported format"},
		{name: "invalid json", args: map[string]any{"document": "{not json"}, want: "decoding document"},
		{name: "missing topics", args: map[string]any{"document": `{"materiality":{"material_topics":[]}}`}, want: "topics"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := call(t, NewComputeTool(""), tc.args)
			if !isErrorResult(result) {
				t.Fatalf("expected error result, got %s", getResultText(result))
			}
			if !strings.Contains(getResultText(result), tc.want) {
				t.Errorf("error = %q, want it to contain %q", getResultText(result), tc.want)
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	if s := NewServer("test", ""); s == nil {
		t.Fatal("NewServer returned nil")
	}
}
