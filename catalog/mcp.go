package catalog

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/examdeck/examparse"
)

// RegisterMCP registers exam tools on an MCP server.
func (c *Catalog) RegisterMCP(srv *mcp.Server) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "parse_exam",
		Description: "Parse an exam document (PDF or plain text) and report reconstruction quality.",
	}, c.parseExamTool)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_tests",
		Description: "List all tests currently in the catalog.",
	}, c.listTestsTool)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "exam_stats",
		Description: "Report reconstruction quality statistics for a catalog test.",
	}, c.examStatsTool)
}

type parseExamIn struct {
	Path string `json:"path" jsonschema:"file path of the exam document to parse"`
}

type parseExamOut struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Questions int             `json:"questions"`
	Stats     examparse.Stats `json:"stats"`
}

func (c *Catalog) parseExamTool(ctx context.Context, _ *mcp.CallToolRequest, in parseExamIn) (*mcp.CallToolResult, parseExamOut, error) {
	test, err := c.parser.ParseFile(ctx, in.Path)
	if err != nil {
		return nil, parseExamOut{}, err
	}
	return nil, parseExamOut{
		ID:        test.ID,
		Name:      test.Name,
		Questions: len(test.Questions),
		Stats:     examparse.Analyze(test),
	}, nil
}

type listTestsOut struct {
	Tests []Summary `json:"tests"`
}

func (c *Catalog) listTestsTool(_ context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, listTestsOut, error) {
	return nil, listTestsOut{Tests: c.List()}, nil
}

type examStatsIn struct {
	TestID string `json:"test_id" jsonschema:"catalog test ID"`
}

func (c *Catalog) examStatsTool(_ context.Context, _ *mcp.CallToolRequest, in examStatsIn) (*mcp.CallToolResult, examparse.Stats, error) {
	test, ok := c.Get(in.TestID)
	if !ok {
		return nil, examparse.Stats{}, fmt.Errorf("unknown test: %s", in.TestID)
	}
	return nil, examparse.Analyze(test), nil
}
