package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds the training MCP server. It is served over stdio by
// cmd/trainingstats_mcp and mounted at /mcp by the HTTP server.
func NewServer(schemaRepo SchemaRepo, statsService statsReporter, completionsService completionsLister) *mcp.Server {
	h := NewHandler(NewContextService(schemaRepo, statsService, completionsService))
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "training-stats",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_training_context",
		Description: "Returns the DB schema of the training tables (programs, assignments, workout completions, training type stats): columns, types, nullable, default.",
	}, h.GetTrainingContextTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_training_type_stats",
		Description: "Returns the minutes an athlete spent per training type (strength, endurance, hypertrophy, ...) in a date range. Args: user_id, from_date, to_date (YYYY-MM-DD); optional group_by: week, month or year.",
	}, h.GetTrainingTypeStatsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_assignment_completions",
		Description: "Returns every workout completion of a program assignment (scheduled, pending, completed, missed) with counts per status. Arg: assignment_id.",
	}, h.GetAssignmentCompletionsTool())

	return s
}
