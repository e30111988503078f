package mcp

import (
	"context"
	"encoding/json"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/calendar"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/training/stats"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler turns tool calls into service calls and service results into tool results.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

// GetTrainingContextTool returns the handler for get_training_context.
func (h *Handler) GetTrainingContextTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// TrainingTypeStatsInput is the input for get_training_type_stats.
type TrainingTypeStatsInput struct {
	UserID   string `json:"user_id" jsonschema:"Athlete id (uuid)"`
	FromDate string `json:"from_date" jsonschema:"Start date (YYYY-MM-DD), inclusive"`
	ToDate   string `json:"to_date" jsonschema:"End date (YYYY-MM-DD), inclusive"`
	GroupBy  string `json:"group_by,omitempty" jsonschema:"Optional bucketing: week, month or year"`
}

// GetTrainingTypeStatsTool returns the handler for get_training_type_stats.
func (h *Handler) GetTrainingTypeStatsTool() func(context.Context, *mcp.CallToolRequest, TrainingTypeStatsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in TrainingTypeStatsInput) (*mcp.CallToolResult, any, error) {
		userID, err := uuid.Parse(in.UserID)
		if err != nil {
			return errorResult("Invalid user_id: use a uuid"), nil, nil
		}
		from, err := calendar.Parse(in.FromDate)
		if err != nil {
			return errorResult("Invalid from_date: use YYYY-MM-DD"), nil, nil
		}
		to, err := calendar.Parse(in.ToDate)
		if err != nil {
			return errorResult("Invalid to_date: use YYYY-MM-DD"), nil, nil
		}
		groupBy, err := stats.ParseGroupBy(in.GroupBy)
		if err != nil {
			return errorResult("Invalid group_by: " + err.Error()), nil, nil
		}

		report, err := h.service.GetTrainingTypeStats(ctx, stats.ReportParams{
			UserID:  userID,
			From:    from,
			To:      to,
			GroupBy: groupBy,
		})
		if err != nil {
			return errorResult("Error fetching training type stats: " + err.Error()), nil, nil
		}
		return jsonResult(report), nil, nil
	}
}

// AssignmentCompletionsInput is the input for get_assignment_completions.
type AssignmentCompletionsInput struct {
	AssignmentID string `json:"assignment_id" jsonschema:"Program assignment id (uuid)"`
}

// GetAssignmentCompletionsTool returns the handler for get_assignment_completions.
func (h *Handler) GetAssignmentCompletionsTool() func(context.Context, *mcp.CallToolRequest, AssignmentCompletionsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in AssignmentCompletionsInput) (*mcp.CallToolResult, any, error) {
		assignmentID, err := uuid.Parse(in.AssignmentID)
		if err != nil {
			return errorResult("Invalid assignment_id: use a uuid"), nil, nil
		}

		result, err := h.service.GetAssignmentCompletions(ctx, assignmentID)
		if err != nil {
			return errorResult("Error listing completions: " + err.Error()), nil, nil
		}
		return jsonResult(result), nil, nil
	}
}
