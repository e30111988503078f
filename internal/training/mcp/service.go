package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/training/completions"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/training/stats"

	"github.com/google/uuid"
)

type statsReporter interface {
	Report(ctx context.Context, params stats.ReportParams) (*stats.Report, error)
}

type completionsLister interface {
	ListForAssignment(ctx context.Context, assignmentID uuid.UUID) ([]completions.Completion, error)
}

// contextService is what the tool handlers need. Kept as an interface for tests.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	GetTrainingTypeStats(ctx context.Context, params stats.ReportParams) (*stats.Report, error)
	GetAssignmentCompletions(ctx context.Context, assignmentID uuid.UUID) (*AssignmentCompletions, error)
}

// AssignmentCompletions lists the completions of an assignment with a count per status.
type AssignmentCompletions struct {
	AssignmentID uuid.UUID                  `json:"assignmentId"`
	ByStatus     map[completions.Status]int `json:"byStatus"`
	Completions  []completions.Completion   `json:"completions"`
}

type ContextService struct {
	schema      SchemaRepo
	stats       statsReporter
	completions completionsLister
}

func NewContextService(schemaRepo SchemaRepo, statsService statsReporter, completionsService completionsLister) *ContextService {
	return &ContextService{
		schema:      schemaRepo,
		stats:       statsService,
		completions: completionsService,
	}
}

// GetSchema returns the training tables as markdown, one table per section.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetTrainingColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatTrainingSchema(cols), nil
}

func formatTrainingSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Training DB Schema\n\nNo training tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}
	tableNames := make([]string, 0, len(byTable))
	for t := range byTable {
		tableNames = append(tableNames, t)
	}
	sort.Strings(tableNames)

	var b strings.Builder
	b.WriteString("# Training DB Schema\n\n")
	for _, tableName := range tableNames {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) GetTrainingTypeStats(ctx context.Context, params stats.ReportParams) (*stats.Report, error) {
	return s.stats.Report(ctx, params)
}

func (s *ContextService) GetAssignmentCompletions(ctx context.Context, assignmentID uuid.UUID) (*AssignmentCompletions, error) {
	list, err := s.completions.ListForAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[completions.Status]int)
	for _, c := range list {
		byStatus[c.Status]++
	}
	return &AssignmentCompletions{
		AssignmentID: assignmentID,
		ByStatus:     byStatus,
		Completions:  list,
	}, nil
}
