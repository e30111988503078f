package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/calendar"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/telemetry/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

var ErrInvalidRange = errors.New("invalid date range")

type GroupBy string

const (
	GroupByNone  GroupBy = ""
	GroupByWeek  GroupBy = "week"
	GroupByMonth GroupBy = "month"
	GroupByYear  GroupBy = "year"
)

func ParseGroupBy(s string) (GroupBy, error) {
	switch g := GroupBy(s); g {
	case GroupByNone, GroupByWeek, GroupByMonth, GroupByYear:
		return g, nil
	default:
		return GroupByNone, fmt.Errorf("unknown group %q, expected week, month or year", s)
	}
}

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=stats_test

type statsFetcher interface {
	FetchRange(ctx context.Context, userID uuid.UUID, from, to calendar.Date) ([]TrainingTypeStat, error)
}

type ReportParams struct {
	UserID  uuid.UUID
	From    calendar.Date
	To      calendar.Date
	GroupBy GroupBy
}

type Report struct {
	UserID       uuid.UUID      `json:"userId"`
	From         calendar.Date  `json:"from"`
	To           calendar.Date  `json:"to"`
	GroupBy      GroupBy        `json:"groupBy,omitempty"`
	TotalMinutes int            `json:"totalMinutes"`
	ByType       map[string]int `json:"byType"`
	Buckets      Buckets        `json:"buckets,omitempty"`
}

type Service struct {
	fetcher statsFetcher
}

func NewService(fetcher statsFetcher) *Service {
	return &Service{
		fetcher: fetcher,
	}
}

func (s *Service) Rows(ctx context.Context, userID uuid.UUID, from, to calendar.Date) (_ []TrainingTypeStat, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.rows")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if from.After(to) {
		return nil, ErrInvalidRange
	}
	return s.fetcher.FetchRange(ctx, userID, from, to)
}

// Report sums minutes per training type over [From, To] and, when GroupBy is
// set, per week, month or year.
func (s *Service) Report(ctx context.Context, params ReportParams) (_ *Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.report")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("group-by", string(params.GroupBy)))

	if params.From.After(params.To) {
		return nil, ErrInvalidRange
	}

	rows, err := s.fetcher.FetchRange(ctx, params.UserID, params.From, params.To)
	if err != nil {
		return nil, fmt.Errorf("fetch stats: %w", err)
	}

	report := &Report{
		UserID:       params.UserID,
		From:         params.From,
		To:           params.To,
		GroupBy:      params.GroupBy,
		TotalMinutes: TotalMinutes(rows),
		ByType:       AggregateByType(rows),
	}

	switch params.GroupBy {
	case GroupByWeek:
		report.Buckets = AggregateByWeek(rows)
	case GroupByMonth:
		report.Buckets = AggregateByMonth(rows)
	case GroupByYear:
		report.Buckets = AggregateByYear(rows)
	}

	return report, nil
}
