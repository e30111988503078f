package reconciler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

const (
	runsKey        = "training:reconcile:runs"
	maxStoredRuns  = 50
	defaultHistory = 10
)

var ErrNoRuns = errors.New("no reconcile runs recorded")

// RunRecorder keeps the latest reconcile results in a capped redis list,
// newest first.
type RunRecorder struct {
	rdb *redis.Client
}

func NewRunRecorder(rdb *redis.Client) *RunRecorder {
	return &RunRecorder{
		rdb: rdb,
	}
}

func (r *RunRecorder) Record(ctx context.Context, result *Result) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.reconcile.record")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	resultJson, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if err := r.rdb.LPush(ctx, runsKey, string(resultJson)).Err(); err != nil {
		return fmt.Errorf("push result: %w", err)
	}
	if err := r.rdb.LTrim(ctx, runsKey, 0, maxStoredRuns-1).Err(); err != nil {
		return fmt.Errorf("trim results: %w", err)
	}
	return nil
}

func (r *RunRecorder) Last(ctx context.Context) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.reconcile.last")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	resultJson, err := r.rdb.LIndex(ctx, runsKey, 0).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoRuns
		}
		return nil, err
	}

	var result Result
	if err := json.Unmarshal([]byte(resultJson), &result); err != nil {
		return nil, fmt.Errorf("unmarshal result: %w", err)
	}
	return &result, nil
}

// History returns up to limit recorded results, newest first.
func (r *RunRecorder) History(ctx context.Context, limit int) (_ []Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.reconcile.history")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if limit <= 0 || limit > maxStoredRuns {
		limit = defaultHistory
	}

	entries, err := r.rdb.LRange(ctx, runsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(entries))
	for _, entry := range entries {
		var result Result
		if err := json.Unmarshal([]byte(entry), &result); err != nil {
			return nil, fmt.Errorf("unmarshal result: %w", err)
		}
		results = append(results, result)
	}
	return results, nil
}
