package program

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/telemetry/metrics"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=program_test

type slotsLoader interface {
	ListSlots(ctx context.Context, programID uuid.UUID) (Schedule, error)
}

// ScheduleCache memoizes program schedules. Program structure is edited rarely,
// so a stale entry lives at most ttl.
type ScheduleCache struct {
	loader  slotsLoader
	cache   *freecache.Cache
	ttl     time.Duration
	metrics *metrics.Manager
}

func NewScheduleCache(
	loader slotsLoader,
	sizeBytes int,
	ttl time.Duration,
	metricsManager *metrics.Manager,
) *ScheduleCache {
	return &ScheduleCache{
		loader:  loader,
		cache:   freecache.NewCache(sizeBytes),
		ttl:     ttl,
		metrics: metricsManager,
	}
}

func (c *ScheduleCache) Get(ctx context.Context, programID uuid.UUID) (_ Schedule, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.program.schedule.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	key := programID[:]
	if scheduleBytes, err := c.cache.Get(key); err == nil {
		var schedule Schedule
		if err := json.Unmarshal(scheduleBytes, &schedule); err == nil {
			c.metrics.CounterScheduleCache.WithLabelValues("hit").Inc()
			return schedule, nil
		}
		log.Warnf("schedule cache: drop corrupt entry for program %s", programID)
		c.cache.Del(key)
	}
	c.metrics.CounterScheduleCache.WithLabelValues("miss").Inc()

	schedule, err := c.loader.ListSlots(ctx, programID)
	if err != nil {
		return nil, err
	}

	scheduleBytes, err := json.Marshal(schedule)
	if err != nil {
		log.Errorf("schedule cache: marshal schedule of program %s: %s", programID, err)
		return schedule, nil
	}
	if err := c.cache.Set(key, scheduleBytes, expireSeconds(c.ttl)); err != nil {
		log.Errorf("schedule cache: set program %s: %s", programID, err)
	}

	return schedule, nil
}

// Invalidate drops the cached schedule of a program.
func (c *ScheduleCache) Invalidate(programID uuid.UUID) {
	c.cache.Del(programID[:])
}

// expireSeconds rounds ttl up to whole seconds. freecache reads 0 as no expiry,
// so anything positive maps to at least one second.
func expireSeconds(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	return int(math.Max(1, math.Ceil(ttl.Seconds())))
}
