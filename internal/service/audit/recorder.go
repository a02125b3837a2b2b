package audit

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/campus-collab-backend/internal/config"
	"github.com/heartmarshall/campus-collab-backend/internal/domain"
	"github.com/heartmarshall/campus-collab-backend/pkg/ctxutil"
	"github.com/heartmarshall/campus-collab-backend/pkg/retry"
)

// entryWriter persists a single audit entry.
type entryWriter interface {
	Insert(ctx context.Context, e domain.AuditEntry) error
}

// flushPoll is how often Flush checks the writer's progress.
const flushPoll = 5 * time.Millisecond

// Recorder turns audit events into entries and writes them asynchronously.
// Record never blocks: when the queue is full, or the writer has stopped,
// the entry is dropped, logged and counted.
type Recorder struct {
	log     *slog.Logger
	store   entryWriter
	cfg     config.AuditConfig
	queue   chan domain.AuditEntry
	now     func() time.Time
	metrics *recorderMetrics

	// Record holds mu shared across its send; drain takes it exclusively
	// to set stopped, after which the queue only shrinks.
	mu      sync.RWMutex
	stopped bool

	accepted atomic.Uint64 // entries enqueued
	settled  atomic.Uint64 // entries the writer has written or dropped
}

// NewRecorder creates a recorder. reg may be nil to skip metric registration.
func NewRecorder(logger *slog.Logger, store entryWriter, cfg config.AuditConfig, reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		log:   logger.With("service", "audit_recorder"),
		store: store,
		cfg:   cfg,
		queue: make(chan domain.AuditEntry, cfg.QueueSize),
		now:   time.Now,
	}
	r.metrics = newRecorderMetrics(reg, func() float64 { return float64(len(r.queue)) })
	return r
}

// Record snapshots the actor and client of ctx into an entry and enqueues it.
func (r *Recorder) Record(ctx context.Context, ev domain.AuditEvent) {
	entry := r.build(ctx, ev)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.stopped {
		r.drop(ctx, entry, dropWriterStopped, nil)
		return
	}

	select {
	case r.queue <- entry:
		r.accepted.Add(1)
		r.metrics.enqueued.Inc()
	default:
		r.drop(ctx, entry, dropQueueFull, nil)
	}
}

// Flush waits until every entry enqueued before the call has been written
// or dropped by the writer.
func (r *Recorder) Flush(ctx context.Context) error {
	target := r.accepted.Load()
	if r.settled.Load() >= target {
		return nil
	}

	ticker := time.NewTicker(flushPoll)
	defer ticker.Stop()
	for r.settled.Load() < target {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

func (r *Recorder) build(ctx context.Context, ev domain.AuditEvent) domain.AuditEntry {
	actor := ev.Actor
	if actor == nil {
		actor, _ = ctxutil.PrincipalFromCtx(ctx)
	}
	client := ctxutil.ClientInfoFromCtx(ctx)

	entry := domain.AuditEntry{
		ID:          uuid.New(),
		Actor:       domain.ActorFromPrincipal(actor),
		Action:      ev.Action,
		Category:    ev.Category,
		Description: ev.Description,
		EntityType:  ev.EntityType,
		EntityID:    ev.EntityID,
		OldValue:    ev.OldValue,
		NewValue:    ev.NewValue,
		IPAddress:   client.IP,
		UserAgent:   client.UserAgent,
		Status:      domain.AuditStatusSuccess,
		CreatedAt:   r.now().UTC(),
	}
	if ev.Err != nil {
		msg := ev.Err.Error()
		entry.Status = domain.AuditStatusFailed
		entry.ErrorMessage = &msg
	}
	return entry
}

// Run writes queued entries until ctx is cancelled, then stops accepting
// new ones and drains the queue within DrainTimeout. Cancel ctx only after
// the last producer (the HTTP server) has shut down. It always returns nil.
func (r *Recorder) Run(ctx context.Context) error {
	r.log.InfoContext(ctx, "audit writer started", slog.Int("queue_size", cap(r.queue)))

	writeCtx := context.WithoutCancel(ctx)
	for {
		select {
		case e := <-r.queue:
			r.write(writeCtx, e)
		case <-ctx.Done():
			r.drain(writeCtx)
			return nil
		}
	}
}

func (r *Recorder) drain(ctx context.Context) {
	r.mu.Lock()
	r.stopped = true
	r.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, r.cfg.DrainTimeout)
	defer cancel()

	// The queue can only shrink from here on, so an empty read means done.
	drained := 0
	for {
		if ctx.Err() != nil {
			abandoned := r.abandon(ctx)
			r.log.Warn("audit drain deadline exceeded",
				slog.Int("drained", drained),
				slog.Int("abandoned", abandoned),
			)
			return
		}

		select {
		case e := <-r.queue:
			r.write(ctx, e)
			drained++
		default:
			r.log.Info("audit writer stopped", slog.Int("drained", drained))
			return
		}
	}
}

// abandon drops whatever is still queued after the drain deadline.
func (r *Recorder) abandon(ctx context.Context) int {
	n := 0
	for {
		select {
		case e := <-r.queue:
			r.drop(ctx, e, dropDrainTimeout, ctx.Err())
			r.settled.Add(1)
			n++
		default:
			return n
		}
	}
}

func (r *Recorder) write(ctx context.Context, e domain.AuditEntry) {
	cfg := retry.Config{
		MaxRetries:   r.cfg.MaxRetries,
		InitialDelay: r.cfg.RetryDelay,
		MaxDelay:     r.cfg.MaxRetryDelay,
		Multiplier:   2.0,
		JitterFactor: 0.1,
	}

	defer r.settled.Add(1)

	err := retry.Do(ctx, cfg, func(ctx context.Context) error {
		wctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
		defer cancel()

		err := r.store.Insert(wctx, e)
		if errors.Is(err, domain.ErrNotFound) {
			return retry.Permanent(err)
		}
		return err
	})
	if err == nil {
		r.metrics.written.Inc()
		return
	}

	reason := dropWriteFailed
	if errors.Is(err, domain.ErrNotFound) {
		reason = dropActorGone
	}
	r.drop(ctx, e, reason, err)
}

func (r *Recorder) drop(ctx context.Context, e domain.AuditEntry, reason string, err error) {
	r.metrics.dropped.WithLabelValues(reason).Inc()

	attrs := []any{
		slog.String("action", string(e.Action)),
		slog.String("actor", e.Actor.Email),
		slog.String("reason", reason),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	r.log.WarnContext(ctx, "audit entry dropped", attrs...)
}

// Backlog reports the number of queued entries and the queue capacity.
func (r *Recorder) Backlog() (queued, capacity int) {
	return len(r.queue), cap(r.queue)
}
