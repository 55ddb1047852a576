package board

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName        = "kanban-core/board"
	mutationEventName = "board.mutation"

	outcomeApplied  = "applied"
	outcomeNoop     = "noop"
	outcomeRejected = "rejected"
)

// mutationMetrics records one store mutation as a trace span plus a
// structured log event. No-ops are logged at warning level: they usually mean
// the drag layer delivered a stale or malformed event.
type mutationMetrics struct {
	logger  *log.Logger
	span    trace.Span
	start   time.Time
	op      string
	taskID  string
	outcome string
}

func newMutationMetrics(ctx context.Context, logger *log.Logger, op string) (*mutationMetrics, context.Context) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "board."+op)
	return &mutationMetrics{
		logger:  logger,
		span:    span,
		start:   time.Now(),
		op:      op,
		outcome: outcomeApplied,
	}, ctx
}

func (m *mutationMetrics) SetTask(id string) {
	if id == "" {
		return
	}
	m.taskID = id
}

func (m *mutationMetrics) SetOutcome(outcome string) {
	m.outcome = outcome
}

func (m *mutationMetrics) Finish(err error) {
	if m == nil {
		return
	}
	totalMs := durationToMillis(time.Since(m.start))

	attrs := []attribute.KeyValue{
		attribute.String("board.op", m.op),
		attribute.String("board.outcome", m.outcome),
		attribute.Float64("board.total_ms", totalMs),
	}
	if m.taskID != "" {
		attrs = append(attrs, attribute.String("board.task_id", m.taskID))
	}
	m.span.SetAttributes(attrs...)
	if err != nil {
		m.span.SetStatus(codes.Error, err.Error())
	} else {
		m.span.SetStatus(codes.Ok, "")
	}
	m.span.End()

	if m.logger == nil {
		return
	}
	fields := log.Fields{
		"op":       m.op,
		"outcome":  m.outcome,
		"total_ms": totalMs,
	}
	if m.taskID != "" {
		fields["task_id"] = m.taskID
	}
	entry := m.logger.WithFields(fields)
	switch {
	case err != nil:
		entry.WithError(err).Warn(mutationEventName)
	case m.outcome != outcomeApplied:
		entry.Warn(mutationEventName)
	default:
		entry.Info(mutationEventName)
	}
}

func durationToMillis(d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(d) / float64(time.Millisecond)
}
