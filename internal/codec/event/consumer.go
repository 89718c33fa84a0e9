package event

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/shandysiswandi/gocodec/internal/codec/entity"
)

// Recorder persists one audit record per consumed event.
type Recorder interface {
	Append(ctx context.Context, rec entity.GenRecord) error
}

type ConsumerConfig struct {
	Workers     int
	MaxRetries  int
	BaseBackoff time.Duration
}

// AuditConsumer drains the bus and writes generation records through the
// Recorder. Events are deduplicated by EventID so a republished event is
// recorded once; failed writes are retried with exponential backoff.
type AuditConsumer struct {
	bus         *Bus
	recorder    Recorder
	workers     int
	maxRetries  int
	baseBackoff time.Duration
	seen        sync.Map
	wg          sync.WaitGroup
}

func NewAuditConsumer(bus *Bus, recorder Recorder, cfg ConsumerConfig) *AuditConsumer {
	workers := cfg.Workers
	if workers < 1 {
		workers = 4
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	baseBackoff := cfg.BaseBackoff
	if baseBackoff <= 0 {
		baseBackoff = 100 * time.Millisecond
	}

	return &AuditConsumer{
		bus:         bus,
		recorder:    recorder,
		workers:     workers,
		maxRetries:  maxRetries,
		baseBackoff: baseBackoff,
	}
}

func (c *AuditConsumer) Start() {
	for i := 0; i < c.workers; i++ {
		c.wg.Add(1)
		go c.worker()
	}
}

func (c *AuditConsumer) Stop(ctx context.Context) error {
	if c.bus != nil {
		c.bus.Close()
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *AuditConsumer) worker() {
	defer c.wg.Done()

	for event := range c.bus.Subscribe() {
		c.processEvent(event)
	}
}

func (c *AuditConsumer) processEvent(event entity.IDGeneratedEvent) {
	if c.recorder == nil {
		return
	}

	if event.EventID != "" {
		if _, loaded := c.seen.LoadOrStore(event.EventID, struct{}{}); loaded {
			slog.Info("skip duplicate generation event", "event_id", event.EventID, "kind", event.Kind)
			return
		}
	}

	rec := entity.GenRecord{
		Kind:  event.Kind,
		Value: event.Value,
		At:    event.At,
	}

	backoff := c.baseBackoff
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		err := c.recorder.Append(context.Background(), rec)
		if err == nil {
			return
		}

		if attempt == c.maxRetries {
			slog.Error("failed to record generation event after retries", "event_id", event.EventID, "kind", event.Kind, "error", err)
			return
		}

		time.Sleep(backoff)
		backoff *= 2
	}
}
