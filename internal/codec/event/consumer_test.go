package event

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shandysiswandi/gocodec/internal/codec/entity"
)

type recorderFunc func(ctx context.Context, rec entity.GenRecord) error

func (r recorderFunc) Append(ctx context.Context, rec entity.GenRecord) error {
	return r(ctx, rec)
}

func TestAuditConsumerRetriesAndIdempotent(t *testing.T) {
	bus := NewBus(10)

	var attempts int32
	done := make(chan struct{})
	recorder := recorderFunc(func(ctx context.Context, rec entity.GenRecord) error {
		n := atomic.AddInt32(&attempts, 1)
		if n < 3 {
			return errors.New("temporary failure")
		}
		select {
		case <-done:
		default:
			close(done)
		}
		return nil
	})

	consumer := NewAuditConsumer(bus, recorder, ConsumerConfig{
		Workers:     1,
		MaxRetries:  2,
		BaseBackoff: time.Millisecond,
	})
	consumer.Start()

	event := entity.IDGeneratedEvent{EventID: "evt-1", Kind: entity.IDKindULID, Value: "01ARZ"}
	if err := bus.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish event: %v", err)
	}
	if err := bus.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish duplicate: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for recorder")
	}

	if err := consumer.Stop(context.Background()); err != nil {
		t.Fatalf("stop consumer: %v", err)
	}

	if got := atomic.LoadInt32(&attempts); got != 3 {
		t.Fatalf("expected 3 attempts (2 retries, duplicate skipped), got %d", got)
	}
}

func TestBusClosedPublish(t *testing.T) {
	bus := NewBus(1)
	bus.Close()

	err := bus.Publish(context.Background(), entity.IDGeneratedEvent{EventID: "evt-2"})
	if !errors.Is(err, ErrBusClosed) {
		t.Fatalf("expected ErrBusClosed, got %v", err)
	}
}
