package codec

import (
	"context"
	"time"

	"github.com/shandysiswandi/gocodec/internal/codec/event"
	"github.com/shandysiswandi/gocodec/internal/codec/inbound"
	"github.com/shandysiswandi/gocodec/internal/codec/store"
	"github.com/shandysiswandi/gocodec/internal/codec/usecase"
	"github.com/shandysiswandi/gocodec/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gocodec/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gocodec/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/gocodec/internal/pkg/pkguid"
)

type Dependency struct {
	Config    pkgconfig.Config
	Goroutine *pkgroutine.Manager
	Router    *pkgrouter.Router
	Context   context.Context
	ID        pkguid.StringID
}

func New(dep Dependency) (func(context.Context) error, error) {
	historySize := int(dep.Config.GetInt("modules.codec.history_size"))
	if historySize < 1 {
		historySize = 512
	}

	workers := int(dep.Config.GetInt("modules.codec.audit.workers"))
	if workers < 1 {
		workers = 4
	}

	history := store.NewInMemoryHistory(historySize)
	bus := event.NewBus(512)
	consumer := event.NewAuditConsumer(bus, history, event.ConsumerConfig{
		Workers:     workers,
		MaxRetries:  3,
		BaseBackoff: 200 * time.Millisecond,
	})
	consumer.Start()

	if dep.ID == nil {
		dep.ID = pkguid.NewUUID()
	}

	uc, err := usecase.New(usecase.Dependency{
		Store:   history,
		Events:  bus,
		Runner:  dep.Goroutine,
		ID:      dep.ID,
		RootCtx: dep.Context,
		Snowflake: usecase.SnowflakeSettings{
			EpochMs:  dep.Config.GetInt("modules.codec.snowflake.epoch_ms"),
			WorkerID: dep.Config.GetInt("modules.codec.snowflake.worker_id"),
		},
		NanoID: usecase.NanoIDSettings{
			Alphabet: dep.Config.GetString("modules.codec.nanoid.alphabet"),
			Length:   int(dep.Config.GetInt("modules.codec.nanoid.length")),
		},
	})
	if err != nil {
		_ = consumer.Stop(context.Background())
		return nil, err
	}

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return consumer.Stop, nil
}
