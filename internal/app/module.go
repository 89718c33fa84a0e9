package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/shandysiswandi/gocodec/internal/codec"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.codec.enabled") {
		closer, err := codec.New(codec.Dependency{
			Config:    a.config,
			Router:    a.router,
			Goroutine: a.goroutine,
			Context:   a.ctx,
			ID:        a.uuid,
		})
		if err != nil {
			slog.Error("failed to init module codec", "error", err)
			os.Exit(1)
		}
		if closer != nil {
			if a.closerFn == nil {
				a.closerFn = map[string]func(context.Context) error{}
			}
			a.closerFn["Codec"] = closer
		}
	}
}
