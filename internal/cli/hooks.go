package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/requiremedia/pkg/observability"
)

// logHooks reports observability events as debug logs.
type logHooks struct {
	logger *log.Logger
}

func installHooks(l *log.Logger) {
	h := &logHooks{logger: l}
	observability.SetRegistryHooks(h)
	observability.SetRenderHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

func (h *logHooks) OnRegister(kind, name, group string) {
	h.logger.Debug("registered", "kind", kind, "name", name, "group", group)
}

func (h *logHooks) OnSort(nodeCount int, cycle bool, d time.Duration) {
	h.logger.Debug("sorted", "nodes", nodeCount, "cycle", cycle, "took", d)
}

func (h *logHooks) OnRender(groups []string, fragments int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("rendered", "groups", groups, "fragments", fragments, "took", d, "err", err)
		return
	}
	h.logger.Debug("rendered", "groups", groups, "fragments", fragments, "took", d)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *logHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Info("served", "method", method, "path", path, "status", status, "took", d.Round(time.Microsecond))
}
