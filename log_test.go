package altecs_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oriumgames/altecs"
	"github.com/oriumgames/altecs/hosttest"
)

func TestHostHandlerRoutesLevels(t *testing.T) {
	host := hosttest.NewHost()
	log := slog.New(altecs.NewHostHandler(host, slog.LevelInfo))

	log.Debug("hidden")
	log.Info("hello", "k", 1)
	log.Warn("careful")
	log.With("res", "x").Error("bad")
	log.WithGroup("g").Info("grouped", "a", true)

	assert.Equal(t, []hosttest.LogLine{
		{Level: "info", Msg: "msg=hello k=1"},
		{Level: "warning", Msg: "msg=careful"},
		{Level: "error", Msg: "msg=bad res=x"},
		{Level: "info", Msg: "msg=grouped g.a=true"},
	}, host.Logs())
}

func TestHostHandlerDebug(t *testing.T) {
	host := hosttest.NewHost()
	log := slog.New(altecs.NewHostHandler(host, slog.LevelDebug))

	log.Debug("trace", "n", 2)
	assert.Equal(t, []hosttest.LogLine{{Level: "debug", Msg: "msg=trace n=2"}}, host.Logs())

	assert.True(t, altecs.NewHostHandler(host, nil).Enabled(t.Context(), slog.LevelInfo))
	assert.False(t, altecs.NewHostHandler(host, nil).Enabled(t.Context(), slog.LevelDebug))
}
