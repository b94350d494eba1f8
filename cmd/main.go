package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/moltbot/gateway/internal/common"
	"github.com/moltbot/gateway/internal/config"
	"github.com/moltbot/gateway/internal/gateway"
	"github.com/moltbot/gateway/internal/gperr"
	"github.com/moltbot/gateway/internal/logging"
	"github.com/moltbot/gateway/internal/server"
	"github.com/moltbot/gateway/pkg"
)

func main() {
	logging.InitLogger(os.Stderr)
	logging.Info().Msgf("moltbot gateway version %s", pkg.GetVersion())

	cfg, err := config.Load(common.ConfigPath)
	if err != nil {
		gperr.LogFatal("config load error", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gw := gateway.New(cfg)

	if err := config.Watch(ctx, common.ConfigPath, gw.Reload); err != nil {
		gperr.LogWarn("config watch disabled", err)
	}

	srv := server.NewServer(server.Options{
		Name:     "gateway",
		HTTPAddr: cfg.Listen,
		Handler:  gw,
	})
	if startErr := srv.Start(ctx); startErr != nil {
		gperr.LogFatal("failed to start server", startErr)
		return
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	<-sig

	cancel()
	srv.Stop()
	gw.CloseSessions()
}
