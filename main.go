package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/Artyom17/webxr-input-profiles/internal/config"
	"github.com/Artyom17/webxr-input-profiles/internal/hub"
	"github.com/Artyom17/webxr-input-profiles/internal/logging"
	"github.com/Artyom17/webxr-input-profiles/internal/profile"
	"github.com/Artyom17/webxr-input-profiles/internal/server"
	"github.com/Artyom17/webxr-input-profiles/internal/tray"
	"github.com/Artyom17/webxr-input-profiles/internal/viewer"
	"go.uber.org/zap"
)

// Cross-platform signal handling: os.Interrupt covers Ctrl+C on Windows and
// SIGINT on Unix.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logging.NewLogger(cfg.LogLevel)
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, shutdownSignals...)

	registry, err := profile.LoadDir(cfg.ProfileDir, log)
	if err != nil {
		log.Fatal("failed to load profiles", zap.Error(err))
	}

	// Viewer plus its frame loop
	v := viewer.New(log)
	scheduler := viewer.NewScheduler(v, cfg.TickRate, log)
	schedulerDone := make(chan struct{})
	go func() {
		scheduler.Run(ctx)
		close(schedulerDone)
	}()

	// Hub and broadcaster
	h := hub.NewHub(log)
	go h.Run()
	broadcaster := hub.NewBroadcaster(h, scheduler.Frames(), log)
	go broadcaster.Run()

	// HTTP server
	session := server.NewSession(registry, v)
	srv := server.New(log, h, broadcaster, session, frontendFS(), cfg.Addr)
	serverErrCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		}
	}()

	url := viewerURL(cfg.Addr)
	log.Info("viewer started", zap.String("url", url))

	shutdownRequested := make(chan struct{})
	if runtime.GOOS == "windows" {
		go func() {
			t := tray.New(log, url, func() {
				close(shutdownRequested)
			})
			t.Run(tray.GetIcon())
		}()
	} else {
		log.Info("press Ctrl+C to exit")
	}

	select {
	case <-sigCh:
		log.Info("shutting down")
		cancel()
	case <-shutdownRequested:
		log.Info("shutdown requested from tray")
		cancel()
	case err := <-serverErrCh:
		log.Error("http server error", zap.Error(err))
		cancel()
	}

	scheduler.Stop()
	<-schedulerDone
	v.Dispose()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown error", zap.Error(err))
	}

	log.Info("viewer stopped")
}

func viewerURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
