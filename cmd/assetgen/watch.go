package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bpb/resume-tailor/pkg/assetgen/config"
	"github.com/bpb/resume-tailor/pkg/assetgen/logging"
	"github.com/bpb/resume-tailor/pkg/assetgen/watcher"
)

// runWatch generates once, then keeps the selected manifests current as
// the watched roots change. Each regeneration is a full fresh scan; no
// state is carried between passes. Blocks until interrupted.
func runWatch(cfg *config.Config, doResumes, doThemes bool) error {
	logger := logging.Get("watch")

	// Initial pass before settling into the event loop.
	if err := generate(cfg, doResumes, doThemes); err != nil {
		return err
	}

	w, err := watcher.New()
	if err != nil {
		return err
	}
	defer w.Close()

	watched := 0
	for _, root := range watchRoots(cfg, doResumes, doThemes) {
		rootPath := filepath.Join(cfg.Base, root)
		if _, err := os.Stat(rootPath); os.IsNotExist(err) {
			logger.Info("not watching missing root", "root", root)
			continue
		}
		if err := w.Watch(rootPath); err != nil {
			logger.Warn("cannot watch root", "root", root, "error", err)
			continue
		}
		watched++
	}
	if watched == 0 {
		logger.Warn("no roots to watch, exiting after initial generation")
		return nil
	}

	debounce, err := time.ParseDuration(cfg.Watch.Debounce)
	if err != nil || debounce <= 0 {
		logger.Warn("invalid debounce, using default", "value", cfg.Watch.Debounce)
		debounce, _ = time.ParseDuration(config.DefaultDebounce)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	changes := make(chan string, 64)
	go w.Run(ctx, func(path string, op fsnotify.Op) {
		logger.Debug("change detected", "path", path, "op", op.String())
		select {
		case changes <- path:
		default:
			// A regeneration is already pending; dropping is fine.
		}
	})

	printInfo("Watching %d roots (debounce %s), Ctrl-C to stop", watched, debounce)

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			printInfo("Stopping watch")
			return nil

		case <-changes:
			pending = true
			timer.Reset(debounce)

		case <-timer.C:
			if !pending {
				continue
			}
			pending = false
			if err := generate(cfg, doResumes, doThemes); err != nil {
				// Keep watching; the next change may succeed.
				logger.Error("regeneration failed", "error", err)
			}
		}
	}
}

// watchRoots returns the roots relevant to the selected manifests.
func watchRoots(cfg *config.Config, doResumes, doThemes bool) []string {
	var roots []string
	if doResumes {
		roots = append(roots, cfg.Resumes.Roots...)
	}
	if doThemes {
		roots = append(roots, cfg.Themes.Roots...)
	}
	return roots
}
