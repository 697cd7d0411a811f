package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/closeworld/bundle"
)

// Watch generates once, then regenerates whenever a file of the bundle
// changes. Bursts of events are coalesced by watch.debounce, and a rerun is
// skipped when the bundle fingerprint is unchanged. Generation errors are
// logged, not returned, so a half-saved file does not end the session.
//
// Watch returns nil when ctx is cancelled.
func (a *App) Watch(ctx context.Context, stdout io.Writer, patterns []string) error {
	if len(patterns) == 0 {
		patterns = a.cfg.Closure.Sources
	}
	if len(patterns) == 0 {
		return errNoSources
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	for _, dir := range watchDirs(patterns) {
		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		a.logger.Debug("Watching directory", "dir", dir)
	}

	last := a.regenerate(stdout, patterns, "")
	a.logger.Info("Watching bundle", "patterns", patterns, "debounce", a.cfg.Watch.Debounce.String())

	var (
		timer *time.Timer
		fire  <-chan time.Time // nil while no regeneration is pending
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("Watch stopped")
			return nil

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) && isDir(ev.Name) {
				if err := fsw.Add(ev.Name); err != nil {
					a.logger.Warn("Failed to watch directory", "dir", ev.Name, "error", err)
				}
			}
			if !relevant(ev, patterns) {
				continue
			}
			a.logger.Debug("File event", "path", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(a.cfg.Watch.Debounce)
			} else {
				timer.Reset(a.cfg.Watch.Debounce)
			}
			fire = timer.C

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn("Watcher error", "error", err)

		case <-fire:
			fire = nil
			last = a.regenerate(stdout, patterns, last)
		}
	}
}

// regenerate runs one generation unless the fingerprint equals prev, and
// returns the fingerprint of the bundle it saw.
func (a *App) regenerate(stdout io.Writer, patterns []string, prev string) string {
	paths, err := bundle.Resolve(patterns...)
	if err != nil {
		a.logger.Error("Resolve failed", "error", err)
		return prev
	}
	fp, err := bundle.Fingerprint(paths)
	if err != nil {
		a.logger.Error("Fingerprint failed", "error", err)
		return prev
	}
	if fp == prev {
		a.logger.Debug("Bundle unchanged", "fingerprint", fp[:12])
		return prev
	}

	rep, err := a.Generate(patterns)
	if err != nil {
		a.logger.Error("Generation failed", "error", err)
		return fp
	}
	if err := a.Emit(stdout, rep); err != nil {
		a.logger.Error("Write failed", "error", err)
	}

	return rep.Fingerprint
}

// watchDirs returns the static base directory of every pattern plus all
// directories below it, sorted. fsnotify is not recursive.
func watchDirs(patterns []string) []string {
	seen := make(map[string]struct{})
	for _, p := range patterns {
		base, _ := doublestar.SplitPattern(filepath.ToSlash(filepath.Clean(p)))
		base = filepath.FromSlash(base)
		seen[base] = struct{}{}
		subdirs, err := doublestar.FilepathGlob(filepath.Join(base, "**"))
		if err != nil {
			continue
		}
		for _, d := range subdirs {
			if isDir(d) {
				seen[d] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Strings(out)

	return out
}

// relevant reports whether ev touches a file matched by one of patterns.
func relevant(ev fsnotify.Event, patterns []string) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	name := filepath.ToSlash(filepath.Clean(ev.Name))
	for _, p := range patterns {
		if ok, _ := doublestar.Match(filepath.ToSlash(filepath.Clean(p)), name); ok {
			return true
		}
	}

	return false
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
