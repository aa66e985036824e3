// File: watch.go
// Title: Watch Mode
// Description: Recompiles source files whenever they change on disk.
//              Watches the parent directories of the inputs, debounces
//              editor write bursts, and stops when the context is
//              cancelled.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-15 v0.1.0: Initial watch mode

package driver

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	toycerror "github.com/msto63/toyc/foundation/core/error"
	toyclog "github.com/msto63/toyc/foundation/core/log"
)

// debounceDelay suppresses the duplicate events editors emit for one
// save
const debounceDelay = 500 * time.Millisecond

// Watch compiles the given files once, then recompiles each file when
// it changes, until the context is cancelled. Compilation failures do
// not end the watch; they are rendered like any other run.
func (d *Driver) Watch(ctx context.Context, files []string) error {
	if len(files) == 0 {
		return toycerror.New("no input files").
			WithCode(toycerror.CodeOptionInvalid).
			WithOperation("driver.Watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return toycerror.Wrap(err, "cannot create file watcher").
			WithCode(toycerror.CodeWatchFailed).
			WithOperation("driver.Watch")
	}
	defer watcher.Close()

	// Watch parent directories, not the files themselves: editors that
	// save via rename replace the watched inode
	inputs := make(map[string]string, len(files))
	dirs := make(map[string]bool)
	for _, f := range files {
		clean := filepath.Clean(f)
		inputs[clean] = f
		dir := filepath.Dir(clean)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return toycerror.Wrap(err, "cannot watch directory").
				WithCode(toycerror.CodeWatchFailed).
				WithOperation("driver.Watch").
				WithDetail("dir", dir)
		}
		dirs[dir] = true
	}

	d.logger.Info("watch started", toyclog.Fields{
		"files": len(files),
		"dirs":  len(dirs),
	})

	d.renderWatched(files)

	debounce := make(map[string]time.Time)
	for {
		select {
		case <-ctx.Done():
			d.logger.Info("watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			original, watched := inputs[filepath.Clean(event.Name)]
			if !watched {
				continue
			}
			if last, seen := debounce[event.Name]; seen && time.Since(last) < debounceDelay {
				continue
			}
			debounce[event.Name] = time.Now()

			d.logger.Info("source changed, recompiling", toyclog.Fields{
				"file": original,
				"op":   event.Op.String(),
			})
			d.renderWatched([]string{original})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			d.logger.Error("watch error", toyclog.Fields{"error": err.Error()})
		}
	}
}

// renderWatched compiles files sequentially and prints their results
// immediately. Watch mode keeps the output simple: one batch per change.
func (d *Driver) renderWatched(files []string) {
	for _, f := range files {
		r := d.compileFile(f)

		d.writeMu.Lock()
		if r.stdout != "" {
			fmt.Fprint(d.opts.Stdout, r.stdout)
		}
		if r.stderr != "" {
			fmt.Fprint(d.opts.Stderr, r.stderr)
		}
		status := "ok"
		if r.failed {
			status = "failed"
		}
		fmt.Fprintf(d.opts.Stderr, "toyc: %s: %s\n", f, status)
		d.writeMu.Unlock()
	}
}
