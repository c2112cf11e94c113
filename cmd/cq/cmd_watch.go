package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dhamidi/cq/css/analyzer"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newWatchCmd() *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Lint .css files whenever they change",
		Long: `Watch a directory tree and lint every .css file that is written.

All .css files are linted once at startup. Hidden directories are skipped.
Stop with Ctrl-C.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			w, err := newWatcher(cfg.NewAnalyzer(), debounce)
			if err != nil {
				return err
			}
			defer w.Close()
			return w.Run(ctx, dir)
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", 100*time.Millisecond, "wait this long after the last change before linting")

	return cmd
}

type watcher struct {
	fsw      *fsnotify.Watcher
	analyzer *analyzer.Analyzer
	debounce time.Duration
	log      commonlog.Logger

	mu      sync.Mutex
	pending map[string]*time.Timer
	// lint is called for each changed file; tests replace it.
	lint func(file string)
}

func newWatcher(a *analyzer.Analyzer, debounce time.Duration) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	w := &watcher{
		fsw:      fsw,
		analyzer: a,
		debounce: debounce,
		log:      commonlog.GetLogger("cq.watch"),
		pending:  make(map[string]*time.Timer),
	}
	w.lint = w.lintAndPrint
	return w, nil
}

func (w *watcher) Close() error {
	w.mu.Lock()
	for file, timer := range w.pending {
		timer.Stop()
		delete(w.pending, file)
	}
	w.mu.Unlock()
	return w.fsw.Close()
}

// Run lints every .css file under dir once and then again whenever one
// changes, until ctx is cancelled.
func (w *watcher) Run(ctx context.Context, dir string) error {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return w.fsw.Add(path)
		}
		if isStylesheet(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	for _, file := range files {
		w.lint(file)
	}
	w.log.Infof("watching %s (%d stylesheets)", dir, len(files))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			w.handle(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.log.Errorf("watch: %s", err)
		}
	}
}

func (w *watcher) handle(event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.fsw.Add(event.Name); err != nil {
				w.log.Warningf("cannot watch %s: %s", event.Name, err)
			}
			return
		}
	}
	if !isStylesheet(event.Name) || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	w.log.Debugf("%s: %s", event.Name, event.Op)
	w.schedule(event.Name)
}

// schedule lints file once no further event for it arrived within the
// debounce interval.
func (w *watcher) schedule(file string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.scheduleLocked(file)
}

func (w *watcher) scheduleLocked(file string) {
	if timer, ok := w.pending[file]; ok {
		timer.Stop()
	}
	// A timer that fired while its successor was being installed must not
	// drop the successor's entry.
	var timer *time.Timer
	timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		if w.pending[file] == timer {
			delete(w.pending, file)
		}
		w.mu.Unlock()
		w.lint(file)
	})
	w.pending[file] = timer
}

func (w *watcher) lintAndPrint(file string) {
	result, err := lintFile(cfg, w.analyzer, file, false)
	if err != nil {
		w.log.Errorf("%s: %s", file, err)
		return
	}
	if len(result.Syntax) == 0 && len(result.Findings) == 0 {
		fmt.Fprintf(os.Stderr, "%s: ok\n", file)
		return
	}
	if err := printResult(os.Stderr, result); err != nil {
		w.log.Errorf("%s: %s", file, err)
	}
}

func isStylesheet(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".css")
}
