package main

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// watchDebounce is how long to wait for more changes before rebuilding.
// Editors often emit several events per save.
const watchDebounce = 200 * time.Millisecond

// runWatch builds once, then rebuilds whenever a markdown source changes.
// It returns when the context is canceled.
func runWatch(ctx context.Context, p *buildParams, newService func() (*md2site.Service, error), env *Environment) error {
	if err := runBuild(ctx, p, newService, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	for _, input := range p.inputs {
		if err := addWatchesRecursive(watcher, input); err != nil {
			return err
		}
	}

	if !p.quiet {
		fmt.Fprintf(env.Stdout, "watching %v for changes\n", p.inputs)
	}

	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create != 0 && fileutil.DirExists(event.Name) {
				_ = addWatchesRecursive(watcher, event.Name)
			}
			if !fileutil.IsMarkdownPath(event.Name) {
				continue
			}
			if timer == nil {
				timer = time.AfterFunc(watchDebounce, func() {
					select {
					case pending <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(watchDebounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(env.Stderr, "watch error: %v\n", err)

		case <-pending:
			timer = nil
			if err := runBuild(ctx, p, newService, env); err != nil {
				fmt.Fprintf(env.Stderr, "error: %v\n", err)
			}
		}
	}
}

// addWatchesRecursive watches root and every directory under it. fsnotify
// does not recurse on its own.
func addWatchesRecursive(watcher *fsnotify.Watcher, root string) error {
	info, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	if fileutil.FileExists(info) {
		return watcher.Add(filepath.Dir(info))
	}
	return filepath.WalkDir(info, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
