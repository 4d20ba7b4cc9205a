package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"tools.zach/dev/palette/internal/css"
	"tools.zach/dev/palette/internal/remote"
	"tools.zach/dev/palette/internal/source"
	"tools.zach/dev/palette/internal/update"
)

// ///////////////////////////////////////////////
// parse
// ///////////////////////////////////////////////

// cmdParse parses each argument as a single color expression and prints the
// result. Aliases from the config are resolved first. Returns 1 if any
// expression failed to parse.
func cmdParse(rep *reporter, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(rep.errOut, "usage: palette parse <expr>...")
		return 2
	}

	code := 0
	for _, arg := range args {
		expr := rep.cfg.ResolveAlias(arg)
		col, err := css.Parse(expr)
		if err != nil {
			fmt.Fprintf(rep.errOut, "parse %q: %v\n", arg, err)
			code = 1
			continue
		}
		fmt.Fprintln(rep.out, rep.render(col))
	}
	return code
}

// ///////////////////////////////////////////////
// file
// ///////////////////////////////////////////////

// cmdFile reads palette files given as paths, globs, or http(s) URLs and
// parses every non-blank line. Processing continues past failures; the exit
// code is 1 if any line or source failed.
func cmdFile(rep *reporter, dp DataPaths, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(rep.errOut, "usage: palette file <path|glob|url>...")
		return 2
	}

	sources, err := source.Expand(args)
	if err != nil {
		fmt.Fprintf(rep.errOut, "error: %v\n", err)
		return 1
	}

	cacheDir := ""
	if rep.cfg.HTTP.Cache {
		cacheDir = dp.RemoteCache()
	}
	fetcher := source.NewFetcher(source.Options{
		Timeout:  time.Duration(rep.cfg.HTTP.TimeoutSeconds) * time.Second,
		RetryMax: rep.cfg.HTTP.RetryMax,
		CacheDir: cacheDir,
	})

	failed := 0
	for _, src := range sources {
		data, readErr := fetcher.Read(src)
		if data == nil {
			fmt.Fprintf(rep.errOut, "error: %v\n", readErr)
			slog.Error("palette source unreadable", "source", src, "error", readErr)
			failed++
			continue
		}
		if readErr != nil {
			// Cache fallback or a non-fatal fetch warning; content is usable.
			fmt.Fprintf(rep.errOut, "warning: %v\n", readErr)
			slog.Warn("palette fetch degraded", "source", src, "error", readErr)
		}
		failed += rep.reportLines(src, data)
	}

	if failed > 0 {
		return 1
	}
	return 0
}

// ///////////////////////////////////////////////
// watch
// ///////////////////////////////////////////////

// cmdWatch re-parses a single local palette file whenever it changes, until
// an interrupt or terminate signal arrives. A PID-file lock enforces one
// watch instance per data directory.
func cmdWatch(rep *reporter, dp DataPaths, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(rep.errOut, "usage: palette watch <path>")
		return 2
	}
	path := args[0]
	if source.IsURL(path) {
		fmt.Fprintln(rep.errOut, "error: watch requires a local file path")
		return 2
	}

	if alive, pid := checkStalePID(dp); alive {
		fmt.Fprintf(rep.errOut, "watch already running (pid %d)\n", pid)
		return 1
	}

	token := pidToken()
	pidFile, err := writePID(dp, token)
	if err != nil {
		slog.Error("failed to write PID file", "error", err)
		fmt.Fprintf(rep.errOut, "error: %v\n", err)
		return 1
	}
	defer removePID(dp, token, pidFile)

	pollInterval := time.Duration(rep.cfg.Watch.PollIntervalSeconds) * time.Second
	debounce := time.Duration(rep.cfg.Watch.DebounceMS) * time.Millisecond
	watcher, err := source.NewWatcher(path, pollInterval, debounce)
	if err != nil {
		slog.Error("failed to create watcher", "error", err)
		fmt.Fprintf(rep.errOut, "error: %v\n", err)
		return 1
	}
	defer watcher.Close()

	if watcher.Polling() {
		slog.Info("using polling mode for file watching")
	}

	ver := resolveVersion()
	slog.Info("watch started", "path", path, "version", ver)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("update check panic", "error", r)
			}
		}()
		update.Check(ver)
	}()

	watchFile(rep, path)

	sigCh := signalChannel()
	for {
		select {
		case <-sigCh:
			slog.Info("received shutdown signal")
			return 0

		case <-watcher.Events():
			watchFile(rep, path)
		}
	}
}

// watchFile parses one pass over the watched file. Read errors are reported
// but do not stop the watch; the file may be mid-rewrite by an editor.
func watchFile(rep *reporter, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(rep.errOut, "error: read %s: %v\n", path, err)
		slog.Warn("watched file unreadable", "path", path, "error", err)
		return
	}
	if failed := rep.reportLines(path, data); failed > 0 {
		slog.Debug("watched file has parse failures", "path", path, "failed", failed)
	}
}

// ///////////////////////////////////////////////
// about
// ///////////////////////////////////////////////

// cmdAbout prints the binary name, version, module path, and source repo.
func cmdAbout(w io.Writer) int {
	fmt.Fprintf(w, "palette %s\n", resolveVersion())
	fmt.Fprintln(w, "CSS color expression parser (hex, rgb(), hsl(), named colors)")
	fmt.Fprintln(w, "module: tools.zach/dev/palette")
	fmt.Fprintf(w, "source: github.com/%s/%s\n", remote.Owner(), remote.Repo())
	return 0
}
