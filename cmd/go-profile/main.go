package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/tartampluch/go-profile/internal/config"
	"github.com/tartampluch/go-profile/internal/datesel"
	"github.com/tartampluch/go-profile/internal/engine"
	"github.com/tartampluch/go-profile/internal/server"
	"github.com/tartampluch/go-profile/internal/ui"
)

func main() {
	os.Exit(runMain(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	version bool
	debug   bool

	// normalize collects every -normalize value in order. A non-nil slice
	// switches the binary into one-shot mode.
	normalize []string
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet(config.AppID, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.version, config.FlagVersion, false, config.FlagDescVersion)
	fs.BoolVar(&opts.debug, config.FlagDebug, false, config.FlagDescDebug)
	fs.Func(config.FlagNormalize, config.FlagDescNormalize, func(v string) error {
		opts.normalize = append(opts.normalize, v)
		return nil
	})

	return opts, fs.Parse(args)
}

// runMain dispatches the one-shot modes and otherwise runs the tray app.
// It returns the process exit code; deferred cleanup runs before main exits.
func runMain(args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return config.ExitCodeSuccess
	}
	if err != nil {
		return config.ExitCodeError
	}

	switch {
	case opts.version:
		fmt.Fprintf(stdout, config.MsgVersionOutput,
			config.AppName, config.Version, runtime.GOOS, runtime.GOARCH)
		return config.ExitCodeSuccess
	case opts.normalize != nil:
		normalizeDates(stdout, opts.normalize)
		return config.ExitCodeSuccess
	}

	if closer := setupLogging(opts.debug, stdout, stderr); closer != nil {
		defer closer.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logStartup()
	runTray(ctx)

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// normalizeDates prints the canonical form of each value, one per line.
func normalizeDates(w io.Writer, values []string) {
	for _, v := range values {
		fmt.Fprintln(w, datesel.Format(datesel.Parse(v)))
	}
}

// runTray builds the fyne application and blocks until it quits, either
// from the tray menu or because ctx was cancelled by a signal.
func runTray(ctx context.Context) {
	a := app.NewWithID(config.AppID)
	prefs := a.Preferences()
	prefs.SetString(config.PrefLastRun, config.Version)

	srv := server.NewFeedServer(
		prefs.StringWithFallback(config.PrefServerPort, config.DefaultPort),
		config.RouteCalendar, config.RouteCompleteness,
	)
	gui := ui.NewProfileApp(a, ctx, srv, engine.NewHTTPFetcher())

	context.AfterFunc(ctx, func() {
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
		a.Quit()
	})

	gui.Run()
}
