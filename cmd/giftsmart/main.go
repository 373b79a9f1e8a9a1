package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/dmathew/go-giftsmart/internal/config"
	"github.com/dmathew/go-giftsmart/internal/contacts"
	"github.com/dmathew/go-giftsmart/internal/feed"
	"github.com/dmathew/go-giftsmart/internal/gifts"
	"github.com/dmathew/go-giftsmart/internal/greet"
	"github.com/dmathew/go-giftsmart/internal/notify"
	"github.com/dmathew/go-giftsmart/internal/recur"
	"github.com/dmathew/go-giftsmart/internal/server"
	"github.com/dmathew/go-giftsmart/internal/store"
)

// main is the application entry point.
// It delegates execution to runMain to ensure that deferred function calls
// (like closing log files) are executed before the process terminates.
// os.Exit() does not run defers, so we must return an integer code first.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
// Returns config.ExitCodeSuccess on success, config.ExitCodeError on failure.
func runMain() int {
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)
	configPath := flag.String(config.FlagConfig, "", config.FlagDescConfig)
	importMode := flag.Bool(config.FlagImport, false, config.FlagDescImport)
	ecardID := flag.String(config.FlagECard, "", config.FlagDescECard)
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	// Structured logging is configured early to capture startup issues.
	logCloser := setupLogging(*debugMode)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	// Root context that cancels on SIGINT (Ctrl+C) or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	if err := run(ctx, *configPath, *importMode, *ecardID); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run wires the store, feed server, and reminder scheduler together and
// blocks until the context is cancelled. Import and e-card modes run their
// single pass instead and exit.
func run(ctx context.Context, configPath string, importMode bool, ecardID string) error {
	settings, err := loadSettings(configPath)
	if err != nil {
		return err
	}

	dataPath := settings.DataFile
	if dataPath == "" {
		if dataPath, err = config.DefaultDataPath(); err != nil {
			return err
		}
	}

	st := store.New(store.NewFileStorage(dataPath))
	translator := greet.NewTranslator(settings.Language)

	if importMode {
		return runImport(ctx, settings, st)
	}
	if ecardID != "" {
		return runECard(ctx, st, translator, gifts.NewService(recur.RealClock{}), ecardID, os.Stdout)
	}

	clock := recur.RealClock{}

	builder := &feed.Builder{
		Clock:           clock,
		ReminderTrigger: settings.ReminderTrigger,
		FormatSummary: func(name string) string {
			return translator.MsgData(config.TKeyEvtSummary, map[string]interface{}{"Name": name})
		},
	}

	srv := server.NewFeedServer(settings.ServerPort)

	publish := func() {
		data, _, err := builder.Render(st.Entries())
		if err != nil {
			slog.Error(config.ErrICalEncode,
				config.LogKeyComponent, config.CompMain,
				config.LogKeyError, err,
			)
			return
		}
		srv.Publish(data)
	}
	st.OnChange = publish
	publish()

	scheduler := &notify.Scheduler{
		Store:    st,
		Clock:    clock,
		Notifier: notify.LogNotifier{},
		FormatTitle: func() string {
			return translator.Msg(config.TKeyNotifTitle)
		},
		FormatBody: func(names string) string {
			return translator.MsgData(config.TKeyNotifBody, map[string]interface{}{"Names": names})
		},
	}
	if err := scheduler.Start(settings.ReminderCron); err != nil {
		return err
	}
	defer scheduler.Stop()

	return srv.Start(ctx)
}

// runImport performs a one-shot import from the configured contact source.
func runImport(ctx context.Context, settings *config.Settings, st *store.Store) error {
	cfg := contacts.SourceConfig{
		Mode:      settings.SourceMode,
		LocalPath: settings.LocalPath,
		WebURL:    settings.WebURL,
		WebUser:   settings.WebUser,
	}
	if cfg.Mode == config.SourceModeWeb {
		cfg.WebPass = contacts.Password(settings.WebUser)
	}

	importer := &contacts.Importer{Fetcher: contacts.NewHTTPFetcher()}
	candidates, err := importer.Run(ctx, cfg)
	if err != nil {
		return err
	}

	for _, c := range candidates {
		st.Add(c.Entry())
	}

	slog.Info(config.MsgImportSuccess,
		config.LogKeyComponent, config.CompMain,
		config.LogKeyCount, len(candidates),
	)
	return nil
}

// loadSettings resolves the settings file location and reads it.
func loadSettings(configPath string) (*config.Settings, error) {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.DefaultSettingsPath(); err != nil {
			return nil, err
		}
	}
	return config.LoadSettings(path)
}

// printVersion outputs the build information to stdout and exits.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger.
func setupLogging(debugMode bool) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	writers = append(writers, os.Stdout)

	// Attempt to set up a file writer in the user's cache directory.
	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
