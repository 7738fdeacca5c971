package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/llehouerou/cuepad/internal/catalog"
	"github.com/llehouerou/cuepad/internal/config"
	"github.com/llehouerou/cuepad/internal/dispatch"
	"github.com/llehouerou/cuepad/internal/errmsg"
	"github.com/llehouerou/cuepad/internal/playback"
	"github.com/llehouerou/cuepad/internal/player"
	"github.com/llehouerou/cuepad/internal/random"
	"github.com/llehouerou/cuepad/internal/songfile"
	"github.com/llehouerou/cuepad/internal/ui"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cuepad",
		Short:         "Trigger preconfigured song samples from keyboard and mouse",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	cmd.Flags().String("songs", "", "path to the song definition file (TOML)")
	cmd.Flags().String("music-dir", "", "directory containing the music files")
	cmd.Flags().String("log-file", "", "write logs to this file")
	cmd.Flags().Bool("debug", false, "enable debug logging")
	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpLoadConfig, err)
	}
	applyFlags(cmd, cfg)

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	log.Info().
		Str("songs_file", cfg.SongsFile).
		Str("music_dir", cfg.MusicDir).
		Msg("starting cuepad")

	records, err := songfile.Load(cfg.SongsFile)
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpLoadSongs, err)
	}

	cat, issues, err := catalog.Load(records, catalog.Options{MusicDir: cfg.MusicDir})
	for _, issue := range issues {
		log.Warn().
			Str("record", issue.Record).
			Str("field", issue.Field).
			Bool("skipped", issue.Skipped).
			Msg(issue.Reason)
	}
	if err != nil {
		return fmt.Errorf("%s: %w (%d records rejected)", errmsg.OpLoadCatalog, err, len(issues))
	}
	log.Info().Int("songs", cat.Len()).Int("issues", len(issues)).Msg("catalog loaded")

	out := player.New()
	controller := playback.New(out)
	dispatcher := dispatch.New(cat, random.New(), controller)

	model := ui.New(dispatcher, cat, controller)
	if len(issues) > 0 {
		model = model.WithStatus(fmt.Sprintf(
			"loaded %d songs, %d records had problems (see log)", cat.Len(), len(issues)))
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	out.Stop()
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("songs") {
		cfg.SongsFile, _ = cmd.Flags().GetString("songs")
	}
	if cmd.Flags().Changed("music-dir") {
		cfg.MusicDir, _ = cmd.Flags().GetString("music-dir")
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile, _ = cmd.Flags().GetString("log-file")
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug, _ = cmd.Flags().GetBool("debug")
	}
}

// setupLogging sends zerolog output to the configured file. The terminal
// belongs to the TUI, so without a log file logging is disabled entirely.
func setupLogging(cfg *config.Config) (func(), error) {
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.LogFile == "" {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		return func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(f).With().Timestamp().Logger()

	return func() { f.Close() }, nil
}
