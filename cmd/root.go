package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/gfycat-go/config"
	"github.com/s0up4200/gfycat-go/gfycat"
)

var (
	cfgFile  string
	credFile string
	cfg      *config.Config
	logger   zerolog.Logger
	client   *gfycat.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gfycat",
	Short: "A command line client for the gfycat API",
	Long: `gfycat authenticates against the gfycat API with OAuth2 client credentials
and lets you check usernames, manage account email verification and look up
users and gfycats.

Credentials are read from a JSON file of the form {"id": "...", "secret": "..."}.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./gfycat.yaml)")
	rootCmd.PersistentFlags().StringVar(&credFile, "credentials", "", "credentials file (overrides credentials_file)")
}

// initializeLogger loads the configuration and sets up logging
func initializeLogger(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)
	return nil
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	if err := initializeLogger(cmd, args); err != nil {
		return err
	}

	path := cfg.CredentialsFile
	if credFile != "" {
		path = credFile
	}

	creds, err := gfycat.LoadCredentials(path)
	if err != nil {
		return fmt.Errorf("failed to load credentials from %s: %w", path, err)
	}

	opts := []gfycat.Option{
		gfycat.WithBaseURL(cfg.API.BaseURL),
		gfycat.WithTimeout(cfg.API.Timeout),
		gfycat.WithConcurrency(cfg.API.Concurrency),
	}
	if cfg.API.UserAgent != "" {
		opts = append(opts, gfycat.WithUserAgent(cfg.API.UserAgent))
	} else {
		opts = append(opts, gfycat.WithUserAgent("gfycat-go/"+version))
	}

	client, err = gfycat.NewClient(cmd.Context(), creds, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create gfycat client: %w", err)
	}

	logger.Debug().
		Time("expires_at", client.Token().ExpiresAt()).
		Msg("Authenticated with gfycat")

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, colored only when writing to a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func boolToStatus(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
