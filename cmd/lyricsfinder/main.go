// Package main provides the lyricsfinder CLI application entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"lyricsfinder/internal/core"
	httpserver "lyricsfinder/internal/http"
	"lyricsfinder/internal/lyrics"
)

const (
	defaultServerHost = "0.0.0.0"
	envPrefix         = "LYRICSFINDER"
)

var (
	cfgFile string
	config  *core.Config
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lyricsfinder",
	Short: "lyricsfinder - song lyrics over HTTP",
	Long: `lyricsfinder is an HTTP service that returns song lyrics for a free-text query
("Artist - Title" or a bare title) or a YouTube/Spotify track link.`,
	RunE: runLyricsFinder,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := core.DefaultConfig()
	flags := rootCmd.PersistentFlags()

	flags.StringVar(&cfgFile, "config", "", "config file (default is .env)")
	flags.String("log-level", defaults.Log.Level, "log level (debug, info, warn, error)")
	flags.String("server-host", defaultServerHost, "HTTP server host")
	flags.Int("server-port", defaults.Server.Port, "HTTP server port (PORT is honoured too)")
	flags.Duration("server-read-timeout", defaults.Server.ReadTimeout, "HTTP server read timeout")
	flags.Duration("server-write-timeout", defaults.Server.WriteTimeout, "HTTP server write timeout")
	flags.String("genius-api-key", "", "Genius API access token (song existence check is skipped when empty)")
	flags.String("genius-base-url", defaults.Genius.BaseURL, "Genius API base URL")
	flags.String("lyrics-ovh-base-url", defaults.LyricsOVH.BaseURL, "lyrics.ovh API base URL")
	flags.Bool("lrclib-enabled", defaults.LRCLib.Enabled, "Use lrclib.net when lyrics.ovh has no lyrics")
	flags.String("lrclib-base-url", defaults.LRCLib.BaseURL, "lrclib.net API base URL")
	flags.String("youtube-oembed-url", "", "YouTube oEmbed endpoint override")
	flags.String("spotify-client-id", "", "Spotify client ID (enables the Web API for Spotify links)")
	flags.String("spotify-client-secret", "", "Spotify client secret")
	flags.String("spotify-oembed-url", "", "Spotify oEmbed endpoint override")
	flags.String("spotify-api-base-url", "", "Spotify Web API base URL override")
	flags.Duration("lookup-timeout", defaults.Lookup.Timeout, "Timeout of each outbound provider request")
	flags.Bool("generate-env-example", false, "Generate .env.example file from current configuration and exit")

	if err := viper.BindPFlags(flags); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bind flags: %v\n", err)
		os.Exit(1)
	}
}

func initConfig() {
	// Load .env file explicitly using gotenv
	envFile := ".env"
	if cfgFile != "" {
		envFile = cfgFile
	}

	if err := gotenv.Load(envFile); err != nil {
		// Don't exit if .env file doesn't exist, just warn
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		}
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Hosting platforms and older deployments set these without the prefix.
	_ = viper.BindEnv("server-port", flagToEnvVar("server-port"), "PORT")
	_ = viper.BindEnv("genius-api-key", flagToEnvVar("genius-api-key"), "GENIUS_API_KEY")

	config = buildConfig()
	logger = buildLogger(config.Log.Level)
}

func buildConfig() *core.Config {
	cfg := core.DefaultConfig()

	configureServer(cfg)
	configureProviders(cfg)
	configureSpotify(cfg)

	return cfg
}

func configureServer(cfg *core.Config) {
	cfg.Server.Host = viper.GetString("server-host")
	if cfg.Server.Host == "" {
		cfg.Server.Host = defaultServerHost
	}
	cfg.Server.Port = viper.GetInt("server-port")
	cfg.Server.ReadTimeout = viper.GetDuration("server-read-timeout")
	cfg.Server.WriteTimeout = viper.GetDuration("server-write-timeout")
	cfg.Log.Level = viper.GetString("log-level")
}

func configureProviders(cfg *core.Config) {
	cfg.Genius.APIKey = viper.GetString("genius-api-key")
	cfg.Genius.BaseURL = viper.GetString("genius-base-url")
	cfg.LyricsOVH.BaseURL = viper.GetString("lyrics-ovh-base-url")
	cfg.LRCLib.Enabled = viper.GetBool("lrclib-enabled")
	cfg.LRCLib.BaseURL = viper.GetString("lrclib-base-url")
	cfg.YouTube.OEmbedURL = viper.GetString("youtube-oembed-url")
	cfg.Lookup.Timeout = viper.GetDuration("lookup-timeout")
}

func configureSpotify(cfg *core.Config) {
	cfg.Spotify.ClientID = viper.GetString("spotify-client-id")
	cfg.Spotify.ClientSecret = viper.GetString("spotify-client-secret")
	cfg.Spotify.OEmbedURL = viper.GetString("spotify-oembed-url")
	cfg.Spotify.APIBaseURL = viper.GetString("spotify-api-base-url")
}

func buildLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch strings.ToLower(level) {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	builtLogger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("Failed to build logger: %v", err))
	}

	return builtLogger
}

func runLyricsFinder(cmd *cobra.Command, _ []string) error {
	if viper.GetBool("generate-env-example") {
		return generateEnvExample(cmd)
	}

	defer func() {
		_ = logger.Sync()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Info("Starting lyricsfinder",
		zap.String("version", "1.0.0"),
		zap.Bool("genius_check", config.Genius.APIKey != ""),
		zap.Bool("lrclib_fallback", config.LRCLib.Enabled),
		zap.Bool("spotify_web_api", config.Spotify.HasCredentials()),
		zap.Duration("lookup_timeout", config.Lookup.Timeout))

	if err := config.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	httpServer := initializeServer(ctx)
	return runServices(ctx, httpServer)
}

func initializeServer(ctx context.Context) *httpserver.Server {
	metrics := httpserver.NewMetrics()
	finder := lyrics.NewFinder(ctx, config, logger.Named("lyrics"), metrics)
	return httpserver.NewServer(&config.Server, finder, metrics, logger.Named("http"))
}

func runServices(ctx context.Context, httpServer *httpserver.Server) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return httpServer.Start(gCtx)
	})

	logger.Info("lyricsfinder started successfully",
		zap.String("http_addr", fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)))

	if err := g.Wait(); err != nil {
		logger.Error("lyricsfinder stopped with error", zap.Error(err))
		return err
	}

	logger.Info("lyricsfinder stopped gracefully")
	return nil
}
