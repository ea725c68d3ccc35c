package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Jaychaware/hrms-lite/internal"
	"github.com/Jaychaware/hrms-lite/internal/console"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile string
	apiURL     string
	verbose    bool
	clearData  bool
)

var rootCmd = &cobra.Command{
	Use:   "hrms",
	Short: "HRMS Lite",
	Long: `Employee records and daily attendance.

Run "hrms server" for the REST API; the other commands are a console client
for it, configured by HRMS_API_URL (default http://localhost:8000).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !console.IsReported(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func loadConfig(path string) (*internal.Config, error) {
	if os.Getenv("APP_ENV") == "production" || os.Getenv("DOCKER_ENV") == "true" {
		cfg := internal.LoadConfigFromEnv()
		if apiURL != "" {
			cfg.Client.APIURL = apiURL
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("error validating config from environment: %w", err)
		}
		return cfg, nil
	}

	v := viper.New()
	setDefaults(v, internal.DefaultConfig())

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(path)
		v.SetConfigName("config")
		v.SetConfigType("yml")
	}
	v.SetEnvPrefix("HRMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("client.api_url", "HRMS_API_URL", "HRMS_CLIENT_API_URL"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("database.source", "HRMS_DATABASE_SOURCE", "DATABASE_URL"); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg internal.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if apiURL != "" {
		cfg.Client.APIURL = apiURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// setDefaults registers every key so environment overrides apply even when
// no config file is present.
func setDefaults(v *viper.Viper, d *internal.Config) {
	defaults := map[string]interface{}{
		"http_server.port":                d.Server.Port,
		"http_server.base_url":            d.Server.BaseURL,
		"http_server.allowed_origins":     d.Server.AllowedOrigins,
		"http_server.validate_requests":   d.Server.ValidateRequests,
		"http_server.read_header_timeout": d.Server.ReadHeaderTimeout,
		"http_server.read_timeout":        d.Server.ReadTimeout,
		"http_server.idle_timeout":        d.Server.IdleTimeout,
		"http_server.write_timeout":       d.Server.WriteTimeout,
		"http_server.request_timeout":     d.Server.RequestTimeout,
		"database.driver":                 d.Database.Driver,
		"database.source":                 d.Database.Source,
		"database.auto_migrate":           d.Database.AutoMigrate,
		"database.max_open_conns":         d.Database.MaxOpenConns,
		"database.max_idle_conns":         d.Database.MaxIdleConns,
		"database.conn_max_lifetime":      d.Database.ConnMaxLifetime,
		"database.conn_max_idle_time":     d.Database.ConnMaxIdleTime,
		"observability.logging.level":     d.Observability.Logging.Level,
		"observability.logging.format":    d.Observability.Logging.Format,
		"client.api_url":                  d.Client.APIURL,
		"client.timeout":                  d.Client.Timeout,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default ./config.yml when present)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "HRMS API base URL, overrides HRMS_API_URL")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log client requests to stderr")
	rootCmd.PersistentFlags().Duration("timeout", 0, "client request timeout")

	seedCmd.Flags().BoolVar(&clearData, "clear", false, "Clear existing data before seeding")

	rootCmd.AddCommand(httpServerCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(consoleCommands()...)
}

func clientTimeout(cmd *cobra.Command, cfg *internal.Config) time.Duration {
	if d, err := cmd.Flags().GetDuration("timeout"); err == nil && d > 0 {
		return d
	}
	return cfg.Client.Timeout
}
