package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mimedefaults/internal/app"
	"mimedefaults/internal/types"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "MIMEDEFAULTS"

type RootConfig struct {
	ConfigFile string
	LogLevel   string
	Locale     string
	Format     string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg(errorMessage(err))
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:           "mimedefaults",
		Short:         "Inspect and change XDG default applications per content type",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	cmd.PersistentFlags().StringVar(&cfg.Locale, "locale", "", "Collation locale (defaults to LC_ALL, LC_COLLATE or LANG)")
	cmd.PersistentFlags().StringVar(&cfg.Format, "format", string(types.OutputFormatTable), "Output format: table, yaml or json")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("locale", cmd.PersistentFlags().Lookup("locale"))
	_ = viper.BindPFlag("format", cmd.PersistentFlags().Lookup("format"))
	viper.SetDefault("include_observed", true)

	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newShowCommand())
	cmd.AddCommand(newSetCommand())
	cmd.AddCommand(newAppsCommand())
	cmd.AddCommand(newPathsCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("mimedefaults")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/mimedefaults")
	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err == nil || errors.As(err, &notFound) {
		return nil
	}
	log.Debug().Err(err).Str("file", viper.ConfigFileUsed()).Msg("config file rejected")
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("failed to parse config file " + viper.ConfigFileUsed()).
		WithCause(err)
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.DefaultContextLogger = &log.Logger
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func newAppService() app.Service {
	return app.NewService(app.Config{
		Locale:          collationLocale(viper.GetString("locale")),
		IncludeObserved: viper.GetBool("include_observed"),
	})
}

// collationLocale picks the explicit locale or the POSIX collation
// environment in its usual precedence.
func collationLocale(explicit string) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	for _, key := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}

func exitCodeForError(err error) int {
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument:
		return 2
	case errbuilder.CodePermissionDenied:
		return 3
	case errbuilder.CodeNotFound, errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
