// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the yt-url CLI. It searches for a
// query and prints the watch URL of the first result.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/yt-url/internal/output"
	"github.com/pdiddy/yt-url/internal/search"
	"github.com/pdiddy/yt-url/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// newRootCmd builds the CLI. Configuration is read into v so that each
// invocation has its own settings.
func newRootCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yt-url <query>",
		Short: "Search YouTube and return the URL of the top result",
		Long: `yt-url fetches the YouTube results page for a query and prints the watch
URL of the first video it lists. The first video is the first identifier
found in the page text, which may be an ad or a related video rather than
the top organic result.`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, v, args[0])
		},
	}

	cmd.Flags().String("config", "", "config file (default: ./yt-url.yaml or ~/.config/yt-url/config.yaml)")
	cmd.Flags().BoolP("verbose", "v", false, "enable verbose output")
	cmd.Flags().StringP("format", "f", string(output.FormatText), "output format: text, json or yaml")
	cmd.Flags().Duration("timeout", types.DefaultTimeout, "HTTP request timeout")
	cmd.Flags().String("user-agent", types.DefaultUserAgent, "User-Agent header sent with the request")

	v.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))
	v.BindPFlag("format", cmd.Flags().Lookup("format"))
	v.BindPFlag("timeout", cmd.Flags().Lookup("timeout"))
	v.BindPFlag("user_agent", cmd.Flags().Lookup("user-agent"))
	v.SetDefault("search_url", types.DefaultSearchURL)
	v.SetDefault("video_url", types.DefaultVideoURL)

	return cmd
}

// initConfig loads .env, the config file and YT_URL_* environment variables.
// A missing default config file is not an error; a missing --config file is.
func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	// .env is optional and never overrides the real environment.
	_ = godotenv.Load()

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("yt-url")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "yt-url"))
		}
	}

	v.SetEnvPrefix("YT_URL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

func searchConfig(v *viper.Viper) types.SearchConfig {
	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   v.GetDuration("timeout"),
			UserAgent: v.GetString("user_agent"),
		},
		SearchURL: v.GetString("search_url"),
		VideoURL:  v.GetString("video_url"),
	}.WithDefaults()
}

func runSearch(cmd *cobra.Command, v *viper.Viper, query string) error {
	format, err := output.ParseFormat(v.GetString("format"))
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	var log io.Writer
	if v.GetBool("verbose") {
		info(stderr, "Searching for: %s", query)
		if used := v.ConfigFileUsed(); used != "" {
			info(stderr, "Using config file: %s", used)
		}
		log = stderr
	}

	searcher := search.NewSearcher(searchConfig(v), log)
	result, err := searcher.Search(cmd.Context(), query)
	if err != nil {
		return err
	}
	return output.Write(cmd.OutOrStdout(), format, result)
}

// run executes the CLI with args and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra reads os.Args when given nil.
		args = []string{}
	}
	cmd := newRootCmd(viper.New())
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		report(stderr, err)
		return 1
	}
	return 0
}

// interruptContext returns a context cancelled on SIGINT or SIGTERM.
func interruptContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func main() {
	ctx, stop := interruptContext()
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
