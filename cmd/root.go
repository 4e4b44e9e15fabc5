// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/YakDriver/hdrcheck/internal/config"
	"github.com/YakDriver/hdrcheck/internal/log"
	"github.com/YakDriver/hdrcheck/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:     "hdrcheck",
	Short:   "Verify license banners at the top of header files",
	Version: version.Version(),
	Long: `hdrcheck builds the expected license banner from a title and a license file,
then reports every header file under the include tree whose first lines differ from it.

Run without a subcommand it behaves like "hdrcheck check".`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
	RunE:              runCheck,
}

// Execute runs the root command and exits with 1 for strict-mode violations and 2
// for configuration, resource or read errors.
func Execute() {
	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	if err == nil {
		return
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(ExitCodeError)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is .hdrcheck.yaml)")
	flags.String("title", config.DefaultTitle, "title line placed above the license text")
	flags.StringP("license", "l", config.DefaultLicenseFile, "license file the banner is built from")
	flags.StringP("include", "i", config.DefaultIncludeDir, "include directory to scan")
	flags.String("pattern", config.DefaultPattern, "glob selecting header files below the include directory")
	flags.String("label", config.DefaultLabel, "label printed before each mismatching path")
	flags.Bool("strict", false, "exit with status 1 when any header is wrong")
	flags.Bool("diff", false, "print a unified diff for each wrong header")
	flags.Bool("sort", false, "report files in lexical order")
	flags.Bool("git-tracked", false, "only check files tracked by git")
	flags.Bool("progress", true, "show a progress bar when stderr is a terminal")
	flags.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")

	rootCmd.SetVersionTemplate("v{{.Version}}\n")

	// Bind flags to viper
	for key, flag := range map[string]string{
		"banner.title":        "title",
		"banner.license_file": "license",
		"files.include_dir":   "include",
		"files.pattern":       "pattern",
		"files.sort":          "sort",
		"files.git_tracked":   "git-tracked",
		"report.label":        "label",
		"report.strict":       "strict",
		"report.diff":         "diff",
		"report.progress":     "progress",
		"log_level":           "log-level",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
}

func initConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded

	l, err := log.NewZapLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger = l

	return nil
}
