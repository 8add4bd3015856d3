package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/calder-martin/picosh/core/config"
	"github.com/calder-martin/picosh/core/shell"
	"github.com/calder-martin/picosh/core/vos"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	cfgPath     string
	commandLine string
)

// rootCmd starts the interactive interpreter when called without flags.
var rootCmd = &cobra.Command{
	Use:   "picosh",
	Short: "A small POSIX-style command interpreter",
	Long: `picosh reads one command per line, resolves quoting and escaping,
and routes output to the terminal or a redirection target.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		virtualOS := vos.NewSysOS()

		configuration, err := loadConfig(virtualOS)
		if err != nil {
			return err
		}

		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: false,
			Prefix:          "picosh",
		})
		level, err := log.ParseLevel(configuration.LogLevel)
		if err != nil {
			return fmt.Errorf("bad log level %q: %w", configuration.LogLevel, err)
		}
		logger.SetLevel(level)

		sh, err := shell.NewShell(virtualOS, configuration, logger)
		if err != nil {
			return err
		}

		var code int
		if commandLine != "" {
			code = sh.EvalOnce(commandLine)
		} else {
			code = sh.Run()
		}

		sh.Close()
		if code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

func loadConfig(virtualOS vos.VOS) (*config.Configuration, error) {
	path := cfgPath
	if path == "" {
		home, err := virtualOS.UserHomeDir()
		if err != nil {
			return config.Default(), nil
		}
		path = filepath.Join(home, ".picosh", config.ConfigurationName)
	}
	return config.Load(virtualOS.FS(), path)
}

// Execute runs the root command. It is called once by main.main().
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to "+config.ConfigurationName)
	rootCmd.Flags().StringVarP(&commandLine, "command", "c", "", "evaluate a single command and exit")
}
