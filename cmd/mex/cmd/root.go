package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mexconfig "github.com/msto63/mEX/core/config"
	mexlog "github.com/msto63/mEX/core/log"
	"github.com/msto63/mEX/lang"
)

var (
	cfgFile string
	verbose bool
	cfg     *mexconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "mex",
	Short: "meinEXPRESSIONSWERK - Ausdruckssprache für den Einzelarbeitsplatz",
	Long: `meinEXPRESSIONSWERK ist eine kleine Ausdruckssprache mit
Ganzzahlen, Wahrheitswerten und den üblichen Operatoren.

Befehle:
  repl     - Interaktive Auswertung (Zeilenmodus)
  tui      - Interaktive Auswertung (Terminal-Oberfläche)
  run      - Datei auswerten
  eval     - Einzelnen Ausdruck auswerten
  tokens   - Token-Strom anzeigen
  parse    - Syntaxbaum anzeigen`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

// initConfig loads the configuration file and configures the default logger
func initConfig() error {
	path := cfgFile
	if path == "" {
		path = "./configs/config.toml"
	}

	loaded, err := mexconfig.Load(path, mexconfig.LoadOptions{
		Defaults: map[string]interface{}{
			"log": map[string]interface{}{
				"level":  "info",
				"format": "text",
			},
			"engine": map[string]interface{}{
				"max_input_length": 65536,
			},
			"repl": map[string]interface{}{
				"prompt": ">> ",
			},
		},
	})
	if err != nil {
		return err
	}
	cfg = loaded

	logger := mexlog.GetDefault()

	levelName := cfg.GetString("log.level", "info")
	if verbose {
		levelName = "debug"
	}
	if level, err := mexlog.ParseLevel(levelName); err == nil {
		logger = logger.WithLevel(level)
	}

	if format, err := mexlog.ParseFormat(cfg.GetString("log.format", "text")); err == nil {
		logger = logger.WithFormat(format)
	}

	mexlog.SetDefault(logger)
	return nil
}

// newEngine builds an engine from the loaded configuration
func newEngine() *lang.Engine {
	return lang.NewEngine(lang.Options{
		MaxInputLength: cfg.GetInt("engine.max_input_length", 65536),
	})
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}
