package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <datei>",
	Short: "Wertet eine mEX-Datei aus",
	Long: `Liest eine Datei mit mEX-Quelltext, wertet sie aus und gibt den
Wert der letzten Anweisung aus.

Beispiel:
  mex run beispiel.mex`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		printError("Datei nicht lesbar", err)
		return err
	}

	engine := newEngine()

	result, err := engine.Run(string(source))
	if result != nil && result.HasErrors() {
		fmt.Fprintf(os.Stderr, "%s: %d Syntaxfehler\n", args[0], len(result.ParseErrors))
		for _, msg := range result.ParseErrors {
			fmt.Fprintf(os.Stderr, "\t%s\n", msg)
		}
		return fmt.Errorf("Auswertung abgebrochen")
	}
	if err != nil {
		printError("Auswertung fehlgeschlagen", err)
		return err
	}

	if rendering := result.Rendering(); rendering != "" {
		fmt.Println(rendering)
	}

	return nil
}
