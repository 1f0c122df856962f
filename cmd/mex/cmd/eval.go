package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var evalShowAST bool

var evalCmd = &cobra.Command{
	Use:   "eval <ausdruck>",
	Short: "Wertet einen einzelnen Ausdruck aus",
	Long: `Wertet einen einzelnen mEX-Ausdruck aus und gibt das Ergebnis aus.

Beispiele:
  mex eval "5 * 2 + 10"
  mex eval "7 / 2 == 3"
  mex eval --ast "-a * b"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().BoolVar(&evalShowAST, "ast", false, "Syntaxbaum zusätzlich ausgeben")
}

func runEval(cmd *cobra.Command, args []string) error {
	source := strings.Join(args, " ")
	engine := newEngine()

	result, err := engine.Run(source)
	if result != nil && result.HasErrors() {
		for _, msg := range result.ParseErrors {
			fmt.Printf("\t%s\n", msg)
		}
		return fmt.Errorf("%d Syntaxfehler", len(result.ParseErrors))
	}
	if err != nil {
		printError("Auswertung fehlgeschlagen", err)
		return err
	}

	if evalShowAST {
		fmt.Println(renderTree(result))
	}

	if rendering := result.Rendering(); rendering != "" {
		fmt.Println(rendering)
	}

	return nil
}
