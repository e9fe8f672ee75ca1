// Command gentoml drives the generator from a terminal. Argument parsing
// and stdout plumbing live here, never inside the generator package
// itself — the library stays a pure function of a seed.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jorisvr/tomlrand"
	"github.com/jorisvr/tomlrand/decoder"
)

var (
	seed   int64
	asJSON bool

	rootCmd = &cobra.Command{
		Use:   "gentoml",
		Short: "Generate random valid TOML documents for parser testing",
	}
	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate one random TOML document and print it to stdout",
		RunE:  runGenerate,
	}
)

func init() {
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "random generator seed")
	generateCmd.Flags().BoolVar(&asJSON, "json", false, "also print the tagged-JSON model to stderr")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	document, model := tomlrand.Generate(uint64(seed))
	if _, err := os.Stdout.Write(document); err != nil {
		return err
	}

	if asJSON {
		tagged := decoder.Tagged(model)
		out, err := json.Marshal(tagged)
		if err != nil {
			return fmt.Errorf("marshaling model: %w", err)
		}
		fmt.Fprintln(os.Stderr, string(out))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
