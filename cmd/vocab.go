package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/census-geocoder/internal/vocab"
)

var vocabYAML bool

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "List the geocoder's reference vocabulary",
}

var vocabBenchmarksCmd = &cobra.Command{
	Use:   "benchmarks",
	Short: "List supported benchmark names",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := vocab.Benchmarks()
		if vocabYAML {
			return printYAML(cmd, map[string][]string{"benchmarks": names})
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var vocabVintagesCmd = &cobra.Command{
	Use:   "vintages [benchmark]",
	Short: "List the vintages available within a benchmark",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		benchmark := "CURRENT"
		if len(args) == 1 {
			benchmark = args[0]
		}
		names, err := vocab.Vintages(benchmark)
		if err != nil {
			return err
		}
		if vocabYAML {
			return printYAML(cmd, map[string]any{
				"benchmark": benchmark,
				"vintages":  names,
			})
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var vocabLayersCmd = &cobra.Command{
	Use:   "layers",
	Short: "List the canonical layer names the service recognizes",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := vocab.Layers()
		if vocabYAML {
			return printYAML(cmd, map[string][]string{"layers": names})
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func printYAML(cmd *cobra.Command, v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}

func init() {
	vocabCmd.PersistentFlags().BoolVar(&vocabYAML, "yaml", false, "emit YAML instead of plain text")
	vocabCmd.AddCommand(vocabBenchmarksCmd)
	vocabCmd.AddCommand(vocabVintagesCmd)
	vocabCmd.AddCommand(vocabLayersCmd)
	rootCmd.AddCommand(vocabCmd)
}
