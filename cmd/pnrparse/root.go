package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pnr-parser-service/pkg/logger"
	"pnr-parser-service/pkg/pnr"
)

var (
	strategyArg string
	prettyFlag  bool
	debugFlag   bool
)

// output mirrors the success body of POST /parse_pnr
type output struct {
	ParsedPNR      pnr.ParsedPNR `json:"parsed_pnr"`
	CleanedPNRData string        `json:"cleaned_pnr_data"`
}

var rootCmd = &cobra.Command{
	Use:   "pnrparse [file]",
	Short: "Parse airline PNR text into JSON",
	Long: "Reads a PNR block from a file, or from stdin when the file is omitted or \"-\",\n" +
		"and prints the record locator, passenger name and itinerary as JSON.",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "-"
		if len(args) == 1 {
			path = args[0]
		}
		raw, err := readInput(cmd.InOrStdin(), path)
		if err != nil {
			return err
		}

		segments, err := pnr.StrategyByName(strategyArg)
		if err != nil {
			return err
		}

		level := "warn"
		if debugFlag {
			level = "debug"
		}
		log := logger.NewLoggerWithLevel(level)
		defer log.Sync()

		res, err := pnr.NewParser(segments, log).Parse(raw)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		if prettyFlag {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(output{ParsedPNR: res.PNR, CleanedPNRData: res.Cleaned})
	},
}

func readInput(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&strategyArg, "strategy", "s", pnr.DefaultStrategy,
		fmt.Sprintf("Itinerary line strategy (one of %q)", pnr.StrategyNames()))
	rootCmd.Flags().BoolVarP(&prettyFlag, "pretty", "p", false, "Indent JSON output")
	rootCmd.Flags().BoolVarP(&debugFlag, "debug", "v", false, "Enable debug logs")
}
