// calcsuite — a catalog of calculators behind one CLI and HTTP API.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/calcsuite/calcsuite/api"
	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/internal/calculators"
	"github.com/calcsuite/calcsuite/internal/config"
	"github.com/calcsuite/calcsuite/internal/export"
	"github.com/calcsuite/calcsuite/internal/logging"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "calcsuite",
	Short: "calcsuite — a catalog of finance, health, engineering, conversion, and sports calculators",
	Long: `calcsuite bundles dozens of everyday calculators behind one binary:
loan amortization, BMI, beam deflection, unit conversion, cricket run
rates, and more. Every calculator declares its input schema, computes
deterministically, and classifies the outcome against published
thresholds. Run one from the command line or start the API server with
the embedded web UI.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			cfg.Logging.Level = level
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		return calculators.RegisterAll()
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(serveCmd)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("calcsuite %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- List Command ---

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available calculators",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		reg := calc.Global()
		infos := reg.List(calc.Category(category))
		if len(infos) == 0 {
			return fmt.Errorf("no calculators in category %q", category)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		last := calc.Category("")
		for _, info := range infos {
			if info.Category != last {
				if last != "" {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "%s\n", strings.ToUpper(string(info.Category)))
				last = info.Category
			}
			fmt.Fprintf(w, "  %s\t%s\n", info.Slug, info.Name)
		}
		return w.Flush()
	},
}

func init() {
	listCmd.Flags().String("category", "", "filter by category (finance, health, engineering, convert, sports)")
}

// --- Describe Command ---

var describeCmd = &cobra.Command{
	Use:   "describe [slug]",
	Short: "Show a calculator's inputs and guide",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := calc.Global().Get(args[0])
		if err != nil {
			return err
		}

		info := c.Info()
		fmt.Printf("%s (%s)\n", info.Name, info.Slug)
		fmt.Printf("  %s\n\n", info.Description)

		fmt.Println("Inputs:")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, f := range c.Schema().Fields {
			req := "optional"
			if f.Required {
				req = "required"
			}
			unit := f.Unit
			if len(f.Enum) > 0 {
				unit = strings.Join(f.Enum, "|")
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", f.Name, f.Type, unit, req)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		guide := c.Guide()
		fmt.Printf("\n%s\n", guide.Summary)
		if len(guide.Related) > 0 {
			fmt.Printf("\nRelated: %s\n", strings.Join(guide.Related, ", "))
		}
		return nil
	},
}

// --- Calc Command ---

var calcCmd = &cobra.Command{
	Use:   "calc [slug]",
	Short: "Run a calculator",
	Long: `Run a calculator with inputs given as --set name=value flags.

Examples:
  calcsuite calc loan --set principal=250000 --set annual_rate=6.5 --set term_months=360
  calcsuite calc bmi --set height_cm=175 --set weight_kg=70
  calcsuite calc length --set value=26.2 --set from=mi --set to=km`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := calc.Global().Get(args[0])
		if err != nil {
			return err
		}

		sets, _ := cmd.Flags().GetStringArray("set")
		inputs, err := parseInputs(sets)
		if err != nil {
			return err
		}

		result, err := calc.Evaluate(cmd.Context(), c, inputs)
		if err != nil {
			if verr, ok := calc.AsValidationError(err); ok {
				for _, fe := range verr.Fields {
					fmt.Fprintf(os.Stderr, "  %s: %s\n", fe.Field, fe.Message)
				}
				return fmt.Errorf("invalid inputs")
			}
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		printResult(c.Info(), result)
		return nil
	},
}

func init() {
	calcCmd.Flags().StringArray("set", nil, "input as name=value (repeatable)")
	calcCmd.Flags().Bool("json", false, "print the raw result as JSON")
}

// --- Export Command ---

var exportCmd = &cobra.Command{
	Use:   "export [slug]",
	Short: "Run a calculator and write the result as an XLSX workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := calc.Global().Get(args[0])
		if err != nil {
			return err
		}

		sets, _ := cmd.Flags().GetStringArray("set")
		inputs, err := parseInputs(sets)
		if err != nil {
			return err
		}

		result, err := calc.Evaluate(cmd.Context(), c, inputs)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			out = args[0] + ".xlsx"
		}

		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := export.Workbook(f, c.Info(), inputs, result); err != nil {
			return err
		}
		fmt.Printf("📄 Wrote %s\n", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringArray("set", nil, "input as name=value (repeatable)")
	exportCmd.Flags().StringP("output", "o", "", "output file path (default: <slug>.xlsx)")
}

// --- Serve Command (API Server) ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server with the embedded web UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := logging.New(cfg.Logging)
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		srv, err := api.NewServer(cfg, calc.Global(), logger)
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		srv.SetVersion(version)

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			srv.SetServeUI(false)
		}

		fmt.Printf("🌐 calcsuite API listening on http://%s\n", cfg.Addr())
		return srv.ListenAndServe(cfg.Addr())
	},
}

func init() {
	serveCmd.Flags().Bool("no-ui", false, "serve the API only, without the embedded web UI")
}

// --- Helpers ---

// parseInputs turns repeated name=value flags into a raw input map.
// Values parse as bool, then number, then fall through to string so
// enum fields work without quoting.
func parseInputs(sets []string) (map[string]any, error) {
	inputs := make(map[string]any, len(sets))
	for _, s := range sets {
		name, value, ok := strings.Cut(s, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set %q, expected name=value", s)
		}
		switch value {
		case "true":
			inputs[name] = true
		case "false":
			inputs[name] = false
		default:
			if n, err := strconv.ParseFloat(value, 64); err == nil {
				inputs[name] = n
			} else {
				inputs[name] = value
			}
		}
	}
	return inputs, nil
}

func printResult(info calc.Info, result *calc.Result) {
	fmt.Printf("🧮 %s\n\n", info.Name)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, v := range result.Values {
		fmt.Fprintf(w, "  %s\t%s\n", v.Label, formatValue(v.Value, v.Unit))
	}
	w.Flush() //nolint:errcheck

	for _, tier := range result.Tiers {
		fmt.Printf("\n  ▸ %s", tier.Label)
		if tier.Advice != "" {
			fmt.Printf(" — %s", tier.Advice)
		}
		fmt.Println()
	}

	if result.Table != nil {
		fmt.Printf("\n%s\n", result.Table.Title)
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "  %s\n", strings.Join(result.Table.Columns, "\t"))
		for _, row := range result.Table.Rows {
			fmt.Fprintf(tw, "  %s\n", strings.Join(row, "\t"))
		}
		tw.Flush() //nolint:errcheck
	}

	for _, note := range result.Notes {
		fmt.Printf("\n  %s\n", note)
	}
}

func formatValue(v float64, unit string) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if unit != "" {
		s += " " + unit
	}
	return s
}
