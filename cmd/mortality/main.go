package main

import (
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ensigniasec/mortality/internal/config"
	"github.com/ensigniasec/mortality/internal/report"
	"github.com/ensigniasec/mortality/internal/stats"
	"github.com/ensigniasec/mortality/internal/tui"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags. Everything except --json resolves through viper.
	v          = config.New()
	jsonOutput bool

	// Resolved in PersistentPreRun.
	opts  config.Options
	clock config.Clock

	rootCmd = &cobra.Command{
		Use:   "mortality",
		Short: "Real-time estimates of global mortality in your terminal.",
		Long: `mortality shows approximate live death counters for the current second, minute, hour, day, month and year, ` +
			`a ranking of countries by death rate, population dynamics and leading causes of death. ` +
			`All figures are derived from average global rates and are estimates only.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			resolveOptions()
		},
		Run: func(cmd *cobra.Command, args []string) {
			if opts.TUI {
				if err := tui.Run(cmd.Context(), opts, clock); err != nil {
					logrus.Fatalf("TUI mode failed: %v", err)
				}
				return
			}
			if err := report.Counters(os.Stdout, clock(), opts.Output); err != nil {
				logrus.Fatal(err)
			}
		},
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr to avoid polluting stdout, especially for --json output.
	logrus.SetOutput(os.Stderr)

	flags := rootCmd.PersistentFlags()
	flags.BoolP(config.KeyVerbose, "v", false, "Enable detailed logging output")
	flags.BoolVar(&jsonOutput, "json", false, "Alias of --output json")
	flags.StringP(config.KeyOutput, "o", config.TextOut, "Output format: text, json or yaml")
	flags.Bool(config.KeyTUI, false, "Enable interactive TUI mode with live counters")
	flags.StringP(config.KeyRegion, "r", stats.RegionAll,
		"Region filter for the country list: "+strings.Join(stats.Regions(), ", "))
	flags.StringP(config.KeyQuery, "q", "", "Case-insensitive country name search")
	flags.String(config.KeyTZ, "", "IANA time zone used for period boundaries (default: local)")
	flags.String(config.KeyConfig, "", "Config file (default: .mortality.yaml in the working or home directory)")
	if err := v.BindPFlags(flags); err != nil {
		logrus.Fatal(err)
	}

	rootCmd.AddCommand(countersCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(countriesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(aboutCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

// resolveOptions loads and validates the options and sets the log level.
func resolveOptions() {
	if jsonOutput {
		v.Set(config.KeyOutput, config.JSONOut)
	}

	var err error
	opts, err = config.Load(v)
	if err != nil {
		logrus.Fatal(err)
	}

	// Check for conflicting flags
	structured := opts.Output != config.TextOut
	if structured && opts.TUI {
		logrus.Fatal("Cannot use --json/--output and --tui flags together")
	}

	// Set log level based on flags
	if (structured || opts.TUI) && !opts.Verbose {
		logrus.SetLevel(logrus.WarnLevel)
	} else if opts.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	loc, err := opts.Location()
	if err != nil {
		logrus.Fatal(err)
	}
	clock = config.NewClock(time.Now, loc)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var countersCmd = &cobra.Command{
	Use:   "counters",
	Short: "Print the live death counters and global death rates",
	Run: func(cmd *cobra.Command, args []string) {
		if err := report.Counters(os.Stdout, clock(), opts.Output); err != nil {
			logrus.Fatal(err)
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var countCmd = &cobra.Command{
	Use:       "count GRANULARITY",
	Short:     "Print the deaths since the start of the current second, minute, hour, day, month or year",
	Args:      cobra.ExactArgs(1),
	ValidArgs: granularityNames(),
	Run: func(cmd *cobra.Command, args []string) {
		g, err := stats.ParseGranularity(args[0])
		if err != nil {
			logrus.Fatalf("%v (expected one of: %s)", err, strings.Join(granularityNames(), ", "))
		}
		if err := report.Count(os.Stdout, g, clock(), opts.Output); err != nil {
			logrus.Fatal(err)
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List countries by death rate, filtered by --query and --region",
	Run: func(cmd *cobra.Command, args []string) {
		if err := report.Countries(os.Stdout, opts.Query, opts.Region, opts.Output); err != nil {
			logrus.Fatal(err)
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"statistics"},
	Short:   "Print population dynamics, daily averages and leading causes of death",
	Run: func(cmd *cobra.Command, args []string) {
		if err := report.Statistics(os.Stdout, clock(), opts.Output); err != nil {
			logrus.Fatal(err)
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Describe the data sources and limitations of the figures",
	Run: func(cmd *cobra.Command, args []string) {
		if err := report.About(os.Stdout, releaseVersion, opts.Output); err != nil {
			logrus.Fatal(err)
		}
	},
}

func granularityNames() []string {
	gs := stats.Granularities()
	names := make([]string, 0, len(gs))
	for _, g := range gs {
		names = append(names, g.String())
	}
	return names
}

func main() {
	Execute()
}
