package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/storbeck/dictforge/internal/classify"
	"github.com/storbeck/dictforge/internal/config"
	"github.com/storbeck/dictforge/internal/runner"
	"github.com/storbeck/dictforge/internal/store"
	"github.com/storbeck/dictforge/internal/target"
	"github.com/storbeck/dictforge/internal/wordlist"
)

type rootFlags struct {
	domain        string
	output        string
	configFile    string
	dbPath        string
	timeout       time.Duration
	sequential    bool
	skipGau       bool
	skipURLFinder bool
	quiet         bool
	verbose       bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "dictforge",
		Short: "Build a target-specific brute-force wordlist from discovered URLs",
		Long: `dictforge runs gau and urlfinder against a target domain, merges
their URL output and distills it into a deduplicated, sorted wordlist
of path segments and dynamic filenames for directory brute-forcing.
Static assets (images, scripts, archives, ...) are filtered out by
extension.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.domain, "domain", "d", "", "target domain (required)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output wordlist file (default wordlist.txt)")
	cmd.Flags().StringVar(&flags.configFile, "config", "", "optional YAML config file")
	cmd.Flags().StringVar(&flags.dbPath, "db", "", "record URLs and terms into this sqlite database")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 0, "overall discovery timeout (default 5m)")
	cmd.Flags().BoolVar(&flags.sequential, "sequential", false, "run discovery tools one after another")
	cmd.Flags().BoolVar(&flags.skipGau, "skip-gau", false, "do not run gau")
	cmd.Flags().BoolVar(&flags.skipURLFinder, "skip-urlfinder", false, "do not run urlfinder")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "suppress progress output")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	cmd.MarkFlagRequired("domain")

	return cmd
}

// mergeFlags applies explicit flag values over the loaded config.
func mergeFlags(cfg config.Config, cmd *cobra.Command, flags *rootFlags) config.Config {
	cfg.Domain = flags.domain
	if cmd.Flags().Changed("output") {
		cfg.Output = flags.output
	}
	if cmd.Flags().Changed("db") {
		cfg.DBPath = flags.dbPath
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = flags.timeout
	}
	if cmd.Flags().Changed("sequential") {
		cfg.Sequential = flags.sequential
	}
	cfg.SkipGau = flags.skipGau
	cfg.SkipURLFinder = flags.skipURLFinder
	return cfg
}

func run(cmd *cobra.Command, flags *rootFlags) error {
	switch {
	case flags.verbose:
		log.SetLevel(log.DebugLevel)
	case flags.quiet:
		log.SetLevel(log.ErrorLevel)
	}

	cfg, err := config.Load(flags.configFile)
	if err != nil {
		return err
	}
	cfg = mergeFlags(cfg, cmd, flags)

	domain, err := target.Normalize(cfg.Domain)
	if err != nil {
		return err
	}

	var tools []runner.Tool
	if !cfg.SkipGau {
		tools = append(tools, runner.GauTool(cfg.GauBin, domain))
	}
	if !cfg.SkipURLFinder {
		tools = append(tools, runner.URLFinderTool(cfg.URLFinderBin, domain))
	}
	if len(tools) == 0 {
		return fmt.Errorf("both discovery tools are disabled")
	}

	// Ctrl+C cancels the tools; whatever they printed so far still
	// becomes a wordlist.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	log.Info("starting discovery", "domain", domain, "tools", len(tools), "timeout", cfg.Timeout)

	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	sp.Suffix = fmt.Sprintf(" running discovery against %s", domain)
	if !flags.quiet {
		sp.Start()
	}
	report := runner.New(tools, cfg.Sequential).Run(ctx)
	sp.Stop()

	builder := wordlist.NewBuilder(classify.New(cfg.StaticExtensions))
	for _, src := range report.Sources {
		if !flags.quiet {
			switch {
			case src.Err != nil:
				color.Red("[-] %s: %v", src.Tool, src.Err)
			case src.Partial:
				color.Yellow("[!] %s interrupted, keeping %d URLs", src.Tool, len(src.URLs))
			default:
				color.Green("[+] %s found %d URLs", src.Tool, len(src.URLs))
			}
		}
		builder.Add(src.URLs)
	}

	if cfg.DBPath != "" {
		if err := record(cfg.DBPath, domain, report, builder); err != nil {
			// Recording is bookkeeping; a failed db never loses the run.
			log.Warn("failed to record run", "db", cfg.DBPath, "err", err)
		}
	}

	if err := builder.WriteFile(cfg.Output); err != nil {
		return err
	}
	if !flags.quiet {
		color.Green("[+] wrote %d unique terms to %s", builder.Len(), cfg.Output)
	}

	if builder.Len() == 0 && report.Failed() > 0 {
		return fmt.Errorf("no terms collected and %d discovery tool(s) failed", report.Failed())
	}
	return nil
}

func record(dbPath, domain string, report runner.Report, builder *wordlist.Builder) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	for _, src := range report.Sources {
		if err := st.SaveURLs(domain, src.Tool, src.URLs); err != nil {
			return err
		}
	}
	return st.SaveTerms(domain, builder.Terms())
}
