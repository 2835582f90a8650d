package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/henderiw/rangeset/pkg/config"
	"github.com/henderiw/rangeset/pkg/logging"
	"github.com/henderiw/rangeset/pkg/rangeset"
	"github.com/henderiw/rangeset/pkg/segmenttable"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/labels"
)

var (
	configFile   string
	overlapRatio float64
	logFile      string
	logLevel     string
	console      string
	selectorStr  string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [file]",
	Short: "Resolve overlapping candidate spans into a sorted segment set",
	Long: "Reads candidate lines of the form 'start end segment [key=value,...]'\n" +
		"from a file or stdin and prints the segments that survive overlap\n" +
		"resolution, sorted by range.",
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&configFile, "config", "", "config file")
	resolveCmd.Flags().Float64Var(&overlapRatio, "overlap-ratio", 0, "overlap ratio in (0, 1], overrides the config")
	resolveCmd.Flags().StringVar(&logFile, "log-file", "", "log file prefix, overrides the config")
	resolveCmd.Flags().StringVar(&logLevel, "log-level", "", "debug, info, warning, error or critical")
	resolveCmd.Flags().StringVar(&console, "console", "", "tee logs to stderr (yes/no)")
	resolveCmd.Flags().StringVar(&selectorStr, "selector", "", "label selector to filter the output")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if overlapRatio != 0 {
		cfg.OverlapRatio = overlapRatio
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if console != "" {
		v, err := config.ParseBool(console)
		if err != nil {
			return err
		}
		cfg.Log.Console = config.Bool(v)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logrus.NewEntry(logrus.StandardLogger())
	if cfg.Log.File != "" {
		log, err = logging.Setup(logging.Options{
			Filename: cfg.Log.File,
			Level:    cfg.Log.Level,
			Console:  cfg.Log.Console.Bool(),
		})
		if err != nil {
			return err
		}
	}

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	table := segmenttable.New()
	lineno := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		segment, rng, lbls, err := parseCandidate(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
		overlap, evicted, err := table.InsertWithRatio(segment, rng, lbls, cfg.OverlapRatio)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
		switch {
		case evicted != nil:
			log.Infof("segment %d (%s) evicts segment %d (%s)", segment, rng, evicted.Index(), evicted.Range())
		case overlap:
			log.Infof("segment %d (%s) rejected", segment, rng)
		default:
			log.Debugf("segment %d (%s) admitted", segment, rng)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	segments := table.GetAll()
	if selectorStr != "" {
		selector, err := labels.Parse(selectorStr)
		if err != nil {
			return err
		}
		segments = table.GetByLabel(selector)
	}

	w := cmd.OutOrStdout()
	for _, s := range segments {
		fmt.Fprintf(w, "%g\t%g\t%d\t%s\n", s.Range().Start, s.Range().End, s.Index(), s.Labels())
	}
	return nil
}

func parseCandidate(line string) (int64, rangeset.Range, labels.Set, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 || len(fields) > 4 {
		return 0, rangeset.Range{}, nil, fmt.Errorf("expected 'start end segment [key=value,...]', got %q", line)
	}
	start, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, rangeset.Range{}, nil, fmt.Errorf("invalid start %q", fields[0])
	}
	end, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, rangeset.Range{}, nil, fmt.Errorf("invalid end %q", fields[1])
	}
	segment, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return 0, rangeset.Range{}, nil, fmt.Errorf("invalid segment %q", fields[2])
	}
	var lbls labels.Set
	if len(fields) == 4 {
		lbls, err = labels.ConvertSelectorToLabelsMap(fields[3])
		if err != nil {
			return 0, rangeset.Range{}, nil, err
		}
	}
	return segment, rangeset.RangeFrom(start, end), lbls, nil
}
