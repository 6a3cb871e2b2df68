package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/labels"

	"github.com/henderiw/arctable/pkg/arc"
	"github.com/henderiw/arctable/pkg/arctable"
	"github.com/henderiw/arctable/pkg/record"
)

// envPrefix is the environment variable prefix for arcfind settings.
const envPrefix = "ARCFIND"

type findOptions struct {
	input      string
	output     string
	showLeaves bool
}

func NewFindCommand() *cobra.Command {
	opts := &findOptions{}

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Compute the largest clear arc left by the covering records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFind(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "f", "-", "input file with one covering record per line, - for stdin")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "output format: text, json or yaml")
	cmd.Flags().BoolVar(&opts.showLeaves, "show-leaves", false, "also render the remaining clear segments as a table")

	return cmd
}

func runFind(cmd *cobra.Command, opts *findOptions) error {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	opts.input = v.GetString("input")
	opts.output = v.GetString("output")
	opts.showLeaves = v.GetBool("show-leaves")

	in := cmd.InOrStdin()
	if opts.input != "-" {
		f, err := os.Open(opts.input)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	records, err := record.ReadAll(in)
	if err != nil {
		return err
	}

	t := arctable.New()
	for i, rec := range records {
		// a fully covered domain cannot change anymore
		if t.IsExhausted() {
			break
		}
		d := labels.Set{"record": strconv.Itoa(i)}
		if err := t.CoverRecord(rec, d); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}

	out := cmd.OutOrStdout()
	if err := writeResult(out, opts.output, t.LargestClearArc()); err != nil {
		return err
	}
	if opts.showLeaves {
		renderLeaves(out, t.Leaves())
	}
	return nil
}

type arcResult struct {
	X1     float64 `json:"x1" yaml:"x1"`
	X2     float64 `json:"x2" yaml:"x2"`
	Length float64 `json:"length" yaml:"length"`
}

func writeResult(w io.Writer, format string, s arc.Segment) error {
	result := arcResult{X1: s.X1, X2: s.X2, Length: s.Length}

	switch format {
	case "text":
		fmt.Fprintf(w, "(%g, %g) length %g\n", result.X1, result.X2, result.Length)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	case "yaml":
		b, err := yaml.Marshal(result)
		if err != nil {
			return err
		}
		fmt.Fprint(w, string(b))
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}

func renderLeaves(w io.Writer, leaves []arc.Segment) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"#", "From", "To", "Length"})
	for i, s := range leaves {
		tw.AppendRow(table.Row{i, s.X1, s.X2, s.Length})
	}
	tw.Render()
}
