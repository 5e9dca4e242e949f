package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/llehouerou/sortviz/internal/config"
	"github.com/llehouerou/sortviz/internal/input"
	"github.com/llehouerou/sortviz/internal/sorting"
	"github.com/llehouerou/sortviz/internal/step"
)

// Output formats accepted by --format.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

const (
	flagFormat = "format"
	flagSeed   = "seed"
	flagCheck  = "check"
)

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown format (use table, json or yaml)")

type stepsOptions struct {
	algorithm  string
	input      string
	valueRange int
	length     int
	seed       uint64
	format     string
	check      bool
}

// Dump is the serialized form of a recorded sequence.
type Dump struct {
	Algorithm string       `json:"algorithm" yaml:"algorithm"`
	Input     []int        `json:"input"     yaml:"input,flow"`
	Steps     []StepRecord `json:"steps"     yaml:"steps"`
}

// StepRecord is one serialized step. Marker is omitted for steps without one.
type StepRecord struct {
	Index      int     `json:"index"                yaml:"index"`
	Array      []int   `json:"array"                yaml:"array,flow"`
	Highlights []int   `json:"highlights,omitempty" yaml:"highlights,omitempty,flow"`
	Marker     *int    `json:"marker,omitempty"     yaml:"marker,omitempty"`
	Note       string  `json:"note,omitempty"       yaml:"note,omitempty"`
	Counts     []int   `json:"counts,omitempty"     yaml:"counts,omitempty,flow"`
	Output     []int   `json:"output,omitempty"     yaml:"output,omitempty,flow"`
	Buckets    [][]int `json:"buckets,omitempty"    yaml:"buckets,omitempty,flow"`
}

func newStepsCommand() *cobra.Command {
	opts := &stepsOptions{}

	cmd := &cobra.Command{
		Use:   "steps",
		Short: "Print the recorded steps of an algorithm run",
		Long: `Generate the step sequence for one algorithm and print it.

Without --input a random array is drawn; pass --seed to make it reproducible.`,
		Example: `  sortviz steps -a bubble -i "5,3,8,4,2"
  sortviz steps -a radix -r 50 --seed 7 --format json
  sortviz steps -a heap -i "9,1,4" --check`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSteps(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.algorithm, flagAlgorithm, "a", config.DefaultAlgorithm, "algorithm id or name")
	f.StringVarP(&opts.input, flagInput, "i", "", "comma-separated numbers (random when empty)")
	f.IntVarP(&opts.valueRange, flagRange, "r", config.DefaultRange, "upper bound of random values (5-100)")
	f.IntVarP(&opts.length, flagLength, "n", 0, "random array length (0 means same as range)")
	f.Uint64Var(&opts.seed, flagSeed, 0, "random seed (0 picks one)")
	f.StringVarP(&opts.format, flagFormat, "f", FormatTable, "output format: table, json or yaml")
	f.BoolVar(&opts.check, flagCheck, false, "verify the sequence invariants before printing")

	return cmd
}

// runSteps writes the sequence to w. Check results go to status so the
// sequence output stays machine-readable.
func runSteps(w, status io.Writer, opts *stepsOptions) error {
	alg, err := sorting.ParseAlgorithm(opts.algorithm)
	if err != nil {
		return err
	}

	values, err := stepsInput(alg, opts)
	if err != nil {
		return err
	}

	seq := sorting.Generate(alg, values)
	if opts.check {
		if err := seq.Validate(values); err != nil {
			color.New(color.FgRed).Fprintf(status, "%s: sequence check failed\n", alg)
			return fmt.Errorf("%s: invalid sequence: %w", alg, err)
		}
		color.New(color.FgGreen).Fprintf(status, "%s: %s steps verified\n", alg, humanize.Comma(int64(seq.Len())))
	}

	d := newDump(alg, values, seq)

	switch strings.ToLower(opts.format) {
	case FormatTable:
		_, err = io.WriteString(w, renderTable(d)+"\n")
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(d)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(d); err == nil {
			err = enc.Close()
		}
	default:
		return fmt.Errorf("%q: %w", opts.format, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("write steps: %w", err)
	}
	return nil
}

func stepsInput(alg sorting.Algorithm, opts *stepsOptions) ([]int, error) {
	if strings.TrimSpace(opts.input) == "" {
		seed := opts.seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		rng := rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // visual data only
		return input.NewRandom(rng, opts.length, opts.valueRange).Next(), nil
	}

	values, err := input.Parse(opts.input)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(alg, values); err != nil {
		return nil, err
	}
	return values, nil
}

func newDump(alg sorting.Algorithm, values []int, seq step.Sequence) Dump {
	d := Dump{
		Algorithm: alg.String(),
		Input:     values,
		Steps:     make([]StepRecord, 0, seq.Len()),
	}
	for i, s := range seq.Steps() {
		r := StepRecord{
			Index:      i,
			Array:      s.Array,
			Highlights: s.Highlights,
			Note:       s.Note,
			Counts:     s.Counts,
			Output:     s.Output,
			Buckets:    s.Buckets,
		}
		if s.HasMarker() {
			marker := s.Marker
			r.Marker = &marker
		}
		d.Steps = append(d.Steps, r)
	}
	return d
}

func renderTable(d Dump) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle("%s · input %s", d.Algorithm, input.Format(d.Input))

	tbl.AppendHeader(table.Row{"#", "Array", "Highlights", "Marker", "Note"})
	for _, r := range d.Steps {
		marker := ""
		if r.Marker != nil {
			marker = strconv.Itoa(*r.Marker)
		}
		tbl.AppendRow(table.Row{r.Index, input.Format(r.Array), input.Format(r.Highlights), marker, r.Note})
	}

	tbl.AppendFooter(table.Row{"", fmt.Sprintf("Total: %s steps", humanize.Comma(int64(len(d.Steps))))})

	return tbl.Render()
}
