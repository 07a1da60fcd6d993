package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vitrix/dynamics"
	"github.com/katalvlaran/vitrix/matrix"
)

// operation names one engine entry point and what its result carries.
type operation struct {
	name  string
	short string
	wantJ bool
	wantD bool
}

var (
	opAffine    = operation{name: "affine", short: "Best-fit affine tensor J of each neighborhood", wantJ: true}
	opNonaffine = operation{name: "nonaffine", short: "Non-affine residual D²_min of each neighborhood", wantD: true}
	opStrain    = operation{name: "strain", short: "Both D²_min and J of each neighborhood", wantJ: true, wantD: true}
)

// neighborhood is one input record.
type neighborhood struct {
	ID      string      `json:"id,omitempty"`
	Initial [][]float64 `json:"initial"`
	Final   [][]float64 `json:"final"`
}

// result is one output record. Exactly one of (D2Min and/or J) or Error is set.
type result struct {
	ID    string       `json:"id,omitempty"`
	D2Min *float64     `json:"d2min,omitempty"`
	J     [][]float64  `json:"j,omitempty"`
	Error *recordError `json:"error,omitempty"`
}

func newOperationCmd(opts *options, op operation) *cobra.Command {
	return &cobra.Command{
		Use:   op.name,
		Short: op.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, op)
		},
	}
}

// run streams neighborhoods from the input through op to the output.
func (o *options) run(cmd *cobra.Command, op operation) (err error) {
	logger, closer := newLogger(cmd.ErrOrStderr(), o.verbose, o.logFile)
	defer closer.Close()

	if o.precision != 32 && o.precision != 64 {
		return fmt.Errorf("unsupported --precision %d (want 32 or 64)", o.precision)
	}

	in, closeIn, err := openInput(o.input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(o.output, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	dec := json.NewDecoder(in)
	enc := json.NewEncoder(out)
	var total, failed int
	for {
		var nb neighborhood
		if derr := dec.Decode(&nb); errors.Is(derr, io.EOF) {
			break
		} else if derr != nil {
			return fmt.Errorf("decode record %d: %w", total+1, derr)
		}
		total++

		res := o.compute(op, nb)
		if res.Error != nil {
			failed++
			logger.Warn("record failed", slog.Int("record", total), slog.String("id", nb.ID), slog.String("kind", res.Error.Kind))
		} else {
			logger.Debug("record done", slog.Int("record", total), slog.String("id", nb.ID), slog.Int("bonds", len(nb.Initial)))
		}
		if werr := enc.Encode(res); werr != nil {
			return fmt.Errorf("write result %d: %w", total, werr)
		}
	}

	logger.Info("strain run finished",
		slog.String("op", op.name), slog.Int("precision", o.precision),
		slog.Int("records", total), slog.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%d of %d records: %w", failed, total, errRecordsFailed)
	}

	return nil
}

// compute dispatches on the configured precision.
func (o *options) compute(op operation, nb neighborhood) result {
	if o.precision == 32 {
		return compute[float32](op, nb)
	}

	return compute[float64](op, nb)
}

// compute runs op on nb entirely in precision T.
func compute[T matrix.Float](op operation, nb neighborhood) result {
	res := result{ID: nb.ID}
	fail := func(err error) result {
		return result{ID: nb.ID, Error: translate(err)}
	}

	initial, err := toView[T]("initial", nb.Initial)
	if err != nil {
		return fail(err)
	}
	final, err := toView[T]("final", nb.Final)
	if err != nil {
		return fail(err)
	}

	var (
		d2min T
		j     *matrix.Dense[T]
	)
	switch {
	case op.wantJ && op.wantD:
		d2min, j, err = dynamics.NonaffineAndAffineLocalStrain(initial, final)
	case op.wantJ:
		j, err = dynamics.AffineLocalStrain(initial, final)
	default:
		d2min, err = dynamics.NonaffineLocalStrain(initial, final)
	}
	if err != nil {
		return fail(err)
	}

	if op.wantD {
		d := float64(d2min)
		res.D2Min = &d
	}
	if op.wantJ {
		res.J = j.ToRows()
	}
	if !finite(res) {
		return fail(fmt.Errorf("%s: %w", op.name, errNonFinite))
	}

	return res
}

// toView flattens JSON rows into one buffer of T and views it. This is the
// only copy on the path; the engine reads the buffer in place.
func toView[T matrix.Float](name string, rows [][]float64) (matrix.View[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return matrix.View[T]{}, fmt.Errorf("%s: empty: %w", name, dynamics.ErrShapeMismatch)
	}
	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return matrix.View[T]{}, fmt.Errorf("%s: row %d has %d components, want %d: %w", name, i, len(row), cols, dynamics.ErrShapeMismatch)
		}
		for _, x := range row {
			data = append(data, T(x))
		}
	}

	return matrix.NewView(data, len(rows), cols)
}

func finite(r result) bool {
	ok := func(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
	if r.D2Min != nil && !ok(*r.D2Min) {
		return false
	}
	for _, row := range r.J {
		for _, x := range row {
			if !ok(x) {
				return false
			}
		}
	}

	return true
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}

	return f, f.Close, nil
}
