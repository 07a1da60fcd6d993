package cli

import (
	"errors"

	"github.com/katalvlaran/vitrix/dynamics"
)

// errRecordsFailed marks a run where the stream was processed but at least
// one record carried a domain error.
var errRecordsFailed = errors.New("one or more records failed")

// errNonFinite marks a result that overflowed and cannot be encoded as JSON.
var errNonFinite = errors.New("result is not finite")

// Process exit codes.
const (
	ExitOK            = 0
	ExitFailure       = 1 // I/O, decoding, flags
	ExitRecordsFailed = 2 // stream processed, some records failed
)

// recordError is the wire form of an engine failure.
type recordError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// translate is the single mapping from engine errors to the host vocabulary.
// It never inspects sentinels directly; dynamics.KindOf owns classification.
func translate(err error) *recordError {
	if errors.Is(err, errNonFinite) {
		return &recordError{Kind: "non_finite", Message: "strain overflowed to NaN or Inf: " + err.Error()}
	}

	kind := dynamics.KindOf(err)
	switch kind {
	case dynamics.KindNone:
		return nil
	case dynamics.KindSingularMatrix:
		return &recordError{
			Kind:    kind.String(),
			Message: "linear algebra failure: initial bond vectors do not span all dimensions (" + err.Error() + ")",
		}
	case dynamics.KindShapeMismatch:
		return &recordError{Kind: kind.String(), Message: "invalid bond matrices: " + err.Error()}
	default:
		return &recordError{Kind: kind.String(), Message: err.Error()}
	}
}

// ExitCode maps the error returned by the root command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errRecordsFailed):
		return ExitRecordsFailed
	default:
		return ExitFailure
	}
}
