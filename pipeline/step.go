package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Step errors.
var (
	// ErrUnknownOp is returned for an operation name that is not registered.
	ErrUnknownOp = errors.New("pipeline: unknown operation")

	// ErrInvalidArgs is returned when a step's arguments do not fit its operation.
	ErrInvalidArgs = errors.New("pipeline: invalid arguments")

	// ErrCanvasTooLarge is returned when a transform step would need a
	// destination larger than MaxCanvasPixels.
	ErrCanvasTooLarge = errors.New("pipeline: canvas too large")

	// ErrEmptyCanvas is returned when a fitted transform step maps a
	// non-empty image entirely to negative coordinates.
	ErrEmptyCanvas = errors.New("pipeline: transformed image is off canvas")
)

// Step is one named operation with its arguments.
//
// In text form a step is written "op" or "op:arg1,arg2", for example
// "rotate:90", "flip:v" or "dilate".
type Step struct {
	Op   string `json:"op"`
	Args Args   `json:"args,omitempty"`
}

// Args holds step arguments as strings. In JSON, numbers and strings are
// both accepted.
type Args []string

// UnmarshalJSON implements json.Unmarshaler.
func (a *Args) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Args, len(raw))
	for i, r := range raw {
		var s string
		if err := json.Unmarshal(r, &s); err == nil {
			out[i] = s
			continue
		}
		var n json.Number
		if err := json.Unmarshal(r, &n); err != nil {
			return fmt.Errorf("%w: argument %d is neither string nor number", ErrInvalidArgs, i)
		}
		out[i] = n.String()
	}
	*a = out
	return nil
}

// ParseStep parses the text form of a step.
func ParseStep(s string) (Step, error) {
	s = strings.TrimSpace(s)
	name, rest, hasArgs := strings.Cut(s, ":")
	step := Step{Op: strings.ToLower(strings.TrimSpace(name))}
	if step.Op == "" {
		return Step{}, fmt.Errorf("%w: empty step %q", ErrUnknownOp, s)
	}
	if hasArgs {
		for _, a := range strings.Split(rest, ",") {
			step.Args = append(step.Args, strings.TrimSpace(a))
		}
	}
	if err := step.Validate(); err != nil {
		return Step{}, err
	}
	return step, nil
}

// ParseSteps parses several steps in order.
func ParseSteps(specs []string) ([]Step, error) {
	steps := make([]Step, 0, len(specs))
	for _, s := range specs {
		step, err := ParseStep(s)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// String returns the text form of the step.
func (s Step) String() string {
	if len(s.Args) == 0 {
		return s.Op
	}
	return s.Op + ":" + strings.Join(s.Args, ",")
}

// Validate checks that the operation exists and accepts the arguments.
func (s Step) Validate() error {
	_, err := s.compile()
	return err
}

// compile binds the step's arguments to its operation.
func (s Step) compile() (stage, error) {
	op, ok := lookup(s.Op)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, s.Op)
	}
	st, err := op.parse(s.Args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s, err)
	}
	return st, nil
}

// argInt parses args[i] as an integer, or returns def when absent.
func argInt(args Args, i, def int) (int, error) {
	if i >= len(args) {
		return def, nil
	}
	v, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("%w: argument %d %q is not an integer", ErrInvalidArgs, i+1, args[i])
	}
	return v, nil
}

// argFloat parses args[i] as a float, or returns def when absent.
func argFloat(args Args, i int, def float64) (float64, error) {
	if i >= len(args) {
		return def, nil
	}
	v, err := strconv.ParseFloat(args[i], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: argument %d %q is not a finite number", ErrInvalidArgs, i+1, args[i])
	}
	return v, nil
}

// checkArity verifies lo <= len(args) <= hi.
func checkArity(args Args, lo, hi int) error {
	if len(args) < lo || len(args) > hi {
		if lo == hi {
			return fmt.Errorf("%w: want %d arguments, got %d", ErrInvalidArgs, lo, len(args))
		}
		return fmt.Errorf("%w: want %d to %d arguments, got %d", ErrInvalidArgs, lo, hi, len(args))
	}
	return nil
}
