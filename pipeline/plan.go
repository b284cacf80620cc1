package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidPlan is returned when a plan cannot be parsed or fails validation.
var ErrInvalidPlan = errors.New("pipeline: invalid plan")

// Job is one input image, the steps applied to it and where the result goes.
type Job struct {
	Name   string `json:"name,omitempty"`
	Input  string `json:"input"`
	Output string `json:"output"`
	Steps  []Step `json:"steps"`
}

// Plan is a batch of independent jobs.
//
// A plan in JSON form:
//
//	{
//	  "jobs": [
//	    {
//	      "name": "rotated",
//	      "input": "in/cat.png",
//	      "output": "out/cat-rot.png",
//	      "steps": [{"op": "rotate", "args": [90]}, {"op": "median"}]
//	    }
//	  ]
//	}
type Plan struct {
	Jobs []Job `json:"jobs"`
}

// LoadPlan reads a JSON plan from path. Relative job paths are resolved
// against the directory containing the plan.
func LoadPlan(path string) (*Plan, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("pipeline: open plan: %w", err)
	}
	defer func() { _ = f.Close() }()

	plan, err := ParsePlan(f)
	if err != nil {
		return nil, err
	}
	plan.resolve(filepath.Dir(path))
	return plan, nil
}

// ParsePlan decodes and validates a JSON plan. Unknown fields are rejected.
func ParsePlan(r io.Reader) (*Plan, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var plan Plan
	if err := dec.Decode(&plan); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Validate checks every job and fills in missing job names from the output
// file name.
func (p *Plan) Validate() error {
	if len(p.Jobs) == 0 {
		return fmt.Errorf("%w: no jobs", ErrInvalidPlan)
	}

	outputs := make(map[string]int, len(p.Jobs))
	for i := range p.Jobs {
		j := &p.Jobs[i]
		if j.Name == "" {
			j.Name = strings.TrimSuffix(filepath.Base(j.Output), filepath.Ext(j.Output))
		}
		if j.Input == "" || j.Output == "" {
			return fmt.Errorf("%w: job %d (%s): input and output are required", ErrInvalidPlan, i, j.Name)
		}
		if prev, dup := outputs[j.Output]; dup {
			return fmt.Errorf("%w: jobs %d and %d write the same output %q", ErrInvalidPlan, prev, i, j.Output)
		}
		outputs[j.Output] = i

		for _, s := range j.Steps {
			if err := s.Validate(); err != nil {
				return fmt.Errorf("%w: job %d (%s): %w", ErrInvalidPlan, i, j.Name, err)
			}
		}
	}
	return nil
}

// resolve makes relative job paths relative to dir.
func (p *Plan) resolve(dir string) {
	for i := range p.Jobs {
		j := &p.Jobs[i]
		if !filepath.IsAbs(j.Input) {
			j.Input = filepath.Join(dir, j.Input)
		}
		if !filepath.IsAbs(j.Output) {
			j.Output = filepath.Join(dir, j.Output)
		}
	}
}
