package commands

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
)

func newRegistry(ran *string, steps *int) *Registry {
	r := NewRegistry()

	run := flag.NewFlagSet("run", flag.ContinueOnError)
	run.SetOutput(io.Discard)
	r.Register("run", "open a window", run, func() error {
		*ran = "run"
		return nil
	})

	inspect := flag.NewFlagSet("inspect", flag.ContinueOnError)
	inspect.SetOutput(io.Discard)
	inspect.IntVar(steps, "steps", 0, "steps")
	r.Register("inspect", "headless summary", inspect, func() error {
		*ran = "inspect"
		return nil
	})
	return r
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		def       string
		wantRan   string
		wantSteps int
		wantErr   bool
	}{
		{"Named command", []string{"inspect", "-steps", "5"}, "", "inspect", 5, false},
		{"Default when empty", nil, "run", "run", 0, false},
		{"Default when flag first", []string{"-steps", "3"}, "inspect", "inspect", 3, false},
		{"Missing without default", nil, "", "", 0, true},
		{"Unknown command", []string{"fly"}, "run", "", 0, true},
		{"Bad flag", []string{"inspect", "-nope"}, "", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ran string
			var steps int
			r := newRegistry(&ran, &steps)
			r.Default = tt.def
			err := r.Execute(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			if ran != tt.wantRan {
				t.Errorf("Expected %q to run, got %q", tt.wantRan, ran)
			}
			if steps != tt.wantSteps {
				t.Errorf("Expected steps %d, got %d", tt.wantSteps, steps)
			}
		})
	}
}

func TestRunErrorPropagates(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	r.Register("fail", "always fails", flag.NewFlagSet("fail", flag.ContinueOnError), func() error { return boom })
	if err := r.Execute([]string{"fail"}); !errors.Is(err, boom) {
		t.Errorf("Expected boom, got %v", err)
	}
}

func TestUsage(t *testing.T) {
	var ran string
	var steps int
	r := newRegistry(&ran, &steps)
	var buf bytes.Buffer
	r.Usage(&buf)
	out := buf.String()
	if strings.Index(out, "inspect") > strings.Index(out, "run") {
		t.Errorf("Usage should list commands sorted:\n%s", out)
	}
	if !strings.Contains(out, "headless summary") {
		t.Errorf("Usage missing summary:\n%s", out)
	}
}
