package greeting

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// DefaultName is used when no name is supplied on the command line.
const DefaultName = "world"

// Options holds the inputs for a single greeting run.
type Options struct {
	Name string
}

// Report captures the values printed by one invocation. Field order matches
// the output line order.
type Report struct {
	Greeting string `json:"greeting"`
	Dir      string `json:"cwd"`
	Runtime  string `json:"go"`
	TimeUTC  string `json:"time_utc"`
}

// NewReport reads the working directory, runtime version and clock and builds
// the report for opts.
func NewReport(opts Options) (Report, error) {
	name := opts.Name
	if name == "" {
		name = DefaultName
	}
	dir, err := os.Getwd()
	if err != nil {
		return Report{}, fmt.Errorf("failed to read working directory: %w", err)
	}
	return Report{
		Greeting: fmt.Sprintf("hello, %s!", name),
		Dir:      dir,
		Runtime:  runtime.Version(),
		TimeUTC:  time.Now().UTC().Format(time.RFC3339Nano),
	}, nil
}

// Lines renders the report as its four output lines, in order.
func (r Report) Lines() []string {
	return []string{
		r.Greeting,
		"cwd: " + r.Dir,
		"go: " + r.Runtime,
		"time_utc: " + r.TimeUTC,
	}
}

// Write prints the report lines to w.
func Write(w io.Writer, r Report) error {
	for _, line := range r.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON prints the report to w as a single indented JSON object.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
