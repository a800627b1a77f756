package cli

import (
	"fmt"
	"io"
	"os"
	"time"
)

// progressStep reports one unit of work as a single line once it finishes,
// so log output written to the same stream never splits it.
type progressStep struct {
	out     io.Writer
	label   string
	started time.Time
}

func (o *rootOptions) startProgress(out io.Writer, label string) *progressStep {
	if !o.progressEnabled() {
		return nil
	}
	return &progressStep{
		out:     out,
		label:   label,
		started: time.Now(),
	}
}

func (p *progressStep) Done() {
	if p == nil {
		return
	}
	fmt.Fprintf(p.out, "%s... done (%s)\n", p.label, formatDuration(time.Since(p.started)))
}

func (p *progressStep) Fail(err error) {
	if p == nil {
		return
	}
	if err != nil {
		fmt.Fprintf(p.out, "%s... failed: %v\n", p.label, err)
		return
	}
	fmt.Fprintf(p.out, "%s... failed\n", p.label)
}

func (o *rootOptions) progressEnabled() bool {
	if o.settings.JSON || o.noProgress {
		return false
	}
	if _, ok := os.LookupEnv("COLORLOOM_NO_PROGRESS"); ok {
		return false
	}
	if _, ok := os.LookupEnv("NO_PROGRESS"); ok {
		return false
	}
	return true
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return d.String()
	}
	if d < time.Second {
		return d.Round(10 * time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}
