package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/subliminal-nightfall/colorloom/internal/targets"
	"github.com/subliminal-nightfall/colorloom/internal/theme"
)

const tableGap = 2

var (
	targetHeaders = []string{"TARGET", "PATH", "ENABLED"}
	fileHeaders   = []string{"TARGET", "FILE", "BYTES"}
)

// writeTargetTable lists targets with their output directory and state.
// An empty path is shown as "." since files land in the output root.
func writeTargetTable(out io.Writer, list []theme.Target) error {
	rows := make([][]string, 0, len(list))
	for _, t := range list {
		path := t.Path
		if path == "" {
			path = "."
		}
		state := "no"
		if t.Enabled {
			state = "yes"
		}
		rows = append(rows, []string{t.Kind.String(), path, state})
	}
	return renderTable(out, targetHeaders, rows)
}

// writeFileTable lists every rendered file under root with its size.
func writeFileTable(out io.Writer, root string, outputs []targets.Output) error {
	var rows [][]string
	for _, o := range outputs {
		for i, path := range o.Paths(root) {
			rows = append(rows, []string{
				o.Target.Kind.String(),
				path,
				strconv.Itoa(len(o.Files[i].Content)),
			})
		}
	}
	return renderTable(out, fileHeaders, rows)
}

func renderTable(out io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(out, 0, 0, tableGap, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
