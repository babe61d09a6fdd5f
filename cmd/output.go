package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/gnolang/seqprove/formatter"
	"github.com/gnolang/seqprove/internal/oracle"
	"github.com/gnolang/seqprove/internal/search"
	"github.com/gnolang/seqprove/prove"
)

var (
	fileStyle   = color.New(color.FgCyan, color.Bold)
	closedStyle = color.New(color.FgGreen, color.Bold)
	openStyle   = color.New(color.FgRed, color.Bold)
	noteStyle   = color.New(color.FgHiYellow)
)

type renderOptions struct {
	kind  formatter.Kind
	stats bool
}

// fileReport is the JSON shape of one proved file.
type fileReport struct {
	File      string         `json:"file"`
	Claim     string         `json:"claim"`
	Closed    bool           `json:"closed"`
	Stats     *search.Stats  `json:"stats,omitempty"`
	Classical *classicalJSON `json:"classical,omitempty"`
	Tree      formatter.Node `json:"tree"`
}

type classicalJSON struct {
	Valid        bool            `json:"valid"`
	Countermodel map[string]bool `json:"countermodel,omitempty"`
}

// printResults writes one rendered tree per result. A single result is
// printed bare; several are each preceded by a header line.
func printResults(w io.Writer, results []prove.Result, opts renderOptions) error {
	if opts.kind == formatter.KindJSON {
		return printJSON(w, results, opts)
	}

	for _, res := range results {
		if len(results) > 1 {
			if err := printHeader(w, res, opts.kind); err != nil {
				return err
			}
		}
		if err := formatter.Render(w, res.Tree, opts.kind); err != nil {
			return err
		}
		if opts.stats {
			if _, err := fmt.Fprintln(w, statsLine(res.Stats)); err != nil {
				return err
			}
		}
		if res.Classical != nil {
			if _, err := fmt.Fprintln(w, classicalLine(res)); err != nil {
				return err
			}
		}
	}
	return nil
}

func printHeader(w io.Writer, res prove.Result, kind formatter.Kind) error {
	status := closedStyle.Sprint("closed")
	if !res.Closed {
		status = openStyle.Sprint("open")
	}
	if kind == formatter.KindLaTeX {
		// a comment keeps the output valid LaTeX
		_, err := fmt.Fprintf(w, "%% %s: %s\n", res.Filename, status)
		return err
	}
	_, err := fmt.Fprintf(w, "== %s (%s)\n", fileStyle.Sprint(res.Filename), status)
	return err
}

func printJSON(w io.Writer, results []prove.Result, opts renderOptions) error {
	reports := make([]fileReport, 0, len(results))
	for _, res := range results {
		report := fileReport{
			File:   res.Filename,
			Claim:  res.Claim.String(),
			Closed: res.Closed,
			Tree:   formatter.ToNode(res.Tree),
		}
		if opts.stats {
			st := res.Stats
			report.Stats = &st
		}
		if res.Classical != nil {
			report.Classical = &classicalJSON{
				Valid:        res.Classical.Verdict == oracle.VerdictValid,
				Countermodel: res.Classical.Countermodel,
			}
		}
		reports = append(reports, report)
	}

	d, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(d))
	return err
}

func statsLine(st search.Stats) string {
	return fmt.Sprintf("nodes=%d depth=%d closed_leaves=%d open_leaves=%d",
		st.Nodes, st.Depth, st.ClosedLeaves, st.OpenLeaves)
}

func classicalLine(res prove.Result) string {
	report := res.Classical
	if report.Verdict == oracle.VerdictValid {
		if res.Closed {
			return noteStyle.Sprint("classically valid")
		}
		return openStyle.Sprint("classically valid but not derived")
	}

	assignments := make([]string, 0, len(report.Countermodel))
	for _, name := range report.Atoms() {
		assignments = append(assignments, fmt.Sprintf("%s=%t", name, report.Countermodel[name]))
	}
	return noteStyle.Sprintf("classically invalid, countermodel: {%s}", strings.Join(assignments, ", "))
}
