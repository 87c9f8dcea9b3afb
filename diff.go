package humps

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// DiffOption holds options for the diff command.
type DiffOption struct {
	Input  string
	Format string
	To     string
	Color  bool
}

// Diff compares the input document with its converted form.
// Returns a *DiffError if keys would change (exit code 1 for CI).
func (app *App) Diff(ctx context.Context, opt DiffOption) error {
	conv, err := app.converter(opt.To)
	if err != nil {
		return err
	}
	doc, err := app.load(ctx, opt.Input, opt.Format)
	if err != nil {
		return err
	}
	before, err := doc.Marshal()
	if err != nil {
		return err
	}
	after, err := doc.ConvertKeys(conv, app.config.options()).Marshal()
	if err != nil {
		return err
	}

	diff := unifiedDiff(string(before), string(after), "original", "converted")
	if diff == "" {
		fmt.Fprintln(app.stdout, "No differences found.")
		return nil
	}
	printDiff(app.stdout, diff, opt.Color)
	return &DiffError{}
}

func printDiff(w io.Writer, diff string, colored bool) {
	header := color.New(color.Bold)
	hunk := color.New(color.FgCyan)
	del := color.New(color.FgRed)
	add := color.New(color.FgGreen)
	for _, c := range []*color.Color{header, hunk, del, add} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "--- "), strings.HasPrefix(line, "+++ "):
			header.Fprintln(w, line)
		case strings.HasPrefix(line, "@@"):
			hunk.Fprintln(w, line)
		case strings.HasPrefix(line, "-"):
			del.Fprintln(w, line)
		case strings.HasPrefix(line, "+"):
			add.Fprintln(w, line)
		default:
			fmt.Fprintln(w, line)
		}
	}
}

// diffContext is the number of unchanged lines shown around a change.
const diffContext = 3

type lineOp struct {
	kind byte // ' ', '-', '+'
	text string
	a, b int
}

// unifiedDiff produces a unified diff between two texts, or "" if they are
// equal.
func unifiedDiff(a, b, labelA, labelB string) string {
	ops := lineDiff(strings.Split(a, "\n"), strings.Split(b, "\n"))
	groups := hunkRanges(ops, diffContext)
	if len(groups) == 0 {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n", labelA)
	fmt.Fprintf(&sb, "+++ %s\n", labelB)
	for _, g := range groups {
		writeHunk(&sb, ops[g[0]:g[1]])
	}
	return sb.String()
}

// lineDiff walks a longest-common-subsequence table to list the edit
// operations turning a into b.
func lineDiff(a, b []string) []lineOp {
	n, m := len(a), len(b)
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	ops := make([]lineOp, 0, n+m)
	i, j := 0, 0
	for i < n || j < m {
		switch {
		case i < n && j < m && a[i] == b[j]:
			ops = append(ops, lineOp{' ', a[i], i, j})
			i++
			j++
		case j == m || (i < n && lcs[i+1][j] >= lcs[i][j+1]):
			ops = append(ops, lineOp{'-', a[i], i, j})
			i++
		default:
			ops = append(ops, lineOp{'+', b[j], i, j})
			j++
		}
	}
	return ops
}

// hunkRanges returns [start, end) op ranges covering every change plus its
// context. Ranges that touch are merged.
func hunkRanges(ops []lineOp, ctx int) [][2]int {
	var ranges [][2]int
	for i, op := range ops {
		if op.kind == ' ' {
			continue
		}
		start, end := max(i-ctx, 0), min(i+ctx+1, len(ops))
		if n := len(ranges); n > 0 && start <= ranges[n-1][1] {
			ranges[n-1][1] = end
			continue
		}
		ranges = append(ranges, [2]int{start, end})
	}
	return ranges
}

func writeHunk(sb *strings.Builder, ops []lineOp) {
	countA, countB := 0, 0
	for _, op := range ops {
		if op.kind != '+' {
			countA++
		}
		if op.kind != '-' {
			countB++
		}
	}
	fmt.Fprintf(sb, "@@ -%d,%d +%d,%d @@\n", ops[0].a+1, countA, ops[0].b+1, countB)
	for _, op := range ops {
		fmt.Fprintf(sb, "%c%s\n", op.kind, op.text)
	}
}
