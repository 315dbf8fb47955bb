// internal/report/output.go
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"github.com/mwiater/benchplot/internal/speedup"
	"github.com/mwiater/benchplot/internal/util"
)

var (
	savedLabel   = color.New(color.FgGreen).SprintFunc()
	skippedLabel = color.New(color.FgYellow).SprintFunc()
	failedLabel  = color.New(color.FgRed).SprintFunc()

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
)

const maxDetailRunes = 60

func printOutcome(out io.Writer, o Outcome) {
	name := o.File
	if o.Group != "" {
		name = fmt.Sprintf("%s [%s]", o.File, o.Group)
	}
	switch o.Status {
	case StatusSaved:
		fmt.Fprintf(out, "%s %s graph to %s\n", savedLabel("Saved"), o.Kind, o.Output)
	case StatusSkipped:
		fmt.Fprintf(out, "%s %s: %s\n", skippedLabel("Skipping"), name, skipReason(o.Err))
	default:
		fmt.Fprintf(out, "%s %s: %v\n", failedLabel("Error processing"), name, o.Err)
	}
}

func skipReason(err error) string {
	var (
		se  *speedup.SchemaError
		ite *speedup.InvalidTimeError
	)
	switch {
	case errors.As(err, &se):
		return fmt.Sprintf("Missing required columns %v", se.Missing)
	case errors.Is(err, speedup.ErrNoBaseline):
		return "No sequential data found for speedup calculation"
	case errors.As(err, &ite):
		return fmt.Sprintf("Invalid time %v for %s with %d processes (row %d)", ite.Time, ite.Method, ite.NbProc, ite.Index+1)
	}
	return err.Error()
}

// PrintSummary renders a table of every outcome followed by totals.
func PrintSummary(out io.Writer, s Summary) {
	if len(s.Outcomes) == 0 {
		return
	}

	rows := make([][]string, 0, len(s.Outcomes))
	for _, o := range s.Outcomes {
		detail := o.Output
		if o.Err != nil {
			detail = o.Err.Error()
		}
		rows = append(rows, []string{
			o.File,
			o.Group,
			o.Kind,
			o.Status,
			util.TruncateRunes(detail, maxDetailRunes),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers("File", "Group", "Chart", "Status", "Detail").
		Rows(rows...)

	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render("Report summary"))
	fmt.Fprintln(out, t.Render())
	fmt.Fprintf(out, "%d saved, %d skipped, %d failed\n",
		s.Count(StatusSaved), s.Count(StatusSkipped), s.Count(StatusFailed))
}
