package ux

import (
	"fmt"

	"github.com/jorge-barreto/plancal/internal/plan"
)

const dateFmt = "Mon Jan 2"

// RenderSummary prints the parsed plan week by week, used by --dry-run.
func RenderSummary(p *plan.Plan) {
	if p.Dialect == plan.DialectFlat {
		fmt.Fprintf(Out, "\n%sFlat plan — %d readings:%s\n\n", Bold, len(p.Readings), Reset)
		renderReadings(p.Readings)
		fmt.Fprintln(Out)
		return
	}

	fmt.Fprintf(Out, "\n%sDry run — %d weeks, %d readings:%s\n", Bold, len(p.Weeks), p.ReadingCount(), Reset)
	for i, w := range p.Weeks {
		label := w.Label
		if label == "" {
			label = "(untitled)"
		}
		fmt.Fprintf(Out, "\n  %s%d.%s %s%s%s  %s\n", Cyan, i+1, Reset, Bold, label, Reset, weekRange(w))
		renderReadings(w.Readings)

		mv := w.MemoryVerse
		switch {
		case mv.Label == "":
			fmt.Fprintf(Out, "     %smemory verse: (none)%s\n", Dim, Reset)
		case mv.Text != "":
			fmt.Fprintf(Out, "     %smemory verse:%s %s %s✓ text%s\n", Yellow, Reset, mv.Label, Green, Reset)
		case mv.API != nil:
			fmt.Fprintf(Out, "     %smemory verse:%s %s %s(fetchable)%s\n", Yellow, Reset, mv.Label, Dim, Reset)
		default:
			fmt.Fprintf(Out, "     %smemory verse:%s %s\n", Yellow, Reset, mv.Label)
		}
	}
	fmt.Fprintln(Out)
}

func renderReadings(readings []plan.Reading) {
	for _, r := range readings {
		date := fmt.Sprintf("%s%-10s%s", Red, "no date", Reset)
		if r.Date != nil {
			date = fmt.Sprintf("%-10s", r.Date.Format(dateFmt))
		}
		link := ""
		if r.URL == "" {
			link = fmt.Sprintf(" %s(no link)%s", Dim, Reset)
		}
		fmt.Fprintf(Out, "     %s  %s%s\n", date, r.Label, link)
	}
}

func weekRange(w plan.Week) string {
	if w.StartDate == nil {
		return fmt.Sprintf("%s(no dates)%s", Dim, Reset)
	}
	return fmt.Sprintf("%s%s – %s%s", Dim, w.StartDate.Format(dateFmt), w.EndDate.Format(dateFmt), Reset)
}
