package reporter

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Browse opens a read-only, scrollable list of diagnostics. It never
// accepts an address to jump to or a register to inspect — selecting an
// entry only scrolls a detail pane to the matching source excerpt.
// There is no notion of "continue" or "step"; this is a viewer, not a
// debugger.
func Browse(diags []Diagnostic, lines []string) error {
	app := tview.NewApplication()

	list := tview.NewList().ShowSecondaryText(true)
	detail := tview.NewTextView().SetDynamicColors(true).SetWrap(true)
	detail.SetBorder(true).SetTitle("excerpt")

	for i, d := range diags {
		label := "error"
		color := "red"
		if d.Severity == SeveritySuggestion {
			label = "suggestion"
			color = "magenta"
		}
		title := fmt.Sprintf("[%s]%s[-] %s", color, label, d.Message)
		sub := fmt.Sprintf("%s:%s", d.File, d.Span)
		idx := i
		list.AddItem(title, sub, 0, func() {
			showExcerpt(detail, diags[idx], lines)
		})
	}

	if len(diags) > 0 {
		showExcerpt(detail, diags[0], lines)
	}

	list.SetBorder(true).SetTitle("diagnostics")
	flex := tview.NewFlex().
		AddItem(list, 0, 1, true).
		AddItem(detail, 0, 2, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	return app.SetRoot(flex, true).SetFocus(list).Run()
}

func showExcerpt(detail *tview.TextView, d Diagnostic, lines []string) {
	detail.Clear()
	lineIdx := d.Span.Line - 1
	if lineIdx < 0 || lineIdx >= len(lines) {
		fmt.Fprintf(detail, "%s\n(no source line available)", d.Message)
		return
	}
	fmt.Fprintf(detail, "%s\n\n%s\n", d.Message, lines[lineIdx])
}
