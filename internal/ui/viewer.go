package ui

import (
	"fmt"
	"strings"

	"covproc/internal/domain"
	"covproc/internal/storage"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Viewer displays an aggregation summary
type Viewer interface {
	View(summary *domain.Summary) error
}

// Section is one list of test names shown by the viewer
type Section struct {
	Title string
	Names []string
}

// Sections returns the summary sections in test_execution.log order
func Sections(summary *domain.Summary) []Section {
	notExecuted := summary.NotExecuted
	if !summary.Meta.UnitTestWithValgrind {
		notExecuted = append([]string{storage.UnitTestWithValgrindSentinel}, notExecuted...)
	}
	return []Section{
		{Title: "Tests Executed in Build", Names: summary.Executed},
		{Title: "Tests Missing From Build", Names: notExecuted},
		{Title: "Tests Missing ASAN", Names: summary.MissingASan},
		{Title: "Tests Missing UBSAN", Names: summary.MissingUBSan},
	}
}

// SummaryViewer displays summary sections in an interactive TUI
type SummaryViewer struct{}

// NewSummaryViewer creates a new SummaryViewer
func NewSummaryViewer() *SummaryViewer {
	return &SummaryViewer{}
}

// View shows the sections on the left and the selected section's tests on the right
func (v *SummaryViewer) View(summary *domain.Summary) error {
	if summary.Meta.DeclaredTests == 0 {
		color.Yellow("No declared tests in summary")
		return nil
	}

	sections := Sections(summary)
	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, s := range sections {
		list.AddItem(formatSectionItem(i, s), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(formatHeader(summary.Meta))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(sections) {
			detailsView.SetText(formatSectionDetails(sections[index]))
			detailsView.ScrollToBeginning()
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC, tcell.KeyEsc:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})
	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})
	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})
	updateDetails()

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func formatHeader(meta domain.SummaryMeta) string {
	return fmt.Sprintf(" %d/%d declared tests executed | %d manifests, %d completion logs | %s | ↑↓ select, → details, ← back, q to exit ",
		meta.ExecutedTests, meta.DeclaredTests, meta.ManifestFiles, meta.CompletionFiles, meta.Timestamp)
}

func formatSectionItem(index int, s Section) string {
	return fmt.Sprintf("[yellow]%d.[white] %s (%d)", index+1, s.Title, len(s.Names))
}

func formatSectionDetails(s Section) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[cyan]%s[white]\n\n", s.Title)
	if len(s.Names) == 0 {
		b.WriteString("[gray](none)[white]\n")
		return b.String()
	}
	for _, name := range s.Names {
		if name == storage.UnitTestWithValgrindSentinel {
			fmt.Fprintf(&b, "[red]%s[white]\n", tview.Escape(name))
			continue
		}
		b.WriteString(tview.Escape(name) + "\n")
	}
	return b.String()
}
