package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar creates and manages progress bars
type ProgressBar struct {
	bar   *progressbar.ProgressBar
	label string
	total int
}

// NewProgressBar creates a new progress bar over count items
func NewProgressBar(label string, count int) *ProgressBar {
	p := &ProgressBar{label: label, total: count}
	p.bar = progressbar.NewOptions(count,
		progressbar.OptionSetDescription(p.describe(0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return p
}

func (p *ProgressBar) describe(done int) string {
	return color.CyanString(p.label+": ") + color.GreenString("[%d/%d]", done, p.total)
}

// Update sets the number of processed items
func (p *ProgressBar) Update(done int) {
	p.bar.Set(done)
	p.bar.Describe(p.describe(done))
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}
