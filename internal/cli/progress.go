package cli

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
)

// LoadProgressReporter shows a progress bar while workspace sources parse.
type LoadProgressReporter struct {
	quiet bool
	bar   *progressbar.ProgressBar
}

// NewLoadProgressReporter creates a new load progress reporter.
func NewLoadProgressReporter(quiet bool) *LoadProgressReporter {
	return &LoadProgressReporter{quiet: quiet}
}

func (r *LoadProgressReporter) OnLoadStart(totalFiles int) {
	if r.quiet {
		return
	}
	r.bar = progressbar.NewOptions(totalFiles,
		progressbar.OptionSetDescription("Parsing sources"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *LoadProgressReporter) OnFileParsed(processed, totalFiles int, fileName string) {
	if r.quiet || r.bar == nil {
		return
	}
	r.bar.Describe(fmt.Sprintf("Parsing %s", fileName))
	r.bar.Add(1)
}

func (r *LoadProgressReporter) OnLoadComplete(typeCount, memberCount int) {
	if r.quiet {
		return
	}
	if r.bar != nil {
		r.bar.Finish()
	}
	fmt.Fprintf(os.Stderr, "Loaded %d types, %d members\n", typeCount, memberCount)
}
