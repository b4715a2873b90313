// Package output displays scan progress and run summaries on the terminal.
package output

import (
	"io"
	"os"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/term"

	"github.com/sdejongh/sharemap/pkg/models"
)

// ShowProgress reports whether a progress bar makes sense for the writer:
// only when it is an interactive terminal
func ShowProgress(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// ScanProgressBar renders traversal progress as a progress bar. The total
// grows as new directories are discovered, so the bar converges on the real
// directory count as the scan proceeds.
type ScanProgressBar struct {
	mu  sync.Mutex
	bar *pb.ProgressBar
}

// NewScanProgressBar creates and starts a progress bar writing to w
func NewScanProgressBar(w io.Writer) *ScanProgressBar {
	bar := pb.New64(1)
	bar.SetWriter(w)
	bar.Set(pb.Bytes, false)
	bar.Start()

	return &ScanProgressBar{bar: bar}
}

// Hook returns the progress callback to hand to a scan
func (p *ScanProgressBar) Hook() models.ProgressFunc {
	return func(progress models.ScanProgress) {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.bar.SetTotal(int64(progress.DirsDiscovered))
		p.bar.SetCurrent(int64(progress.DirsScanned + progress.WarningCount))
	}
}

// Finish completes and clears down the bar
func (p *ScanProgressBar) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bar.Finish()
}
