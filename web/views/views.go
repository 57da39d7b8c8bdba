// Package views holds the dashboard templ components and their view
// models. The *_templ.go files are generated from the .templ sources.
package views

import "fmt"

// Item is one agent's row on the dashboard.
type Item struct {
	Host      string
	CPUUsage  float64
	Total     uint64
	Free      uint64
	Available uint64
	Buffers   uint64
	Cached    uint64
	Used      uint64
	PctUsed   float64
	RxBytes   uint64
	TxBytes   uint64
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}

// FormatPercent renders a ratio in [0,1] as a percentage.
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}
