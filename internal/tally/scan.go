package tally

import (
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/colourcount/internal/inifile"
)

// Scan tallies the colour literals of every key-value line in data.
func Scan(data []byte, logger hclog.Logger) *Tally {
	t := New()

	entries := inifile.Parse(data)
	for _, entry := range entries {
		if n := t.Add(entry.Key, entry.Value); n > 0 {
			logger.Debug("found colours", "line", entry.Line, "key", entry.Key, "count", n)
		}
	}

	logger.Debug("scan complete",
		"entries", len(entries),
		"colours", t.Len(),
		"occurrences", t.Occurrences())

	return t
}
