package requestapi

import (
	console "github.com/fmitra/bankconsole"
)

// logView is a snapshot of the ResponseLog.
type logView struct {
	Entries []console.LogEntry `json:"entries"`
	Text    string             `json:"text"`
	Failed  bool               `json:"failed"`
}

func newLogView(l console.ResponseLog) *logView {
	entries := l.Entries()
	if entries == nil {
		entries = []console.LogEntry{}
	}
	return &logView{
		Entries: entries,
		Text:    l.String(),
		Failed:  l.Failed(),
	}
}
