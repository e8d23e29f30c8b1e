package testutils

import (
	"fmt"
	"strings"
	"sync"
)

// Logger records log lines so tests can check what was reported.
type Logger struct {
	mu      sync.Mutex
	entries []string
}

func (l *Logger) Printf(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, fmt.Sprintf(format, v...))
}

func (l *Logger) Entries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.entries...)
}

func (l *Logger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Count returns the number of entries containing substr.
func (l *Logger) Count(substr string) int {
	n := 0
	for _, e := range l.Entries() {
		if strings.Contains(e, substr) {
			n++
		}
	}
	return n
}
