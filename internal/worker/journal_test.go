package worker

import (
	"fmt"
	"strings"
	"sync"
)

// journal is a Logger remembering everything printed into it.
type journal struct {
	mu    sync.Mutex
	lines []string
}

func (j *journal) Printf(format string, v ...any) {
	j.mu.Lock()
	j.lines = append(j.lines, fmt.Sprintf(format, v...))
	j.mu.Unlock()
}

func (j *journal) String() string {
	j.mu.Lock()
	defer j.mu.Unlock()

	return strings.Join(j.lines, "\n")
}
