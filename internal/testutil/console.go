// Package testutil holds shared test doubles.
package testutil

import (
	"fmt"
	"strings"
	"sync"

	"github.com/diillson/aws-ri-expiration-alert/internal/shared/types"
)

// RecordingConsole is a ConsoleInterface that keeps everything in memory.
type RecordingConsole struct {
	mu    sync.Mutex
	Lines []string
}

func NewRecordingConsole() *RecordingConsole {
	return &RecordingConsole{}
}

func (c *RecordingConsole) add(prefix, format string, a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Lines = append(c.Lines, prefix+fmt.Sprintf(format, a...))
}

// Output returns everything written so far, one entry per line.
func (c *RecordingConsole) Output() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return strings.Join(c.Lines, "\n")
}

func (c *RecordingConsole) Print(a ...interface{})   { c.add("", "%s", fmt.Sprint(a...)) }
func (c *RecordingConsole) Println(a ...interface{}) { c.add("", "%s", fmt.Sprint(a...)) }
func (c *RecordingConsole) Printf(format string, a ...interface{}) {
	c.add("", format, a...)
}

func (c *RecordingConsole) LogInfo(format string, a ...interface{})    { c.add("INFO: ", format, a...) }
func (c *RecordingConsole) LogWarning(format string, a ...interface{}) { c.add("WARN: ", format, a...) }
func (c *RecordingConsole) LogError(format string, a ...interface{})   { c.add("ERROR: ", format, a...) }
func (c *RecordingConsole) LogSuccess(format string, a ...interface{}) { c.add("OK: ", format, a...) }

func (c *RecordingConsole) Status(message string) types.StatusHandle {
	c.add("STATUS: ", "%s", message)
	return nopStatus{}
}

func (c *RecordingConsole) CreateTable() types.TableInterface {
	return &textTable{}
}

type nopStatus struct{}

func (nopStatus) Update(string) {}
func (nopStatus) Stop()         {}

type textTable struct {
	rows [][]string
}

func (t *textTable) AddColumn(name string, _ ...interface{}) {
	if len(t.rows) == 0 {
		t.rows = append(t.rows, nil)
	}
	t.rows[0] = append(t.rows[0], name)
}

func (t *textTable) AddRow(cells ...interface{}) {
	row := make([]string, len(cells))
	for i, cell := range cells {
		row[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, row)
}

func (t *textTable) Render() string {
	lines := make([]string, len(t.rows))
	for i, row := range t.rows {
		lines[i] = strings.Join(row, " | ")
	}
	return strings.Join(lines, "\n")
}
