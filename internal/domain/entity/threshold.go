package entity

import (
	"fmt"
	"strings"
)

// Thresholds is an ascending list of day counts.
type Thresholds []int

// Includes reports whether a reservation with days remaining should alert.
func (t Thresholds) Includes(days int) bool {
	if days < 0 {
		return false
	}
	for _, limit := range t {
		if days <= limit {
			return true
		}
	}
	return false
}

// String renders the list the way it appears in the report, e.g. "[7, 30, 60]".
func (t Thresholds) String() string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Min returns the tightest threshold, or -1 when the list is empty.
func (t Thresholds) Min() int {
	if len(t) == 0 {
		return -1
	}
	lowest := t[0]
	for _, v := range t[1:] {
		if v < lowest {
			lowest = v
		}
	}
	return lowest
}
