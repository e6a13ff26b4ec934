// Package snapshot reads and writes the persisted plan document: a JSON
// snapshot of the timeline tree, the calendar description and the
// calculator settings. The codec follows a schema → validate → convert
// pipeline; the engine only ever sees the converted graph and calendar.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
)

// Document is the top-level JSON structure of a persisted plan.
type Document struct {
	Name         string      `json:"name,omitempty"`
	Timeline     []NodeDoc   `json:"timeline"`
	Calendar     CalendarDoc `json:"calendar"`
	RecursiveMax int         `json:"recursive_max,omitempty"`
}

// NodeDoc is one timeline node. Groups nest their children inline; task
// fields are ignored on groups and vice versa (validation rejects misuse).
type NodeDoc struct {
	ID          string    `json:"id,omitempty"`
	Kind        string    `json:"kind"`
	Title       string    `json:"title,omitempty"`
	Children    []NodeDoc `json:"children,omitempty"`
	Workload    *float64  `json:"workload,omitempty"`
	Progress    *float64  `json:"progress,omitempty"`
	Previous    []string  `json:"previous,omitempty"`
	StaticBegin *string   `json:"static_begin,omitempty"`
	Resources   []string  `json:"resources,omitempty"`
}

// CalendarDoc is the calendar block of a plan document.
type CalendarDoc struct {
	Zone            string     `json:"zone"`
	Begin           string     `json:"begin"`
	End             string     `json:"end"`
	RegularHolidays []int      `json:"regular_holidays,omitempty"`
	Events          []EventDoc `json:"events,omitempty"`
}

// EventDoc is a dated holiday entry.
type EventDoc struct {
	Date string `json:"date"`
	Kind string `json:"kind"`
}

// LoadDocument reads and parses a plan document from disk. The result is
// unvalidated; call ValidateDocument before converting.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDocument(data)
}

// ParseDocument parses a plan document from raw JSON.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing plan document: %w", err)
	}
	return &doc, nil
}

// Marshal renders the document back to its persisted JSON form.
func (d *Document) Marshal() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}
