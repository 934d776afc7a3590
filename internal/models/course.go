package models

import (
	"errors"
	"fmt"
	"strings"
)

// Course is the closed set of menu categories a dish can belong to
type Course string

const (
	Starter Course = "starter"
	Main    Course = "main"
	Dessert Course = "dessert"
)

// ErrUnknownCourse is returned when a value does not name one of the three courses
var ErrUnknownCourse = errors.New("unknown course")

var courseOrder = []Course{Starter, Main, Dessert}

var courseLabels = map[Course]struct {
	singular string
	plural   string
}{
	Starter: {"Starter", "Starters"},
	Main:    {"Main", "Mains"},
	Dessert: {"Dessert", "Desserts"},
}

// Courses returns every course in display order
func Courses() []Course {
	out := make([]Course, len(courseOrder))
	copy(out, courseOrder)
	return out
}

// ParseCourse converts user-facing text into a Course. Values and display labels
// are accepted case-insensitively; everything else is rejected.
func ParseCourse(value string) (Course, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, course := range courseOrder {
		labels := courseLabels[course]
		switch normalized {
		case string(course), strings.ToLower(labels.singular), strings.ToLower(labels.plural):
			return course, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCourse, value)
}

// Valid reports whether c is one of the known courses
func (c Course) Valid() bool {
	_, ok := courseLabels[c]
	return ok
}

// Label returns the singular display label
func (c Course) Label() string {
	if labels, ok := courseLabels[c]; ok {
		return labels.singular
	}
	return string(c)
}

// PluralLabel returns the label used for per-course summaries
func (c Course) PluralLabel() string {
	if labels, ok := courseLabels[c]; ok {
		return labels.plural
	}
	return string(c)
}

func (c Course) String() string {
	return string(c)
}
