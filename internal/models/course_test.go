package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCourse(t *testing.T) {
	tests := []struct {
		input string
		want  Course
		err   bool
	}{
		{"starter", Starter, false},
		{"Starter", Starter, false},
		{" Mains ", Main, false},
		{"DESSERT", Dessert, false},
		{"Desserts", Dessert, false},
		{"", "", true},
		{"side", "", true},
		{"all", "", true},
	}

	for _, tt := range tests {
		got, err := ParseCourse(tt.input)
		if tt.err {
			assert.True(t, errors.Is(err, ErrUnknownCourse), "ParseCourse(%q) error = %v", tt.input, err)
			continue
		}
		assert.NoError(t, err, "ParseCourse(%q)", tt.input)
		assert.Equal(t, tt.want, got, "ParseCourse(%q)", tt.input)
	}
}

func TestCourseLabels(t *testing.T) {
	assert.Equal(t, []Course{Starter, Main, Dessert}, Courses())
	assert.Equal(t, "Main", Main.Label())
	assert.Equal(t, "Desserts", Dessert.PluralLabel())
	assert.False(t, Course("side").Valid())
	assert.Equal(t, "side", Course("side").Label())
}
