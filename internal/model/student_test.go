package model_test

import (
	"testing"

	"rollbook/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestTrimmed(t *testing.T) {
	s := model.Student{Name: "  Ann ", Roll: "\tR1\n", Course: " CS"}
	assert.Equal(t, model.Student{Name: "Ann", Roll: "R1", Course: "CS"}, s.Trimmed())
}

func TestMatches(t *testing.T) {
	s := model.Student{Name: "Ann Lee", Roll: "R-17", Course: "Computer Science"}

	tests := []struct {
		query string
		want  bool
	}{
		{"ann", true},
		{"r-1", true},
		{"science", true},
		{"", true},
		{"bo", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Matches(tt.query))
		})
	}
}
