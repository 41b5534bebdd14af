package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimSpaces(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "no spaces", input: "key", expected: "key"},
		{name: "leading spaces", input: "   key", expected: "key"},
		{name: "trailing spaces", input: "key   ", expected: "key"},
		{name: "both edges", input: "  key  ", expected: "key"},
		{name: "interior space kept", input: "a b", expected: "a b"},
		{name: "tabs survive", input: "\tkey\t", expected: "\tkey\t"},
		{name: "newlines survive", input: "\nkey\n", expected: "\nkey\n"},
		{name: "tab behind spaces survives", input: "  \tkey", expected: "\tkey"},
		{name: "spaces only", input: "    ", expected: ""},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TrimSpaces(tt.input))
		})
	}
}

func TestTrimLeadingSpaces(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "leading removed", input: "  key", expected: "key"},
		{name: "trailing kept", input: "key  ", expected: "key  "},
		{name: "tab stops the trim", input: " \t key", expected: "\t key"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TrimLeadingSpaces(tt.input))
		})
	}
}

func TestTrimTrailingSpaces(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "trailing removed", input: "key  ", expected: "key"},
		{name: "leading kept", input: "  key", expected: "  key"},
		{name: "tab stops the trim", input: "key \t ", expected: "key \t"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TrimTrailingSpaces(tt.input))
		})
	}
}
