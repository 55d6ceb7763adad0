package money

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain integer", "120", "120"},
		{"dot separator", "12.34", "12.34"},
		{"comma separator", "12,34", "12.34"},
		{"surrounding whitespace", "  45,5  ", "45.5"},
		{"empty string", "", "0"},
		{"whitespace only", "   ", "0"},
		{"not a number", "abc", "0"},
		{"trailing junk", "12abc", "0"},
		{"negative passes through", "-3.5", "-3.5"},
		{"leading zero fraction", "0,99", "0.99"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if got.String() != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}
