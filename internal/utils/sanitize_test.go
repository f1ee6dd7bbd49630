package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizer(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		input   string
		want    string
	}{
		{name: "plain text", enabled: true, input: "Why?", want: "Why?"},
		{name: "strips script", enabled: true, input: `hi<script>alert(1)</script>`, want: "hi"},
		{name: "keeps safe markup", enabled: true, input: "<b>bold</b>", want: "<b>bold</b>"},
		{name: "escapes entities", enabled: true, input: "a & b", want: "a &amp; b"},
		{name: "trims", enabled: true, input: "  spaced  ", want: "spaced"},
		{name: "disabled keeps markup", enabled: false, input: "<script>x</script>", want: "<script>x</script>"},
		{name: "disabled keeps text verbatim", enabled: false, input: "Q&A: is a < b? use <T any>", want: "Q&A: is a < b? use <T any>"},
		{name: "disabled keeps whitespace", enabled: false, input: "  x ", want: "  x "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewSanitizer(tt.enabled).Sanitize(tt.input))
		})
	}
}

func TestSanitizer_Nil(t *testing.T) {
	var s *Sanitizer
	assert.Equal(t, " raw ", s.Sanitize(" raw "))
}
