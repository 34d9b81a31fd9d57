package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAndFallback(t *testing.T) {
	tests := []struct {
		raw      string
		want     Code
		fallback Code
	}{
		{raw: "EN ", want: English, fallback: English},
		{raw: "fr", want: French, fallback: French},
		{raw: "", want: "", fallback: Arabic},
		{raw: "de", want: "de", fallback: Arabic},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := Parse(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.fallback, got.Or(Default))
		})
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "French", French.Name())
	assert.Equal(t, "de", Code("de").Name())
}
