package vnode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_AtReturnsZeroBeforeAnyWrite(t *testing.T) {
	h := newHistory(-1)
	assert.Equal(t, -1, h.at(0))
	assert.Equal(t, -1, h.at(50))
}

func TestHistory_FloorSemantics(t *testing.T) {
	h := newHistory("")
	h.set(2, "two")
	h.set(5, "five")
	h.set(9, "nine")

	tests := map[string]struct {
		version int
		want    string
	}{
		"below first write":   {version: 0, want: ""},
		"exactly first write": {version: 2, want: "two"},
		"between writes":      {version: 4, want: "two"},
		"exactly second":      {version: 5, want: "five"},
		"between second/third": {version: 7, want: "five"},
		"exactly third":       {version: 9, want: "nine"},
		"well beyond":         {version: 1000, want: "nine"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, h.at(tc.version))
		})
	}
}

func TestHistory_SameVersionOverwriteWins(t *testing.T) {
	h := newHistory(0)
	h.set(3, 1)
	h.set(3, 2)
	assert.Equal(t, 2, h.at(3))
}
