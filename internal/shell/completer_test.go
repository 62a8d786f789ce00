package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplete_BuiltinPrefix(t *testing.T) {
	candidates, length := Complete("ec")
	assert.Equal(t, 2, length)
	found := false
	for _, c := range candidates {
		if string(c) == "ho " {
			found = true
		}
	}
	assert.True(t, found, "expected echo's remainder among candidates: %v", candidates)
}

func TestComplete_NoMatches(t *testing.T) {
	candidates, _ := Complete("zzzznosuchcommand")
	assert.Empty(t, candidates)
}

func TestCompleter_StopsAfterFirstWord(t *testing.T) {
	c := NewCompleter()
	line := []rune("echo hel")
	candidates, _ := c.Do(line, len(line))
	assert.Nil(t, candidates)
}
