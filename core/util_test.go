package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanString(t *testing.T) {
	assert.Equal(t, "Hello World", CleanString("  Hello World \n"))
	assert.Equal(t, "hello", CleanString(" HeLLo ", true))
	assert.Equal(t, "", CleanString("\t "))
}

func TestCleanStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, CleanStrings([]string{" a", "", " ", "b "}))
	assert.Equal(t, []string{"x"}, CleanStrings([]string{" X "}, true))
	assert.Empty(t, CleanStrings(nil))
}
