package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashLengthAndAlphabet(t *testing.T) {
	for _, in := range []string{"", "a", "hello-world", "configuração-avançada"} {
		h := Hash(in)
		assert.Len(t, h, 40, "Hash(%q)", in)
		for _, c := range h {
			assert.True(t, (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f'),
				"Hash(%q) contains non-hex char %q", in, c)
		}
	}
}

func TestShortHashDeterministic(t *testing.T) {
	first := ShortHash("hello-world")
	second := ShortHash("hello-world")

	assert.Equal(t, first, second)
	assert.Len(t, first, 7)
	assert.Equal(t, Hash("hello-world")[:7], first)
}

func TestHashDistinguishesInputs(t *testing.T) {
	assert.NotEqual(t, Hash("building-resilient-apis"), Hash("go-for-node-developers"))
	assert.NotEqual(t, Hash("a"), Hash("b"))
}

func TestHashEmptyInput(t *testing.T) {
	h := Hash("")
	assert.Len(t, h, 40)
	assert.Equal(t, Hash(""), h)
}
