package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func never(string) (bool, error) { return false, nil }

func TestGenerate_Normalizes(t *testing.T) {
	s, err := Generate("Héllo Wörld!", 56, never)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, "hello-world-"), s)
	assert.Len(t, s, len("hello-world")+6)
}

func TestGenerate_DistinctForIdenticalNames(t *testing.T) {
	a, err := Generate("Umbrella", 56, never)
	assert.NoError(t, err)
	b, err := Generate("Umbrella", 56, never)
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerate_RespectsMaxLength(t *testing.T) {
	long := strings.Repeat("very long name ", 10)
	s, err := Generate(long, 56, never)
	assert.NoError(t, err)
	assert.LessOrEqual(t, len(s), 56)
}

func TestGenerate_RetriesOnCollision(t *testing.T) {
	var first string
	calls := 0
	exists := func(candidate string) (bool, error) {
		calls++
		if calls == 1 {
			first = candidate
			return true, nil
		}
		return false, nil
	}
	s, err := Generate("wallet", 56, exists)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, calls, 2)
	assert.NotEqual(t, first, s)
	assert.True(t, strings.HasPrefix(s, "wallet-"))
}
