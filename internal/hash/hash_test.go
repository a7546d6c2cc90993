package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRC32C_KnownValue(t *testing.T) {
	// RFC 3720 test vector: 32 bytes of zeros.
	assert.Equal(t, uint32(0x8a9136aa), CRC32C(make([]byte, 32)))
}

func TestStringMatchesBytes(t *testing.T) {
	for _, s := range []string{"", "a", "hello world", "ключ"} {
		assert.Equal(t, Bytes([]byte(s)), String(s))
	}
	assert.NotEqual(t, String("a"), String("b"))
}

func TestComparable(t *testing.T) {
	seed := NewSeed()
	assert.Equal(t, Comparable(seed, 42), Comparable(seed, 42))
	assert.Equal(t, Comparable(seed, "k"), Comparable(seed, "k"))

	type pair struct {
		a int
		b string
	}
	assert.Equal(t, Comparable(seed, pair{1, "x"}), Comparable(seed, pair{1, "x"}))
}
