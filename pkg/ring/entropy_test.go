package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SequentialEntropySource_Cycles_Through_All_Bytes(t *testing.T) {
	t.Parallel()

	src := NewSequentialEntropySource(0xfe)

	for _, want := range []byte{0xfe, 0xff, 0x00, 0x01} {
		got, err := src.NextByte()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func Test_FixedEntropySource_Replays_Then_Exhausts(t *testing.T) {
	t.Parallel()

	src := NewFixedEntropySource([]byte{0x01, 0x02})

	b, err := src.NextByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), b)

	b, err = src.NextByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x02), b)

	_, err = src.NextByte()
	require.ErrorIs(t, err, ErrEntropyExhausted)
}

func Test_CryptoRandSource_Returns_A_Byte(t *testing.T) {
	t.Parallel()

	src := NewCryptoRandSource()

	_, err := src.NextByte()
	require.NoError(t, err)
}
