package frame

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeTempDigits(t *testing.T) {
	require := require.New(t)

	cases := []struct {
		temp float64
		want [3]byte
	}{
		{0.0, [3]byte{0, 0, 0}},
		{5.0, [3]byte{0, 5, 0}},
		{9.9, [3]byte{0, 9, 9}},
		{10.0, [3]byte{1, 0, 0}},
		{47.3, [3]byte{4, 7, 3}},
		{68.5, [3]byte{6, 8, 5}},
		{99.9, [3]byte{9, 9, 9}},
	}
	for _, c := range cases {
		require.Equal(c.want, encodeTemp(c.temp), "temp %.1f", c.temp)
	}
}

func TestEncodeLayout(t *testing.T) {
	require := require.New(t)

	f := Encode(47.3, 5.0)
	require.Len(f[:], Size)
	require.Equal([]byte{0x55, 0xAA, 0x01, 0x01, 0x06}, f[:5])
	require.Equal([]byte{4, 7, 3}, f[5:8])
	require.Equal([]byte{0, 5, 0}, f[8:11])

	// checksum immediately follows the GPU digits:
	// sum of digit bytes is 19, plus the fixed bias of 7
	require.Equal(byte(0x1A), f[11])
}

func TestEncodeWireImage(t *testing.T) {
	require := require.New(t)

	// byte-for-byte image the display firmware expects: no padding
	// anywhere, checksum as the twelfth byte
	f := Encode(47.3, 5.0)
	require.Equal("55aa0101060407030005001a", hex.EncodeToString(f[:]))
}

func TestChecksumWraps(t *testing.T) {
	require := require.New(t)

	// In-range temperatures sum to at most 54+7; force a wrap through
	// the unclamped arithmetic: 2500.0 encodes a tens digit of 250, so
	// both temperatures together sum past 256.
	f := Encode(2500.0, 2500.0)
	require.Equal([]byte{250, 0, 0}, f[5:8])

	sum := 0
	for _, b := range f[5:11] {
		sum += int(b)
	}
	require.Equal(507, sum+7)
	require.Equal(byte((sum+7)%256), f[Size-1])
}

func TestEncodeNeverClamps(t *testing.T) {
	require := require.New(t)

	// 104.2°C: tens digit is 10, not squeezed back into 0-9.
	digits := encodeTemp(104.2)
	require.Equal([3]byte{10, 4, 2}, digits)
}

func TestDecodeRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, temp := range []float64{0.0, 5.0, 36.6, 47.3, 82.1, 99.9} {
		f := Encode(temp, temp)
		require.InDelta(temp, f.CPU(), 0.05, "cpu %.1f", temp)
		require.InDelta(temp, f.GPU(), 0.05, "gpu %.1f", temp)
	}

	// Precision past one decimal is dropped, not rounded.
	f := Encode(47.38, 0)
	require.InDelta(47.3, f.CPU(), 0.001)
}
