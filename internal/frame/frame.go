package frame

import "math"

// Size is the fixed length of a display payload in bytes.
const Size = 12

// header identifies the payload to the display firmware. The bytes are
// fixed by the device protocol and must not change.
var header = [5]byte{0x55, 0xAA, 0x01, 0x01, 0x06}

// checksumBias is the fixed offset added to the digit-byte sum.
const checksumBias = 7

// Frame is a single 12-byte payload for the display:
// 5-byte header, 3 digit bytes for the CPU temperature, 3 for the GPU,
// and a trailing checksum byte.
type Frame [Size]byte

// Encode builds the payload for one pair of temperatures. It never fails;
// temperatures outside 0-99.9°C produce digit values outside 0-9, which
// wrap through the byte conversion exactly as the firmware expects.
func Encode(cpuTemp, gpuTemp float64) Frame {
	var f Frame
	copy(f[:], header[:])

	cpu := encodeTemp(cpuTemp)
	gpu := encodeTemp(gpuTemp)
	copy(f[5:8], cpu[:])
	copy(f[8:11], gpu[:])

	sum := 0
	for _, b := range f[5:11] {
		sum += int(b)
	}
	f[11] = byte((sum + checksumBias) % 256)

	return f
}

// encodeTemp splits a temperature into its tens, ones, and first-decimal
// digits, one raw byte each (47.3 -> 4, 7, 3).
func encodeTemp(t float64) [3]byte {
	return [3]byte{
		byte(int(math.Floor(t / 10))),
		byte(int(math.Floor(math.Mod(t, 10)))),
		byte(int(math.Floor(math.Mod(t*10, 10)))),
	}
}

// DecodeTemp recovers a temperature from its three digit bytes. Precision
// past the first decimal is lost during encoding, so this is exact only to
// one decimal place.
func DecodeTemp(tens, ones, tenth byte) float64 {
	return float64(tens)*10 + float64(ones) + float64(tenth)/10
}

// CPU returns the decoded CPU temperature carried by the frame.
func (f Frame) CPU() float64 { return DecodeTemp(f[5], f[6], f[7]) }

// GPU returns the decoded GPU temperature carried by the frame.
func (f Frame) GPU() float64 { return DecodeTemp(f[8], f[9], f[10]) }
