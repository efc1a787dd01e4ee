package audio

import (
	"bytes"
	"encoding/binary"
	"math/rand"
)

// sampleRate is the PCM sample rate every generator in this package
// renders at.
const sampleRate = 44100

// newLocalRNG builds a seeded generator scoped to a single sound's
// synthesis, independent of any gameplay RNG draws.
func newLocalRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed)))
}

// writeWAVHeader writes a canonical 16-bit stereo PCM WAV header for
// the given sample count (per channel) ahead of the raw frame data.
func writeWAVHeader(buf *bytes.Buffer, samples int) {
	const (
		numChannels   = 2
		bitsPerSample = 16
	)
	byteRate := sampleRate * numChannels * bitsPerSample / 8
	blockAlign := numChannels * bitsPerSample / 8
	dataSize := samples * numChannels * bitsPerSample / 8

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(buf, binary.LittleEndian, uint16(numChannels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(dataSize))
}

// writeInt16 appends one little-endian 16-bit sample to buf.
func writeInt16(buf *bytes.Buffer, v int16) {
	binary.Write(buf, binary.LittleEndian, v)
}
