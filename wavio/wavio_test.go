package wavio

import (
	"bytes"
	"encoding/binary"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStereo16HeaderLayout(t *testing.T) {
	h := NewStereo16Header(44100, 1000)

	var buf bytes.Buffer
	n, err := h.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(HeaderSize), n)

	b := buf.Bytes()
	require.Len(t, b, HeaderSize)

	assert.Equal(t, "RIFF", string(b[0:4]))
	assert.Equal(t, uint32(1036), binary.LittleEndian.Uint32(b[4:8]))
	assert.Equal(t, "WAVE", string(b[8:12]))

	assert.Equal(t, "fmt ", string(b[12:16]))
	assert.Equal(t, uint32(16), binary.LittleEndian.Uint32(b[16:20]))
	assert.Equal(t, uint16(FormatPCM), binary.LittleEndian.Uint16(b[20:22]))
	assert.Equal(t, uint16(NumChannels), binary.LittleEndian.Uint16(b[22:24]))
	assert.Equal(t, uint32(44100), binary.LittleEndian.Uint32(b[24:28]))
	assert.Equal(t, uint32(176400), binary.LittleEndian.Uint32(b[28:32]))
	assert.Equal(t, uint16(4), binary.LittleEndian.Uint16(b[32:34]))
	assert.Equal(t, uint16(BitsPerSample), binary.LittleEndian.Uint16(b[34:36]))

	assert.Equal(t, "data", string(b[36:40]))
	assert.Equal(t, uint32(1000), binary.LittleEndian.Uint32(b[40:44]))
}

func TestHeaderRoundTrip(t *testing.T) {
	want := NewStereo16Header(48000, 17816400)

	var buf bytes.Buffer
	_, err := want.WriteTo(&buf)
	require.NoError(t, err)

	got, err := ReadHeader(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadHeaderErrors(t *testing.T) {
	corrupt := func(offset int, tag string) []byte {
		var buf bytes.Buffer
		_, err := NewStereo16Header(44100, 4).WriteTo(&buf)
		require.NoError(t, err)

		b := buf.Bytes()
		copy(b[offset:], tag)

		return b
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"bad riff tag", corrupt(0, "RIFX"), ErrNotRIFF},
		{"bad wave tag", corrupt(8, "AIFF"), ErrNotWAVE},
		{"bad fmt tag", corrupt(12, "junk"), ErrBadChunkTag},
		{"bad data tag", corrupt(36, "LIST"), ErrBadChunkTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadHeader(bytes.NewReader(tt.data))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReadHeaderShort(t *testing.T) {
	_, err := ReadHeader(strings.NewReader("RIFF"))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestSamplesRoundTrip(t *testing.T) {
	want := []int16{0, 1, -1, 12000, -12000, 32767, -32768}

	var buf bytes.Buffer
	require.NoError(t, WriteSamples(&buf, want))
	require.Equal(t, 2*len(want), buf.Len())

	got := make([]int16, len(want))
	require.NoError(t, ReadSamples(&buf, got))
	assert.Equal(t, want, got)
}

func TestReadSamplesShort(t *testing.T) {
	err := ReadSamples(bytes.NewReader(make([]byte, 6)), make([]int16, 4))
	assert.Error(t, err)
}

func TestWriteSilence(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSilence(&buf, 100))

	assert.Equal(t, 400, buf.Len())
	assert.Equal(t, bytes.Repeat([]byte{0}, 400), buf.Bytes())
}

func TestSkipSamples(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSamples(&buf, []int16{1, 2, 3, 4, 5, 6}))

	require.NoError(t, SkipSamples(&buf, 2))

	rest := make([]int16, 2)
	require.NoError(t, ReadSamples(&buf, rest))
	assert.Equal(t, []int16{5, 6}, rest)

	assert.Error(t, SkipSamples(&buf, 1))
}

func TestDumpFormat(t *testing.T) {
	var buf bytes.Buffer
	NewStereo16Header(44100, 1000).Dump(&buf)

	out := buf.String()
	assert.Contains(t, out, "   chunkID:\tRIFF\n")
	assert.Contains(t, out, "    format:\tWAVE\n")
	assert.Contains(t, out, "  sampRate:\t44100\n")
	assert.Contains(t, out, " chunkSize:\t1000\n")
}
