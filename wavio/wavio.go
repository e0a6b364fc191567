// Package wavio reads and writes the fixed RIFF/WAVE container layout
// used by the tone-burst tools: a 44-byte header (whole-file
// descriptor, PCM format descriptor, data descriptor, always in that
// order) followed by interleaved 16-bit little-endian stereo samples.
//
// Every field is encoded and decoded explicitly in little-endian
// order; nothing relies on in-memory struct layout.
package wavio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Errors returned by header decoding.
var (
	ErrNotRIFF     = errors.New("wavio: missing RIFF tag")
	ErrNotWAVE     = errors.New("wavio: missing WAVE tag")
	ErrBadChunkTag = errors.New("wavio: unexpected chunk tag")
)

// Fixed format values for the files this package handles.
const (
	HeaderSize    = 44
	FormatPCM     = 1
	NumChannels   = 2
	BitsPerSample = 16
)

// ChunkHeader is the tag-and-size prefix shared by all chunks.
type ChunkHeader struct {
	ID   [4]byte
	Size uint32
}

// RIFFChunk is the whole-file descriptor.
type RIFFChunk struct {
	ChunkHeader
	Format [4]byte
}

// FmtChunk describes the PCM sample format.
type FmtChunk struct {
	ChunkHeader
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// DataChunk announces the sample stream that follows it.
type DataChunk struct {
	ChunkHeader
}

// Header is the complete fixed-order container header.
type Header struct {
	RIFF RIFFChunk
	Fmt  FmtChunk
	Data DataChunk
}

// NewStereo16Header builds the header for a 16-bit stereo PCM file
// holding dataBytes of sample data.
func NewStereo16Header(sampleRate int, dataBytes uint32) Header {
	var h Header

	copy(h.RIFF.ID[:], "RIFF")
	h.RIFF.Size = dataBytes + 36
	copy(h.RIFF.Format[:], "WAVE")

	copy(h.Fmt.ID[:], "fmt ")
	h.Fmt.Size = 16
	h.Fmt.AudioFormat = FormatPCM
	h.Fmt.Channels = NumChannels
	h.Fmt.SampleRate = uint32(sampleRate)
	h.Fmt.ByteRate = uint32(NumChannels * sampleRate * BitsPerSample / 8)
	h.Fmt.BlockAlign = NumChannels * BitsPerSample / 8
	h.Fmt.BitsPerSample = BitsPerSample

	copy(h.Data.ID[:], "data")
	h.Data.Size = dataBytes

	return h
}

// WriteTo encodes the header field by field. It implements
// [io.WriterTo].
func (h Header) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 0, HeaderSize)

	buf = append(buf, h.RIFF.ID[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, h.RIFF.Size)
	buf = append(buf, h.RIFF.Format[:]...)

	buf = append(buf, h.Fmt.ID[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, h.Fmt.Size)
	buf = binary.LittleEndian.AppendUint16(buf, h.Fmt.AudioFormat)
	buf = binary.LittleEndian.AppendUint16(buf, h.Fmt.Channels)
	buf = binary.LittleEndian.AppendUint32(buf, h.Fmt.SampleRate)
	buf = binary.LittleEndian.AppendUint32(buf, h.Fmt.ByteRate)
	buf = binary.LittleEndian.AppendUint16(buf, h.Fmt.BlockAlign)
	buf = binary.LittleEndian.AppendUint16(buf, h.Fmt.BitsPerSample)

	buf = append(buf, h.Data.ID[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, h.Data.Size)

	n, err := w.Write(buf)
	if err != nil {
		return int64(n), fmt.Errorf("wavio: header write failed: %w", err)
	}

	return int64(n), nil
}

// ReadHeader decodes and validates the fixed 44-byte header.
func ReadHeader(r io.Reader) (Header, error) {
	buf := make([]byte, HeaderSize)

	_, err := io.ReadFull(r, buf)
	if err != nil {
		return Header{}, fmt.Errorf("wavio: short header read: %w", err)
	}

	var h Header

	copy(h.RIFF.ID[:], buf[0:4])
	h.RIFF.Size = binary.LittleEndian.Uint32(buf[4:8])
	copy(h.RIFF.Format[:], buf[8:12])

	copy(h.Fmt.ID[:], buf[12:16])
	h.Fmt.Size = binary.LittleEndian.Uint32(buf[16:20])
	h.Fmt.AudioFormat = binary.LittleEndian.Uint16(buf[20:22])
	h.Fmt.Channels = binary.LittleEndian.Uint16(buf[22:24])
	h.Fmt.SampleRate = binary.LittleEndian.Uint32(buf[24:28])
	h.Fmt.ByteRate = binary.LittleEndian.Uint32(buf[28:32])
	h.Fmt.BlockAlign = binary.LittleEndian.Uint16(buf[32:34])
	h.Fmt.BitsPerSample = binary.LittleEndian.Uint16(buf[34:36])

	copy(h.Data.ID[:], buf[36:40])
	h.Data.Size = binary.LittleEndian.Uint32(buf[40:44])

	switch {
	case string(h.RIFF.ID[:]) != "RIFF":
		return h, ErrNotRIFF
	case string(h.RIFF.Format[:]) != "WAVE":
		return h, ErrNotWAVE
	case string(h.Fmt.ID[:]) != "fmt ":
		return h, fmt.Errorf("%w: %q", ErrBadChunkTag, h.Fmt.ID[:])
	case string(h.Data.ID[:]) != "data":
		return h, fmt.Errorf("%w: %q", ErrBadChunkTag, h.Data.ID[:])
	}

	return h, nil
}

// Dump writes the header fields in the label-per-line report format.
func (h Header) Dump(w io.Writer) {
	fmt.Fprintf(w, "   chunkID:\t%s\n", h.RIFF.ID[:])
	fmt.Fprintf(w, " chunkSize:\t%d\n", h.RIFF.Size)
	fmt.Fprintf(w, "    format:\t%s\n", h.RIFF.Format[:])

	fmt.Fprintf(w, "   chunkID:\t%s\n", h.Fmt.ID[:])
	fmt.Fprintf(w, " chunkSize:\t%d\n", h.Fmt.Size)
	fmt.Fprintf(w, "   fmtCode:\t%d\n", h.Fmt.AudioFormat)
	fmt.Fprintf(w, "   numChan:\t%d\n", h.Fmt.Channels)
	fmt.Fprintf(w, "  sampRate:\t%d\n", h.Fmt.SampleRate)
	fmt.Fprintf(w, "  byteRate:\t%d\n", h.Fmt.ByteRate)
	fmt.Fprintf(w, "blockAlign:\t%d\n", h.Fmt.BlockAlign)
	fmt.Fprintf(w, "  bitsSamp:\t%d\n", h.Fmt.BitsPerSample)

	fmt.Fprintf(w, "   chunkID:\t%s\n", h.Data.ID[:])
	fmt.Fprintf(w, " chunkSize:\t%d\n", h.Data.Size)
}

// WriteSamples encodes interleaved 16-bit samples little-endian.
func WriteSamples(w io.Writer, samples []int16) error {
	buf := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(s))
	}

	_, err := w.Write(buf)
	if err != nil {
		return fmt.Errorf("wavio: sample write failed: %w", err)
	}

	return nil
}

// ReadSamples fills samples from interleaved little-endian data,
// failing if the stream ends early.
func ReadSamples(r io.Reader, samples []int16) error {
	buf := make([]byte, 2*len(samples))

	_, err := io.ReadFull(r, buf)
	if err != nil {
		return fmt.Errorf("wavio: short sample read: %w", err)
	}

	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(buf[2*i:]))
	}

	return nil
}

// WriteSilence writes the given number of zero-valued sample pairs.
func WriteSilence(w io.Writer, pairs int) error {
	buf := make([]byte, 2*NumChannels*pairs)

	_, err := w.Write(buf)
	if err != nil {
		return fmt.Errorf("wavio: sample write failed: %w", err)
	}

	return nil
}

// SkipSamples discards the given number of sample pairs, failing if
// the stream ends early.
func SkipSamples(r io.Reader, pairs int) error {
	_, err := io.CopyN(io.Discard, r, int64(2*NumChannels*pairs))
	if err != nil {
		return fmt.Errorf("wavio: short sample read: %w", err)
	}

	return nil
}
