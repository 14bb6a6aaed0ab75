// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionTag identifies the compression algorithm applied to one
// archive record. Tags are stored in the record header (one byte
// each). These values are wire constants — changing them breaks
// container compatibility.
type CompressionTag uint8

const (
	// CompressionNone indicates an uncompressed record. Used for
	// records that are already small or that compress poorly (a
	// record dominated by a BLAKE3 digest or other high-entropy
	// bytes).
	CompressionNone CompressionTag = 0

	// CompressionLZ4 indicates LZ4 block compression: fast, modest
	// ratio. [SelectCompression] picks it when the zstd probe ratio is
	// at least 1.1x but below 1.5x.
	CompressionLZ4 CompressionTag = 1

	// CompressionZstd indicates zstd compression at the default
	// level: better ratios for text-like records (string-heavy
	// structs, sequences of repeated enum variants).
	CompressionZstd CompressionTag = 2

	// CompressionBG4LZ4 indicates ByteGrouping4 + LZ4: the record is
	// transposed into four byte-position groups before LZ4
	// compression. Effective for records that are predominantly a
	// seq of fixed-width 4-byte values (uint32/int32 columns) where
	// adjacent elements share high-order bytes.
	CompressionBG4LZ4 CompressionTag = 3
)

// String returns the human-readable name of a compression tag.
func (tag CompressionTag) String() string {
	switch tag {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	case CompressionBG4LZ4:
		return "bg4_lz4"
	default:
		return fmt.Sprintf("unknown(%d)", tag)
	}
}

// ParseCompressionTag parses a compression tag from its string
// representation.
func ParseCompressionTag(name string) (CompressionTag, error) {
	switch name {
	case "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZstd, nil
	case "bg4_lz4":
		return CompressionBG4LZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression tag: %q", name)
	}
}

// compressRecord compresses data using the specified algorithm.
// Returns the compressed bytes. For CompressionNone, returns the
// input unchanged (no copy).
func compressRecord(data []byte, tag CompressionTag) ([]byte, error) {
	switch tag {
	case CompressionNone:
		return data, nil
	case CompressionLZ4:
		return compressLZ4(data)
	case CompressionZstd:
		return compressZstd(data)
	case CompressionBG4LZ4:
		return compressBG4LZ4(data)
	default:
		return nil, fmt.Errorf("unsupported compression tag: %d", tag)
	}
}

// decompressRecord decompresses data that was compressed with the
// specified algorithm. uncompressedSize must match the original data
// length exactly — a mismatch is an error, not a truncated result.
func decompressRecord(compressed []byte, tag CompressionTag, uncompressedSize int) ([]byte, error) {
	switch tag {
	case CompressionNone:
		if len(compressed) != uncompressedSize {
			return nil, fmt.Errorf("uncompressed record: size %d does not match expected %d",
				len(compressed), uncompressedSize)
		}
		return compressed, nil
	case CompressionLZ4:
		return decompressLZ4(compressed, uncompressedSize)
	case CompressionZstd:
		return decompressZstd(compressed, uncompressedSize)
	case CompressionBG4LZ4:
		return decompressBG4LZ4(compressed, uncompressedSize)
	default:
		return nil, fmt.Errorf("unsupported compression tag: %d", tag)
	}
}

func compressLZ4(data []byte) ([]byte, error) {
	bound := lz4.CompressBlockBound(len(data))
	destination := make([]byte, bound)

	written, err := lz4.CompressBlock(data, destination, nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}

	// CompressBlock returns 0 when it determines the data is
	// incompressible; also reject output that isn't actually smaller.
	if written == 0 || written >= len(data) {
		return nil, errIncompressible
	}

	return destination[:written], nil
}

func decompressLZ4(compressed []byte, uncompressedSize int) ([]byte, error) {
	destination := make([]byte, uncompressedSize)
	read, err := lz4.UncompressBlock(compressed, destination)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}
	if read != uncompressedSize {
		return nil, fmt.Errorf("lz4 decompress: got %d bytes, expected %d", read, uncompressedSize)
	}
	return destination, nil
}

// zstdEncoder and zstdDecoder are reused across calls to avoid
// repeated initialization overhead. Both are safe for concurrent use.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("archive: zstd encoder initialization failed: " + err.Error())
	}

	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("archive: zstd decoder initialization failed: " + err.Error())
	}
}

func compressZstd(data []byte) ([]byte, error) {
	compressed := zstdEncoder.EncodeAll(data, nil)
	if len(compressed) >= len(data) {
		return nil, errIncompressible
	}
	return compressed, nil
}

func decompressZstd(compressed []byte, uncompressedSize int) ([]byte, error) {
	destination := make([]byte, 0, uncompressedSize)
	result, err := zstdDecoder.DecodeAll(compressed, destination)
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	if len(result) != uncompressedSize {
		return nil, fmt.Errorf("zstd decompress: got %d bytes, expected %d", len(result), uncompressedSize)
	}
	return result, nil
}

// ByteGrouping4 + LZ4: transpose the record into four byte-position
// groups before LZ4 compression, grouping all byte-0s together, then
// all byte-1s, and so on. Effective when the record is a packed
// sequence of fixed-width 4-byte values whose high-order bytes repeat
// across elements.

func compressBG4LZ4(data []byte) ([]byte, error) {
	transposed := bg4Transpose(data)
	return compressLZ4(transposed)
}

func decompressBG4LZ4(compressed []byte, uncompressedSize int) ([]byte, error) {
	transposed, err := decompressLZ4(compressed, uncompressedSize)
	if err != nil {
		return nil, err
	}
	return bg4Untranspose(transposed), nil
}

// bg4Transpose rearranges data so all byte-position-0 values come
// first, then all byte-position-1 values, and so on, in groups of 4.
// Trailing bytes beyond the last full group of 4 are appended as-is.
func bg4Transpose(data []byte) []byte {
	length := len(data)
	groupCount := length / 4
	remainder := length % 4

	output := make([]byte, length)

	for i := 0; i < groupCount; i++ {
		output[i] = data[i*4]
		output[groupCount+i] = data[i*4+1]
		output[groupCount*2+i] = data[i*4+2]
		output[groupCount*3+i] = data[i*4+3]
	}
	for i := 0; i < remainder; i++ {
		output[groupCount*4+i] = data[groupCount*4+i]
	}

	return output
}

// bg4Untranspose reverses bg4Transpose.
func bg4Untranspose(data []byte) []byte {
	length := len(data)
	groupCount := length / 4
	remainder := length % 4

	output := make([]byte, length)

	for i := 0; i < groupCount; i++ {
		output[i*4] = data[i]
		output[i*4+1] = data[groupCount+i]
		output[i*4+2] = data[groupCount*2+i]
		output[i*4+3] = data[groupCount*3+i]
	}
	for i := 0; i < remainder; i++ {
		output[groupCount*4+i] = data[groupCount*4+i]
	}

	return output
}

// errIncompressible is returned by compression functions when the
// compressed output is not smaller than the input. Callers fall back
// to CompressionNone.
var errIncompressible = fmt.Errorf("data is incompressible")

// IsIncompressible reports whether err indicates that data could not
// be compressed smaller than its original size.
func IsIncompressible(err error) bool {
	return err == errIncompressible
}

// SelectCompression probes data to determine the best compression
// algorithm. It tries zstd first: if the ratio exceeds 1.5x, zstd is
// selected. If the ratio is between 1.1x and 1.5x, LZ4 is selected
// (faster with an acceptable ratio). Below 1.1x, the data is
// considered incompressible.
func SelectCompression(data []byte) CompressionTag {
	if len(data) == 0 {
		return CompressionNone
	}

	compressed := zstdEncoder.EncodeAll(data, nil)
	ratio := float64(len(data)) / float64(len(compressed))

	switch {
	case ratio >= 1.5:
		return CompressionZstd
	case ratio >= 1.1:
		return CompressionLZ4
	default:
		return CompressionNone
	}
}
