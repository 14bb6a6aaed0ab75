// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"bytes"
	"testing"
)

func TestCompressionTag_StringAndParseRoundTrip(t *testing.T) {
	tags := []CompressionTag{CompressionNone, CompressionLZ4, CompressionZstd, CompressionBG4LZ4}
	for _, tag := range tags {
		parsed, err := ParseCompressionTag(tag.String())
		if err != nil {
			t.Fatalf("ParseCompressionTag(%q): %v", tag, err)
		}
		if parsed != tag {
			t.Fatalf("ParseCompressionTag(%q) = %v, want %v", tag, parsed, tag)
		}
	}
}

func TestParseCompressionTag_RejectsUnknown(t *testing.T) {
	if _, err := ParseCompressionTag("bogus"); err == nil {
		t.Fatal("ParseCompressionTag(\"bogus\") succeeded, want an error")
	}
}

func TestCompressDecompress_LZ4RoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 50)
	compressed, err := compressRecord(data, CompressionLZ4)
	if err != nil {
		t.Fatalf("compressRecord(lz4): %v", err)
	}
	if len(compressed) >= len(data) {
		t.Fatalf("lz4 compressed size %d not smaller than input %d", len(compressed), len(data))
	}

	decompressed, err := decompressRecord(compressed, CompressionLZ4, len(data))
	if err != nil {
		t.Fatalf("decompressRecord(lz4): %v", err)
	}
	if !bytes.Equal(decompressed, data) {
		t.Fatal("lz4 round trip did not reproduce the original data")
	}
}

func TestCompressDecompress_ZstdRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte(`{"variant":"Public","payload":null}`), 80)
	compressed, err := compressRecord(data, CompressionZstd)
	if err != nil {
		t.Fatalf("compressRecord(zstd): %v", err)
	}

	decompressed, err := decompressRecord(compressed, CompressionZstd, len(data))
	if err != nil {
		t.Fatalf("decompressRecord(zstd): %v", err)
	}
	if !bytes.Equal(decompressed, data) {
		t.Fatal("zstd round trip did not reproduce the original data")
	}
}

func TestCompressDecompress_BG4LZ4RoundTrip(t *testing.T) {
	data := make([]byte, 0, 404)
	for i := uint32(0); i < 100; i++ {
		data = append(data, byte(i), byte(i>>8), byte(i>>16), byte(i>>24))
	}
	data = append(data, 1, 2, 3) // trailing bytes not a multiple of 4

	compressed, err := compressRecord(data, CompressionBG4LZ4)
	if err != nil {
		t.Fatalf("compressRecord(bg4_lz4): %v", err)
	}

	decompressed, err := decompressRecord(compressed, CompressionBG4LZ4, len(data))
	if err != nil {
		t.Fatalf("decompressRecord(bg4_lz4): %v", err)
	}
	if !bytes.Equal(decompressed, data) {
		t.Fatal("bg4_lz4 round trip did not reproduce the original data")
	}
}

func TestCompressRecord_NoneIsIdentity(t *testing.T) {
	data := []byte("arbitrary bytes")
	compressed, err := compressRecord(data, CompressionNone)
	if err != nil {
		t.Fatalf("compressRecord(none): %v", err)
	}
	if !bytes.Equal(compressed, data) {
		t.Fatal("CompressionNone must return the input unchanged")
	}
}

func TestDecompressRecord_NoneSizeMismatchRejected(t *testing.T) {
	if _, err := decompressRecord([]byte("abc"), CompressionNone, 10); err == nil {
		t.Fatal("decompressRecord(none) with a mismatched size succeeded, want an error")
	}
}

func TestSelectCompression_EmptyIsNone(t *testing.T) {
	if tag := SelectCompression(nil); tag != CompressionNone {
		t.Fatalf("SelectCompression(nil) = %v, want %v", tag, CompressionNone)
	}
}

func TestSelectCompression_HighlyRedundantPrefersZstdOrLZ4(t *testing.T) {
	data := bytes.Repeat([]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"), 200)
	tag := SelectCompression(data)
	if tag != CompressionZstd && tag != CompressionLZ4 {
		t.Fatalf("SelectCompression(highly redundant data) = %v, want zstd or lz4", tag)
	}
}

func TestBG4Transpose_Untranspose_RoundTrip(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	transposed := bg4Transpose(data)
	if len(transposed) != len(data) {
		t.Fatalf("bg4Transpose changed length: got %d, want %d", len(transposed), len(data))
	}
	untransposed := bg4Untranspose(transposed)
	if !bytes.Equal(untransposed, data) {
		t.Fatalf("bg4Untranspose(bg4Transpose(x)) = %v, want %v", untransposed, data)
	}
}
