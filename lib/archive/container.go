// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"bytes"
	"fmt"
	"io"

	"github.com/cord-format/cord/lib/digest"
	"github.com/cord-format/cord/lib/wire"
)

// magic identifies a Cord archive container. Written once at the
// start of every container produced by [Pack].
var magic = [4]byte{'C', 'O', 'R', 'D'}

// formatVersion is the container format version, independent of
// Cord's own wire format version. Bumped when the record header
// layout changes.
const formatVersion = 1

// recordHeader precedes every record's payload bytes: a one-byte
// compression tag, then the uncompressed size and the on-wire
// (possibly compressed) size, each as a canonical uvarint.
type recordHeader struct {
	tag              CompressionTag
	uncompressedSize uint64
	wireSize         uint64
}

// Pack writes records to w as a single container: a 4-byte magic, a
// format version byte, then each record framed by [recordHeader] and
// its (possibly compressed) payload. Records are written in order and
// read back in the same order by [Unpack].
//
// Each record is compressed independently with [SelectCompression]'s
// heuristic; a record that does not shrink is stored under
// CompressionNone.
func Pack(w io.Writer, records [][]byte) error {
	if _, err := w.Write(magic[:]); err != nil {
		return fmt.Errorf("archive: writing magic: %w", err)
	}
	if _, err := w.Write([]byte{formatVersion}); err != nil {
		return fmt.Errorf("archive: writing format version: %w", err)
	}

	header := make([]byte, 0, 32)
	for index, record := range records {
		tag := SelectCompression(record)
		compressed, err := compressRecord(record, tag)
		if err != nil {
			if IsIncompressible(err) {
				tag = CompressionNone
				compressed = record
			} else {
				return fmt.Errorf("archive: compressing record %d: %w", index, err)
			}
		}

		header = header[:0]
		header = append(header, byte(tag))
		header = wire.AppendUvarint(header, uint64(len(record)), 64)
		header = wire.AppendUvarint(header, uint64(len(compressed)), 64)

		if _, err := w.Write(header); err != nil {
			return fmt.Errorf("archive: writing record %d header: %w", index, err)
		}
		if _, err := w.Write(compressed); err != nil {
			return fmt.Errorf("archive: writing record %d payload: %w", index, err)
		}
	}

	return nil
}

// Unpack reads a container written by [Pack] and returns its records
// in order, decompressed to their original bytes.
func Unpack(r io.Reader) ([][]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("archive: reading container: %w", err)
	}

	if len(data) < len(magic)+1 {
		return nil, fmt.Errorf("archive: container too short for header")
	}
	if !bytes.Equal(data[:len(magic)], magic[:]) {
		return nil, fmt.Errorf("archive: bad magic %q, want %q", data[:len(magic)], magic[:])
	}
	version := data[len(magic)]
	if version != formatVersion {
		return nil, fmt.Errorf("archive: unsupported format version %d", version)
	}

	pos := len(magic) + 1
	var records [][]byte

	for pos < len(data) {
		if pos >= len(data) {
			return nil, fmt.Errorf("archive: truncated record header at offset %d", pos)
		}
		tag := CompressionTag(data[pos])
		pos++

		uncompressedSize, n, err := wire.ConsumeUvarint(data[pos:], 64)
		if err != nil {
			return nil, fmt.Errorf("archive: record uncompressed size at offset %d: %w", pos, err)
		}
		pos += n

		wireSize, n, err := wire.ConsumeUvarint(data[pos:], 64)
		if err != nil {
			return nil, fmt.Errorf("archive: record wire size at offset %d: %w", pos, err)
		}
		pos += n

		if pos+int(wireSize) > len(data) {
			return nil, fmt.Errorf("archive: record payload at offset %d extends past end of container", pos)
		}
		payload := data[pos : pos+int(wireSize)]
		pos += int(wireSize)

		record, err := decompressRecord(payload, tag, int(uncompressedSize))
		if err != nil {
			return nil, fmt.Errorf("archive: decompressing record at offset %d: %w", pos, err)
		}
		records = append(records, record)
	}

	return records, nil
}

// PackWithDigest packs records exactly as [Pack] does, and additionally
// returns the [digest.MerkleRoot] over each record's [digest.HashChunk],
// in record order — a single hash that changes if any record's bytes,
// count, or order changes, suitable for a manifest or a signature.
func PackWithDigest(w io.Writer, records [][]byte) (digest.Hash, error) {
	if err := Pack(w, records); err != nil {
		return digest.Hash{}, err
	}
	return RecordsDigest(records), nil
}

// RecordsDigest computes the same Merkle root [PackWithDigest] would,
// without writing a container. Used to verify an unpacked container's
// records against a previously recorded digest.
func RecordsDigest(records [][]byte) digest.Hash {
	hashes := make([]digest.Hash, len(records))
	for i, record := range records {
		hashes[i] = digest.HashChunk(record)
	}
	if len(hashes) == 0 {
		return digest.HashChunk(nil)
	}
	return digest.MerkleRoot(hashes)
}
