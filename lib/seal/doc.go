// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package seal provides age encryption and decryption for sealed
// payloads: typically the canonical Cord encoding of a value that must
// be stored or transmitted confidentially (a signing key, a bearer
// credential) rather than left in the clear alongside the rest of a
// Cord archive.
//
// Ciphertext is base64-encoded so it can sit in a text field (a JSON
// property, a YAML scalar) alongside unencrypted data. Callers pass
// plaintext []byte to [Encrypt] and receive a base64 string; [Decrypt]
// accepts a base64 string and returns plaintext. Private keys and
// decrypted plaintext are returned as [secret.Buffer] values backed by
// mmap memory outside the Go heap (locked against swap, excluded from
// core dumps, zeroed on Close).
//
// Key exports:
//
//   - [GenerateKeypair] -- new age x25519 keypair in a secret.Buffer
//   - [Encrypt] / [EncryptJSON] -- encrypt to age public key recipients
//   - [Decrypt] / [DecryptJSON] -- decrypt with a secret.Buffer key
//   - [ParsePublicKey] / [ParsePrivateKey] -- key validation
//
// Depends on [github.com/cord-format/cord/lib/secret] for secure
// memory allocation.
package seal
