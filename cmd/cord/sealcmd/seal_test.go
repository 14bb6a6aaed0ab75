// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sealcmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunSeal_GenerateKeyWritesPrivateKeyAndPrintsPublicKey(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "mykey.txt")

	var out bytes.Buffer
	if err := runSeal(&sealParams{GenerateKey: keyPath}, nil, &out); err != nil {
		t.Fatalf("runSeal: %v", err)
	}

	publicKey := strings.TrimSpace(out.String())
	if !strings.HasPrefix(publicKey, "age1") {
		t.Fatalf("printed public key = %q, want an age1... prefix", publicKey)
	}

	keyBytes, err := os.ReadFile(keyPath)
	if err != nil {
		t.Fatalf("reading private key file: %v", err)
	}
	if !strings.HasPrefix(string(keyBytes), "AGE-SECRET-KEY-1") {
		t.Fatalf("private key file = %q, want an AGE-SECRET-KEY-1... prefix", keyBytes)
	}
}

func TestRunSeal_SealUnsealRoundTrip(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "mykey.txt")

	var keygenOut bytes.Buffer
	if err := runSeal(&sealParams{GenerateKey: keyPath}, nil, &keygenOut); err != nil {
		t.Fatalf("runSeal (generate-key): %v", err)
	}
	publicKey := strings.TrimSpace(keygenOut.String())

	schemaPath := filepath.Join(dir, "widget.yaml")
	if err := os.WriteFile(schemaPath, []byte(""+
		"kind: struct\n"+
		"fields:\n"+
		"  - name: id\n"+
		"    schema:\n"+
		"      kind: uint\n"+
		"      width: 32\n"+
		"  - name: name\n"+
		"    schema:\n"+
		"      kind: string\n"), 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}
	recordPath := filepath.Join(dir, "record.json")
	if err := os.WriteFile(recordPath, []byte(`{"id":7,"name":"widget"}`), 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}

	var sealedOut bytes.Buffer
	sealArgs := sealParams{Schema: schemaPath, Recipients: []string{publicKey}}
	if err := runSeal(&sealArgs, []string{recordPath}, &sealedOut); err != nil {
		t.Fatalf("runSeal: %v", err)
	}
	sealedPath := filepath.Join(dir, "record.sealed")
	if err := os.WriteFile(sealedPath, sealedOut.Bytes(), 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}

	var unsealedOut bytes.Buffer
	unsealArgs := unsealParams{Key: keyPath, Schema: schemaPath, Compact: true}
	if err := runUnseal(&unsealArgs, []string{sealedPath}, &unsealedOut); err != nil {
		t.Fatalf("runUnseal: %v", err)
	}

	if !strings.Contains(unsealedOut.String(), "widget") {
		t.Fatalf("unsealed output = %q, want it to contain \"widget\"", unsealedOut.String())
	}
}

func TestRunSeal_NoRecipientsRejected(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "flag.yaml")
	if err := os.WriteFile(schemaPath, []byte("kind: bool\n"), 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}

	var out bytes.Buffer
	if err := runSeal(&sealParams{Schema: schemaPath}, nil, &out); err == nil {
		t.Fatal("runSeal with no recipients succeeded, want an error")
	}
}
