// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package codebook

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/intel/naryhuff/internal/codec"
)

// Digest is a BLAKE3 fingerprint of a codebook.
type Digest [32]byte

// String returns the short form printed next to code tables.
func (d Digest) String() string {
	return "cb-" + hex.EncodeToString(d[:6])
}

// Hex returns the full digest.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// ASCII domain name, zero padded to the 32 byte BLAKE3 key size.
var fingerprintKey = [32]byte{
	'n', 'a', 'r', 'y', 'h', 'u', 'f', 'f', '.', 'c', 'o', 'd', 'e', 'b', 'o', 'o',
	'k', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Fingerprint hashes the canonical CBOR form of the codebook. Codebooks
// that produce the same codes fingerprint the same regardless of file
// format, entry order, or whether a byte was written as a symbol.
func (c *Codebook) Fingerprint() (Digest, error) {
	canon, err := c.canonical()
	if err != nil {
		return Digest{}, err
	}
	data, err := codec.Marshal(canon)
	if err != nil {
		return Digest{}, err
	}
	hasher, err := blake3.NewKeyed(fingerprintKey[:])
	if err != nil {
		panic("codebook: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var d Digest
	copy(d[:], hasher.Sum(nil))
	return d, nil
}
