// Copyright (C) 2024 hwcrypto Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package hkdf implements the Expand half of RFC 5869's HMAC-based key
// derivation function. Extract is intentionally not provided: callers that
// already hold a uniformly-random or previously-extracted key (a PRK) can
// go straight to Expand, and folding Extract in would just be "compute an
// HMAC" wearing a different name.
package hkdf

import (
	"github.com/hwcrypto/primitives/cryptoerr"
	"github.com/hwcrypto/primitives/hmac"
	"github.com/hwcrypto/primitives/md"
)

// maxExpandFactor bounds output length to 255 times the underlying hash's
// digest size, per RFC 5869 section 2.3.
const maxExpandFactor = 255

// Expand derives length bytes of output key material from prk and info
// using the hash family produced by newHash. prk must be at least as long
// as the hash's digest size (RFC 5869 requires it to be a uniformly random
// or pseudorandom key of at least that length); length must not exceed
// 255 times the digest size.
func Expand(newHash hmac.NewFunc, prk, info []byte, length int) ([]byte, error) {
	hashLen := newHash().Size()
	if len(prk) < hashLen {
		return nil, cryptoerr.NewClass("prk", "at least the hash's digest length", len(prk))
	}
	if length > maxExpandFactor*hashLen {
		return nil, cryptoerr.NewClass("length", "at most 255 times the hash's digest length", length)
	}

	okm := make([]byte, 0, length+hashLen)
	var prev []byte
	base := hmac.New(newHash, prk)

	for counter := byte(1); len(okm) < length; counter++ {
		step := base.Clone()
		step.Write(prev)
		step.Write(info)
		step.Write([]byte{counter})
		prev = step.Sum(nil)
		okm = append(okm, prev...)
	}
	return okm[:length], nil
}

// ExpandSHA256 is a convenience wrapper around Expand fixed to SHA-256,
// the most commonly used HKDF hash.
func ExpandSHA256(prk, info []byte, length int) ([]byte, error) {
	return Expand(md.NewSHA256, prk, info, length)
}
