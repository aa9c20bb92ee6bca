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

// Package aes implements the AES block cipher (128/192/256-bit key
// variants) with a portable table-driven core and hardware-accelerated
// paths for x86 (AES-NI) and ARMv8 (the Cryptography Extension), selected
// by runtime feature detection. It covers only the raw block cipher and
// key schedule: modes of operation (CBC, CTR, GCM, ...) are out of scope.
package aes

// Variant identifies one of the three AES key lengths. It is a closed set;
// there is no "generic" or variable-width AES.
type Variant int

const (
	AES128 Variant = iota
	AES192
	AES256
)

// BlockSize is the fixed 16-byte AES block size, common to all variants.
const BlockSize = 16

// KeyLength returns the user key length in bytes for the variant.
func (v Variant) KeyLength() int {
	switch v {
	case AES128:
		return 16
	case AES192:
		return 24
	case AES256:
		return 32
	default:
		panic("aes: invalid variant")
	}
}

// Rounds returns the number of AES rounds for the variant.
func (v Variant) Rounds() int {
	switch v {
	case AES128:
		return 10
	case AES192:
		return 12
	case AES256:
		return 14
	default:
		panic("aes: invalid variant")
	}
}

// ScheduleLength returns the expanded key schedule length in bytes:
// (Rounds()+1) * BlockSize round keys.
func (v Variant) ScheduleLength() int {
	return (v.Rounds() + 1) * BlockSize
}

// String returns a human-readable variant name.
func (v Variant) String() string {
	switch v {
	case AES128:
		return "AES-128"
	case AES192:
		return "AES-192"
	case AES256:
		return "AES-256"
	default:
		return "AES-invalid"
	}
}
