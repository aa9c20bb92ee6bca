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

package md

func sha1InitState() []uint64 {
	return []uint64{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476, 0xC3D2E1F0}
}

func sha1Compress(state []uint64, block []byte) {
	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = uint32(block[4*i])<<24 | uint32(block[4*i+1])<<16 |
			uint32(block[4*i+2])<<8 | uint32(block[4*i+3])
	}
	for i := 16; i < 80; i++ {
		w[i] = rotl32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, d, e := uint32(state[0]), uint32(state[1]), uint32(state[2]), uint32(state[3]), uint32(state[4])

	for i := 0; i < 80; i++ {
		var f, k uint32
		switch {
		case i < 20:
			f = (b & c) | (^b & d)
			k = 0x5A827999
		case i < 40:
			f = b ^ c ^ d
			k = 0x6ED9EBA1
		case i < 60:
			f = (b & c) | (b & d) | (c & d)
			k = 0x8F1BBCDC
		default:
			f = b ^ c ^ d
			k = 0xCA62C1D6
		}
		temp := rotl32(a, 5) + f + e + k + w[i]
		e, d, c, b, a = d, c, rotl32(b, 30), a, temp
	}

	state[0] = uint64(uint32(state[0]) + a)
	state[1] = uint64(uint32(state[1]) + b)
	state[2] = uint64(uint32(state[2]) + c)
	state[3] = uint64(uint32(state[3]) + d)
	state[4] = uint64(uint32(state[4]) + e)
}

func sha1EncodeState(state []uint64, out []byte) {
	for i := 0; i < 5; i++ {
		w := uint32(state[i])
		out[4*i] = byte(w >> 24)
		out[4*i+1] = byte(w >> 16)
		out[4*i+2] = byte(w >> 8)
		out[4*i+3] = byte(w)
	}
}

var sha1Core = &core{
	name:        "SHA-1",
	blockLen:    64,
	digestLen:   20,
	counterLen:  8,
	bigEndian:   true,
	initState:   sha1InitState,
	compress:    sha1Compress,
	encodeState: sha1EncodeState,
}

// NewSHA1 returns a Variant computing the SHA-1 digest (FIPS 180-4). SHA-1
// is not collision resistant; keep it only for interoperability with
// legacy formats and protocols.
func NewSHA1() *Variant { return newVariant(sha1Core) }
