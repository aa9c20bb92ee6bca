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

// md5Const is the table of constants K[i] = floor(abs(sin(i+1)) * 2^32),
// used one per round across MD5's 64 rounds.
var md5Const = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

var md5Shift = [64]uint32{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

func md5InitState() []uint64 {
	return []uint64{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}
}

func rotl32(x uint32, n uint32) uint32 { return x<<n | x>>(32-n) }

func md5Compress(state []uint64, block []byte) {
	var m [16]uint32
	for i := 0; i < 16; i++ {
		m[i] = uint32(block[4*i]) | uint32(block[4*i+1])<<8 |
			uint32(block[4*i+2])<<16 | uint32(block[4*i+3])<<24
	}

	a, b, c, d := uint32(state[0]), uint32(state[1]), uint32(state[2]), uint32(state[3])

	for i := 0; i < 64; i++ {
		var f uint32
		var g int
		switch {
		case i < 16:
			f = (b & c) | (^b & d)
			g = i
		case i < 32:
			f = (d & b) | (^d & c)
			g = (5*i + 1) % 16
		case i < 48:
			f = b ^ c ^ d
			g = (3*i + 5) % 16
		default:
			f = c ^ (b | ^d)
			g = (7 * i) % 16
		}
		f = f + a + md5Const[i] + m[g]
		a, d, c = d, c, b
		b = b + rotl32(f, md5Shift[i])
	}

	state[0] = uint64(uint32(state[0]) + a)
	state[1] = uint64(uint32(state[1]) + b)
	state[2] = uint64(uint32(state[2]) + c)
	state[3] = uint64(uint32(state[3]) + d)
}

func md5EncodeState(state []uint64, out []byte) {
	for i := 0; i < 4; i++ {
		w := uint32(state[i])
		out[4*i] = byte(w)
		out[4*i+1] = byte(w >> 8)
		out[4*i+2] = byte(w >> 16)
		out[4*i+3] = byte(w >> 24)
	}
}

var md5Core = &core{
	name:        "MD5",
	blockLen:    64,
	digestLen:   16,
	counterLen:  8,
	bigEndian:   false,
	initState:   md5InitState,
	compress:    md5Compress,
	encodeState: md5EncodeState,
}

// NewMD5 returns a Variant computing the MD5 digest (RFC 1321). MD5 is
// cryptographically broken for collision resistance; it is offered here
// only as a Merkle-Damgard family member for interoperability with legacy
// protocols, never as a recommended default.
func NewMD5() *Variant { return newVariant(md5Core) }
