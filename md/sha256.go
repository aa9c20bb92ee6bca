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

var sha256Const = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

func sha256InitState() []uint64 {
	return []uint64{
		0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
		0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
	}
}

func sha224InitState() []uint64 {
	return []uint64{
		0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
		0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
	}
}

func rotr32(x uint32, n uint32) uint32 { return x>>n | x<<(32-n) }

func sha256Compress(state []uint64, block []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = uint32(block[4*i])<<24 | uint32(block[4*i+1])<<16 |
			uint32(block[4*i+2])<<8 | uint32(block[4*i+3])
	}
	for i := 16; i < 64; i++ {
		s0 := rotr32(w[i-15], 7) ^ rotr32(w[i-15], 18) ^ (w[i-15] >> 3)
		s1 := rotr32(w[i-2], 17) ^ rotr32(w[i-2], 19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d := uint32(state[0]), uint32(state[1]), uint32(state[2]), uint32(state[3])
	e, f, g, h := uint32(state[4]), uint32(state[5]), uint32(state[6]), uint32(state[7])

	for i := 0; i < 64; i++ {
		s1 := rotr32(e, 6) ^ rotr32(e, 11) ^ rotr32(e, 25)
		ch := (e & f) ^ (^e & g)
		temp1 := h + s1 + ch + sha256Const[i] + w[i]
		s0 := rotr32(a, 2) ^ rotr32(a, 13) ^ rotr32(a, 22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		temp2 := s0 + maj

		h, g, f = g, f, e
		e = d + temp1
		d, c, b = c, b, a
		a = temp1 + temp2
	}

	state[0] = uint64(uint32(state[0]) + a)
	state[1] = uint64(uint32(state[1]) + b)
	state[2] = uint64(uint32(state[2]) + c)
	state[3] = uint64(uint32(state[3]) + d)
	state[4] = uint64(uint32(state[4]) + e)
	state[5] = uint64(uint32(state[5]) + f)
	state[6] = uint64(uint32(state[6]) + g)
	state[7] = uint64(uint32(state[7]) + h)
}

func sha256EncodeState(words int) func(state []uint64, out []byte) {
	return func(state []uint64, out []byte) {
		for i := 0; i < words; i++ {
			w := uint32(state[i])
			out[4*i] = byte(w >> 24)
			out[4*i+1] = byte(w >> 16)
			out[4*i+2] = byte(w >> 8)
			out[4*i+3] = byte(w)
		}
	}
}

var sha256Core = &core{
	name:        "SHA-256",
	blockLen:    64,
	digestLen:   32,
	counterLen:  8,
	bigEndian:   true,
	initState:   sha256InitState,
	compress:    sha256Compress,
	encodeState: sha256EncodeState(8),
}

var sha224Core = &core{
	name:        "SHA-224",
	blockLen:    64,
	digestLen:   28,
	counterLen:  8,
	bigEndian:   true,
	initState:   sha224InitState,
	compress:    sha256Compress,
	encodeState: sha256EncodeState(7),
}

// NewSHA256 returns a Variant computing the SHA-256 digest (FIPS 180-4).
func NewSHA256() *Variant { return newVariant(sha256Core) }

// NewSHA224 returns a Variant computing the SHA-224 digest: the SHA-256
// compression function with a distinct IV and a truncated output, per
// FIPS 180-4.
func NewSHA224() *Variant { return newVariant(sha224Core) }
