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

//go:build amd64

// This file declares the x86 AES-NI primitives. The actual instructions
// (AESENC/AESENCLAST/AESDEC/AESDECLAST/AESIMC) live in hw_amd64.s; Go code
// never touches them directly except through these //go:noescape stubs,
// exactly the pattern the teacher uses for its own hand-written amd64
// kernels (see internal/aes/hash_amd64.go's aesHash64/aesHashWide).
package aes

const hwArchAvailable = true

func hwAvailableNow() bool { return cpuHasAESNI() }

//go:noescape
//go:nosplit
func hwEncryptBlocks(schedule *byte, rounds int, blocks *byte, nblocks int)

//go:noescape
//go:nosplit
func hwDecryptBlocks(schedule *byte, rounds int, blocks *byte, nblocks int)

//go:noescape
//go:nosplit
func hwInvMixColumns(roundKey *byte)
