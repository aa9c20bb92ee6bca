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

//go:build arm64

// This file declares the ARMv8 Cryptography Extension primitives
// (AESE/AESD/AESMC/AESIMC). The actual instructions live in hw_arm64.s.
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
