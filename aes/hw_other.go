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

//go:build !amd64 && !arm64

// On architectures with no hardware AES path, the package always runs the
// portable implementation; these stubs exist only so dispatch.go can refer
// to hwEncryptBlocks/hwDecryptBlocks uniformly across architectures. They
// are never called: hwArchAvailable is false here, so dispatch.go always
// selects the portable engine.
package aes

const hwArchAvailable = false

func hwAvailableNow() bool { return false }

func hwEncryptBlocks(schedule *byte, rounds int, blocks *byte, nblocks int) {
	panic("aes: hardware path invoked on an architecture without one")
}

func hwDecryptBlocks(schedule *byte, rounds int, blocks *byte, nblocks int) {
	panic("aes: hardware path invoked on an architecture without one")
}

func hwInvMixColumns(roundKey *byte) {
	panic("aes: hardware path invoked on an architecture without one")
}
