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

// This file resolves, once per process, which of the portable or hardware
// block primitives a KeySchedule should use, and drives bulk operations over
// that choice. The selection is made by filling a small struct of function
// pointers at package init time rather than branching on a feature flag
// inside every call, so the hot encrypt/decrypt loop never pays for the
// CPUID check more than once.
package aes

import "github.com/hwcrypto/primitives/internal/cpufeature"

func cpuHasAESNI() bool {
	return cpufeature.Available(cpufeature.FeatureAESHW)
}

// engine is the function-pointer table a KeySchedule dispatches through.
// encryptBlocks/decryptBlocks process every whole 16-byte block of blocks in
// place; invMixColumns transforms a single round key, used only while
// building a decryption schedule.
type engine struct {
	name          string
	encryptBlocks func(schedule []byte, rounds int, blocks []byte)
	decryptBlocks func(schedule []byte, rounds int, blocks []byte)
	invMixColumns func(roundKey []byte)
}

var portableEngine = engine{
	name:          "portable",
	encryptBlocks: portableEncryptBlocks,
	decryptBlocks: portableDecryptBlocks,
	invMixColumns: invMixColumnsBytes,
}

var hardwareEngine = engine{
	name:          "hardware",
	encryptBlocks: hardwareEncryptBlocks,
	decryptBlocks: hardwareDecryptBlocks,
	invMixColumns: hardwareInvMixColumns,
}

// selectedEngine is resolved once at init time from a runtime CPU feature
// probe; every KeySchedule built afterward shares this same choice.
var selectedEngine = func() *engine {
	if hwArchAvailable && cpuHasAESNI() {
		return &hardwareEngine
	}
	return &portableEngine
}()

func portableEncryptBlocks(schedule []byte, rounds int, blocks []byte) {
	for off := 0; off+16 <= len(blocks); off += 16 {
		block := (*[16]byte)(blocks[off : off+16])
		encryptBlockPortable(block, schedule, rounds)
	}
}

func portableDecryptBlocks(schedule []byte, rounds int, blocks []byte) {
	for off := 0; off+16 <= len(blocks); off += 16 {
		block := (*[16]byte)(blocks[off : off+16])
		decryptBlockPortable(block, schedule, rounds)
	}
}

func hardwareEncryptBlocks(schedule []byte, rounds int, blocks []byte) {
	n := len(blocks) / 16
	if n == 0 {
		return
	}
	hwEncryptBlocks(&schedule[0], rounds, &blocks[0], n)
}

func hardwareDecryptBlocks(schedule []byte, rounds int, blocks []byte) {
	n := len(blocks) / 16
	if n == 0 {
		return
	}
	hwDecryptBlocks(&schedule[0], rounds, &blocks[0], n)
}

func hardwareInvMixColumns(roundKey []byte) {
	hwInvMixColumns(&roundKey[0])
}

// inverseKey builds a decryption schedule from an encryption schedule using
// whichever InvMixColumns the selected engine provides; the reversal loop
// itself has no hardware/portable distinction, only the per-round-key
// transform does.
func inverseKey(v Variant, schedule []byte) {
	nr := v.Rounds()
	for i, j := 0, nr*16; i < j; i, j = i+16, j-16 {
		for k := 0; k < 16; k++ {
			schedule[i+k], schedule[j+k] = schedule[j+k], schedule[i+k]
		}
	}
	for round := 1; round < nr; round++ {
		selectedEngine.invMixColumns(schedule[round*16 : round*16+16])
	}
}
