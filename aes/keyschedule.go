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

package aes

import "github.com/hwcrypto/primitives/cryptoerr"

// KeySchedule holds an expanded AES round-key schedule together with the
// direction (encrypt or decrypt) it was expanded for.
type KeySchedule struct {
	variant  Variant
	schedule []byte
	decrypt  bool
}

// WithEncryptKey builds an encryption schedule from key, whose length must
// match one of the three AES variants (16, 24 or 32 bytes).
func WithEncryptKey(key []byte) (KeySchedule, error) {
	var ks KeySchedule
	if err := ks.SetEncryptKey(key); err != nil {
		return KeySchedule{}, err
	}
	return ks, nil
}

// WithDecryptKey builds a decryption schedule directly from a raw AES key.
func WithDecryptKey(key []byte) (KeySchedule, error) {
	var ks KeySchedule
	if err := ks.SetDecryptKey(key); err != nil {
		return KeySchedule{}, err
	}
	return ks, nil
}

func variantForKeyLen(n int) (Variant, error) {
	switch n {
	case 16:
		return AES128, nil
	case 24:
		return AES192, nil
	case 32:
		return AES256, nil
	default:
		return 0, cryptoerr.NewClass("key", "16, 24 or 32 bytes", n)
	}
}

// SetEncryptKey reinitializes ks in place as an encryption schedule for key.
func (ks *KeySchedule) SetEncryptKey(key []byte) error {
	v, err := variantForKeyLen(len(key))
	if err != nil {
		return err
	}
	ks.variant = v
	ks.decrypt = false
	ks.schedule = make([]byte, v.ScheduleLength())
	expandKeyPortable(v, key, ks.schedule)
	return nil
}

// SetDecryptKey reinitializes ks in place as a decryption schedule for key.
func (ks *KeySchedule) SetDecryptKey(key []byte) error {
	if err := ks.SetEncryptKey(key); err != nil {
		return err
	}
	ks.InverseKey()
	return nil
}

// InverseKey converts an encryption schedule to a decryption schedule in
// place, applying the equivalent-inverse-cipher transform:
// the round keys are reversed end to end and InvMixColumns is applied to
// every round key except the first and last. This transform is one-way;
// applying it a second time to an already-inverted schedule does not
// restore the original and is undefined.
func (ks *KeySchedule) InverseKey() {
	inverseKey(ks.variant, ks.schedule)
	ks.decrypt = !ks.decrypt
}

// Variant reports which AES key size ks was built for.
func (ks *KeySchedule) Variant() Variant { return ks.variant }

// Bytes returns the raw expanded round-key schedule, for serialization or
// cross-checking against reference vectors. The returned slice aliases ks's
// internal storage and must not be mutated.
func (ks *KeySchedule) Bytes() []byte { return ks.schedule }

// Encrypt encrypts blocks in place, BlockSize bytes at a time. len(blocks)
// must be a multiple of BlockSize, and ks must hold an encryption schedule.
func (ks *KeySchedule) Encrypt(blocks []byte) error {
	if ks.decrypt {
		return cryptoerr.NewClass("schedule", "an encryption schedule", 0)
	}
	if len(blocks)%BlockSize != 0 {
		return cryptoerr.NewClass("blocks", "a multiple of BlockSize", len(blocks))
	}
	selectedEngine.encryptBlocks(ks.schedule, ks.variant.Rounds(), blocks)
	return nil
}

// Decrypt decrypts blocks in place, BlockSize bytes at a time. len(blocks)
// must be a multiple of BlockSize, and ks must hold a decryption schedule.
func (ks *KeySchedule) Decrypt(blocks []byte) error {
	if !ks.decrypt {
		return cryptoerr.NewClass("schedule", "a decryption schedule", 0)
	}
	if len(blocks)%BlockSize != 0 {
		return cryptoerr.NewClass("blocks", "a multiple of BlockSize", len(blocks))
	}
	selectedEngine.decryptBlocks(ks.schedule, ks.variant.Rounds(), blocks)
	return nil
}
