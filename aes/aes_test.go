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

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/hwcrypto/primitives/internal/ints"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex literal %q: %v", s, err)
	}
	return b
}

// FIPS-197 Appendix C test vectors: the same 16-byte plaintext encrypted
// under AES-128/192/256, exercising both the portable path (via the engine
// override below) and whichever hardware path this build selected.
var fipsVectors = []struct {
	variant   Variant
	key       string
	plaintext string
	ciphertext string
}{
	{
		AES128,
		"000102030405060708090a0b0c0d0e0f",
		"00112233445566778899aabbccddeeff",
		"69c4e0d86a7b0430d8cdb78070b4c55a",
	},
	{
		AES192,
		"000102030405060708090a0b0c0d0e0f1011121314151617",
		"00112233445566778899aabbccddeeff",
		"dda97ca4864cdfe06eaf70a0ec0d7191",
	},
	{
		AES256,
		"000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		"00112233445566778899aabbccddeeff",
		"8ea2b7ca516745bfeafc49904b496089",
	},
}

func withEngine(t *testing.T, e *engine, fn func()) {
	t.Helper()
	prev := selectedEngine
	selectedEngine = e
	defer func() { selectedEngine = prev }()
	fn()
}

func TestFIPSVectorsPortable(t *testing.T) {
	withEngine(t, &portableEngine, func() {
		for _, v := range fipsVectors {
			t.Run(v.variant.String(), func(t *testing.T) {
				checkFIPSVector(t, v.variant, v.key, v.plaintext, v.ciphertext)
			})
		}
	})
}

func TestFIPSVectorsHardware(t *testing.T) {
	if !hwArchAvailable || !cpuHasAESNI() {
		t.Skip("no hardware AES on this build/CPU")
	}
	withEngine(t, &hardwareEngine, func() {
		for _, v := range fipsVectors {
			t.Run(v.variant.String(), func(t *testing.T) {
				checkFIPSVector(t, v.variant, v.key, v.plaintext, v.ciphertext)
			})
		}
	})
}

func checkFIPSVector(t *testing.T, variant Variant, keyHex, ptHex, ctHex string) {
	t.Helper()
	key := mustHex(t, keyHex)
	pt := mustHex(t, ptHex)
	want := mustHex(t, ctHex)

	ks, err := WithEncryptKey(key)
	if err != nil {
		t.Fatalf("WithEncryptKey: %v", err)
	}
	got := append([]byte(nil), pt...)
	if err := ks.Encrypt(got); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("encrypt mismatch: got %x want %x", got, want)
	}

	dks, err := WithDecryptKey(key)
	if err != nil {
		t.Fatalf("WithDecryptKey: %v", err)
	}
	back := append([]byte(nil), got...)
	if err := dks.Decrypt(back); err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(back, pt) {
		t.Errorf("round trip mismatch: got %x want %x", back, pt)
	}
}

func TestInverseKeyMatchesWithDecryptKey(t *testing.T) {
	for _, key := range []string{
		"000102030405060708090a0b0c0d0e0f",
		"000102030405060708090a0b0c0d0e0f1011121314151617",
		"000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
	} {
		k := mustHex(t, key)
		encrypted, err := WithEncryptKey(k)
		if err != nil {
			t.Fatal(err)
		}
		encrypted.InverseKey()

		decrypted, err := WithDecryptKey(k)
		if err != nil {
			t.Fatal(err)
		}

		if !bytes.Equal(encrypted.Bytes(), decrypted.Bytes()) {
			t.Errorf("WithEncryptKey+InverseKey disagrees with WithDecryptKey for key %s", key)
		}
	}
}

func TestRandomKeyRoundTrip(t *testing.T) {
	for _, variant := range []Variant{AES128, AES192, AES256} {
		key := make([]byte, variant.KeyLength())
		if err := ints.RandomFillSlice(key); err != nil {
			t.Fatalf("%s: generating random key: %v", variant, err)
		}
		pt := make([]byte, BlockSize*3)
		if err := ints.RandomFillSlice(pt); err != nil {
			t.Fatalf("%s: generating random plaintext: %v", variant, err)
		}

		eks, err := WithEncryptKey(key)
		if err != nil {
			t.Fatalf("%s: WithEncryptKey: %v", variant, err)
		}
		ct := append([]byte(nil), pt...)
		if err := eks.Encrypt(ct); err != nil {
			t.Fatalf("%s: Encrypt: %v", variant, err)
		}

		dks, err := WithDecryptKey(key)
		if err != nil {
			t.Fatalf("%s: WithDecryptKey: %v", variant, err)
		}
		if err := dks.Decrypt(ct); err != nil {
			t.Fatalf("%s: Decrypt: %v", variant, err)
		}

		if !bytes.Equal(ct, pt) {
			t.Errorf("%s: round trip with random key/plaintext mismatch: got %x want %x", variant, ct, pt)
		}
	}
}

func TestBatchSizesAgreeWithSingleBlock(t *testing.T) {
	key := mustHex(t, "603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4")
	ks, err := WithEncryptKey(key)
	if err != nil {
		t.Fatal(err)
	}

	var single [16]byte
	for i := range single {
		single[i] = byte(i)
	}
	ref := single
	if err := ks.Encrypt(ref[:]); err != nil {
		t.Fatal(err)
	}

	for _, n := range []int{1, 2, 4, 8} {
		buf := make([]byte, 16*n)
		for b := 0; b < n; b++ {
			copy(buf[b*16:], single[:])
		}
		if err := ks.Encrypt(buf); err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		for b := 0; b < n; b++ {
			if !bytes.Equal(buf[b*16:b*16+16], ref[:]) {
				t.Errorf("n=%d block %d diverges from single-block result", n, b)
			}
		}
	}
}

func TestPortableAndHardwareAgree(t *testing.T) {
	if !hwArchAvailable || !cpuHasAESNI() {
		t.Skip("no hardware AES on this build/CPU")
	}
	key := mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	var pt [48]byte
	for i := range pt {
		pt[i] = byte(i * 7)
	}

	var viaPortable, viaHardware [48]byte
	copy(viaPortable[:], pt[:])
	copy(viaHardware[:], pt[:])

	withEngine(t, &portableEngine, func() {
		ks, _ := WithEncryptKey(key)
		if err := ks.Encrypt(viaPortable[:]); err != nil {
			t.Fatal(err)
		}
	})
	withEngine(t, &hardwareEngine, func() {
		ks, _ := WithEncryptKey(key)
		if err := ks.Encrypt(viaHardware[:]); err != nil {
			t.Fatal(err)
		}
	})
	if !bytes.Equal(viaPortable[:], viaHardware[:]) {
		t.Errorf("portable and hardware implementations disagree: %x vs %x", viaPortable, viaHardware)
	}
}

func TestSetEncryptKeyRejectsBadLength(t *testing.T) {
	var ks KeySchedule
	if err := ks.SetEncryptKey(make([]byte, 20)); err == nil {
		t.Fatal("expected an error for a 20-byte key")
	}
}

func TestEncryptRejectsPartialBlock(t *testing.T) {
	ks, err := WithEncryptKey(make([]byte, 16))
	if err != nil {
		t.Fatal(err)
	}
	if err := ks.Encrypt(make([]byte, 17)); err == nil {
		t.Fatal("expected an error for a non-block-multiple buffer")
	}
}
