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

import (
	"bytes"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"strings"
	"testing"
)

func digest(t *testing.T, v *Variant, msg string) string {
	t.Helper()
	v.Write([]byte(msg))
	return hex.EncodeToString(v.Sum(nil))
}

func TestKnownVectors(t *testing.T) {
	cases := []struct {
		name string
		new  func() *Variant
		msg  string
		want string
	}{
		{"MD5 empty", NewMD5, "", "d41d8cd98f00b204e9800998ecf8427e"},
		{"MD5 abc", NewMD5, "abc", "900150983cd24fb0d6963f7d28e17f72"},
		{"SHA-1 empty", NewSHA1, "", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"SHA-1 abc", NewSHA1, "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"SHA-224 abc", NewSHA224, "abc", "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
		{"SHA-256 abc", NewSHA256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"SHA-384 abc", NewSHA384, "abc", "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"},
		{"SHA-512 abc", NewSHA512, "abc", "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
		{"SHA-512/224 abc", NewSHA512_224, "abc", "4634270f707b6a54daae7530460842e20e37ed265ceee9a43e8924aa"},
		{"SHA-512/256 abc", NewSHA512_256, "abc", "53048e2681941ef99b2e29b76b4c7dabe4c2d0c634fc6d46e0e2f13107e7af23"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := digest(t, c.new(), c.msg)
			if got != c.want {
				t.Errorf("got %s want %s", got, c.want)
			}
		})
	}
}

func TestCrossValidateAgainstStdlib(t *testing.T) {
	messages := []string{
		"",
		"a",
		"abc",
		strings.Repeat("abcdefghijklmnopqrstuvwxyz", 1000),
	}
	for _, msg := range messages {
		if got, want := digest(t, NewMD5(), msg), hex.EncodeToString(md5sum(msg)); got != want {
			t.Errorf("MD5(%d bytes): got %s want %s", len(msg), got, want)
		}
		if got, want := digest(t, NewSHA1(), msg), hex.EncodeToString(sha1sum(msg)); got != want {
			t.Errorf("SHA-1(%d bytes): got %s want %s", len(msg), got, want)
		}
		if got, want := digest(t, NewSHA256(), msg), hex.EncodeToString(sha256sum(msg)); got != want {
			t.Errorf("SHA-256(%d bytes): got %s want %s", len(msg), got, want)
		}
		if got, want := digest(t, NewSHA512(), msg), hex.EncodeToString(sha512sum(msg)); got != want {
			t.Errorf("SHA-512(%d bytes): got %s want %s", len(msg), got, want)
		}
	}
}

func md5sum(s string) []byte    { h := md5.Sum([]byte(s)); return h[:] }
func sha1sum(s string) []byte   { h := sha1.Sum([]byte(s)); return h[:] }
func sha256sum(s string) []byte { h := sha256.Sum256([]byte(s)); return h[:] }
func sha512sum(s string) []byte { h := sha512.Sum512([]byte(s)); return h[:] }

func TestResetRestoresIdentity(t *testing.T) {
	v := NewSHA256()
	base := v.Sum(nil)

	v.Write([]byte("some message"))
	v.Reset()
	after := v.Sum(nil)

	if !bytes.Equal(base, after) {
		t.Errorf("Reset did not restore the empty-message digest: got %x want %x", after, base)
	}
}

func TestStreamingIsAssociative(t *testing.T) {
	full := "the quick brown fox jumps over the lazy dog, repeatedly, to build up a multi-block message"

	whole := NewSHA256()
	whole.Write([]byte(full))
	want := whole.Sum(nil)

	for _, split := range []int{1, 7, 33, 64, 65, 127} {
		if split >= len(full) {
			continue
		}
		v := NewSHA256()
		v.Write([]byte(full[:split]))
		v.Write([]byte(full[split:]))
		got := v.Sum(nil)
		if !bytes.Equal(got, want) {
			t.Errorf("split at %d: got %x want %x", split, got, want)
		}
	}
}

func TestSumDoesNotMutateRunningState(t *testing.T) {
	v := NewSHA256()
	v.Write([]byte("partial"))
	first := v.Sum(nil)
	second := v.Sum(nil)
	if !bytes.Equal(first, second) {
		t.Errorf("calling Sum twice produced different digests: %x vs %x", first, second)
	}
	v.Write([]byte(" more"))
	third := v.Sum(nil)
	if bytes.Equal(first, third) {
		t.Errorf("Sum after further writes should differ from the earlier digest")
	}
}
