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

// Package hmac implements the keyed-hash message authentication code
// (RFC 2104) over any Merkle-Damgard hash exposed by md.Variant.
package hmac

import "github.com/hwcrypto/primitives/md"

const (
	ipad = 0x36
	opad = 0x5c
)

// NewFunc builds a hash constructor suitable for passing to New; it closes
// over one of the md package's New* functions, e.g. hmac.NewFunc(md.NewSHA256).
type NewFunc func() *md.Variant

// Context is a keyed HMAC instance. The zero value is not usable;
// construct one with New.
type Context struct {
	newHash  NewFunc
	outer    *md.Variant
	inner    *md.Variant
	innerPad []byte
	outerPad []byte
}

// New derives an HMAC context from key using the hash family produced by
// newHash. Per RFC 2104, key may be any length: keys longer than the
// hash's block size are hashed down first, and shorter keys are
// zero-padded.
func New(newHash NewFunc, key []byte) *Context {
	h := newHash()
	blockSize := h.BlockSize()

	k := key
	if len(k) > blockSize {
		h.Write(k)
		k = h.Sum(nil)
		h.Reset()
	}

	c := &Context{
		newHash:  newHash,
		outer:    newHash(),
		inner:    newHash(),
		innerPad: make([]byte, blockSize),
		outerPad: make([]byte, blockSize),
	}
	copy(c.innerPad, k)
	copy(c.outerPad, k)
	for i := range c.innerPad {
		c.innerPad[i] ^= ipad
		c.outerPad[i] ^= opad
	}

	c.inner.Write(c.innerPad)
	return c
}

// Write absorbs p into the message being authenticated.
func (c *Context) Write(p []byte) (int, error) {
	return c.inner.Write(p)
}

// Size returns the MAC length in bytes, equal to the underlying hash's
// digest length.
func (c *Context) Size() int { return c.outer.Size() }

// BlockSize returns the underlying hash's block size.
func (c *Context) BlockSize() int { return c.outer.BlockSize() }

// Sum appends the MAC over everything written so far to b and returns the
// resulting slice, without disturbing the running state (Write may be
// called again afterward to extend the authenticated message).
func (c *Context) Sum(b []byte) []byte {
	innerSum := c.inner.Sum(nil)

	outer := c.newHash()
	outer.Write(c.outerPad)
	outer.Write(innerSum)
	return outer.Sum(b)
}

// Reset restores c to its just-constructed state for the same key,
// ready to authenticate a new message.
func (c *Context) Reset() {
	c.inner.Reset()
	c.inner.Write(c.innerPad)
}

// Clone returns an independent copy of c that shares no mutable state,
// useful for HKDF-Expand's per-block reuse of a single PRK context.
func (c *Context) Clone() *Context {
	clone := &Context{
		newHash:  c.newHash,
		outer:    c.newHash(),
		inner:    c.newHash(),
		innerPad: append([]byte(nil), c.innerPad...),
		outerPad: append([]byte(nil), c.outerPad...),
	}
	clone.inner.Write(clone.innerPad)
	return clone
}
