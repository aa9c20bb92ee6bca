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

// Command cryptoctl is a thin demonstration CLI over the core packages: it
// hashes or HMACs stdin and prints hex, and can report which AES engine
// (portable or hardware) the running CPU selected. It exists to give the
// library an external collaborator to exercise, not as a production tool.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hwcrypto/primitives/hmac"
	"github.com/hwcrypto/primitives/internal/cpufeature"
	"github.com/hwcrypto/primitives/md"
)

var algorithms = map[string]func() *md.Variant{
	"md5":         md.NewMD5,
	"sha1":        md.NewSHA1,
	"sha224":      md.NewSHA224,
	"sha256":      md.NewSHA256,
	"sha384":      md.NewSHA384,
	"sha512":      md.NewSHA512,
	"sha512-224":  md.NewSHA512_224,
	"sha512-256":  md.NewSHA512_256,
}

func main() {
	var (
		algo   = flag.String("algo", "sha256", "hash algorithm: "+algoNames())
		hmacKey = flag.String("hmac-key", "", "if set, compute HMAC with this key instead of a plain digest")
		engine  = flag.Bool("engine", false, "print which AES engine (portable/hardware) this CPU selected and exit")
	)
	flag.Parse()

	if *engine {
		if cpufeature.Available(cpufeature.FeatureAESHW) {
			fmt.Println("hardware")
		} else {
			fmt.Println("portable")
		}
		return
	}

	newHash, ok := algorithms[*algo]
	if !ok {
		fmt.Fprintf(os.Stderr, "cryptoctl: unknown algorithm %q (want one of %s)\n", *algo, algoNames())
		os.Exit(2)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cryptoctl: reading stdin: %v\n", err)
		os.Exit(1)
	}

	var sum []byte
	if *hmacKey != "" {
		c := hmac.New(newHash, []byte(*hmacKey))
		c.Write(data)
		sum = c.Sum(nil)
	} else {
		h := newHash()
		h.Write(data)
		sum = h.Sum(nil)
	}

	fmt.Printf("%x\n", sum)
}

func algoNames() string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	return fmt.Sprint(names)
}
