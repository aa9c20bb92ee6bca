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

package cpufeature

import "golang.org/x/sys/cpu"

func detectRuntime() Set {
	var s Set
	if cpu.X86.HasAES {
		s |= FeatureAESHW
	}
	return s
}

// compileTimeBest never assumes AES-NI at compile time on amd64: unlike
// ARM's NEON-is-mandatory baseline, x86-64 has no universal guarantee of
// AES-NI, so this always defers to the runtime probe.
func compileTimeBest() Set { return 0 }
