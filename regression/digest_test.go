// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package regression

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/test"
)

func writeTestROM(t *testing.T, program ...uint8) string {
	t.Helper()

	pth := filepath.Join(t.TempDir(), "test.ch8")
	err := os.WriteFile(pth, program, 0o644)
	test.ExpectedSuccess(t, err)

	return pth
}

func TestDigestRegress(t *testing.T) {
	rom := writeTestROM(t,
		0x61, 0x00, // 0x200  LD V1, $00
		0x62, 0x00, // 0x202  LD V2, $00
		0xa0, 0x00, // 0x204  LD I, $000
		0xd1, 0x25, // 0x206  DRW V1, V2, $5
		0x12, 0x08, // 0x208  JP $208
	)

	reg := &DigestRegression{
		Mode:      DigestVideoOnly,
		Cartridge: rom,
		NumTicks:  100,
		Seed:      1,
	}

	// a new regression stores the digest of the run
	ok, _, err := reg.regress(true, io.Discard, "")
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, ok, true)
	test.ExpectInequality(t, reg.digest, "")

	// the same run compares equal against the stored digest
	ok, failm, err := reg.regress(false, io.Discard, "")
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, failm, "")

	// a changed digest is noticed
	reg.digest = "0000"
	ok, failm, err = reg.regress(false, io.Discard, "")
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, ok, false)
	test.ExpectInequality(t, failm, "")
}

func TestDigestRegressAudio(t *testing.T) {
	rom := writeTestROM(t,
		0x61, 0x0a, // 0x200  LD V1, $0A
		0xf1, 0x18, // 0x202  LD ST, V1
		0x12, 0x04, // 0x204  JP $204
	)

	reg := &DigestRegression{
		Mode:      DigestAudioOnly,
		Cartridge: rom,
		NumTicks:  50,
		Seed:      1,
	}

	ok, _, err := reg.regress(true, io.Discard, "")
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, ok, true)
	test.ExpectInequality(t, reg.digest, "")

	// an identical definition produces an identical digest
	alt := &DigestRegression{
		Mode:      DigestAudioOnly,
		Cartridge: rom,
		NumTicks:  50,
		Seed:      1,
	}

	ok, _, err = alt.regress(true, io.Discard, "")
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, alt.digest, reg.digest)

	// a different run length produces a different digest
	alt = &DigestRegression{
		Mode:      DigestAudioOnly,
		Cartridge: rom,
		NumTicks:  40,
		Seed:      1,
	}

	ok, _, err = alt.regress(true, io.Discard, "")
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, ok, true)
	test.ExpectInequality(t, alt.digest, reg.digest)
}

func TestDigestSerialise(t *testing.T) {
	reg := &DigestRegression{
		Mode:      DigestVideoOnly,
		Cartridge: "roms/test.ch8",
		NumTicks:  1000,
		Seed:      99,
		Notes:     "notes, with, separators",
		digest:    "abcdef",
	}

	ser, err := reg.Serialise()
	test.ExpectedSuccess(t, err)

	ent, err := deserialiseDigestEntry(strings.Join(ser, ","))
	test.ExpectedSuccess(t, err)

	res, ok := ent.(*DigestRegression)
	if !ok {
		t.Fatalf("deserialise returned an unexpected type")
	}
	test.ExpectEquality(t, *res, *reg)
}

func TestParseDigestMode(t *testing.T) {
	for _, m := range []DigestMode{DigestVideoOnly, DigestAudioOnly, DigestBoth} {
		res, err := ParseDigestMode(m.String())
		test.ExpectedSuccess(t, err)
		test.ExpectEquality(t, res, m)
	}

	// parsing is case insensitive
	res, err := ParseDigestMode("VIDEO")
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, res, DigestVideoOnly)

	_, err = ParseDigestMode("something else")
	test.ExpectedFailure(t, err)
}
