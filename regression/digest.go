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
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/database"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/hardware"
)

const digestEntryID = "digest"

const (
	digestFieldMode int = iota
	digestFieldCartName
	digestFieldNumTicks
	digestFieldSeed
	digestFieldDigest
	digestFieldNotes
	numDigestFields
)

// DigestRegression is the simplest regression type. The emulation is run for
// a fixed number of ticks with a fixed random number seed and a hash of the
// generated video or audio output is compared with the stored hash.
type DigestRegression struct {
	Mode      DigestMode
	Cartridge string
	NumTicks  int
	Seed      uint64
	Notes     string
	digest    string
}

func deserialiseDigestEntry(fields string) (database.Entry, error) {
	reg := &DigestRegression{}

	f := strings.SplitN(fields, ",", numDigestFields)
	if len(f) != numDigestFields {
		return nil, fmt.Errorf("digest: wrong number of fields")
	}

	var err error

	reg.Mode, err = ParseDigestMode(f[digestFieldMode])
	if err != nil {
		return nil, fmt.Errorf("digest: %w", err)
	}

	reg.Cartridge = f[digestFieldCartName]

	reg.NumTicks, err = strconv.Atoi(f[digestFieldNumTicks])
	if err != nil {
		return nil, fmt.Errorf("digest: invalid num ticks field (%s)", f[digestFieldNumTicks])
	}

	reg.Seed, err = strconv.ParseUint(f[digestFieldSeed], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("digest: invalid seed field (%s)", f[digestFieldSeed])
	}

	reg.digest = f[digestFieldDigest]
	reg.Notes = f[digestFieldNotes]

	return reg, nil
}

// ID implements the database.Entry interface.
func (reg DigestRegression) ID() string {
	return digestEntryID
}

// String implements the database.Entry interface.
func (reg DigestRegression) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s/%s] %s ticks=%d", reg.ID(), reg.Mode, path.Base(reg.Cartridge), reg.NumTicks))
	if reg.Notes != "" {
		s.WriteString(fmt.Sprintf(" [%s]", reg.Notes))
	}
	return s.String()
}

// Serialise implements the database.Entry interface. The notes field is
// serialised last so that it can contain the field separator.
func (reg *DigestRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
			reg.Mode.String(),
			reg.Cartridge,
			strconv.Itoa(reg.NumTicks),
			strconv.FormatUint(reg.Seed, 10),
			reg.digest,
			reg.Notes,
		},
		nil
}

// CleanUp implements the database.Entry interface. A digest regression owns
// nothing on disk besides its database record.
func (reg DigestRegression) CleanUp() error {
	return nil
}

// regress implements the regression.Regressor interface.
func (reg *DigestRegression) regress(newRegression bool, output io.Writer, msg string) (bool, string, error) {
	output.Write([]byte(msg))

	if reg.Mode == DigestUndefined {
		return false, "", fmt.Errorf("digest: undefined digest mode")
	}
	if reg.NumTicks <= 0 {
		return false, "", fmt.Errorf("digest: num ticks must be a positive number")
	}

	cartload := cartridgeloader.NewLoader(reg.Cartridge)

	vm := hardware.NewChip8()
	if err := vm.AttachCartridge(cartload); err != nil {
		return false, "", err
	}

	// reseed after the cartridge attachment so that every run of the test
	// draws the same sequence of random numbers
	vm.Rnd.Reseed(reg.Seed)

	vid := digest.NewVideo()
	aud := digest.NewAudio()

	captureVideo := reg.Mode == DigestVideoOnly || reg.Mode == DigestBoth
	captureAudio := reg.Mode == DigestAudioOnly || reg.Mode == DigestBoth

	tickCt := 0
	err := vm.Run(func() (bool, error) {
		tickCt++

		if captureVideo && vm.Dsp.Updated {
			vid.Capture(vm.Dsp)
			vm.Dsp.Updated = false
		}

		if captureAudio {
			var sample uint8
			if vm.CPU.SoundTimer > 0 {
				sample = 1
			}
			aud.SetAudio(sample)
		}

		return tickCt < reg.NumTicks, nil
	})
	if err != nil {
		return false, "", err
	}

	if captureAudio {
		aud.Flush()
	}

	hash := strings.Builder{}
	if captureVideo {
		hash.WriteString(vid.Hash())
	}
	if captureAudio {
		hash.WriteString(aud.Hash())
	}

	if newRegression {
		reg.digest = hash.String()
		return true, "", nil
	}

	if hash.String() != reg.digest {
		return false, fmt.Sprintf("digest mismatch after %d ticks", tickCt), nil
	}

	return true, "", nil
}
