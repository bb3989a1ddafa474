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

package cartridgeloader

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopher8/logger"
)

// HashMismatch is returned by Load() when the data does not hash to the value
// specified in the Hash field.
var HashMismatch = errors.New("unexpected hash value")

// Loader is used to specify the cartridge to use when Attach()ing to the
// emulated machine.
type Loader struct {
	// filename of cartridge to load
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() do nothing once
	// this field is populated
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// CHIP-8 files have no standard extension. The extensions listed in
// FileExtensions are the ones seen in the wild. Any other extension is
// accepted but noted in the log.
func NewLoader(filename string) Loader {
	cl := Loader{
		Filename: filename,
	}

	ext := strings.ToUpper(path.Ext(filename))
	recognised := false
	for _, e := range FileExtensions {
		if ext == e {
			recognised = true
			break
		}
	}
	if !recognised {
		logger.Logf(logger.Allow, "cartridgeloader", "unusual file extension (%s)", filename)
	}

	return cl
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortCartName := path.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, path.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}
		defer resp.Body.Close()

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}

	case "file":
		fallthrough

	case "":
		cl.Data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}

	default:
		return fmt.Errorf("cartridgeloader: unsupported URL scheme (%s)", scheme)
	}

	// generate hash and check for consistency with any expected value
	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))
	if cl.Hash != "" && cl.Hash != hash {
		return fmt.Errorf("cartridgeloader: %w", HashMismatch)
	}
	cl.Hash = hash

	return nil
}
