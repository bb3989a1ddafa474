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

package script

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Scribe can be used again after a StartSession()/EndSession() cycle.
// IsActive() can be used to detect if a script is currently being captured
// but it is safe not to do because most functions silently fail if there is
// no active session.
type Scribe struct {
	file       *os.File
	scriptfile string

	// the depth of script openings during the writing of a new script
	playbackDepth int

	inputLine  string
	outputLine string
}

// IsActive returns true if a script is currently being captured.
func (scr Scribe) IsActive() bool {
	return scr.file != nil
}

// StartSession begins a new script.
func (scr *Scribe) StartSession(scriptfile string) error {
	if scr.IsActive() {
		return fmt.Errorf("script: scribe session already active")
	}

	scr.scriptfile = scriptfile

	_, err := os.Stat(scriptfile)
	if os.IsNotExist(err) {
		scr.file, err = os.Create(scriptfile)
		if err != nil {
			return fmt.Errorf("script: cannot create script file (%s)", scriptfile)
		}
	} else {
		return fmt.Errorf("script: file already exists (%s)", scriptfile)
	}

	return nil
}

// EndSession closes the current scribe session.
func (scr *Scribe) EndSession() error {
	if !scr.IsActive() {
		return nil
	}

	defer func() {
		scr.file = nil
		scr.scriptfile = ""
		scr.playbackDepth = 0
		scr.inputLine = ""
		scr.outputLine = ""
	}()

	// make sure everything has been written to the output file
	err := scr.Commit()

	// if Commit() causes an error, continue with the Close() operation and
	// return the Commit() error if the close succeeds

	errClose := scr.file.Close()
	if errClose != nil {
		return fmt.Errorf("script: %w", errClose)
	}

	return err
}

// StartPlayback indicates that a replayed script has begun.
func (scr *Scribe) StartPlayback() {
	if !scr.IsActive() {
		return
	}
	_ = scr.Commit()
	scr.playbackDepth++
}

// EndPlayback indicates that a replayed script has finished.
func (scr *Scribe) EndPlayback() {
	if !scr.IsActive() {
		return
	}
	_ = scr.Commit()
	scr.playbackDepth--
}

// Rollback undoes calls to WriteInput() and WriteOutput() since the last
// Commit().
func (scr *Scribe) Rollback() {
	if !scr.IsActive() {
		return
	}

	scr.inputLine = ""
	scr.outputLine = ""
}

// WriteInput writes user input to the open script file.
func (scr *Scribe) WriteInput(command string) {
	if !scr.IsActive() || scr.playbackDepth > 0 {
		return
	}

	_ = scr.Commit()
	if command != "" {
		scr.inputLine = fmt.Sprintf("%s\n", command)
	}
}

// WriteOutput writes emulation output to the open script file. Each line is
// prefixed with the comment symbol so that it is ignored on playback.
func (scr *Scribe) WriteOutput(result string, args ...interface{}) {
	if !scr.IsActive() || scr.playbackDepth > 0 {
		return
	}

	if result == "" {
		return
	}

	result = fmt.Sprintf(result, args...)

	lines := strings.Split(result, "\n")
	for i := range lines {
		scr.outputLine = fmt.Sprintf("%s%s %s\n", scr.outputLine, commentLine, lines[i])
	}
}

// Commit the most recent calls to WriteInput() and WriteOutput().
func (scr *Scribe) Commit() error {
	if !scr.IsActive() {
		return nil
	}

	defer func() {
		scr.inputLine = ""
		scr.outputLine = ""
	}()

	if scr.playbackDepth > 0 {
		return nil
	}

	if scr.inputLine != "" {
		n, err := io.WriteString(scr.file, scr.inputLine)
		if err != nil {
			return fmt.Errorf("script: %w", err)
		}
		if n != len(scr.inputLine) {
			return fmt.Errorf("script: output truncated")
		}
	}

	if scr.outputLine != "" {
		n, err := io.WriteString(scr.file, scr.outputLine)
		if err != nil {
			return fmt.Errorf("script: %w", err)
		}
		if n != len(scr.outputLine) {
			return fmt.Errorf("script: output truncated")
		}
	}

	return nil
}
