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

//go:build !windows
// +build !windows

// Package easyterm is a wrapper for "github.com/pkg/term/termios". it provides
// some features not present in the third-party package, such as terminal
// geometry, and wraps termios methods in functions with friendlier names
package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// EasyTerm is the main type for the package. It keeps a reference to the
// input/output files and the attribute profiles for the terminal modes that
// the package supports.
type EasyTerm struct {
	input  *os.File
	output *os.File

	// the state of the terminal when Initialise() was called. the terminal is
	// returned to this state by CleanUp()
	canAttr unix.Termios

	rawAttr    unix.Termios
	cbreakAttr unix.Termios

	crit     sync.Mutex
	geometry TermGeometry

	winch chan os.Signal
}

// TermGeometry contains the dimensions of the terminal.
type TermGeometry struct {
	Rows int
	Cols int
}

// Initialise the terminal for the given input and output files. The current
// attributes of the input terminal are stored and reinstated by CleanUp().
func (et *EasyTerm) Initialise(input *os.File, output *os.File) error {
	et.input = input
	et.output = output

	err := termios.Tcgetattr(et.input.Fd(), &et.canAttr)
	if err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	// prepare the attribute profile for raw mode. output processing is kept
	// so that linefeeds in any output are expanded as normal
	et.rawAttr = et.canAttr
	termios.Cfmakeraw(&et.rawAttr)
	et.rawAttr.Oflag |= unix.OPOST

	// prepare the attribute profile for cbreak mode
	et.cbreakAttr = et.canAttr
	termios.Cfmakecbreak(&et.cbreakAttr)

	// update the terminal geometry whenever the host window changes size
	et.winch = make(chan os.Signal, 1)
	signal.Notify(et.winch, syscall.SIGWINCH)
	go func() {
		for range et.winch {
			_ = et.UpdateGeometry()
		}
	}()

	return et.UpdateGeometry()
}

// CleanUp closes resources created in Initialise() and returns the terminal
// to its canonical state.
func (et *EasyTerm) CleanUp() {
	signal.Stop(et.winch)
	close(et.winch)
	_ = et.CanonicalMode()
}

// TermPrint writes a string to the output file.
func (et *EasyTerm) TermPrint(s string) {
	et.output.WriteString(s)
}

// UpdateGeometry reads the current dimensions of the output terminal. There
// is no need to call this manually, it is called whenever the process
// receives a SIGWINCH signal.
func (et *EasyTerm) UpdateGeometry() error {
	w, err := unix.IoctlGetWinsize(int(et.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	et.crit.Lock()
	defer et.crit.Unlock()
	et.geometry.Rows = int(w.Row)
	et.geometry.Cols = int(w.Col)

	return nil
}

// Geometry returns the dimensions of the terminal at the most recent update.
func (et *EasyTerm) Geometry() TermGeometry {
	et.crit.Lock()
	defer et.crit.Unlock()
	return et.geometry
}

// CanonicalMode puts the terminal into the mode it was in when Initialise()
// was called. Probably cooked mode.
func (et *EasyTerm) CanonicalMode() error {
	return et.setAttr(&et.canAttr)
}

// RawMode puts the terminal into raw mode. Characters are received as they
// are typed, with no processing by the terminal at all.
func (et *EasyTerm) RawMode() error {
	return et.setAttr(&et.rawAttr)
}

// CBreakMode puts the terminal into cbreak mode. Characters are received as
// they are typed but signal characters are still handled by the terminal.
func (et *EasyTerm) CBreakMode() error {
	return et.setAttr(&et.cbreakAttr)
}

func (et *EasyTerm) setAttr(attr *unix.Termios) error {
	err := termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, attr)
	if err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	return nil
}

// Flush the contents of the terminal's input and output buffers.
func (et *EasyTerm) Flush() error {
	err := termios.Tcflush(et.input.Fd(), termios.TCIOFLUSH)
	if err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	return nil
}
