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

package debugger

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/debugger/script"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/userinput"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	vm *hardware.Chip8

	// the most recent cartridge attachment. kept so that the RESET command
	// can reload memory and the CARTRIDGE command has something to report
	cartload cartridgeloader.Loader

	// the gui the debugger is running alongside
	scr gui.GUI

	// the terminal the debugger reads user commands from
	term terminal.Terminal

	// the disassembly of the attached cartridge. entries are blessed as the
	// emulation executes them
	Disasm *disassembly.Disassembly

	// the rolling digest of the display. reset whenever a cartridge is
	// attached
	dig *digest.Video

	// halt conditions
	breakpoints   *breakpoints
	breakMessages string

	// commands that are run automatically when the emulation halts or steps
	commandOnHalt       []*commandline.Tokens
	commandOnHaltStored []*commandline.Tokens
	commandOnStep       []*commandline.Tokens
	commandOnStepStored []*commandline.Tokens

	// record user input to a script
	scriptScribe script.Scribe

	// buffer for user input
	input []byte

	// channels and functions to monitor while the terminal is blocking
	events *terminal.ReadEvents

	// \/\/\/ inputLoop state \/\/\/

	// whether the debugger is to continue with the debugging loop
	running bool

	// continue the emulation until a halt condition is encountered
	runUntilHalt bool

	// continue with the next step of the emulation
	continueEmulation bool

	// the number of steps remaining in a STEP sequence
	stepsRemaining int

	// halt the emulation immediately. used by the HALT command
	haltImmediately bool

	// the most recent step of the emulation resulted in an error
	lastStepError bool

	// rationing counter for event checks while the emulation is running
	inputCt int
}

// NewDebugger creates and initialises everything required for a new debugging
// session.
func NewDebugger(scr gui.GUI, term terminal.Terminal) (*Debugger, error) {
	dbg := &Debugger{
		vm:     hardware.NewChip8(),
		scr:    scr,
		term:   term,
		Disasm: &disassembly.Disassembly{},
		dig:    digest.NewVideo(),
		input:  make([]byte, 255),
	}

	// initialise the empty disassembly
	dbg.Disasm.FromMemory(dbg.vm.Mem, 0)

	dbg.breakpoints = newBreakpoints(dbg)

	// the ONSTEP command defaults to LAST so that single-stepping echoes the
	// instruction that has just been executed
	var err error
	dbg.commandOnStep, err = dbg.tokeniseCommandList(cmdLast)
	if err != nil {
		return nil, fmt.Errorf("debugger: %w", err)
	}
	dbg.commandOnStepStored = dbg.commandOnStep

	// set up the channels that are monitored during terminal interaction
	dbg.events = &terminal.ReadEvents{
		UserInput:        make(chan userinput.Event, 10),
		UserInputHandler: dbg.userInputHandler,
		IntEvents:        make(chan os.Signal, 1),
		RawEvents:        make(chan func(), 32),
		RawEventsReturn:  make(chan func(), 32),
	}

	// connect Interrupt signal to dbg.events.IntEvents
	signal.Notify(dbg.events.IntEvents, os.Interrupt)

	// connect the gui's user input to the debugger
	if err := dbg.scr.ReqFeature(gui.ReqSetUserInput, dbg.events.UserInput); err != nil {
		return nil, fmt.Errorf("debugger: %w", err)
	}

	return dbg, nil
}

// Start the main debugger sequence. The initScript, if it exists, is run
// before control is handed to the user.
func (dbg *Debugger) Start(initScript string, cartload cartridgeloader.Loader) error {
	// prepare user interface
	if err := dbg.term.Initialise(); err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(commandline.NewTabCompletion(debuggerCommands))

	if err := dbg.attachCartridge(cartload); err != nil {
		// an error here does not need to end the debugging session. the
		// INSERT command can be used to attach a working cartridge
		dbg.printLine(terminal.StyleError, "%s", err)
	}

	dbg.running = true

	// run initialisation script quietly
	if initScript != "" {
		plb, err := script.RescribeScript(initScript)
		if err == nil {
			dbg.term.Silence(true)
			err = dbg.inputLoop(plb)
			if err != nil {
				dbg.term.Silence(false)
				return fmt.Errorf("debugger: %w", err)
			}
			dbg.term.Silence(false)
		}
	}

	// inputLoop will not return until the debugging session is to end
	if err := dbg.inputLoop(dbg.term); err != nil {
		return fmt.Errorf("debugger: %w", err)
	}

	return nil
}

// attachCartridge makes sure the cartridge loaded into the machine matches
// what the debugger thinks is loaded. everything that depends on the identity
// of the cartridge is reset alongside the machine.
func (dbg *Debugger) attachCartridge(cartload cartridgeloader.Loader) error {
	// load the cartridge data before attaching. loading now means the copy of
	// the loader stored in the debugger has the data and hash available for
	// the CARTRIDGE command and for the RESET command to reuse
	if cartload.Filename != "" || len(cartload.Data) > 0 {
		if err := cartload.Load(); err != nil {
			return err
		}
	}

	dbg.cartload = cartload

	if err := dbg.vm.AttachCartridge(cartload); err != nil {
		return err
	}

	// create a fresh disassembly. limiting the disassembly to the length of
	// the cartridge data keeps the entry list clear of the empty space above
	// the program
	dbg.Disasm.FromMemory(dbg.vm.Mem, len(cartload.Data))

	// a different cartridge means the display digest is no longer meaningful
	dbg.dig.ResetDigest()

	return nil
}

// userInputHandler is called by the readEventsHandler on receipt of an event
// from the gui
func (dbg *Debugger) userInputHandler(ev userinput.Event) error {
	quit, err := userinput.HandleUserInput(ev, dbg.vm.Kpd)
	if quit {
		dbg.running = false
	}
	return err
}
