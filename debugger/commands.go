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
	"encoding/hex"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/debugger/script"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/version"
)

var debuggerCommands *commandline.Commands
var scriptUnsafeCommands *commandline.Commands

// this init() function "compiles" the commandTemplate above into a more
// usable form. It will cause the program to fail if the template is invalid.
func init() {
	var err error

	// parse command template
	debuggerCommands, err = commandline.ParseCommandTemplate(commandTemplate)
	if err != nil {
		panic(err)
	}

	err = debuggerCommands.AddHelp(cmdHelp, helps)
	if err != nil {
		panic(err)
	}
	sort.Stable(debuggerCommands)

	scriptUnsafeCommands, err = commandline.ParseCommandTemplate(scriptUnsafeTemplate)
	if err != nil {
		panic(err)
	}
	sort.Stable(scriptUnsafeCommands)
}

// parseInput splits the input into individual commands. each command is then
// passed to parseCommand for processing
//
// interactive argument should be true if the input has just come from the
// user (ie. via an interactive terminal) rather than from a script
//
// auto argument should be true if command is being run as part of ONHALT or
// ONSTEP
//
// returns a boolean stating whether the emulation should continue with the
// next step
func (dbg *Debugger) parseInput(input string, interactive bool, auto bool) (bool, error) {
	var continueEmulation bool
	var err error

	// ignore comments
	if strings.HasPrefix(strings.TrimSpace(input), "#") {
		return false, nil
	}

	// divide input if necessary
	commands := strings.Split(input, ";")

	for i := 0; i < len(commands); i++ {
		continueEmulation, err = dbg.parseCommand(commands[i], interactive, !auto)
		if err != nil {
			// we don't want to record bad commands in script
			dbg.scriptScribe.Rollback()
			return false, err
		}
	}

	return continueEmulation, nil
}

// parseCommand tokenises the input and processes the tokens
func (dbg *Debugger) parseCommand(cmd string, interactive bool, scribe bool) (bool, error) {
	tokens := commandline.TokeniseInput(cmd)

	// an empty input is the same as a single STEP
	if tokens.Remaining() == 0 {
		if interactive {
			dbg.stepsRemaining = 1
			return true, nil
		}
		return false, nil
	}

	// check validity of input
	if err := debuggerCommands.ValidateTokens(tokens); err != nil {
		return false, err
	}

	// print normalised input when the input is from a non-interactive source
	// so that the user can follow what a script is doing
	if !interactive {
		dbg.printLine(terminal.StyleNormalisedInput, tokens.String())
	}

	// check if command is allowed when recording/playing a script
	if dbg.scriptScribe.IsActive() || !interactive {
		tokens.Reset()

		// fail when the tokens DO match the scriptUnsafe template (ie. when
		// there is no err from the validate function)
		if err := scriptUnsafeCommands.ValidateTokens(tokens); err == nil {
			return false, fmt.Errorf("'%s' is unsafe to use in scripts", tokens.String())
		}
	}

	// write command to script file
	if scribe {
		dbg.scriptScribe.WriteInput(tokens.String())
	}

	tokens.Reset()
	return dbg.processTokens(tokens)
}

// tokeniseCommandList is used by the ONHALT and ONSTEP commands. a command
// list is a string of commands separated by commas
func (dbg *Debugger) tokeniseCommandList(commandList string) ([]*commandline.Tokens, error) {
	var list []*commandline.Tokens

	for _, s := range strings.Split(commandList, ",") {
		toks := commandline.TokeniseInput(s)
		if toks.Remaining() == 0 {
			continue
		}
		if err := debuggerCommands.ValidateTokens(toks); err != nil {
			return nil, err
		}
		toks.Reset()
		list = append(list, toks)
	}

	return list, nil
}

// processTokensList sequentially processes the list of tokens
func (dbg *Debugger) processTokensList(tokenGrp []*commandline.Tokens) (bool, error) {
	var continueEmulation bool

	for _, toks := range tokenGrp {
		toks.Reset()
		c, err := dbg.processTokens(toks)
		if err != nil {
			return continueEmulation, err
		}
		continueEmulation = continueEmulation || c
	}

	return continueEmulation, nil
}

// joinCommandList is the inverse of tokeniseCommandList. for printing
func joinCommandList(tokenGrp []*commandline.Tokens) string {
	s := strings.Builder{}
	for _, c := range tokenGrp {
		s.WriteString(c.String())
		s.WriteString("; ")
	}
	return strings.TrimSuffix(s.String(), "; ")
}

// processTokens interprets the tokens and dispatches to the right command.
// returns a boolean stating whether the emulation should continue with the
// next step
func (dbg *Debugger) processTokens(tokens *commandline.Tokens) (bool, error) {
	// the leading token identifies the command
	command, _ := tokens.Get()
	command = strings.ToUpper(command)

	// most commands do not cause the emulation to step forward
	stepNext := false

	switch command {
	default:
		return false, fmt.Errorf("%s is not yet implemented", command)

	case cmdHelp:
		keyword, ok := tokens.Get()
		if ok {
			dbg.printLine(terminal.StyleHelp, debuggerCommands.Help(keyword))
		} else {
			dbg.printLine(terminal.StyleHelp, debuggerCommands.HelpOverview())
		}

	case cmdQuit:
		if dbg.scriptScribe.IsActive() {
			dbg.printLine(terminal.StyleFeedback, "ending script recording")

			// QUIT when script is being recorded is the same as SCRIPT END
			//
			// we don't want the QUIT command to appear in the script
			dbg.scriptScribe.Rollback()
			if err := dbg.scriptScribe.EndSession(); err != nil {
				return false, err
			}
		} else {
			dbg.running = false
		}

	case cmdReset:
		// attaching the cartridge again restores memory, which a plain
		// machine reset does not do. a self modifying program is debuggable
		// this way
		if err := dbg.attachCartridge(dbg.cartload); err != nil {
			return false, err
		}
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case cmdRun:
		dbg.runUntilHalt = true
		stepNext = true

	case cmdStep:
		num := 1
		if arg, ok := tokens.Get(); ok {
			var err error
			num, err = strconv.Atoi(arg)
			if err != nil || num < 1 {
				return false, fmt.Errorf("number of steps must be a positive number (%s)", arg)
			}
		}
		dbg.stepsRemaining = num
		stepNext = true

	case cmdHalt:
		dbg.haltImmediately = true

	case cmdScript:
		option, _ := tokens.Get()
		switch strings.ToUpper(option) {
		case "RECORD":
			saveFile, _ := tokens.Get()
			if err := dbg.scriptScribe.StartSession(saveFile); err != nil {
				return false, err
			}

			// we don't want the SCRIPT RECORD command to appear in the
			// script
			dbg.scriptScribe.Rollback()

		case "END":
			dbg.scriptScribe.Rollback()
			if err := dbg.scriptScribe.EndSession(); err != nil {
				return false, err
			}

		default:
			// run a script
			tokens.Unget()
			file, _ := tokens.Get()

			plb, err := script.RescribeScript(file)
			if err != nil {
				return false, err
			}

			if dbg.scriptScribe.IsActive() {
				// if we're currently recording a script we want to write
				// this command to the new script file but indicate that we
				// don't want the script to be added to the new script
				// playback
				dbg.scriptScribe.StartPlayback()
				defer dbg.scriptScribe.EndPlayback()
			}

			if err := dbg.inputLoop(plb); err != nil {
				return false, err
			}
		}

	case cmdInsert:
		file, _ := tokens.Get()
		if err := dbg.attachCartridge(cartridgeloader.NewLoader(file)); err != nil {
			return false, err
		}
		dbg.printLine(terminal.StyleFeedback, "machine reset with new cartridge (%s)",
			dbg.cartload.ShortName())

	case cmdCartridge:
		if !dbg.cartload.HasLoaded() {
			dbg.printLine(terminal.StyleFeedback, "no cartridge attached")
			return false, nil
		}

		option, ok := tokens.Get()
		if ok {
			switch strings.ToUpper(option) {
			case "PATH":
				dbg.printLine(terminal.StyleInstrument, "%s", dbg.cartload.Filename)
			case "NAME":
				dbg.printLine(terminal.StyleInstrument, "%s", dbg.cartload.ShortName())
			case "HASH":
				dbg.printLine(terminal.StyleInstrument, "%s", dbg.cartload.Hash)
			}
		} else {
			dbg.printLine(terminal.StyleInstrument, "%s (%d bytes)",
				dbg.cartload.ShortName(), len(dbg.cartload.Data))
		}

	case cmdDisasm:
		attr := disassembly.WriteAttr{}

		option, ok := tokens.Get()
		if ok {
			switch strings.ToUpper(option) {
			case "BYTECODE":
				attr.ByteCode = true
			case "DECODED":
				attr.Decoded = true
			}
		}

		s := &strings.Builder{}
		dbg.Disasm.Write(s, attr)
		if s.Len() == 0 {
			dbg.printLine(terminal.StyleFeedback, "no disassembly")
		} else {
			dbg.printLine(terminal.StyleFeedback, "%s", s.String())
		}

	case cmdGrep:
		scope := disassembly.GrepAll

		option, _ := tokens.Get()
		switch strings.ToUpper(option) {
		case "MNEMONIC":
			scope = disassembly.GrepMnemonic
		case "OPERAND":
			scope = disassembly.GrepOperand
		default:
			tokens.Unget()
		}

		search, _ := tokens.Get()
		s := &strings.Builder{}
		dbg.Disasm.Grep(s, scope, search, false)
		if s.Len() == 0 {
			dbg.printLine(terminal.StyleError, "%s not found in disassembly", search)
		} else {
			dbg.printLine(terminal.StyleFeedback, "%s", s.String())
		}

	case cmdOnHalt:
		if tokens.Remaining() == 0 {
			if len(dbg.commandOnHalt) == 0 {
				dbg.printLine(terminal.StyleFeedback, "no ONHALT command")
			} else {
				dbg.printLine(terminal.StyleFeedback, "ONHALT: %s", joinCommandList(dbg.commandOnHalt))
			}
			return false, nil
		}

		var input string

		option, _ := tokens.Peek()
		switch strings.ToUpper(option) {
		case "OFF":
			dbg.commandOnHalt = dbg.commandOnHalt[:0]
			dbg.printLine(terminal.StyleFeedback, "ONHALT turned off")
			return false, nil

		case "ON":
			dbg.commandOnHalt = dbg.commandOnHaltStored
			dbg.printLine(terminal.StyleFeedback, "ONHALT: %s", joinCommandList(dbg.commandOnHalt))
			return false, nil

		default:
			// token isn't one we recognise so treat the remainder of the
			// tokens list as a new command list
			input = tokens.Remainder()
			tokens.End()
		}

		// tokenise the new command list to check validity
		var err error
		dbg.commandOnHalt, err = dbg.tokeniseCommandList(input)
		if err != nil {
			return false, err
		}

		// store the new command list in case ONHALT is turned off and then
		// back on again
		dbg.commandOnHaltStored = dbg.commandOnHalt

		dbg.printLine(terminal.StyleFeedback, "ONHALT: %s", joinCommandList(dbg.commandOnHalt))

	case cmdOnStep:
		if tokens.Remaining() == 0 {
			if len(dbg.commandOnStep) == 0 {
				dbg.printLine(terminal.StyleFeedback, "no ONSTEP command")
			} else {
				dbg.printLine(terminal.StyleFeedback, "ONSTEP: %s", joinCommandList(dbg.commandOnStep))
			}
			return false, nil
		}

		var input string

		option, _ := tokens.Peek()
		switch strings.ToUpper(option) {
		case "OFF":
			dbg.commandOnStep = dbg.commandOnStep[:0]
			dbg.printLine(terminal.StyleFeedback, "ONSTEP turned off")
			return false, nil

		case "ON":
			dbg.commandOnStep = dbg.commandOnStepStored
			dbg.printLine(terminal.StyleFeedback, "ONSTEP: %s", joinCommandList(dbg.commandOnStep))
			return false, nil

		default:
			input = tokens.Remainder()
			tokens.End()
		}

		var err error
		dbg.commandOnStep, err = dbg.tokeniseCommandList(input)
		if err != nil {
			return false, err
		}

		dbg.commandOnStepStored = dbg.commandOnStep

		dbg.printLine(terminal.StyleFeedback, "ONSTEP: %s", joinCommandList(dbg.commandOnStep))

	case cmdLast:
		// the zero value of the result type means nothing has been executed
		// since the last reset
		if dbg.vm.CPU.LastResult.Instruction.Value == 0 {
			dbg.printLine(terminal.StyleFeedback, "no instruction executed yet")
			return false, nil
		}

		s := strings.Builder{}

		option, ok := tokens.Get()
		if ok && strings.ToUpper(option) == "BYTECODE" {
			s.WriteString(fmt.Sprintf("%04x  ", dbg.vm.CPU.LastResult.Instruction.Value))
		}
		s.WriteString(dbg.vm.CPU.LastResult.String())

		dbg.printLine(terminal.StyleCPUStep, s.String())

	case cmdCPU:
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.vm.CPU.String())

	case cmdMemory:
		addr := uint64(0)
		length := uint64(memory.Size)

		if arg, ok := tokens.Get(); ok {
			var err error
			addr, err = strconv.ParseUint(arg, 0, 16)
			if err != nil || addr >= memory.Size {
				return false, fmt.Errorf("address outside of addressable memory (%s)", arg)
			}
			length = memory.Size - addr

			if arg, ok := tokens.Get(); ok {
				length, err = strconv.ParseUint(arg, 0, 16)
				if err != nil {
					return false, fmt.Errorf("length must be a number (%s)", arg)
				}
			}
		}

		data := make([]uint8, length)
		if err := dbg.vm.Mem.ReadRange(memory.NewAddress(uint16(addr)), data); err != nil {
			return false, err
		}
		dbg.printLine(terminal.StyleInstrument, "%s", hex.Dump(data))

	case cmdPeek:
		// get list of addresses from the token list
		arg, ok := tokens.Get()
		for ok {
			addr, err := strconv.ParseUint(arg, 0, 16)
			if err != nil || addr >= memory.Size {
				dbg.printLine(terminal.StyleError, "address outside of addressable memory (%s)", arg)
			} else {
				ma := memory.NewAddress(uint16(addr))
				dbg.printLine(terminal.StyleInstrument, "%s -> %#02x", ma, dbg.vm.Mem.Read(ma))
			}
			arg, ok = tokens.Get()
		}

	case cmdPoke:
		arg, _ := tokens.Get()
		addr, err := strconv.ParseUint(arg, 0, 16)
		if err != nil || addr >= memory.Size {
			return false, fmt.Errorf("address outside of addressable memory (%s)", arg)
		}

		ma := memory.NewAddress(uint16(addr))

		// poke each value in turn, advancing the address as we go
		arg, ok := tokens.Get()
		for ok {
			val, err := strconv.ParseUint(arg, 0, 8)
			if err != nil {
				dbg.printLine(terminal.StyleError, "poke value must be an 8 bit number (%s)", arg)
				arg, ok = tokens.Get()
				continue
			}

			dbg.vm.Mem.Write(ma, uint8(val))
			dbg.printLine(terminal.StyleInstrument, "%s -> %#02x", ma, dbg.vm.Mem.Read(ma))

			arg, ok = tokens.Get()
			if ok {
				if err := ma.AddAssign(1); err != nil {
					return false, err
				}
			}
		}

	case cmdDisplay:
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.vm.Dsp.String())

	case cmdKeypad:
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.vm.Kpd.String())

	case cmdGrid:
		option, _ := tokens.Get()
		switch strings.ToUpper(option) {
		case "DIGEST":
			dbg.dig.Capture(dbg.vm.Dsp)
			dbg.printLine(terminal.StyleInstrument, dbg.dig.Hash())
		case "RESET":
			dbg.dig.ResetDigest()
			dbg.printLine(terminal.StyleFeedback, "display digest reset")
		}

	case cmdGraph:
		fn, ok := tokens.Get()
		if !ok {
			fn = "gopher8.dot"
		}

		f, err := os.Create(fn)
		if err != nil {
			return false, fmt.Errorf("error creating graph file: %w", err)
		}

		memviz.Map(f, dbg.vm)

		if err := f.Close(); err != nil {
			return false, err
		}
		dbg.printLine(terminal.StyleFeedback, "machine graph written to %s", fn)

	case cmdBreak:
		if err := dbg.breakpoints.parseBreakpoint(tokens); err != nil {
			return false, err
		}

	case cmdList:
		dbg.breakpoints.list()

	case cmdDrop:
		arg, _ := tokens.Get()
		num, err := strconv.Atoi(arg)
		if err != nil {
			return false, fmt.Errorf("drop attribute must be a number (%s)", arg)
		}
		if err := dbg.breakpoints.drop(num); err != nil {
			return false, err
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoint #%d dropped", num)

	case cmdClear:
		dbg.breakpoints.clear()
		dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")

	case cmdLog:
		option, ok := tokens.Get()
		if ok {
			switch strings.ToUpper(option) {
			case "LAST":
				logger.Tail(dbg.printStyle(terminal.StyleFeedback), 1)
			case "RECENT":
				logger.WriteRecent(dbg.printStyle(terminal.StyleFeedback))
			case "CLEAR":
				logger.Clear()
			}
		} else {
			logger.Write(dbg.printStyle(terminal.StyleFeedback))
		}

	case cmdMemUsage:
		s := strings.Builder{}

		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		s.WriteString(fmt.Sprintf("Alloc = %v MB\n", m.Alloc/1048576))
		s.WriteString(fmt.Sprintf("  TotalAlloc = %v MB\n", m.TotalAlloc/1048576))
		s.WriteString(fmt.Sprintf("  Sys = %v MB\n", m.Sys/1048576))
		s.WriteString(fmt.Sprintf("  NumGC = %v", m.NumGC))

		dbg.printLine(terminal.StyleInstrument, s.String())

	case cmdVersion:
		ver, rev, _ := version.Version()

		option, ok := tokens.Get()
		if ok && strings.ToUpper(option) == "REVISION" {
			dbg.printLine(terminal.StyleFeedback, rev)
		} else {
			dbg.printLine(terminal.StyleFeedback, "%s (%s)", version.ApplicationName, ver)
		}
	}

	return stepNext, nil
}
