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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/debugger"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopher8/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/glplay"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/regression"
	"github.com/jetsetilly/gopher8/resources"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/version"
)

const defaultInitScript = "debuggerInit"

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. for example, the playmode and debugger packages
	// provide a mode specific handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all).
	// It MUST ONLY be called as part of a larger loop from the main thread.
	// It should service all gui events that are not safe to do in
	// sub-threads.
	//
	// If the GUI framework does not require this sort of thread safety then
	// there is no need for the Service() function to do anything.
	Service()
}

// communication between the main() function and the launch() function. this
// is required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with a reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with a reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	//
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// gui is a variable of interface type. nil doesn't work as
				// you might expect with interfaces. for instance, even
				// though the following outputs "<nil>":
				//
				//	fmt.Println(gui)
				//
				// the following comparison prints false:
				//
				//	fmt.Println(gui == nil)
				//
				// as to the reason why gui does not equal nil, even though
				// the creator() function returns nil? well, you tell me.
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			// service the most recently created gui (if there is one)
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PLAY", "DEBUG", "DISASM", "PERFORMANCE", "REGRESS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		fallthrough

	case "PLAY":
		err = play(md, sync)

	case "DEBUG":
		err = debug(md, sync)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md, sync)

	case "REGRESS":
		err = regress(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	scaling := md.AddFloat64("scale", 0.0, "window scaling (0 uses the preference value)")
	useGL := md.AddBool("gl", false, "use the OpenGL window in preference to the SDL window")
	tickRate := md.AddInt("tickrate", 0, "ticks per second (0 uses the preference value)")
	wav := md.AddString("wav", "", "record audio to wav file")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))

		// create gui
		sync.creator <- func() (GuiCreator, error) {
			if *useGL {
				return glplay.NewGlPlay(float32(*scaling))
			}
			return sdlplay.NewSdlPlay(float32(*scaling))
		}

		// wait for creator result
		var scr gui.GUI
		select {
		case g := <-sync.creation:
			scr = g.(gui.GUI)
		case err := <-sync.creationError:
			return err
		}

		// turn off fallback ctrl-c handling. this so that the playmode can
		// end the session gracefully
		sync.state <- stateRequest{req: reqNoIntSig}

		err = playmode.Play(scr, cartload, *tickRate, *wav)
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func debug(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	defInitScript, err := resources.JoinPath(defaultInitScript)
	if err != nil {
		return err
	}

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	initScript := md.AddString("initscript", defInitScript, "script to run on debugger start")
	useGui := md.AddBool("gui", false, "open the emulation window alongside the terminal")
	profile := md.AddBool("profile", false, "run debugger through cpu profiler")
	stats := md.AddBool("statsview", false, "run stats server (see statsview package)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Println("! statsview is not available in this build")
		}
	}

	var term terminal.Terminal
	var scr gui.GUI

	// create gui
	if *useGui {
		sync.creator <- func() (GuiCreator, error) {
			return sdlplay.NewSdlPlay(0)
		}

		// wait for creator result
		select {
		case g := <-sync.creation:
			scr = g.(gui.GUI)
		case err := <-sync.creationError:
			return err
		}

		if err := scr.ReqFeature(gui.ReqSetVisibility, true); err != nil {
			return err
		}

		// if gui implements the terminal.Broker interface use that terminal
		// as a preference
		if b, ok := scr.(terminal.Broker); ok {
			term = b.GetTerminal()
		}
	} else {
		scr = gui.Stub{}
	}

	// if the GUI does not supply a terminal then use a color or plain
	// terminal as a fallback
	if term == nil {
		switch strings.ToUpper(*termType) {
		default:
			fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
			fallthrough
		case "PLAIN":
			term = &plainterm.PlainTerminal{}
		case "COLOR":
			term = &colorterm.ColorTerminal{}
		}
	}

	// turn off fallback ctrl-c handling. this so that the debugger can use
	// ctrl-c events to interrupt execution of the emulation without quitting
	// the debugger itself
	sync.state <- stateRequest{req: reqNoIntSig}

	// prepare new debugger instance
	dbg, err := debugger.NewDebugger(scr, term)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)

	case 1:
		// set up a running function
		dbgRun := func() error {
			cartload := cartridgeloader.NewLoader(md.GetArg(0))
			return dbg.Start(*initScript, cartload)
		}

		// if profile generation has been requested then pass the dbgRun()
		// function prepared above through the ProfileCPU() command
		if *profile {
			err := performance.ProfileCPU("debug.cpu.profile", dbgRun)
			if err != nil {
				return err
			}
			err = performance.ProfileMem("debug.mem.profile")
			if err != nil {
				return err
			}
		} else {
			// no profile required so run dbgRun() function as normal
			err := dbgRun()
			if err != nil {
				return err
			}
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include opcode bytes with each entry")
	decoded := md.AddBool("decoded", false, "include entries not reached by the flow analysis")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		attr := disassembly.WriteAttr{
			ByteCode: *bytecode,
			Decoded:  *decoded,
		}

		cartload := cartridgeloader.NewLoader(md.GetArg(0))

		dsm, err := disassembly.FromCartridge(cartload)
		if err != nil {
			return err
		}

		dsm.Write(md.Output, attr)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func perform(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	display := md.AddBool("display", false, "display emulation screen during the measurement")
	scaling := md.AddFloat64("scale", 0.0, "window scaling (only valid if -display=true)")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")
	stats := md.AddBool("statsview", false, "run stats server (see statsview package)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Println("! statsview is not available in this build")
		}
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))

		var scr gui.GUI

		if *display {
			// create gui
			sync.creator <- func() (GuiCreator, error) {
				return sdlplay.NewSdlPlay(float32(*scaling))
			}

			// wait for creator result
			select {
			case g := <-sync.creation:
				scr = g.(gui.GUI)
			case err := <-sync.creationError:
				return err
			}

			if err := scr.ReqFeature(gui.ReqSetVisibility, true); err != nil {
				return err
			}
		}

		err = performance.Check(md.Output, *profile, scr, cartload, *duration)
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

type yesReader struct{}

func (*yesReader) Read(p []byte) (n int, err error) {
	p[0] = 'y'
	return 1, nil
}

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		verbose := md.AddBool("verbose", false, "output more detail (eg. error messages)")
		failOnError := md.AddBool("fail", false, "stop when a test fails")

		md.AdditionalHelp(
			`Keys to run can be listed explicitly. An empty list runs every entry in the
database. The special key FAILS expands to the keys that failed on the
previous run.`)

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		err = regression.RegressRunTests(md.Output, *verbose, *failOnError, md.RemainingArgs())
		if err != nil {
			return err
		}

	case "LIST":
		md.NewMode()

		// no additional arguments

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			err := regression.RegressList(md.Output)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			// use stdin for confirmation unless "yes" flag has been sent
			var confirmation io.Reader
			if *answerYes {
				confirmation = &yesReader{}
			} else {
				confirmation = os.Stdin
			}

			err := regression.RegressDelete(md.Output, confirmation, md.GetArg(0))
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("only one entry can be deleted at a time")
		}

	case "ADD":
		return regressAdd(md)
	}

	return nil
}

func regressAdd(md *modalflag.Modes) error {
	md.NewMode()

	mode := md.AddString("mode", "video", "digest to compare: VIDEO, AUDIO, BOTH")
	ticks := md.AddInt("ticks", 10000, "number of ticks to run")
	seed := md.AddUint64("seed", 0, "reseed value for the random number generator")
	notes := md.AddString("notes", "", "additional annotation for the database")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	md.AdditionalHelp(
		`The regression test to be added is the path to a cartridge file. The test runs
the cartridge for the specified number of ticks and compares a digest of the
output against the digest recorded when the test was added.

Available modes are VIDEO, AUDIO and BOTH. VIDEO hashes the display every time
it changes. AUDIO hashes the state of the beeper at every tick. BOTH combines
the two.

The -seed flag pins the random number generator so that programs using the
random instruction produce the same digest on every run.

Note that asking for log output will suppress regression progress meters.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout, false)
		md.Output = &nopWriter{}
	} else {
		logger.SetEcho(nil, false)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		digestMode, err := regression.ParseDigestMode(*mode)
		if err != nil {
			return err
		}

		reg := &regression.DigestRegression{
			Mode:      digestMode,
			Cartridge: md.GetArg(0),
			NumTicks:  *ticks,
			Seed:      *seed,
			Notes:     *notes,
		}

		err = regression.RegressAdd(md.Output, reg)
		if err != nil {
			// using carriage return (without newline) at the beginning of
			// the error message because we want to overwrite the last output
			// from RegressAdd()
			return fmt.Errorf("\rerror adding regression test: %v", err)
		}
	default:
		return fmt.Errorf("regression tests can only be added one at a time")
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display vcs revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	vers, rev, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, vers)
	if *revision {
		fmt.Fprintln(md.Output, rev)
	}

	return nil
}

// nopWriter is an empty writer.
type nopWriter struct{}

func (*nopWriter) Write(p []byte) (n int, err error) {
	return 0, nil
}
