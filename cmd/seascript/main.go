package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/seatools/seascript"
	"github.com/seatools/seascript/pkg/adb"
	"github.com/seatools/seascript/pkg/seagui"
)

var version = "dev" // set via -ldflags at build time

// ANSI color codes for terminal output
const (
	colorYellow = "\x1b[93m" // Bright yellow foreground
	colorCyan   = "\x1b[96m"
	colorReset  = "\x1b[0m" // Reset to default
)

// stderrSupportsColor checks if stderr is a terminal that supports color output
// Returns true if we should use ANSI color codes
func stderrSupportsColor() bool {
	stderrInfo, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	// ModeCharDevice indicates a terminal
	if (stderrInfo.Mode() & os.ModeCharDevice) == 0 {
		return false
	}

	// Respect NO_COLOR environment variable (https://no-color.org/)
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}

	// Check TERM isn't "dumb" (which doesn't support colors)
	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return true
}

// errorPrintf prints an error message to stderr, using color if supported
func errorPrintf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if stderrSupportsColor() {
		fmt.Fprintf(os.Stderr, "%s%s%s", colorYellow, message, colorReset)
	} else {
		fmt.Fprint(os.Stderr, message)
	}
}

// progressPrintf prints a command-progress line to stderr, colored when supported
func progressPrintf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if stderrSupportsColor() {
		fmt.Fprintf(os.Stderr, "%s%s%s", colorCyan, message, colorReset)
	} else {
		fmt.Fprint(os.Stderr, message)
	}
}

func main() {
	versionFlag := flag.Bool("version", false, "Show version and exit")
	debugFlag := flag.Bool("debug", false, "Enable debug output")
	flag.BoolVar(debugFlag, "d", false, "Enable debug output (short)")
	dryRunFlag := flag.Bool("dry-run", false, "Expand the script and print the commands without running them")
	deviceFlag := flag.String("device", "", "Serial of the device to target")
	adbFlag := flag.String("adb", "", "Path to the adb executable (default: auto-detect)")
	fastbootFlag := flag.String("fastboot", "", "Path to the fastboot executable (default: auto-detect)")

	flag.Usage = showUsage
	flag.Parse()

	if *versionFlag {
		fmt.Printf("seascript version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()

	var scriptFile string
	var scriptContent string

	// Check if stdin is redirected/piped
	isStdinRedirected := !term.IsTerminal(int(os.Stdin.Fd()))

	if len(args) > 0 {
		requestedFile := args[0]
		foundFile := findScriptFile(requestedFile)

		if foundFile == "" {
			errorPrintf("Error: Script file not found: %s\n", requestedFile)
			if !strings.Contains(requestedFile, ".") {
				errorPrintf("Also tried: %s.sea\n", requestedFile)
			}
			os.Exit(1)
		}

		scriptFile = foundFile
		content, err := os.ReadFile(scriptFile)
		if err != nil {
			errorPrintf("Error reading script file: %v\n", err)
			os.Exit(1)
		}
		scriptContent = string(content)

	} else if isStdinRedirected {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			errorPrintf("Error reading from stdin: %v\n", err)
			os.Exit(1)
		}
		scriptContent = string(content)

	} else {
		showUsage()
		os.Exit(1)
	}

	config := seascript.DefaultConfig()
	config.Debug = *debugFlag
	sea := seascript.New(config)

	commands, err := sea.ExpandSource(scriptContent, scriptFile, *deviceFlag)
	if err != nil {
		// The expansion error was already rendered with source context.
		os.Exit(1)
	}

	if *dryRunFlag {
		for _, command := range commands {
			fmt.Println(command)
		}
		os.Exit(0)
	}

	manager := adb.NewManager(*adbFlag, *fastbootFlag)
	if !manager.IsAvailable() {
		errorPrintf("Error: adb executable not found; install platform-tools or pass -adb\n")
		os.Exit(1)
	}

	serial := *deviceFlag
	if serial == "" {
		serial = pickDevice(manager)
	}

	runner := &seagui.ScriptRunner{
		Executor: deviceExecutor{manager: manager, serial: serial},
		OnCommand: func(i int, command string) {
			progressPrintf("[%d/%d] %s\n", i+1, len(commands), command)
		},
		OnOutput: func(i int, output string) {
			if output != "" {
				fmt.Print(output)
				if !strings.HasSuffix(output, "\n") {
					fmt.Println()
				}
			}
		},
		OnError: func(i int, command string, err error) {
			errorPrintf("Error: command %q failed: %v\n", command, err)
		},
	}

	if _, err := runner.Run(commands); err != nil {
		os.Exit(1)
	}
}

// deviceExecutor adapts an adb.Manager to the seagui.Executor interface.
type deviceExecutor struct {
	manager *adb.Manager
	serial  string
}

func (e deviceExecutor) Execute(command string) (string, error) {
	return e.manager.Run(e.serial, command)
}

// pickDevice returns the sole connected device serial, or exits with a
// listing when zero or several devices are attached.
func pickDevice(manager *adb.Manager) string {
	serials, err := manager.Serials()
	if err != nil {
		errorPrintf("Error listing devices: %v\n", err)
		os.Exit(1)
	}
	switch len(serials) {
	case 0:
		errorPrintf("Error: no devices connected\n")
		os.Exit(1)
	case 1:
		return serials[0]
	}
	errorPrintf("Error: multiple devices connected; pick one with -device:\n")
	for _, serial := range serials {
		fmt.Fprintf(os.Stderr, "  %s\n", serial)
	}
	os.Exit(1)
	return ""
}

func findScriptFile(filename string) string {
	// First try the exact filename
	if _, err := os.Stat(filename); err == nil {
		return filename
	}

	// If no extension, try adding .sea
	if filepath.Ext(filename) == "" {
		seaFile := filename + ".sea"
		if _, err := os.Stat(seaFile); err == nil {
			return seaFile
		}
	}

	return ""
}

func showUsage() {
	usage := `Usage: seascript [options] script.sea
       seascript [options] < input.sea
       echo "commands" | seascript [options]

Expand a SeaScript automation script and run the resulting commands
against a connected Android device via adb and fastboot.

Options:
  -device SERIAL      Serial of the device to target
                      (default: the sole connected device)
  -adb PATH           Path to the adb executable (default: auto-detect)
  -fastboot PATH      Path to the fastboot executable (default: auto-detect)
  -dry-run            Print the expanded commands without running them
  -d, -debug          Enable debug output
  -version            Show version and exit

Arguments:
  script.sea          Script file to execute (adds .sea extension if needed)

Examples:
  seascript provision.sea
  seascript -device emulator-5554 provision.sea
  seascript -dry-run provision            # expands provision.sea, prints commands
`
	fmt.Fprint(os.Stderr, usage)
}
