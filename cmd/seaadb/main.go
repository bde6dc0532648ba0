// seaadb - graphical front end for SeaScript device automation
package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/fyne-io/terminal"

	"github.com/seatools/seascript/pkg/adb"
	"github.com/seatools/seascript/pkg/seagui"
)

// GuiState holds the shared state behind the seaadb window.
type GuiState struct {
	mu         sync.RWMutex
	app        fyne.App
	mainWindow fyne.Window
	manager    *adb.Manager
	settings   *seagui.Settings

	serial  string
	devices []adb.Device

	deviceSelect *widget.Select
	statusLabel  *widget.Label

	// Terminal console and the pipe its output arrives through
	terminal  *terminal.Terminal
	consoleIn *io.PipeWriter
}

var guiState *GuiState

func main() {
	settings, err := seagui.LoadSettings(seagui.GetConfigPath())
	if err != nil {
		fmt.Printf("Warning: could not load settings: %v\n", err)
	}

	fyneApp := app.New()
	mainWindow := fyneApp.NewWindow("SeaADBTools")
	mainWindow.Resize(fyne.NewSize(900, 560))

	guiState = &GuiState{
		app:        fyneApp,
		mainWindow: mainWindow,
		manager:    adb.NewManager(settings.ADBPath, settings.FastbootPath),
		settings:   settings,
	}

	applyTheme(settings.Theme)

	mainWindow.SetMainMenu(buildMainMenu())
	mainWindow.SetContent(buildContent())

	if !guiState.manager.IsAvailable() {
		consolePrintf("adb executable not found; install platform-tools or set adb_path in %s\n",
			seagui.GetConfigPath())
	} else {
		refreshDevices()
	}

	mainWindow.ShowAndRun()
}

// buildContent assembles the control panel and the console into a split view.
func buildContent() fyne.CanvasObject {
	controls := container.NewVBox(
		buildDeviceSection(),
		widget.NewSeparator(),
		buildADBSection(),
		widget.NewSeparator(),
		buildFastbootSection(),
		widget.NewSeparator(),
		buildScriptSection(),
	)

	split := container.NewHSplit(
		container.NewVScroll(controls),
		buildConsole(),
	)
	split.SetOffset(0.35)
	return split
}

func buildDeviceSection() fyne.CanvasObject {
	guiState.statusLabel = widget.NewLabel("No device selected")

	guiState.deviceSelect = widget.NewSelect(nil, func(serial string) {
		guiState.mu.Lock()
		guiState.serial = serial
		guiState.settings.LastDevice = serial
		settings := *guiState.settings
		guiState.mu.Unlock()

		guiState.statusLabel.SetText("Device: " + serial)
		if err := seagui.SaveSettings(seagui.GetConfigPath(), &settings); err != nil {
			consolePrintf("Warning: could not save settings: %v\n", err)
		}
	})
	guiState.deviceSelect.PlaceHolder = "(no devices)"

	refreshBtn := widget.NewButtonWithIcon("Refresh", theme.ViewRefreshIcon(), refreshDevices)

	return container.NewVBox(
		widget.NewLabel("Device"),
		container.NewBorder(nil, nil, nil, refreshBtn, guiState.deviceSelect),
		guiState.statusLabel,
	)
}

// refreshDevices re-enumerates attached devices off the UI thread and
// updates the selector when done.
func refreshDevices() {
	go func() {
		devices, raw, err := guiState.manager.Devices()
		if err != nil {
			consolePrintf("Device listing failed: %v\n%s", err, raw)
			return
		}

		serials := make([]string, 0, len(devices))
		for _, d := range devices {
			serials = append(serials, d.Serial)
		}

		guiState.mu.Lock()
		guiState.devices = devices
		last := guiState.settings.LastDevice
		guiState.mu.Unlock()

		fyne.Do(func() {
			guiState.deviceSelect.Options = serials
			guiState.deviceSelect.Refresh()
			if len(serials) == 0 {
				guiState.deviceSelect.ClearSelected()
				guiState.statusLabel.SetText("No device connected")
				return
			}
			// Prefer the previously used device when it is still attached
			selected := serials[0]
			for _, s := range serials {
				if s == last {
					selected = s
					break
				}
			}
			guiState.deviceSelect.SetSelected(selected)
		})

		consolePrintf("Found %d device(s)\n", len(devices))
		for _, d := range devices {
			if d.Model != "" {
				consolePrintf("  %s  %s (%s)\n", d.Serial, d.Model, d.State)
			} else {
				consolePrintf("  %s  (%s)\n", d.Serial, d.State)
			}
		}
	}()
}

// selectedSerial returns the current device serial, or "" with a console
// notice when nothing is selected.
func selectedSerial() string {
	guiState.mu.RLock()
	serial := guiState.serial
	guiState.mu.RUnlock()
	if serial == "" {
		consolePrintf("No device selected; connect a device and press Refresh\n")
	}
	return serial
}

// buildConsole creates the embedded terminal that shows command output.
func buildConsole() fyne.CanvasObject {
	stdinReader, stdinWriter := io.Pipe()
	stdoutReader, stdoutWriter := io.Pipe()

	term := terminal.New()
	guiState.terminal = term
	guiState.consoleIn = stdoutWriter

	// The console is display-only; drain keyboard input so typing
	// never blocks the terminal widget.
	go func() {
		_, _ = io.Copy(io.Discard, stdinReader)
	}()

	// RunWithConnection expects: in = where to write keyboard input, out = what to display
	go func() {
		if err := term.RunWithConnection(stdinWriter, stdoutReader); err != nil {
			fmt.Printf("Terminal error: %v\n", err)
		}
	}()

	return newSizedWidget(term, fyne.NewSize(520, 480))
}

// consolePrintf writes formatted text to the embedded console, converting
// line endings for the terminal widget.
func consolePrintf(format string, args ...interface{}) {
	guiState.mu.RLock()
	out := guiState.consoleIn
	guiState.mu.RUnlock()
	if out == nil {
		fmt.Printf(format, args...)
		return
	}
	text := fmt.Sprintf(format, args...)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\n", "\r\n")
	fmt.Fprint(out, text)
}

// consoleWriter adapts consolePrintf to io.Writer for the script logger.
type consoleWriter struct{}

func (consoleWriter) Write(p []byte) (int, error) {
	consolePrintf("%s", string(p))
	return len(p), nil
}

func buildMainMenu() *fyne.MainMenu {
	themeItem := func(label string, mode seagui.ThemeMode) *fyne.MenuItem {
		return fyne.NewMenuItem(label, func() {
			applyTheme(mode)
			guiState.mu.Lock()
			guiState.settings.Theme = mode
			settings := *guiState.settings
			guiState.mu.Unlock()
			if err := seagui.SaveSettings(seagui.GetConfigPath(), &settings); err != nil {
				consolePrintf("Warning: could not save settings: %v\n", err)
			}
		})
	}

	viewMenu := fyne.NewMenu("View",
		themeItem("System Theme", seagui.ThemeAuto),
		themeItem("Dark Theme", seagui.ThemeDark),
		themeItem("Light Theme", seagui.ThemeLight),
	)
	return fyne.NewMainMenu(viewMenu)
}

func applyTheme(mode seagui.ThemeMode) {
	switch mode {
	case seagui.ThemeDark:
		guiState.app.Settings().SetTheme(theme.DarkTheme())
	case seagui.ThemeLight:
		guiState.app.Settings().SetTheme(theme.LightTheme())
	default:
		guiState.app.Settings().SetTheme(theme.DefaultTheme())
	}
}

// sizedWidget wraps a canvas object and enforces a minimum size
type sizedWidget struct {
	widget.BaseWidget
	wrapped fyne.CanvasObject
	minSize fyne.Size
}

func newSizedWidget(wrapped fyne.CanvasObject, minSize fyne.Size) *sizedWidget {
	s := &sizedWidget{
		wrapped: wrapped,
		minSize: minSize,
	}
	s.ExtendBaseWidget(s)
	return s
}

func (s *sizedWidget) CreateRenderer() fyne.WidgetRenderer {
	return &sizedWidgetRenderer{widget: s}
}

func (s *sizedWidget) MinSize() fyne.Size {
	return s.minSize
}

type sizedWidgetRenderer struct {
	widget *sizedWidget
}

func (r *sizedWidgetRenderer) Layout(size fyne.Size) {
	r.widget.wrapped.Resize(size)
	r.widget.wrapped.Move(fyne.NewPos(0, 0))
}

func (r *sizedWidgetRenderer) MinSize() fyne.Size {
	return r.widget.minSize
}

func (r *sizedWidgetRenderer) Refresh() {
	r.widget.wrapped.Refresh()
}

func (r *sizedWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.widget.wrapped}
}

func (r *sizedWidgetRenderer) Destroy() {}
