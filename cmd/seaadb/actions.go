package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	fynedialog "fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sqweek/dialog"

	"github.com/seatools/seascript"
	"github.com/seatools/seascript/pkg/seagui"
)

// runDeviceAction runs one adb/fastboot action off the UI thread and
// echoes its output to the console.
func runDeviceAction(label string, action func(serial string) (string, error)) {
	serial := selectedSerial()
	if serial == "" {
		return
	}
	go func() {
		consolePrintf("> %s\n", label)
		output, err := action(serial)
		if output != "" {
			consolePrintf("%s", output)
			if !strings.HasSuffix(output, "\n") {
				consolePrintf("\n")
			}
		}
		if err != nil {
			consolePrintf("Error: %v\n", err)
		}
	}()
}

func buildADBSection() fyne.CanvasObject {
	rebootBtn := widget.NewButton("Reboot", func() {
		runDeviceAction("reboot", func(serial string) (string, error) {
			return guiState.manager.Reboot(serial, "")
		})
	})

	screenshotBtn := widget.NewButton("Screenshot", func() {
		serial := selectedSerial()
		if serial == "" {
			return
		}
		go func() {
			defaultName := "screenshot-" + time.Now().Format("20060102-150405") + ".png"
			path, err := dialog.File().
				Filter("PNG image", "png").
				Title("Save screenshot").
				SetStartFile(defaultName).
				Save()
			if err != nil {
				return // cancelled
			}
			if filepath.Ext(path) == "" {
				path += ".png"
			}
			consolePrintf("> screenshot -> %s\n", path)
			if out, err := guiState.manager.Screenshot(serial, path); err != nil {
				consolePrintf("Error: %v\n%s", err, out)
			} else {
				consolePrintf("Saved %s\n", path)
			}
		}()
	})

	installBtn := widget.NewButton("Install APK", func() {
		serial := selectedSerial()
		if serial == "" {
			return
		}
		go func() {
			path, err := dialog.File().
				Filter("Android package", "apk").
				Title("Select APK").
				Load()
			if err != nil {
				return // cancelled
			}
			consolePrintf("> install %s\n", path)
			output, err := guiState.manager.InstallAPK(serial, path)
			consolePrintf("%s", output)
			if err != nil {
				consolePrintf("Error: %v\n", err)
			}
		}()
	})

	commandEntry := widget.NewEntry()
	commandEntry.SetPlaceHolder("adb arguments, e.g. shell getprop ro.product.model")
	runCommand := func(command string) {
		command = strings.TrimSpace(command)
		if command == "" {
			return
		}
		runDeviceAction(command, func(serial string) (string, error) {
			return guiState.manager.Run(serial, command)
		})
	}
	commandEntry.OnSubmitted = runCommand
	runBtn := widget.NewButton("Run", func() { runCommand(commandEntry.Text) })

	return container.NewVBox(
		widget.NewLabel("ADB"),
		container.NewGridWithColumns(3, rebootBtn, screenshotBtn, installBtn),
		container.NewBorder(nil, nil, nil, runBtn, commandEntry),
	)
}

func buildFastbootSection() fyne.CanvasObject {
	rebootBtn := widget.NewButton("Reboot to Fastboot", func() {
		runDeviceAction("reboot-bootloader", func(serial string) (string, error) {
			return guiState.manager.RebootBootloader(serial)
		})
	})

	flashBtn := widget.NewButton("Flash Image", func() {
		serial := selectedSerial()
		if serial == "" {
			return
		}
		go func() {
			imagePath, err := dialog.File().
				Filter("Image file", "img").
				Title("Select image to flash").
				Load()
			if err != nil {
				return // cancelled
			}
			fyne.Do(func() { promptFlashPartition(serial, imagePath) })
		}()
	})

	unlockBtn := widget.NewButton("Unlock Bootloader", func() {
		serial := selectedSerial()
		if serial == "" {
			return
		}
		fynedialog.ShowConfirm("Unlock Bootloader",
			"Unlocking the bootloader erases all user data on most devices.\nContinue?",
			func(confirmed bool) {
				if !confirmed {
					return
				}
				runDeviceAction("fastboot oem unlock", func(serial string) (string, error) {
					return guiState.manager.UnlockBootloader(serial)
				})
			}, guiState.mainWindow)
	})

	return container.NewVBox(
		widget.NewLabel("Fastboot"),
		container.NewGridWithColumns(3, rebootBtn, flashBtn, unlockBtn),
	)
}

// promptFlashPartition asks for the target partition, then flashes.
// Must be called on the UI thread.
func promptFlashPartition(serial, imagePath string) {
	partitionEntry := widget.NewEntry()
	partitionEntry.SetPlaceHolder("boot, recovery, system...")
	form := fynedialog.NewForm("Flash "+filepath.Base(imagePath), "Flash", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Partition", partitionEntry)},
		func(confirmed bool) {
			if !confirmed {
				return
			}
			partition := strings.TrimSpace(partitionEntry.Text)
			if partition == "" {
				consolePrintf("Flash cancelled: no partition given\n")
				return
			}
			go func() {
				consolePrintf("> fastboot flash %s %s\n", partition, imagePath)
				output, err := guiState.manager.Flash(serial, partition, imagePath)
				consolePrintf("%s", output)
				if err != nil {
					consolePrintf("Error: %v\n", err)
				}
			}()
		}, guiState.mainWindow)
	form.Resize(fyne.NewSize(360, 140))
	form.Show()
}

func buildScriptSection() fyne.CanvasObject {
	runScriptBtn := widget.NewButton("Run Script...", func() {
		serial := selectedSerial()
		if serial == "" {
			return
		}
		go func() {
			path, err := dialog.File().
				Filter("SeaScript", "sea").
				Title("Select script").
				Load()
			if err != nil {
				return // cancelled
			}
			runScript(serial, path)
		}()
	})

	return container.NewVBox(
		widget.NewLabel("Script"),
		runScriptBtn,
	)
}

// runScript expands a SeaScript file and feeds the resulting commands to
// the selected device, echoing progress to the console.
func runScript(serial, path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		consolePrintf("Error reading script: %v\n", err)
		return
	}

	sea := seascript.New(seascript.DefaultConfig())
	sea.Logger().SetOutput(consoleWriter{}, consoleWriter{})

	commands, err := sea.ExpandSource(string(content), path, serial)
	if err != nil {
		// The expansion error was already rendered to the console.
		return
	}

	consolePrintf("Running %s (%d commands)\n", filepath.Base(path), len(commands))

	runner := &seagui.ScriptRunner{
		Executor: scriptExecutor{serial: serial},
		OnCommand: func(i int, command string) {
			consolePrintf("[%d/%d] %s\n", i+1, len(commands), command)
		},
		OnOutput: func(i int, output string) {
			if output != "" {
				consolePrintf("%s", output)
				if !strings.HasSuffix(output, "\n") {
					consolePrintf("\n")
				}
			}
		},
		OnError: func(i int, command string, err error) {
			consolePrintf("Error: command %q failed: %v\n", command, err)
		},
		OnDone: func(executed int) {
			consolePrintf("Script finished: %d command(s) executed\n", executed)
		},
	}
	_, _ = runner.Run(commands)
}

// scriptExecutor routes expanded script commands to the adb manager.
type scriptExecutor struct {
	serial string
}

func (e scriptExecutor) Execute(command string) (string, error) {
	return guiState.manager.Run(e.serial, command)
}
