package internal

import (
	"os/exec"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
)

// PowerButtonConfig describes how the device power button is wired and what
// to do on short and long presses.
type PowerButtonConfig struct {
	ButtonCode      uint16        // evdev key code of the power button
	DevicePath      string        // /dev/input/eventN device to read
	ShortPressMax   time.Duration // Presses shorter than this suspend; longer shut down
	CoolDownTime    time.Duration // Minimum time between handled presses
	SuspendScript   string        // Command run on short press
	ShutdownCommand string        // Command run on long press
}

// PowerButtonHandler reads the power button input device and triggers
// suspend or shutdown. It runs until the framework shuts down, signalled
// by wg.Done being called on the passed wait group.
func PowerButtonHandler(wg *sync.WaitGroup, pbc PowerButtonConfig) {
	device, err := evdev.Open(pbc.DevicePath)
	if err != nil {
		GetInternalLogger().Error("Failed to open power button device", "path", pbc.DevicePath, "error", err)
		return
	}

	go func() {
		// Reading fails once the device is closed on shutdown.
		wg.Wait()
		device.Close()
	}()

	var pressedAt time.Time
	var lastHandled time.Time

	for {
		event, err := device.ReadOne()
		if err != nil {
			return
		}

		if event.Type != evdev.EV_KEY || uint16(event.Code) != pbc.ButtonCode {
			continue
		}

		switch event.Value {
		case 1: // key down
			pressedAt = time.Now()

		case 0: // key up
			if pressedAt.IsZero() || time.Since(lastHandled) < pbc.CoolDownTime {
				continue
			}
			lastHandled = time.Now()

			held := time.Since(pressedAt)
			pressedAt = time.Time{}

			if held < pbc.ShortPressMax {
				runPowerCommand(pbc.SuspendScript)
			} else {
				runPowerCommand(pbc.ShutdownCommand)
			}
		}
	}
}

func runPowerCommand(command string) {
	if command == "" {
		return
	}

	GetInternalLogger().Info("Running power command", "command", command)

	if err := exec.Command(command).Run(); err != nil {
		GetInternalLogger().Error("Power command failed", "command", command, "error", err)
	}
}
