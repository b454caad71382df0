package internal

import (
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Event is a processed input event in virtual-button space.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
}

// InputProcessor translates raw SDL events into virtual-button events,
// applying the active keyboard and controller mappings.
type InputProcessor struct {
	controllers map[int]*sdl.GameController
	keyMap      map[sdl.Keycode]constants.VirtualButton
	buttonMap   map[uint8]constants.VirtualButton
}

var inputProcessor *InputProcessor

// InitInputProcessor creates the global input processor and opens any
// controllers that are already connected.
func InitInputProcessor() {
	inputProcessor = &InputProcessor{
		controllers: make(map[int]*sdl.GameController),
		keyMap:      defaultKeyMap(),
		buttonMap:   defaultButtonMap(),
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		inputProcessor.openController(i)
	}
}

// GetInputProcessor returns the global input processor. Valid after Init.
func GetInputProcessor() *InputProcessor {
	return inputProcessor
}

func defaultKeyMap() map[sdl.Keycode]constants.VirtualButton {
	return map[sdl.Keycode]constants.VirtualButton{
		sdl.K_UP:        constants.VirtualButtonUp,
		sdl.K_DOWN:      constants.VirtualButtonDown,
		sdl.K_LEFT:      constants.VirtualButtonLeft,
		sdl.K_RIGHT:     constants.VirtualButtonRight,
		sdl.K_RETURN:    constants.VirtualButtonA,
		sdl.K_ESCAPE:    constants.VirtualButtonB,
		sdl.K_x:         constants.VirtualButtonX,
		sdl.K_y:         constants.VirtualButtonY,
		sdl.K_PAGEUP:    constants.VirtualButtonL1,
		sdl.K_PAGEDOWN:  constants.VirtualButtonR1,
		sdl.K_SPACE:     constants.VirtualButtonStart,
		sdl.K_TAB:       constants.VirtualButtonSelect,
		sdl.K_BACKSPACE: constants.VirtualButtonMenu,
	}
}

func defaultButtonMap() map[uint8]constants.VirtualButton {
	return map[uint8]constants.VirtualButton{
		sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
		sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
		sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
		sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
		sdl.CONTROLLER_BUTTON_A:             constants.VirtualButtonA,
		sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonB,
		sdl.CONTROLLER_BUTTON_X:             constants.VirtualButtonX,
		sdl.CONTROLLER_BUTTON_Y:             constants.VirtualButtonY,
		sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
		sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
		sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
		sdl.CONTROLLER_BUTTON_BACK:          constants.VirtualButtonSelect,
		sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
	}
}

func (p *InputProcessor) openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	controller := sdl.GameControllerOpen(index)
	if controller == nil {
		GetInternalLogger().Warn("Failed to open game controller", "index", index)
		return
	}
	p.controllers[index] = controller
}

// ProcessSDLEvent maps a raw SDL event to a virtual-button event.
// Returns nil for events that do not map to a button, including key repeats.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		button, ok := p.keyMap[e.Keysym.Sym]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.Type == sdl.KEYDOWN}

	case *sdl.ControllerButtonEvent:
		button, ok := p.buttonMap[e.Button]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.Type == sdl.CONTROLLERBUTTONDOWN}

	case *sdl.ControllerDeviceEvent:
		if e.Type == sdl.CONTROLLERDEVICEADDED {
			p.openController(int(e.Which))
		}
		return nil
	}

	return nil
}

// CloseAllControllers releases every opened game controller.
func CloseAllControllers() {
	if inputProcessor == nil {
		return
	}
	for _, controller := range inputProcessor.controllers {
		controller.Close()
	}
	inputProcessor.controllers = make(map[int]*sdl.GameController)
}
