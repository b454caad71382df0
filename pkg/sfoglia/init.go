// Package sfoglia provides scrolling list components for graphical
// applications on embedded Linux devices, particularly handheld gaming
// consoles running custom firmware like Cannoli.
//
// Its centerpiece is a layout manager that pins the current section's header
// to the viewport edge while the section scrolls, with the next section's
// header pushing it off as it arrives. The package also handles SDL
// initialization, input processing, theming, and pull-to-refresh and
// loading/empty/error states around the list itself.
package sfoglia

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/platform/cannoli"
)

const defaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// Options configures the sfoglia framework initialization.
type Options struct {
	WindowTitle          string                     // Window title displayed in windowed mode
	ShowBackground       bool                       // Whether to render the theme background
	WindowOptions        internal.WindowOptions     // SDL window flags (borderless, resizable, etc.)
	PrimaryThemeColorHex uint32                     // Custom accent color overriding the theme file
	ThemePath            string                     // Path to a Cannoli theme TOML; defaults apply when empty or unreadable
	FontPath             string                     // TTF font path; Cannoli system font when empty
	LogPath              string                     // Full path for log file including filename (creates parent directories)
	PowerButton          internal.PowerButtonConfig // Power button handling; disabled when DevicePath is empty
}

// Init initializes the SDL subsystems, theming, and input handling.
// Must be called before any other sfoglia functions.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	fontPath := options.FontPath
	if fontPath == "" {
		fontPath = defaultFontPath
	}

	theme := cannoli.DefaultTheme(fontPath)
	if options.ThemePath != "" {
		loaded, err := cannoli.LoadTheme(options.ThemePath, fontPath)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to load theme, using defaults",
				"path", options.ThemePath, "error", err)
		} else {
			theme = loaded
		}
	}
	if options.PrimaryThemeColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
	}
	internal.SetTheme(theme)

	internal.Init(options.WindowTitle, options.ShowBackground, options.WindowOptions, options.PowerButton)
}

// Close releases all SDL resources and shuts down the framework.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}

// HideWindow hides the application window.
func HideWindow() {
	internal.GetWindow().Window.Hide()
}

// ShowWindow shows the application window.
func ShowWindow() {
	internal.GetWindow().Window.Show()
}
