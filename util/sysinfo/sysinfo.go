package sysinfo

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/boolean-maybe/todos/config"
	"github.com/gdamore/tcell/v2"
)

// SystemInfo describes the environment the app runs in: OS, terminal
// capabilities and the files it reads and writes.
type SystemInfo struct {
	OS           string
	Architecture string
	OSVersion    string

	TermType      string // $TERM
	ColorTerm     string // $COLORTERM
	ColorFGBG     string // $COLORFGBG
	DetectedTheme string // "dark", "light", "unknown"

	// set only by NewSystemInfoWithScreen
	TerminalWidth  int
	TerminalHeight int

	ColorSupport string // "monochrome", "16-color", "256-color", "truecolor"
	ColorCount   int

	ConfigDir   string
	DataDir     string
	StorageFile string
	StorageKey  string
	LogFile     string
}

// NewSystemInfo collects environment details using terminfo (no screen needed).
// Paths are empty when config.InitPaths has not run.
func NewSystemInfo() *SystemInfo {
	info := &SystemInfo{
		OS:           runtime.GOOS,
		Architecture: runtime.GOARCH,
		OSVersion:    osVersion(),
		TermType:     os.Getenv("TERM"),
		ColorTerm:    os.Getenv("COLORTERM"),
		ColorFGBG:    os.Getenv("COLORFGBG"),
	}
	info.DetectedTheme = detectTheme(info.ColorFGBG)
	info.ColorSupport, info.ColorCount = colorSupportFromTerminfo(info.TermType, info.ColorTerm)

	info.ConfigDir = safePath(config.GetConfigDir)
	info.DataDir = safePath(config.GetDataDir)
	info.LogFile = safePath(config.GetLogFile)
	info.StorageFile = safePath(config.GetStorageFile)
	info.StorageKey = config.GetStorageKey()

	return info
}

// NewSystemInfoWithScreen adds the dimensions and color count of a running screen.
func NewSystemInfoWithScreen(screen tcell.Screen) *SystemInfo {
	info := NewSystemInfo()
	info.TerminalWidth, info.TerminalHeight = screen.Size()
	info.ColorCount = screen.Colors()
	info.ColorSupport = colorSupport(info.ColorCount)
	return info
}

// LogAttrs returns the information as slog key/value pairs
func (s *SystemInfo) LogAttrs() []any {
	attrs := []any{
		"os", s.OS,
		"arch", s.Architecture,
		"os_version", s.OSVersion,
		"term", s.TermType,
		"colorterm", s.ColorTerm,
		"theme", s.DetectedTheme,
		"color_support", s.ColorSupport,
		"config_dir", s.ConfigDir,
		"storage_file", s.StorageFile,
		"storage_key", s.StorageKey,
	}
	if s.TerminalWidth > 0 && s.TerminalHeight > 0 {
		attrs = append(attrs, "terminal", fmt.Sprintf("%dx%d", s.TerminalWidth, s.TerminalHeight))
	}
	return attrs
}

// String returns a human-readable report
func (s *SystemInfo) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "OS:            %s/%s (%s)\n", s.OS, s.Architecture, s.OSVersion)
	fmt.Fprintf(&b, "Terminal:      %s (COLORTERM=%s)\n", s.TermType, s.ColorTerm)
	fmt.Fprintf(&b, "Theme:         %s\n", s.DetectedTheme)
	fmt.Fprintf(&b, "Color Support: %s (%d colors)\n", s.ColorSupport, s.ColorCount)
	if s.TerminalWidth > 0 && s.TerminalHeight > 0 {
		fmt.Fprintf(&b, "Dimensions:    %dx%d\n", s.TerminalWidth, s.TerminalHeight)
	}
	fmt.Fprintf(&b, "Config Dir:    %s\n", s.ConfigDir)
	fmt.Fprintf(&b, "Data Dir:      %s\n", s.DataDir)
	fmt.Fprintf(&b, "Storage:       %s (key %q)\n", s.StorageFile, s.StorageKey)
	fmt.Fprintf(&b, "Log File:      %s\n", s.LogFile)
	return b.String()
}

// detectTheme reads the background index from $COLORFGBG ("fg;bg" or "fg;default;bg").
func detectTheme(colorFGBG string) string {
	parts := strings.Split(colorFGBG, ";")
	if len(parts) < 2 {
		return "unknown"
	}
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return "unknown"
	}
	if bg == 7 || bg >= 9 {
		return "light"
	}
	return "dark"
}

// colorSupportFromTerminfo checks $COLORTERM first, then the terminfo entry for $TERM
func colorSupportFromTerminfo(term, colorterm string) (string, int) {
	if colorterm == "truecolor" || colorterm == "24bit" {
		return "truecolor", 1 << 24
	}
	if term == "" {
		return "unknown", 0
	}
	ti, err := tcell.LookupTerminfo(term)
	if err != nil || ti == nil {
		return "unknown", 0
	}
	return colorSupport(ti.Colors), ti.Colors
}

func colorSupport(colors int) string {
	switch {
	case colors >= 1<<24:
		return "truecolor"
	case colors >= 256:
		return "256-color"
	case colors >= 16:
		return "16-color"
	case colors >= 2:
		return "monochrome"
	default:
		return "unknown"
	}
}

// osVersion reads PRETTY_NAME from /etc/os-release on Linux
func osVersion() string {
	if runtime.GOOS != "linux" {
		return "unknown"
	}
	data, err := os.ReadFile("/etc/os-release")
	if err != nil {
		return "unknown"
	}
	for _, line := range strings.Split(string(data), "\n") {
		if v, ok := strings.CutPrefix(line, "PRETTY_NAME="); ok {
			return strings.Trim(v, `"`)
		}
	}
	return "unknown"
}

// safePath returns "" instead of panicking when paths are not initialized
func safePath(get func() string) (path string) {
	defer func() {
		if recover() != nil {
			path = ""
		}
	}()
	return get()
}
