package wallpaper

import "strings"

// Target describes the host the wallpaper is applied to. It is built once
// from the process environment and only used to pick a Setter.
type Target struct {
	OS      string
	Desktop string
	Session string
}

// DetectTarget builds a Target for goos. Desktop and session type are only
// read on Linux, from XDG_CURRENT_DESKTOP and XDG_SESSION_TYPE; unset
// variables yield empty strings.
func DetectTarget(goos string, getenv func(string) string) Target {
	t := Target{OS: goos}
	if goos == "linux" {
		t.Desktop = getenv("XDG_CURRENT_DESKTOP")
		t.Session = getenv("XDG_SESSION_TYPE")
	}
	return t
}

type desktopKind int

const (
	desktopUnknown desktopKind = iota
	desktopGNOME
	desktopKDE
	desktopXFCE
)

func (k desktopKind) String() string {
	switch k {
	case desktopGNOME:
		return "gnome"
	case desktopKDE:
		return "kde"
	case desktopXFCE:
		return "xfce"
	}
	return "unknown"
}

// classifyDesktop matches case-insensitively on substrings, so values like
// "ubuntu:GNOME" or "KDE Plasma" are recognised. GNOME wins over KDE, which
// wins over XFCE.
func classifyDesktop(desktop string) desktopKind {
	d := strings.ToLower(desktop)
	switch {
	case strings.Contains(d, "gnome"):
		return desktopGNOME
	case strings.Contains(d, "kde"), strings.Contains(d, "plasma"):
		return desktopKDE
	case strings.Contains(d, "xfce"):
		return desktopXFCE
	}
	return desktopUnknown
}
