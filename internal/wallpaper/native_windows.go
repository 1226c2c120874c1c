//go:build windows

package wallpaper

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	spiSetDeskWallpaper  = 0x0014
	spifUpdateIniFile    = 0x01
	spifSendWinIniChange = 0x02
)

var procSystemParametersInfo = windows.NewLazySystemDLL("user32.dll").NewProc("SystemParametersInfoW")

// systemParametersInfo stores path as the desktop wallpaper in the user
// profile and broadcasts the change.
func systemParametersInfo(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}

	ret, _, callErr := procSystemParametersInfo.Call(
		uintptr(spiSetDeskWallpaper),
		0,
		uintptr(unsafe.Pointer(p)),
		uintptr(spifUpdateIniFile|spifSendWinIniChange),
	)
	if ret == 0 {
		return callErr
	}
	return nil
}
