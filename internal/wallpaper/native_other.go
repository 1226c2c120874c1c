//go:build !windows

package wallpaper

import "errors"

func systemParametersInfo(string) error {
	return errors.New("SystemParametersInfoW is only available on windows")
}
