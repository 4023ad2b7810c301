package glib

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func osVersion() string {
	ver := windows.RtlGetVersion()
	if ver == nil {
		return "unknown"
	}
	return fmt.Sprintf("%d.%d.%d", ver.MajorVersion, ver.MinorVersion, ver.BuildNumber)
}
