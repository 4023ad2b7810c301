package glib

import (
	"fmt"
	"os"
	"os/user"
	"runtime"
)

// HostInfo describes the machine the viewer runs on, for the startup log.
type HostInfo struct {
	OS      string
	Arch    string
	Host    string
	User    string
	Version string
}

func GetHostInfo() HostInfo {

	info := HostInfo{
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
		Host:    "unknown",
		User:    "unknown",
		Version: osVersion(),
	}

	if hostName, _ := os.Hostname(); len(hostName) > 0 {
		info.Host = hostName
	}

	if userData, err := user.Current(); err == nil && userData != nil {
		info.User = userData.Username
	}

	return info
}

func (h HostInfo) String() string {
	return fmt.Sprintf("os=[%s/%s] ver=[%s] host=[%s] user=[%s]", h.OS, h.Arch, h.Version, h.Host, h.User)
}
