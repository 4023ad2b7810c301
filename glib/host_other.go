//go:build !linux && !windows

package glib

import "runtime"

func osVersion() string {
	return runtime.GOOS
}
