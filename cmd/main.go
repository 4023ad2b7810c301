package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/chwjbn/line-viewer/glib"
	"github.com/chwjbn/line-viewer/glog"
	"github.com/chwjbn/line-viewer/viewer/app"
	"github.com/chwjbn/line-viewer/viewer/gconfig"
)

func init() {
	// GL and glfw calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {

	configPath := flag.String("config", gconfig.DefaultPath(), "viewer config file")
	writeConfig := flag.Bool("write-config", false, "write the effective config to -config and exit")
	flag.Parse()

	xMeta, xErr := gconfig.Load(*configPath)
	if xErr != nil {
		glog.StdError(xErr.Error())
		os.Exit(1)
	}

	if *writeConfig {
		if xErr = gconfig.Save(*configPath, xMeta); xErr != nil {
			glog.StdError(xErr.Error())
			os.Exit(1)
		}
		glog.StdInfo("config written to " + *configPath)
		return
	}

	xErr = glog.Init(glog.Options{
		Dir:     xMeta.LogDir(),
		Release: xMeta.Log.Release,
		Debug:   xMeta.Log.Debug,
	})
	if xErr != nil {
		glog.StdError(xErr.Error())
		os.Exit(1)
	}
	defer glog.Sync()

	glog.InfoF("app begin %s", glib.GetHostInfo().String())

	xViewer, xErr := app.NewViewer(xMeta)
	if xErr != nil {
		glog.Error(xErr.Error())
		glog.Sync()
		os.Exit(1)
	}

	xViewer.Run()
	xViewer.Release()

	glog.Info("app end")
}
