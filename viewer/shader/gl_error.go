package shader

import "github.com/chwjbn/line-viewer/viewer/gpu"

type getObjIv func(uint32, uint32, *int32)
type getObjInfoLog func(uint32) string

// getGlStatus checks a COMPILE_STATUS or LINK_STATUS style flag and
// fetches the info log when it is not set.
func getGlStatus(glHandle uint32, checkTrueParam uint32, getObjIvFn getObjIv, getObjInfoLogFn getObjInfoLog) (bool, string) {

	var success int32
	getObjIvFn(glHandle, checkTrueParam, &success)

	if success == gpu.FALSE {
		return false, getObjInfoLogFn(glHandle)
	}

	return true, ""
}
