//go:build android

package logging

import (
	"unsafe"
)

// #cgo LDFLAGS: -llog
// #include <android/log.h>
// #include <stdlib.h>
import "C"

func logMsg(prio Priority, msg string) {
	ctag := C.CString(LOG_TAG)
	cstr := C.CString(msg)
	C.__android_log_write(C.int(prio), ctag, cstr)
	C.free(unsafe.Pointer(ctag))
	C.free(unsafe.Pointer(cstr))
}
