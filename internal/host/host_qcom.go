//go:build qcomhost

package host

import (
	"errors"
	"fmt"
	"time"
	"unsafe"

	"github.com/AndroidPlusProject/powerpulse-qcom/internal/config"
	"github.com/AndroidPlusProject/powerpulse-qcom/internal/hal"
)

/*
#include <stdlib.h>

// Provided by the vendor power HAL (utils.c) that dlopens PowerPulse.
extern int get_soc_id(void);
extern int get_scaling_governor_check_cores(char governor[], int size, int core_num);
extern int sysfs_write(char *path, char *s);
extern void interaction(int duration, int num_args, int opt_list[]);
extern int perform_hint_action(int hint_id, int resource_values[], int num_resources);
extern void undo_hint_action(int hint_id);
*/
import "C"

const governorLen = 80

type qcomHost struct{}

func newPlatform(config.Config) hal.Platform {
	h := qcomHost{}
	return hal.Platform{Chip: h, Governor: h, Sysfs: h, Runtime: h}
}

func (qcomHost) SocID() (int, error) {
	id := int(C.get_soc_id())
	if id < 0 {
		return 0, errors.New("get_soc_id failed")
	}
	return id, nil
}

func (qcomHost) Governor(cpu int) (string, error) {
	buf := (*C.char)(C.malloc(governorLen))
	defer C.free(unsafe.Pointer(buf))
	if C.get_scaling_governor_check_cores(buf, governorLen, C.int(cpu)) == -1 {
		return "", fmt.Errorf("cpu%d governor unavailable", cpu)
	}
	return C.GoString(buf), nil
}

func (qcomHost) Write(path, value string) error {
	cpath := C.CString(path)
	cvalue := C.CString(value)
	defer C.free(unsafe.Pointer(cpath))
	defer C.free(unsafe.Pointer(cvalue))
	if C.sysfs_write(cpath, cvalue) != 0 {
		return fmt.Errorf("sysfs_write %s failed", path)
	}
	return nil
}

// cTable copies a table into C memory; the runtime keeps no reference past
// the call, but cgo forbids handing it Go memory it might retain.
func cTable(t hal.Table) (*C.int, C.int, func()) {
	values := t.Values()
	if len(values) == 0 {
		return nil, 0, func() {}
	}
	buf := (*C.int)(C.malloc(C.size_t(len(values)) * C.size_t(unsafe.Sizeof(C.int(0)))))
	dst := unsafe.Slice(buf, len(values))
	for i, v := range values {
		dst[i] = C.int(v)
	}
	return buf, C.int(len(values)), func() { C.free(unsafe.Pointer(buf)) }
}

func (qcomHost) Interaction(duration time.Duration, t hal.Table) {
	buf, n, free := cTable(t)
	defer free()
	C.interaction(C.int(duration.Milliseconds()), n, buf)
}

func (qcomHost) Perform(hintID int32, t hal.Table) {
	buf, n, free := cTable(t)
	defer free()
	C.perform_hint_action(C.int(hintID), buf, n)
}

func (qcomHost) Undo(hintID int32) {
	C.undo_hint_action(C.int(hintID))
}
