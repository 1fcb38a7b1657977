//go:build !android

package logging

import (
	"fmt"
)

func logMsg(prio Priority, msg string) {
	fmt.Printf("<%s> %s\n", prio, msg)
}
