//go:build windows

package console

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var procGetConsoleProcessList = windows.NewLazySystemDLL("kernel32.dll").NewProc("GetConsoleProcessList")

// isSoleConsoleProcess reports whether the console has no other attached
// process, which is the case when the tool was launched from Explorer.
func isSoleConsoleProcess() bool {
	if procGetConsoleProcessList.Find() != nil {
		return false
	}
	var ids [2]uint32
	n, _, _ := procGetConsoleProcessList.Call(uintptr(unsafe.Pointer(&ids[0])), uintptr(len(ids)))
	return n == 1
}
