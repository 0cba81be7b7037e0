//go:build filerdebug

package filer

import "fmt"

// debugAssert останавливает процесс при ошибке вызывающего кода.
// Включается тегом сборки filerdebug.
func debugAssert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("filer: "+format, args...))
	}
}
