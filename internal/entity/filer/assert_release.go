//go:build !filerdebug

package filer

// debugAssert в обычной сборке ничего не делает: нарушение предусловия
// возвращается вызывающему как ErrPrecondition.
func debugAssert(bool, string, ...any) {}
