// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package percpu

import (
	"reflect"
	"unsafe"
)

// The template region holds one default-initialized instance of every
// defined per-CPU variable. Def allocates non-overlapping offsets into
// it; Init seals the region, materializes the default bytes, and
// replicates them into each per-CPU area.
//
// Definitions are expected from package variable initializers on the
// main goroutine. Def is not safe for concurrent use and panics once
// the template is sealed.
var tmpl struct {
	sealed  bool
	size    uintptr // bump allocation cursor
	writers []func(base unsafe.Pointer)
	raw     []byte  // backing store, kept live; base is aligned within
	base    uintptr // 64-byte aligned start of the template bytes
}

// templateBase returns the address of the template region's start,
// or 0 before Init.
func templateBase() uintptr {
	return tmpl.base
}

// allocSlot reserves size bytes at the next align-aligned offset.
func allocSlot(size, align uintptr) uintptr {
	if tmpl.sealed {
		panic("percpu: Def after Init")
	}
	if size == 0 {
		panic("percpu: zero-sized per-CPU variable")
	}
	off := alignUp(tmpl.size, align)
	tmpl.size = off + size
	return off
}

// sealTemplate freezes the definition set, builds the template bytes,
// and writes every variable's default value at its offset. Called once
// by the Init winner. Returns the template size.
func sealTemplate() uintptr {
	tmpl.sealed = true
	if tmpl.size == 0 {
		panic("percpu: Init with no per-CPU variables defined")
	}
	tmpl.raw = make([]byte, tmpl.size+cacheLineSize-1)
	tmpl.base = alignUp(uintptr(unsafe.Pointer(unsafe.SliceData(tmpl.raw))), cacheLineSize)
	for _, w := range tmpl.writers {
		w(unsafe.Pointer(tmpl.base))
	}
	tmpl.writers = nil
	return tmpl.size
}

// checkPointerFree panics if t contains Go pointers. Per-CPU areas are
// untyped memory outside the garbage collector's view: a pointer stored
// there would not keep its referent alive.
func checkPointerFree(t reflect.Type) {
	switch t.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.Slice, reflect.String:
		panic("percpu: per-CPU variable type must not contain pointers: " + t.String())
	case reflect.Array:
		checkPointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			checkPointerFree(t.Field(i).Type)
		}
	}
}
