// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build percpu_custom

package percpu

// Custom backend: the hosting environment supplies the per-CPU region
// and the per-context binding storage. Used to emulate multiple "CPUs"
// as OS threads in portable test harnesses, or to run on hosts with
// their own notion of a CPU-local pointer.

// Backend is the capability the host implements once and registers
// with SetBackend before Init.
type Backend interface {
	// Base returns the base address of the whole per-CPU region.
	// The region must hold at least cpus*Stride() bytes for the cpu
	// count passed to Init; sizing it is the host's obligation. Init
	// calls Base after AreaSize and Stride are sealed, so a host may
	// size the region lazily from them on the first call.
	Base() uintptr

	// SetLocalPtr stores the calling context's active-area register,
	// e.g. keyed by host thread identity.
	SetLocalPtr(tp uintptr)

	// LocalPtr returns the calling context's active-area register,
	// or 0 if the context has never been bound.
	LocalPtr() uintptr
}

var backend Backend

// SetBackend registers the host's Backend implementation. It must be
// called exactly once, before Init.
func SetBackend(b Backend) {
	if b == nil {
		panic("percpu: nil backend")
	}
	if backend != nil {
		panic("percpu: backend already registered")
	}
	if isInit.Load() {
		panic("percpu: SetBackend after Init")
	}
	backend = b
}

func backendStride(areaSize uintptr) uintptr {
	return alignUp(areaSize, cacheLineSize)
}

func backendResolveBase(_ int, _, _ uintptr) uintptr {
	if backend == nil {
		panic("percpu: no backend registered, call SetBackend before Init")
	}
	return backend.Base()
}

func backendReadReg() uintptr {
	return backend.LocalPtr()
}

func backendWriteReg(tp uintptr) {
	backend.SetLocalPtr(tp)
}
