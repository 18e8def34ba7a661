// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package percpu

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// cacheLineSize is the assumed cache line and area alignment unit.
// The stride between consecutive per-CPU areas is rounded up to this
// boundary so that adjacent areas never share a cache line.
const cacheLineSize = 64

// isInit guards the one-time initialization protocol.
// The strong (sequentially consistent) compare-and-swap makes Init
// exactly-once under concurrent first callers: losers observe the flag
// already set and return without touching memory.
var isInit atomix.Bool

// Process-wide layout facts. Written once by the Init winner, immutable
// afterwards. Callers must establish a happens-before edge from Init to
// any context that dereferences per-CPU storage (typically by starting
// those contexts after Init returns).
var (
	areasBase uintptr // base address of area 0
	areaSz    uintptr // template size, bytes
	strideVal uintptr // byte distance between consecutive area bases
	areaCnt   int     // number of areas initialized
)

// alignUp rounds v up to the next multiple of a. a must be a power of 2.
func alignUp(v, a uintptr) uintptr {
	return (v + a - 1) &^ (a - 1)
}

// AreaSize returns the per-CPU data area size for one CPU: the byte
// distance between the template region's start and end.
func AreaSize() uintptr {
	return areaSz
}

// Stride returns the byte distance between consecutive per-CPU area
// bases. The stride is AreaSize rounded up to a 64-byte boundary
// (zero under the naive backend, where all indices alias one area).
func Stride() uintptr {
	return strideVal
}

// AreaCount returns the number of per-CPU areas initialized by Init,
// or 0 before initialization.
func AreaCount() int {
	return areaCnt
}

// AreaBase returns the base address of the per-CPU data area on the
// given CPU: areasBase + cpu*stride.
//
// The index is not range-checked. Calling AreaBase with an out-of-range
// index, or before Init, yields an address that must not be
// dereferenced.
func AreaBase(cpu int) uintptr {
	return areasBase + uintptr(cpu)*strideVal
}

// Init initializes all per-CPU data areas for cpus CPUs.
//
// The first call seals the set of defined variables, resolves the base
// of the per-CPU region (backend-specific: the hosted backend maps a
// fresh page-aligned region of cpus*Stride bytes, the custom backend
// asks the registered Backend, the naive backend aliases the template),
// and copies the template region's bytes into every area. The copy is
// skipped for index 0 when area 0 aliases the template itself.
//
// Returns cpus on first success. If Init has been called before, it
// does nothing and returns 0; this holds under concurrent callers, of
// which exactly one observes the non-zero return.
//
// A region too small to hold cpus areas, or a failed allocation, is a
// deployment defect: Init panics rather than returning an error.
func Init(cpus int) int {
	if cpus <= 0 {
		panic("percpu: cpu count must be >= 1")
	}

	// avoid re-initialization
	if !isInit.CompareAndSwap(false, true) {
		return 0
	}

	size := sealTemplate()

	areaSz = size
	strideVal = backendStride(size)
	areaCnt = cpus
	areasBase = backendResolveBase(cpus, strideVal, size)

	src := unsafe.Slice((*byte)(unsafe.Pointer(templateBase())), size)
	for i := 0; i < cpus; i++ {
		base := AreaBase(i)
		if i == 0 && base == templateBase() {
			// area 0 is the template, nothing to copy
			continue
		}
		dst := unsafe.Slice((*byte)(unsafe.Pointer(base)), size)
		copy(dst, src)
	}
	return cpus
}

// Bind binds the calling context to the per-CPU area of the given CPU.
// It is equivalent to WriteReg(AreaBase(cpu)).
//
// Bind must be called on each context (hardware core, or OS thread
// standing in for one) at or before its first "current"-flavored
// access. The binding persists until explicitly rebound.
func Bind(cpu int) {
	WriteReg(AreaBase(cpu))
}

// ReadReg reads the calling context's active-area register: the base
// address of the per-CPU area currently bound to this context.
//
// Returns 0 if the context has never been bound.
func ReadReg() uintptr {
	return backendReadReg()
}

// WriteReg writes the calling context's active-area register.
//
// The caller must guarantee the write does not race with another
// access to the same context's binding. Prefer Bind.
func WriteReg(tp uintptr) {
	backendWriteReg(tp)
}
