// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux && !percpu_naive && !percpu_custom

package percpu

import (
	"strconv"
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
	"golang.org/x/sys/unix"
)

// Hosted backend: the per-CPU region is a freshly mapped anonymous
// page-aligned buffer, and the active-area register is emulated by a
// register file keyed by OS thread identity. On amd64 the binding is
// additionally written to the thread's real GS base (see tp_amd64.go).
//
// Register reads cost one gettid plus one map lookup under a spinlock.
// That is the price of emulation; the hardware branches documented in
// the tp_* files are a handful of instructions.

// hostedRegion keeps the mapped region live for the process lifetime.
// There is no teardown.
var hostedRegion []byte

// spinMutex is a minimal test-and-set spinlock. Critical sections here
// are a few instructions (one map operation), so spinning beats
// parking.
type spinMutex struct {
	v atomix.Uint64
}

func (m *spinMutex) lock() {
	sw := spin.Wait{}
	for !m.v.CompareAndSwapAcqRel(0, 1) {
		sw.Once()
	}
}

func (m *spinMutex) unlock() {
	m.v.StoreRelease(0)
}

// regFile maps OS thread id to that thread's active-area register.
// The cell pointer is stable once created, so the lock covers only the
// map access; the binding itself is published with release/acquire on
// the cell.
var (
	regMu   spinMutex
	regFile = make(map[int]*atomix.Uintptr)
)

func backendStride(areaSize uintptr) uintptr {
	return alignUp(areaSize, cacheLineSize)
}

func backendResolveBase(cpus int, stride, _ uintptr) uintptr {
	total := uintptr(cpus) * stride
	mem, err := unix.Mmap(-1, 0, int(total),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		panic("percpu: cannot map per-CPU region of " +
			strconv.FormatUint(uint64(total), 10) + " bytes: " + err.Error())
	}
	hostedRegion = mem
	return uintptr(unsafe.Pointer(unsafe.SliceData(mem)))
}

func backendReadReg() uintptr {
	tid := unix.Gettid()
	regMu.lock()
	cell := regFile[tid]
	regMu.unlock()
	if cell == nil {
		return 0
	}
	return cell.LoadAcquire()
}

func backendWriteReg(tp uintptr) {
	tid := unix.Gettid()
	regMu.lock()
	cell := regFile[tid]
	if cell == nil {
		cell = new(atomix.Uintptr)
		regFile[tid] = cell
	}
	regMu.unlock()
	cell.StoreRelease(tp)
	archWriteReg(tp)
}
