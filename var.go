// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package percpu

import (
	"reflect"
	"unsafe"
)

// Var is a per-CPU variable of type T: one independent copy per CPU,
// addressable in O(1) without locking.
//
// A Var owns no data itself; it is a fixed byte offset into every
// per-CPU area simultaneously. Two distinct Vars defined over the same
// template never overlap.
//
// The accessor API splits along two orthogonal axes so callers pay
// exactly the safety cost their context requires:
//
//   - current vs remote: the area bound to the calling context
//     (ReadCurrent, WriteCurrent, WithCurrent) vs an explicit CPU index
//     (ReadRemote, WriteRemote, RemotePtr).
//   - guarded vs raw: guarded variants acquire the no-preempt guard
//     around the whole access; raw variants (CurrentPtr,
//     ReadCurrentRaw, WriteCurrentRaw) require the caller to hold it.
//
// No variant synchronizes against concurrent access to the same slot
// from other contexts. Remote accessors are safe only under external
// mutual exclusion or while the target CPU is not yet online.
//
// Example:
//
//	var requests = percpu.Def[uint64](0)
//
//	percpu.Init(numCPUs)
//	percpu.Bind(cpu) // once per context
//
//	requests.WithCurrent(func(r *uint64) { *r++ })
type Var[T any] struct {
	off uintptr
}

// Def defines a per-CPU variable with the given initial value and
// returns its handle. Each CPU's copy starts as a byte-for-byte
// replica of initial after Init.
//
// Def must be called before Init, typically from a package variable
// initializer. T must not contain Go pointers; Def panics otherwise.
func Def[T any](initial T) *Var[T] {
	checkPointerFree(reflect.TypeFor[T]())
	off := allocSlot(unsafe.Sizeof(initial), unsafe.Alignof(initial))
	tmpl.writers = append(tmpl.writers, func(base unsafe.Pointer) {
		*(*T)(unsafe.Add(base, int(off))) = initial
	})
	return &Var[T]{off: off}
}

// Offset returns the byte distance from a per-CPU area's base to this
// variable's storage. Constant for the process.
func (v *Var[T]) Offset() uintptr {
	return v.off
}

// RemotePtr returns a pointer to this variable's copy on the given
// CPU: AreaBase(cpu) + Offset().
//
// The caller must ensure the CPU index is valid and that no data race
// occurs with concurrent access to the same slot. Two aliasing
// pointers obtained concurrently for the same slot is a caller error.
func (v *Var[T]) RemotePtr(cpu int) *T {
	return (*T)(unsafe.Pointer(AreaBase(cpu) + v.off))
}

// CurrentPtr returns a pointer to this variable's copy on the current
// CPU: ReadReg() + Offset().
//
// The caller must hold the no-preempt guard: the context must not be
// rescheduled onto a different CPU between the address computation and
// the last use of the returned pointer.
func (v *Var[T]) CurrentPtr() *T {
	return (*T)(unsafe.Pointer(ReadReg() + v.off))
}

// ReadCurrent returns the value on the current CPU. The no-preempt
// guard is held for the duration of the access.
func (v *Var[T]) ReadCurrent() T {
	release := guard()
	val := *v.CurrentPtr()
	release()
	return val
}

// WriteCurrent sets the value on the current CPU. The no-preempt guard
// is held for the duration of the access.
func (v *Var[T]) WriteCurrent(val T) {
	release := guard()
	*v.CurrentPtr() = val
	release()
}

// WithCurrent calls f with a pointer to the value on the current CPU,
// holding the no-preempt guard across the call. This allows a
// read-modify-write sequence that stays on one CPU's copy; it is not
// synchronized against concurrent remote writers.
//
// The pointer must not escape f.
func (v *Var[T]) WithCurrent(f func(*T)) {
	release := guard()
	defer release()
	f(v.CurrentPtr())
}

// WithCurrent calls f with a pointer to v's value on the current CPU
// and returns f's result, holding the no-preempt guard across the
// call. It is the value-returning form of [Var.WithCurrent], as a
// package function because methods cannot introduce the result type
// parameter.
//
//	oldest := percpu.WithCurrent(q, func(q *queueState) uint64 {
//	    return q.oldestSeq
//	})
//
// The pointer must not escape f.
func WithCurrent[T, R any](v *Var[T], f func(*T) R) R {
	release := guard()
	defer release()
	return f(v.CurrentPtr())
}

// ReadCurrentRaw returns the value on the current CPU without
// acquiring the guard. The caller must hold it.
func (v *Var[T]) ReadCurrentRaw() T {
	return *v.CurrentPtr()
}

// WriteCurrentRaw sets the value on the current CPU without acquiring
// the guard. The caller must hold it.
func (v *Var[T]) WriteCurrentRaw(val T) {
	*v.CurrentPtr() = val
}

// ReadRemote returns the value on the given CPU.
//
// The caller must ensure the CPU index is valid and that the access
// does not race with writers of the same slot (external mutual
// exclusion, or the target CPU not yet online).
func (v *Var[T]) ReadRemote(cpu int) T {
	release := guard()
	val := *v.RemotePtr(cpu)
	release()
	return val
}

// WriteRemote sets the value on the given CPU.
//
// The caller must ensure the CPU index is valid and that the access
// does not race with the target CPU's own accesses (external mutual
// exclusion, or the target CPU not yet online).
func (v *Var[T]) WriteRemote(cpu int, val T) {
	release := guard()
	*v.RemotePtr(cpu) = val
	release()
}
