// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package percpu

import "runtime"

// Guard acquires the no-preempt capability and returns its release
// function. Guarded accessors hold the guard across the whole
// address-compute-then-dereference sequence, so the calling context
// cannot be rescheduled onto a different CPU (and hence a different
// per-CPU area) mid-access.
//
// The capability is consumed, not implemented, here: a kernel-style
// host replaces it with its own preemption-disabling scope via
// SetGuard. The default pins the calling goroutine to its OS thread,
// which is exactly the required guarantee when bindings are keyed by
// OS thread.
type Guard func() (release func())

var guard Guard = lockOSThreadGuard

func lockOSThreadGuard() (release func()) {
	runtime.LockOSThread()
	return runtime.UnlockOSThread
}

// SetGuard replaces the no-preempt guard used by guarded accessors.
// It must be called before Init and before any guarded access.
func SetGuard(g Guard) {
	if g == nil {
		panic("percpu: nil guard")
	}
	if isInit.Load() {
		panic("percpu: SetGuard after Init")
	}
	guard = g
}
