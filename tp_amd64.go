// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux && amd64 && !percpu_naive && !percpu_custom

package percpu

import "golang.org/x/sys/unix"

// On x86-64 the per-CPU base lives in the GS base register
// (IA32_GS_BASE). User mode cannot execute wrmsr, so the kernel
// intercepts the write behind arch_prctl(ARCH_SET_GS); reads keep
// going through the software-visible register file, which acts as the
// fast cache of the last written value. The Go runtime claims FS for
// its own TLS and leaves GS free.

// arch_prctl operation code, from asm/prctl.h.
const archSetGS = 0x1001

func archWriteReg(tp uintptr) {
	if _, _, errno := unix.Syscall(unix.SYS_ARCH_PRCTL, archSetGS, tp, 0); errno != 0 {
		panic("percpu: arch_prctl(ARCH_SET_GS) failed: " + errno.Error())
	}
}
