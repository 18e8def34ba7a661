// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux && arm64 && !percpu_naive && !percpu_custom

package percpu

// On AArch64 the per-CPU base register is TPIDR_EL1 (TPIDR_EL2 when
// running at EL2). Both are privileged: a hosted user-mode process can
// neither read nor write them, so the software register file carries
// the whole binding here.

func archWriteReg(uintptr) {}
