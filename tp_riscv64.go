// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux && riscv64 && !percpu_naive && !percpu_custom

package percpu

// On RISC-V the per-CPU base is conventionally carried in gp (x3), a
// general-purpose register repurposed by calling convention. A hosted
// process cannot repurpose gp under the Go runtime, so the software
// register file carries the whole binding here.

func archWriteReg(uintptr) {}
