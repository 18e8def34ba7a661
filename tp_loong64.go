// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux && loong64 && !percpu_naive && !percpu_custom

package percpu

// On LoongArch64 the per-CPU base is carried in $r21, reserved for
// that purpose by the kernel register convention. A hosted process
// cannot claim $r21 under the Go runtime, so the software register
// file carries the whole binding here.

func archWriteReg(uintptr) {}
