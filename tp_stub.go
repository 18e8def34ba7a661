// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux && !amd64 && !arm64 && !riscv64 && !loong64 && !percpu_naive && !percpu_custom

package percpu

// No per-CPU base register convention is defined for this
// architecture. Binding a context aborts at first use.

func archWriteReg(uintptr) {
	panic("percpu: unsupported architecture for the hosted backend")
}
