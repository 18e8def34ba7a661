// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux && !percpu_naive && !percpu_custom

package percpu

// The hosted backend needs Linux (mmap, gettid). On other systems
// select the naive or custom backend explicitly; an unsupported
// combination is fatal at first use, never a recoverable error.

const unsupportedBackend = "percpu: hosted backend requires linux; " +
	"build with the percpu_naive or percpu_custom tag"

func backendStride(uintptr) uintptr {
	panic(unsupportedBackend)
}

func backendResolveBase(int, uintptr, uintptr) uintptr {
	panic(unsupportedBackend)
}

func backendReadReg() uintptr {
	panic(unsupportedBackend)
}

func backendWriteReg(uintptr) {
	panic(unsupportedBackend)
}
