// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build percpu_naive

package percpu

// Naive backend: a single shared area with no per-CPU distinction, for
// uniprocessor deployments and portable testing. Every index aliases
// the template region itself, so Init copies nothing and the stride
// degenerates to zero. Register writes are ignored; reads always
// return the one area's base.

func backendStride(uintptr) uintptr {
	return 0
}

func backendResolveBase(_ int, _, _ uintptr) uintptr {
	return templateBase()
}

func backendReadReg() uintptr {
	return templateBase()
}

func backendWriteReg(uintptr) {}
