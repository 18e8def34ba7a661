// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux && !percpu_naive && !percpu_custom

package percpu_test

import (
	"fmt"
	"runtime"

	"code.hybscloud.com/percpu"
)

// The example variable and Init(4) are established in TestMain; in
// production both happen once at process startup.
func ExampleVar_WithCurrent() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	percpu.Bind(0)

	fmt.Println(example.ReadCurrent())
	example.WithCurrent(func(p *uint32) { *p += 35 })
	fmt.Println(example.ReadCurrent())
	fmt.Println(example.ReadRemote(1))
	// Output:
	// 7
	// 42
	// 7
}
