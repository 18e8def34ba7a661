// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux && !percpu_naive && !percpu_custom

package percpu_test

import "testing"

// TestPerCPUScenario walks the canonical lifecycle: every CPU observes
// the declared defaults through its own binding, and a write on one
// CPU stays on that CPU.
func TestPerCPUScenario(t *testing.T) {
	for cpu := 0; cpu < testCPUs; cpu++ {
		onCPU(cpu, func() {
			if got := u8v.ReadCurrent(); got != 1 {
				t.Errorf("u8v on cpu %d: got %d, want 1", cpu, got)
			}
			if got := u16v.ReadCurrent(); got != 2 {
				t.Errorf("u16v on cpu %d: got %d, want 2", cpu, got)
			}
			s := pair.ReadCurrent()
			if s.Foo != 10 {
				t.Errorf("pair.Foo on cpu %d: got %d, want 10", cpu, s.Foo)
			}
			if s.Bar != 11 {
				t.Errorf("pair.Bar on cpu %d: got %d, want 11", cpu, s.Bar)
			}
		})
	}

	onCPU(0, func() {
		u8v.WriteCurrent(3)
		if got := u8v.ReadCurrent(); got != 3 {
			t.Errorf("u8v on cpu 0 after write: got %d, want 3", got)
		}
	})
	if got := u8v.ReadRemote(1); got != 1 {
		t.Fatalf("u8v on cpu 1 after cpu 0 write: got %d, want 1", got)
	}

	u8v.WriteRemote(0, 1) // restore the default for later tests
}
