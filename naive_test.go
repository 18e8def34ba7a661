// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build percpu_naive

package percpu_test

import (
	"os"
	"testing"

	"code.hybscloud.com/percpu"
)

// Naive backend: one shared area aliasing the template, every index
// collapsing onto it. Run with -tags percpu_naive.

var (
	nv = percpu.Def[uint32](5)
	nc = percpu.DefCounter[uint64](0)
)

// guardAcquired and guardReleased count entries into and exits from
// the replaced no-preempt guard. Contexts are sequential here, so
// plain counters suffice.
var guardAcquired, guardReleased int

func countingGuard() (release func()) {
	guardAcquired++
	return func() { guardReleased++ }
}

func TestMain(m *testing.M) {
	percpu.SetGuard(countingGuard)
	if n := percpu.Init(1); n != 1 {
		panic("Init(1) did not return 1")
	}
	os.Exit(m.Run())
}

func TestNaiveSingleArea(t *testing.T) {
	if got := percpu.Stride(); got != 0 {
		t.Fatalf("Stride: got %d, want 0", got)
	}
	if got, want := percpu.AreaBase(5), percpu.AreaBase(0); got != want {
		t.Fatalf("AreaBase(5): got %#x, want %#x (all indices alias one area)", got, want)
	}
	if got := percpu.AreaCount(); got != 1 {
		t.Fatalf("AreaCount: got %d, want 1", got)
	}
}

func TestNaiveDefaultsWithoutBind(t *testing.T) {
	// Register reads always return the one area; no Bind required.
	if got := nv.ReadCurrent(); got != 5 {
		t.Fatalf("ReadCurrent: got %d, want 5", got)
	}
}

func TestNaiveCurrentAndRemoteAlias(t *testing.T) {
	nv.WriteCurrent(9)
	if got := nv.ReadRemote(0); got != 9 {
		t.Fatalf("ReadRemote(0): got %d, want 9", got)
	}
	percpu.Bind(0) // accepted, ignored
	if got := nv.ReadCurrent(); got != 9 {
		t.Fatalf("ReadCurrent after Bind: got %d, want 9", got)
	}
}

func TestReplacedGuardWrapsGuardedAccess(t *testing.T) {
	checkDelta := func(name string, want int, f func()) {
		t.Helper()
		a, r := guardAcquired, guardReleased
		f()
		if got := guardAcquired - a; got != want {
			t.Fatalf("%s: guard acquired %d times, want %d", name, got, want)
		}
		if got := guardReleased - r; got != want {
			t.Fatalf("%s: guard released %d times, want %d", name, got, want)
		}
	}

	val := nv.ReadRemote(0)
	checkDelta("ReadCurrent", 1, func() { nv.ReadCurrent() })
	checkDelta("WriteCurrent", 1, func() { nv.WriteCurrent(val) })
	checkDelta("WithCurrent", 1, func() { nv.WithCurrent(func(*uint32) {}) })
	checkDelta("ReadRemote", 1, func() { nv.ReadRemote(0) })
	checkDelta("WriteRemote", 1, func() { nv.WriteRemote(0, val) })
	checkDelta("AddCurrent", 1, func() { nc.AddCurrent(0) })
	checkDelta("raw accessors", 0, func() {
		nv.WriteCurrentRaw(nv.ReadCurrentRaw())
	})
}

func TestNaiveCounter(t *testing.T) {
	nc.AddCurrent(3)
	nc.AddCurrent(4)
	if got := nc.Sum(); got != 7 {
		t.Fatalf("Sum: got %d, want 7", got)
	}
}
