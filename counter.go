// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package percpu

// integer is the type set of the numeric Counter specialization.
type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Counter is a per-CPU integer variable with in-place arithmetic.
//
// The canonical use is a statistics counter: each CPU increments its
// own copy contention-free on the hot path, and an observer folds all
// copies with Sum.
//
//	var drops = percpu.DefCounter[uint64](0)
//
//	drops.AddCurrent(1)   // hot path, owning CPU
//	total := drops.Sum()  // cold path, any context
type Counter[T integer] struct {
	Var[T]
}

// DefCounter defines a per-CPU counter with the given initial value.
// Like Def, it must be called before Init.
func DefCounter[T integer](initial T) *Counter[T] {
	return &Counter[T]{Var: *Def[T](initial)}
}

// AddCurrent adds delta to the counter on the current CPU and returns
// the new value. The no-preempt guard is held for the duration, so the
// read-modify-write stays on one CPU's copy.
func (c *Counter[T]) AddCurrent(delta T) T {
	release := guard()
	p := c.CurrentPtr()
	*p += delta
	val := *p
	release()
	return val
}

// AddCurrentRaw adds delta to the counter on the current CPU without
// acquiring the guard. The caller must hold it.
func (c *Counter[T]) AddCurrentRaw(delta T) T {
	p := c.CurrentPtr()
	*p += delta
	return *p
}

// Sum returns the sum of the counter over all per-CPU areas.
//
// Copies are read one area at a time without stopping writers, so the
// result is a consistent total only if the per-slot remote-read
// contract holds (writers quiesced or externally excluded). For live
// statistics the usual reading is "at least every increment that
// happened before Sum started".
func (c *Counter[T]) Sum() T {
	var sum T
	for i := 0; i < AreaCount(); i++ {
		sum += c.ReadRemote(i)
	}
	return sum
}
