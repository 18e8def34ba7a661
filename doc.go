// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package percpu provides per-CPU storage: each defined variable gets
// one independent copy per execution core, addressable in O(1) without
// locking.
//
// A variable is defined once, before initialization, and becomes a
// coordinate into every per-CPU area simultaneously:
//
//	var hits = percpu.Def[uint64](0)
//	var state = percpu.Def[ConnState](ConnState{Window: 64})
//
// # Bootstrap Protocol
//
// Initialization happens exactly once per process, then each context
// (a hardware core, or an OS thread standing in for one) binds itself
// to its area:
//
//	n := percpu.Init(numCPUs) // n == numCPUs once, 0 on re-init
//
//	// on each context, at or before first use:
//	percpu.Bind(cpu)
//
// Init seals the set of defined variables into the template region,
// resolves the per-CPU region base, and copies the template's default
// bytes into every area. Areas then diverge independently per CPU.
// Init is idempotent and safe under concurrent callers: exactly one
// caller observes the non-zero return.
//
// # Two-Tier Access
//
// Accessors split along two orthogonal axes, so callers pay exactly
// the safety cost their context requires:
//
//	ReadCurrent / WriteCurrent / WithCurrent   guarded, current CPU
//	ReadCurrentRaw / WriteCurrentRaw           raw, current CPU
//	ReadRemote / WriteRemote                   guarded, explicit CPU
//	RemotePtr / CurrentPtr                     raw aliasing views
//
// Guarded variants internally hold the no-preempt guard across the
// whole address-compute-then-dereference sequence. Raw variants
// require the caller to hold it; see [Guard] and [SetGuard].
//
// The hot path is a guarded access on the owning CPU:
//
//	hits.WithCurrent(func(h *uint64) { *h++ })
//
// Cross-CPU accessors perform no internal synchronization. They are
// safe only under external mutual exclusion, or while the target CPU
// is not yet online — the usual pattern is a startup loop seeding
// every area before the secondary CPUs come up:
//
//	for cpu := range numCPUs {
//	    state.WriteRemote(cpu, initialState(cpu))
//	}
//
// # Counters
//
// [Counter] is the integer specialization with in-place arithmetic and
// a whole-machine fold:
//
//	var drops = percpu.DefCounter[uint64](0)
//
//	drops.AddCurrent(1)   // owning CPU, contention-free
//	total := drops.Sum()  // observer
//
// # Layout
//
// The template region is the master copy of all defined variables.
// Area i lives at AreaBase(i) = base + i*Stride(), where Stride() is
// AreaSize() rounded up to a 64-byte boundary so that adjacent areas
// never share a cache line. Variable offsets are assigned by a sealed
// bump allocator; distinct variables never overlap.
//
// # Backends
//
// The deployment variant is fixed at build time; selection is
// exclusive, there is no runtime switching.
//
//   - hosted (default, linux): the region is a freshly mapped
//     page-aligned buffer; the active-area register is emulated per OS
//     thread, with the real GS base shadowing the binding on amd64.
//   - naive (-tags percpu_naive): a single shared area, no per-CPU
//     distinction; degenerate uniprocessor case. Every index aliases
//     that one area and Stride reports 0 — the one waiver of the
//     Stride() >= AreaSize() rule.
//   - custom (-tags percpu_custom): the host registers a [Backend]
//     supplying the region base and the per-context binding storage.
//
// An unsupported architecture or OS/backend combination is excluded at
// build time where possible and aborts at first use otherwise. It is
// never a recoverable error.
//
// # Contract Violations
//
// The package trades runtime checking for zero-overhead access. The
// documented preconditions are the only defense: dereferencing before
// Init, racing a slot against its owning CPU, out-of-range CPU
// indices, and using raw accessors without the guard are undefined
// behavior, not checked errors. Misconfiguration that can be detected
// (allocation failure, Def after Init, unsupported platform) panics.
//
// Values stored in per-CPU areas must be pointer-free: the areas are
// untyped memory outside the garbage collector's view. Def enforces
// this at definition time.
//
// # Race Detection
//
// Per-CPU ownership is a synchronization discipline the race detector
// cannot observe: a remote read that is correct under the pre-online
// rule or an external lock may still be reported. Tests incompatible
// with race detection are skipped via [RaceEnabled].
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for the one-time
// initialization flag and the emulated register cells,
// [code.hybscloud.com/spin] for spinlock acquire loops, and
// [golang.org/x/sys/unix] for the hosted backend's region mapping and
// thread identity.
package percpu
