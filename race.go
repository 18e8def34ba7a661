// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package percpu

// RaceEnabled is true when the race detector is active.
// Used by tests to skip scenarios that poll another context's area
// without explicit synchronization: the per-CPU ownership discipline
// is invisible to the detector, which reports such reads as races.
const RaceEnabled = true
