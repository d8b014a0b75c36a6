// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package automaton

import "fmt"

// alphabetAdd increments the use-count for sym, a no-op for Epsilon (I3:
// alphabet never contains Epsilon).
func (a *Automaton) alphabetAdd(sym Symbol) {
	if sym == Epsilon {
		return
	}
	a.alphabet[sym]++
}

// alphabetRemove decrements the use-count for sym, dropping it from the
// alphabet once it hits zero.
func (a *Automaton) alphabetRemove(sym Symbol) {
	if sym == Epsilon {
		return
	}
	a.alphabet[sym]--
	if a.alphabet[sym] <= 0 {
		delete(a.alphabet, sym)
	}
}

// freshStateName returns a state identifier derived from base that is not
// currently a member of the automaton: base itself if free, otherwise
// base suffixed with a growing number. Keeps a per-base watermark so
// repeated calls for the same base don't rescan from suffix 1 every time.
func (a *Automaton) freshStateName(base StateID) StateID {
	if !a.HasState(base) {
		return base
	}
	n := a.nextSuffix[base]
	for {
		n++
		cand := StateID(fmt.Sprintf("%s_%d", base, n))
		if !a.HasState(cand) {
			a.nextSuffix[base] = n
			return cand
		}
	}
}
