// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package service

// staticTierPolicy is a TierPolicy with a fixed limit taken from config at
// startup. A dynamic, entitlement-backed policy can replace it without
// touching the engine.
type staticTierPolicy struct {
	maxBookmarks int
}

// NewStaticTierPolicy returns a TierPolicy with a fixed bookmark limit. Zero
// or negative means unlimited.
func NewStaticTierPolicy(maxBookmarks int) TierPolicy {
	return &staticTierPolicy{maxBookmarks: maxBookmarks}
}

// MaxBookmarks implements [TierPolicy].
func (p *staticTierPolicy) MaxBookmarks() int {
	return p.maxBookmarks
}
