// Copyright (c) 2026 CollegeSathi. All rights reserved.

package college

import "strings"

// # Side-by-Side Comparison
//
// Comparison is a bounded ordered set of colleges picked for side-by-side
// review. Membership is capped at MaxComparable; adding past the cap or
// re-adding a member is a silent no-op so the selector can be driven
// directly from UI events without error plumbing.

// MaxComparable caps how many colleges one comparison may hold.
const MaxComparable = 10

// Comparison is an ordered, duplicate-free set of colleges under comparison.
type Comparison struct {
	members []College
}

// NewComparison builds a comparison preloaded with the given colleges,
// applying the same dedupe and cap rules as [Comparison.Add].
func NewComparison(colleges ...College) *Comparison {
	comparison := &Comparison{}
	for _, candidate := range colleges {
		comparison.Add(candidate)
	}
	return comparison
}

// Add appends a college to the comparison. It reports whether the college
// was actually added; a duplicate ID or a full comparison leaves the set
// unchanged and returns false.
func (c *Comparison) Add(candidate College) bool {
	if len(c.members) >= MaxComparable {
		return false
	}
	for _, member := range c.members {
		if member.ID == candidate.ID {
			return false
		}
	}
	c.members = append(c.members, candidate)
	return true
}

// Remove drops the college with the given ID, preserving the order of the
// remaining members. Removing an absent ID is a no-op.
func (c *Comparison) Remove(collegeID string) {
	for index, member := range c.members {
		if member.ID == collegeID {
			c.members = append(c.members[:index], c.members[index+1:]...)
			return
		}
	}
}

// Contains reports whether the college with the given ID is being compared.
func (c *Comparison) Contains(collegeID string) bool {
	for _, member := range c.members {
		if member.ID == collegeID {
			return true
		}
	}
	return false
}

// Members returns the compared colleges in insertion order.
func (c *Comparison) Members() []College {
	return append([]College(nil), c.members...)
}

// Len returns the number of colleges currently compared.
func (c *Comparison) Len() int {
	return len(c.members)
}

/*
Candidates returns the colleges eligible to join the comparison: every
college whose name contains the search term, minus current members.

Parameters:
  - colleges: The full ordered collection to pick from.
  - query: Case-insensitive name substring; empty matches everything.

Returns:
  - []College: Eligible colleges in input order. Never nil.
*/
func (c *Comparison) Candidates(colleges []College, query string) []College {
	query = strings.ToLower(strings.TrimSpace(query))
	candidates := make([]College, 0, len(colleges))
	for _, candidate := range colleges {
		if c.Contains(candidate.ID) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(candidate.Name), query) {
			continue
		}
		candidates = append(candidates, candidate)
	}
	return candidates
}

// # Fee Range

// FeeRange summarises the numeric program fees of one college. Specified is
// false when no program carries a numeric fee, which distinguishes "fees
// unknown" from a genuine zero amount.
type FeeRange struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Specified bool    `json:"specified"`
}

// Fees computes the numeric fee range of a college. Programs whose fee is a
// display string contribute nothing to the range.
func Fees(candidate College) FeeRange {
	var feeRange FeeRange
	for _, program := range candidate.Programs {
		if !program.HasNumericFee() {
			continue
		}
		if !feeRange.Specified {
			feeRange = FeeRange{Min: program.Fee, Max: program.Fee, Specified: true}
			continue
		}
		if program.Fee < feeRange.Min {
			feeRange.Min = program.Fee
		}
		if program.Fee > feeRange.Max {
			feeRange.Max = program.Fee
		}
	}
	return feeRange
}
