// Copyright (c) 2026 CollegeSathi. All rights reserved.

package college_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegesathi/api/internal/catalog/college"
)

/*
TestComparison_Bound verifies the membership cap: the selector holds at most
MaxComparable colleges and silently ignores additions past the cap.
*/
func TestComparison_Bound(t *testing.T) {
	comparison := college.NewComparison()

	for index := 0; index < college.MaxComparable; index++ {
		added := comparison.Add(college.College{ID: fmt.Sprintf("c-%d", index)})
		assert.True(t, added)
	}
	require.Equal(t, college.MaxComparable, comparison.Len())

	// the next addition is a no-op, not an error
	added := comparison.Add(college.College{ID: "c-overflow"})
	assert.False(t, added)
	assert.Equal(t, college.MaxComparable, comparison.Len())
	assert.False(t, comparison.Contains("c-overflow"))
}

/*
TestComparison_DuplicateGuard verifies that re-adding a member changes
nothing.
*/
func TestComparison_DuplicateGuard(t *testing.T) {
	comparison := college.NewComparison()

	assert.True(t, comparison.Add(college.College{ID: "c-ioe"}))
	assert.False(t, comparison.Add(college.College{ID: "c-ioe"}))
	assert.Equal(t, 1, comparison.Len())
}

/*
TestComparison_RemovePreservesOrder verifies removal keeps the remaining
members in insertion order and tolerates absent IDs.
*/
func TestComparison_RemovePreservesOrder(t *testing.T) {
	comparison := college.NewComparison(
		college.College{ID: "c-a"},
		college.College{ID: "c-b"},
		college.College{ID: "c-c"},
	)

	comparison.Remove("c-b")
	comparison.Remove("c-missing")

	members := comparison.Members()
	require.Len(t, members, 2)
	assert.Equal(t, "c-a", members[0].ID)
	assert.Equal(t, "c-c", members[1].ID)
}

/*
TestComparison_Candidates verifies eligibility: members are excluded and the
optional name search narrows case-insensitively.
*/
func TestComparison_Candidates(t *testing.T) {
	snapshot := sampleColleges()
	comparison := college.NewComparison(snapshot[0]) // c-ioe

	all := comparison.Candidates(snapshot, "")
	assert.Equal(t, []string{"c-kusom", "c-bpkihs"}, ids(all))

	searched := comparison.Candidates(snapshot, "KOIRALA")
	assert.Equal(t, []string{"c-bpkihs"}, ids(searched))

	none := comparison.Candidates(snapshot, "pulchowk")
	assert.Empty(t, none)
}

/*
TestFees verifies the fee-range summary, including the Specified flag that
separates "no numeric fees" from a genuine zero.
*/
func TestFees(t *testing.T) {
	tests := []struct {
		name      string
		programs  []college.Program
		wantRange college.FeeRange
	}{
		{
			name:      "no_programs",
			programs:  nil,
			wantRange: college.FeeRange{Min: 0, Max: 0, Specified: false},
		},
		{
			name: "only_display_fees",
			programs: []college.Program{
				{Name: "MBA", FeeText: "Contact admissions"},
			},
			wantRange: college.FeeRange{Min: 0, Max: 0, Specified: false},
		},
		{
			name: "single_numeric_fee",
			programs: []college.Program{
				{Name: "MBBS", Fee: 3500000},
			},
			wantRange: college.FeeRange{Min: 3500000, Max: 3500000, Specified: true},
		},
		{
			name: "mixed_fees_ignore_display",
			programs: []college.Program{
				{Name: "BE Civil", Fee: 850000},
				{Name: "BCT", Fee: 980000},
				{Name: "MSc", FeeText: "Scholarship based"},
			},
			wantRange: college.FeeRange{Min: 850000, Max: 980000, Specified: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := college.Fees(college.College{ID: "c-x", Programs: tt.programs})
			assert.Equal(t, tt.wantRange, got)
		})
	}
}
