// Copyright (c) 2026 CollegeSathi. All rights reserved.

package college_test

import (
	"time"

	"github.com/collegesathi/api/internal/catalog/college"
)

// sampleColleges returns a small directory snapshot in newest-first order,
// covering the three flagship entries used throughout the engine tests.
func sampleColleges() []college.College {
	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	return []college.College{
		{
			ID:          "c-ioe",
			Name:        "Tribhuvan University Institute of Engineering, Pulchowk Campus",
			Location:    college.Location{City: "Kathmandu", District: "Kathmandu"},
			Affiliation: college.AffiliationTU,
			About:       "The oldest engineering campus in Nepal.",
			Programs: []college.Program{
				{ID: "p-bce", Name: "BE Civil Engineering", Faculty: college.FacultyEngineering, Duration: 4, Fee: 850000},
				{ID: "p-bct", Name: "BCT Computer Engineering", Faculty: college.FacultyEngineering, Duration: 4, Fee: 980000},
			},
			Facilities: []college.Facility{
				{ID: "c-ioe-facility-0", CollegeID: "c-ioe", Name: "Library"},
				{ID: "c-ioe-facility-1", CollegeID: "c-ioe", Name: "Hostel"},
			},
			CreatedAt: base.Add(48 * time.Hour),
		},
		{
			ID:          "c-kusom",
			Name:        "Kathmandu University School of Management",
			Location:    college.Location{City: "Dhulikhel", District: "Kavre"},
			Affiliation: college.AffiliationKU,
			About:       "Business school of Kathmandu University.",
			Programs: []college.Program{
				{ID: "p-bba", Name: "BBA", Faculty: college.FacultyManagement, Duration: 4, Fee: 1200000},
				{ID: "p-mba", Name: "MBA", Faculty: college.FacultyManagement, Duration: 2, FeeText: "Contact admissions"},
			},
			Facilities: []college.Facility{
				{ID: "c-kusom-facility-0", CollegeID: "c-kusom", Name: "WiFi"},
				{ID: "c-kusom-facility-1", CollegeID: "c-kusom", Name: "Cafeteria"},
			},
			CreatedAt: base.Add(24 * time.Hour),
		},
		{
			ID:          "c-bpkihs",
			Name:        "BP Koirala Institute of Health Sciences",
			Location:    college.Location{City: "Dharan", District: "Sunsari"},
			Affiliation: college.AffiliationPurbanchal,
			About:       "Medical sciences institute in eastern Nepal.",
			Programs: []college.Program{
				{ID: "p-mbbs", Name: "MBBS", Faculty: college.FacultyMedical, Duration: 5, Fee: 3500000},
			},
			Facilities: []college.Facility{
				{ID: "c-bpkihs-facility-0", CollegeID: "c-bpkihs", Name: "Hostel"},
				{ID: "c-bpkihs-facility-1", CollegeID: "c-bpkihs", Name: "Teaching Hospital"},
			},
			CreatedAt: base,
		},
	}
}
