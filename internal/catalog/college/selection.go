// Copyright (c) 2026 CollegeSathi. All rights reserved.

package college

// # Browsing Selection State
//
// Selection models the filter controls of one browsing session: the current
// search term plus the toggled faculty and affiliation chips. Toggling a
// value that is already selected deselects it. The type is a plain value;
// callers own any required synchronization.

// Selection is the mutable filter state behind a browsing view.
type Selection struct {
	query        string
	faculties    []Faculty
	affiliations []Affiliation
}

// SetQuery replaces the search term. The term is stored verbatim; trimming
// and case folding happen at match time so the user's input echoes back
// exactly as typed.
func (s *Selection) SetQuery(query string) {
	s.query = query
}

// ToggleFaculty selects the faculty if absent and deselects it if present.
func (s *Selection) ToggleFaculty(faculty Faculty) {
	for index, selected := range s.faculties {
		if selected == faculty {
			s.faculties = append(s.faculties[:index], s.faculties[index+1:]...)
			return
		}
	}
	s.faculties = append(s.faculties, faculty)
}

// ToggleAffiliation selects the affiliation if absent and deselects it if
// present.
func (s *Selection) ToggleAffiliation(affiliation Affiliation) {
	for index, selected := range s.affiliations {
		if selected == affiliation {
			s.affiliations = append(s.affiliations[:index], s.affiliations[index+1:]...)
			return
		}
	}
	s.affiliations = append(s.affiliations, affiliation)
}

// ClearFilters deselects every faculty and affiliation but keeps the search
// term untouched.
func (s *Selection) ClearFilters() {
	s.faculties = nil
	s.affiliations = nil
}

// Filter snapshots the current state as an immutable [Filter] value.
func (s *Selection) Filter() Filter {
	return Filter{
		Query:        s.query,
		Faculties:    append([]Faculty(nil), s.faculties...),
		Affiliations: append([]Affiliation(nil), s.affiliations...),
	}
}

// Apply resolves the current state against an ordered collection.
func (s *Selection) Apply(colleges []College) []College {
	return Apply(colleges, s.Filter())
}
