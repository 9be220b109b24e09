package model

// SkillsRequest is the inbound request, bound either from query string or JSON body.
// Top is a pointer to distinguish an absent value from an explicit zero
type SkillsRequest struct {
	Top     *uint    `form:"top" json:"top"`
	Exclude []string `form:"exclude" json:"exclude"`
}

// ExclusionSet contains repository names to drop before extraction
type ExclusionSet map[string]struct{}

func NewExclusionSet(names ...string) ExclusionSet {
	set := make(ExclusionSet, len(names))

	for _, name := range names {
		set[name] = struct{}{}
	}

	return set
}

// Contains is an exact, case-sensitive match
func (s ExclusionSet) Contains(name string) bool {
	_, found := s[name]
	return found
}

func (params SkillsRequest) ToExclusionSet() ExclusionSet {
	return NewExclusionSet(params.Exclude...)
}
