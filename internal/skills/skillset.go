package skills

import "sort"

// SkillSet is a deduplicated set of lowercase skills.
type SkillSet map[string]struct{}

// NewSkillSet builds a set from the given skills as-is.
func NewSkillSet(skills ...string) SkillSet {
	set := make(SkillSet, len(skills))
	for _, s := range skills {
		set[s] = struct{}{}
	}
	return set
}

func (s SkillSet) Has(skill string) bool {
	_, ok := s[skill]
	return ok
}

func (s SkillSet) Len() int {
	return len(s)
}

// Difference returns the skills in s that are not in other.
func (s SkillSet) Difference(other SkillSet) SkillSet {
	out := make(SkillSet)
	for skill := range s {
		if !other.Has(skill) {
			out[skill] = struct{}{}
		}
	}
	return out
}

// Intersect returns the skills present in both s and other.
func (s SkillSet) Intersect(other SkillSet) SkillSet {
	out := make(SkillSet)
	for skill := range s {
		if other.Has(skill) {
			out[skill] = struct{}{}
		}
	}
	return out
}

// Sorted returns the members in lexical order. Never nil.
func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for skill := range s {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}
