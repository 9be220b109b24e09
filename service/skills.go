package service

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"github.com/Scalingo/sclng-github-skills/model"
)

// ExtractLanguages yields a (name, size, color) record for every language edge
// of every repository in source, skipping excluded repositories.
// Missing collections, repositories, breakdowns or edges yield nothing
func ExtractLanguages(source model.SkillSource, excluded model.ExclusionSet) iter.Seq[model.LanguageRecord] {
	return func(yield func(model.LanguageRecord) bool) {
		if source == nil {
			return
		}

		for _, repository := range source.Repositories() {
			if repository == nil || excluded.Contains(repository.Name) {
				continue
			}

			if repository.Languages == nil {
				continue
			}

			for _, edge := range repository.Languages.Edges {
				if edge == nil {
					continue
				}

				color := model.FallbackColor
				if edge.Node.Color != nil {
					color = *edge.Node.Color
				}

				if !yield(model.LanguageRecord{Name: edge.Node.Name, Size: edge.Size, Color: color}) {
					return
				}
			}
		}
	}
}

// AggregateSkills merges the languages of owned then contributed repositories into skills.
// Sizes of same-named languages are summed, the first color observed is kept.
// An edge without color records the fallback, a color seen later for that language does not replace it.
// The returned order is not defined, see RankSkills
func AggregateSkills(owned, contributed model.SkillSource, excluded model.ExclusionSet) []model.Skill {
	skills := make(map[string]*model.Skill)

	for _, source := range []model.SkillSource{owned, contributed} {
		for record := range ExtractLanguages(source, excluded) {
			if skill, found := skills[record.Name]; found {
				skill.CodeSize += record.Size
				continue
			}

			skills[record.Name] = &model.Skill{
				Name:     record.Name,
				CodeSize: record.Size,
				Color:    record.Color,
			}
		}
	}

	result := make([]model.Skill, 0, len(skills))
	for _, name := range slices.Sorted(maps.Keys(skills)) {
		result = append(result, *skills[name])
	}

	return result
}

// RankSkills sorts skills by code size descending, then by name
func RankSkills(skills []model.Skill) {
	slices.SortFunc(skills, func(a, b model.Skill) int {
		if bySize := cmp.Compare(b.CodeSize, a.CodeSize); bySize != 0 {
			return bySize
		}

		return cmp.Compare(a.Name, b.Name)
	})
}
