package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExclusionSet(t *testing.T) {
	set := SkillsRequest{Exclude: []string{"dotfiles", "sandbox", "dotfiles"}}.ToExclusionSet()

	assert.Len(t, set, 2)
	assert.True(t, set.Contains("dotfiles"))
	assert.True(t, set.Contains("sandbox"))
	assert.False(t, set.Contains("Dotfiles"))
	assert.False(t, set.Contains(""))

	var empty ExclusionSet
	assert.False(t, empty.Contains("dotfiles"))
	assert.Empty(t, SkillsRequest{}.ToExclusionSet())
}

func TestSkillSourceVariants(t *testing.T) {
	records := []*RepositoryRecord{{Name: "A"}, nil}

	var owned *OwnedRepositories
	var contributed *ContributedRepositories

	sources := []SkillSource{owned, contributed}
	for _, source := range sources {
		assert.Nil(t, source.Repositories())
	}

	sources = []SkillSource{&OwnedRepositories{Nodes: records}, &ContributedRepositories{Nodes: records}}
	for _, source := range sources {
		assert.Equal(t, records, source.Repositories())
	}
}
