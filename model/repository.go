package model

// RepositoryRecord is a single repository as returned by the GitHub graph API.
// Languages is nil when the upstream did not return a breakdown.
type RepositoryRecord struct {
	Name      string
	Languages *LanguageBreakdown
}

// LanguageBreakdown holds the language edges of a repository.
// Edges can contain nil entries, upstream may omit some of them
type LanguageBreakdown struct {
	Edges []*LanguageEdge
}

type LanguageEdge struct {
	Size int64
	Node LanguageNode
}

type LanguageNode struct {
	Name  string
	Color *string // languages without a linguist color have none
}

// SkillSource is anything that can yield repositories to extract skills from.
// A nil slice means the collection was absent from the upstream response.
type SkillSource interface {
	Repositories() []*RepositoryRecord
}

// OwnedRepositories are the repositories owned by the viewer
type OwnedRepositories struct {
	Nodes []*RepositoryRecord
}

func (r *OwnedRepositories) Repositories() []*RepositoryRecord {
	if r == nil {
		return nil
	}

	return r.Nodes
}

// ContributedRepositories are the repositories the viewer contributed to
type ContributedRepositories struct {
	Nodes []*RepositoryRecord
}

func (r *ContributedRepositories) Repositories() []*RepositoryRecord {
	if r == nil {
		return nil
	}

	return r.Nodes
}

// RepositoryGraph is the result of a single upstream query.
// Both collections can be nil
type RepositoryGraph struct {
	Owned       *OwnedRepositories
	Contributed *ContributedRepositories
}

// LanguageRecord is a flat (name, size, color) observation of a language in one repository
type LanguageRecord struct {
	Name  string
	Size  int64
	Color string
}
