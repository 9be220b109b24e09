package service

import (
	"context"
	"errors"

	"github.com/Scalingo/sclng-github-skills/config"
	"github.com/Scalingo/sclng-github-skills/model"
	log "github.com/sirupsen/logrus"
)

type SkillsService interface {
	GetSkills(ctx context.Context, request model.SkillsRequest) (model.SkillsResponse, error)
}

type skillsService struct {
	fetcher RepositoryFetcher
	config  config.Config
}

func NewSkillsService(config config.Config, fetcher RepositoryFetcher) SkillsService {
	return skillsService{
		fetcher: fetcher,
		config:  config,
	}
}

// GetSkills validates the request, fetches repositories once and aggregates their languages.
// Upstream failures are returned as they are, without retry
func (s skillsService) GetSkills(ctx context.Context, request model.SkillsRequest) (model.SkillsResponse, error) {
	top := s.config.Skills.DefaultTop

	if request.Top != nil {
		if *request.Top == 0 {
			log.WithField("exclude", request.Exclude).Warning("requesting zero github skills")
			return model.SkillsResponse{}, model.NewNoSkillsRequestedError()
		}

		top = *request.Top
	}

	if top > s.config.Skills.MaxTop {
		log.WithFields(log.Fields{
			"requested": top,
			"max":       s.config.Skills.MaxTop,
		}).Debug("requested repositories count capped")

		top = s.config.Skills.MaxTop
	}

	graph, err := s.fetcher.FetchRepositories(ctx, top)
	if err != nil {
		var upstreamErr *model.UpstreamError
		if !errors.As(err, &upstreamErr) {
			err = model.NewUpstreamError(model.CodeFetchError, err)
		}

		return model.SkillsResponse{}, err
	}

	if graph == nil {
		graph = &model.RepositoryGraph{}
	}

	skills := AggregateSkills(graph.Owned, graph.Contributed, request.ToExclusionSet())
	RankSkills(skills)

	return model.SkillsResponse{Skills: skills}, nil
}
