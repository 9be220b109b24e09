package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Scalingo/sclng-github-skills/config"
	"github.com/Scalingo/sclng-github-skills/model"
	"github.com/shurcooL/githubv4"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// RepositoryFetcher fetches the owned and contributed repositories of the authenticated viewer
type RepositoryFetcher interface {
	FetchRepositories(ctx context.Context, limit uint) (*model.RepositoryGraph, error)
}

type GithubService interface {
	RepositoryFetcher

	HandleRequestErrors(err error) error
}

type githubService struct {
	githubClient      *githubv4.Client
	githubRateLimiter *rate.Limiter
	config            config.Config
}

// repositoryNode mirrors the fields requested for each repository.
// Pointers are used wherever GitHub can answer null
type repositoryNode struct {
	Name      githubv4.String
	Languages *struct {
		Edges []*struct {
			Size githubv4.Int
			Node struct {
				Name  githubv4.String
				Color *githubv4.String
			}
		}
	} `graphql:"languages(first: $languages, orderBy: {field: SIZE, direction: DESC})"`
}

type repositoriesQuery struct {
	Viewer struct {
		Repositories *struct {
			Nodes []*repositoryNode
		} `graphql:"repositories(first: $top, ownerAffiliations: [OWNER], orderBy: {field: PUSHED_AT, direction: DESC})"`
		RepositoriesContributedTo *struct {
			Nodes []*repositoryNode
		} `graphql:"repositoriesContributedTo(first: $top, contributionTypes: [COMMIT, PULL_REQUEST], orderBy: {field: PUSHED_AT, direction: DESC})"`
	}
}

// NewGithubHTTPClient builds the http client used for both GraphQL and REST calls.
// Requests are authenticated with a static bearer token when one is configured
func NewGithubHTTPClient(ctx context.Context, cfg config.Config) *http.Client {
	base := &userAgentTransport{
		userAgent: cfg.Github.UserAgent,
		base:      http.DefaultTransport,
	}

	if cfg.Github.Token == "" {
		log.Warning("no github token provided. the graphql api will refuse unauthenticated queries")
		return &http.Client{Transport: base}
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: base})
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Github.Token}))
}

// NewGithubService uses a single graphql query per call, so one rate limiter token is consumed per call.
// GraphQL rate limit = 5000 points per hour for authenticated users, a small query costs 1 point
func NewGithubService(config config.Config, httpClient *http.Client, rateLimiter *rate.Limiter) GithubService {
	return githubService{
		githubClient:      githubv4.NewEnterpriseClient(config.Github.GraphQLEndpoint, httpClient),
		githubRateLimiter: rateLimiter,
		config:            config,
	}
}

func (s githubService) FetchRepositories(ctx context.Context, limit uint) (*model.RepositoryGraph, error) {
	if !s.githubRateLimiter.Allow() {
		log.Warning("the Github rate limit has been reached. Use a token or wait until the limit reset")
		return nil, model.NewUpstreamError(model.CodeRateLimitReached, fmt.Errorf("github rate limit reached"))
	}

	log.WithFields(log.Fields{
		"top":       limit,
		"languages": s.config.Skills.LanguagesPerRepository,
	}).Debug("fetch owned and contributed repositories from github")

	var query repositoriesQuery
	variables := map[string]interface{}{
		"top":       githubv4.Int(int32(limit)), // #nosec G115 - limit is capped by the skills service
		"languages": githubv4.Int(int32(s.config.Skills.LanguagesPerRepository)),
	}

	if err := s.githubClient.Query(ctx, &query, variables); err != nil {
		return nil, s.HandleRequestErrors(err)
	}

	graph := &model.RepositoryGraph{}

	if query.Viewer.Repositories != nil {
		graph.Owned = &model.OwnedRepositories{Nodes: toRepositoryRecords(query.Viewer.Repositories.Nodes)}
	}

	if query.Viewer.RepositoriesContributedTo != nil {
		graph.Contributed = &model.ContributedRepositories{Nodes: toRepositoryRecords(query.Viewer.RepositoriesContributedTo.Nodes)}
	}

	log.WithFields(log.Fields{
		"owned":       len(graph.Owned.Repositories()),
		"contributed": len(graph.Contributed.Repositories()),
	}).Debug("repositories fetched from github")

	return graph, nil
}

// toRepositoryRecords keeps nil entries and nil fields as they are, the extractor skips them
func toRepositoryRecords(nodes []*repositoryNode) []*model.RepositoryRecord {
	if nodes == nil {
		return nil
	}

	records := make([]*model.RepositoryRecord, 0, len(nodes))

	for _, node := range nodes {
		if node == nil {
			records = append(records, nil)
			continue
		}

		record := &model.RepositoryRecord{Name: string(node.Name)}

		if node.Languages != nil {
			record.Languages = &model.LanguageBreakdown{}

			if node.Languages.Edges != nil {
				record.Languages.Edges = make([]*model.LanguageEdge, 0, len(node.Languages.Edges))
			}

			for _, edge := range node.Languages.Edges {
				if edge == nil {
					record.Languages.Edges = append(record.Languages.Edges, nil)
					continue
				}

				languageEdge := &model.LanguageEdge{
					Size: int64(edge.Size),
					Node: model.LanguageNode{Name: string(edge.Node.Name)},
				}

				if edge.Node.Color != nil {
					color := string(*edge.Node.Color)
					languageEdge.Node.Color = &color
				}

				record.Languages.Edges = append(record.Languages.Edges, languageEdge)
			}
		}

		records = append(records, record)
	}

	return records
}

// HandleRequestErrors translate graphql client errors to upstream errors
// If error is a rate limit error, this function will update the local rate limiter to consume all available requests
// this can help us to keep the local rate limiter up to date
func (s githubService) HandleRequestErrors(err error) error {
	inspector := newErrorInspector()

	switch {
	case inspector.IsRateLimitError(err):
		s.githubRateLimiter.AllowN(time.Now(), int(s.githubRateLimiter.Tokens()))
		log.Warning("the Github rate limit has been reached. Use a token or wait until the limit reset")
		return model.NewUpstreamError(model.CodeRateLimitReached, err)

	case inspector.IsAuthError(err):
		log.WithError(err).Error("github refused the provided token")
		return model.NewUpstreamError(model.CodeInvalidToken, err)

	case inspector.IsTransportError(err):
		log.WithError(err).Error("error catched when fetching data from github")
		return model.NewUpstreamError(model.CodeFetchError, err)

	default:
		log.WithError(err).Error("github answered with graphql errors")
		return model.NewUpstreamError(model.CodeGraphQLError, err)
	}
}
