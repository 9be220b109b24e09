package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Scalingo/sclng-github-skills/config"
	"github.com/google/go-github/v66/github"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// NewGithubRestClient is only used to read the current rate limits,
// skills are fetched with the graphql api
func NewGithubRestClient(cfg config.Config, httpClient *http.Client) (*github.Client, error) {
	client := github.NewClient(httpClient)

	if cfg.Github.RestBaseURL != client.BaseURL.String() {
		var err error
		if client, err = client.WithEnterpriseURLs(cfg.Github.RestBaseURL, cfg.Github.RestBaseURL); err != nil {
			return nil, err
		}
	}

	return client, nil
}

// NewRateLimiter setup a local rate limiter with the graphql budget reported by github.
// Tokens already consumed by other callers are consumed locally too,
// this help us to have a right rate limiter even if external requests are made
func NewRateLimiter(ctx context.Context, restClient *github.Client) (*rate.Limiter, error) {
	log.Debug("loading current rate limit from github")

	rateLimits, _, err := restClient.RateLimit.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load current github rate limits: %w", err)
	}

	graphQL := rateLimits.GetGraphQL()
	if graphQL == nil || graphQL.Limit <= 0 {
		return nil, fmt.Errorf("github didn't report any graphql rate limit. a valid token is required")
	}

	log.WithFields(log.Fields{
		"totalAvailable":    graphQL.Limit,
		"remainingRequests": graphQL.Remaining,
	}).Debug("will setup local rate limiter with graphql rate limits infos from github")

	rateLimiter := rate.NewLimiter(rate.Every(time.Hour/time.Duration(graphQL.Limit)), graphQL.Limit)

	if !rateLimiter.AllowN(time.Now(), graphQL.Limit-graphQL.Remaining) {
		return nil, fmt.Errorf("unable to configure the github rate limiter")
	}

	return rateLimiter, nil
}
