package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Scalingo/sclng-github-skills/config"
	"github.com/Scalingo/sclng-github-skills/logger"
	"github.com/Scalingo/sclng-github-skills/service"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "sclng-github-skills",
		Short: "Aggregate the programming languages of a github account into skills",
		Long: `Queries the GitHub GraphQL API for the repositories owned and contributed to by the
authenticated user, and sums the bytes written in each language across them.

Authentication is required via GitHub token:
  - set GITHUB_TOKEN environment variable (a .env file is loaded when present)
  - or set Token in the [GITHUB] section of config/config.toml`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newSkillsCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap loads the configuration, configure the logger and build the skills service.
// Everything built here is shared by all invocations and never mutated
func bootstrap(ctx context.Context, logOutput io.Writer) (*config.Config, service.SkillsService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("unable to load configuration: %w", err)
	}

	logger.Setup(*cfg, logOutput)

	// setup github clients
	// we do here and pass the clients to services to easily improve tests with mock clients
	httpClient := service.NewGithubHTTPClient(ctx, *cfg)

	restClient, err := service.NewGithubRestClient(*cfg, httpClient)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to setup github rest client: %w", err)
	}

	rateLimiter, err := service.NewRateLimiter(ctx, restClient)
	if err != nil {
		return nil, nil, err
	}

	githubService := service.NewGithubService(*cfg, httpClient, rateLimiter)
	skillsService := service.NewSkillsService(*cfg, githubService)

	log.WithField("version", version).Debug("skills service ready")

	return cfg, skillsService, nil
}
