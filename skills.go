package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/Scalingo/sclng-github-skills/model"
	"github.com/Scalingo/sclng-github-skills/service"
	"github.com/spf13/cobra"
)

func newSkillsCommand() *cobra.Command {
	var (
		top     uint
		exclude []string
	)

	cmd := &cobra.Command{
		Use:   "skills",
		Short: "Fetch skills once and print them as JSON",
		Long: `Run a single invocation and write the response on stdout, for scheduled jobs.
Logs are written on stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			_, skillsService, err := bootstrap(ctx, os.Stderr)
			if err != nil {
				return err
			}

			request := model.SkillsRequest{Exclude: exclude}
			if cmd.Flags().Changed("top") {
				request.Top = &top
			}

			return runSkills(ctx, skillsService, request, cmd.OutOrStdout())
		},
	}

	cmd.Flags().UintVar(&top, "top", 0, "Number of repositories to request per collection (default from configuration)")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Repository names to exclude, comma separated or repeated")

	return cmd
}

func runSkills(ctx context.Context, skillsService service.SkillsService, request model.SkillsRequest, out io.Writer) error {
	response, err := skillsService.GetSkills(ctx, request)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	return encoder.Encode(response)
}
