package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/Scalingo/sclng-github-skills/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSkillsService struct {
	response model.SkillsResponse
	err      error
}

func (s stubSkillsService) GetSkills(_ context.Context, _ model.SkillsRequest) (model.SkillsResponse, error) {
	return s.response, s.err
}

func TestRunSkills(t *testing.T) {
	svc := stubSkillsService{response: model.SkillsResponse{Skills: []model.Skill{
		{Name: "Go", CodeSize: 150, Color: "#00ADD8"},
	}}}

	var out bytes.Buffer
	require.NoError(t, runSkills(context.Background(), svc, model.SkillsRequest{}, &out))

	assert.JSONEq(t, `{"skills":[{"name":"Go","codeSize":150,"color":"#00ADD8"}]}`, out.String())
}

func TestRunSkillsError(t *testing.T) {
	svc := stubSkillsService{err: model.NewNoSkillsRequestedError()}

	var out bytes.Buffer
	err := runSkills(context.Background(), svc, model.SkillsRequest{}, &out)

	assert.EqualError(t, err, "no skills requested")
	assert.Empty(t, out.String())
}

func TestSkillsCommandFlags(t *testing.T) {
	cmd := newSkillsCommand()

	require.NoError(t, cmd.ParseFlags([]string{"--top", "5", "--exclude", "a,b", "--exclude", "c"}))

	assert.True(t, cmd.Flags().Changed("top"))

	top, err := cmd.Flags().GetUint("top")
	require.NoError(t, err)
	assert.Equal(t, uint(5), top)

	exclude, err := cmd.Flags().GetStringSlice("exclude")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, exclude)
}
