package model

// FallbackColor is used for languages without any color reported upstream
const FallbackColor = "#cccccc"

type Skill struct {
	Name     string `json:"name"`
	CodeSize int64  `json:"codeSize"`
	Color    string `json:"color"`
}

type SkillsResponse struct {
	Skills []Skill `json:"skills"`
}
