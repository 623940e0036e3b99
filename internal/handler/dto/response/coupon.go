package response

import (
	"coasters/internal/usecase/commands"
)

type GrantRewardsResponse struct {
	Granted int    `json:"granted"`
	Notice  string `json:"notice"`
}

func FromGrantRewardsResult(result *commands.GrantRewardsResult) *GrantRewardsResponse {
	return &GrantRewardsResponse{
		Granted: result.Granted,
		Notice:  result.Notice,
	}
}
