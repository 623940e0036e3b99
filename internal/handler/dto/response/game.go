package response

import (
	"coasters/internal/usecase/commands"
	"coasters/internal/usecase/queries"
)

type GameResponse struct {
	Game   *queries.GameView `json:"game"`
	Notice string            `json:"notice,omitempty"`
}

func FromGameResult(result *commands.GameResult) *GameResponse {
	return &GameResponse{
		Game:   result.Game,
		Notice: result.Notice,
	}
}

type GameItemsResponse struct {
	Items []queries.GameItemView `json:"items"`
}
