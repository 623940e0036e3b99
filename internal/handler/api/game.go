package api

import (
	"errors"
	"net/http"

	reqdto "coasters/internal/handler/dto/request"
	resdto "coasters/internal/handler/dto/response"
	"coasters/internal/handler/middleware"
	"coasters/internal/usecase/commands"
	"coasters/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameCommands commands.GameCommands
	gameQueries  queries.GameQueries
}

func NewGameHandler(gameCommands commands.GameCommands, gameQueries queries.GameQueries) *GameHandler {
	return &GameHandler{
		gameCommands: gameCommands,
		gameQueries:  gameQueries,
	}
}

// @Summary Get game state
// @Description Get the session's dice game state
// @Tags game
// @Produce json
// @Success 200 {object} resdto.GameResponse
// @Router /game [get]
func (h *GameHandler) Get(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.gameQueries.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.GameResponse{Game: view})
}

// @Summary List game items
// @Description List the fixed game catalog with selection flags
// @Tags game
// @Produce json
// @Success 200 {object} resdto.GameItemsResponse
// @Router /game/items [get]
func (h *GameHandler) ListItems(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	items, err := h.gameQueries.ListItems(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.GameItemsResponse{Items: items})
}

// @Summary Toggle game item
// @Description Select or deselect a catalog item for the next play
// @Tags game
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.GameResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /game/items/{id}/toggle [post]
func (h *GameHandler) ToggleItem(c *gin.Context) {
	h.run(c, func(sessionID string) (*commands.GameResult, error) {
		return h.gameCommands.ToggleItem(c.Request.Context(), sessionID, c.Param("id"))
	})
}

// @Summary Proceed to payment
// @Description Move from item selection to the payment step
// @Tags game
// @Produce json
// @Success 200 {object} resdto.GameResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /game/proceed [post]
func (h *GameHandler) Proceed(c *gin.Context) {
	h.run(c, func(sessionID string) (*commands.GameResult, error) {
		return h.gameCommands.ProceedToPayment(c.Request.Context(), sessionID)
	})
}

// @Summary Back to selection
// @Description Return from the payment step to item selection
// @Tags game
// @Produce json
// @Success 200 {object} resdto.GameResponse
// @Failure 409 {object} map[string]string
// @Router /game/back [post]
func (h *GameHandler) Back(c *gin.Context) {
	h.run(c, func(sessionID string) (*commands.GameResult, error) {
		return h.gameCommands.Back(c.Request.Context(), sessionID)
	})
}

// @Summary Pay for the game
// @Description Charge the flat per-slot amount (simulated) and start the first slot
// @Tags game
// @Produce json
// @Success 200 {object} resdto.GameResponse
// @Failure 409 {object} map[string]string
// @Router /game/pay [post]
func (h *GameHandler) Pay(c *gin.Context) {
	h.run(c, func(sessionID string) (*commands.GameResult, error) {
		return h.gameCommands.Pay(c.Request.Context(), sessionID)
	})
}

// @Summary Pick a number
// @Description Record the player's guess for the current slot
// @Tags game
// @Accept json
// @Produce json
// @Param request body reqdto.PickNumberRequest true "Picked number"
// @Success 200 {object} resdto.GameResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /game/pick [post]
func (h *GameHandler) Pick(c *gin.Context) {
	var req reqdto.PickNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	h.run(c, func(sessionID string) (*commands.GameResult, error) {
		return h.gameCommands.PickNumber(c.Request.Context(), sessionID, req.Number)
	})
}

// @Summary Record a roll
// @Description Record the number rolled on the physical die and resolve the slot
// @Tags game
// @Accept json
// @Produce json
// @Param request body reqdto.RollRequest true "Rolled number"
// @Success 200 {object} resdto.GameResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /game/roll [post]
func (h *GameHandler) Roll(c *gin.Context) {
	var req reqdto.RollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	h.run(c, func(sessionID string) (*commands.GameResult, error) {
		return h.gameCommands.Roll(c.Request.Context(), sessionID, req.Rolled)
	})
}

// @Summary Advance
// @Description Move past a resolved slot to the next pick or the results screen
// @Tags game
// @Produce json
// @Success 200 {object} resdto.GameResponse
// @Failure 409 {object} map[string]string
// @Router /game/advance [post]
func (h *GameHandler) Advance(c *gin.Context) {
	h.run(c, func(sessionID string) (*commands.GameResult, error) {
		return h.gameCommands.Advance(c.Request.Context(), sessionID)
	})
}

// @Summary Reset the game
// @Description Discard all progress and return to item selection
// @Tags game
// @Produce json
// @Success 200 {object} resdto.GameResponse
// @Router /game/reset [post]
func (h *GameHandler) Reset(c *gin.Context) {
	h.run(c, func(sessionID string) (*commands.GameResult, error) {
		return h.gameCommands.Reset(c.Request.Context(), sessionID)
	})
}

func (h *GameHandler) run(c *gin.Context, op func(sessionID string) (*commands.GameResult, error)) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	result, err := op(sessionID)
	if err != nil {
		h.handleGameError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromGameResult(result))
}

func (h *GameHandler) handleGameError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrUnknownGameItem):
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown game item"})
	case errors.Is(err, commands.ErrNoItemsSelected):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Select at least one item to play"})
	case errors.Is(err, commands.ErrInvalidDiceNumber):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dice number must be between 1 and 6"})
	case errors.Is(err, commands.ErrNumberNotPicked):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pick a number before rolling"})
	case errors.Is(err, commands.ErrInvalidGameStage):
		c.JSON(http.StatusConflict, gin.H{"error": "Action not allowed in the current game stage"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
