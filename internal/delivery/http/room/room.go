package http_room

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	http_common "github.com/gibberish-game/core/internal/delivery/http/common"
	"github.com/gibberish-game/core/internal/model"
	usecase_room "github.com/gibberish-game/core/internal/usecase/room"
	"github.com/gin-gonic/gin"
)

// Legacy plain-text error bodies; existing clients match on them.
const (
	msgNicknameTaken = "Nickname already exists. Please choose another nickname!"
	msgGameStarted   = "Game has started"
	msgInvalidScore  = "Score is not an integer"
)

// Relay pushes system announcements into a room's chat.
type Relay interface {
	Announce(roomID, text string)
}

type Controller struct {
	usecase *usecase_room.Usecase
	relay   Relay
	logger  *slog.Logger
}

func New(usecase *usecase_room.Usecase, relay Relay) *Controller {
	return &Controller{
		usecase: usecase,
		relay:   relay,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/create_room", c.createRoom)
	router.POST("/join_room", c.joinRoom)
	router.POST("/start_game", c.startGame)
	router.POST("/submit_answer", c.submitAnswer)
	router.POST("/begin_round", c.beginRound)
	router.POST("/finish_round", c.finishRound)
	router.POST("/advance_round", c.advanceRound)
	router.GET("/room_state", c.roomState)
}

func (c *Controller) createRoom(ctx *gin.Context) {
	snap, err := c.usecase.CreateRoom(ctx)
	if err != nil {
		c.logger.Error("failed to create room", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusOK, snap)
}

func (c *Controller) joinRoom(ctx *gin.Context) {
	nickname := ctx.PostForm("nickname")
	roomID := ctx.PostForm("roomId")

	snap, err := c.usecase.JoinRoom(ctx, roomID, nickname)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNicknameTaken):
			ctx.String(http.StatusBadRequest, msgNicknameTaken)
		case errors.Is(err, model.ErrGameStarted):
			ctx.String(http.StatusBadRequest, msgGameStarted)
		default:
			c.fail(ctx, "failed to join room", err)
		}
		return
	}

	c.relay.Announce(roomID, fmt.Sprintf("%s joined the room", nickname))
	ctx.JSON(http.StatusOK, snap)
}

func (c *Controller) startGame(ctx *gin.Context) {
	roomID := ctx.PostForm("roomId")

	snap, err := c.usecase.StartGame(ctx, roomID)
	if err != nil {
		c.fail(ctx, "failed to start game", err)
		return
	}

	c.relay.Announce(roomID, "The game is starting!")
	ctx.JSON(http.StatusOK, snap)
}

func (c *Controller) submitAnswer(ctx *gin.Context) {
	roomID := ctx.PostForm("roomId")
	nickname := ctx.PostForm("nickname")
	score := ctx.PostForm("score")

	snap, err := c.usecase.SubmitScore(ctx, roomID, nickname, score)
	if err != nil {
		if errors.Is(err, usecase_room.ErrInvalidScore) {
			ctx.String(http.StatusBadRequest, msgInvalidScore)
			return
		}
		c.fail(ctx, "failed to submit answer", err)
		return
	}

	ctx.JSON(http.StatusOK, snap)
}

func (c *Controller) beginRound(ctx *gin.Context) {
	roomID := ctx.PostForm("roomId")

	snap, err := c.usecase.BeginRound(ctx, roomID)
	if err != nil {
		c.fail(ctx, "failed to begin round", err)
		return
	}

	c.relay.Announce(roomID, fmt.Sprintf("Round %d!", snap.CurrentRound))
	ctx.JSON(http.StatusOK, snap)
}

func (c *Controller) finishRound(ctx *gin.Context) {
	roomID := ctx.PostForm("roomId")

	snap, err := c.usecase.FinishRound(ctx, roomID)
	if err != nil {
		c.fail(ctx, "failed to finish round", err)
		return
	}

	answer := snap.QnA[snap.CurrentRound-1].Answer
	c.relay.Announce(roomID, fmt.Sprintf("Time's up! The answer was: %s", answer))
	ctx.JSON(http.StatusOK, snap)
}

func (c *Controller) advanceRound(ctx *gin.Context) {
	roomID := ctx.PostForm("roomId")

	snap, err := c.usecase.AdvanceRound(ctx, roomID)
	if err != nil {
		c.fail(ctx, "failed to advance round", err)
		return
	}

	if snap.GameState == model.StateGameOver {
		c.relay.Announce(roomID, scoreboard(snap))
	}
	ctx.JSON(http.StatusOK, snap)
}

func (c *Controller) roomState(ctx *gin.Context) {
	roomID := ctx.Query("roomId")

	snap, err := c.usecase.RoomState(ctx, roomID)
	if err != nil {
		c.fail(ctx, "failed to read room state", err)
		return
	}

	ctx.JSON(http.StatusOK, snap)
}

func (c *Controller) fail(ctx *gin.Context, msg string, err error) {
	c.logger.Error(msg, slog.String("error", err.Error()))
	switch {
	case errors.Is(err, usecase_room.ErrRoomNotFound):
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "room not found",
		})
	case errors.Is(err, model.ErrPlayerNotFound):
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "player not found",
		})
	case errors.Is(err, model.ErrInvalidState):
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid room state",
		})
	default:
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
	}
}

func scoreboard(snap model.Snapshot) string {
	var b strings.Builder
	b.WriteString("Game over! Final scores:")
	for _, p := range snap.Players {
		fmt.Fprintf(&b, " %s=%d", p.PlayerName, p.TotalScore)
	}
	return b.String()
}
