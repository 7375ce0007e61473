package model

import "time"

type GameState string

const (
	StateWaiting      GameState = "GAME_WAITING"
	StateRoundLoading GameState = "ROUND_LOADING"
	StateRoundOngoing GameState = "ROUND_ONGOING"
	StateRoundOver    GameState = "ROUND_OVER"
	StateGameOver     GameState = "GAME_OVER"
)

const (
	// Every room plays a fixed-length set of rounds.
	RoundsPerGame = 10

	// Flat credit for the first correct guess of a round.
	WinningGuessScore = 10
)

type QnA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Player struct {
	PlayerName string `json:"playerName"`
	TotalScore int    `json:"totalScore"`
	LastScore  int    `json:"lastScore"`
}

// Snapshot is the wire representation of a room, copied out of the
// aggregate under its lock so it can be marshalled safely.
type Snapshot struct {
	RoomID       string     `json:"roomId"`
	GameState    GameState  `json:"gameState"`
	CurrentRound int        `json:"currentRound"`
	Players      []Player   `json:"players"`
	StartedTime  *time.Time `json:"startedTime"`
	QnA          []QnA      `json:"qna"`
}

// GuessResult is the relay's routing decision for one inbound chat line.
type GuessResult struct {
	Won    bool
	Answer string
}
