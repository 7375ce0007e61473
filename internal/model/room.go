package model

import (
	"errors"
	"strings"
	"sync"
	"time"
)

var (
	ErrNicknameTaken  = errors.New("nickname already exists")
	ErrGameStarted    = errors.New("game has started")
	ErrInvalidState   = errors.New("invalid room state")
	ErrPlayerNotFound = errors.New("player not found")
)

// Room is the aggregate root for one game session. Every operation that
// reads-then-writes room state runs under the room's own mutex, so two
// rooms never contend with each other.
type Room struct {
	mu sync.Mutex

	id           string
	state        GameState
	currentRound int
	players      []*Player
	qna          []QnA
	startedTime  *time.Time
}

func NewRoom(id string, qna []QnA) *Room {
	return &Room{
		id:      id,
		state:   StateWaiting,
		players: make([]*Player, 0),
		qna:     qna,
	}
}

func (r *Room) ID() string {
	return r.id
}

// AddPlayer admits a new player while the room is still waiting.
// The nickname check is case-sensitive and comes first, so a taken
// nickname is reported as such even after the game has started.
func (r *Room) AddPlayer(nickname string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.players {
		if p.PlayerName == nickname {
			return ErrNicknameTaken
		}
	}
	if r.state != StateWaiting {
		return ErrGameStarted
	}

	r.players = append(r.players, &Player{PlayerName: nickname})
	return nil
}

// Start moves the room out of the lobby. A second Start fails rather
// than being silently ignored.
func (r *Room) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateWaiting {
		return ErrInvalidState
	}

	now := time.Now()
	r.startedTime = &now
	r.state = StateRoundLoading
	return nil
}

// BeginRound activates the next question. currentRound is incremented on
// entry, so during ROUND_ONGOING the active pair is qna[currentRound-1].
func (r *Room) BeginRound() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateRoundLoading {
		return ErrInvalidState
	}

	r.currentRound++
	r.state = StateRoundOngoing
	return nil
}

// FinishRound closes the active round without a winner. This is the
// external round-timeout path.
func (r *Room) FinishRound() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateRoundOngoing {
		return ErrInvalidState
	}

	r.state = StateRoundOver
	return nil
}

// AdvanceRound either loads the next round or ends the game once the
// question set is exhausted. GAME_OVER is terminal.
func (r *Room) AdvanceRound() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateRoundOver {
		return ErrInvalidState
	}

	if r.currentRound < len(r.qna) {
		r.state = StateRoundLoading
	} else {
		r.state = StateGameOver
	}
	return nil
}

// ApplyScore credits an externally computed score to a player. It does
// not touch round state; non-chat clients score through this path.
func (r *Room) ApplyScore(nickname string, score int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.findPlayer(nickname)
	if p == nil {
		return ErrPlayerNotFound
	}

	p.TotalScore += score
	p.LastScore = score
	return nil
}

// EvaluateGuess is the chat-path critical section: check the round is
// ongoing, compare the guess to the current answer case-insensitively,
// credit the winner and close the round, all under one lock. Anything
// that is not the winning guess is ordinary chat, including correct
// guesses arriving after the round is already over.
func (r *Room) EvaluateGuess(nickname, text string) GuessResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateRoundOngoing {
		return GuessResult{}
	}

	answer := r.qna[r.currentRound-1].Answer
	if !strings.EqualFold(text, answer) {
		return GuessResult{}
	}

	p := r.findPlayer(nickname)
	if p == nil {
		return GuessResult{}
	}

	p.TotalScore += WinningGuessScore
	p.LastScore = WinningGuessScore
	r.state = StateRoundOver

	return GuessResult{Won: true, Answer: answer}
}

func (r *Room) findPlayer(nickname string) *Player {
	for _, p := range r.players {
		if p.PlayerName == nickname {
			return p
		}
	}
	return nil
}

// Snapshot copies the room for marshalling. Players keep join order.
func (r *Room) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	players := make([]Player, 0, len(r.players))
	for _, p := range r.players {
		players = append(players, *p)
	}

	qna := make([]QnA, len(r.qna))
	copy(qna, r.qna)

	return Snapshot{
		RoomID:       r.id,
		GameState:    r.state,
		CurrentRound: r.currentRound,
		Players:      players,
		StartedTime:  r.startedTime,
		QnA:          qna,
	}
}
