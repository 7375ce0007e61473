package usecase_room

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/gibberish-game/core/internal/model"
	"github.com/google/uuid"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrInvalidScore = errors.New("score is not an integer")
	ErrInternal     = errors.New("internal error")
)

//go:generate mockery --name=RoomRegistry --output=./mocks/registry --filename=registry.go
type RoomRegistry interface {
	Get(ctx context.Context, id string) (*model.Room, error)
	Save(ctx context.Context, room *model.Room) error
}

//go:generate mockery --name=QuestionSource --output=./mocks/questions --filename=questions.go
type QuestionSource interface {
	Draw(ctx context.Context, n int) ([]model.QnA, error)
}

//go:generate mockery --name=RoomIndex --output=./mocks/index --filename=index.go
type RoomIndex interface {
	Add(ctx context.Context, roomID string) error
	Remove(ctx context.Context, roomID string) error
}

// Usecase owns the room operations exposed to HTTP and chat delivery.
// Per-room serialization lives inside model.Room; this layer only
// resolves rooms and keeps the live-room index in step.
type Usecase struct {
	registry  RoomRegistry
	questions QuestionSource
	index     RoomIndex
	logger    *slog.Logger
}

// New wires the usecase. index may be nil when no shared index backend
// is configured.
func New(registry RoomRegistry, questions QuestionSource, index RoomIndex) *Usecase {
	return &Usecase{
		registry:  registry,
		questions: questions,
		index:     index,
		logger:    slog.Default(),
	}
}

func (u *Usecase) CreateRoom(ctx context.Context) (model.Snapshot, error) {
	qna, err := u.questions.Draw(ctx, model.RoundsPerGame)
	if err != nil {
		return model.Snapshot{}, errors.Join(ErrInternal, err)
	}

	room := model.NewRoom(uuid.NewString(), qna)
	if err := u.registry.Save(ctx, room); err != nil {
		return model.Snapshot{}, errors.Join(ErrInternal, err)
	}

	// The index is advisory; a room is playable without it.
	if u.index != nil {
		if err := u.index.Add(ctx, room.ID()); err != nil {
			u.logger.Warn("failed to index room", "room_id", room.ID(), "error", err)
		}
	}

	return room.Snapshot(), nil
}

func (u *Usecase) JoinRoom(ctx context.Context, roomID, nickname string) (model.Snapshot, error) {
	room, err := u.resolve(ctx, roomID)
	if err != nil {
		return model.Snapshot{}, err
	}

	if err := room.AddPlayer(nickname); err != nil {
		return model.Snapshot{}, err
	}

	if err := u.registry.Save(ctx, room); err != nil {
		return model.Snapshot{}, errors.Join(ErrInternal, err)
	}
	return room.Snapshot(), nil
}

func (u *Usecase) StartGame(ctx context.Context, roomID string) (model.Snapshot, error) {
	return u.transition(ctx, roomID, (*model.Room).Start)
}

func (u *Usecase) BeginRound(ctx context.Context, roomID string) (model.Snapshot, error) {
	return u.transition(ctx, roomID, (*model.Room).BeginRound)
}

func (u *Usecase) FinishRound(ctx context.Context, roomID string) (model.Snapshot, error) {
	return u.transition(ctx, roomID, (*model.Room).FinishRound)
}

func (u *Usecase) AdvanceRound(ctx context.Context, roomID string) (model.Snapshot, error) {
	snap, err := u.transition(ctx, roomID, (*model.Room).AdvanceRound)
	if err != nil {
		return model.Snapshot{}, err
	}

	if snap.GameState == model.StateGameOver && u.index != nil {
		if err := u.index.Remove(ctx, roomID); err != nil {
			u.logger.Warn("failed to drop room from index", "room_id", roomID, "error", err)
		}
	}
	return snap, nil
}

// SubmitScore is the direct scoring path. rawScore arrives as form text
// and must parse as an integer before anything is mutated.
func (u *Usecase) SubmitScore(ctx context.Context, roomID, nickname, rawScore string) (model.Snapshot, error) {
	score, err := strconv.Atoi(rawScore)
	if err != nil {
		return model.Snapshot{}, ErrInvalidScore
	}

	room, err := u.resolve(ctx, roomID)
	if err != nil {
		return model.Snapshot{}, err
	}

	if err := room.ApplyScore(nickname, score); err != nil {
		return model.Snapshot{}, err
	}

	if err := u.registry.Save(ctx, room); err != nil {
		return model.Snapshot{}, errors.Join(ErrInternal, err)
	}
	return room.Snapshot(), nil
}

// SubmitGuess is the chat path. The room decides atomically whether the
// text wins the ongoing round; everything else stays chat.
func (u *Usecase) SubmitGuess(ctx context.Context, roomID, nickname, text string) (model.GuessResult, error) {
	room, err := u.resolve(ctx, roomID)
	if err != nil {
		return model.GuessResult{}, err
	}

	res := room.EvaluateGuess(nickname, text)
	if res.Won {
		if err := u.registry.Save(ctx, room); err != nil {
			return model.GuessResult{}, errors.Join(ErrInternal, err)
		}
	}
	return res, nil
}

func (u *Usecase) RoomState(ctx context.Context, roomID string) (model.Snapshot, error) {
	room, err := u.resolve(ctx, roomID)
	if err != nil {
		return model.Snapshot{}, err
	}
	return room.Snapshot(), nil
}

func (u *Usecase) resolve(ctx context.Context, roomID string) (*model.Room, error) {
	room, err := u.registry.Get(ctx, roomID)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errors.Join(ErrInternal, err)
	}
	return room, nil
}

func (u *Usecase) transition(ctx context.Context, roomID string, op func(*model.Room) error) (model.Snapshot, error) {
	room, err := u.resolve(ctx, roomID)
	if err != nil {
		return model.Snapshot{}, err
	}

	if err := op(room); err != nil {
		return model.Snapshot{}, err
	}

	if err := u.registry.Save(ctx, room); err != nil {
		return model.Snapshot{}, errors.Join(ErrInternal, err)
	}
	return room.Snapshot(), nil
}
