package infra_memory_registry

import (
	"context"
	"sync"

	"github.com/gibberish-game/core/internal/model"
	usecase_room "github.com/gibberish-game/core/internal/usecase/room"
)

// Registry keeps live rooms in process memory. The map is guarded by a
// RWMutex; each room carries its own lock, so lookups on different
// rooms never serialize game play against each other.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*model.Room
}

func New() *Registry {
	return &Registry{
		rooms: make(map[string]*model.Room),
	}
}

func (r *Registry) Get(_ context.Context, id string) (*model.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[id]
	if !ok {
		return nil, usecase_room.ErrRoomNotFound
	}
	return room, nil
}

// Save upserts by room id.
func (r *Registry) Save(_ context.Context, room *model.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rooms[room.ID()] = room
	return nil
}
