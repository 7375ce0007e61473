package infra_redis_roomindex

import (
	"context"

	"github.com/go-redis/redis"
)

// Driver tracks the ids of live rooms in a redis set. Rooms are added
// at creation and dropped once their game is over, so operators can
// enumerate joinable rooms across instances.
type Driver struct {
	client *redis.Client
	key    string
}

func New(
	client *redis.Client,
	key string,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

func (d *Driver) Add(ctx context.Context, roomID string) error {
	if roomID == "" {
		return nil
	}

	if err := d.client.SAdd(d.key, roomID).Err(); err != nil {
		return err
	}
	return nil
}

func (d *Driver) Remove(ctx context.Context, roomID string) error {
	if err := d.client.SRem(d.key, roomID).Err(); err != nil {
		return err
	}
	return nil
}
