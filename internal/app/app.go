package app

import (
	"github.com/gibberish-game/core/internal/config"
	http_init "github.com/gibberish-game/core/internal/delivery/http/init"
	http_room "github.com/gibberish-game/core/internal/delivery/http/room"
	ws_chat "github.com/gibberish-game/core/internal/delivery/ws/chat"
	infra_memory_registry "github.com/gibberish-game/core/internal/infra/memory/registry"
	infra_pg_init "github.com/gibberish-game/core/internal/infra/postgres/init"
	infra_postgres_question "github.com/gibberish-game/core/internal/infra/postgres/question"
	infra_redis_init "github.com/gibberish-game/core/internal/infra/redis/init"
	infra_redis_roomindex "github.com/gibberish-game/core/internal/infra/redis/roomindex"
	"github.com/gibberish-game/core/internal/questions"
	usecase_room "github.com/gibberish-game/core/internal/usecase/room"
)

func Go(cfg *config.Config) {
	registry := infra_memory_registry.New()

	var questionSource usecase_room.QuestionSource = questions.NewBank()
	if cfg.Postgres.Enabled {
		pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
		questionSource = infra_postgres_question.New(pgConn)
	}

	var roomIndex usecase_room.RoomIndex
	if cfg.Redis.Enabled {
		redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
		roomIndex = infra_redis_roomindex.New(redisConn, "active_rooms")
	}

	roomUC := usecase_room.New(registry, questionSource, roomIndex)
	hub := ws_chat.NewHub(roomUC)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_room.New(roomUC, hub))
	controllerPool.Add(ws_chat.NewController(hub))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
