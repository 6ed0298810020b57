package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// CadenceGuard reserva el par (usuario, packageType) por la ventana de
// cadencia, de modo que dos barridos solapados no dupliquen un recordatorio.
type CadenceGuard interface {
	Acquire(userID, packageType string) bool
	Release(userID, packageType string)
}

type redisLocker interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisCadenceGuard struct {
	client redisLocker
	ttl    time.Duration
	prefix string
}

func NewRedisCadenceGuard(client *redis.Client, ttl time.Duration) CadenceGuard {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &redisCadenceGuard{
		client: client,
		ttl:    ttl,
		prefix: "reminder:sent:",
	}
}

// Acquire intenta reservar la clave con SET NX. Ante errores de Redis
// degrada a permitir: el chequeo de lastReminderSent en storage sigue
// vigente como segunda barrera.
func (g *redisCadenceGuard) Acquire(userID, packageType string) bool {
	if g == nil || g.client == nil {
		return true
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	ok, err := g.client.SetNX(ctx, g.key(userID, packageType), 1, g.ttl).Result()
	if err != nil {
		return true
	}
	return ok
}

// Release libera la reserva cuando el despacho falló, para que el próximo
// barrido pueda reintentar.
func (g *redisCadenceGuard) Release(userID, packageType string) {
	if g == nil || g.client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	_ = g.client.Del(ctx, g.key(userID, packageType)).Err()
}

func (g *redisCadenceGuard) key(userID, packageType string) string {
	return g.prefix + userID + ":" + packageType
}
