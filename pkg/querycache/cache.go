// Package querycache implementa o cache de consultas do dashboard: cada consulta é
// identificada por uma Key, fica válida durante uma janela de staleness e cargas
// concorrentes da mesma chave são colapsadas em uma única execução do loader.
package querycache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Key identifica uma consulta pelos seus parâmetros. É comparável e pode ser usada como chave de mapa.
type Key struct {
	Resource  string
	Query     string
	StartDate string
	EndDate   string
}

func (k Key) String() string {
	return fmt.Sprintf("%s|q=%s|%s..%s", k.Resource, k.Query, k.StartDate, k.EndDate)
}

// Loader produz o valor de uma chave
type Loader func(ctx context.Context) (any, error)

// Cache é a abstração injetada na camada de consulta
type Cache interface {
	Fetch(ctx context.Context, key Key, staleAfter time.Duration, loader Loader) (any, error)
	InvalidateResource(resource string) int
	Purge()
	Stats() Stats
}

type Entry struct {
	Key        Key
	Value      any
	FetchedAt  time.Time
	StaleAfter time.Duration
}

func (e *Entry) stale(now time.Time) bool {
	return now.After(e.FetchedAt.Add(e.StaleAfter))
}

type Stats struct {
	Entries  int   `json:"entries"`
	Hits     int64 `json:"hits"`
	Misses   int64 `json:"misses"`
	Loads    int64 `json:"loads"`
	Failures int64 `json:"failures"`
}

type Option func(*QueryCache)

// WithClock substitui o relógio usado para calcular a staleness
func WithClock(now func() time.Time) Option {
	return func(c *QueryCache) {
		c.now = now
	}
}

type QueryCache struct {
	mu      sync.Mutex
	entries map[Key]*Entry
	group   singleflight.Group
	now     func() time.Time
	stats   Stats

	// generation muda a cada InvalidateResource/Purge; cargas iniciadas antes não são armazenadas
	generation uint64
	inflight   map[Key]int
}

func New(opts ...Option) *QueryCache {
	c := &QueryCache{
		entries:  make(map[Key]*Entry),
		inflight: make(map[Key]int),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Fetch devolve o valor em cache enquanto não estiver stale; caso contrário executa o loader
// uma única vez por chave, mesmo com chamadas concorrentes. Erros não são armazenados.
//
// O cancelamento de ctx libera apenas quem está esperando: a carga em andamento segue até o
// fim e popula o cache para os próximos consumidores.
func (c *QueryCache) Fetch(ctx context.Context, key Key, staleAfter time.Duration, loader Loader) (any, error) {
	if value, ok := c.lookup(key); ok {
		return value, nil
	}

	ch := c.group.DoChan(key.String(), func() (any, error) {
		// Outra chamada pode ter concluído a carga entre o lookup e o DoChan
		if value, ok := c.peek(key); ok {
			return value, nil
		}
		return c.load(context.WithoutCancel(ctx), key, staleAfter, loader)
	})

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *QueryCache) load(ctx context.Context, key Key, staleAfter time.Duration, loader Loader) (any, error) {
	loadID := utils.GenerateID()
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"cache_key": key.String(),
		"load_id":   loadID,
	})

	c.mu.Lock()
	c.stats.Loads++
	generation := c.generation
	c.inflight[key]++
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		if c.inflight[key]--; c.inflight[key] <= 0 {
			delete(c.inflight, key)
		}
		c.mu.Unlock()
	}()

	started := time.Now()
	value, err := loader(ctx)
	if err != nil {
		c.mu.Lock()
		c.stats.Failures++
		c.mu.Unlock()

		logger.WithError(err).Warn("querycache: falha na carga, resultado não armazenado")
		return nil, err
	}

	c.mu.Lock()
	discarded := c.generation != generation
	if !discarded {
		c.entries[key] = &Entry{
			Key:        key,
			Value:      value,
			FetchedAt:  c.now(),
			StaleAfter: staleAfter,
		}
	}
	c.mu.Unlock()

	if discarded {
		logger.Debug("querycache: cache invalidado durante a carga, resultado não armazenado")
		return value, nil
	}

	logger.Debugf("querycache: carga concluída em %s", time.Since(started))
	return value, nil
}

func (c *QueryCache) lookup(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || entry.stale(c.now()) {
		c.stats.Misses++
		return nil, false
	}

	c.stats.Hits++
	return entry.Value, true
}

func (c *QueryCache) peek(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || entry.stale(c.now()) {
		return nil, false
	}
	return entry.Value, true
}

// InvalidateResource remove todas as chaves do recurso, forçando nova carga na próxima
// consulta, e devolve quantas entradas foram descartadas. Cargas do recurso já em
// andamento não são armazenadas nem compartilhadas com novos consumidores.
func (c *QueryCache) InvalidateResource(resource string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++

	removed := 0
	for key := range c.entries {
		if key.Resource == resource {
			delete(c.entries, key)
			removed++
		}
	}
	for key := range c.inflight {
		if key.Resource == resource {
			c.group.Forget(key.String())
		}
	}

	return removed
}

func (c *QueryCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.entries = make(map[Key]*Entry)
	for key := range c.inflight {
		c.group.Forget(key.String())
	}
}

func (c *QueryCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := c.stats
	stats.Entries = len(c.entries)
	return stats
}

// Get é a versão tipada de Fetch
func Get[T any](ctx context.Context, c Cache, key Key, staleAfter time.Duration, loader func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	value, err := c.Fetch(ctx, key, staleAfter, func(ctx context.Context) (any, error) {
		return loader(ctx)
	})
	if err != nil {
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("querycache: valor de tipo inesperado %T para %s", value, key)
	}

	return typed, nil
}
