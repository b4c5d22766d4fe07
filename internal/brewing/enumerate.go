package brewing

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/skyrim-alchemy/internal/domain"
	"github.com/osse101/skyrim-alchemy/internal/logger"
	"github.com/osse101/skyrim-alchemy/internal/metrics"
)

// sizeBuckets holds the potions of one shard indexed by ingredient count
type sizeBuckets [domain.MaxIngredients + 1][]domain.Potion

func (e *engine) Enumerate(ctx context.Context, q Query) ([]domain.Potion, error) {
	log := logger.FromContext(ctx)

	pool, err := e.pool(q.Pool)
	if err != nil {
		return nil, err
	}
	required, err := e.resolveSet(q.Require)
	if err != nil {
		return nil, err
	}
	if len(required) > e.opts.MaxIngredients || !containsAll(pool, required) {
		return []domain.Potion{}, nil
	}

	mode := metrics.ModeSequential
	if e.opts.Workers > 1 {
		mode = metrics.ModeSharded
	}
	log.Debug(LogMsgEnumerationStarted, "pool", len(pool), "required", len(required), "mode", mode)

	start := time.Now()
	var potions []domain.Potion
	if mode == metrics.ModeSharded {
		potions, err = e.enumerateSharded(ctx, pool, required, q.Limit)
	} else {
		potions, err = e.enumerateSequential(ctx, pool, required, q.Limit)
	}
	if err != nil {
		log.Warn(LogMsgEnumerationAborted, "error", err)
		return nil, err
	}
	metrics.EnumerationDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
	if potions == nil {
		potions = []domain.Potion{}
	}

	log.Debug(LogMsgEnumerationDone, "potions", len(potions), "duration", time.Since(start))
	return potions, nil
}

func (e *engine) PotionsWith(ctx context.Context, ingredient string) ([]domain.Potion, error) {
	return e.Enumerate(ctx, Query{Require: []string{ingredient}})
}

// GroupedPotions groups the potions of one ingredient. Callers that already
// hold the potions should call Group directly.
func (e *engine) GroupedPotions(ctx context.Context, ingredient string) ([]domain.PotionGroup, error) {
	potions, err := e.PotionsWith(ctx, ingredient)
	if err != nil {
		return nil, err
	}
	return Group(potions), nil
}

// pool resolves the candidate ingredients; nil selects every ingredient
func (e *engine) pool(names []string) ([]int, error) {
	if names == nil {
		all := make([]int, len(e.entries))
		for i := range all {
			all[i] = i
		}
		return all, nil
	}
	return e.resolveSet(names)
}

func (e *engine) enumerateSequential(ctx context.Context, pool, required []int, limit int) ([]domain.Potion, error) {
	var out []domain.Potion
	for size := domain.MinIngredients; size <= e.opts.MaxIngredients; size++ {
		for first := range pool {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			potions := e.collect(pool, first, size, required)
			out = append(out, potions...)
			if limit > 0 && len(out) >= limit {
				return out[:limit], nil
			}
		}
	}
	return out, nil
}

// enumerateSharded runs one shard per first ingredient. Shards are merged
// size by size in shard order, which reproduces the sequential ordering.
func (e *engine) enumerateSharded(ctx context.Context, pool, required []int, limit int) ([]domain.Potion, error) {
	shards := make([]sizeBuckets, len(pool))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Workers)

	for first := range pool {
		g.Go(func() error {
			for size := domain.MinIngredients; size <= e.opts.MaxIngredients; size++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				shards[first][size] = e.collect(pool, first, size, required)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []domain.Potion
	for size := domain.MinIngredients; size <= e.opts.MaxIngredients; size++ {
		for first := range shards {
			out = append(out, shards[first][size]...)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// collect brews every combination of size ingredients from pool whose
// lowest member is pool[first], in lexicographic order. Combinations that
// cannot hold every required ingredient are never built.
func (e *engine) collect(pool []int, first, size int, required []int) []domain.Potion {
	if len(required) > size || (len(required) > 0 && pool[first] > required[0]) {
		return nil
	}

	var (
		out       []domain.Potion
		evaluated int
	)
	combo := make([]int, 1, size)
	combo[0] = pool[first]
	need := 0
	if len(required) > 0 && pool[first] == required[0] {
		need = 1
	}

	// need indexes the lowest required ingredient not yet in combo
	var walk func(next, need int)
	walk = func(next, need int) {
		if len(combo) == size {
			evaluated++
			if potion, ok := e.brewFiltered(combo); ok {
				out = append(out, potion)
			}
			return
		}
		for i := next; i <= len(pool)-(size-len(combo)); i++ {
			n := need
			if n < len(required) {
				if pool[i] > required[n] {
					break
				}
				if pool[i] == required[n] {
					n++
				}
			}
			if size-len(combo)-1 < len(required)-n {
				continue
			}
			combo = append(combo, pool[i])
			walk(i+1, n)
			combo = combo[:len(combo)-1]
		}
	}
	walk(first+1, need)

	metrics.CombinationsEvaluated.Add(float64(evaluated))
	metrics.RecordPotions(size, len(out))
	return out
}

// containsAll reports whether sorted set holds every element of sorted subset
func containsAll(set, subset []int) bool {
	i := 0
	for _, want := range subset {
		for i < len(set) && set[i] < want {
			i++
		}
		if i == len(set) || set[i] != want {
			return false
		}
	}
	return true
}
