package main

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/assoc"
	"github.com/hupe1980/assoc/testutil"
)

// intSet is the surface shared by TreeSet[int] and HashSet[int].
type intSet interface {
	Insert(key int) (assoc.SetIterator[int], bool)
	InsertAll(seq iter.Seq[int]) int
	Find(key int) assoc.SetIterator[int]
	EraseAt(it assoc.SetIterator[int]) assoc.SetIterator[int]
	Erase(key int) int
	Count(key int) int
	Len() int
	Keys() iter.Seq[int]
	Clear()
	Check() error
}

type variant struct {
	name    string
	ordered bool
	multi   bool
	make    func(opts ...assoc.Option) intSet
}

var variants = []variant{
	{"tree-set", true, false, func(opts ...assoc.Option) intSet { return assoc.NewTreeSet[int](opts...) }},
	{"tree-multiset", true, true, func(opts ...assoc.Option) intSet { return assoc.NewTreeMultiSet[int](opts...) }},
	{"hash-set", false, false, func(opts ...assoc.Option) intSet { return assoc.NewHashSet[int](opts...) }},
	{"hash-multiset", false, true, func(opts ...assoc.Option) intSet { return assoc.NewHashMultiSet[int](opts...) }},
}

type workload struct {
	v        variant
	cfg      config
	rng      *testutil.RNG
	set      intSet
	model    *testutil.Model
	logger   *assoc.Logger
	progress rate.Sometimes
}

func newWorkload(v variant, cfg config, seed int64, logger *assoc.Logger, mc assoc.MetricsCollector) *workload {
	return &workload{
		v:        v,
		cfg:      cfg,
		rng:      testutil.NewRNG(seed),
		set:      v.make(assoc.WithLogger(logger), assoc.WithMetricsCollector(mc)),
		model:    testutil.NewModel(v.multi),
		logger:   logger,
		progress: rate.Sometimes{Interval: 2 * time.Second},
	}
}

func (w *workload) run(ctx context.Context) error {
	for i := range w.cfg.ops {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := w.step(); err != nil {
			return fmt.Errorf("op %d: %w", i, err)
		}
		if w.cfg.checkEvery > 0 && (i+1)%w.cfg.checkEvery == 0 {
			if err := w.verify(); err != nil {
				return fmt.Errorf("op %d: %w", i, err)
			}
		}
		w.progress.Do(func() {
			w.logger.Info("progress", "ops", i+1, "size", w.set.Len())
		})
	}
	return w.verify()
}

func (w *workload) step() error {
	k := w.rng.Intn(w.cfg.keys)
	switch op := w.rng.Intn(100); {
	case op < 50:
		_, ok := w.set.Insert(k)
		if want := w.model.Insert(k); ok != want {
			return fmt.Errorf("insert %d: accepted=%v, want %v", k, ok, want)
		}
	case op < 75:
		it := w.set.Find(k)
		if it.IsEnd() != (w.model.Count(k) == 0) {
			return fmt.Errorf("find %d: found=%v, model count %d", k, !it.IsEnd(), w.model.Count(k))
		}
		if !it.IsEnd() {
			w.set.EraseAt(it)
			w.model.EraseOne(k)
		}
	case op < 90:
		if got, want := w.set.Count(k), w.model.Count(k); got != want {
			return fmt.Errorf("count %d: %d, want %d", k, got, want)
		}
	case op < 97:
		if got, want := w.set.Erase(k), w.model.Erase(k); got != want {
			return fmt.Errorf("erase %d: removed %d, want %d", k, got, want)
		}
	case op < 99:
		batch := w.rng.Keys(1+w.rng.Intn(64), w.cfg.keys)
		want := 0
		for _, b := range batch {
			if w.model.Insert(b) {
				want++
			}
		}
		if got := w.set.InsertAll(slices.Values(batch)); got != want {
			return fmt.Errorf("bulk insert of %d keys: kept %d, want %d", len(batch), got, want)
		}
	default:
		w.set.Clear()
		w.model.Clear()
	}
	return nil
}

func (w *workload) verify() error {
	if err := w.set.Check(); err != nil {
		return err
	}
	if got, want := w.set.Len(), w.model.Len(); got != want {
		return fmt.Errorf("size %d, want %d", got, want)
	}
	want := w.model.InsertionOrder()
	if w.v.ordered {
		want = w.model.Sorted()
	}
	if got := slices.Collect(w.set.Keys()); !slices.Equal(got, want) {
		return fmt.Errorf("traversal diverges from the model")
	}
	return nil
}
