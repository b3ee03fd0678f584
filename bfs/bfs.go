package bfs

import (
	"fmt"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	id    V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable] struct {
	next  func(V) []V
	opts  BFSOptions[V]
	queue []queueItem[V]
	res   *BFSResult[V]
}

// BFS runs a multi-source breadth-first search from starts, expanding each
// vertex through next. Duplicate starts are visited once.
// Returns ErrNeighborsNil, ErrOptionViolation, the context error, or any
// user-supplied hook error.
func BFS[V comparable](starts []V, next func(V) []V, opts ...Option[V]) (*BFSResult[V], error) {
	if next == nil {
		return nil, ErrNeighborsNil
	}
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[V]{
		next:  next,
		opts:  o,
		queue: make([]queueItem[V], 0, len(starts)),
		res: &BFSResult[V]{
			Depth:  make(map[V]int, len(starts)),
			Parent: make(map[V]V),
		},
	}
	for _, s := range starts {
		if !w.res.Reached(s) {
			w.enqueue(s, 0)
		}
	}

	return w.res, w.loop()
}

// enqueue marks id seen at depth d and adds it to the queue.
func (w *walker[V]) enqueue(id V, d int) {
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem[V]{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker[V]) enqueueNeighbors(item queueItem[V]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.next(item.id) {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if !w.res.Reached(nbr) {
			w.res.Parent[nbr] = item.id
			w.enqueue(nbr, nextDepth)
		}
	}
}
