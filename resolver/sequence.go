package resolver

import (
	"container/heap"

	"github.com/teranos/idlgen/errors"
)

// readyQueue is a min-heap of input positions
type readyQueue []int

func (q readyQueue) Len() int           { return len(q) }
func (q readyQueue) Less(i, j int) bool { return q[i] < q[j] }
func (q readyQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *readyQueue) Push(x any) { *q = append(*q, x.(int)) }

func (q *readyQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}

// keepsOrdering reports whether e constrains the emission order.
// Soft edges inside a component are where the cycle is broken, they impose
// nothing; every other edge orders its target before its source.
func keepsOrdering(e Edge, c *Components) bool {
	if e.Source == e.Target {
		return false
	}
	return e.Kind == Hard || !c.Same(e.Source, e.Target)
}

// Sequence produces the emission order with Kahn's algorithm. Among ready
// nodes the one earliest in input order is emitted first.
func Sequence(g *Graph, c *Components) ([]string, error) {
	inDegree := make([]int, len(g.Nodes))
	dependents := make([][]int, len(g.Nodes))

	for _, e := range g.Edges {
		if !keepsOrdering(e, c) {
			continue
		}
		src, tgt := g.index[e.Source], g.index[e.Target]
		inDegree[src]++
		dependents[tgt] = append(dependents[tgt], src)
	}

	ready := &readyQueue{}
	for i, d := range inDegree {
		if d == 0 {
			*ready = append(*ready, i)
		}
	}
	heap.Init(ready)

	order := make([]string, 0, len(g.Nodes))
	for ready.Len() > 0 {
		i := heap.Pop(ready).(int)
		order = append(order, g.Nodes[i].ID)
		for _, dep := range dependents[i] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				heap.Push(ready, dep)
			}
		}
	}

	if len(order) != len(g.Nodes) {
		var stuck []string
		for i, d := range inDegree {
			if d > 0 {
				stuck = append(stuck, g.Nodes[i].ID)
			}
		}
		return nil, errors.WithAssertionFailure(&InternalInvariantError{
			Emitted: len(order),
			Total:   len(g.Nodes),
			Stuck:   stuck,
		})
	}
	return order, nil
}
