package puzzle

import "github.com/zyedidia/generic/queue"

// RecomputeLighting computes the lit mask for the grid from scratch.
//
// Every lamp that is on seeds a breadth-first flood fill over the four
// orthogonal neighbours. Light enters any in-bounds cell that does not block
// light, and each cell is visited at most once. The result is the set of cells
// light-connected to some lamp, independent of expansion order.
//
// The mask is never updated incrementally: closing a door in the middle of a
// lit corridor must darken everything behind it, and only a full pass from the
// seeds gets that right.
func RecomputeLighting(g *Grid) LitMask {
	mask := newLitMask(g.rows, g.cols)
	q := queue.New[Pos]()

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p := P(r, c)
			if g.At(p) == TileLampOn {
				mask.set(p)
				q.Enqueue(p)
			}
		}
	}

	for !q.Empty() {
		cur := q.Dequeue()
		for _, d := range orthogonal {
			next := cur.Add(d[0], d[1])
			if !g.InBounds(next) || mask.Lit(next) {
				continue
			}
			if g.At(next).BlocksLight() {
				continue
			}
			mask.set(next)
			q.Enqueue(next)
		}
	}

	return mask
}
