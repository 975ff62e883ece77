// pkg/gridmap/pathfinding.go
package gridmap

import (
	"container/heap"
	"errors"
	"math"
)

// ErrNotFound is returned when no path joins start and goal. This is an
// expected outcome, not a failure of the search.
var ErrNotFound = errors.New("gridmap: path not found")

// PathResult is a path from start to goal, both included. Cost is the number
// of steps taken, len(Cells)-1.
type PathResult struct {
	Cells []Cell
	Cost  int
}

// AStar finds the cheapest 4-connected path over Air cells from start to goal.
// Start or goal outside the grid or on a Wall yields ErrNotFound. The grid
// must not change while the search runs.
func AStar(grid *Grid, start, goal Cell) (PathResult, error) {
	if grid == nil || !grid.IsPassable(start) || !grid.IsPassable(goal) {
		return PathResult{}, ErrNotFound
	}

	pq := &PriorityQueue{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &Node{Cell: start, Priority: heuristic(start, goal), Seq: seq})

	costSoFar := map[Cell]int{start: 0}
	closed := make(map[Cell]bool)

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if closed[current.Cell] {
			continue
		}
		closed[current.Cell] = true

		if current.Cell == goal {
			return PathResult{Cells: reconstructPath(current), Cost: current.Cost}, nil
		}

		for _, neighbor := range grid.Neighbors(current.Cell) {
			if closed[neighbor] {
				continue
			}
			newCost := current.Cost + 1
			if old, exists := costSoFar[neighbor]; !exists || newCost < old {
				costSoFar[neighbor] = newCost
				seq++
				heap.Push(pq, &Node{
					Cell:     neighbor,
					Cost:     newCost,
					Priority: newCost + heuristic(neighbor, goal),
					Seq:      seq,
					Parent:   current,
				})
			}
		}
	}
	return PathResult{}, ErrNotFound
}

// heuristic is the Euclidean distance rounded to the nearest integer. It never
// exceeds the Manhattan distance, so it is admissible on a 4-connected grid.
func heuristic(a, b Cell) int {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return int(math.Round(math.Hypot(dx, dy)))
}

// Node is a search frontier entry.
type Node struct {
	Cell     Cell
	Cost     int // steps from start
	Priority int // Cost + heuristic
	Seq      int // push order, breaks priority ties
	Parent   *Node
}

// PriorityQueue is the A* frontier, a min-heap on Priority.
type PriorityQueue []*Node

func (pq PriorityQueue) Len() int { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority < pq[j].Priority
	}
	return pq[i].Seq < pq[j].Seq
}
func (pq PriorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(node *Node) []Cell {
	path := make([]Cell, node.Cost+1)
	for i := node.Cost; node != nil; i-- {
		path[i] = node.Cell
		node = node.Parent
	}
	return path
}
