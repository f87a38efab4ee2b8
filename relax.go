package gridastar

// stepCost is the cost of every move between adjacent passable cells.
const stepCost = 1

// relax updates the neighbours of the just-extracted node i and then closes it.
//
// A neighbour seen for the first time gets its H once and enters the frontier; an
// already queued neighbour is updated only when the new G is strictly lower.
func (e *engine) relax(i int) {
	current := e.table.at(i)
	e.scratch = e.table.neighbors(e.scratch[:0], i)

	for _, j := range e.scratch {
		neighbor := e.table.at(j)
		if neighbor.closed || neighbor.terrain == Blocked {
			continue
		}

		tentativeG := current.g + stepCost
		discovered := !neighbor.visited
		if discovered {
			neighbor.h = Manhattan(neighbor.pos, e.goal)
			neighbor.visited = true
		}
		if !discovered && tentativeG >= neighbor.g {
			continue
		}

		neighbor.predecessor = i
		neighbor.g = tentativeG
		neighbor.f = neighbor.g + neighbor.h
		if discovered {
			e.open.insert(j)
		} else {
			e.open.decrease(j)
		}
	}

	current.closed = true
}
