package internal

// NoPredecessor marks the start of a predecessor chain.
const NoPredecessor = -1

// ReconstructPath rebuilds the path ending at current from predecessor links.
// The result runs forward and excludes the node that has no predecessor.
func ReconstructPath(current int, predecessor func(int) int) []int {
	path := []int{}
	for previous := predecessor(current); previous != NoPredecessor; previous = predecessor(current) {
		path = append(path, current)
		current = previous
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
