package hanoi

// OptimalMoves returns 2^n - 1, the length of the shortest solution for n disks.
func OptimalMoves(n int) int {
	if n <= 0 {
		return 0
	}
	return 1<<n - 1
}

// Solve returns the canonical move list that carries n disks from rod from to
// rod to, using aux as the spare: move n-1 disks out of the way, move the
// largest, then move the n-1 disks back on top of it.
func Solve(n, from, to, aux int) []Move {
	moves := make([]Move, 0, OptimalMoves(n))
	return solveInto(moves, n, from, to, aux)
}

func solveInto(moves []Move, n, from, to, aux int) []Move {
	if n <= 0 {
		return moves
	}
	if n == 1 {
		return append(moves, Move{From: from, To: to})
	}
	moves = solveInto(moves, n-1, from, aux, to)
	moves = append(moves, Move{From: from, To: to})
	return solveInto(moves, n-1, aux, to, from)
}

// Plan returns the shortest move list that gathers every disk of p on the
// target rod, starting from whatever legal configuration p is in. For a fresh
// puzzle it equals Solve(p.Disks(), Source, Target, Auxiliary).
//
// Disks are placed largest first: if disk k already sits on its destination,
// only the smaller disks need to follow; otherwise the smaller disks are parked
// on the third rod, disk k moves, and the smaller disks are brought on top.
func Plan(p *Puzzle) []Move {
	n := p.Disks()
	pos := make([]int, n+1) // pos[d] is the rod holding disk d
	for r := range NumRods {
		for _, d := range p.rods[r] {
			pos[d] = r
		}
	}

	var moves []Move
	var gather func(k, dest int)
	gather = func(k, dest int) {
		if k == 0 {
			return
		}
		if pos[k] == dest {
			gather(k-1, dest)
			return
		}
		spare := 3 - pos[k] - dest // rod indices sum to 3
		gather(k-1, spare)
		moves = append(moves, Move{From: pos[k], To: dest})
		pos[k] = dest
		gather(k-1, dest)
	}
	gather(n, Target)
	return moves
}
