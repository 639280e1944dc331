package search

import "github.com/herohde/morlock/pkg/board"

// repetitionStack tracks the Zobrist hash of every position along the current line of
// play, owned by a single Search and mutated only in lockstep with Position.Make/Unmake
// during recursion.
type repetitionStack struct {
	hashes []board.ZobristHash
}

func (r *repetitionStack) push(hash board.ZobristHash) {
	r.hashes = append(r.hashes, hash)
}

func (r *repetitionStack) pop() {
	r.hashes = r.hashes[:len(r.hashes)-1]
}

// clear discards the history, called at the game level whenever an irreversible move is
// played: no position before it can ever recur.
func (r *repetitionStack) clear() {
	r.hashes = r.hashes[:0]
}

// isThreefold reports whether hash (expected to be the current top of stack) occurs
// three or more times in the stack.
func (r *repetitionStack) isThreefold(hash board.ZobristHash) bool {
	count := 0
	for _, h := range r.hashes {
		if h == hash {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}
