package engine

// Terminal scores as seen from the side SelectMove plays for. Scores are
// not depth-adjusted: every won line is worth the same, so ties between
// equally scored cells fall back to cell-index order.
const (
	winScore  = 10
	lossScore = -10
)

// SelectMove returns the empty cell where mark should play, assuming the
// opponent answers every move perfectly. The full game tree is searched,
// which is fine for 9 cells. Candidate cells are tried in index order and
// only a strictly better score replaces the current choice, so among
// equally good cells the lowest index always wins.
//
// The board is mutated during the search but restored cell by cell, and is
// identical to its input state when SelectMove returns.
//
// Calling SelectMove on a full or already decided board is a programming
// error and panics.
func SelectMove(board *Board, mark string) int {
	if Evaluate(*board) != OutcomeInProgress {
		panic("engine: SelectMove on a full or decided board")
	}

	bestCell := -1
	bestScore := lossScore - 1

	for cell := range board {
		if board[cell] != EmptyCell {
			continue
		}

		board[cell] = mark
		score := minimax(board, mark, Opponent(mark))
		board[cell] = EmptyCell

		if score > bestScore {
			bestScore = score
			bestCell = cell
		}
	}

	return bestCell
}

// minimax - scores the board for mark, with turn the side to place next.
// On mark's turns the best reachable score is maximized, on the opponent's
// turns it is minimized. Every placement is undone before trying the next
// sibling, so the board leaves the recursion exactly as it entered.
func minimax(board *Board, mark, turn string) int {
	outcome := Evaluate(*board)

	switch {
	case outcome == OutcomeTie:
		return 0
	case outcome.IsWin():
		if outcome.Winner() == mark {
			return winScore
		}
		return lossScore
	}

	maximizing := turn == mark

	best := lossScore - 1
	if !maximizing {
		best = winScore + 1
	}

	for cell := range board {
		if board[cell] != EmptyCell {
			continue
		}

		board[cell] = turn
		score := minimax(board, mark, Opponent(turn))
		board[cell] = EmptyCell

		if maximizing && score > best {
			best = score
		}
		if !maximizing && score < best {
			best = score
		}
	}

	return best
}
