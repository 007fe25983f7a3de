package engine

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

// Board holds the 9 cells in row-major order: row 0 is cells 0-2,
// row 1 is cells 3-5, row 2 is cells 6-8.
type Board [9]string

// Lines - the 8 cell triples that win the game: 3 rows, 3 columns, 2 diagonals.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Outcome classifies a board. It is either OutcomeInProgress, OutcomeTie,
// or the mark of the winning player.
type Outcome string

const (
	OutcomeInProgress Outcome = ""
	OutcomeTie        Outcome = "-"
)

func (that Outcome) IsWin() bool {
	return that != OutcomeInProgress && that != OutcomeTie
}

// Winner - returns the winning mark, or an empty string if nobody has won.
func (that Outcome) Winner() string {
	if !that.IsWin() {
		return EmptyCell
	}
	return string(that)
}

// Evaluate - derives the outcome of a board. Lines are checked in their
// fixed order; if none is complete the board is a tie when full and still
// in progress otherwise. Pure function, the board is never modified.
func Evaluate(board Board) Outcome {
	for _, line := range Lines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != EmptyCell && a == b && b == c {
			return Outcome(a)
		}
	}

	for _, cell := range board {
		if cell == EmptyCell {
			return OutcomeInProgress
		}
	}

	return OutcomeTie
}

// Opponent - returns the mark of the other player.
func Opponent(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
