package entity

import (
	"fmt"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Result is the final verdict of a finished game.
type Result string

const (
	ResultNone      Result = ""
	ResultBlackWins Result = "black_wins"
	ResultWhiteWins Result = "white_wins"
	ResultDraw      Result = "draw"
)

// PassOutcome is what AdvanceIfNoMoves decided.
type PassOutcome string

const (
	OutcomeContinue  PassOutcome = "continue"
	OutcomePassed    PassOutcome = "passed"
	OutcomeBlackWins PassOutcome = PassOutcome(ResultBlackWins)
	OutcomeWhiteWins PassOutcome = PassOutcome(ResultWhiteWins)
	OutcomeDraw      PassOutcome = PassOutcome(ResultDraw)
)

// passesToFinish consecutive passes end the game.
const passesToFinish = 2

type Game struct {
	ID        string    `json:"id"`
	Board     Board     `json:"board"`
	Turn      Color     `json:"player_turn"`
	Passes    int       `json:"consecutive_passes"`
	Status    string    `json:"status"`
	Winner    Result    `json:"winner"`
	MoveCount int       `json:"move_count"`
	LastMove  *Position `json:"last_move,omitempty"`
}

// MoveResult is returned by ApplyMove.
type MoveResult struct {
	Score             Score `json:"score"`
	Flipped           int   `json:"flipped"`
	NextPlayerHasMove bool  `json:"next_player_has_move"`
}

// NewGame returns a game in the standard opening position with Black to move.
func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  NewBoard(),
		Turn:   Black,
		Status: StatusOngoing,
	}
}

func (that *Game) IsTerminal() bool {
	return that.Status == StatusFinished
}

func (that *Game) CurrentPlayer() Color {
	return that.Turn
}

func (that *Game) Result() Result {
	return that.Winner
}

func (that *Game) Score() Score {
	return that.Board.Score()
}

func (that *Game) CellState(row, col int) (Color, error) {
	if !InBounds(row, col) {
		return Empty, fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCoordinate, row, col)
	}

	return that.Board[row][col], nil
}

func (that *Game) DirectionFlips(row, col, dRow, dCol int, player Color) bool {
	return that.Board.Scan(row, col, dRow, dCol, player).Flips()
}

// IsLegalMove has no side effects. Out of range coordinates are never legal.
func (that *Game) IsLegalMove(row, col int, player Color) bool {
	if !InBounds(row, col) || that.Board[row][col] != Empty {
		return false
	}

	for _, d := range directions {
		if that.DirectionFlips(row, col, d[0], d[1], player) {
			return true
		}
	}

	return false
}

// LegalMoveHint reports whether the current player may place at (row, col).
func (that *Game) LegalMoveHint(row, col int) bool {
	return !that.IsTerminal() && that.IsLegalMove(row, col, that.Turn)
}

func (that *Game) LegalMoves(player Color) []Position {
	var moves []Position

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if that.IsLegalMove(row, col, player) {
				moves = append(moves, Position{Row: row, Col: col})
			}
		}
	}

	return moves
}

func (that *Game) HasAnyLegalMove(player Color) bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if that.IsLegalMove(row, col, player) {
				return true
			}
		}
	}

	return false
}

// ApplyMove places player's stone at (row, col) and flips every captured run.
// A rejected move leaves the game untouched.
func (that *Game) ApplyMove(row, col int, player Color) (MoveResult, error) {
	if that.IsTerminal() {
		return MoveResult{}, apperror.ErrGameFinished
	}

	if !InBounds(row, col) {
		return MoveResult{}, fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCoordinate, row, col)
	}

	if player != that.Turn {
		return MoveResult{}, apperror.ErrNotYourTurn
	}

	if !that.IsLegalMove(row, col, player) {
		return MoveResult{}, fmt.Errorf("%w: (%d, %d)", apperror.ErrIllegalMove, row, col)
	}

	flipped := 0
	for _, d := range directions {
		scan := that.Board.Scan(row, col, d[0], d[1], player)
		if !scan.Flips() {
			continue
		}

		that.Board.flip(row, col, d[0], d[1], scan.Run, player)
		flipped += scan.Run
	}

	that.Board[row][col] = player
	that.Passes = 0
	that.Turn = player.Opponent()
	that.MoveCount++
	that.LastMove = &Position{Row: row, Col: col}

	return MoveResult{
		Score:             that.Score(),
		Flipped:           flipped,
		NextPlayerHasMove: that.HasAnyLegalMove(that.Turn),
	}, nil
}

// AdvanceIfNoMoves passes the turn when the current player cannot move, and
// finishes the game on the second consecutive pass. On a finished game it
// only reports the final result.
func (that *Game) AdvanceIfNoMoves() PassOutcome {
	if that.IsTerminal() {
		return PassOutcome(that.Winner)
	}

	if that.HasAnyLegalMove(that.Turn) {
		return OutcomeContinue
	}

	that.Passes++
	if that.Passes >= passesToFinish {
		that.finish()
		return PassOutcome(that.Winner)
	}

	that.Turn = that.Turn.Opponent()

	return OutcomePassed
}

func (that *Game) finish() {
	score := that.Score()

	switch {
	case score.Black > score.White:
		that.Winner = ResultBlackWins
	case score.White > score.Black:
		that.Winner = ResultWhiteWins
	default:
		that.Winner = ResultDraw
	}

	that.Status = StatusFinished
	that.Turn = Empty
}
