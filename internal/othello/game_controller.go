package othello

import (
	"fmt"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
)

// TurnReport describes everything one click changed.
type TurnReport struct {
	Player  entity.Color       `json:"player"`
	Move    entity.MoveResult  `json:"move"`
	Passed  []entity.Color     `json:"passed,omitempty"`
	Outcome entity.PassOutcome `json:"outcome"`
}

// AttemptMove plays the current player's stone at (row, col) and settles the
// turn afterwards. Rejected moves leave the game untouched.
func AttemptMove(gameInstance *entity.Game, row, col int) (*TurnReport, error) {
	if err := validateMove(gameInstance, row, col); err != nil {
		return nil, fmt.Errorf("invalid turn: %w", err)
	}

	player := gameInstance.CurrentPlayer()

	move, err := gameInstance.ApplyMove(row, col, player)
	if err != nil {
		return nil, fmt.Errorf("failed to apply move: %w", err)
	}

	report := Settle(gameInstance)
	report.Player = player
	report.Move = move

	return report, nil
}

// Settle runs pass detection until the current player can move or the game
// ends. At most two passes happen in a row.
func Settle(gameInstance *entity.Game) *TurnReport {
	report := &TurnReport{}

	for {
		skipped := gameInstance.CurrentPlayer()
		passes := gameInstance.Passes

		outcome := gameInstance.AdvanceIfNoMoves()
		if gameInstance.Passes > passes {
			report.Passed = append(report.Passed, skipped)
		}

		if outcome != entity.OutcomePassed {
			report.Outcome = outcome
			return report
		}
	}
}

// validateMove - checks if the move is valid.
func validateMove(gameInstance *entity.Game, row, col int) error {
	if gameInstance.IsTerminal() {
		return apperror.ErrGameFinished
	}

	if !entity.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCoordinate, row, col)
	}

	if !gameInstance.IsLegalMove(row, col, gameInstance.CurrentPlayer()) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrIllegalMove, row, col)
	}

	return nil
}
