package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrInvalidCoordinate = errors.New("coordinate is outside the board")
	ErrIllegalMove       = errors.New("move does not flip any stone")
	ErrGameNotFound      = errors.New("game not found")
)
