package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

var errMissingCoordinate = errors.New("row and col are required")

type gameResponse struct {
	ID         string            `json:"id"`
	Board      entity.Board      `json:"board"`
	Turn       entity.Color      `json:"turn"`
	Status     string            `json:"status"`
	Winner     entity.Result     `json:"winner"`
	Score      entity.Score      `json:"score"`
	Passes     int               `json:"consecutive_passes"`
	MoveCount  int               `json:"move_count"`
	LastMove   *entity.Position  `json:"last_move,omitempty"`
	LegalMoves []entity.Position `json:"legal_moves"`
}

type cellResponse struct {
	Row   int          `json:"row"`
	Col   int          `json:"col"`
	State entity.Color `json:"state"`
	Hint  bool         `json:"hint"`
}

type moveRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type moveResponse struct {
	Game    gameResponse       `json:"game"`
	Outcome entity.PassOutcome `json:"outcome"`
	Passed  []entity.Color     `json:"passed"`
	Flipped int                `json:"flipped"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newGameResponse(game *entity.Game) gameResponse {
	legalMoves := []entity.Position{}
	if !game.IsTerminal() {
		legalMoves = append(legalMoves, game.LegalMoves(game.CurrentPlayer())...)
	}

	return gameResponse{
		ID:         game.ID,
		Board:      game.Board,
		Turn:       game.CurrentPlayer(),
		Status:     game.Status,
		Winner:     game.Result(),
		Score:      game.Score(),
		Passes:     game.Passes,
		MoveCount:  game.MoveCount,
		LastMove:   game.LastMove,
		LegalMoves: legalMoves,
	}
}

func newMoveResponse(game *entity.Game, report *othello.TurnReport) moveResponse {
	passed := []entity.Color{}

	return moveResponse{
		Game:    newGameResponse(game),
		Outcome: report.Outcome,
		Passed:  append(passed, report.Passed...),
		Flipped: report.Move.Flipped,
	}
}

func (that *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.CreateGame(r.Context())
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, newGameResponse(game))
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameResponse(game))
}

func (that *Server) handleGetCell(w http.ResponseWriter, r *http.Request) {
	row, rowErr := strconv.Atoi(chi.URLParam(r, "row"))
	col, colErr := strconv.Atoi(chi.URLParam(r, "col"))
	if rowErr != nil || colErr != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "row and col must be integers"})
		return
	}

	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	state, err := game.CellState(row, col)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, cellResponse{
		Row:   row,
		Col:   col,
		State: state,
		Hint:  game.LegalMoveHint(row, col),
	})
}

func (that *Server) handleMakeTurn(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if req.Row == nil || req.Col == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: errMissingCoordinate.Error()})
		return
	}

	game, report, err := that.games.MakeTurn(r.Context(), chi.URLParam(r, "gameID"), *req.Row, *req.Col)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newMoveResponse(game, report))
}

func (that *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperror.ErrInvalidCoordinate):
		status = http.StatusBadRequest
	case errors.Is(err, apperror.ErrIllegalMove), errors.Is(err, apperror.ErrNotYourTurn):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, apperror.ErrGameFinished):
		status = http.StatusConflict
	case errors.Is(err, apperror.ErrGameNotFound):
		status = http.StatusNotFound
	default:
		that.logger.Error("request failed", "error", err)
		that.writeJSON(w, status, errorResponse{Error: http.StatusText(status)})
		return
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
