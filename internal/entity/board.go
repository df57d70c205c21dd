package entity

import (
	"errors"
	"fmt"
)

const BoardSize = 8

// Color is the state of a single cell, and also identifies a player.
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

var ErrUnknownColor = errors.New("unknown color")

func (that Color) Opponent() Color {
	switch that {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (that Color) String() string {
	switch that {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return ""
	}
}

func (that Color) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Color) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*that = Empty
	case "black":
		*that = Black
	case "white":
		*that = White
	default:
		return fmt.Errorf("%w: %q", ErrUnknownColor, text)
	}

	return nil
}

// Board is indexed as Board[row][col].
type Board [BoardSize][BoardSize]Color

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Score struct {
	Black int `json:"black"`
	White int `json:"white"`
}

// directions lists the 8 neighbours as {dRow, dCol}.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// ScanStop tells how a walk from a cell in one direction ended.
type ScanStop int

const (
	RunsOffBoard ScanStop = iota
	HitsEmpty
	HitsOwnColorImmediately
	HitsOwnColorAfterRun
)

// ScanResult is what Scan found. Run counts the opponent stones passed over.
type ScanResult struct {
	Stop ScanStop
	Run  int
}

// Flips reports whether the scanned run would be captured.
func (that ScanResult) Flips() bool {
	return that.Stop == HitsOwnColorAfterRun
}

func NewBoard() Board {
	var board Board
	board[3][3], board[4][4] = White, White
	board[3][4], board[4][3] = Black, Black

	return board
}

func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Scan walks from (row+dRow, col+dCol) outward and reports where the walk stopped.
// It is the only direction walker: legality checks and flipping both use it.
func (that *Board) Scan(row, col, dRow, dCol int, player Color) ScanResult {
	opponent := player.Opponent()
	run := 0

	for r, c := row+dRow, col+dCol; InBounds(r, c); r, c = r+dRow, c+dCol {
		switch that[r][c] {
		case Empty:
			return ScanResult{Stop: HitsEmpty, Run: run}
		case player:
			if run == 0 {
				return ScanResult{Stop: HitsOwnColorImmediately}
			}
			return ScanResult{Stop: HitsOwnColorAfterRun, Run: run}
		case opponent:
			run++
		}
	}

	return ScanResult{Stop: RunsOffBoard, Run: run}
}

func (that *Board) Score() Score {
	var score Score

	for row := range that {
		for _, cell := range that[row] {
			switch cell {
			case Black:
				score.Black++
			case White:
				score.White++
			}
		}
	}

	return score
}

func (that *Board) EmptyCount() int {
	score := that.Score()
	return BoardSize*BoardSize - score.Black - score.White
}

// flip turns the first n cells from (row, col) in the given direction into player's color.
func (that *Board) flip(row, col, dRow, dCol, n int, player Color) {
	r, c := row+dRow, col+dCol
	for i := 0; i < n; i++ {
		that[r][c] = player
		r, c = r+dRow, c+dCol
	}
}
