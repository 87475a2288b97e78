package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold_CorrectMove(t *testing.T) {
	p := Progress{TotalMoves: 2, CorrectMoves: 1, IncorrectMoves: 1}

	updated, won := Fold(p, Verdict{IsCorrect: true}, 3)

	assert.Equal(t, Progress{TotalMoves: 3, CorrectMoves: 2, IncorrectMoves: 1}, updated)
	assert.False(t, won)
	assert.Equal(t, Progress{TotalMoves: 2, CorrectMoves: 1, IncorrectMoves: 1}, p, "input must not be mutated")
}

func TestFold_IncorrectMove(t *testing.T) {
	updated, won := Fold(Progress{}, Verdict{IsCorrect: false}, 0)

	assert.Equal(t, Progress{TotalMoves: 1, IncorrectMoves: 1}, updated)
	assert.False(t, won, "an incorrect move never wins, even with an empty hand")
}

func TestFold_WinCondition(t *testing.T) {
	p := Progress{TotalMoves: 4, CorrectMoves: 4}

	updated, won := Fold(p, Verdict{IsCorrect: true}, 0)

	assert.True(t, won)
	assert.Equal(t, Progress{TotalMoves: 5, CorrectMoves: 5}, updated)
}

func TestFold_WinRequiresEmptyHand(t *testing.T) {
	_, won := Fold(Progress{}, Verdict{IsCorrect: true}, 1)
	assert.False(t, won)
}
