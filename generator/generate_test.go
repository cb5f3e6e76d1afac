package generator_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exactcover/generator"
	"github.com/katalvlaran/exactcover/sudoku"
)

func TestGenerate_SeededDeterminism(t *testing.T) {
	first, _, err := generator.Generate(generator.WithSeed(42))
	require.NoError(t, err)
	second, _, err := generator.Generate(generator.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, first.Givens.Flat(), second.Givens.Flat())
	assert.Equal(t, first.Solution.Flat(), second.Solution.Flat())
	assert.Equal(t, first.Clues, second.Clues)
	assert.NotEqual(t, first.ID, second.ID, "identity is fresh per run")
}

func TestGenerate_SolutionIsComplete(t *testing.T) {
	p, stats, err := generator.Generate(generator.WithSeed(7))
	require.NoError(t, err)

	require.True(t, p.Solution.Full())
	ok, conflicts := sudoku.Validate(p.Solution)
	assert.True(t, ok, "conflicts: %v", conflicts)
	assert.Greater(t, stats.Steps, 0, "carving probes do real work")
}

func TestGenerate_GivensComeFromSolution(t *testing.T) {
	p, _, err := generator.Generate(generator.WithSeed(7))
	require.NoError(t, err)

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := p.Givens.At(r, c); v != 0 {
				assert.Equal(t, p.Solution.At(r, c), v, "given at (%d,%d)", r, c)
			}
		}
	}
	assert.Equal(t, 81-p.Givens.Blanks(), p.Clues)
}

func TestGenerate_PuzzleIsUnique(t *testing.T) {
	p, _, err := generator.Generate(generator.WithSeed(7))
	require.NoError(t, err)

	ok, _, err := sudoku.Unique(p.Givens)
	require.NoError(t, err)
	assert.True(t, ok)

	solved, _, err := sudoku.Solve(p.Givens)
	require.NoError(t, err)
	assert.Equal(t, p.Solution.Flat(), solved.Flat(), "the one completion is the recorded solution")
}

func TestGenerate_ClueTargets(t *testing.T) {
	tests := []struct {
		name       string
		difficulty generator.Difficulty
		atLeast    int
		atMost     int
	}{
		{name: "easy", difficulty: generator.Easy, atLeast: 40, atMost: 40},
		{name: "medium", difficulty: generator.Medium, atLeast: 34, atMost: 34},
		// Hard and expert carving can run out of safely removable cells
		// above the target; accept a small overshoot.
		{name: "hard", difficulty: generator.Hard, atLeast: 28, atMost: 33},
		{name: "expert", difficulty: generator.Expert, atLeast: 24, atMost: 33},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, _, err := generator.Generate(
				generator.WithSeed(11),
				generator.WithDifficulty(tc.difficulty),
			)
			require.NoError(t, err)
			assert.Equal(t, tc.difficulty, p.Difficulty)
			assert.GreaterOrEqual(t, p.Clues, tc.atLeast, "carving never crosses its target")
			assert.LessOrEqual(t, p.Clues, tc.atMost)
		})
	}
}

func TestGenerate_ClockSeedRecorded(t *testing.T) {
	p, _, err := generator.Generate()
	require.NoError(t, err)
	assert.NotZero(t, p.Seed, "derived seed is reported for reproduction")
	assert.True(t, p.Solution.Full())
}

func TestGenerate_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p, _, err := generator.Generate(generator.WithContext(ctx), generator.WithSeed(3))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, p)
}

func TestGenerate_BadDifficulty(t *testing.T) {
	p, _, err := generator.Generate(generator.WithDifficulty(generator.Difficulty(9)))
	assert.ErrorIs(t, err, generator.ErrBadDifficulty)
	assert.Nil(t, p)
}

func TestGenerate_IDIsUUID(t *testing.T) {
	p, _, err := generator.Generate(generator.WithSeed(1))
	require.NoError(t, err)
	_, err = uuid.Parse(p.ID)
	assert.NoError(t, err)
}

func TestDifficulty_StringRoundTrip(t *testing.T) {
	for _, d := range []generator.Difficulty{
		generator.Easy, generator.Medium, generator.Hard, generator.Expert,
	} {
		got, err := generator.ParseDifficulty(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	got, err := generator.ParseDifficulty("EXPERT")
	require.NoError(t, err)
	assert.Equal(t, generator.Expert, got, "parsing is case-insensitive")

	_, err = generator.ParseDifficulty("nightmare")
	assert.ErrorIs(t, err, generator.ErrBadDifficulty)
}
