package generators

import (
	"context"
	"math"
	"testing"

	"github.com/fernandosanchezjr/seedrand/config"
	"github.com/fernandosanchezjr/seedrand/engine"
	"github.com/stretchr/testify/require"
)

const (
	testSeed = 10
	testMin  = -1000
	testMax  = 1000
)

func generateN(t *testing.T, g Generator, n int) []int64 {
	values := make([]int64, n)
	for i := range values {
		v, err := g.Generate(testMin, testMax)
		require.NoError(t, err)
		values[i] = v
	}
	return values
}

func sequenceN(t *testing.T, g Generator, n int) []int64 {
	stream, err := g.GenerateSequenceStream(testMin, testMax, n)
	require.NoError(t, err)
	values, err := stream.Collect(context.Background())
	require.NoError(t, err)
	return values
}

func TestSeeded_MultipleInstancesSameSeed(t *testing.T) {
	a := NewSeeded()
	b := NewSeeded()
	a.SetSeed(11)
	b.SetSeed(11)
	require.Equal(t, generateN(t, a, 10), generateN(t, b, 10))
}

func TestSeeded_ResetSeed(t *testing.T) {
	g := NewSeeded()
	g.SetSeed(testSeed)
	first := generateN(t, g, 2)
	g.SetSeed(testSeed)
	require.Equal(t, first, generateN(t, g, 2))
}

func TestSeeded_GenerateMatchesSequence(t *testing.T) {
	g := NewSeeded()
	g.SetSeed(testSeed)
	single := generateN(t, g, 100)
	g.SetSeed(testSeed)
	require.Equal(t, single, sequenceN(t, g, 100))
}

func TestSeeded_RepeatedSequencesAfterReset(t *testing.T) {
	g := NewSeeded()
	g.SetSeed(testSeed)
	var first []int64
	for i := 0; i < 3; i++ {
		first = append(first, sequenceN(t, g, 5)...)
	}
	g.SetSeed(testSeed)
	var second []int64
	for i := 0; i < 3; i++ {
		second = append(second, sequenceN(t, g, 5)...)
	}
	require.Equal(t, first, second)
	g.SetSeed(testSeed)
	require.Equal(t, first, sequenceN(t, g, 15))
}

func TestSeeded_Reseed(t *testing.T) {
	g := NewSeeded()
	seed := g.Reseed()
	require.Equal(t, int64(uint32(seed)), seed)
	require.Equal(t, seed, g.Engine().Seed())
	values := generateN(t, g, 10)
	g.SetSeed(seed)
	require.Equal(t, values, generateN(t, g, 10))
}

func TestSeeded_Rejections(t *testing.T) {
	g := NewSeeded()
	g.SetSeed(testSeed)
	_, err := g.Generate(5, 3)
	require.ErrorIs(t, err, engine.ErrRange)
	_, err = g.GenerateSequenceStream(5, 3, 10)
	require.ErrorIs(t, err, engine.ErrRange)
	_, err = g.GenerateSequenceStream(testMin, testMax, -1)
	require.ErrorIs(t, err, engine.ErrRange)
	_, err = g.Generate(0, math.MaxInt64)
	require.ErrorIs(t, err, engine.ErrOverflow)

	reference := NewSeeded()
	reference.SetSeed(testSeed)
	require.Equal(t, generateN(t, reference, 5), generateN(t, g, 5))
}

func TestNewSeededFromConfig(t *testing.T) {
	cfg := config.Default()
	seed := int64(testSeed)
	cfg.Engine.Width = 64
	cfg.Engine.Seed = &seed
	cfg.Stream.ChunkSize = 7

	g, err := NewSeededFromConfig(cfg)
	require.NoError(t, err)
	require.Equal(t, engine.Width64, g.Engine().Width())
	require.Equal(t, seed, g.Engine().Seed())

	stream, err := g.GenerateSequenceStream(math.MinInt64, math.MaxInt64, 20)
	require.NoError(t, err)
	var sizes []int
	for chunk := range stream.Chunks() {
		sizes = append(sizes, len(chunk))
	}
	require.Equal(t, []int{7, 7, 6}, sizes)

	cfg.Engine.Width = 8
	_, err = NewSeededFromConfig(cfg)
	require.ErrorIs(t, err, engine.ErrUnsupportedWidth)
}

func TestNewSeededFromConfig_EntropySeed(t *testing.T) {
	a, err := NewSeededFromConfig(config.Default())
	require.NoError(t, err)
	b, err := NewSeededFromConfig(config.Default())
	require.NoError(t, err)
	min, max := a.Engine().Limits()
	var av, bv []int64
	for i := 0; i < 16; i++ {
		v, err := a.Generate(min, max)
		require.NoError(t, err)
		av = append(av, v)
		v, err = b.Generate(min, max)
		require.NoError(t, err)
		bv = append(bv, v)
	}
	require.NotEqual(t, av, bv)
}
