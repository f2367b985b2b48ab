package ecfile

import (
	"bytes"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LucaCtt/ASD-Cotti-Miorada/internal/search"
)

func TestInstanceRoundTrip(t *testing.T) {
	matrix := [][]bool{
		{true, true, false},
		{false, false, true},
	}
	meta := InstanceMeta{
		GeneratedAt:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Prob:         0.5,
		GuaranteeSol: true,
		FixedZeroCol: false,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteInstance(&buf, matrix, meta))

	got, gotMeta, err := ReadInstance(&buf)
	require.NoError(t, err)
	assert.Equal(t, matrix, got)
	assert.False(t, gotMeta.IsSudoku)
}

func TestInstanceRoundTripSudoku(t *testing.T) {
	matrix := [][]bool{
		{true, false},
		{false, true},
	}
	meta := InstanceMeta{IsSudoku: true, Dim: 4, Difficulty: 0.3}

	var buf bytes.Buffer
	require.NoError(t, WriteInstance(&buf, matrix, meta))

	got, gotMeta, err := ReadInstance(&buf)
	require.NoError(t, err)
	assert.Equal(t, matrix, got)
	assert.True(t, gotMeta.IsSudoku)
	assert.Equal(t, 4, gotMeta.Dim)
}

func TestReadInstanceRejectsRaggedRows(t *testing.T) {
	data := ";;; header\n1 1 0 -\n1 0 -\n"
	_, _, err := ReadInstance(bytes.NewBufferString(data))
	require.Error(t, err)
}

func TestResultRoundTrip(t *testing.T) {
	res := search.Result{
		Covers:           [][]int{{0, 1}, {2}},
		VisitedNodes:     42,
		TotalNodes:       big.NewInt(127),
		ExecutionTime:    1500 * time.Millisecond,
		Stopped:          true,
		TimeLimitReached: false,
		Plus:             true,
	}
	matrix := [][]bool{{true, true, false}, {false, false, true}, {true, false, true}}

	var buf bytes.Buffer
	require.NoError(t, WriteResult(&buf, matrix, res, 0))

	got, err := ReadResult(&buf)
	require.NoError(t, err)

	assert.True(t, res.Equal(got))
	assert.Equal(t, res.Stopped, got.Stopped)
	assert.Equal(t, res.TimeLimitReached, got.TimeLimitReached)
}

func TestResultRoundTripNoCoverage(t *testing.T) {
	res := search.Result{
		Covers:     nil,
		TotalNodes: big.NewInt(7),
	}
	var buf bytes.Buffer
	require.NoError(t, WriteResult(&buf, [][]bool{{true}}, res, 0))

	got, err := ReadResult(&buf)
	require.NoError(t, err)
	assert.Empty(t, got.Covers)
}

func TestCodecForPath(t *testing.T) {
	assert.Equal(t, CodecGzip, CodecForPath("out.gz"))
	assert.Equal(t, CodecZstd, CodecForPath("out.zst"))
	assert.Equal(t, CodecSnappy, CodecForPath("out.snappy"))
	assert.Equal(t, CodecNone, CodecForPath("out.txt"))
}

func TestGzipWrapRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	wc, err := WrapWriter(&buf, CodecGzip)
	require.NoError(t, err)
	_, err = wc.Write([]byte("hello exact cover"))
	require.NoError(t, err)
	require.NoError(t, wc.Close())

	r, err := WrapReader(&buf, CodecGzip)
	require.NoError(t, err)
	out := make([]byte, 64)
	n, _ := r.Read(out)
	assert.Equal(t, "hello exact cover", string(out[:n]))
}
