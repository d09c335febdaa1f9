package pkg

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type caseRecord struct {
	Index        int
	Input        string
	Variants     []string
	Similarities []float64
	Average      float64
}

func collect[T any](t *testing.T, spill FileSpill[T]) []T {
	t.Helper()

	var items []T
	require.NoError(t, spill.Range(func(_ uint64, item T) error {
		items = append(items, item)
		return nil
	}))

	return items
}

func TestFileSpill(t *testing.T) {
	t.Run("NewFileSpill creates file in dir", func(t *testing.T) {
		dir := t.TempDir()

		spill, err := NewFileSpill[int](dir)
		require.NoError(t, err)
		defer spill.Close()

		require.Equal(t, dir, filepath.Dir(spill.Path()))
		require.Contains(t, filepath.Base(spill.Path()), "mutatest-spill-")
		require.FileExists(t, spill.Path())
	})

	t.Run("NewFileSpill creates missing dir", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "spill")

		spill, err := NewFileSpill[int](dir)
		require.NoError(t, err)
		defer spill.Close()

		require.DirExists(t, dir)
	})

	t.Run("Append keeps order", func(t *testing.T) {
		spill, err := NewFileSpill[string](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.Append("the quick brown fox"))
		require.NoError(t, spill.Append("the speedy brown fox"))

		require.Equal(t, []string{"the quick brown fox", "the speedy brown fox"}, collect(t, spill))
	})

	t.Run("Len tracks appends", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.Equal(t, uint64(0), spill.Len())

		require.NoError(t, spill.Append(1))
		require.Equal(t, uint64(1), spill.Len())

		require.NoError(t, spill.AppendBatch([]int{2, 3}))
		require.Equal(t, uint64(3), spill.Len())
	})

	t.Run("Range iterates all items in order", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		expected := []int{100, 200, 300}
		require.NoError(t, spill.AppendBatch(expected))

		var collected []int
		err = spill.Range(func(_ uint64, item int) error {
			collected = append(collected, item)
			return nil
		})

		require.NoError(t, err)
		require.Equal(t, expected, collected)
	})

	t.Run("Range callback error stops iteration", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.AppendBatch([]int{1, 2, 3}))

		stop := errors.New("stop at index 1")
		count := 0
		rangeErr := spill.Range(func(index uint64, _ int) error {
			count++
			if index == 1 {
				return stop
			}

			return nil
		})

		require.ErrorIs(t, rangeErr, stop)
		require.Equal(t, 2, count)
	})

	t.Run("case records survive round trip", func(t *testing.T) {
		spill, err := NewFileSpill[caseRecord](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		mutated := caseRecord{
			Index:        0,
			Input:        "the cat sat",
			Variants:     []string{"the feline sat", "the cat sit"},
			Similarities: []float64{0.5, 1},
			Average:      0.75,
		}
		empty := caseRecord{Index: 1, Input: "of the", Average: math.NaN()}

		require.NoError(t, spill.Append(mutated))
		require.NoError(t, spill.Append(empty))

		got := collect(t, spill)
		require.Len(t, got, 2)
		require.Equal(t, mutated, got[0])
		require.Equal(t, "of the", got[1].Input)
		require.Empty(t, got[1].Variants)
		require.True(t, math.IsNaN(got[1].Average))
	})

	t.Run("Close removes file and is idempotent", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)

		require.NoError(t, spill.Append(1))
		require.NoError(t, spill.Close())
		require.NoError(t, spill.Close())

		_, err = os.Stat(spill.Path())
		require.True(t, os.IsNotExist(err))

		require.Error(t, spill.Append(2))
	})
}

func TestFileSpill_EdgeCases(t *testing.T) {
	t.Run("empty spill range returns no items", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		count := 0
		err = spill.Range(func(_ uint64, _ int) error {
			count++
			return nil
		})

		require.NoError(t, err)
		require.Equal(t, 0, count)
	})

	t.Run("append empty string", func(t *testing.T) {
		spill, err := NewFileSpill[string](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.Append(""))

		require.Equal(t, []string{""}, collect(t, spill))
	})
}

// BenchmarkAppend measures the performance of appending case records.
func BenchmarkAppend(b *testing.B) {
	spill, err := NewFileSpill[caseRecord](b.TempDir())
	if err != nil {
		b.Fatalf("failed to create filespill: %v", err)
	}
	defer spill.Close()

	record := caseRecord{
		Input:        "the quick brown fox jumps over the lazy dog",
		Variants:     []string{"the speedy brown fox jumps over the lazy dog"},
		Similarities: []float64{0.8},
		Average:      0.8,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		record.Index = i
		_ = spill.Append(record)
	}
}

// BenchmarkRange measures the performance of iterating all items.
func BenchmarkRange(b *testing.B) {
	spill, err := NewFileSpill[int](b.TempDir())
	if err != nil {
		b.Fatalf("failed to create filespill: %v", err)
	}
	defer spill.Close()

	for i := 0; i < 1000; i++ {
		_ = spill.Append(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = spill.Range(func(_ uint64, _ int) error {
			return nil
		})
	}
}
