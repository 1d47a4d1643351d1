package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	r := NewReport(Vocabulary, "a.txt")
	assert.NoError(t, r.Err())

	r.Records = 3
	r.Accepted = 2
	r.Skip(errors.New("bad line"))

	assert.Equal(t, 1, r.Skipped())
	require.Error(t, r.Err())
	assert.Contains(t, r.Err().Error(), "bad line")
	assert.Equal(t, "vocabulary: 3 records, 2 accepted, 0 duplicates, 1 skipped (a.txt)", r.String())
}

func TestScanLines(t *testing.T) {
	var got []string
	var numbers []int
	err := ScanLines(strings.NewReader("unu\ndoi\r\n\ntrei"), func(n int, line string) error {
		numbers = append(numbers, n)
		got = append(got, line)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, numbers)
	assert.Equal(t, "trei", got[3])
}

func TestScanLines_StopsOnError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := ScanLines(strings.NewReader("a\nb\nc"), func(int, string) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestForEachLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("casă\nmașină\n"), 0644))

	var lines []string
	require.NoError(t, ForEachLine(path, func(_ int, line string) error {
		lines = append(lines, line)
		return nil
	}))
	assert.Equal(t, []string{"casă", "mașină"}, lines)

	err := ForEachLine(filepath.Join(t.TempDir(), "missing.txt"), func(int, string) error { return nil })
	assert.True(t, os.IsNotExist(err))
}
