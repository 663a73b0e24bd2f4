package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRange_RecoversFromLayoutPanic(t *testing.T) {
	original := layoutFunc
	t.Cleanup(func() { layoutFunc = original })
	layoutFunc = func(currentPage, totalPages int) []Entry {
		window := make([]Entry, 3)
		return window[:currentPage+totalPages]
	}

	core, logs := observer.New(zapcore.DebugLevel)
	g := New(NewZapLogger(zap.New(core)))

	var entries []Entry
	require.NotPanics(t, func() { entries = g.Range(4, 10) })
	assert.Equal(t, []Entry{Page(1)}, entries)

	errorLogs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errorLogs, 1)
	assert.Contains(t, errorLogs[0].ContextMap()["error"], "page 4 of 10")
}

func TestBuild_ReturnsLayout(t *testing.T) {
	entries, err := build(2, 3)
	require.NoError(t, err)
	assert.Equal(t, Pages(1, 2, 3), entries)
}
