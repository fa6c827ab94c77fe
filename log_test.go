package lists

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestChunkedLogsStructuralChanges(t *testing.T) {
	requireT := require.New(t)

	core, logs := observer.New(zapcore.DebugLevel)
	l, err := NewChunked[int](2, WithLogger(zap.New(core)), WithInitialCapacity(1))
	requireT.NoError(err)

	for i := 0; i < 4; i++ {
		requireT.NoError(l.PushBack(i))
	}
	requireT.Equal(2, logs.FilterMessage("chunk allocated").Len())
	requireT.Equal(1, logs.FilterMessage("storage grown").Len())

	requireT.NoError(l.Insert(1, 10))
	split := logs.FilterMessage("chunk split").All()
	requireT.Len(split, 1)
	requireT.Equal(map[string]interface{}{"position": int64(0), "displaced": true}, split[0].ContextMap())

	for !l.Empty() {
		_, err := l.RemoveBack()
		requireT.NoError(err)
	}
	requireT.Equal(3, logs.FilterMessage("chunk detached").Len())
}
