package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLevels(t *testing.T) {
	cases := map[string]bool{
		"debug": true,
		"INFO":  false,
		"":      false,
		"warn":  false,
		"dev":   true,
	}
	for level, debug := range cases {
		logger, err := New(level)
		require.NoError(t, err, level)
		assert.Equal(t, debug, logger.Core().Enabled(zap.DebugLevel), level)
		assert.True(t, logger.Core().Enabled(zap.ErrorLevel), level)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("loud")
	assert.Error(t, err)
}
