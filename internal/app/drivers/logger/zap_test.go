package logger

import (
	"sehatnama-service/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel(" WARN "))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
}

func TestOutputsFor(t *testing.T) {
	files := config.Logger{OutputFileName: "app.log", OutputErrorFileName: "app_error.log"}

	out, errOut := outputsFor("development", files)
	assert.Equal(t, []string{"stdout"}, out)
	assert.Equal(t, []string{"stderr"}, errOut)

	out, errOut = outputsFor("production", files)
	assert.Equal(t, []string{"stdout", "app.log"}, out)
	assert.Equal(t, []string{"stderr", "app_error.log"}, errOut)

	out, _ = outputsFor("production", config.Logger{})
	assert.Equal(t, []string{"stdout"}, out)
}
