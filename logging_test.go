package flycam

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, "flycam", false)

	l.Debugf("hidden %d", 1)
	assert.Empty(t, buf.String())

	l.Infof("frame %d", 7)
	assert.Contains(t, buf.String(), "frame 7")
	assert.Contains(t, buf.String(), "flycam")

	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())
	l.Debugf("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")
}

func TestDefaultLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, "", false).With("run", "abc")

	l.Warnf("careful")
	assert.Contains(t, buf.String(), "run=abc")
	assert.Contains(t, buf.String(), "careful")
}

func TestApp_LoggerNeverNil(t *testing.T) {
	var app *App
	assert.NotNil(t, app.Logger())
	assert.NotNil(t, (&App{}).Logger())
}
