package internal

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLeveledLogrusFields(t *testing.T) {
	l := &LeveledLogrus{Logger: logrus.New()}

	fields := l.fields("method", "POST", "attempt", 2, "dangling")

	assert.Equal(t, logrus.Fields{"method": "POST", "attempt": 2}, fields)
}

func TestSetLogFormat(t *testing.T) {
	log := GetLogger()
	out := log.Out
	defer func() {
		log.Out = out
		SetLogFormat("text")
	}()

	var buf bytes.Buffer
	log.Out = &buf

	SetLogFormat("json")
	log.Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	SetLogFormat("text")
	log.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}
