package util

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/sidkik/logloader/pkg/errors"
)

func mockExit() *int {
	code := -1
	exit = func(c int) {
		code = c
	}
	return &code
}

func TestHandleFatalError(t *testing.T) {
	code := mockExit()
	HandleFatalError(errors.WithContext(errors.New("cause"), "context"))
	assert.Equal(t, 1, *code)
}

func TestHandlePanic(t *testing.T) {
	code := mockExit()
	hook := test.NewGlobal()
	defer hook.Reset()

	func() {
		defer HandlePanic()
		panic("boom")
	}()

	assert.Equal(t, 1, *code)
	if assert.NotNil(t, hook.LastEntry()) {
		assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
		assert.Equal(t, "boom", hook.LastEntry().Data["panic"])
	}
}

func TestHandlePanicNoPanic(t *testing.T) {
	code := mockExit()

	func() {
		defer HandlePanic()
	}()

	assert.Equal(t, -1, *code)
}
