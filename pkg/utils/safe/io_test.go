package safe_test

import (
	"errors"
	"testing"

	"github.com/secmon-lab/repobridge/pkg/utils/safe"
)

type failingCloser struct{}

func (failingCloser) Close() error { return errors.New("close failed") }

func TestClose(t *testing.T) {
	t.Run("nil closer does not panic", func(t *testing.T) {
		safe.Close(nil)
	})

	t.Run("close error is swallowed", func(t *testing.T) {
		safe.Close(failingCloser{})
	})
}
