package testutil_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/repobridge/pkg/utils/testutil"
)

func TestGetEnvOrSkip(t *testing.T) {
	t.Run("returns value when set", func(t *testing.T) {
		t.Setenv("REPOBRIDGE_TESTUTIL_KEY", "value")
		gt.V(t, testutil.GetEnvOrSkip(t, "REPOBRIDGE_TESTUTIL_KEY")).Equal("value")
	})
}
