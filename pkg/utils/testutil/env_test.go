package testutil_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/octoclass/pkg/utils/testutil"
)

func TestGetEnvOrSkip(t *testing.T) {
	t.Setenv("TEST_OCTOCLASS_ENV", "test_value")
	gt.V(t, testutil.GetEnvOrSkip(t, "TEST_OCTOCLASS_ENV")).Equal("test_value")
}

func TestGetEnvsOrSkip(t *testing.T) {
	t.Run("returns values in order", func(t *testing.T) {
		t.Setenv("TEST_OCTOCLASS_A", "a")
		t.Setenv("TEST_OCTOCLASS_B", "b")

		values := testutil.GetEnvsOrSkip(t, "TEST_OCTOCLASS_B", "TEST_OCTOCLASS_A")
		gt.V(t, values).Equal([]string{"b", "a"})
	})

	t.Run("skips when any is missing", func(t *testing.T) {
		t.Setenv("TEST_OCTOCLASS_A", "a")

		var reached bool
		t.Run("inner", func(t *testing.T) {
			testutil.GetEnvsOrSkip(t, "TEST_OCTOCLASS_A", "TEST_OCTOCLASS_NOT_SET")
			reached = true
		})
		gt.False(t, reached)
	})
}
