package testutil

import (
	"testing"
	"time"

	"mealog.dev/pkg/env"
)

var scaledTests = []struct {
	name string
	env  string
	d    time.Duration
	want time.Duration
}{
	{"no env", "", time.Second, time.Second},
	{"valid env", "10", time.Second, 10 * time.Second},
	{"invalid env", "a", time.Second, time.Second},
	{"zero env", "0", time.Second, time.Second},
	{"negative env", "-1", time.Second, time.Second},
}

func TestScaled(t *testing.T) {
	for _, test := range scaledTests {
		t.Run(test.name, func(t *testing.T) {
			if test.env == "" {
				Unsetenv(t, env.MEALOG_TEST_TIME_SCALE)
			} else {
				Setenv(t, env.MEALOG_TEST_TIME_SCALE, test.env)
			}
			if got := Scaled(test.d); got != test.want {
				t.Errorf("Scaled(%v) = %v, want %v", test.d, got, test.want)
			}
		})
	}
}
