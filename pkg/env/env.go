// Package env keeps names of environment variables with special significance
// to mealog.
package env

// Environment variables with special significance to mealog.
//
// Note that some of these env vars may be significant only in special
// circumstances, such as when running unit tests.
const (
	HOME                   = "HOME"
	MEALOG_TEST_TIME_SCALE = "MEALOG_TEST_TIME_SCALE"
	XDG_CONFIG_HOME        = "XDG_CONFIG_HOME"
)
