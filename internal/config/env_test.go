package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veskor/sshnowman/internal/config"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SNOWMAN_TEST_STR", "hello")
	assert.Equal(t, "hello", config.GetEnv("SNOWMAN_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", config.GetEnv("SNOWMAN_TEST_STR_UNSET", "fallback"))

	// An empty value is still a set value
	t.Setenv("SNOWMAN_TEST_EMPTY", "")
	assert.Equal(t, "", config.GetEnv("SNOWMAN_TEST_EMPTY", "fallback"))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("SNOWMAN_TEST_BOOL", "true")
	assert.True(t, config.GetEnvBool("SNOWMAN_TEST_BOOL", false))

	t.Setenv("SNOWMAN_TEST_BOOL", "0")
	assert.False(t, config.GetEnvBool("SNOWMAN_TEST_BOOL", true))

	assert.True(t, config.GetEnvBool("SNOWMAN_TEST_BOOL_UNSET", true))

	t.Setenv("SNOWMAN_TEST_BOOL", "maybe")
	assert.True(t, config.GetEnvBool("SNOWMAN_TEST_BOOL", true), "junk falls back")
}
