package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKoanf(t *testing.T) *Koanf {
	t.Helper()
	k, err := NewKoanf("", false, nil)
	require.NoError(t, err)
	k.Add("section", map[string]any{
		"int":      "7",
		"padded":   " 12 ",
		"bad_int":  "seven",
		"bool":     "true",
		"bad_bool": "maybe",
		"dur":      "5m",
		"bad_dur":  "soon",
		"list":     " customs , ,methodology,",
		"slice":    []any{"routes", 3},
		"empty":    "",
		"native":   42,
	})
	return k
}

func TestGetIntCoercion(t *testing.T) {
	k := newTestKoanf(t)
	assert.Equal(t, 7, k.GetInt("section.int", 1))
	assert.Equal(t, 12, k.GetInt("section.padded"))
	assert.Equal(t, 42, k.GetInt("section.native"))
	assert.Equal(t, 5, k.GetInt("section.bad_int", 5))
	assert.Equal(t, 3, k.GetInt("section.missing", 3))
	assert.Equal(t, 9, k.GetInt("section.empty", 9))
	assert.Zero(t, k.GetInt("section.missing"))
}

func TestGetBoolCoercion(t *testing.T) {
	k := newTestKoanf(t)
	assert.True(t, k.GetBool("section.bool"))
	assert.True(t, k.GetBool("section.bad_bool", true))
	assert.False(t, k.GetBool("section.bad_bool"))
	assert.True(t, k.GetBool("section.missing", true))
}

func TestGetDurationCoercion(t *testing.T) {
	k := newTestKoanf(t)
	assert.Equal(t, 5*time.Minute, k.GetDuration("section.dur", "1m"))
	assert.Equal(t, 30*time.Minute, k.GetDuration("section.bad_dur", "30m"))
	assert.Equal(t, 90*time.Second, k.GetDuration("section.missing", "90s"))
	assert.Equal(t, time.Hour, k.GetDuration("section.missing", time.Hour))
	assert.Zero(t, k.GetDuration("section.missing"))
}

func TestGetStringsTrimsAndDropsEmpty(t *testing.T) {
	k := newTestKoanf(t)
	assert.Equal(t, []string{"customs", "methodology"}, k.GetStrings("section.list"))
	assert.Equal(t, []string{"routes", "3"}, k.GetStrings("section.slice"))
	assert.Equal(t, []string{"a", "b"}, k.GetStrings("section.missing", "a,b"))
	assert.Empty(t, k.GetStrings("section.empty"))
}

func TestGetStringFallsBackOnEmpty(t *testing.T) {
	k := newTestKoanf(t)
	assert.Equal(t, "fallback", k.GetString("section.empty", "fallback"))
	assert.Equal(t, "42", k.GetString("section.native"))
	assert.Equal(t, "", k.GetString("section.missing"))
}

func TestEnvReadsProcessEnvironment(t *testing.T) {
	t.Setenv("ZEIT_TEST_VALUE", "from-env")
	t.Setenv("ZEIT_TEST_BLANK", "")
	k, err := NewKoanf("", false, nil)
	require.NoError(t, err)
	assert.Equal(t, "from-env", k.Env("ZEIT_TEST_VALUE", "default"))
	assert.Equal(t, "default", k.Env("ZEIT_TEST_BLANK", "default"))
	assert.Equal(t, 5, k.Env("ZEIT_TEST_UNSET", 5))
	assert.Nil(t, k.Env("ZEIT_TEST_UNSET"))
}
