package hack

import (
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, level)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("PWNHOOK_TRIGGER", "/cheat")
	t.Setenv("PWNHOOK_LOG_LEVEL", "debug")
	t.Setenv("PWNHOOK_WALKING_SPEED", "250")
	t.Setenv("PWNHOOK_JUMP_SPEED", "1500.5")
	t.Setenv("PWNHOOK_FLOAT_VELOCITY", "7")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Config{
		Trigger:       "/cheat",
		LogLevel:      "debug",
		WalkingSpeed:  250,
		JumpSpeed:     1500.5,
		JumpHoldTime:  1000,
		FloatVelocity: 7,
	}, cfg)

	h := New(cfg)
	assert.True(t, h.IsCommand("/cheat float"))
	assert.False(t, h.IsCommand("!hack float"))
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"PWNHOOK_WALKING_SPEED": "fast",
		"PWNHOOK_LOG_LEVEL":     "loud",
		"PWNHOOK_TRIGGER":       "!h ack",
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(name, value)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
