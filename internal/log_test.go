package internal

import "testing"

func TestNewDefaultLoggerReadsLevelFromEnv(t *testing.T) {
	cases := []struct {
		env  string
		want LogLevel
	}{
		{"", LogLevelInfo},
		{"ERROR", LogLevelError},
		{"WARN", LogLevelWarn},
		{"INFO", LogLevelInfo},
		{"DEBUG", LogLevelDebug},
		{"bogus", LogLevelInfo},
	}
	for _, tc := range cases {
		t.Setenv("LOG_LEVEL", tc.env)
		if got := NewDefaultLogger(); got.level != tc.want {
			t.Errorf("LOG_LEVEL=%q: level = %d, want %d", tc.env, got.level, tc.want)
		}
	}
}
