package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pdfqa/internal/config"
)

func TestBuildRedisAddr(t *testing.T) {
	tests := []struct {
		name    string
		config  config.RedisConfig
		want    string
		wantErr bool
	}{
		{
			name:   "valid config",
			config: config.RedisConfig{Host: "localhost", Port: "6379"},
			want:   "localhost:6379",
		},
		{
			name:   "ipv6 host",
			config: config.RedisConfig{Host: "::1", Port: "6379"},
			want:   "[::1]:6379",
		},
		{
			name:    "missing host",
			config:  config.RedisConfig{Port: "6379"},
			wantErr: true,
		},
		{
			name:    "missing port",
			config:  config.RedisConfig{Host: "localhost"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildRedisAddr(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	opt, err := Options(config.RedisConfig{
		Host:     "cache-host",
		Port:     "6380",
		Password: "secret",
		DB:       2,
	})
	assert.NoError(t, err)
	assert.Equal(t, "cache-host:6380", opt.Addr)
	assert.Equal(t, "secret", opt.Password)
	assert.Equal(t, 2, opt.DB)
	assert.Equal(t, -1, opt.MaxRetries)

	_, err = Options(config.RedisConfig{})
	assert.Error(t, err)
}
