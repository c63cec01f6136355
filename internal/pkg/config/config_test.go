//go:build unit

package config_test

import (
	"testing"
	"time"

	"guarupark-checkout/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestCheckoutConfig_IdleTTL(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.CheckoutConfig
		want time.Duration
	}{
		{
			name: "idle ttl above pix expiry is kept",
			cfg:  config.CheckoutConfig{SessionIdleTTL: 2 * time.Hour, PixExpiry: time.Hour},
			want: 2 * time.Hour,
		},
		{
			name: "idle ttl below pix expiry is raised",
			cfg:  config.CheckoutConfig{SessionIdleTTL: 10 * time.Minute, PixExpiry: time.Hour},
			want: time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.IdleTTL())
		})
	}
}
