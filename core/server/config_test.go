package server_test

import (
	"testing"

	"feather/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Address(t *testing.T) {
	tests := []struct {
		name string
		port string
		want string
	}{
		{"Plain", "8080", ":8080"},
		{"AlreadyPrefixed", ":9090", ":9090"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Port: tt.port}
			assert.Equal(t, tt.want, c.Address())
		})
	}
}

func TestConfig_AuthEnabled(t *testing.T) {
	assert.False(t, server.Config{}.AuthEnabled())
	assert.False(t, server.Config{ApiKey: "   "}.AuthEnabled())
	assert.True(t, server.Config{ApiKey: "secret"}.AuthEnabled())
}

func TestConfig_Currency(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		want     string
	}{
		{"Empty", "", "USD"},
		{"Lower", "eur", "EUR"},
		{"Padded", " gbp ", "GBP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{DefaultCurrency: tt.currency}
			assert.Equal(t, tt.want, c.Currency())
		})
	}
}
