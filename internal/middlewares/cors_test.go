package middlewares

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSOptionsOrigenesExplicitos(t *testing.T) {
	opts := CORSOptions([]string{"http://localhost:4200"})
	assert.True(t, opts.AllowCredentials)
	assert.False(t, opts.AllowAllOrigins)
	assert.Equal(t, []string{"http://localhost:4200"}, opts.AllowOrigins)
	assert.Contains(t, opts.AllowHeaders, "X-Request-Id")
	assert.Contains(t, opts.AllowHeaders, "X-Correlation-Id")
}

func TestCORSOptionsComodinSinCredenciales(t *testing.T) {
	for _, origins := range [][]string{{"*"}, nil, {"http://a", "*"}} {
		opts := CORSOptions(origins)
		assert.False(t, opts.AllowCredentials, "%v", origins)
		assert.True(t, opts.AllowAllOrigins, "%v", origins)
		assert.Empty(t, opts.AllowOrigins, "%v", origins)
	}
}
