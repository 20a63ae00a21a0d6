package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildURL(t *testing.T) {
	assert.Equal(t, "https://api.test/entidades/7", BuildURL("https://api.test/", "/entidades/", "7"))
	assert.Equal(t, "https://api.test", BuildURL("https://api.test/"))
}

func TestAddBearerAndKey(t *testing.T) {
	h := AddBearer(nil, "abc")
	assert.Equal(t, "Bearer abc", h["Authorization"])

	h = AddTasasKey(h, "")
	_, ok := h["x-api-key"]
	assert.False(t, ok)

	h = AddTasasKey(h, "k1")
	assert.Equal(t, "k1", h["x-api-key"])
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"http://a", "http://b"}, splitList(" http://a , ,http://b"))
	assert.Nil(t, splitList(""))
}
