package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAcceptKey(t *testing.T) {
	// Given: the sample nonce from RFC 6455 section 1.3
	key := "dGhlIHNhbXBsZSBub25jZQ=="

	// When: the accept key is derived
	acceptKey := GenerateAcceptKey(key)

	// Then: it should match the value from the RFC
	assert.Equal(t, "s3pPLMBiTxaQ9kYGzzhZRbK+xOo=", acceptKey)
}
