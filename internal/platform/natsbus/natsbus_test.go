package natsbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMsg(t *testing.T) {
	msg, err := newMsg("update-case-application", "pg", map[string]int{"n": 1})
	require.NoError(t, err)
	assert.Equal(t, "update-case-application", msg.Subject)
	assert.Equal(t, "pg", msg.Header.Get(HeaderKey))
	assert.JSONEq(t, `{"n":1}`, string(msg.Data))

	_, err = newMsg("s", "k", func() {})
	assert.Error(t, err)
}
