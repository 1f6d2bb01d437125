package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	rec, err := newRecord("save-case-application", "pg", map[string]string{"id": "c-1"})
	require.NoError(t, err)
	assert.Equal(t, "save-case-application", rec.Topic)
	assert.Equal(t, []byte("pg"), rec.Key)
	assert.JSONEq(t, `{"id":"c-1"}`, string(rec.Value))
	require.Len(t, rec.Headers, 1)
	assert.Equal(t, "content-type", rec.Headers[0].Key)

	_, err = newRecord("t", "k", make(chan int))
	assert.Error(t, err)
}

func TestNewProducerRequiresBrokers(t *testing.T) {
	_, err := NewProducer(nil, nil)
	assert.Error(t, err)
}
