package updater

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_InstanceID(t *testing.T) {
	event := Event{Event: InstanceEvent{EC2InstanceID: "i-abc123"}}
	id, err := event.InstanceID()
	require.NoError(t, err)
	assert.Equal(t, "i-abc123", id)
}

func TestEvent_InstanceID_Missing(t *testing.T) {
	_, err := Event{}.InstanceID()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingInstanceID)
}

func TestEvent_DecodesTriggerPayload(t *testing.T) {
	var event Event
	err := json.Unmarshal([]byte(`{"event": {"EC2InstanceId": "i-abc123"}}`), &event)
	require.NoError(t, err)

	id, err := event.InstanceID()
	require.NoError(t, err)
	assert.Equal(t, "i-abc123", id)
}

func TestEvent_EmptyNestedEvent(t *testing.T) {
	var event Event
	err := json.Unmarshal([]byte(`{"event": {}}`), &event)
	require.NoError(t, err)

	_, err = event.InstanceID()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingInstanceID)
}
