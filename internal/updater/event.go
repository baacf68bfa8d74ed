package updater

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ErrMissingInstanceID indicates the invocation payload did not carry an
// instance identifier. The invocation fails before any AWS call is made.
var ErrMissingInstanceID = errors.New("event is missing an instance id")

// Event is the invocation payload delivered by the trigger:
// {"event": {"EC2InstanceId": "i-..."}}. No other fields are consumed.
type Event struct {
	Event InstanceEvent `json:"event"`
}

// InstanceEvent names the instance whose address should be published.
type InstanceEvent struct {
	EC2InstanceID string `json:"EC2InstanceId" validate:"required"`
}

// InstanceID validates the event shape and returns the instance identifier.
func (e Event) InstanceID() (string, error) {
	if err := validate.Struct(e); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMissingInstanceID, err)
	}
	return e.Event.EC2InstanceID, nil
}
