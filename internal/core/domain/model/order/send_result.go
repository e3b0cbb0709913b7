package order

import (
	"fmt"

	"ordertaking/internal/pkg/errs"
)

// SendResult is the outcome of an acknowledgment delivery attempt.
type SendResult int

const (
	// UnknownSendResult is the zero value. It is treated like NotSent.
	UnknownSendResult SendResult = iota

	// Sent means the acknowledgment was handed over for delivery.
	Sent

	// NotSent means delivery failed. The failure has already been reported by the sender.
	NotSent
)

func getSendResultStrings() map[SendResult]string {
	return map[SendResult]string{
		UnknownSendResult: "Unknown",
		Sent:              "Sent",
		NotSent:           "NotSent",
	}
}

// Validate checks that r is Sent or NotSent.
func (r SendResult) Validate() error {
	if r != Sent && r != NotSent {
		return errs.NewValueIsInvalidErrorWithCause("send result", fmt.Errorf("%d is not a valid send result", r))
	}
	return nil
}

// String returns "Sent", "NotSent" or "Unknown".
func (r SendResult) String() string {
	if str, ok := getSendResultStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
