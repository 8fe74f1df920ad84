package client

import "github.com/Sharnika-sree/autoscribe/internal/common"

// AuthError is a login rejection carrying the server-supplied message when
// one was present on the wire. It matches common.ErrAuthRejected under
// errors.Is, so flow code can treat every rejection uniformly and still
// show the specific message.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return common.ErrAuthRejected.Error()
	}
	return e.Message
}

func (e *AuthError) Is(target error) bool {
	return target == common.ErrAuthRejected
}
