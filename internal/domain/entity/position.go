package entity

import "errors"

// ErrPositionDenied is reported when the device refuses to share its position.
var ErrPositionDenied = errors.New("position request denied")

// PositionResult is the outcome of a one-shot current position request. It is
// either a position or a failure, never neither.
type PositionResult struct {
	coordinates Coordinates
	err         error
}

// PositionOf wraps a successfully obtained position.
func PositionOf(coordinates Coordinates) PositionResult {
	return PositionResult{coordinates: coordinates}
}

// PositionFailed wraps a failed position request. A nil err is recorded as
// ErrPositionDenied.
func PositionFailed(err error) PositionResult {
	if err == nil {
		err = ErrPositionDenied
	}
	return PositionResult{err: err}
}

// Resolve runs exactly one of the two branches.
func (r PositionResult) Resolve(onPosition func(Coordinates), onFailure func(error)) {
	if r.err != nil {
		onFailure(r.err)
		return
	}
	onPosition(r.coordinates)
}

// Err returns the failure cause, nil on success.
func (r PositionResult) Err() error {
	return r.err
}
