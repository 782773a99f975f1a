package devpack

import (
	"errors"

	"github.com/mitchellh/mapstructure"
)

// ErrNoData is returned when decoding the data payload of a failure response.
var ErrNoData = errors.New("response carries no data payload")

// Response is the engine's outcome envelope for one executed action. Exactly
// one of Data and Error is populated, gated by Success. The client only ever
// decodes these from engine replies; Success and Failure exist for the rare
// case where the client must report a local outcome in the same shape.
type Response struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
	Error   any  `json:"error,omitempty"`
	Meta    any  `json:"meta,omitempty"`
}

// Success builds a successful response envelope.
func Success(data, meta any) Response {
	return Response{Success: true, Data: data, Meta: meta}
}

// Failure builds a failed response envelope.
func Failure(err, meta any) Response {
	return Response{Success: false, Error: err, Meta: meta}
}

// DecodeData decodes the data payload into out, which should be a pointer to
// a struct or map matching the result shape of the originating action kind.
func (r *Response) DecodeData(out any) error {
	if !r.Success || r.Data == nil {
		return ErrNoData
	}

	return mapstructure.Decode(r.Data, out)
}

