// Package jsoncodec is a gRPC codec that carries plain Go structs as JSON.
package jsoncodec

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// Name is the content-subtype negotiated on the wire (application/grpc+json).
const Name = "json"

// Codec implements encoding.Codec with encoding/json.
type Codec struct{}

var _ encoding.Codec = Codec{}

// Marshal encodes v as JSON.
func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (Codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Name returns the codec name.
func (Codec) Name() string {
	return Name
}

func init() {
	encoding.RegisterCodec(Codec{})
}
