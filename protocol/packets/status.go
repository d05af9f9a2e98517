package packets

import (
	"github.com/l3ony/Pumpkin/protocol/codec"
)

// StatusRequest asks for the server list body. No payload.
type StatusRequest struct{}

func (*StatusRequest) ID() codec.VarInt {
	return IDStatusRequest
}

func (*StatusRequest) Read(*codec.Reader) error {
	return nil
}

// PingRequest carries an opaque client timestamp to be echoed back.
type PingRequest struct {
	Payload int64
}

func (*PingRequest) ID() codec.VarInt {
	return IDPingRequest
}

func (pk *PingRequest) Read(r *codec.Reader) error {
	var err error
	pk.Payload, err = r.ReadInt64()

	return err
}

// StatusResponse answers a StatusRequest with the JSON-encoded
// protocol.StatusResponse body.
type StatusResponse struct {
	Body string
}

func (*StatusResponse) ID() codec.VarInt {
	return IDStatusResponse
}

func (pk *StatusResponse) Write(w *codec.Writer) {
	w.PutString(pk.Body)
}

// PongResponse echoes the PingRequest payload.
type PongResponse struct {
	Payload int64
}

func (*PongResponse) ID() codec.VarInt {
	return IDPongResponse
}

func (pk *PongResponse) Write(w *codec.Writer) {
	w.PutInt64(pk.Payload)
}
