// Package protocol implements the versioned, state-scoped binary packet
// protocol the server speaks. It owns the value-to-bytes contracts and the
// hand-written encodings whose wire shape depends on runtime values; framing,
// compression and socket I/O live in netcode.
package protocol

import (
	"github.com/l3ony/Pumpkin/protocol/codec"
)

// CurrentProtocol is the protocol revision this layer implements.
// Don't forget to bump this when any wire-visible encoding changes.
const CurrentProtocol uint16 = 769

// MaxPacketSize is the largest frame the processor will accept, in bytes.
const MaxPacketSize = 2097152

// A RawPacket is a packet between frame decode and typed decode: its numeric
// identity is known, its payload is not yet dissected.
type RawPacket struct {
	ID      codec.VarInt
	Payload []byte
}

// Packet is the numeric-identity capability both directions share. The ID is
// only meaningful relative to (direction, connection state); the registry in
// protocol/packets owns that scoping.
type Packet interface {
	ID() codec.VarInt
}

// ClientPacket is the outbound contract. Writing cannot fail: a value that
// reaches the encoder is well-formed by construction.
type ClientPacket interface {
	Packet
	Write(w *codec.Writer)
}

// ServerPacket is the inbound contract. Read populates the receiver from the
// cursor or fails; on failure the caller discards the whole frame.
type ServerPacket interface {
	Packet
	Read(r *codec.Reader) error
}

// CompressionThreshold is the minimum frame size, in bytes, that gets
// compressed. Smaller frames are sent raw.
type CompressionThreshold uint32

// CompressionLevel is the zlib aggressiveness knob. Distinct from the
// threshold type so the two cannot be swapped at a call site.
type CompressionLevel uint32
