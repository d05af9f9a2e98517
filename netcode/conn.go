package netcode

import (
	"net"
	"sync"
	"time"

	"github.com/ztrue/tracerr"

	"github.com/l3ony/Pumpkin/protocol"
)

// A Conn pairs a frame reader and writer over one stream transport. It is the
// narrow surface the session pumps drive; it holds no protocol state beyond
// the compression mode.
type Conn struct {
	c  net.Conn
	fr *FrameReader
	fw *FrameWriter

	closeOnce sync.Once
	closeErr  error
}

func NewConn(c net.Conn) *Conn {
	activeConnections.Inc()

	return &Conn{
		c:  c,
		fr: NewFrameReader(c),
		fw: NewFrameWriter(c),
	}
}

// ReadPacket blocks for the next inbound frame.
func (cn *Conn) ReadPacket() (protocol.RawPacket, error) {
	return cn.fr.ReadFrame()
}

// WritePacket frames and sends one outbound packet.
func (cn *Conn) WritePacket(pk protocol.ClientPacket) error {
	return cn.fw.WritePacket(pk)
}

// EnableCompression flips both directions to the compressed frame format.
// Call only after the SetCompression packet has been written.
func (cn *Conn) EnableCompression(threshold protocol.CompressionThreshold, level protocol.CompressionLevel) {
	cn.fw.EnableCompression(threshold, level)
	cn.fr.EnableCompression()
}

func (cn *Conn) RemoteAddr() net.Addr {
	return cn.c.RemoteAddr()
}

func (cn *Conn) SetReadDeadline(t time.Time) error {
	return cn.c.SetReadDeadline(t)
}

func (cn *Conn) SetWriteDeadline(t time.Time) error {
	return cn.c.SetWriteDeadline(t)
}

// Close is idempotent; the session's drop path and the serve teardown may
// both reach it.
func (cn *Conn) Close() error {
	cn.closeOnce.Do(func() {
		activeConnections.Dec()
		cn.closeErr = cn.c.Close()
	})

	return tracerr.Wrap(cn.closeErr)
}
