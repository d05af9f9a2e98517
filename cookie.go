package main

import (
	"crypto/hmac"
	"crypto/sha256"
	"time"

	"github.com/google/uuid"
	"github.com/shamaton/msgpack/v2"
	"github.com/ztrue/tracerr"
	"golang.org/x/crypto/hkdf"

	"github.com/l3ony/Pumpkin/protocol/codec"
)

// sessionCookieKey is the identifier the client stores our cookie under. It
// survives transfers, so the receiving host can recognize the session.
var sessionCookieKey = codec.Vanilla("session")

// How long a sealed cookie stays acceptable.
const cookieMaxAge = 5 * time.Minute

// sessionCookie is the payload carried across transfers.
type sessionCookie struct {
	PlayerID uuid.UUID `msgpack:"player_id"`
	Username string    `msgpack:"username"`
	IssuedAt int64     `msgpack:"issued_at"`
}

// A cookieJar seals session cookies with an HMAC so a transferred client can
// prove its session came from us. Keys are derived from the configured secret,
// never used raw.
type cookieJar struct {
	hmac [32]byte
}

func newCookieJar(secret string) (*cookieJar, error) {
	jar := &cookieJar{}

	if secret == "" {
		return jar, nil
	}

	hmacHkdf := hkdf.New(sha256.New, []byte(secret), nil, []byte{0x01})
	if _, err := hmacHkdf.Read(jar.hmac[:]); err != nil {
		return nil, tracerr.Wrap(err)
	}

	return jar, nil
}

// enabled reports whether a secret was configured. Without one, cookies are
// neither issued nor accepted.
func (j *cookieJar) enabled() bool {
	return j.hmac != [32]byte{}
}

func (j *cookieJar) mac(ct []byte) []byte {
	mac := hmac.New(sha256.New, j.hmac[:])
	mac.Write(ct)

	return mac.Sum(nil)
}

// Seal marshals the cookie and appends its MAC.
func (j *cookieJar) Seal(c sessionCookie) ([]byte, error) {
	ct, err := msgpack.Marshal(&c)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}

	return append(ct, j.mac(ct)...), nil
}

// Open verifies the MAC and freshness, then unmarshals the cookie.
func (j *cookieJar) Open(ba []byte) (sessionCookie, error) {
	if len(ba) < sha256.Size {
		return sessionCookie{}, tracerr.New("cookie too short")
	}

	ct, em := ba[:len(ba)-sha256.Size], ba[len(ba)-sha256.Size:]

	if !hmac.Equal(j.mac(ct), em) {
		return sessionCookie{}, tracerr.New("cookie mac mismatch")
	}

	var c sessionCookie
	if err := msgpack.Unmarshal(ct, &c); err != nil {
		return sessionCookie{}, tracerr.Wrap(err)
	}

	if time.Since(time.Unix(c.IssuedAt, 0)) > cookieMaxAge {
		return sessionCookie{}, tracerr.New("cookie expired")
	}

	return c, nil
}
