package protocol

import (
	"github.com/l3ony/Pumpkin/protocol/codec"
)

// StatusResponse is the JSON body answered to a status request.
type StatusResponse struct {
	// The version the server is running. (Optional)
	Version *Version `json:"version,omitempty"`
	// Information about currently connected players. (Optional)
	Players *Players `json:"players,omitempty"`
	// The description displayed, also called MOTD.
	Description string `json:"description"`
	// The icon displayed, as a base64 data URL. (Optional)
	Favicon *string `json:"favicon,omitempty"`
	// Whether players are forced to use secure chat.
	EnforcesSecureChat bool `json:"enforcesSecureChat"`
}

type Version struct {
	// The name of the version (e.g. 1.21.4)
	Name string `json:"name"`
	// The protocol version (e.g. 769)
	Protocol uint32 `json:"protocol"`
}

type Players struct {
	// The maximum player count the server allows.
	Max uint32 `json:"max"`
	// The current online player count.
	Online uint32 `json:"online"`
	// Currently connected players. Players can opt out of being listed.
	Sample []Sample `json:"sample"`
}

type Sample struct {
	// The player's name.
	Name string `json:"name"`
	// The player's UUID, as a string.
	ID string `json:"id"`
}

// A Property is a signed key/value credential pair on a player profile,
// immutable once constructed. Value and signature are base64.
type Property struct {
	Name      string  `json:"name"`
	Value     string  `json:"value"`
	Signature *string `json:"signature,omitempty"`
}

func (p Property) Write(w *codec.Writer) {
	w.PutString(p.Name)
	w.PutString(p.Value)
	codec.PutOption(w, p.Signature, (*codec.Writer).PutString)
}

func ReadProperty(r *codec.Reader) (Property, error) {
	name, err := r.ReadString()
	if err != nil {
		return Property{}, err
	}

	value, err := r.ReadString()
	if err != nil {
		return Property{}, err
	}

	sig, err := codec.ReadOption(r, (*codec.Reader).ReadString)
	if err != nil {
		return Property{}, err
	}

	return Property{Name: name, Value: value, Signature: sig}, nil
}

// A KnownPack identifies a data pack both sides already have, so the server
// can skip re-sending its registry contents.
type KnownPack struct {
	Namespace string
	ID        string
	Version   string
}

func (p KnownPack) Write(w *codec.Writer) {
	w.PutString(p.Namespace)
	w.PutString(p.ID)
	w.PutString(p.Version)
}

func ReadKnownPack(r *codec.Reader) (KnownPack, error) {
	namespace, err := r.ReadString()
	if err != nil {
		return KnownPack{}, err
	}

	id, err := r.ReadString()
	if err != nil {
		return KnownPack{}, err
	}

	version, err := r.ReadString()
	if err != nil {
		return KnownPack{}, err
	}

	return KnownPack{Namespace: namespace, ID: id, Version: version}, nil
}
