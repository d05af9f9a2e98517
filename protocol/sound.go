package protocol

import (
	"github.com/l3ony/Pumpkin/protocol/codec"
)

// A SoundEvent is an anonymous, inline sound definition: a resource name plus
// an optional fixed hearing range. Always owned by its containing value.
type SoundEvent struct {
	Name  codec.Identifier
	Range *float32
}

// IDOrSoundEvent references the sound registry when ID != 0, or carries an
// inline SoundEvent when ID == 0. The inline payload is written if and only
// if ID == 0; for any other ID the reader resolves the sound by registry
// lookup and nothing follows the varint.
type IDOrSoundEvent struct {
	ID    codec.VarInt
	Sound *SoundEvent
}

// RegistrySound references an entry in the external sound registry. The id is
// the wire value, already shifted so zero stays reserved for the inline case.
func RegistrySound(id codec.VarInt) IDOrSoundEvent {
	return IDOrSoundEvent{ID: id}
}

// InlineSound carries an anonymous sound definition.
func InlineSound(ev SoundEvent) IDOrSoundEvent {
	return IDOrSoundEvent{ID: 0, Sound: &ev}
}

// Write and ReadIDOrSoundEvent are hand-paired: both branch on ID == 0.
// Keep them adjacent so the conditional payload cannot silently drift.
func (s IDOrSoundEvent) Write(w *codec.Writer) {
	w.PutVarInt(s.ID)

	if s.ID == 0 && s.Sound != nil {
		w.PutIdentifier(s.Sound.Name)
		codec.PutOption(w, s.Sound.Range, (*codec.Writer).PutFloat32)
	}
}

func ReadIDOrSoundEvent(r *codec.Reader) (IDOrSoundEvent, error) {
	id, err := r.ReadVarInt()
	if err != nil {
		return IDOrSoundEvent{}, err
	}

	if id != 0 {
		return IDOrSoundEvent{ID: id}, nil
	}

	name, err := r.ReadIdentifier()
	if err != nil {
		return IDOrSoundEvent{}, err
	}

	rng, err := codec.ReadOption(r, (*codec.Reader).ReadFloat32)
	if err != nil {
		return IDOrSoundEvent{}, err
	}

	return IDOrSoundEvent{ID: 0, Sound: &SoundEvent{Name: name, Range: rng}}, nil
}
