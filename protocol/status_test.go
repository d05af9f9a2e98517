package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/l3ony/Pumpkin/protocol/codec"
)

func TestStatusResponseJSONShape(t *testing.T) {
	resp := StatusResponse{
		Version: &Version{Name: "1.21.4", Protocol: 769},
		Players: &Players{
			Max:    20,
			Online: 1,
			Sample: []Sample{{Name: "steve", ID: "2e9e9a50-557d-3255-9dd6-e0ba291cf013"}},
		},
		Description:        "A Pumpkin Server",
		EnforcesSecureChat: true,
	}

	ba, err := json.Marshal(resp)
	require.NoError(t, err)

	require.JSONEq(t, `{
		"version": {"name": "1.21.4", "protocol": 769},
		"players": {
			"max": 20,
			"online": 1,
			"sample": [{"name": "steve", "id": "2e9e9a50-557d-3255-9dd6-e0ba291cf013"}]
		},
		"description": "A Pumpkin Server",
		"enforcesSecureChat": true
	}`, string(ba))
}

func TestStatusResponseOmitsOptionalSections(t *testing.T) {
	ba, err := json.Marshal(StatusResponse{Description: "hi"})
	require.NoError(t, err)

	require.JSONEq(t, `{"description": "hi", "enforcesSecureChat": false}`, string(ba))
}

func TestPropertyRoundTrip(t *testing.T) {
	sig := "c2lnbmF0dXJl"

	for _, p := range []Property{
		{Name: "textures", Value: "dGV4dHVyZXM=", Signature: &sig},
		{Name: "textures", Value: "dGV4dHVyZXM="},
	} {
		w := codec.NewWriter()
		p.Write(w)

		r := codec.NewReader(w.Bytes())

		got, err := ReadProperty(r)
		require.NoError(t, err)
		require.Equal(t, p, got)
		require.Equal(t, 0, r.Remaining())
	}
}

func TestKnownPackRoundTrip(t *testing.T) {
	p := KnownPack{Namespace: "minecraft", ID: "core", Version: "1.21.4"}

	w := codec.NewWriter()
	p.Write(w)

	got, err := ReadKnownPack(codec.NewReader(w.Bytes()))
	require.NoError(t, err)
	require.Equal(t, p, got)
}
