package main

import (
	"crypto/md5"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/models"
	"github.com/ztrue/tracerr"

	"github.com/l3ony/Pumpkin/protocol"
)

// offlineUUID derives the stable identity of a username in offline mode,
// matching the historical "OfflinePlayer:" name-based scheme.
func offlineUUID(name string) uuid.UUID {
	sum := md5.Sum([]byte("OfflinePlayer:" + name))
	sum[6] = (sum[6] & 0x0f) | 0x30
	sum[8] = (sum[8] & 0x3f) | 0x80

	id, _ := uuid.FromBytes(sum[:])

	return id
}

// A profile is the persisted view of a player, backed by a row in the
// profiles collection.
type profile struct {
	recordID   string
	playerID   uuid.UUID
	username   string
	banned     bool
	banReason  string
	properties []protocol.Property
}

// profileStore reads and writes player rows in the profiles collection.
type profileStore struct {
	app *pocketbase.PocketBase
}

func (ps *profileStore) fromRecord(rec *models.Record) *profile {
	p := &profile{
		recordID:  rec.Id,
		username:  rec.GetString("username"),
		banned:    rec.GetBool("banned"),
		banReason: rec.GetString("ban_reason"),
	}

	if id, err := uuid.Parse(rec.GetString("player_id")); err == nil {
		p.playerID = id
	}

	if raw := rec.GetString("properties"); raw != "" {
		json.Unmarshal([]byte(raw), &p.properties)
	}

	return p
}

// ensure returns the profile for a username, creating the row on first login.
func (ps *profileStore) ensure(name string) (*profile, error) {
	rec, _ := ps.app.Dao().FindFirstRecordByFilter(
		"profiles", "username = {:username}",
		dbx.Params{"username": name},
	)
	if rec != nil {
		return ps.fromRecord(rec), nil
	}

	col, err := ps.app.Dao().FindCollectionByNameOrId("profiles")
	if err != nil {
		return nil, tracerr.Wrap(err)
	}

	rec = models.NewRecord(col)
	rec.Set("username", name)
	rec.Set("player_id", offlineUUID(name).String())
	rec.Set("properties", "[]")

	if err := ps.app.Dao().SaveRecord(rec); err != nil {
		return nil, tracerr.Wrap(err)
	}

	return ps.fromRecord(rec), nil
}

// markOnline stamps the row when a session enters play.
func (ps *profileStore) markOnline(s *session) error {
	return tracerr.Wrap(ps.touch(s, true))
}

// markOffline stamps the row when a session ends.
func (ps *profileStore) markOffline(s *session) error {
	return tracerr.Wrap(ps.touch(s, false))
}

func (ps *profileStore) touch(s *session, online bool) error {
	playerID, _ := s.identity()

	rec, err := ps.app.Dao().FindFirstRecordByFilter(
		"profiles", "player_id = {:playerId}",
		dbx.Params{"playerId": playerID.String()},
	)
	if err != nil {
		return tracerr.Wrap(err)
	}

	rec.Set("online", online)
	rec.Set("last_ip", s.remoteAddr)
	rec.Set("last_seen", time.Now().UTC().Format(time.RFC3339))

	if locale := s.clientLocale(); locale != "" {
		rec.Set("locale", locale)
	}

	return tracerr.Wrap(ps.app.Dao().SaveRecord(rec))
}
