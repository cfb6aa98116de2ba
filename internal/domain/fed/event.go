// Package fed defines the typed feed events decoded from raw records.
//
// Every variant carries exactly the data needed to rebuild its raw
// record. Values are immutable once decoded.
package fed

import (
	"time"

	"github.com/google/uuid"
	"github.com/okian/feedcodec/internal/domain/model"
)

// Event is one decoded feed record.
type Event interface {
	Type() model.EventType
	Header() Envelope
}

// Envelope holds the record fields the grammar never interprets.
type Envelope struct {
	ID       uuid.UUID
	Created  time.Time
	Category int64
	Nuts     int64

	Sim        string
	Season     int64
	Day        int64
	Phase      int64
	Tournament int64
}

// Header returns the envelope itself so variants satisfy Event by embedding it.
func (e Envelope) Header() Envelope { return e }

// Game locates an event within a game.
type Game struct {
	ID   uuid.UUID
	Play int64
}

// Matchup is the default [away, home] team tag pair.
type Matchup struct {
	Away uuid.UUID
	Home uuid.UUID
}

// Player is a named player reference.
type Player struct {
	ID   uuid.UUID
	Name string
}

// Team is a named team reference.
type Team struct {
	ID   uuid.UUID
	Name string
}

// SubEventRef identifies a child record.
type SubEventRef struct {
	ID      uuid.UUID
	Created time.Time
	Nuts    int64
}

// ScoringPlayer is a runner announced as scoring.
type ScoringPlayer struct {
	ID         uuid.UUID
	Name       string
	FreeRefill *SubEventRef
}

// SpicyChange is a heating up, red hot or cooled off notice on the batter.
type SpicyChange struct {
	Status SpicyStatus
	Sub    SubEventRef
}

// StoppedInhabiting is a haunting player leaving the batter.
type StoppedInhabiting struct {
	Player Player
	Sub    SubEventRef
}

// ItemDamage is an item breaking or losing durability at the end of a play.
type ItemDamage struct {
	Owner        Player
	ItemID       uuid.UUID
	ItemName     string
	Broke        bool
	HealthBefore int64
	HealthAfter  int64
	PlayerRating float64
	Sub          SubEventRef
}

// StatChange is a stat increase child record.
type StatChange struct {
	Sub    SubEventRef
	Stat   int64
	Before float64
	After  float64
}
