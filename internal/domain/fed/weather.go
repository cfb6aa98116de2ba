package fed

import (
	"github.com/google/uuid"
	"github.com/okian/feedcodec/internal/domain/model"
)

// StrikeZapped is the Electricity removing a strike.
type StrikeZapped struct {
	Envelope
	Game  Game
	Teams Matchup
}

// BirdsCircle is the Birds weather doing nothing.
type BirdsCircle struct {
	Envelope
	Game  Game
	Teams Matchup
}

// BirdsUnshell is the Birds freeing a Shelled player.
type BirdsUnshell struct {
	Envelope
	Game   Game
	Teams  Matchup
	Player Player
	Mod    SubEventRef
}

// Blooddrain is one player siphoning another's ability.
type Blooddrain struct {
	Envelope
	Game    Game
	Teams   Matchup
	Drainer Player
	Target  Player
	Stat    BlooddrainStat
}

// Incineration is a player incinerated and replaced.
type Incineration struct {
	Envelope
	Game        Game
	Team        Team
	Slot        RosterSlot
	Victim      Player
	Replacement Player
}

// IncinerationBlocked is a Fireproof player surviving an incineration.
type IncinerationBlocked struct {
	Envelope
	Game   Game
	Teams  Matchup
	Player Player
}

// SweptRunner is one runner swept Elsewhere by a flood.
type SweptRunner struct {
	Player Player
	Mod    SubEventRef
}

// FloodingSwept is Immateria sweeping the bases.
type FloodingSwept struct {
	Envelope
	Game    Game
	Teams   Matchup
	Runners []SweptRunner
}

// SalmonSwim restarts an inning.
type SalmonSwim struct {
	Envelope
	Game   Game
	Teams  Matchup
	Inning int64
}

// PolarityShift flips the polarity weather.
type PolarityShift struct {
	Envelope
	Game  Game
	Teams Matchup
}

// PeanutMister cures a player of their peanut allergy.
type PeanutMister struct {
	Envelope
	Game   Game
	Teams  Matchup
	Player Player
	Mod    SubEventRef
}

// TasteTheInfinite is a pitcher shelling a batter.
type TasteTheInfinite struct {
	Envelope
	Game    Game
	Teams   Matchup
	Pitcher Player
	Batter  Player
	Mod     SubEventRef
}

// ReturnFromElsewhere is a player coming back. Cleared is the optional
// child removing the Elsewhere mod.
type ReturnFromElsewhere struct {
	Envelope
	Game    Game
	Teams   Matchup
	Player  Player
	Cleared *SubEventRef
}

// Party is a player partying and gaining stats.
type Party struct {
	Envelope
	Game   Game
	TeamID uuid.UUID
	Player Player
	Boost  StatChange
}

// Homebody is a player reacting to playing at home or away.
type Homebody struct {
	Envelope
	Game   Game
	Teams  Matchup
	Player Player
	Happy  bool
}

// Superyummy is a player reacting to peanut weather.
type Superyummy struct {
	Envelope
	Game   Game
	Teams  Matchup
	Player Player
	Loves  bool
}

// Perk is a player perking up in coffee weather.
type Perk struct {
	Envelope
	Game   Game
	Teams  Matchup
	Player Player
}

func (StrikeZapped) Type() model.EventType        { return model.TypeStrikeZapped }
func (BirdsCircle) Type() model.EventType         { return model.TypeBirdsCircle }
func (BirdsUnshell) Type() model.EventType        { return model.TypeBirdsUnshell }
func (Blooddrain) Type() model.EventType          { return model.TypeBlooddrain }
func (Incineration) Type() model.EventType        { return model.TypeIncineration }
func (IncinerationBlocked) Type() model.EventType { return model.TypeIncinerationBlocked }
func (FloodingSwept) Type() model.EventType       { return model.TypeFloodingSwept }
func (SalmonSwim) Type() model.EventType          { return model.TypeSalmonSwim }
func (PolarityShift) Type() model.EventType       { return model.TypePolarityShift }
func (PeanutMister) Type() model.EventType        { return model.TypePeanutMister }
func (TasteTheInfinite) Type() model.EventType    { return model.TypeTasteTheInfinite }
func (ReturnFromElsewhere) Type() model.EventType { return model.TypeReturnFromElsewhere }
func (Party) Type() model.EventType               { return model.TypeParty }
func (Homebody) Type() model.EventType            { return model.TypeHomebody }
func (Superyummy) Type() model.EventType          { return model.TypeSuperyummy }
func (Perk) Type() model.EventType                { return model.TypePerk }
