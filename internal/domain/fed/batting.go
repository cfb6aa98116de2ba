package fed

import "github.com/okian/feedcodec/internal/domain/model"

// PlayEnd groups the optional clauses that can trail a batting outcome.
type PlayEnd struct {
	Scores            []ScoringPlayer
	Spicy             *SpicyChange
	StoppedInhabiting *StoppedInhabiting
}

// Walk is a batter drawing a walk, optionally advanced by Base Instincts.
type Walk struct {
	Envelope
	Game          Game
	Teams         Matchup
	Batter        Player
	BaseInstincts *Base
	Scores        []ScoringPlayer
}

// MindTrickStrikeout is a walk turned into a strikeout by the pitcher.
type MindTrickStrikeout struct {
	Envelope
	Game    Game
	Teams   Matchup
	Batter  Player
	Pitcher Player
	Kind    StrikeoutKind
}

// CharmWalk is a batter charming the pitcher into a walk.
type CharmWalk struct {
	Envelope
	Game    Game
	Teams   Matchup
	Batter  Player
	Pitcher Player
}

// CharmInduced is the pitcher side of a charmed strikeout.
type CharmInduced struct {
	Pitcher Player
	Swings  int64
}

// Strikeout ends an at bat. Charm is set exactly when Kind is StrikeoutCharmed.
type Strikeout struct {
	Envelope
	Game              Game
	Teams             Matchup
	Batter            Player
	Kind              StrikeoutKind
	Charm             *CharmInduced
	Spicy             *SpicyChange
	StoppedInhabiting *StoppedInhabiting
}

// FlyOut is a caught fly ball. Scores are runners tagging up.
type FlyOut struct {
	Envelope
	Game    Game
	Teams   Matchup
	Batter  Player
	Fielder Player
	PlayEnd
	Item *ItemDamage
}

// GroundOut is a fielded ground ball.
type GroundOut struct {
	Envelope
	Game    Game
	Teams   Matchup
	Batter  Player
	Fielder Player
	PlayEnd
	Item *ItemDamage
}

// FieldersChoice is a runner thrown out while the batter reaches.
type FieldersChoice struct {
	Envelope
	Game   Game
	Teams  Matchup
	Runner Player
	Base   Base
	Batter Player
	PlayEnd
	Item *ItemDamage
}

// DoublePlay is a ground ball turned into two outs.
type DoublePlay struct {
	Envelope
	Game   Game
	Teams  Matchup
	Batter Player
	PlayEnd
	Item *ItemDamage
}

// HomeRun is a home run driving in Runs runs, the batter included.
type HomeRun struct {
	Envelope
	Game              Game
	Teams             Matchup
	Batter            Player
	Runs              int64
	Spicy             *SpicyChange
	StoppedInhabiting *StoppedInhabiting
}

// Hit is a single through quadruple.
type Hit struct {
	Envelope
	Game     Game
	Teams    Matchup
	Batter   Player
	NumBases int64
	PlayEnd
	Item *ItemDamage
}

// HitByPitch is a batter hit by a pitch and gaining a mod.
type HitByPitch struct {
	Envelope
	Game    Game
	Teams   Matchup
	Pitcher Player
	Batter  Player
	Effect  HitByPitchEffect
	Mod     SubEventRef
}

// BatterSkipped is a batter unable to bat.
type BatterSkipped struct {
	Envelope
	Game   Game
	Teams  Matchup
	Batter Player
	Reason SkipReason
}

// MildPitch is a wild pitch that may walk in runs.
type MildPitch struct {
	Envelope
	Game    Game
	Teams   Matchup
	Pitcher Player
	Balls   int64
	Strikes int64
	Scores  []ScoringPlayer
}

func (Walk) Type() model.EventType               { return model.TypeWalk }
func (MindTrickStrikeout) Type() model.EventType { return model.TypeWalk }
func (CharmWalk) Type() model.EventType          { return model.TypeWalk }
func (Strikeout) Type() model.EventType          { return model.TypeStrikeout }
func (FlyOut) Type() model.EventType             { return model.TypeFlyOut }
func (GroundOut) Type() model.EventType          { return model.TypeGroundOut }
func (FieldersChoice) Type() model.EventType     { return model.TypeGroundOut }
func (DoublePlay) Type() model.EventType         { return model.TypeGroundOut }
func (HomeRun) Type() model.EventType            { return model.TypeHomeRun }
func (Hit) Type() model.EventType                { return model.TypeHit }
func (HitByPitch) Type() model.EventType         { return model.TypeHitByPitch }
func (BatterSkipped) Type() model.EventType      { return model.TypeBatterSkipped }
func (MildPitch) Type() model.EventType          { return model.TypeMildPitch }
