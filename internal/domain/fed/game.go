package fed

import "github.com/okian/feedcodec/internal/domain/model"

// LetsGo opens a game and announces its weather.
type LetsGo struct {
	Envelope
	Game    Game
	Teams   Matchup
	Weather Weather
}

// PlayBall starts the first inning.
type PlayBall struct {
	Envelope
	Game  Game
	Teams Matchup
}

// HalfInning starts the top or bottom of an inning.
type HalfInning struct {
	Envelope
	Game    Game
	Top     bool
	Inning  int64
	Batting Team
}

// PitcherChange announces the pitcher for a team.
type PitcherChange struct {
	Envelope
	Game    Game
	Pitcher Player
	Team    Team
}

// BatterUp announces the next batter. Inhabiting and Item are mutually
// exclusive.
type BatterUp struct {
	Envelope
	Game       Game
	Batter     Player
	Team       Team
	Inhabiting *Player
	Item       string
}

// Strike is a called or swinging strike.
type Strike struct {
	Envelope
	Game    Game
	Teams   Matchup
	Kind    StrikeKind
	Balls   int64
	Strikes int64
}

// Ball is a pitch outside the zone.
type Ball struct {
	Envelope
	Game    Game
	Teams   Matchup
	Balls   int64
	Strikes int64
}

// FoulBall is one or more consecutive foul balls.
type FoulBall struct {
	Envelope
	Game    Game
	Teams   Matchup
	Count   int64
	Balls   int64
	Strikes int64
}

// InningEnd marks an inning that became an outing.
type InningEnd struct {
	Envelope
	Game   Game
	Teams  Matchup
	Inning int64
}

// GameOver ends a game.
type GameOver struct {
	Envelope
	Game  Game
	Teams Matchup
}

func (LetsGo) Type() model.EventType        { return model.TypeLetsGo }
func (PlayBall) Type() model.EventType      { return model.TypePlayBall }
func (HalfInning) Type() model.EventType    { return model.TypeHalfInning }
func (PitcherChange) Type() model.EventType { return model.TypePitcherChange }
func (BatterUp) Type() model.EventType      { return model.TypeBatterUp }
func (Strike) Type() model.EventType        { return model.TypeStrike }
func (Ball) Type() model.EventType          { return model.TypeBall }
func (FoulBall) Type() model.EventType      { return model.TypeFoulBall }
func (InningEnd) Type() model.EventType     { return model.TypeInningEnd }
func (GameOver) Type() model.EventType      { return model.TypeGameOver }
