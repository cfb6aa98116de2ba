package fed

import "github.com/okian/feedcodec/internal/domain/model"

// StolenBase is a successful steal. A Blaserunning steal also scores the
// runner, who may then spend a Free Refill.
type StolenBase struct {
	Envelope
	Game         Game
	Teams        Matchup
	Runner       Player
	Base         Base
	Blaserunning bool
	FreeRefill   *SubEventRef
}

// CaughtStealing is a failed steal.
type CaughtStealing struct {
	Envelope
	Game   Game
	Teams  Matchup
	Runner Player
	Base   Base
}

// EnterSecretBase is a runner hiding in the Secret Base.
type EnterSecretBase struct {
	Envelope
	Game   Game
	Teams  Matchup
	Runner Player
}

// ExitSecretBase is a runner leaving the Secret Base.
type ExitSecretBase struct {
	Envelope
	Game   Game
	Teams  Matchup
	Runner Player
	Base   Base
}

func (StolenBase) Type() model.EventType      { return model.TypeStolenBase }
func (CaughtStealing) Type() model.EventType  { return model.TypeStolenBase }
func (EnterSecretBase) Type() model.EventType { return model.TypeEnterSecretBase }
func (ExitSecretBase) Type() model.EventType  { return model.TypeExitSecretBase }
