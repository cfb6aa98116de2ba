package codec

import (
	"github.com/okian/feedcodec/internal/domain/fed"
	"github.com/okian/feedcodec/internal/domain/grammar"
	"github.com/okian/feedcodec/internal/domain/model"
)

func registerBaserunning(r *Registry) {
	r.Register(model.TypeStolenBase, decodeStolenBase)
	r.Register(model.TypeEnterSecretBase, decodeEnterSecretBase)
	r.Register(model.TypeExitSecretBase, decodeExitSecretBase)

	encoder(r, encodeStolenBase)
	encoder(r, encodeCaughtStealing)
	encoder(r, encodeEnterSecretBase)
	encoder(r, encodeExitSecretBase)
}

// decodeStolenBase reads a Blaserunning steal's runner tag twice; the
// repeated tag is part of the wire format.
func decodeStolenBase(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.Steal())
	if err != nil {
		return nil, err
	}
	runner, err := readPlayer(c, t.Runner)
	if err != nil {
		return nil, err
	}
	if t.Caught {
		return fed.CaughtStealing{Envelope: c.Envelope(), Game: g, Teams: m, Runner: runner, Base: t.Base}, nil
	}
	ev := fed.StolenBase{Envelope: c.Envelope(), Game: g, Teams: m, Runner: runner, Base: t.Base, Blaserunning: t.Blaserunning}
	if t.Blaserunning {
		if err := c.Players.NextEqual(runner.ID); err != nil {
			return nil, err
		}
		if ev.FreeRefill, err = readRefill(c, g, runner); err != nil {
			return nil, err
		}
	}
	return ev, nil
}

func encodeStolenBase(ev fed.StolenBase) model.RawEvent {
	text := grammar.StealText{Runner: ev.Runner.Name, Base: ev.Base, Blaserunning: ev.Blaserunning}
	b := newBuilder(ev, ev.Game).say(text.Format()).player(ev.Runner.ID)
	if ev.Blaserunning {
		b.player(ev.Runner.ID)
	}
	if ev.FreeRefill != nil {
		b.queue(refillSuffix(ev.Runner, *ev.FreeRefill))
	}
	return b.matchup(ev.Teams).raw()
}

func encodeCaughtStealing(ev fed.CaughtStealing) model.RawEvent {
	text := grammar.StealText{Runner: ev.Runner.Name, Base: ev.Base, Caught: true}
	return newBuilder(ev, ev.Game).say(text.Format()).player(ev.Runner.ID).matchup(ev.Teams).raw()
}

func decodeEnterSecretBase(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.EnterSecretBase())
	if err != nil {
		return nil, err
	}
	r, err := readPlayer(c, t.Runner)
	if err != nil {
		return nil, err
	}
	return fed.EnterSecretBase{Envelope: c.Envelope(), Game: g, Teams: m, Runner: r}, nil
}

func encodeEnterSecretBase(ev fed.EnterSecretBase) model.RawEvent {
	text := grammar.SecretBaseText{Runner: ev.Runner.Name}
	return newBuilder(ev, ev.Game).say(text.Format()).player(ev.Runner.ID).matchup(ev.Teams).raw()
}

func decodeExitSecretBase(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.ExitSecretBase())
	if err != nil {
		return nil, err
	}
	r, err := readPlayer(c, t.Runner)
	if err != nil {
		return nil, err
	}
	return fed.ExitSecretBase{Envelope: c.Envelope(), Game: g, Teams: m, Runner: r, Base: *t.Exit}, nil
}

func encodeExitSecretBase(ev fed.ExitSecretBase) model.RawEvent {
	base := ev.Base
	text := grammar.SecretBaseText{Runner: ev.Runner.Name, Exit: &base}
	return newBuilder(ev, ev.Game).say(text.Format()).player(ev.Runner.ID).matchup(ev.Teams).raw()
}
