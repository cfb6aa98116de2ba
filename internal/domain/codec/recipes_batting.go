package codec

import (
	"github.com/okian/feedcodec/internal/domain/fed"
	"github.com/okian/feedcodec/internal/domain/grammar"
	"github.com/okian/feedcodec/internal/domain/model"
)

func registerBatting(r *Registry) {
	r.Register(model.TypeWalk, decodeWalk)
	r.Register(model.TypeStrikeout, decodeStrikeout)
	r.Register(model.TypeFlyOut, decodeFlyOut)
	r.Register(model.TypeGroundOut, decodeGroundOut)
	r.Register(model.TypeHomeRun, decodeHomeRun)
	r.Register(model.TypeHit, decodeHit)
	r.Register(model.TypeHitByPitch, decodeHitByPitch)
	r.Register(model.TypeBatterSkipped, decodeBatterSkipped)
	r.Register(model.TypeMildPitch, decodeMildPitch)

	encoder(r, encodeWalk)
	encoder(r, encodeMindTrickStrikeout)
	encoder(r, encodeCharmWalk)
	encoder(r, encodeStrikeout)
	encoder(r, encodeFlyOut)
	encoder(r, encodeGroundOut)
	encoder(r, encodeFieldersChoice)
	encoder(r, encodeDoublePlay)
	encoder(r, encodeHomeRun)
	encoder(r, encodeHit)
	encoder(r, encodeHitByPitch)
	encoder(r, encodeBatterSkipped)
	encoder(r, encodeMildPitch)
}

func decodeWalk(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.Walk())
	if err != nil {
		return nil, err
	}
	b, err := readPlayer(c, t.Batter)
	if err != nil {
		return nil, err
	}
	switch t.Kind {
	case grammar.WalkMindTrick, grammar.WalkCharm:
		p, err := readPlayer(c, t.Pitcher)
		if err != nil {
			return nil, err
		}
		if t.Kind == grammar.WalkCharm {
			return fed.CharmWalk{Envelope: c.Envelope(), Game: g, Teams: m, Batter: b, Pitcher: p}, nil
		}
		return fed.MindTrickStrikeout{Envelope: c.Envelope(), Game: g, Teams: m, Batter: b, Pitcher: p, Kind: t.Strikeout}, nil
	}
	scores, err := readScores(c, g, grammar.Scores)
	if err != nil {
		return nil, err
	}
	return fed.Walk{
		Envelope: c.Envelope(), Game: g, Teams: m,
		Batter: b, BaseInstincts: t.BaseInstincts, Scores: scores,
	}, nil
}

func encodeWalk(ev fed.Walk) model.RawEvent {
	text := grammar.WalkText{Kind: grammar.WalkPlain, Batter: ev.Batter.Name, BaseInstincts: ev.BaseInstincts}
	return newBuilder(ev, ev.Game).
		say(text.Format()).
		player(ev.Batter.ID).
		matchup(ev.Teams).
		queue(scoreSuffixes(grammar.Scores, ev.Scores)...).
		raw()
}

func encodeMindTrickStrikeout(ev fed.MindTrickStrikeout) model.RawEvent {
	text := grammar.WalkText{Kind: grammar.WalkMindTrick, Batter: ev.Batter.Name, Pitcher: ev.Pitcher.Name, Strikeout: ev.Kind}
	return newBuilder(ev, ev.Game).say(text.Format()).player(ev.Batter.ID, ev.Pitcher.ID).matchup(ev.Teams).raw()
}

func encodeCharmWalk(ev fed.CharmWalk) model.RawEvent {
	text := grammar.WalkText{Kind: grammar.WalkCharm, Batter: ev.Batter.Name, Pitcher: ev.Pitcher.Name}
	return newBuilder(ev, ev.Game).say(text.Format()).player(ev.Batter.ID, ev.Pitcher.ID).matchup(ev.Teams).raw()
}

func decodeStrikeout(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.Strikeout())
	if err != nil {
		return nil, err
	}
	ev := fed.Strikeout{Envelope: c.Envelope(), Game: g, Teams: m, Kind: t.Kind}
	if ev.Batter, err = readPlayer(c, t.Batter); err != nil {
		return nil, err
	}
	if t.Kind == fed.StrikeoutCharmed {
		p, err := readPlayer(c, t.Pitcher)
		if err != nil {
			return nil, err
		}
		ev.Charm = &fed.CharmInduced{Pitcher: p, Swings: t.Swings}
	}
	if ev.Spicy, err = readSpicy(c, g, ev.Batter); err != nil {
		return nil, err
	}
	if ev.StoppedInhabiting, err = readStoppedInhabiting(c, g); err != nil {
		return nil, err
	}
	return ev, nil
}

func encodeStrikeout(ev fed.Strikeout) model.RawEvent {
	text := grammar.StrikeoutText{Kind: ev.Kind, Batter: ev.Batter.Name}
	b := newBuilder(ev, ev.Game).player(ev.Batter.ID)
	if ev.Charm != nil {
		text.Pitcher = ev.Charm.Pitcher.Name
		text.Swings = ev.Charm.Swings
		b.player(ev.Charm.Pitcher.ID)
	}
	return b.say(text.Format()).
		matchup(ev.Teams).
		queue(spicySuffix(ev.Batter, ev.Spicy)...).
		queue(inhabitingSuffix(ev.StoppedInhabiting)...).
		raw()
}

func decodeFlyOut(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.FlyOut())
	if err != nil {
		return nil, err
	}
	ev := fed.FlyOut{Envelope: c.Envelope(), Game: g, Teams: m}
	if ev.Batter, err = readPlayer(c, t.Batter); err != nil {
		return nil, err
	}
	if ev.Fielder, err = readPlayer(c, t.Fielder); err != nil {
		return nil, err
	}
	if ev.PlayEnd, err = readPlayEnd(c, g, ev.Batter, grammar.TagsUpScores); err != nil {
		return nil, err
	}
	if ev.Item, err = readItemDamage(c, g); err != nil {
		return nil, err
	}
	return ev, nil
}

func encodeFlyOut(ev fed.FlyOut) model.RawEvent {
	text := grammar.FlyOutText{Batter: ev.Batter.Name, Fielder: ev.Fielder.Name}
	return newBuilder(ev, ev.Game).
		say(text.Format()).
		player(ev.Batter.ID, ev.Fielder.ID).
		matchup(ev.Teams).
		playEnd(ev.Batter, grammar.TagsUpScores, ev.PlayEnd).
		queue(itemSuffix(ev.Item)...).
		raw()
}

func decodeGroundOut(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.GroundOut())
	if err != nil {
		return nil, err
	}
	var runner, batter, fielder fed.Player
	if t.Kind == grammar.GroundOutFieldersChoice {
		if runner, err = readPlayer(c, t.Runner); err != nil {
			return nil, err
		}
	}
	if batter, err = readPlayer(c, t.Batter); err != nil {
		return nil, err
	}
	if t.Kind == grammar.GroundOutPlain {
		if fielder, err = readPlayer(c, t.Fielder); err != nil {
			return nil, err
		}
	}
	pe, err := readPlayEnd(c, g, batter, grammar.Scores)
	if err != nil {
		return nil, err
	}
	item, err := readItemDamage(c, g)
	if err != nil {
		return nil, err
	}

	switch t.Kind {
	case grammar.GroundOutFieldersChoice:
		return fed.FieldersChoice{
			Envelope: c.Envelope(), Game: g, Teams: m,
			Runner: runner, Base: t.Base, Batter: batter, PlayEnd: pe, Item: item,
		}, nil
	case grammar.GroundOutDoublePlay:
		return fed.DoublePlay{Envelope: c.Envelope(), Game: g, Teams: m, Batter: batter, PlayEnd: pe, Item: item}, nil
	}
	return fed.GroundOut{
		Envelope: c.Envelope(), Game: g, Teams: m,
		Batter: batter, Fielder: fielder, PlayEnd: pe, Item: item,
	}, nil
}

func encodeGroundOut(ev fed.GroundOut) model.RawEvent {
	text := grammar.GroundOutText{Kind: grammar.GroundOutPlain, Batter: ev.Batter.Name, Fielder: ev.Fielder.Name}
	return newBuilder(ev, ev.Game).
		say(text.Format()).
		player(ev.Batter.ID, ev.Fielder.ID).
		matchup(ev.Teams).
		playEnd(ev.Batter, grammar.Scores, ev.PlayEnd).
		queue(itemSuffix(ev.Item)...).
		raw()
}

func encodeFieldersChoice(ev fed.FieldersChoice) model.RawEvent {
	text := grammar.GroundOutText{Kind: grammar.GroundOutFieldersChoice, Batter: ev.Batter.Name, Runner: ev.Runner.Name, Base: ev.Base}
	return newBuilder(ev, ev.Game).
		say(text.Format()).
		player(ev.Runner.ID, ev.Batter.ID).
		matchup(ev.Teams).
		playEnd(ev.Batter, grammar.Scores, ev.PlayEnd).
		queue(itemSuffix(ev.Item)...).
		raw()
}

func encodeDoublePlay(ev fed.DoublePlay) model.RawEvent {
	text := grammar.GroundOutText{Kind: grammar.GroundOutDoublePlay, Batter: ev.Batter.Name}
	return newBuilder(ev, ev.Game).
		say(text.Format()).
		player(ev.Batter.ID).
		matchup(ev.Teams).
		playEnd(ev.Batter, grammar.Scores, ev.PlayEnd).
		queue(itemSuffix(ev.Item)...).
		raw()
}

func decodeHomeRun(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.HomeRun())
	if err != nil {
		return nil, err
	}
	ev := fed.HomeRun{Envelope: c.Envelope(), Game: g, Teams: m, Runs: t.Runs}
	if ev.Batter, err = readPlayer(c, t.Batter); err != nil {
		return nil, err
	}
	if ev.Spicy, err = readSpicy(c, g, ev.Batter); err != nil {
		return nil, err
	}
	if ev.StoppedInhabiting, err = readStoppedInhabiting(c, g); err != nil {
		return nil, err
	}
	return ev, nil
}

func encodeHomeRun(ev fed.HomeRun) model.RawEvent {
	text := grammar.HomeRunText{Batter: ev.Batter.Name, Runs: ev.Runs}
	return newBuilder(ev, ev.Game).
		say(text.Format()).
		player(ev.Batter.ID).
		matchup(ev.Teams).
		queue(spicySuffix(ev.Batter, ev.Spicy)...).
		queue(inhabitingSuffix(ev.StoppedInhabiting)...).
		raw()
}

func decodeHit(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.Hit())
	if err != nil {
		return nil, err
	}
	ev := fed.Hit{Envelope: c.Envelope(), Game: g, Teams: m, NumBases: t.NumBases}
	if ev.Batter, err = readPlayer(c, t.Batter); err != nil {
		return nil, err
	}
	if ev.PlayEnd, err = readPlayEnd(c, g, ev.Batter, grammar.Scores); err != nil {
		return nil, err
	}
	if ev.Item, err = readItemDamage(c, g); err != nil {
		return nil, err
	}
	return ev, nil
}

func encodeHit(ev fed.Hit) model.RawEvent {
	text := grammar.HitText{Batter: ev.Batter.Name, NumBases: ev.NumBases}
	return newBuilder(ev, ev.Game).
		say(text.Format()).
		player(ev.Batter.ID).
		matchup(ev.Teams).
		playEnd(ev.Batter, grammar.Scores, ev.PlayEnd).
		queue(itemSuffix(ev.Item)...).
		raw()
}

var effectMods = map[fed.HitByPitchEffect]string{
	fed.HitByPitchUnstable:   ModUnstable,
	fed.HitByPitchFlickering: ModFlickering,
	fed.HitByPitchRepeating:  ModRepeating,
}

func decodeHitByPitch(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.HitByPitch())
	if err != nil {
		return nil, err
	}
	ev := fed.HitByPitch{Envelope: c.Envelope(), Game: g, Teams: m, Effect: t.Effect}
	if ev.Pitcher, err = readPlayer(c, t.Pitcher); err != nil {
		return nil, err
	}
	if ev.Batter, err = readPlayer(c, t.Batter); err != nil {
		return nil, err
	}
	if ev.Mod, err = readModAdded(c, g, t.EffectLine(), ev.Batter.ID, effectMods[t.Effect], fed.ModGame); err != nil {
		return nil, err
	}
	return ev, nil
}

func encodeHitByPitch(ev fed.HitByPitch) model.RawEvent {
	text := grammar.HitByPitchText{Pitcher: ev.Pitcher.Name, Batter: ev.Batter.Name, Effect: ev.Effect}
	return newBuilder(ev, ev.Game).
		say(text.Format()).
		player(ev.Pitcher.ID, ev.Batter.ID).
		matchup(ev.Teams).
		child(modAdded(ev.Mod, text.EffectLine(), ev.Batter.ID, effectMods[ev.Effect], fed.ModGame)).
		raw()
}

func decodeBatterSkipped(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.BatterSkipped())
	if err != nil {
		return nil, err
	}
	b, err := readPlayer(c, t.Batter)
	if err != nil {
		return nil, err
	}
	return fed.BatterSkipped{Envelope: c.Envelope(), Game: g, Teams: m, Batter: b, Reason: t.Reason}, nil
}

func encodeBatterSkipped(ev fed.BatterSkipped) model.RawEvent {
	text := grammar.BatterSkippedText{Batter: ev.Batter.Name, Reason: ev.Reason}
	return newBuilder(ev, ev.Game).say(text.Format()).player(ev.Batter.ID).matchup(ev.Teams).raw()
}

func decodeMildPitch(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.MildPitch())
	if err != nil {
		return nil, err
	}
	p, err := readPlayer(c, t.Pitcher)
	if err != nil {
		return nil, err
	}
	scores, err := readScores(c, g, grammar.Scores)
	if err != nil {
		return nil, err
	}
	return fed.MildPitch{
		Envelope: c.Envelope(), Game: g, Teams: m,
		Pitcher: p, Balls: t.Count.Balls, Strikes: t.Count.Strikes, Scores: scores,
	}, nil
}

func encodeMildPitch(ev fed.MildPitch) model.RawEvent {
	text := grammar.MildPitchText{Pitcher: ev.Pitcher.Name, Count: grammar.Count{Balls: ev.Balls, Strikes: ev.Strikes}}
	return newBuilder(ev, ev.Game).
		say(text.Format()).
		player(ev.Pitcher.ID).
		matchup(ev.Teams).
		queue(scoreSuffixes(grammar.Scores, ev.Scores)...).
		raw()
}
