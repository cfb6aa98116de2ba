package codec

import (
	"github.com/okian/feedcodec/internal/domain/fed"
	"github.com/okian/feedcodec/internal/domain/grammar"
	"github.com/okian/feedcodec/internal/domain/model"
)

func registerWeather(r *Registry) {
	r.Register(model.TypeStrikeZapped, decodeStrikeZapped)
	r.Register(model.TypeBirdsCircle, decodeBirdsCircle)
	r.Register(model.TypeBirdsUnshell, decodeBirdsUnshell)
	r.Register(model.TypeBlooddrain, decodeBlooddrain)
	r.Register(model.TypeIncineration, decodeIncineration)
	r.Register(model.TypeIncinerationBlocked, decodeIncinerationBlocked)
	r.Register(model.TypeFloodingSwept, decodeFloodingSwept)
	r.Register(model.TypeSalmonSwim, decodeSalmonSwim)
	r.Register(model.TypePolarityShift, decodePolarityShift)
	r.Register(model.TypePeanutMister, decodePeanutMister)
	r.Register(model.TypeTasteTheInfinite, decodeTasteTheInfinite)
	r.Register(model.TypeReturnFromElsewhere, decodeReturnFromElsewhere)
	r.Register(model.TypeParty, decodeParty)
	r.Register(model.TypeHomebody, decodeHomebody)
	r.Register(model.TypeSuperyummy, decodeSuperyummy)
	r.Register(model.TypePerk, decodePerk)

	encoder(r, encodeStrikeZapped)
	encoder(r, encodeBirdsCircle)
	encoder(r, encodeBirdsUnshell)
	encoder(r, encodeBlooddrain)
	encoder(r, encodeIncineration)
	encoder(r, encodeIncinerationBlocked)
	encoder(r, encodeFloodingSwept)
	encoder(r, encodeSalmonSwim)
	encoder(r, encodePolarityShift)
	encoder(r, encodePeanutMister)
	encoder(r, encodeTasteTheInfinite)
	encoder(r, encodeReturnFromElsewhere)
	encoder(r, encodeParty)
	encoder(r, encodeHomebody)
	encoder(r, encodeSuperyummy)
	encoder(r, encodePerk)
}

func decodeStrikeZapped(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	if err := c.ExpectText(grammar.TextStrikeZapped); err != nil {
		return nil, err
	}
	return fed.StrikeZapped{Envelope: c.Envelope(), Game: g, Teams: m}, nil
}

func encodeStrikeZapped(ev fed.StrikeZapped) model.RawEvent {
	return newBuilder(ev, ev.Game).say(grammar.TextStrikeZapped).matchup(ev.Teams).raw()
}

func decodeBirdsCircle(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	if err := c.ExpectText(grammar.TextBirdsCircle); err != nil {
		return nil, err
	}
	return fed.BirdsCircle{Envelope: c.Envelope(), Game: g, Teams: m}, nil
}

func encodeBirdsCircle(ev fed.BirdsCircle) model.RawEvent {
	return newBuilder(ev, ev.Game).say(grammar.TextBirdsCircle).matchup(ev.Teams).raw()
}

func decodePolarityShift(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	if err := c.ExpectText(grammar.TextPolarityShift); err != nil {
		return nil, err
	}
	return fed.PolarityShift{Envelope: c.Envelope(), Game: g, Teams: m}, nil
}

func encodePolarityShift(ev fed.PolarityShift) model.RawEvent {
	return newBuilder(ev, ev.Game).say(grammar.TextPolarityShift).matchup(ev.Teams).raw()
}

// decodeBirdsUnshell reads the Shelled removal child, which repeats the
// whole description.
func decodeBirdsUnshell(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.BirdsUnshell())
	if err != nil {
		return nil, err
	}
	p, err := readPlayer(c, t.Player)
	if err != nil {
		return nil, err
	}
	mod, err := readModRemoved(c, g, t.Format(), p.ID, ModShelled, fed.ModPermanent)
	if err != nil {
		return nil, err
	}
	return fed.BirdsUnshell{Envelope: c.Envelope(), Game: g, Teams: m, Player: p, Mod: mod}, nil
}

func encodeBirdsUnshell(ev fed.BirdsUnshell) model.RawEvent {
	text := grammar.BirdsUnshellText{Player: ev.Player.Name}.Format()
	return newBuilder(ev, ev.Game).
		say(text).
		player(ev.Player.ID).
		matchup(ev.Teams).
		child(modRemoved(ev.Mod, text, ev.Player.ID, ModShelled, fed.ModPermanent)).
		raw()
}

func decodeBlooddrain(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.Blooddrain())
	if err != nil {
		return nil, err
	}
	ev := fed.Blooddrain{Envelope: c.Envelope(), Game: g, Teams: m, Stat: t.Stat}
	if ev.Drainer, err = readPlayer(c, t.Drainer); err != nil {
		return nil, err
	}
	if ev.Target, err = readPlayer(c, t.Target); err != nil {
		return nil, err
	}
	return ev, nil
}

func encodeBlooddrain(ev fed.Blooddrain) model.RawEvent {
	text := grammar.BlooddrainText{Drainer: ev.Drainer.Name, Target: ev.Target.Name, Stat: ev.Stat}
	return newBuilder(ev, ev.Game).say(text.Format()).player(ev.Drainer.ID, ev.Target.ID).matchup(ev.Teams).raw()
}

func decodeIncineration(c *Cursor) (fed.Event, error) {
	g, err := readGame(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.Incineration())
	if err != nil {
		return nil, err
	}
	ev := fed.Incineration{Envelope: c.Envelope(), Game: g, Slot: t.Slot}
	if ev.Victim, err = readPlayer(c, t.Victim); err != nil {
		return nil, err
	}
	if ev.Replacement, err = readPlayer(c, t.Replacement); err != nil {
		return nil, err
	}
	if ev.Team, err = readTeam(c, t.Team); err != nil {
		return nil, err
	}
	return ev, nil
}

func encodeIncineration(ev fed.Incineration) model.RawEvent {
	text := grammar.IncinerationText{Team: ev.Team.Name, Slot: ev.Slot, Victim: ev.Victim.Name, Replacement: ev.Replacement.Name}
	return newBuilder(ev, ev.Game).
		say(text.Format()).
		player(ev.Victim.ID, ev.Replacement.ID).
		team(ev.Team.ID).
		raw()
}

func decodeIncinerationBlocked(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.IncinerationBlocked())
	if err != nil {
		return nil, err
	}
	p, err := readPlayer(c, t.Player)
	if err != nil {
		return nil, err
	}
	return fed.IncinerationBlocked{Envelope: c.Envelope(), Game: g, Teams: m, Player: p}, nil
}

func encodeIncinerationBlocked(ev fed.IncinerationBlocked) model.RawEvent {
	text := grammar.IncinerationBlockedText{Player: ev.Player.Name}
	return newBuilder(ev, ev.Game).say(text.Format()).player(ev.Player.ID).matchup(ev.Teams).raw()
}

// decodeFloodingSwept reads one tag and one Elsewhere child per swept runner.
func decodeFloodingSwept(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	if _, err := Next(c, grammar.Tag(grammar.TextFloodingSwept)); err != nil {
		return nil, err
	}
	names, err := Next(c, grammar.FloodedRunners())
	if err != nil {
		return nil, err
	}
	ev := fed.FloodingSwept{Envelope: c.Envelope(), Game: g, Teams: m}
	for _, name := range names {
		p, err := readPlayer(c, name)
		if err != nil {
			return nil, err
		}
		mod, err := readModAdded(c, g, name+grammar.SuffixSwept, p.ID, ModElsewhere, fed.ModPermanent)
		if err != nil {
			return nil, err
		}
		ev.Runners = append(ev.Runners, fed.SweptRunner{Player: p, Mod: mod})
	}
	return ev, nil
}

func encodeFloodingSwept(ev fed.FloodingSwept) model.RawEvent {
	b := newBuilder(ev, ev.Game).say(grammar.TextFloodingSwept).matchup(ev.Teams)
	for _, r := range ev.Runners {
		line := r.Player.Name + grammar.SuffixSwept
		b.say("\n" + line).
			player(r.Player.ID).
			child(modAdded(r.Mod, line, r.Player.ID, ModElsewhere, fed.ModPermanent))
	}
	return b.raw()
}

func decodeSalmonSwim(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.Salmon())
	if err != nil {
		return nil, err
	}
	return fed.SalmonSwim{Envelope: c.Envelope(), Game: g, Teams: m, Inning: t.Inning}, nil
}

func encodeSalmonSwim(ev fed.SalmonSwim) model.RawEvent {
	return newBuilder(ev, ev.Game).say(grammar.SalmonText{Inning: ev.Inning}.Format()).matchup(ev.Teams).raw()
}

func decodePeanutMister(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.PeanutMister())
	if err != nil {
		return nil, err
	}
	p, err := readPlayer(c, t.Player)
	if err != nil {
		return nil, err
	}
	mod, err := readModRemoved(c, g, t.CureLine(), p.ID, ModSuperallergic, fed.ModPermanent)
	if err != nil {
		return nil, err
	}
	return fed.PeanutMister{Envelope: c.Envelope(), Game: g, Teams: m, Player: p, Mod: mod}, nil
}

func encodePeanutMister(ev fed.PeanutMister) model.RawEvent {
	text := grammar.PeanutMisterText{Player: ev.Player.Name}
	return newBuilder(ev, ev.Game).
		say(text.Format()).
		player(ev.Player.ID).
		matchup(ev.Teams).
		child(modRemoved(ev.Mod, text.CureLine(), ev.Player.ID, ModSuperallergic, fed.ModPermanent)).
		raw()
}

func decodeTasteTheInfinite(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.TasteTheInfinite())
	if err != nil {
		return nil, err
	}
	ev := fed.TasteTheInfinite{Envelope: c.Envelope(), Game: g, Teams: m}
	if ev.Pitcher, err = readPlayer(c, t.Pitcher); err != nil {
		return nil, err
	}
	if ev.Batter, err = readPlayer(c, t.Batter); err != nil {
		return nil, err
	}
	if ev.Mod, err = readModAdded(c, g, t.ShelledLine(), ev.Batter.ID, ModShelled, fed.ModPermanent); err != nil {
		return nil, err
	}
	return ev, nil
}

func encodeTasteTheInfinite(ev fed.TasteTheInfinite) model.RawEvent {
	text := grammar.TasteText{Pitcher: ev.Pitcher.Name, Batter: ev.Batter.Name}
	return newBuilder(ev, ev.Game).
		say(text.Format()).
		player(ev.Pitcher.ID, ev.Batter.ID).
		matchup(ev.Teams).
		child(modAdded(ev.Mod, text.ShelledLine(), ev.Batter.ID, ModShelled, fed.ModPermanent)).
		raw()
}

// decodeReturnFromElsewhere takes the next child only if it removes the
// returning player's Elsewhere mod.
func decodeReturnFromElsewhere(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.Subject(grammar.SuffixReturned))
	if err != nil {
		return nil, err
	}
	p, err := readPlayer(c, t.Player)
	if err != nil {
		return nil, err
	}
	ev := fed.ReturnFromElsewhere{Envelope: c.Envelope(), Game: g, Teams: m, Player: p}
	idx := c.ChildIndex()
	if ch, ok := c.NextChildIf(modIs(model.TypeRemovedMod, ModElsewhere, p.ID)); ok {
		ref, err := checkChild(ch, idx, g, t.Format(), p.ID, expectMod(ModElsewhere, fed.ModPermanent))
		if err != nil {
			return nil, err
		}
		ev.Cleared = &ref
	}
	return ev, nil
}

func encodeReturnFromElsewhere(ev fed.ReturnFromElsewhere) model.RawEvent {
	text := grammar.SubjectText{Player: ev.Player.Name, Suffix: grammar.SuffixReturned}.Format()
	b := newBuilder(ev, ev.Game).say(text).player(ev.Player.ID).matchup(ev.Teams)
	if ev.Cleared != nil {
		b.child(modRemoved(*ev.Cleared, text, ev.Player.ID, ModElsewhere, fed.ModPermanent))
	}
	return b.raw()
}

func decodeParty(c *Cursor) (fed.Event, error) {
	g, err := readGame(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.Subject(grammar.SuffixParty))
	if err != nil {
		return nil, err
	}
	p, err := readPlayer(c, t.Player)
	if err != nil {
		return nil, err
	}
	team, err := c.Teams.Next()
	if err != nil {
		return nil, err
	}
	boost, err := readStatIncrease(c, g, t.Format(), p.ID)
	if err != nil {
		return nil, err
	}
	return fed.Party{Envelope: c.Envelope(), Game: g, TeamID: team, Player: p, Boost: boost}, nil
}

func encodeParty(ev fed.Party) model.RawEvent {
	text := grammar.SubjectText{Player: ev.Player.Name, Suffix: grammar.SuffixParty}.Format()
	return newBuilder(ev, ev.Game).
		say(text).
		player(ev.Player.ID).
		team(ev.TeamID).
		child(statIncrease(text, ev.Player.ID, ev.Boost)).
		raw()
}

func decodeHomebody(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.Choice(grammar.SuffixHappyHome, grammar.SuffixHomesick))
	if err != nil {
		return nil, err
	}
	p, err := readPlayer(c, t.Player)
	if err != nil {
		return nil, err
	}
	return fed.Homebody{Envelope: c.Envelope(), Game: g, Teams: m, Player: p, Happy: t.Suffix == grammar.SuffixHappyHome}, nil
}

func encodeHomebody(ev fed.Homebody) model.RawEvent {
	suffix := grammar.SuffixHomesick
	if ev.Happy {
		suffix = grammar.SuffixHappyHome
	}
	text := grammar.SubjectText{Player: ev.Player.Name, Suffix: suffix}
	return newBuilder(ev, ev.Game).say(text.Format()).player(ev.Player.ID).matchup(ev.Teams).raw()
}

func decodeSuperyummy(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.Choice(grammar.SuffixLovesPeanuts, grammar.SuffixMissPeanuts))
	if err != nil {
		return nil, err
	}
	p, err := readPlayer(c, t.Player)
	if err != nil {
		return nil, err
	}
	return fed.Superyummy{Envelope: c.Envelope(), Game: g, Teams: m, Player: p, Loves: t.Suffix == grammar.SuffixLovesPeanuts}, nil
}

func encodeSuperyummy(ev fed.Superyummy) model.RawEvent {
	suffix := grammar.SuffixMissPeanuts
	if ev.Loves {
		suffix = grammar.SuffixLovesPeanuts
	}
	text := grammar.SubjectText{Player: ev.Player.Name, Suffix: suffix}
	return newBuilder(ev, ev.Game).say(text.Format()).player(ev.Player.ID).matchup(ev.Teams).raw()
}

func decodePerk(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.Subject(grammar.SuffixPerk))
	if err != nil {
		return nil, err
	}
	p, err := readPlayer(c, t.Player)
	if err != nil {
		return nil, err
	}
	return fed.Perk{Envelope: c.Envelope(), Game: g, Teams: m, Player: p}, nil
}

func encodePerk(ev fed.Perk) model.RawEvent {
	text := grammar.SubjectText{Player: ev.Player.Name, Suffix: grammar.SuffixPerk}
	return newBuilder(ev, ev.Game).say(text.Format()).player(ev.Player.ID).matchup(ev.Teams).raw()
}
