package codec

import (
	"strconv"

	"github.com/okian/feedcodec/internal/domain/fed"
	"github.com/okian/feedcodec/internal/domain/grammar"
	"github.com/okian/feedcodec/internal/domain/model"
)

func registerGame(r *Registry) {
	r.Register(model.TypeLetsGo, decodeLetsGo)
	r.Register(model.TypePlayBall, decodePlayBall)
	r.Register(model.TypeHalfInning, decodeHalfInning)
	r.Register(model.TypePitcherChange, decodePitcherChange)
	r.Register(model.TypeBatterUp, decodeBatterUp)
	r.Register(model.TypeStrike, decodeStrike)
	r.Register(model.TypeBall, decodeBall)
	r.Register(model.TypeFoulBall, decodeFoulBall)
	r.Register(model.TypeInningEnd, decodeInningEnd)
	r.Register(model.TypeGameOver, decodeGameOver)

	encoder(r, encodeLetsGo)
	encoder(r, encodePlayBall)
	encoder(r, encodeHalfInning)
	encoder(r, encodePitcherChange)
	encoder(r, encodeBatterUp)
	encoder(r, encodeStrike)
	encoder(r, encodeBall)
	encoder(r, encodeFoulBall)
	encoder(r, encodeInningEnd)
	encoder(r, encodeGameOver)
}

// readGame reads the game tag and play indexes of a root game event.
func readGame(c *Cursor) (fed.Game, error) {
	id, err := c.Games.Next()
	if err != nil {
		return fed.Game{}, err
	}
	play, err := c.Play()
	if err != nil {
		return fed.Game{}, err
	}
	sub, err := c.SubPlay()
	if err != nil {
		return fed.Game{}, err
	}
	if sub != rootSubPlay {
		return fed.Game{}, &UnexpectedMetadataValue{Type: c.Type(), Key: model.MetadataKeySubPlay, Expected: rootSubPlay, Actual: sub}
	}
	return fed.Game{ID: id, Play: play}, nil
}

func readMatchup(c *Cursor) (fed.Matchup, error) {
	away, err := c.Teams.Next()
	if err != nil {
		return fed.Matchup{}, err
	}
	home, err := c.Teams.Next()
	if err != nil {
		return fed.Matchup{}, err
	}
	return fed.Matchup{Away: away, Home: home}, nil
}

// readGameMatchup reads the header shared by most game events.
func readGameMatchup(c *Cursor) (fed.Game, fed.Matchup, error) {
	g, err := readGame(c)
	if err != nil {
		return g, fed.Matchup{}, err
	}
	m, err := readMatchup(c)
	return g, m, err
}

func readPlayer(c *Cursor, name string) (fed.Player, error) {
	id, err := c.Players.Next()
	if err != nil {
		return fed.Player{}, err
	}
	return fed.Player{ID: id, Name: name}, nil
}

func readTeam(c *Cursor, name string) (fed.Team, error) {
	id, err := c.Teams.Next()
	if err != nil {
		return fed.Team{}, err
	}
	return fed.Team{ID: id, Name: name}, nil
}

func decodeLetsGo(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	if err := c.ExpectText(grammar.TextLetsGo); err != nil {
		return nil, err
	}
	n, err := c.MetadataInt64(keyWeather)
	if err != nil {
		return nil, err
	}
	w := fed.Weather(n)
	if !w.Valid() {
		return nil, &UnknownEnumValue{Type: c.Type(), Enum: "Weather", Value: strconv.FormatInt(n, 10)}
	}
	return fed.LetsGo{Envelope: c.Envelope(), Game: g, Teams: m, Weather: w}, nil
}

func encodeLetsGo(ev fed.LetsGo) model.RawEvent {
	return newBuilder(ev, ev.Game).
		say(grammar.TextLetsGo).
		matchup(ev.Teams).
		meta(keyWeather, int64(ev.Weather)).
		raw()
}

func decodePlayBall(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	if err := c.ExpectText(grammar.TextPlayBall); err != nil {
		return nil, err
	}
	return fed.PlayBall{Envelope: c.Envelope(), Game: g, Teams: m}, nil
}

func encodePlayBall(ev fed.PlayBall) model.RawEvent {
	return newBuilder(ev, ev.Game).say(grammar.TextPlayBall).matchup(ev.Teams).raw()
}

func decodeHalfInning(c *Cursor) (fed.Event, error) {
	g, err := readGame(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.HalfInning())
	if err != nil {
		return nil, err
	}
	team, err := readTeam(c, t.Team)
	if err != nil {
		return nil, err
	}
	return fed.HalfInning{Envelope: c.Envelope(), Game: g, Top: t.Top, Inning: t.Inning, Batting: team}, nil
}

func encodeHalfInning(ev fed.HalfInning) model.RawEvent {
	text := grammar.HalfInningText{Top: ev.Top, Inning: ev.Inning, Team: ev.Batting.Name}
	return newBuilder(ev, ev.Game).say(text.Format()).team(ev.Batting.ID).raw()
}

func decodePitcherChange(c *Cursor) (fed.Event, error) {
	g, err := readGame(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.PitcherChange())
	if err != nil {
		return nil, err
	}
	p, err := readPlayer(c, t.Pitcher)
	if err != nil {
		return nil, err
	}
	team, err := readTeam(c, t.Team)
	if err != nil {
		return nil, err
	}
	return fed.PitcherChange{Envelope: c.Envelope(), Game: g, Pitcher: p, Team: team}, nil
}

func encodePitcherChange(ev fed.PitcherChange) model.RawEvent {
	text := grammar.PitcherChangeText{Pitcher: ev.Pitcher.Name, Team: ev.Team.Name}
	return newBuilder(ev, ev.Game).say(text.Format()).player(ev.Pitcher.ID).team(ev.Team.ID).raw()
}

func decodeBatterUp(c *Cursor) (fed.Event, error) {
	g, err := readGame(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.BatterUp())
	if err != nil {
		return nil, err
	}
	ev := fed.BatterUp{Envelope: c.Envelope(), Game: g, Item: t.Item}
	if ev.Batter, err = readPlayer(c, t.Batter); err != nil {
		return nil, err
	}
	if t.Inhabiting != "" {
		h, err := readPlayer(c, t.Inhabiting)
		if err != nil {
			return nil, err
		}
		ev.Inhabiting = &h
	}
	if ev.Team, err = readTeam(c, t.Team); err != nil {
		return nil, err
	}
	return ev, nil
}

func encodeBatterUp(ev fed.BatterUp) model.RawEvent {
	text := grammar.BatterUpText{Batter: ev.Batter.Name, Team: ev.Team.Name, Item: ev.Item}
	b := newBuilder(ev, ev.Game).player(ev.Batter.ID)
	if ev.Inhabiting != nil {
		text.Inhabiting = ev.Inhabiting.Name
		b.player(ev.Inhabiting.ID)
	}
	return b.say(text.Format()).team(ev.Team.ID).raw()
}

func decodeStrike(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.Strike())
	if err != nil {
		return nil, err
	}
	return fed.Strike{
		Envelope: c.Envelope(), Game: g, Teams: m,
		Kind: t.Kind, Balls: t.Count.Balls, Strikes: t.Count.Strikes,
	}, nil
}

func encodeStrike(ev fed.Strike) model.RawEvent {
	text := grammar.StrikeText{Kind: ev.Kind, Count: grammar.Count{Balls: ev.Balls, Strikes: ev.Strikes}}
	return newBuilder(ev, ev.Game).say(text.Format()).matchup(ev.Teams).raw()
}

func decodeBall(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.Ball())
	if err != nil {
		return nil, err
	}
	return fed.Ball{Envelope: c.Envelope(), Game: g, Teams: m, Balls: t.Count.Balls, Strikes: t.Count.Strikes}, nil
}

func encodeBall(ev fed.Ball) model.RawEvent {
	text := grammar.BallText{Count: grammar.Count{Balls: ev.Balls, Strikes: ev.Strikes}}
	return newBuilder(ev, ev.Game).say(text.Format()).matchup(ev.Teams).raw()
}

func decodeFoulBall(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.FoulBall())
	if err != nil {
		return nil, err
	}
	return fed.FoulBall{
		Envelope: c.Envelope(), Game: g, Teams: m,
		Count: t.Fouls, Balls: t.Count.Balls, Strikes: t.Count.Strikes,
	}, nil
}

func encodeFoulBall(ev fed.FoulBall) model.RawEvent {
	text := grammar.FoulBallText{Fouls: ev.Count, Count: grammar.Count{Balls: ev.Balls, Strikes: ev.Strikes}}
	return newBuilder(ev, ev.Game).say(text.Format()).matchup(ev.Teams).raw()
}

func decodeInningEnd(c *Cursor) (fed.Event, error) {
	g, m, err := readGameMatchup(c)
	if err != nil {
		return nil, err
	}
	t, err := Next(c, grammar.InningEnd())
	if err != nil {
		return nil, err
	}
	return fed.InningEnd{Envelope: c.Envelope(), Game: g, Teams: m, Inning: t.Inning}, nil
}

func encodeInningEnd(ev fed.InningEnd) model.RawEvent {
	return newBuilder(ev, ev.Game).say(grammar.InningEndText{Inning: ev.Inning}.Format()).matchup(ev.Teams).raw()
}

// decodeGameOver reads team tags as [home, away, home, away].
func decodeGameOver(c *Cursor) (fed.Event, error) {
	g, err := readGame(c)
	if err != nil {
		return nil, err
	}
	if err := c.ExpectText(grammar.TextGameOver); err != nil {
		return nil, err
	}
	home, err := c.Teams.Next()
	if err != nil {
		return nil, err
	}
	away, err := c.Teams.Next()
	if err != nil {
		return nil, err
	}
	if err := c.Teams.NextEqual(home); err != nil {
		return nil, err
	}
	if err := c.Teams.NextEqual(away); err != nil {
		return nil, err
	}
	return fed.GameOver{Envelope: c.Envelope(), Game: g, Teams: fed.Matchup{Away: away, Home: home}}, nil
}

func encodeGameOver(ev fed.GameOver) model.RawEvent {
	return newBuilder(ev, ev.Game).
		say(grammar.TextGameOver).
		team(ev.Teams.Home, ev.Teams.Away, ev.Teams.Home, ev.Teams.Away).
		raw()
}
