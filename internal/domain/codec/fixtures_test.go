package codec_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/okian/feedcodec/internal/domain/fed"
)

var (
	gameID  = uuid.MustParse("0b8e5a3b-d4b0-4a77-a2f6-3a5a5c7f2a7c")
	awayID  = uuid.MustParse("b63be8c2-576a-4d6e-8daf-814f8bcea96f")
	homeID  = uuid.MustParse("adc5b394-8f76-416d-9ce9-813706877b84")
	itemID  = uuid.MustParse("a0f82fea-5a61-4ec1-9c0e-6f1a9bd5e5aa")
	created = time.Date(2021, 3, 1, 16, 0, 4, 123000000, time.UTC)

	game    = fed.Game{ID: gameID, Play: 42}
	matchup = fed.Matchup{Away: awayID, Home: homeID}
)

func named(name string) fed.Player {
	return fed.Player{ID: uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)), Name: name}
}

var (
	jessica = named("Jessica Telephone")
	alex    = named("Alex Horne")
	elsa    = named("Elsa Low")
	sosa    = named("Sosa Hayes")
	jaylen  = named("Jaylen Hotdogfingers")
	wyatt   = named("Wyatt Mason")
	junior  = named("Bar Jr.")
)

func envelope(seq int) fed.Envelope {
	return fed.Envelope{
		ID:         uuid.NewSHA1(uuid.NameSpaceOID, []byte{byte(seq)}),
		Created:    created.Add(time.Duration(seq) * time.Second),
		Category:   0,
		Nuts:       int64(seq % 3),
		Sim:        "gamma10",
		Season:     11,
		Day:        3,
		Phase:      2,
		Tournament: -1,
	}
}

func sub(seq int) fed.SubEventRef {
	return fed.SubEventRef{
		ID:      uuid.NewSHA1(uuid.NameSpaceX500, []byte{byte(seq)}),
		Created: created.Add(time.Duration(seq) * time.Millisecond),
		Nuts:    int64(seq % 2),
	}
}

func subPtr(seq int) *fed.SubEventRef {
	r := sub(seq)
	return &r
}

func basePtr(b fed.Base) *fed.Base { return &b }

func scorer(p fed.Player, refill *fed.SubEventRef) fed.ScoringPlayer {
	return fed.ScoringPlayer{ID: p.ID, Name: p.Name, FreeRefill: refill}
}

// samples returns at least one value of every typed variant, with the
// optional clauses exercised across them.
func samples() []fed.Event {
	team := fed.Team{ID: homeID, Name: "Baltimore Crabs"}
	return []fed.Event{
		fed.LetsGo{Envelope: envelope(1), Game: game, Teams: matchup, Weather: fed.WeatherBlooddrain},
		fed.LetsGo{Envelope: envelope(2), Game: game, Teams: matchup, Weather: fed.WeatherNight},
		fed.PlayBall{Envelope: envelope(3), Game: game, Teams: matchup},
		fed.HalfInning{Envelope: envelope(4), Game: game, Top: true, Inning: 1, Batting: team},
		fed.HalfInning{Envelope: envelope(5), Game: game, Top: false, Inning: 9, Batting: team},
		fed.PitcherChange{Envelope: envelope(6), Game: game, Pitcher: jaylen, Team: team},
		fed.BatterUp{Envelope: envelope(7), Game: game, Batter: jessica, Team: team},
		fed.BatterUp{Envelope: envelope(8), Game: game, Batter: jessica, Team: team, Inhabiting: &wyatt},
		fed.BatterUp{Envelope: envelope(9), Game: game, Batter: junior, Team: team, Item: "Iffey Jr."},
		fed.Strike{Envelope: envelope(10), Game: game, Teams: matchup, Kind: fed.StrikeFlinching, Balls: 0, Strikes: 1},
		fed.Ball{Envelope: envelope(11), Game: game, Teams: matchup, Balls: 3, Strikes: 2},
		fed.FoulBall{Envelope: envelope(12), Game: game, Teams: matchup, Count: 1, Balls: 0, Strikes: 2},
		fed.FoulBall{Envelope: envelope(13), Game: game, Teams: matchup, Count: 4, Balls: 1, Strikes: 2},
		fed.InningEnd{Envelope: envelope(14), Game: game, Teams: matchup, Inning: 6},
		fed.GameOver{Envelope: envelope(15), Game: game, Teams: matchup},

		fed.Walk{Envelope: envelope(20), Game: game, Teams: matchup, Batter: alex},
		fed.Walk{
			Envelope: envelope(21), Game: game, Teams: matchup, Batter: alex, BaseInstincts: basePtr(fed.BaseThird),
			Scores: []fed.ScoringPlayer{scorer(elsa, subPtr(1)), scorer(sosa, nil)},
		},
		fed.MindTrickStrikeout{Envelope: envelope(22), Game: game, Teams: matchup, Batter: alex, Pitcher: jaylen, Kind: fed.StrikeoutLooking},
		fed.CharmWalk{Envelope: envelope(23), Game: game, Teams: matchup, Batter: alex, Pitcher: jaylen},
		fed.Strikeout{Envelope: envelope(24), Game: game, Teams: matchup, Batter: alex, Kind: fed.StrikeoutSwinging},
		fed.Strikeout{
			Envelope: envelope(25), Game: game, Teams: matchup, Batter: alex, Kind: fed.StrikeoutCharmed,
			Charm: &fed.CharmInduced{Pitcher: jaylen, Swings: 3},
			Spicy: &fed.SpicyChange{Status: fed.SpicyCooledOff, Sub: sub(2)},
			StoppedInhabiting: &fed.StoppedInhabiting{Player: wyatt, Sub: sub(3)},
		},
		fed.FlyOut{
			Envelope: envelope(26), Game: game, Teams: matchup, Batter: alex, Fielder: sosa,
			PlayEnd: fed.PlayEnd{Scores: []fed.ScoringPlayer{scorer(elsa, nil)}},
		},
		fed.FlyOut{
			Envelope: envelope(27), Game: game, Teams: matchup, Batter: alex, Fielder: junior,
			Item: &fed.ItemDamage{
				Owner: alex, ItemID: itemID, ItemName: "Bat", HealthBefore: 2, HealthAfter: 1,
				PlayerRating: 0.75, Sub: sub(4),
			},
		},
		fed.GroundOut{Envelope: envelope(28), Game: game, Teams: matchup, Batter: alex, Fielder: sosa},
		fed.FieldersChoice{
			Envelope: envelope(29), Game: game, Teams: matchup, Runner: sosa, Base: fed.BaseSecond, Batter: alex,
			PlayEnd: fed.PlayEnd{Scores: []fed.ScoringPlayer{scorer(elsa, subPtr(5))}},
		},
		fed.DoublePlay{
			Envelope: envelope(30), Game: game, Teams: matchup, Batter: alex,
			Item: &fed.ItemDamage{Owner: sosa, ItemID: itemID, ItemName: "Glove", Broke: true, HealthBefore: 1, Sub: sub(6)},
		},
		fed.HomeRun{Envelope: envelope(31), Game: game, Teams: matchup, Batter: alex, Runs: 1},
		fed.HomeRun{
			Envelope: envelope(32), Game: game, Teams: matchup, Batter: alex, Runs: 4,
			Spicy: &fed.SpicyChange{Status: fed.SpicyRedHot, Sub: sub(7)},
		},
		fed.HomeRun{Envelope: envelope(33), Game: game, Teams: matchup, Batter: alex, Runs: 3},
		fed.Hit{
			Envelope: envelope(34), Game: game, Teams: matchup, Batter: jessica, NumBases: 3,
			PlayEnd: fed.PlayEnd{
				Scores: []fed.ScoringPlayer{scorer(alex, subPtr(8)), scorer(elsa, subPtr(9))},
				Spicy:  &fed.SpicyChange{Status: fed.SpicyHeatingUp, Sub: sub(10)},
			},
		},
		fed.HitByPitch{Envelope: envelope(35), Game: game, Teams: matchup, Pitcher: jaylen, Batter: alex, Effect: fed.HitByPitchFlickering, Mod: sub(11)},
		fed.BatterSkipped{Envelope: envelope(36), Game: game, Teams: matchup, Batter: alex, Reason: fed.SkipShelled},
		fed.BatterSkipped{Envelope: envelope(37), Game: game, Teams: matchup, Batter: alex, Reason: fed.SkipElsewhere},
		fed.MildPitch{
			Envelope: envelope(38), Game: game, Teams: matchup, Pitcher: jaylen, Balls: 2, Strikes: 1,
			Scores: []fed.ScoringPlayer{scorer(elsa, nil)},
		},

		fed.StolenBase{Envelope: envelope(40), Game: game, Teams: matchup, Runner: elsa, Base: fed.BaseSecond},
		fed.StolenBase{Envelope: envelope(41), Game: game, Teams: matchup, Runner: elsa, Base: fed.BaseFourth, Blaserunning: true, FreeRefill: subPtr(12)},
		fed.CaughtStealing{Envelope: envelope(42), Game: game, Teams: matchup, Runner: elsa, Base: fed.BaseHome},
		fed.EnterSecretBase{Envelope: envelope(43), Game: game, Teams: matchup, Runner: elsa},
		fed.ExitSecretBase{Envelope: envelope(44), Game: game, Teams: matchup, Runner: elsa, Base: fed.BaseThird},

		fed.StrikeZapped{Envelope: envelope(50), Game: game, Teams: matchup},
		fed.BirdsCircle{Envelope: envelope(51), Game: game, Teams: matchup},
		fed.BirdsUnshell{Envelope: envelope(52), Game: game, Teams: matchup, Player: alex, Mod: sub(13)},
		fed.Blooddrain{Envelope: envelope(53), Game: game, Teams: matchup, Drainer: alex, Target: sosa, Stat: fed.BlooddrainPitching},
		fed.Incineration{Envelope: envelope(54), Game: game, Team: team, Slot: fed.RosterHitter, Victim: alex, Replacement: sosa},
		fed.IncinerationBlocked{Envelope: envelope(55), Game: game, Teams: matchup, Player: alex},
		fed.FloodingSwept{
			Envelope: envelope(56), Game: game, Teams: matchup,
			Runners: []fed.SweptRunner{{Player: elsa, Mod: sub(14)}, {Player: sosa, Mod: sub(15)}},
		},
		fed.SalmonSwim{Envelope: envelope(57), Game: game, Teams: matchup, Inning: 5},
		fed.PolarityShift{Envelope: envelope(58), Game: game, Teams: matchup},
		fed.PeanutMister{Envelope: envelope(59), Game: game, Teams: matchup, Player: alex, Mod: sub(16)},
		fed.TasteTheInfinite{Envelope: envelope(60), Game: game, Teams: matchup, Pitcher: jaylen, Batter: alex, Mod: sub(17)},
		fed.ReturnFromElsewhere{Envelope: envelope(61), Game: game, Teams: matchup, Player: alex},
		fed.ReturnFromElsewhere{Envelope: envelope(62), Game: game, Teams: matchup, Player: alex, Cleared: subPtr(18)},
		fed.Party{
			Envelope: envelope(63), Game: game, TeamID: homeID, Player: alex,
			Boost: fed.StatChange{Sub: sub(19), Stat: 4, Before: 0.5, After: 0.5625},
		},
		fed.Homebody{Envelope: envelope(64), Game: game, Teams: matchup, Player: alex, Happy: true},
		fed.Homebody{Envelope: envelope(65), Game: game, Teams: matchup, Player: alex},
		fed.Superyummy{Envelope: envelope(66), Game: game, Teams: matchup, Player: alex, Loves: true},
		fed.Superyummy{Envelope: envelope(67), Game: game, Teams: matchup, Player: alex},
		fed.Perk{Envelope: envelope(68), Game: game, Teams: matchup, Player: alex},
	}
}
