package grammar

import (
	"fmt"

	"github.com/okian/feedcodec/internal/domain/fed"
)

// Fixed descriptions.
const (
	TextLetsGo        = "Let's Go!"
	TextPlayBall      = "Play ball!"
	TextGameOver      = "Game over."
	TextStrikeZapped  = "The Electricity zaps a strike away!"
	TextBirdsCircle   = "The Birds circle ... but they don't find what they're looking for."
	TextPolarityShift = "The Polarity shifted!"
	TextFloodingSwept = "A surge of Immateria rushes up from Under!\nBaserunners are swept from play!"
)

// HalfInningText is "Top of 3, Hades Tigers batting.".
type HalfInningText struct {
	Top    bool
	Inning int64
	Team   string
}

func (t HalfInningText) Format() string {
	half := "Bottom"
	if t.Top {
		half = "Top"
	}
	return fmt.Sprintf("%s of %d, %s batting.", half, t.Inning, t.Team)
}

func HalfInning() Parser[HalfInningText] {
	return Seq(func(s *State) HalfInningText {
		top := Run(s, Alt(Value("Top of ", true), Value("Bottom of ", false)))
		inning := Run(s, Int())
		s.Lit(", ")
		return HalfInningText{Top: top, Inning: inning, Team: Run(s, Until(" batting."))}
	})
}

// PitcherChangeText is "{pitcher} is now pitching for the {team}.".
type PitcherChangeText struct {
	Pitcher string
	Team    string
}

func (t PitcherChangeText) Format() string {
	return t.Pitcher + " is now pitching for the " + t.Team + "."
}

func PitcherChange() Parser[PitcherChangeText] {
	return Seq(func(s *State) PitcherChangeText {
		p := Run(s, Until(" is now pitching for the "))
		return PitcherChangeText{Pitcher: p, Team: Run(s, UntilPeriod())}
	})
}

// BatterUpText announces a batter, who may be haunted or wield an item.
type BatterUpText struct {
	Batter     string
	Team       string
	Inhabiting string
	Item       string
}

func (t BatterUpText) Format() string {
	switch {
	case t.Inhabiting != "":
		return fmt.Sprintf("%s, Inhabiting %s, batting for the %s.", t.Batter, t.Inhabiting, t.Team)
	case t.Item != "":
		return fmt.Sprintf("%s, wielding %s, batting for the %s.", t.Batter, t.Item, t.Team)
	default:
		return fmt.Sprintf("%s batting for the %s.", t.Batter, t.Team)
	}
}

// BatterUp tries the haunted and wielding forms before the plain one,
// whose batter capture would otherwise swallow the extra clause.
func BatterUp() Parser[BatterUpText] {
	return Alt(
		Seq(func(s *State) BatterUpText {
			b := Run(s, Until(", Inhabiting "))
			h := Run(s, Until(", batting for the "))
			return BatterUpText{Batter: b, Inhabiting: h, Team: Run(s, UntilPeriod())}
		}),
		Seq(func(s *State) BatterUpText {
			b := Run(s, Until(", wielding "))
			item := Run(s, Until(", batting for the "))
			return BatterUpText{Batter: b, Item: item, Team: Run(s, UntilPeriod())}
		}),
		Seq(func(s *State) BatterUpText {
			b := Run(s, Until(" batting for the "))
			return BatterUpText{Batter: b, Team: Run(s, UntilPeriod())}
		}),
	)
}

var strikePhrases = map[fed.StrikeKind]string{
	fed.StrikeSwinging:  "swinging",
	fed.StrikeLooking:   "looking",
	fed.StrikeFlinching: "flinching",
}

// StrikeText is "Strike, looking. 0-1".
type StrikeText struct {
	Kind  fed.StrikeKind
	Count Count
}

func (t StrikeText) Format() string {
	return "Strike, " + strikePhrases[t.Kind] + ". " + t.Count.String()
}

func Strike() Parser[StrikeText] {
	return Seq(func(s *State) StrikeText {
		s.Lit("Strike, ")
		kind := Run(s, Alt(
			Value(strikePhrases[fed.StrikeSwinging], fed.StrikeSwinging),
			Value(strikePhrases[fed.StrikeLooking], fed.StrikeLooking),
			Value(strikePhrases[fed.StrikeFlinching], fed.StrikeFlinching),
		))
		s.Lit(". ")
		return StrikeText{Kind: kind, Count: Run(s, CountP())}
	})
}

// BallText is "Ball. 1-0".
type BallText struct {
	Count Count
}

func (t BallText) Format() string { return "Ball. " + t.Count.String() }

func Ball() Parser[BallText] {
	return Seq(func(s *State) BallText {
		s.Lit("Ball. ")
		return BallText{Count: Run(s, CountP())}
	})
}

// FoulBallText is "Foul Ball. 1-2" or "3 Foul Balls. 1-2".
type FoulBallText struct {
	Fouls int64
	Count Count
}

func (t FoulBallText) Format() string {
	if t.Fouls == 1 {
		return "Foul Ball. " + t.Count.String()
	}
	return fmt.Sprintf("%d Foul Balls. %s", t.Fouls, t.Count)
}

func FoulBall() Parser[FoulBallText] {
	return Alt(
		Seq(func(s *State) FoulBallText {
			s.Lit("Foul Ball. ")
			return FoulBallText{Fouls: 1, Count: Run(s, CountP())}
		}),
		Seq(func(s *State) FoulBallText {
			n := Run(s, Verify(Int(), "at least two fouls", func(n int64) bool { return n >= 2 }))
			s.Lit(" Foul Balls. ")
			return FoulBallText{Fouls: n, Count: Run(s, CountP())}
		}),
	)
}

// InningEndText is "Inning 4 is now an Outing.".
type InningEndText struct {
	Inning int64
}

func (t InningEndText) Format() string {
	return fmt.Sprintf("Inning %d is now an Outing.", t.Inning)
}

func InningEnd() Parser[InningEndText] {
	return Seq(func(s *State) InningEndText {
		s.Lit("Inning ")
		n := Run(s, Int())
		s.Lit(" is now an Outing.")
		return InningEndText{Inning: n}
	})
}
