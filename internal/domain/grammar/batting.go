package grammar

import (
	"fmt"

	"github.com/okian/feedcodec/internal/domain/fed"
)

// WalkKind tells the walk templates apart.
type WalkKind int

const (
	WalkPlain WalkKind = iota
	WalkMindTrick
	WalkCharm
)

// WalkText covers every type 5 description.
type WalkText struct {
	Kind          WalkKind
	Batter        string
	Pitcher       string
	Strikeout     fed.StrikeoutKind
	BaseInstincts *fed.Base
}

var strikeoutPhrases = map[fed.StrikeoutKind]string{
	fed.StrikeoutSwinging: "swinging.",
	fed.StrikeoutLooking:  "looking.",
}

func (t WalkText) Format() string {
	switch t.Kind {
	case WalkMindTrick:
		return fmt.Sprintf("%s draws a walk.\n%s uses a Mind Trick!\n%s strikes out %s",
			t.Batter, t.Pitcher, t.Batter, strikeoutPhrases[t.Strikeout])
	case WalkCharm:
		return fmt.Sprintf("%s charms %s!\n%s walks to first base.", t.Batter, t.Pitcher, t.Batter)
	}
	out := t.Batter + " draws a walk."
	if t.BaseInstincts != nil {
		out += "\nBase Instincts take them directly to " + t.BaseInstincts.Phrase() + "!"
	}
	return out
}

// Walk tries the Mind Trick form first: its first line is a plain walk.
func Walk() Parser[WalkText] {
	return Alt(
		Seq(func(s *State) WalkText {
			b := Run(s, Until(" draws a walk.\n"))
			p := Run(s, Until(" uses a Mind Trick!\n"))
			Run(s, Expect(b))
			s.Lit(" strikes out ")
			k := Run(s, Alt(
				Value(strikeoutPhrases[fed.StrikeoutSwinging], fed.StrikeoutSwinging),
				Value(strikeoutPhrases[fed.StrikeoutLooking], fed.StrikeoutLooking),
			))
			return WalkText{Kind: WalkMindTrick, Batter: b, Pitcher: p, Strikeout: k}
		}),
		Seq(func(s *State) WalkText {
			b := Run(s, Until(" charms "))
			p := Run(s, Until("!\n"))
			Run(s, Expect(b))
			s.Lit(" walks to first base.")
			return WalkText{Kind: WalkCharm, Batter: b, Pitcher: p}
		}),
		Seq(func(s *State) WalkText {
			b := Run(s, Until(" draws a walk."))
			bi := Run(s, Opt(Seq(func(s *State) fed.Base {
				s.Lit("\nBase Instincts take them directly to ")
				base := Run(s, BaseName())
				s.Lit("!")
				return base
			})))
			return WalkText{Kind: WalkPlain, Batter: b, BaseInstincts: bi}
		}),
	)
}

// StrikeoutText covers every type 6 description.
type StrikeoutText struct {
	Kind    fed.StrikeoutKind
	Batter  string
	Pitcher string
	Swings  int64
}

func (t StrikeoutText) Format() string {
	if t.Kind == fed.StrikeoutCharmed {
		return fmt.Sprintf("%s charms %s!\n%s swings %d times to strike out willingly!",
			t.Pitcher, t.Batter, t.Batter, t.Swings)
	}
	return t.Batter + " strikes out " + strikeoutPhrases[t.Kind]
}

func Strikeout() Parser[StrikeoutText] {
	return Alt(
		Seq(func(s *State) StrikeoutText {
			p := Run(s, Until(" charms "))
			b := Run(s, Until("!\n"))
			Run(s, Expect(b))
			s.Lit(" swings ")
			n := Run(s, Int())
			s.Lit(" times to strike out willingly!")
			return StrikeoutText{Kind: fed.StrikeoutCharmed, Batter: b, Pitcher: p, Swings: n}
		}),
		Map(Until(" strikes out swinging."), func(b string) StrikeoutText {
			return StrikeoutText{Kind: fed.StrikeoutSwinging, Batter: b}
		}),
		Map(Until(" strikes out looking."), func(b string) StrikeoutText {
			return StrikeoutText{Kind: fed.StrikeoutLooking, Batter: b}
		}),
	)
}

// FlyOutText is "{batter} hit a flyout to {fielder}.".
type FlyOutText struct {
	Batter  string
	Fielder string
}

func (t FlyOutText) Format() string {
	return t.Batter + " hit a flyout to " + t.Fielder + "."
}

func FlyOut() Parser[FlyOutText] {
	return Seq(func(s *State) FlyOutText {
		b := Run(s, Until(" hit a flyout to "))
		return FlyOutText{Batter: b, Fielder: Run(s, UntilPeriod())}
	})
}

// GroundOutKind tells the type 8 templates apart.
type GroundOutKind int

const (
	GroundOutPlain GroundOutKind = iota
	GroundOutFieldersChoice
	GroundOutDoublePlay
)

// GroundOutText covers every type 8 description.
type GroundOutText struct {
	Kind    GroundOutKind
	Batter  string
	Fielder string
	Runner  string
	Base    fed.Base
}

func (t GroundOutText) Format() string {
	switch t.Kind {
	case GroundOutFieldersChoice:
		return fmt.Sprintf("%s out at %s.\n%s reaches on fielder's choice.", t.Runner, t.Base.Phrase(), t.Batter)
	case GroundOutDoublePlay:
		return t.Batter + " hit into a double play!"
	}
	return t.Batter + " hit a ground out to " + t.Fielder + "."
}

func GroundOut() Parser[GroundOutText] {
	return Alt(
		Seq(func(s *State) GroundOutText {
			r := Run(s, Until(" out at "))
			base := Run(s, BaseName())
			s.Lit(".\n")
			b := Run(s, Until(" reaches on fielder's choice."))
			return GroundOutText{Kind: GroundOutFieldersChoice, Batter: b, Runner: r, Base: base}
		}),
		Map(Until(" hit into a double play!"), func(b string) GroundOutText {
			return GroundOutText{Kind: GroundOutDoublePlay, Batter: b}
		}),
		Seq(func(s *State) GroundOutText {
			b := Run(s, Until(" hit a ground out to "))
			return GroundOutText{Kind: GroundOutPlain, Batter: b, Fielder: Run(s, UntilPeriod())}
		}),
	)
}

// HomeRunText is a solo, n-run or grand slam home run.
type HomeRunText struct {
	Batter string
	Runs   int64
}

func (t HomeRunText) Format() string {
	switch t.Runs {
	case 1:
		return t.Batter + " hits a solo home run!"
	case 4:
		return t.Batter + " hits a grand slam!"
	}
	return fmt.Sprintf("%s hits a %d-run home run!", t.Batter, t.Runs)
}

// HomeRun rejects "1-run" and "4-run", which are spelled solo and grand slam.
func HomeRun() Parser[HomeRunText] {
	return Seq(func(s *State) HomeRunText {
		b := Run(s, Until(" hits a "))
		runs := Run(s, Alt(
			Value("solo home run!", int64(1)),
			Value("grand slam!", int64(4)),
			Seq(func(s *State) int64 {
				n := Run(s, Verify(Int(), "run count other than 1 or 4", func(n int64) bool {
					return n > 1 && n != 4
				}))
				s.Lit("-run home run!")
				return n
			}),
		))
		return HomeRunText{Batter: b, Runs: runs}
	})
}

var hitPhrases = map[int64]string{
	1: "Single!",
	2: "Double!",
	3: "Triple!",
	4: "Quadruple!",
}

// HitText is "{batter} hits a {Single|Double|Triple|Quadruple}!".
type HitText struct {
	Batter   string
	NumBases int64
}

func (t HitText) Format() string {
	return t.Batter + " hits a " + hitPhrases[t.NumBases]
}

func Hit() Parser[HitText] {
	return Seq(func(s *State) HitText {
		b := Run(s, Until(" hits a "))
		n := Run(s, Alt(
			Value(hitPhrases[1], int64(1)),
			Value(hitPhrases[2], int64(2)),
			Value(hitPhrases[3], int64(3)),
			Value(hitPhrases[4], int64(4)),
		))
		return HitText{Batter: b, NumBases: n}
	})
}

var effectPhrases = map[fed.HitByPitchEffect]string{
	fed.HitByPitchUnstable:   "Unstable",
	fed.HitByPitchFlickering: "Flickering",
	fed.HitByPitchRepeating:  "Repeating",
}

// HitByPitchText is "{pitcher} hits {batter} with a pitch! {batter} is now {effect}!".
type HitByPitchText struct {
	Pitcher string
	Batter  string
	Effect  fed.HitByPitchEffect
}

func (t HitByPitchText) Format() string {
	return fmt.Sprintf("%s hits %s with a pitch! %s", t.Pitcher, t.Batter, t.EffectLine())
}

// EffectLine is the clause naming the applied mod.
func (t HitByPitchText) EffectLine() string {
	return t.Batter + " is now " + effectPhrases[t.Effect] + "!"
}

func HitByPitch() Parser[HitByPitchText] {
	return Seq(func(s *State) HitByPitchText {
		p := Run(s, Until(" hits "))
		b := Run(s, Until(" with a pitch! "))
		Run(s, Expect(b))
		s.Lit(" is now ")
		e := Run(s, Alt(
			Value(effectPhrases[fed.HitByPitchUnstable]+"!", fed.HitByPitchUnstable),
			Value(effectPhrases[fed.HitByPitchFlickering]+"!", fed.HitByPitchFlickering),
			Value(effectPhrases[fed.HitByPitchRepeating]+"!", fed.HitByPitchRepeating),
		))
		return HitByPitchText{Pitcher: p, Batter: b, Effect: e}
	})
}

// BatterSkippedText is an Elsewhere or Shelled batter.
type BatterSkippedText struct {
	Batter string
	Reason fed.SkipReason
}

func (t BatterSkippedText) Format() string {
	if t.Reason == fed.SkipShelled {
		return t.Batter + " is Shelled and cannot escape!"
	}
	return t.Batter + " is Elsewhere."
}

func BatterSkipped() Parser[BatterSkippedText] {
	return Alt(
		Map(Until(" is Elsewhere."), func(b string) BatterSkippedText {
			return BatterSkippedText{Batter: b, Reason: fed.SkipElsewhere}
		}),
		Map(Until(" is Shelled and cannot escape!"), func(b string) BatterSkippedText {
			return BatterSkippedText{Batter: b, Reason: fed.SkipShelled}
		}),
	)
}

// MildPitchText is "{pitcher} throws a Mild pitch!\nBall, {count}.".
type MildPitchText struct {
	Pitcher string
	Count   Count
}

func (t MildPitchText) Format() string {
	return t.Pitcher + " throws a Mild pitch!\nBall, " + t.Count.String() + "."
}

func MildPitch() Parser[MildPitchText] {
	return Seq(func(s *State) MildPitchText {
		p := Run(s, Until(" throws a Mild pitch!\nBall, "))
		c := Run(s, CountP())
		s.Lit(".")
		return MildPitchText{Pitcher: p, Count: c}
	})
}
