package grammar

import (
	"fmt"

	"github.com/okian/feedcodec/internal/domain/fed"
)

// StealText is a stolen base or a runner caught stealing.
type StealText struct {
	Runner       string
	Base         fed.Base
	Caught       bool
	Blaserunning bool
}

func (t StealText) Format() string {
	if t.Caught {
		return t.Runner + " gets caught stealing " + t.Base.Phrase() + "."
	}
	out := t.Runner + " steals " + t.Base.Phrase() + "!"
	if t.Blaserunning {
		out += "\n" + BlaserunningLine(t.Runner)
	}
	return out
}

// BlaserunningLine renders the runner scoring on their own steal.
func BlaserunningLine(runner string) string {
	return runner + " scores with Blaserunning!"
}

func Steal() Parser[StealText] {
	return Alt(
		Seq(func(s *State) StealText {
			r := Run(s, Until(" steals "))
			base := Run(s, BaseName())
			s.Lit("!")
			blase := Run(s, Opt(Seq(func(s *State) string {
				s.Lit("\n")
				Run(s, Expect(r))
				s.Lit(" scores with Blaserunning!")
				return r
			})))
			return StealText{Runner: r, Base: base, Blaserunning: blase != nil}
		}),
		Seq(func(s *State) StealText {
			r := Run(s, Until(" gets caught stealing "))
			base := Run(s, BaseName())
			s.Lit(".")
			return StealText{Runner: r, Base: base, Caught: true}
		}),
	)
}

// SecretBaseText is a runner entering or leaving the Secret Base.
type SecretBaseText struct {
	Runner string
	Exit   *fed.Base
}

func (t SecretBaseText) Format() string {
	if t.Exit != nil {
		return t.Runner + " exits the Secret Base to " + t.Exit.Phrase() + "!"
	}
	return t.Runner + " enters the Secret Base..."
}

func EnterSecretBase() Parser[SecretBaseText] {
	return Map(Until(" enters the Secret Base..."), func(r string) SecretBaseText {
		return SecretBaseText{Runner: r}
	})
}

func ExitSecretBase() Parser[SecretBaseText] {
	return Seq(func(s *State) SecretBaseText {
		r := Run(s, Until(" exits the Secret Base to "))
		base := Run(s, BaseName())
		s.Lit("!")
		return SecretBaseText{Runner: r, Exit: &base}
	})
}

// SubjectText is a description naming one player in a fixed sentence.
type SubjectText struct {
	Player string
	Suffix string
}

func (t SubjectText) Format() string { return t.Player + t.Suffix }

// Subject parses "{player}" followed by suffix.
func Subject(suffix string) Parser[SubjectText] {
	return Map(Until(suffix), func(p string) SubjectText {
		return SubjectText{Player: p, Suffix: suffix}
	})
}

// Fixed sentence endings for single-player descriptions.
const (
	SuffixParty        = " is Partying!"
	SuffixReturned     = " has returned from Elsewhere!"
	SuffixHappyHome    = " is happy to be home."
	SuffixHomesick     = " is homesick."
	SuffixLovesPeanuts = " loves Peanuts."
	SuffixMissPeanuts  = " misses Peanuts."
	SuffixPerk         = " Perks up."
	SuffixSwept        = " is swept Elsewhere!"
	SuffixShelled      = " is Shelled!"
	SuffixCured        = " has been cured of their peanut allergy!"
)

// Choice parses "{player}" followed by one of two endings. Suffix on the
// result tells which one matched.
func Choice(first, second string) Parser[SubjectText] {
	return Alt(Subject(first), Subject(second))
}

// FloodedRunners parses the runners swept after the flood header.
func FloodedRunners() Parser[[]string] {
	return Many(Seq(func(s *State) string {
		s.Lit("\n")
		return Run(s, Until(SuffixSwept))
	}))
}

// SalmonText is "The Salmon swim upstream!\nInning {n} begins again.".
type SalmonText struct {
	Inning int64
}

func (t SalmonText) Format() string {
	return fmt.Sprintf("The Salmon swim upstream!\nInning %d begins again.", t.Inning)
}

func Salmon() Parser[SalmonText] {
	return Seq(func(s *State) SalmonText {
		s.Lit("The Salmon swim upstream!\nInning ")
		n := Run(s, Int())
		s.Lit(" begins again.")
		return SalmonText{Inning: n}
	})
}

// BirdsUnshellText is "The Birds pecked {player} free!".
type BirdsUnshellText struct {
	Player string
}

func (t BirdsUnshellText) Format() string {
	return "The Birds pecked " + t.Player + " free!"
}

func BirdsUnshell() Parser[BirdsUnshellText] {
	return Seq(func(s *State) BirdsUnshellText {
		s.Lit("The Birds pecked ")
		return BirdsUnshellText{Player: Run(s, Until(" free!"))}
	})
}

var blooddrainPhrases = map[fed.BlooddrainStat]string{
	fed.BlooddrainHitting:     "hitting",
	fed.BlooddrainPitching:    "pitching",
	fed.BlooddrainBaserunning: "baserunning",
	fed.BlooddrainDefense:     "defensive",
}

// BlooddrainText is one player siphoning another's ability.
type BlooddrainText struct {
	Drainer string
	Target  string
	Stat    fed.BlooddrainStat
}

func (t BlooddrainText) Format() string {
	return fmt.Sprintf("The Blooddrain gurgled!\n%s siphoned some of %s's %s ability!",
		t.Drainer, t.Target, blooddrainPhrases[t.Stat])
}

func Blooddrain() Parser[BlooddrainText] {
	return Seq(func(s *State) BlooddrainText {
		s.Lit("The Blooddrain gurgled!\n")
		a := Run(s, Until(" siphoned some of "))
		b := Run(s, Until("'s "))
		stat := Run(s, Alt(
			Value(blooddrainPhrases[fed.BlooddrainHitting], fed.BlooddrainHitting),
			Value(blooddrainPhrases[fed.BlooddrainPitching], fed.BlooddrainPitching),
			Value(blooddrainPhrases[fed.BlooddrainBaserunning], fed.BlooddrainBaserunning),
			Value(blooddrainPhrases[fed.BlooddrainDefense], fed.BlooddrainDefense),
		))
		s.Lit(" ability!")
		return BlooddrainText{Drainer: a, Target: b, Stat: stat}
	})
}

var slotPhrases = map[fed.RosterSlot]string{
	fed.RosterHitter:  "hitter",
	fed.RosterPitcher: "pitcher",
}

// IncinerationText is a Rogue Umpire incineration.
type IncinerationText struct {
	Team        string
	Slot        fed.RosterSlot
	Victim      string
	Replacement string
}

func (t IncinerationText) Format() string {
	return fmt.Sprintf("Rogue Umpire incinerated %s %s %s!\nReplaced by %s",
		t.Team, slotPhrases[t.Slot], t.Victim, t.Replacement)
}

func Incineration() Parser[IncinerationText] {
	type teamSlot struct {
		team string
		slot fed.RosterSlot
	}
	slot := func(s fed.RosterSlot) Parser[teamSlot] {
		return Map(Until(" "+slotPhrases[s]+" "), func(team string) teamSlot {
			return teamSlot{team: team, slot: s}
		})
	}
	return Seq(func(s *State) IncinerationText {
		s.Lit("Rogue Umpire incinerated ")
		ts := Run(s, Alt(slot(fed.RosterHitter), slot(fed.RosterPitcher)))
		v := Run(s, Until("!\nReplaced by "))
		return IncinerationText{Team: ts.team, Slot: ts.slot, Victim: v, Replacement: Run(s, Line())}
	})
}

// IncinerationBlockedText is a Fireproof player shrugging off an umpire.
type IncinerationBlockedText struct {
	Player string
}

func (t IncinerationBlockedText) Format() string {
	return "Rogue Umpire tried to incinerate " + t.Player + ", but " + t.Player + " is Fireproof!"
}

func IncinerationBlocked() Parser[IncinerationBlockedText] {
	return Seq(func(s *State) IncinerationBlockedText {
		s.Lit("Rogue Umpire tried to incinerate ")
		p := Run(s, Until(", but "))
		Run(s, Expect(p))
		s.Lit(" is Fireproof!")
		return IncinerationBlockedText{Player: p}
	})
}

// PeanutMisterText is the mister curing an allergy.
type PeanutMisterText struct {
	Player string
}

// CureLine is the clause reused by the mod removal child.
func (t PeanutMisterText) CureLine() string { return t.Player + SuffixCured }

func (t PeanutMisterText) Format() string {
	return "The Peanut Mister activates!\n" + t.CureLine()
}

func PeanutMister() Parser[PeanutMisterText] {
	return Seq(func(s *State) PeanutMisterText {
		s.Lit("The Peanut Mister activates!\n")
		return PeanutMisterText{Player: Run(s, Until(SuffixCured))}
	})
}

// TasteText is a pitcher tasting the infinite and shelling the batter.
type TasteText struct {
	Pitcher string
	Batter  string
}

// ShelledLine is the clause reused by the mod child.
func (t TasteText) ShelledLine() string { return t.Batter + SuffixShelled }

func (t TasteText) Format() string {
	return t.Pitcher + " tastes the infinite!\n" + t.ShelledLine()
}

func TasteTheInfinite() Parser[TasteText] {
	return Seq(func(s *State) TasteText {
		p := Run(s, Until(" tastes the infinite!\n"))
		return TasteText{Pitcher: p, Batter: Run(s, Until(SuffixShelled))}
	})
}
