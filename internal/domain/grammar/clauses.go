package grammar

import (
	"fmt"

	"github.com/okian/feedcodec/internal/domain/fed"
)

// Trailing clauses shared by many templates. Each starts on a new line;
// the Line helpers render them without the leading newline so children
// can reuse the text as their own description.

// Scoring suffixes.
const (
	Scores       = "scores!"
	TagsUpScores = "tags up and scores!"
)

// ScoreLine renders one scoring runner.
func ScoreLine(name, suffix string) string {
	return name + " " + suffix
}

// ScoreList parses zero or more scoring lines ending in suffix.
func ScoreList(suffix string) Parser[[]string] {
	return Many(Seq(func(s *State) string {
		s.Lit("\n")
		return Run(s, Until(" "+suffix))
	}))
}

// RefillLine renders a Free Refill notice for name.
func RefillLine(name string) string {
	return name + " used their Free Refill.\n" + name + " Refills the In!"
}

// RefillList parses zero or more Free Refill notices and yields the
// refilling player names in order.
func RefillList() Parser[[]string] {
	return Many(Seq(func(s *State) string {
		s.Lit("\n")
		name := Run(s, Until(" used their Free Refill.\n"))
		Run(s, Expect(name))
		s.Lit(" Refills the In!")
		return name
	}))
}

var spicyPhrases = map[fed.SpicyStatus]string{
	fed.SpicyHeatingUp: " is Heating Up!",
	fed.SpicyRedHot:    " is Red Hot!",
	fed.SpicyCooledOff: " cooled off.",
}

// SpicyLine renders a streak notice on batter.
func SpicyLine(batter string, status fed.SpicyStatus) string {
	return batter + spicyPhrases[status]
}

// Spicy parses a streak notice naming batter.
func Spicy(batter string) Parser[fed.SpicyStatus] {
	return Seq(func(s *State) fed.SpicyStatus {
		s.Lit("\n")
		Run(s, Expect(batter))
		return Run(s, Alt(
			Value(spicyPhrases[fed.SpicyHeatingUp], fed.SpicyHeatingUp),
			Value(spicyPhrases[fed.SpicyRedHot], fed.SpicyRedHot),
			Value(spicyPhrases[fed.SpicyCooledOff], fed.SpicyCooledOff),
		))
	})
}

// StoppedInhabitingLine renders a haunting player leaving.
func StoppedInhabitingLine(name string) string {
	return name + " stopped Inhabiting."
}

// StoppedInhabiting parses a haunting player leaving and yields their name.
func StoppedInhabiting() Parser[string] {
	return Seq(func(s *State) string {
		s.Lit("\n")
		return Run(s, Until(" stopped Inhabiting."))
	})
}

// ItemText is an item damage notice.
type ItemText struct {
	Owner string
	Item  string
	Broke bool
}

// Line renders the notice.
func (t ItemText) Line() string {
	if t.Broke {
		return fmt.Sprintf("%s's %s broke!", t.Owner, t.Item)
	}
	return fmt.Sprintf("%s's %s was damaged.", t.Owner, t.Item)
}

// ItemDamage parses an item breaking or being damaged.
func ItemDamage() Parser[ItemText] {
	return Seq(func(s *State) ItemText {
		s.Lit("\n")
		owner := Run(s, Until("'s "))
		return Run(s, Alt(
			Map(Until(" broke!"), func(item string) ItemText {
				return ItemText{Owner: owner, Item: item, Broke: true}
			}),
			Map(Until(" was damaged."), func(item string) ItemText {
				return ItemText{Owner: owner, Item: item}
			}),
		))
	})
}

// BaseName parses a base phrase.
func BaseName() Parser[fed.Base] {
	bases := fed.Bases()
	ps := make([]Parser[fed.Base], 0, len(bases))
	for _, b := range bases {
		ps = append(ps, Value(b.Phrase(), b))
	}
	return Alt(ps...)
}

// Count is a balls-strikes count.
type Count struct {
	Balls   int64
	Strikes int64
}

func (c Count) String() string {
	return fmt.Sprintf("%d-%d", c.Balls, c.Strikes)
}

// CountP parses "{balls}-{strikes}".
func CountP() Parser[Count] {
	return Seq(func(s *State) Count {
		b := Run(s, Int())
		s.Lit("-")
		return Count{Balls: b, Strikes: Run(s, Int())}
	})
}
