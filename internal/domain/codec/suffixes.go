package codec

import (
	"fmt"

	"github.com/okian/feedcodec/internal/domain/fed"
	"github.com/okian/feedcodec/internal/domain/grammar"
	"github.com/okian/feedcodec/internal/domain/model"
)

// readScores decodes the scoring lines and any Free Refills that follow
// them. Each scorer takes a player tag; each refill takes a child.
func readScores(c *Cursor, g fed.Game, suffix string) ([]fed.ScoringPlayer, error) {
	names, err := Next(c, grammar.ScoreList(suffix))
	if err != nil {
		return nil, err
	}
	var scores []fed.ScoringPlayer
	for _, name := range names {
		id, err := c.Players.Next()
		if err != nil {
			return nil, err
		}
		scores = append(scores, fed.ScoringPlayer{ID: id, Name: name})
	}

	refills, err := Next(c, grammar.RefillList())
	if err != nil {
		return nil, err
	}
	next := 0
	for _, name := range refills {
		for next < len(scores) && scores[next].Name != name {
			next++
		}
		if next == len(scores) {
			return nil, &DescriptionParseError{
				Type:      c.Type(),
				Detail:    fmt.Sprintf("free refill for %q matches no remaining scorer", name),
				Remaining: c.Text(),
			}
		}
		ref, err := readModRemoved(c, g, grammar.RefillLine(name), scores[next].ID, ModCoffeeRefill, fed.ModPermanent)
		if err != nil {
			return nil, err
		}
		scores[next].FreeRefill = &ref
		next++
	}
	return scores, nil
}

// readRefill decodes an optional Free Refill spent by one player.
func readRefill(c *Cursor, g fed.Game, p fed.Player) (*fed.SubEventRef, error) {
	names, err := Next(c, grammar.RefillList())
	if err != nil {
		return nil, err
	}
	switch len(names) {
	case 0:
		return nil, nil
	case 1:
		if names[0] == p.Name {
			ref, err := readModRemoved(c, g, grammar.RefillLine(p.Name), p.ID, ModCoffeeRefill, fed.ModPermanent)
			if err != nil {
				return nil, err
			}
			return &ref, nil
		}
	}
	return nil, &DescriptionParseError{Type: c.Type(), Detail: "unexpected free refill", Remaining: c.Text()}
}

func readSpicy(c *Cursor, g fed.Game, batter fed.Player) (*fed.SpicyChange, error) {
	status, err := Next(c, grammar.Opt(grammar.Spicy(batter.Name)))
	if err != nil || status == nil {
		return nil, err
	}
	line := grammar.SpicyLine(batter.Name, *status)
	var ref fed.SubEventRef
	switch *status {
	case fed.SpicyHeatingUp:
		ref, err = readModAdded(c, g, line, batter.ID, ModHeatingUp, fed.ModPermanent)
	case fed.SpicyRedHot:
		ref, err = readChild(c, g, model.TypeChangedModifier, line, batter.ID, expectModChange(ModHeatingUp, ModRedHot))
	default:
		ref, err = readModRemoved(c, g, line, batter.ID, ModRedHot, fed.ModPermanent)
	}
	if err != nil {
		return nil, err
	}
	return &fed.SpicyChange{Status: *status, Sub: ref}, nil
}

func readStoppedInhabiting(c *Cursor, g fed.Game) (*fed.StoppedInhabiting, error) {
	name, err := Next(c, grammar.Opt(grammar.StoppedInhabiting()))
	if err != nil || name == nil {
		return nil, err
	}
	id, err := c.Players.Next()
	if err != nil {
		return nil, err
	}
	ref, err := readModRemoved(c, g, grammar.StoppedInhabitingLine(*name), id, ModInhabiting, fed.ModGame)
	if err != nil {
		return nil, err
	}
	return &fed.StoppedInhabiting{Player: fed.Player{ID: id, Name: *name}, Sub: ref}, nil
}

func readItemDamage(c *Cursor, g fed.Game) (*fed.ItemDamage, error) {
	text, err := Next(c, grammar.Opt(grammar.ItemDamage()))
	if err != nil || text == nil {
		return nil, err
	}
	owner, err := c.Players.Next()
	if err != nil {
		return nil, err
	}
	it := fed.ItemDamage{
		Owner:    fed.Player{ID: owner, Name: text.Owner},
		ItemName: text.Item,
		Broke:    text.Broke,
	}
	typ := model.TypeItemDamage
	if it.Broke {
		typ = model.TypeItemBreaks
	}
	ref, err := readChild(c, g, typ, text.Line(), owner, func(ch *Cursor) error {
		var err error
		if it.ItemID, err = ch.MetadataUUID(keyItemID); err != nil {
			return err
		}
		if err = ch.ExpectMetadata(keyItemName, it.ItemName); err != nil {
			return err
		}
		if it.HealthBefore, err = ch.MetadataInt64(keyItemHealthBefore); err != nil {
			return err
		}
		if it.HealthAfter, err = ch.MetadataInt64(keyItemHealthAfter); err != nil {
			return err
		}
		it.PlayerRating, err = ch.MetadataFloat64(keyPlayerRating)
		return err
	})
	if err != nil {
		return nil, err
	}
	it.Sub = ref
	return &it, nil
}

// readPlayEnd decodes scores, refills, a streak notice and a haunting
// ending, in description order.
func readPlayEnd(c *Cursor, g fed.Game, batter fed.Player, scoreSuffix string) (fed.PlayEnd, error) {
	var (
		pe  fed.PlayEnd
		err error
	)
	if pe.Scores, err = readScores(c, g, scoreSuffix); err != nil {
		return pe, err
	}
	if pe.Spicy, err = readSpicy(c, g, batter); err != nil {
		return pe, err
	}
	pe.StoppedInhabiting, err = readStoppedInhabiting(c, g)
	return pe, err
}

// Encoding side.

func scoreSuffixes(suffix string, scores []fed.ScoringPlayer) []pendingSuffix {
	var out []pendingSuffix
	for i := range scores {
		s := scores[i]
		out = append(out, pendingSuffix{kind: suffixScore, line: grammar.ScoreLine(s.Name, suffix), player: &scores[i].ID})
		if s.FreeRefill != nil {
			out = append(out, refillSuffix(fed.Player{ID: s.ID, Name: s.Name}, *s.FreeRefill))
		}
	}
	return out
}

func refillSuffix(p fed.Player, ref fed.SubEventRef) pendingSuffix {
	line := grammar.RefillLine(p.Name)
	ch := modRemoved(ref, line, p.ID, ModCoffeeRefill, fed.ModPermanent)
	return pendingSuffix{kind: suffixRefill, line: line, child: &ch}
}

func spicySuffix(batter fed.Player, s *fed.SpicyChange) []pendingSuffix {
	if s == nil {
		return nil
	}
	line := grammar.SpicyLine(batter.Name, s.Status)
	var ch child
	switch s.Status {
	case fed.SpicyHeatingUp:
		ch = modAdded(s.Sub, line, batter.ID, ModHeatingUp, fed.ModPermanent)
	case fed.SpicyRedHot:
		ch = modChanged(s.Sub, line, batter.ID, ModHeatingUp, ModRedHot)
	default:
		ch = modRemoved(s.Sub, line, batter.ID, ModRedHot, fed.ModPermanent)
	}
	return []pendingSuffix{{kind: suffixSpicy, line: line, child: &ch}}
}

func inhabitingSuffix(s *fed.StoppedInhabiting) []pendingSuffix {
	if s == nil {
		return nil
	}
	line := grammar.StoppedInhabitingLine(s.Player.Name)
	ch := modRemoved(s.Sub, line, s.Player.ID, ModInhabiting, fed.ModGame)
	id := s.Player.ID
	return []pendingSuffix{{kind: suffixInhabiting, line: line, player: &id, child: &ch}}
}

func itemSuffix(it *fed.ItemDamage) []pendingSuffix {
	if it == nil {
		return nil
	}
	line := grammar.ItemText{Owner: it.Owner.Name, Item: it.ItemName, Broke: it.Broke}.Line()
	ch := itemChild(line, *it)
	id := it.Owner.ID
	return []pendingSuffix{{kind: suffixTrailing, line: line, player: &id, child: &ch}}
}

// playEnd queues the shared trailing clauses of a batting outcome.
func (b *builder) playEnd(batter fed.Player, scoreSuffix string, pe fed.PlayEnd) *builder {
	b.queue(scoreSuffixes(scoreSuffix, pe.Scores)...)
	b.queue(spicySuffix(batter, pe.Spicy)...)
	return b.queue(inhabitingSuffix(pe.StoppedInhabiting)...)
}
