package cardgame

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"card-movement-simulator/internal/obslog"
)

// zoneIndex is the payload shape used when revealing "where is this card
// in your secret" from a player's transport.
type zoneIndex struct {
	Zone  Zone
	Index int
	Found bool
}

// MoveCard relocates card to (toPlayer, toZone), returning the card's
// previous owner and zone. It implements the move/attach/detach engine:
// resolving the source with minimum disclosure, migrating the card's
// body across the public/secret boundary when visibility changes, dusting
// any attachment the destination displaces, and reconciling hand holes.
func (g *CardGame) MoveCard(card Card, toPlayer Player, toZone Zone) (Player, *Zone, error) {
	id, srcOwner, srcPublic, err := g.resolveSource(card)
	if err != nil {
		return 0, nil, err
	}

	srcZone, srcIndex, err := g.locate(srcOwner, srcPublic, id)
	if err != nil {
		return 0, nil, err
	}
	if srcZone.IsDust() {
		return 0, nil, &ErrDustedCard{Card: CardID(id)}
	}

	// Detach: leaving an attachment zone clears the old parent's
	// attachment field before the ordinary move proceeds.
	g.clearAttachmentParent(srcZone)

	dstPublic := g.destinationIsPublic(toZone)

	if parent, ok := toZone.Parent(); ok {
		parentID, ok := parent.ID()
		if !ok {
			return 0, nil, fmt.Errorf("cardgame: attachment destination must name a card by id")
		}
		if existing, ok := g.attachmentOf(parentID); ok {
			parentPublic := g.isPublic(parentID)
			dustZone := ZoneDust(parentPublic)
			parentOwner, ok := g.locationOwner(parentID)
			if !ok {
				return 0, nil, &ErrMissingInstance{Card: CardID(parentID)}
			}
			if _, _, err := g.MoveCard(CardID(existing), parentOwner, dustZone); err != nil {
				return 0, nil, err
			}
		}
	}

	fromLoc := ExactCardLocation{Player: srcOwner, Zone: srcZone, Index: srcIndex}

	var movedInstance *CardInstance
	if srcPublic != dstPublic || (!srcPublic && srcOwner != toPlayer) {
		inst, err := g.migrate(id, srcOwner, srcPublic, toPlayer, dstPublic)
		if err != nil {
			return 0, nil, err
		}
		movedInstance = inst
	}

	g.removeFromZone(srcOwner, srcPublic, srcZone, srcIndex)
	dstIndex := g.insertIntoZone(toPlayer, dstPublic, toZone, id)

	toLoc := ExactCardLocation{Player: toPlayer, Zone: toZone, Index: dstIndex}

	if movedInstance == nil {
		if inst, ok := g.state.PublicInstance(id); ok {
			movedInstance = &inst
		}
	}

	g.emit(MoveCardEvent(movedInstance, fromLoc, toLoc))

	obslog.WithGameContext(int(srcOwner)).Debug("move_card",
		zap.Int("instance", int(id)),
		zap.Int("to_player", int(toPlayer)),
	)
	g.checkConsistencyIfEnabled("MoveCard")

	resultZone := srcZone
	return srcOwner, &resultZone, nil
}

// resolveSource determines which instance a Card names, with minimum
// disclosure: a pointer whose referent is already public is "published"
// by simply continuing with its id, never performing a secret->public
// migration merely to resolve it.
func (g *CardGame) resolveSource(card Card) (id InstanceID, owner Player, public bool, err error) {
	if direct, ok := card.ID(); ok {
		return g.ownerOf(direct)
	}

	ptr, _ := card.Pointer()
	referent := RevealUnique(g.ctx, ptr.Owner,
		func(s *PlayerSecret) InstanceID {
			id, _ := s.derefPointer(ptr)
			return id
		},
		alwaysTrue[InstanceID],
	)

	return g.ownerOf(referent)
}

// ownerOf reports id's current owner and visibility: for a secret id,
// the player whose secret holds it; for a public id, the player whose
// public catalogue lists it.
func (g *CardGame) ownerOf(id InstanceID) (InstanceID, Player, bool, error) {
	if owner, isSecret := g.state.Owner(id); isSecret {
		return id, owner, false, nil
	}
	if loc, ok := g.state.Location(id); ok {
		return id, loc.Player, true, nil
	}
	return id, 0, false, &ErrMissingInstance{Card: CardID(id)}
}

// locate finds the zone and index of id within owner's public catalogue
// (if public) or owner's secret catalogue (if not), asking the transport
// for the latter.
func (g *CardGame) locate(owner Player, public bool, id InstanceID) (Zone, int, error) {
	if public {
		if loc, ok := g.state.Location(id); ok {
			return loc.Zone, loc.Index, nil
		}
		return Zone{}, 0, &ErrMissingInstance{Card: CardID(id)}
	}

	result := RevealUnique(g.ctx, owner,
		func(s *PlayerSecret) zoneIndex {
			if zone, index, ok := s.Location(id); ok {
				return zoneIndex{Zone: zone, Index: index, Found: true}
			}
			return zoneIndex{}
		},
		alwaysTrue[zoneIndex],
	)
	if !result.Found {
		return Zone{}, 0, &ErrMissingInstance{Card: CardID(id)}
	}
	return result.Zone, result.Index, nil
}

// destinationIsPublic reports whether zone's bucket is public: an
// attachment zone inherits its parent's visibility, everything else
// reports its own Public flag.
func (g *CardGame) destinationIsPublic(zone Zone) bool {
	if parent, ok := zone.Parent(); ok {
		if parentID, ok := parent.ID(); ok {
			return g.isPublic(parentID)
		}
		return false
	}
	return zone.Public()
}

func (g *CardGame) isPublic(id InstanceID) bool {
	_, secret := g.state.Owner(id)
	return !secret
}

// locationOwner reports which player's bucket (public catalogue or
// secret) currently holds id.
func (g *CardGame) locationOwner(id InstanceID) (Player, bool) {
	if owner, secret := g.state.Owner(id); secret {
		return owner, true
	}
	if loc, ok := g.state.Location(id); ok {
		return loc.Player, true
	}
	return 0, false
}

func (g *CardGame) attachmentOf(id InstanceID) (InstanceID, bool) {
	if inst, ok := g.state.PublicInstance(id); ok {
		return inst.Attachment()
	}
	if owner, ok := g.state.Owner(id); ok {
		result := Reveal(g.ctx, owner,
			func(s *PlayerSecret) zoneIndex {
				inst, ok := s.Instance(id)
				if !ok {
					return zoneIndex{}
				}
				att, ok := inst.Attachment()
				return zoneIndex{Index: int(att), Found: ok}
			},
			alwaysTrue[zoneIndex],
		)
		if result.Found {
			return InstanceID(result.Index), true
		}
	}
	return 0, false
}

// migrate moves an instance's body across the public/secret boundary, or
// from one player's secret to the other's, along with its attachment's
// body if it has one: a card and its attachment always share a bucket, so
// a cross-bucket move of one always carries the other along.
func (g *CardGame) migrate(id InstanceID, srcOwner Player, srcPublic bool, dstPlayer Player, dstPublic bool) (*CardInstance, error) {
	if srcPublic && !dstPublic {
		inst, ok := g.state.PublicInstance(id)
		if !ok {
			return nil, &ErrMissingInstance{Card: CardID(id)}
		}
		var attInst CardInstance
		var hasAtt bool
		if attID, ok := inst.Attachment(); ok {
			attInst, hasAtt = g.state.PublicInstance(attID)
		}
		g.ctx.MutateSecret(dstPlayer, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
			secret.insertInstance(inst)
			if hasAtt {
				secret.insertInstance(attInst)
			}
		})
		g.state.setSlot(id, secretSlot(dstPlayer))
		if hasAtt {
			g.state.setSlot(attInst.ID(), secretSlot(dstPlayer))
		}
		return nil, nil
	}

	// Secret -> public, or secret -> the other player's secret.
	var inst CardInstance
	var found bool
	var attInst CardInstance
	var hasAtt bool
	g.ctx.MutateSecret(srcOwner, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
		inst, found = secret.Instance(id)
		if !found {
			return
		}
		secret.removeInstance(id)
		if attID, ok := inst.Attachment(); ok {
			attInst, hasAtt = secret.Instance(attID)
			if hasAtt {
				secret.removeInstance(attID)
			}
		}
	})
	if !found {
		return nil, &ErrMissingInstance{Card: CardID(id)}
	}
	if !dstPublic {
		g.ctx.MutateSecret(dstPlayer, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
			secret.insertInstance(inst)
			if hasAtt {
				secret.insertInstance(attInst)
			}
		})
		g.state.setSlot(id, secretSlot(dstPlayer))
		if hasAtt {
			g.state.setSlot(attInst.ID(), secretSlot(dstPlayer))
		}
		return nil, nil
	}
	g.state.setInstance(id, inst)
	if hasAtt {
		g.state.setInstance(attInst.ID(), attInst)
	}
	return &inst, nil
}

// removeFromZone splices id's slot out of (owner, zone, index). Hand is
// index-paired across the public/secret boundary (step 6), so removing
// from either side must splice both at the same index. Deck and
// CardSelection are always secret-bodied, but their public side still
// tracks a size (PlayerCards.removeFrom decrements it, ignoring index),
// so both sides must be touched there too, mirroring insertIntoZone.
// Secret limbo is not index-paired with the public limbo's holes, so
// removing from it also drops the last public hole. Every other zone is
// removed from one side only.
func (g *CardGame) removeFromZone(owner Player, public bool, zone Zone, index int) {
	if zone.IsHand() || zone.IsDeck() || zone.IsCardSelection() {
		g.state.Cards(owner).removeFrom(zone, index)
		g.ctx.MutateSecret(owner, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
			secret.removeFrom(zone, index)
		})
		return
	}
	if zone.IsSecretLimbo() {
		cards := g.state.Cards(owner)
		for i := len(cards.limbo) - 1; i >= 0; i-- {
			if cards.limbo[i] == nil {
				cards.limbo = append(cards.limbo[:i], cards.limbo[i+1:]...)
				break
			}
		}
	}

	if public {
		g.state.Cards(owner).removeFrom(zone, index)
		return
	}
	g.ctx.MutateSecret(owner, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
		secret.removeFrom(zone, index)
	})
}

// insertIntoZone inserts id into (player, zone), honoring hand-slot
// reconciliation (step 6) and shuffle-on-insert for the deck.
func (g *CardGame) insertIntoZone(player Player, public bool, zone Zone, id InstanceID) int {
	switch {
	case zone.IsDeck():
		return g.insertDeck(player, id)
	case zone.IsHand() && public:
		g.state.Cards(player).pushHandPublic(id)
		g.ctx.MutateSecret(player, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
			secret.pushHandPublicHole()
		})
		return len(g.state.Cards(player).hand) - 1
	case zone.IsHand() && !public:
		g.state.Cards(player).pushHandSecretHole()
		g.ctx.MutateSecret(player, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
			secret.pushHandSecret(id)
		})
		return len(g.state.Cards(player).hand) - 1
	case zone.IsField():
		g.state.Cards(player).pushField(id)
		return len(g.state.Cards(player).field) - 1
	case zone.IsGraveyard():
		g.state.Cards(player).pushGraveyard(id)
		return len(g.state.Cards(player).graveyard) - 1
	case zone.IsDust() && public:
		g.state.Cards(player).pushDust(id)
		return len(g.state.Cards(player).dust) - 1
	case zone.IsDust() && !public:
		g.ctx.MutateSecret(player, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
			secret.pushDust(id)
		})
		return -1
	case zone.IsLimbo() && public:
		g.state.Cards(player).pushLimboPublic(id)
		return len(g.state.Cards(player).limbo) - 1
	case zone.IsLimbo() && !public:
		g.state.Cards(player).pushLimboSecretHole()
		g.ctx.MutateSecret(player, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
			secret.pushLimbo(id)
		})
		return len(g.state.Cards(player).limbo) - 1
	case zone.IsCasting():
		g.state.Cards(player).pushCasting(id)
		return len(g.state.Cards(player).casting) - 1
	case zone.IsCardSelection():
		g.state.Cards(player).incrementCardSelection()
		g.ctx.MutateSecret(player, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
			secret.pushCardSelection(id)
		})
		return -1
	case zone.IsAttachment():
		g.attachTo(zone, id)
		return -1
	}
	return -1
}

func (g *CardGame) attachTo(zone Zone, id InstanceID) {
	parent, ok := zone.Parent()
	if !ok {
		return
	}
	parentID, ok := parent.ID()
	if !ok {
		return
	}
	if inst, ok := g.state.PublicInstance(parentID); ok {
		g.state.setInstance(parentID, inst.setAttachment(&id))
		return
	}
	if owner, ok := g.state.Owner(parentID); ok {
		g.ctx.MutateSecret(owner, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
			if inst, ok := secret.Instance(parentID); ok {
				secret.insertInstance(inst.setAttachment(&id))
			}
		})
	}
}

// clearAttachmentParent clears the attachment field of zone's parent, if
// zone is an attachment zone: the detach half of a move out of
// Attachment{parent}, mirrored against attachTo's attach half, routed to
// whichever bucket currently holds the parent.
func (g *CardGame) clearAttachmentParent(zone Zone) {
	parent, ok := zone.Parent()
	if !ok {
		return
	}
	parentID, ok := parent.ID()
	if !ok {
		return
	}
	if inst, ok := g.state.PublicInstance(parentID); ok {
		g.state.setInstance(parentID, inst.setAttachment(nil))
		return
	}
	if owner, ok := g.state.Owner(parentID); ok {
		g.ctx.MutateSecret(owner, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
			if inst, ok := secret.Instance(parentID); ok {
				secret.insertInstance(inst.setAttachment(nil))
			}
		})
	}
}

// insertDeck inserts id into player's secret deck, at a uniformly random
// index when the GameState's ShuffleDeckOnInsert flag is set, otherwise
// appended to the end of the deck list.
func (g *CardGame) insertDeck(player Player, id InstanceID) int {
	g.state.Cards(player).incrementDeck()
	shuffle := g.state.ShuffleDeckOnInsert()
	g.ctx.MutateSecret(player, func(secret *PlayerSecret, rng *rand.Rand, _ func(Event)) {
		if shuffle && len(secret.deck) > 0 {
			index := rng.Intn(len(secret.deck) + 1)
			secret.insertDeckAt(index, id)
		} else {
			secret.pushDeck(id)
		}
	})
	return -1
}

func (g *CardGame) emit(event Event) {
	g.ctx.Log(event)
}
