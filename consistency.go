package cardgame

import (
	"fmt"

	"go.uber.org/zap"

	"card-movement-simulator/internal/obslog"
)

// Ok is the debug-only consistency checker: it verifies the public pool
// and as many of secrets (indexed by Player, either entry may be nil) as
// are available agree with every cross-bucket invariant in this
// package's data model. Production transitions do not call this after
// every mutation; it exists for tests and local debugging.
func (g *CardGame) Ok(secrets [2]*PlayerSecret) error {
	err := Consistency(g.state, secrets)
	if err != nil {
		obslog.Get().Debug("cardgame: ok failed", zap.Error(err))
	}
	return err
}

// Consistency runs the same checks as (*CardGame).Ok directly against a
// GameState, for callers (tests) that hold secrets without a CardGame.
func Consistency(state *GameState, secrets [2]*PlayerSecret) error {
	if err := checkPointerBounds(state, secrets); err != nil {
		return err
	}
	if err := checkBucketOwnership(state, secrets); err != nil {
		return err
	}
	if err := checkAttachmentVisibility(state, secrets); err != nil {
		return err
	}
	if err := checkUniqueness(state, secrets); err != nil {
		return err
	}
	if err := checkResolvableOwners(state, secrets); err != nil {
		return err
	}
	if err := checkHandAndSizeParity(state, secrets); err != nil {
		return err
	}
	return nil
}

// checkPointerBounds is invariant (a): no secret pointer exceeds the
// public pool length.
func checkPointerBounds(state *GameState, secrets [2]*PlayerSecret) error {
	for p, secret := range secrets {
		if secret == nil {
			continue
		}
		for i, id := range secret.pointers {
			if !state.Exists(id) {
				return &ErrConsistency{Message: fmt.Sprintf(
					"player %d pointer %d targets out-of-range %s", p, i, id)}
			}
		}
	}
	return nil
}

// checkBucketOwnership is invariant (b): every real instance sits in the
// correct bucket, and is absent from the other player's secret.
func checkBucketOwnership(state *GameState, secrets [2]*PlayerSecret) error {
	for i, slot := range state.pool {
		id := InstanceID(i)

		if slot.isInstance {
			for p, secret := range secrets {
				if secret == nil {
					continue
				}
				if _, ok := secret.instances[id]; ok {
					return &ErrConsistency{Message: fmt.Sprintf(
						"%s is public but also present in player %d's secret", id, p)}
				}
			}
			continue
		}

		owner, _ := slot.owner()
		if secret := secrets[owner]; secret != nil {
			if _, ok := secret.instances[id]; !ok {
				return &ErrConsistency{Message: fmt.Sprintf(
					"%s is owned by player %d but missing from their secret", id, owner)}
			}
		}
		if other := secrets[owner.Other()]; other != nil {
			if _, ok := other.instances[id]; ok {
				return &ErrConsistency{Message: fmt.Sprintf(
					"%s is owned by player %d but also present in player %d's secret", id, owner, owner.Other())}
			}
		}
	}
	return nil
}

// checkAttachmentVisibility is invariant (c): an instance's attachment
// must live in the same visibility bucket as the instance itself.
func checkAttachmentVisibility(state *GameState, secrets [2]*PlayerSecret) error {
	for i, slot := range state.pool {
		id := InstanceID(i)

		if inst, ok := slot.instance(); ok {
			if attID, ok := inst.Attachment(); ok {
				if _, public := state.PublicInstance(attID); !public {
					return &ErrConsistency{Message: fmt.Sprintf(
						"public %s has non-public attachment %s", id, attID)}
				}
			}
			continue
		}

		owner, _ := slot.owner()
		secret := secrets[owner]
		if secret == nil {
			continue
		}
		inst, ok := secret.instances[id]
		if !ok {
			continue
		}
		if attID, ok := inst.Attachment(); ok {
			if _, ok := secret.instances[attID]; !ok {
				return &ErrConsistency{Message: fmt.Sprintf(
					"secret %s has attachment %s outside player %d's secret", id, attID, owner)}
			}
		}
	}
	return nil
}

// checkUniqueness is invariant (d): each InstanceID appears at most once
// across all catalogues and attachment parenthoods.
func checkUniqueness(state *GameState, secrets [2]*PlayerSecret) error {
	seen := make(map[InstanceID]string)
	mark := func(id InstanceID, where string) error {
		if prev, ok := seen[id]; ok {
			return &ErrConsistency{Message: fmt.Sprintf(
				"%s appears in both %s and %s", id, prev, where)}
		}
		seen[id] = where
		return nil
	}

	for p := Player0; p <= Player1; p++ {
		cards := state.Cards(p)
		for _, slot := range cards.hand {
			if slot != nil {
				if err := mark(*slot, fmt.Sprintf("player %d public hand", p)); err != nil {
					return err
				}
			}
		}
		for _, id := range cards.field {
			if err := mark(id, fmt.Sprintf("player %d field", p)); err != nil {
				return err
			}
		}
		for _, id := range cards.graveyard {
			if err := mark(id, fmt.Sprintf("player %d graveyard", p)); err != nil {
				return err
			}
		}
		for _, id := range cards.dust {
			if err := mark(id, fmt.Sprintf("player %d public dust", p)); err != nil {
				return err
			}
		}
		for _, slot := range cards.limbo {
			if slot != nil {
				if err := mark(*slot, fmt.Sprintf("player %d public limbo", p)); err != nil {
					return err
				}
			}
		}
		for _, id := range cards.casting {
			if err := mark(id, fmt.Sprintf("player %d casting", p)); err != nil {
				return err
			}
		}

		if secret := secrets[p]; secret != nil {
			for _, id := range secret.deck {
				if err := mark(id, fmt.Sprintf("player %d secret deck", p)); err != nil {
					return err
				}
			}
			for _, slot := range secret.hand {
				if slot != nil {
					if err := mark(*slot, fmt.Sprintf("player %d secret hand", p)); err != nil {
						return err
					}
				}
			}
			for _, id := range secret.dust {
				if err := mark(id, fmt.Sprintf("player %d secret dust", p)); err != nil {
					return err
				}
			}
			for _, id := range secret.limbo {
				if err := mark(id, fmt.Sprintf("player %d secret limbo", p)); err != nil {
					return err
				}
			}
			for _, id := range secret.cardSelection {
				if err := mark(id, fmt.Sprintf("player %d secret card selection", p)); err != nil {
					return err
				}
			}
		}
	}

	for i, slot := range state.pool {
		inst, ok := slot.instance()
		if owner, secret := slot.owner(); secret && secrets[owner] != nil {
			inst, ok = secrets[owner].instances[InstanceID(i)]
		}
		if attID, has := inst.Attachment(); ok && has {
			if err := mark(attID, fmt.Sprintf("attachment of %s", InstanceID(i))); err != nil {
				return err
			}
		}
	}

	return nil
}

// checkResolvableOwners is invariant (e): every public instance has a
// resolvable owner.
func checkResolvableOwners(state *GameState, _ [2]*PlayerSecret) error {
	for i, slot := range state.pool {
		inst, ok := slot.instance()
		if !ok {
			continue
		}
		id := InstanceID(i)
		if _, ok := state.Location(id); ok {
			continue
		}
		if _, ok := state.attachmentParent(Player0, id); ok {
			continue
		}
		if _, ok := state.attachmentParent(Player1, id); ok {
			continue
		}
		_ = inst
		return &ErrConsistency{Message: fmt.Sprintf("public %s has no resolvable owner", id)}
	}
	return nil
}

// checkHandAndSizeParity is invariants (g): hand duality, and deck /
// card_selection / limbo size parity between the public and secret
// sides.
func checkHandAndSizeParity(state *GameState, secrets [2]*PlayerSecret) error {
	for p := Player0; p <= Player1; p++ {
		cards := state.Cards(p)
		secret := secrets[p]
		if secret == nil {
			continue
		}

		if len(cards.hand) != len(secret.hand) {
			return &ErrConsistency{Message: fmt.Sprintf(
				"player %d hand length mismatch: public %d secret %d", p, len(cards.hand), len(secret.hand))}
		}
		for i := range cards.hand {
			pub := cards.hand[i] != nil
			sec := secret.hand[i] != nil
			if pub == sec {
				return &ErrConsistency{Message: fmt.Sprintf(
					"player %d hand slot %d duality violated", p, i)}
			}
		}

		if cards.deck != len(secret.deck) {
			return &ErrConsistency{Message: fmt.Sprintf(
				"player %d deck size mismatch: public %d secret %d", p, cards.deck, len(secret.deck))}
		}
		if cards.cardSelection != len(secret.cardSelection) {
			return &ErrConsistency{Message: fmt.Sprintf(
				"player %d card_selection size mismatch: public %d secret %d", p, cards.cardSelection, len(secret.cardSelection))}
		}

		holes := 0
		for _, slot := range cards.limbo {
			if slot == nil {
				holes++
			}
		}
		if holes != len(secret.limbo) {
			return &ErrConsistency{Message: fmt.Sprintf(
				"player %d limbo size mismatch: %d public holes, %d secret entries", p, holes, len(secret.limbo))}
		}
	}
	return nil
}
