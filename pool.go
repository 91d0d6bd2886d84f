package cardgame

// instanceSlot is one entry in the public pool: either a fully public
// CardInstance, or a placeholder recording which player's secret holds the
// body.
type instanceSlot struct {
	inst        CardInstance
	isInstance  bool
	placeholder Player
}

func publicSlot(inst CardInstance) instanceSlot {
	return instanceSlot{inst: inst, isInstance: true}
}

func secretSlot(owner Player) instanceSlot {
	return instanceSlot{placeholder: owner}
}

func (s instanceSlot) instance() (CardInstance, bool) {
	if !s.isInstance {
		return CardInstance{}, false
	}
	return s.inst, true
}

func (s instanceSlot) owner() (Player, bool) {
	if s.isInstance {
		return 0, false
	}
	return s.placeholder, true
}
