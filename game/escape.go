package game

import "github.com/dpt-reimpl/greatescape/assets"

// Escape implements spec.md §4.1's end-of-game evaluator: it builds the
// compass/papers/purse/uniform bitmask from the hero's held inventory,
// evaluates it, queues the resulting message sequence, and then either
// resets the game (won) or sends the hero to solitary (any other
// verdict), matching assets.EscapeMask.Evaluate()'s exact branch logic.
func Escape(s *State) assets.EscapeVerdict {
	var mask assets.EscapeMask
	for _, idx := range s.Items.Inventory {
		if idx < 0 {
			continue
		}
		switch s.Items.Items[idx].ID {
		case assets.ItemCompass:
			mask |= assets.EscapeHasCompass
		case assets.ItemPapers:
			mask |= assets.EscapeHasPapers
		case assets.ItemPurse:
			mask |= assets.EscapeHasPurse
		case assets.ItemUniform, assets.ItemUniform2:
			mask |= assets.EscapeHasUniform
		}
	}

	verdict := mask.Evaluate()
	for _, msg := range assets.EscapeMessages[verdict] {
		s.Messages.Enqueue(msg)
	}

	switch verdict {
	case assets.EscapeWon:
		Reset(s)
	default:
		Solitary(s)
	}

	return verdict
}
