package deck

const (
	// JokerStrength is above every standard card, with or without a revolution
	JokerStrength = 13
	maxStandard   = 12
)

// Strength ranks a card for comparison: Three is weakest, Two is strongest
// and jokers beat everything. A revolution inverts the standard cards.
func Strength(c Card, revolution bool) int {
	if c.IsJoker() {
		return JokerStrength
	}

	base := (int(c.rank) - 3 + 13) % 13
	if revolution {
		return maxStandard - base
	}
	return base
}

// Beats reports whether a is at least as strong as b
func Beats(a, b Card, revolution bool) bool {
	return Strength(a, revolution) >= Strength(b, revolution)
}

// MinStrength returns the lowest strength among cards, and false if cards is empty
func MinStrength(cards []Card, revolution bool) (int, bool) {
	if len(cards) == 0 {
		return 0, false
	}

	min := Strength(cards[0], revolution)
	for _, c := range cards[1:] {
		if s := Strength(c, revolution); s < min {
			min = s
		}
	}
	return min, true
}
