package players

import (
	"math/rand"
	"sort"
	"time"

	"github.com/minaorangina/milliondoubt/deck"
	"github.com/minaorangina/milliondoubt/game"
	"github.com/minaorangina/milliondoubt/protocol"
)

const (
	DefaultDoubtRate = 0.2
	DefaultBluffRate = 0.3

	// caps the search for a legal play in large hands
	maxCandidates = 5000
)

// CPUOpts configures a computer player. A zero rate takes the default and a
// negative rate means never.
type CPUOpts struct {
	ID        string
	Name      string
	Rng       *rand.Rand
	DoubtRate float64
	BluffRate float64
}

// CPU plays the weakest legal cards it holds. When it has none it may bluff
// with its weakest cards face down.
type CPU struct {
	id        string
	name      string
	rng       *rand.Rand
	doubtRate float64
	bluffRate float64
	bluffing  bool
}

// NewCPU constructs a computer player
func NewCPU(opts CPUOpts) *CPU {
	c := &CPU{
		id:        opts.ID,
		name:      opts.Name,
		rng:       opts.Rng,
		doubtRate: opts.DoubtRate,
		bluffRate: opts.BluffRate,
	}

	if c.id == "" {
		c.id = NewID()
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.doubtRate == 0 {
		c.doubtRate = DefaultDoubtRate
	}
	if c.bluffRate == 0 {
		c.bluffRate = DefaultBluffRate
	}

	return c
}

func (c *CPU) ID() string {
	return c.id
}

func (c *CPU) Name() string {
	return c.name
}

func (c *CPU) ChoosePlay(view protocol.HandView) ([]int, error) {
	c.bluffing = false
	if len(view.Hand) == 0 {
		return []int{}, nil
	}

	constraints := game.Constraints{
		FieldEmpty:      view.RequiredLength == 0,
		Length:          view.RequiredLength,
		Reference:       view.Reference,
		RestrictedSuits: view.RestrictedSuits,
		Revolution:      view.Revolution,
	}

	if constraints.FieldEmpty {
		// shed a pair when possible
		for _, n := range []int{2, 1} {
			if play, ok := weakestLegal(view.Hand, n, constraints); ok {
				return play, nil
			}
		}
		return []int{}, nil
	}

	if play, ok := weakestLegal(view.Hand, view.RequiredLength, constraints); ok {
		return play, nil
	}

	if len(view.Hand) >= view.RequiredLength && c.rng.Float64() < c.bluffRate {
		c.bluffing = true
		return weakest(view.Hand, view.RequiredLength, view.Revolution), nil
	}

	return []int{}, nil
}

func (c *CPU) ChooseFaceDown(selected []deck.Card) ([]int, error) {
	defer func() { c.bluffing = false }()

	if !c.bluffing {
		return []int{}, nil
	}

	all := make([]int, len(selected))
	for i := range selected {
		all[i] = i
	}
	return all, nil
}

func (c *CPU) DecideDoubt(played []deck.Card) (bool, error) {
	return c.rng.Float64() < c.doubtRate, nil
}

func (c *CPU) DecideBurst(opponentCount int) (bool, error) {
	return true, nil
}

// weakestLegal finds the legal play of n cards with the lowest total strength
func weakestLegal(hand []deck.Card, n int, constraints game.Constraints) ([]int, bool) {
	var (
		best      []int
		bestScore int
		tried     int
	)

	eachCombination(len(hand), n, func(indices []int) bool {
		tried++

		cards := make([]deck.Card, 0, n)
		score := 0
		for _, idx := range indices {
			cards = append(cards, hand[idx])
			score += deck.Strength(hand[idx], constraints.Revolution)
		}

		if game.IsLegal(cards, constraints, false) && (best == nil || score < bestScore) {
			best = append([]int{}, indices...)
			bestScore = score
		}

		return tried < maxCandidates
	})

	return best, best != nil
}

// weakest returns the indices of the n weakest cards in hand
func weakest(hand []deck.Card, n int, revolution bool) []int {
	indices := make([]int, len(hand))
	for i := range hand {
		indices[i] = i
	}

	sort.SliceStable(indices, func(i, j int) bool {
		return deck.Strength(hand[indices[i]], revolution) < deck.Strength(hand[indices[j]], revolution)
	})

	return indices[:n]
}

// eachCombination visits every k-subset of 0..n-1 in lexicographic order
// until visit returns false. visit must copy indices to keep them.
func eachCombination(n, k int, visit func(indices []int) bool) {
	if k <= 0 || k > n {
		return
	}

	indices := make([]int, k)
	for i := range indices {
		indices[i] = i
	}

	for {
		if !visit(indices) {
			return
		}

		i := k - 1
		for i >= 0 && indices[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}

		indices[i]++
		for j := i + 1; j < k; j++ {
			indices[j] = indices[j-1] + 1
		}
	}
}
