package players

import (
	"math/rand"
	"testing"

	"github.com/minaorangina/milliondoubt/deck"
	utils "github.com/minaorangina/milliondoubt/internal"
	"github.com/minaorangina/milliondoubt/protocol"
	"github.com/stretchr/testify/assert"
)

func newTestCPU(doubtRate, bluffRate float64) *CPU {
	return NewCPU(CPUOpts{
		ID:        "cpu",
		Name:      "CPU",
		Rng:       rand.New(rand.NewSource(1)),
		DoubtRate: doubtRate,
		BluffRate: bluffRate,
	})
}

func TestCPUChoosePlay(t *testing.T) {
	six := deck.MustCard(deck.Six, deck.Clubs)

	t.Run("leads with its weakest pair", func(t *testing.T) {
		cpu := newTestCPU(0, -1)
		hand := []deck.Card{
			deck.MustCard(deck.Nine, deck.Spades),
			deck.MustCard(deck.Three, deck.Clubs),
			deck.MustCard(deck.Three, deck.Diamonds),
			deck.MustCard(deck.King, deck.Hearts),
		}

		play, err := cpu.ChoosePlay(protocol.HandView{Hand: hand})
		utils.AssertNoError(t, err)
		assert.Equal(t, []int{1, 2}, play)
	})

	t.Run("leads with its weakest single when it has no pair", func(t *testing.T) {
		cpu := newTestCPU(0, -1)
		hand := []deck.Card{deck.MustCard(deck.Nine, deck.Spades), deck.MustCard(deck.Four, deck.Clubs)}

		play, err := cpu.ChoosePlay(protocol.HandView{Hand: hand})
		utils.AssertNoError(t, err)
		assert.Equal(t, []int{1}, play)
	})

	t.Run("follows with the weakest card that beats the field", func(t *testing.T) {
		cpu := newTestCPU(0, -1)
		hand := []deck.Card{deck.MustCard(deck.Two, deck.Spades), deck.MustCard(deck.Seven, deck.Diamonds), deck.MustCard(deck.Four, deck.Clubs)}

		play, err := cpu.ChoosePlay(protocol.HandView{Hand: hand, RequiredLength: 1, Reference: []deck.Card{six}})
		utils.AssertNoError(t, err)
		assert.Equal(t, []int{1}, play)
	})

	t.Run("plays weak cards under a revolution", func(t *testing.T) {
		cpu := newTestCPU(0, -1)
		hand := []deck.Card{deck.MustCard(deck.Seven, deck.Diamonds), deck.MustCard(deck.Four, deck.Clubs)}

		play, err := cpu.ChoosePlay(protocol.HandView{Hand: hand, RequiredLength: 1, Reference: []deck.Card{six}, Revolution: true})
		utils.AssertNoError(t, err)
		assert.Equal(t, []int{1}, play)
	})

	t.Run("follows a locked suit", func(t *testing.T) {
		cpu := newTestCPU(0, -1)
		hand := []deck.Card{deck.MustCard(deck.Nine, deck.Spades), deck.MustCard(deck.Ten, deck.Hearts)}

		play, err := cpu.ChoosePlay(protocol.HandView{
			Hand:            hand,
			RequiredLength:  1,
			Reference:       []deck.Card{deck.MustCard(deck.Six, deck.Hearts)},
			RestrictedSuits: []deck.Suit{deck.Hearts},
		})
		utils.AssertNoError(t, err)
		assert.Equal(t, []int{1}, play)
	})

	t.Run("passes when it cannot play and will not bluff", func(t *testing.T) {
		cpu := newTestCPU(0, -1)
		hand := []deck.Card{deck.MustCard(deck.Three, deck.Clubs)}

		play, err := cpu.ChoosePlay(protocol.HandView{Hand: hand, RequiredLength: 1, Reference: []deck.Card{six}})
		utils.AssertNoError(t, err)
		assert.Empty(t, play)
	})

	t.Run("bluffs with its weakest cards face down", func(t *testing.T) {
		cpu := newTestCPU(0, 1)
		hand := []deck.Card{deck.MustCard(deck.Five, deck.Clubs), deck.MustCard(deck.Three, deck.Diamonds)}

		play, err := cpu.ChoosePlay(protocol.HandView{Hand: hand, RequiredLength: 1, Reference: []deck.Card{six}})
		utils.AssertNoError(t, err)
		assert.Equal(t, []int{1}, play)

		faceDowns, err := cpu.ChooseFaceDown([]deck.Card{hand[1]})
		utils.AssertNoError(t, err)
		assert.Equal(t, []int{0}, faceDowns)

		t.Log("and plays honestly again afterwards")
		faceDowns, err = cpu.ChooseFaceDown([]deck.Card{hand[1]})
		utils.AssertNoError(t, err)
		assert.Empty(t, faceDowns)
	})
}

func TestCPUDecisions(t *testing.T) {
	t.Run("never doubts with a negative rate", func(t *testing.T) {
		cpu := newTestCPU(-1, 0)
		for i := 0; i < 20; i++ {
			doubt, err := cpu.DecideDoubt([]deck.Card{deck.Back})
			utils.AssertNoError(t, err)
			assert.False(t, doubt)
		}
	})

	t.Run("always doubts at a rate of one", func(t *testing.T) {
		cpu := newTestCPU(1, 0)
		doubt, err := cpu.DecideDoubt([]deck.Card{deck.Back})
		utils.AssertNoError(t, err)
		assert.True(t, doubt)
	})

	t.Run("always calls burst", func(t *testing.T) {
		burst, err := newTestCPU(0, 0).DecideBurst(11)
		utils.AssertNoError(t, err)
		assert.True(t, burst)
	})

	t.Run("defaults", func(t *testing.T) {
		cpu := NewCPU(CPUOpts{Name: "CPU"})
		utils.AssertNotEmptyString(t, cpu.ID())
		assert.Equal(t, DefaultDoubtRate, cpu.doubtRate)
		assert.Equal(t, DefaultBluffRate, cpu.bluffRate)
	})
}

func TestEachCombination(t *testing.T) {
	got := [][]int{}
	eachCombination(4, 2, func(indices []int) bool {
		got = append(got, append([]int{}, indices...))
		return true
	})

	assert.Equal(t, [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, got)

	visits := 0
	eachCombination(5, 3, func([]int) bool {
		visits++
		return visits < 2
	})
	assert.Equal(t, 2, visits)
}
