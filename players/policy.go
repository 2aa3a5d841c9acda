package players

import (
	"github.com/minaorangina/milliondoubt/deck"
	"github.com/minaorangina/milliondoubt/protocol"
)

// PolicyPlayer hands its decisions to functions supplied from outside, such
// as a trained model. A missing function reports ErrNoDecision, which the
// engine treats as a pass or a decline.
type PolicyPlayer struct {
	id       string
	name     string
	Play     func(view protocol.HandView) ([]int, error)
	FaceDown func(selected []deck.Card) ([]int, error)
	Doubt    func(played []deck.Card) (bool, error)
	Burst    func(opponentCount int) (bool, error)
}

// NewPolicyPlayer constructs a player with no policy yet
func NewPolicyPlayer(id, name string) *PolicyPlayer {
	return &PolicyPlayer{id: id, name: name}
}

func (p *PolicyPlayer) ID() string {
	return p.id
}

func (p *PolicyPlayer) Name() string {
	return p.name
}

func (p *PolicyPlayer) ChoosePlay(view protocol.HandView) ([]int, error) {
	if p.Play == nil {
		return nil, ErrNoDecision
	}
	return p.Play(view)
}

func (p *PolicyPlayer) ChooseFaceDown(selected []deck.Card) ([]int, error) {
	if p.FaceDown == nil {
		return nil, ErrNoDecision
	}
	return p.FaceDown(selected)
}

func (p *PolicyPlayer) DecideDoubt(played []deck.Card) (bool, error) {
	if p.Doubt == nil {
		return false, ErrNoDecision
	}
	return p.Doubt(played)
}

func (p *PolicyPlayer) DecideBurst(opponentCount int) (bool, error) {
	if p.Burst == nil {
		return false, ErrNoDecision
	}
	return p.Burst(opponentCount)
}
