package game

// TurnState is where the game is in its turn cycle
type TurnState int

const (
	dealing TurnState = iota
	decidingAttacker
	awaitingPlay
	awaitingFaceDown
	awaitingDoubt
	awaitingBurst
	gameOver
)

var turnStateNames = []string{
	"Dealing",
	"DecidingAttacker",
	"AwaitingPlay",
	"AwaitingFaceDown",
	"AwaitingDoubt",
	"AwaitingBurst",
	"GameOver",
}

func (s TurnState) String() string {
	return turnStateNames[s]
}
