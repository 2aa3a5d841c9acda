package players

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/minaorangina/milliondoubt/deck"
	"github.com/minaorangina/milliondoubt/protocol"
)

// Human is a player at the terminal. Cards are chosen by letter.
type Human struct {
	id    string
	name  string
	in    *bufio.Reader
	out   io.Writer
	names map[string]string
}

// NewHuman constructs a terminal player reading from in and writing to out
func NewHuman(id, name string, in io.Reader, out io.Writer) *Human {
	return &Human{
		id:    id,
		name:  name,
		in:    bufio.NewReader(in),
		out:   out,
		names: map[string]string{},
	}
}

func (h *Human) ID() string {
	return h.id
}

func (h *Human) Name() string {
	return h.name
}

// Introduce tells the human the names of the players at the table
func (h *Human) Introduce(ps []protocol.Player) {
	for _, p := range ps {
		h.names[p.PlayerID] = p.Name
	}
}

func (h *Human) ChoosePlay(view protocol.HandView) ([]int, error) {
	SendText(h.out, buildTableText(view))
	SendText(h.out, "\n%s, here is your hand:\n", h.name)
	SendText(h.out, buildCardChoiceText(view.Hand))
	SendText(h.out, playPromptText(view.RequiredLength))

	line, err := h.readLine()
	if err != nil {
		return nil, err
	}

	indices, err := lettersToIndices(line, len(view.Hand))
	if err != nil {
		SendText(h.out, "%s\n", err)
		return nil, err
	}

	if len(indices) > 0 && view.RequiredLength > 0 && len(indices) != view.RequiredLength {
		err := fmt.Errorf("%w: you need to choose %d cards", ErrInvalidInput, view.RequiredLength)
		SendText(h.out, "%s\n", err)
		return nil, err
	}

	return indices, nil
}

func (h *Human) ChooseFaceDown(selected []deck.Card) ([]int, error) {
	SendText(h.out, "\nYou are playing:\n")
	SendText(h.out, buildCardChoiceText(selected))
	SendText(h.out, faceDownPromptText())

	line, err := h.readLine()
	if err != nil {
		return nil, err
	}

	indices, err := lettersToIndices(line, len(selected))
	if err != nil {
		SendText(h.out, "%s\n", err)
	}
	return indices, err
}

func (h *Human) DecideDoubt(played []deck.Card) (bool, error) {
	SendText(h.out, "\nYour opponent played %s\nDoubt? [y/n] ", cardsText(played))
	return h.readYesNo()
}

func (h *Human) DecideBurst(opponentCount int) (bool, error) {
	SendText(h.out, "\nYour opponent is holding %d cards.\nCall burst? [y/n] ", opponentCount)
	return h.readYesNo()
}

// HandleEvent narrates an event, hiding the opponent's face-down cards
func (h *Human) HandleEvent(e protocol.Event) {
	if e.Kind == protocol.EventHandDealt && e.PlayerID != h.id {
		return
	}
	SendText(h.out, "%s\n", buildEventText(e, h.id, h.names))
}

func (h *Human) readYesNo() (bool, error) {
	line, err := h.readLine()
	if err != nil {
		return false, err
	}

	yes, err := parseYesNo(line)
	if err != nil {
		SendText(h.out, "%s\n", err)
	}
	return yes, err
}

func (h *Human) readLine() (string, error) {
	line, err := h.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return line, nil
}
