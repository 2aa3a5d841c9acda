package players

import (
	"fmt"
	"io"
	"strings"

	"github.com/minaorangina/milliondoubt/deck"
	"github.com/minaorangina/milliondoubt/protocol"
	"github.com/pterm/pterm"
)

const upperCaseA = 65

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// cardText renders a card for the terminal, with red suits in red
func cardText(c deck.Card) string {
	switch {
	case c.IsBack():
		return pterm.Gray("##")
	case c.IsJoker():
		return pterm.LightMagenta("JK")
	}

	suit := c.Suit().Symbol()
	switch c.Suit() {
	case deck.Hearts, deck.Diamonds:
		suit = pterm.LightRed(suit)
	}

	text := suit + c.Rank().Symbol()
	if !c.FaceUp() {
		text += pterm.Gray("(down)")
	}
	return text
}

func cardsText(cards []deck.Card) string {
	if len(cards) == 0 {
		return "(none)"
	}

	texts := []string{}
	for _, c := range cards {
		texts = append(texts, cardText(c))
	}
	return strings.Join(texts, " ")
}

func buildCardChoiceText(cards []deck.Card) string {
	text := ""
	for i, c := range cards {
		text += fmt.Sprintf("%c - %s\n", rune(upperCaseA+i), cardText(c))
	}
	return text
}

func buildTableText(view protocol.HandView) string {
	text := fmt.Sprintf("\nField: %s\n", cardsText(view.Field))
	if len(view.Reference) > 0 {
		text += fmt.Sprintf("To beat: %s\n", cardsText(view.Reference))
	}
	if view.Revolution {
		text += pterm.LightYellow("Revolution!") + " Weaker cards win.\n"
	}
	if len(view.RestrictedSuits) > 0 {
		suits := []string{}
		for _, s := range view.RestrictedSuits {
			suits = append(suits, s.String())
		}
		text += fmt.Sprintf("Locked to: %s\n", strings.Join(suits, ", "))
	}
	text += fmt.Sprintf("Your opponent holds %d cards.\n", view.OpponentCount)
	return text
}

func playPromptText(requiredLength int) string {
	if requiredLength == 0 {
		return "\nChoose cards to lead with (e.g. AC), or press enter to pass: "
	}
	return fmt.Sprintf("\nChoose %d cards to play (e.g. AC), or press enter to pass: ", requiredLength)
}

func faceDownPromptText() string {
	return "\nChoose cards to play face down (e.g. AB), or press enter to play them all face up: "
}

// buildEventText describes an event from the point of view of viewerID.
// Face-down cards belonging to someone else are masked.
func buildEventText(e protocol.Event, viewerID string, names map[string]string) string {
	who := names[e.PlayerID]
	if e.PlayerID == viewerID {
		who = "You"
	}

	cards := e.Cards
	if e.PlayerID != viewerID {
		cards = deck.Deck(e.Cards).Masked()
	}

	switch e.Kind {
	case protocol.EventHandDealt:
		return fmt.Sprintf("%s: %d cards dealt", who, e.HandSize)
	case protocol.EventPlayAccepted:
		return fmt.Sprintf("%s played %s", who, cardsText(cards))
	case protocol.EventPlayRejected:
		return fmt.Sprintf("%s tried an illegal play", who)
	case protocol.EventPassed:
		return fmt.Sprintf("%s passed. The field is cleared.", who)
	case protocol.EventEffectTriggered:
		return effectText(e)
	case protocol.EventDoubtCalled:
		return fmt.Sprintf("%s called doubt!", who)
	case protocol.EventBluffCaught:
		return fmt.Sprintf("Bluff caught! %s played %s and takes the field.", who, cardsText(e.Cards))
	case protocol.EventFalseDoubt:
		return fmt.Sprintf("The play was honest: %s. %s takes the field.", cardsText(e.Cards), who)
	case protocol.EventBurst:
		return fmt.Sprintf("%s called burst!", who)
	case protocol.EventGameOver:
		return fmt.Sprintf("Game over! %s won.", who)
	}

	return string(e.Kind)
}

func effectText(e protocol.Event) string {
	switch e.Effect {
	case protocol.EffectEightCut:
		return "Eight cut! The field is cleared."
	case protocol.EffectJackBack:
		return "Jack back! Strength is reversed until the field clears."
	case protocol.EffectJackBackReverted:
		return "Jack back is over."
	case protocol.EffectRevolution:
		return "Revolution!"
	case protocol.EffectSuitLock:
		suits := []string{}
		for _, s := range e.Suits {
			suits = append(suits, s.String())
		}
		return fmt.Sprintf("Suits locked: %s", strings.Join(suits, ", "))
	}
	return string(e.Effect)
}
