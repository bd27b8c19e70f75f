package main

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/hand-ranker/domain/poker"
)

// handLine is the plain description of a revealed hand, e.g.
// "Alice's hand: Ace of Hearts, 10 of Spades - Flush".
func handLine(h poker.PlayerHand) string {
	names := make([]string, len(h.Hand))
	for i, c := range h.Hand {
		names[i] = c.Name()
	}
	return h.Name + "'s hand: " + strings.Join(names, ", ") + " - " + h.Rank.String()
}

func printPlayerInfo(h poker.PlayerHand, winner bool) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	title := h.Name
	if winner {
		title = pterm.LightGreen(h.Name)
	}
	cards := make([]string, len(h.Hand))
	for i, c := range h.Hand {
		cards[i] = c.Pretty()
	}
	hand := pterm.BgGreen.Sprint(strings.Join(cards, " - "))
	return pbox.WithTitle(title).WithTitleTopLeft().Sprintf("%s\n%s", hand, h.Rank.String())
}

func printShowdown(s poker.Showdown) {
	var panels []pterm.Panel
	for i, h := range s.Hands {
		panels = append(panels, pterm.Panel{Data: printPlayerInfo(h, i == s.Winner)})
	}
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{panels}).Render()

	for _, h := range s.Hands {
		pterm.Println(handLine(h))
	}
	pterm.Println(s.Announcement())
}
