package main

import (
	"flag"
	"fmt"
	"strings"
	"uno-server/internal/rng"
	"uno-server/internal/util"
	"uno-server/pkg/uno"

	"github.com/sirupsen/logrus"
)

var seed = flag.Int64("seed", 0, "shuffle seed; 0 picks a random shuffle")
var players = flag.Int("players", 4, "number of players")
var handSize = flag.Int("cards", 7, "cards dealt to each player")

func main() {
	flag.Parse()

	var gen rng.Generator = rng.Crypto{}
	if *seed != 0 {
		gen = rng.NewSeeded(*seed)
	}

	game := uno.NewGame(gen)
	for i := 0; i < *players; i++ {
		p := uno.NewPlayer()
		p.SetName(util.GetRandomName())
		p.SetTurn(i)
		game.AddPlayer(p)
	}

	for round := 0; round < *handSize; round++ {
		for i := range game.Players() {
			if _, ok, err := game.DrawCard(i); err != nil || !ok {
				logrus.WithField("player", i).Fatal("not enough cards to deal")
			}
		}
	}

	fmt.Printf("face up: %s\n", game.CurrentCard().Paint())
	for _, p := range game.Players() {
		painted := make([]string, 0, len(p.Cards()))
		for _, card := range p.Cards() {
			painted = append(painted, card.Paint())
		}

		fmt.Printf("%d %-22s %s\n", p.Turn(), p.Name(), strings.Join(painted, " "))
	}
	fmt.Printf("%d cards left\n", game.Deck().Len())
}
