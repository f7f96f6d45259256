package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"playingcards/internal/config"
	"playingcards/internal/event"
	"playingcards/internal/game/card"
	"playingcards/internal/game/pile"
	"playingcards/internal/game/table"
)

const handSize = 5

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1))

	deck := card.NewDeck(cfg.BackColor, cfg.Jokers)
	logger.Info("deck created", "deck", deck.ID(), "color", deck.Color(), "cards", deck.Len(), "seed", seed)

	tb := table.New()
	if _, err := event.LogChanges(logger, tb); err != nil {
		return err
	}

	stock, err := pile.New(pile.WithDeck(deck), pile.WithRand(rng), pile.WithInvariant(pile.NoDuplicates))
	if err != nil {
		return fmt.Errorf("create stock: %w", err)
	}
	if err := tb.AddZone("stock", stock); err != nil {
		return err
	}
	if err := stock.Shuffle(); err != nil {
		return fmt.Errorf("shuffle: %w", err)
	}

	hands := make([]string, cfg.Hands)
	for i := range hands {
		hands[i] = fmt.Sprintf("hand-%d", i+1)
		hand, err := pile.New(pile.WithInvariant(pile.All(pile.MaxCount(handSize), pile.NoDuplicates)))
		if err != nil {
			return err
		}
		if err := tb.AddZone(hands[i], hand); err != nil {
			return err
		}
	}

	rounds := min(handSize, stock.Count()/cfg.Hands)
	if err := tb.Deal("stock", rounds, hands...); err != nil {
		return err
	}
	tops := make([]*card.Card, 0, len(hands))
	for _, name := range hands {
		hand, err := tb.Zone(name)
		if err != nil {
			return err
		}
		for _, c := range hand.Each() {
			c.Turn()
		}
		if top, ok := hand.Inspect(); ok {
			tops = append(tops, top)
		}
	}
	printTable(tb)
	if best := card.Highest(tops); best >= 0 {
		fmt.Printf("%s wins with the %s\n", hands[best], tops[best].Name())
	}

	if err := tb.Gather("stock"); err != nil {
		return fmt.Errorf("gather: %w", err)
	}
	stock.ForEach(func(_ int, c *card.Card) {
		if c.IsFacingUp() {
			c.Turn()
		}
	})
	logger.Info("cards gathered", "stock", stock.Count())

	piles, err := stock.Split(cfg.Hands)
	if err != nil {
		return fmt.Errorf("split: %w", err)
	}
	for i, p := range piles {
		top, ok := p.Inspect()
		if !ok {
			fmt.Printf("pile %d: empty\n", i+1)
			continue
		}
		fmt.Printf("pile %d: %d cards, top %s (%s)\n", i+1, p.Count(), top.Unicode(), top.Name())
	}
	return nil
}

var red = color.New(color.FgRed)

// printTable writes every zone of tb to stdout, with red cards showing face
// up in red.
func printTable(tb *table.Table) {
	for _, name := range tb.Zones() {
		p, err := tb.Zone(name)
		if err != nil {
			continue
		}
		faces := make([]string, 0, p.Count())
		for _, c := range p.Each() {
			if c.IsFacingUp() && c.IsRed() {
				faces = append(faces, red.Sprint(c))
				continue
			}
			faces = append(faces, c.String())
		}
		if len(faces) == 0 {
			faces = append(faces, "(empty)")
		}
		fmt.Printf("%-8s %2d  %s\n", name, p.Count(), strings.Join(faces, " "))
	}
}
