package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"

	"balatro-spectator/internal/config"
	"balatro-spectator/internal/service/advisor"
	"balatro-spectator/internal/service/engine"
	"balatro-spectator/internal/service/input"
	appErr "balatro-spectator/pkg/errors"
	"balatro-spectator/pkg/logger"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const (
	optionLoad   = "[1] Load State from JSON"
	optionManual = "[2] Manual Input (Quick)"
	optionQuit   = "[q] Quit"
)

func main() {
	var (
		levelsPath  string
		maxHandSize int
	)
	flag.StringVar(&levelsPath, "levels", "", "YAML file overriding hand levels")
	flag.IntVar(&maxHandSize, "max-hand", 12, "largest hand the advisor will search")
	flag.Parse()

	logger.InitQuiet()
	cfg := config.Default()

	levels := engine.DefaultLevels()
	if levelsPath != "" {
		loaded, err := engine.LoadLevels(levelsPath)
		if err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}
		levels = loaded
	}
	svc := advisor.NewService(
		engine.NewSearcher(engine.NewScorer(levels), engine.StandardClassifier{}),
		nil,
		advisor.Config{MaxHandSize: maxHandSize, BatchConcurrency: cfg.Batch.Concurrency},
	)

	title, _ := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Spec", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("tator", pterm.FgDarkGray.ToStyle()),
	).Srender()
	pterm.Print(title)
	pterm.Info.Println("Feed me the game state, and I'll tell you what to do.")

	for {
		choice, err := pterm.DefaultInteractiveSelect.
			WithOptions([]string{optionLoad, optionManual, optionQuit}).
			Show()
		if err != nil || choice == optionQuit {
			return
		}

		var state advisor.GameState
		switch choice {
		case optionLoad:
			state, err = promptStateFile()
		case optionManual:
			state, err = promptManual()
		}
		if err != nil {
			if errors.Is(err, appErr.ErrStateNotFound) {
				pterm.Warning.Println("File not found.")
			} else {
				pterm.Error.Println(err)
			}
			continue
		}

		rec, err := svc.Recommend(context.Background(), state)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		pterm.DefaultPanel.WithPanels([][]pterm.Panel{{recommendationPanel(rec)}}).Render()
	}
}

func promptStateFile() (advisor.GameState, error) {
	path, err := pterm.DefaultInteractiveTextInput.Show("Enter path to state.json")
	if err != nil {
		return advisor.GameState{}, err
	}
	return input.LoadState(strings.TrimSpace(path))
}

func promptManual() (advisor.GameState, error) {
	handText, err := pterm.DefaultInteractiveTextInput.Show("Enter hand (e.g. 'A of Hearts, K of Hearts')")
	if err != nil {
		return advisor.GameState{}, err
	}
	hand, err := input.ParseHand(handText)
	if err != nil {
		return advisor.GameState{}, err
	}

	state := advisor.NewGameState()
	state.Hand = hand

	required, err := pterm.DefaultInteractiveTextInput.
		WithDefaultValue("300").
		Show("Required Score")
	if err != nil {
		return advisor.GameState{}, err
	}
	if required = strings.TrimSpace(required); required != "" {
		n, err := strconv.ParseInt(required, 10, 64)
		if err != nil || n < 0 {
			return advisor.GameState{}, errors.New("required score must be a non-negative number")
		}
		state.RequiredScore = n
	}
	return state, nil
}
