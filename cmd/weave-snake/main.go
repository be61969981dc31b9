// Command weave-snake plays the snake mini game in a terminal
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/lixenwraith/weave/audio"
	"github.com/lixenwraith/weave/config"
	"github.com/lixenwraith/weave/core"
	"github.com/lixenwraith/weave/snake"
)

const (
	logDir      = "logs"
	logFileName = "weave-snake.log"
)

var (
	presetFlag = flag.String("preset", "", "Snake preset: grid or elastic (default from config)")
	configFlag = flag.String("config", "", "TOML config file")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 uses the config seed")
	muteFlag   = flag.Bool("mute", false, "Start with sound off")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/weave-snake.log")
)

func main() {
	flag.Parse()

	if f := core.SetupLogging(*debugFlag, logDir, logFileName); f != nil {
		defer f.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "weave-snake: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	preset := cfg.Snake.PresetValue()
	if *presetFlag != "" {
		p, ok := snake.ParsePreset(*presetFlag)
		if !ok {
			return errors.Errorf("unknown preset %q", *presetFlag)
		}
		preset = p
	}
	seed := cfg.Render.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}

	player := audio.NewPlayer(cfg.Audio.Player())
	if *muteFlag {
		player.SetMuted(true)
	}
	if err := player.Start(); err != nil {
		core.Logger().Warn("audio start failed", "error", err)
	}
	defer player.Stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer screen.Fini()

	core.RegisterCrashTerminal(screen)
	defer core.RegisterCrashTerminal(nil)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))

	game := snake.New(preset, seed, snake.WithSounder(player))
	h := newHost(screen, game, cfg.Render.TickInterval)
	h.player = player
	defer h.close()
	defer game.Dispose()

	core.Logger().Info("snake started", "preset", preset, "seed", seed)
	return h.run()
}
