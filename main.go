package main

import (
	"flag"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hop/viewport"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	debug := flag.Bool("debug", false, "show the debug HUD and log at debug level")
	logLevel := flag.String("log-level", "info", "log level: trace, debug, info, warn, error")
	tuningPath := flag.String("tuning", "", "player tuning YAML (default prefabs/player.yaml, embedded copy as fallback)")
	spritePath := flag.String("sprite", "", "sprite sheet PNG, overrides the tuning file")
	scriptName := flag.String("script", "", "tengo input script: a path or an embedded name such as autopilot")
	touch := flag.String("touch", "auto", "touch controls: auto, on, off")
	joystick := flag.Bool("joystick", false, "use a drag joystick instead of left/right buttons")
	orientationLock := flag.Bool("orientation-lock", true, "pause touch devices held in portrait")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	setupLogging(*logLevel, *debug)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w*2/3, h*2/3)
	ebiten.SetWindowTitle("hop")

	game, err := NewGame(Options{
		Debug:           *debug,
		TuningPath:      *tuningPath,
		SpritePath:      *spritePath,
		Script:          *scriptName,
		Touch:           viewport.ParseTouchMode(*touch),
		Joystick:        *joystick,
		OrientationLock: *orientationLock,
		Mobile:          runtime.GOOS == "android" || runtime.GOOS == "ios",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}

func setupLogging(level string, debug bool) {
	var actual zerolog.Level
	switch strings.ToUpper(level) {
	case "TRACE":
		actual = zerolog.TraceLevel
	case "DEBUG":
		actual = zerolog.DebugLevel
	case "WARN":
		actual = zerolog.WarnLevel
	case "ERROR":
		actual = zerolog.ErrorLevel
	default:
		actual = zerolog.InfoLevel
	}
	if debug && actual > zerolog.DebugLevel {
		actual = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(actual)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
	}).With().Timestamp().Logger()

	log.Info().Str("loglevel", actual.String()).Msg("logging set up")
}
