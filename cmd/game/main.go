// cmd/game/main.go
package main

import (
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-tank-arena/internal/app"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"
)

const (
	startFromGame = false // true skips the title screen
	playerName    = "Troy"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := config.Load("."); err != nil {
		log.WithError(err).Warn("Using default settings")
	}
	level, err := log.ParseLevel(config.LogLevel())
	if err != nil {
		log.WithError(err).Warn("Unknown log level, keeping info")
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if level >= log.DebugLevel {
		go func() {
			log.Println(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	arena := config.ArenaSettings()
	if arena.Seed == 0 {
		arena.Seed = uint64(time.Now().UnixNano())
		log.WithField("seed", arena.Seed).Info("Seed 0 configured, using a time-based seed")
	}
	tanks := config.TankSettings()
	face := basicfont.Face7x13

	sm := state.NewStateMachine()
	start := func() (state.State, error) {
		world, err := app.NewWorld(app.Options{
			Arena:   arena,
			MaxAmmo: tanks.MaxAmmo,
			Logger:  log.StandardLogger(),
		})
		if err != nil {
			return nil, err
		}
		player, err := world.SpawnArmy(playerName, tanks.AICount)
		if err != nil {
			return nil, err
		}
		return state.NewGameState(sm, world, player, face, log.StandardLogger()), nil
	}

	if startFromGame {
		gs, err := start()
		if err != nil {
			log.WithError(err).Fatal("Could not start the round")
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, start, face))
	}

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tanks")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
