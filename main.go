package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"snake-classic/ai"
	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/ui/terminal"
	"snake-classic/ui/window"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"
)

const windowTitle = "Snake"

func main() {
	defaults := types.DefaultConfig()
	cellSize := flag.Int("cell", defaults.CellSize, "Cell size in pixels")
	width := flag.Int("width", defaults.FieldWidth, "Field width in cells")
	height := flag.Int("height", defaults.FieldHeight, "Field height in cells")
	tickRate := flag.Int("tick", defaults.TickRate, "Simulation ticks per second")
	seed := flag.Uint64("seed", 0, "Random seed for food placement (0 = time based)")
	uiMode := flag.String("ui", "window", "Front end: window or terminal")
	autopilot := flag.Bool("autopilot", false, "Let the computer steer")
	logPath := flag.String("log", "", "Log file (default stderr; discarded in terminal mode)")
	flag.Parse()

	closeLog, err := setupLog(*logPath, *uiMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := types.Config{
		CellSize:    *cellSize,
		FieldWidth:  *width,
		FieldHeight: *height,
		TickRate:    *tickRate,
	}

	if err := run(cfg, *seed, *uiMode, *autopilot); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

// setupLog points the standard logger at path. Without a path the terminal
// front end discards log lines, since stderr shares the screen.
func setupLog(path, uiMode string) (func(), error) {
	if path == "" {
		if uiMode == "terminal" {
			log.SetOutput(io.Discard)
		}
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

func run(cfg types.Config, seed uint64, uiMode string, autopilot bool) error {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g, err := game.New(cfg, rand.New(rand.NewSource(seed)), seed)
	if err != nil {
		return err
	}
	log.Printf("session %s: %dx%d field, %d ticks/s, seed %d", g.UUID, cfg.FieldWidth, cfg.FieldHeight, cfg.TickRate, seed)

	var pilot *ai.Autopilot
	if autopilot {
		pilot = ai.NewAutopilot(g.Grid)
	}

	switch uiMode {
	case "window":
		err = runWindow(g, pilot)
	case "terminal":
		err = runTerminal(g, pilot)
	default:
		return fmt.Errorf("unknown ui %q (want window or terminal)", uiMode)
	}

	stats := g.GetStats()
	log.Printf("session over: best length %d, %d apples, %d collisions, %d games, %d ticks",
		stats.BestLength, stats.FoodEaten, stats.Collisions, stats.Games, stats.Ticks)
	return err
}

// step advances the game once and logs the events worth keeping.
func step(g *game.Game, intent types.Direction) game.StepResult {
	lengthBefore := g.GetSnake().Length()
	res := g.Step(intent)

	switch {
	case res.Outcome == game.Collided:
		log.Printf("collision at %v, length %d lost", g.GetSnake().GetHead(), lengthBefore)
	case res.NewBest:
		log.Printf("new best length %d", g.GetSnake().Length())
	}
	return res
}

func restart(g *game.Game) {
	g.Restart()
	log.Printf("restart: session %s", g.UUID)
}

func runWindow(g *game.Game, pilot *ai.Autopilot) error {
	renderer := window.NewRenderer(g.Grid, windowTitle)
	renderer.Open(60)
	defer renderer.Close()

	interval := g.Config.TickInterval()
	lastUpdate := time.Now()
	intent := types.None

	for !renderer.ShouldClose() {
		if window.RestartRequested() {
			restart(g)
			intent = types.None
		}
		if d := window.PollIntent(); d != types.None {
			intent = d
		}

		if time.Since(lastUpdate) >= interval {
			if pilot != nil {
				intent = pilot.Intent(g.Snapshot())
			}
			step(g, intent)
			intent = types.None
			lastUpdate = time.Now()
		}

		renderer.Draw(g.Snapshot())
	}
	return nil
}

func runTerminal(g *game.Game, pilot *ai.Autopilot) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	renderer := terminal.NewRenderer(screen, g.Grid)
	if !renderer.Fits() {
		w, h := renderer.Size()
		return fmt.Errorf("terminal too small: need %dx%d", w, h)
	}
	renderer.DrawFull(g.Snapshot())

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go terminal.PollEvents(screen, events, quit)

	ticker := time.NewTicker(g.Config.TickInterval())
	defer ticker.Stop()

	intent := types.None
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cmd, dir := terminal.TranslateKey(ev.Key(), ev.Rune())
				switch cmd {
				case terminal.CmdQuit:
					return nil
				case terminal.CmdRestart:
					restart(g)
					intent = types.None
					renderer.DrawFull(g.Snapshot())
				case terminal.CmdTurn:
					intent = dir
				}
			case *tcell.EventResize:
				screen.Sync()
				renderer.DrawFull(g.Snapshot())
			}

		case <-ticker.C:
			if pilot != nil {
				intent = pilot.Intent(g.Snapshot())
			}
			res := step(g, intent)
			intent = types.None
			renderer.Apply(res, g.Snapshot())
		}
	}
}
