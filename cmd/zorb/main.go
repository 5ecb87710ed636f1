package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zorbgame/zorb/internal/config"
	"github.com/zorbgame/zorb/internal/game"
	"github.com/zorbgame/zorb/internal/input"
	"github.com/zorbgame/zorb/internal/render/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := "config/zorb.toml"
	if p := os.Getenv("ZORB_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	if stop := startProfile(cfg.Profile); stop != nil {
		defer stop()
	}

	// 3. Open the terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.SetTitle(cfg.Window.Title)
	canvas := term.NewCanvas(screen, cfg.Render.CellWidth, cfg.Render.CellHeight)

	// 4. Load the game
	g, err := game.Init(game.Options{Config: cfg, Textures: term.Loader{}, Log: log})
	if err != nil {
		return fmt.Errorf("init game: %w", err)
	}
	defer g.Close()

	// 5. Pump terminal events on their own goroutine
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Loop.FrameRate)
	defer ticker.Stop()

	log.Info("game loop started", zap.Duration("frame_rate", cfg.Loop.FrameRate))

	var in input.State
	start := time.Now()
	last := uint64(0)
	frames := 0
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
				continue
			}
			canvas.Apply(&in, ev, uint64(time.Since(start).Milliseconds()))
		case <-ticker.C:
			now := uint64(time.Since(start).Milliseconds())
			w, h := canvas.ScreenSize()
			if w == 0 || h == 0 {
				w, h = cfg.Window.Width, cfg.Window.Height
			}

			canvas.Clear()
			running, err := g.Step(game.Frame{
				NowMs:   now,
				DeltaMs: now - last,
				ScreenW: w,
				ScreenH: h,
				Input:   &in,
				Canvas:  canvas,
			})
			if err != nil {
				log.Error("frame failed", zap.Uint64("now_ms", now), zap.Error(err))
			}
			if !running {
				log.Info("quit requested", zap.Uint64("frames", g.Frames()))
				return nil
			}
			screen.Show()
			in.ReleaseKeys(now)
			last = now

			frames++
			if cfg.Loop.MaxFrames > 0 && frames >= cfg.Loop.MaxFrames {
				log.Info("frame limit reached", zap.Int("frames", frames))
				return nil
			}
		case sig := <-shutdownCh:
			log.Info("shutdown signal", zap.String("signal", sig.String()))
			return nil
		}
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		if cfg.File == "" {
			zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	// the terminal belongs to the game while it runs
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
		zapCfg.ErrorOutputPaths = []string{cfg.File}
	}

	return zapCfg.Build()
}

// startProfile starts the configured profile and returns its stop function,
// or nil when profiling is off.
func startProfile(cfg config.ProfileConfig) func() {
	var mode func(*profile.Profile)
	switch cfg.Mode {
	case config.ProfileCPU:
		mode = profile.CPUProfile
	case config.ProfileMem:
		mode = profile.MemProfileAllocs
	case config.ProfileTrace:
		mode = profile.TraceProfile
	default:
		return nil
	}
	return profile.Start(mode, profile.ProfilePath(cfg.Path), profile.NoShutdownHook, profile.Quiet).Stop
}
