package scenes

import (
	"sync"

	cfg "github.com/automoto/rollball/config"
	"github.com/automoto/rollball/systems"
	"github.com/automoto/rollball/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type SandboxScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewSandboxScene() *SandboxScene {
	return &SandboxScene{}
}

func (s *SandboxScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Background)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *SandboxScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())
	systems.RegisterInputTracker(ecs.World)

	// Clock first: everything below reads this frame's time
	ecs.AddSystem(systems.UpdateClock)

	// Input tracker must finish before the motion resolver reads the flags
	ecs.AddSystem(systems.PollKeyboard)
	ecs.AddSystem(systems.ProcessInputs)
	ecs.AddSystem(systems.UpdateSettings)

	ecs.AddSystem(systems.UpdateBalls)
	ecs.AddSystem(systems.UpdatePlatforms)
	ecs.AddSystem(systems.UpdatePhysics)

	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateHUD)
	ecs.AddSystem(systems.UpdateHeartbeat)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawPlatforms)
	ecs.AddRenderer(cfg.Default, systems.DrawBalls)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.HUD, systems.DrawHUD)

	factory.CreateScene(ecs)
	s.ecs = ecs
}
