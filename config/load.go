package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is tried when no explicit config path is given.
const DefaultPath = "configs/rollball.yaml"

// file mirrors the YAML layout. Each section points at the live global so
// that keys missing from the file keep their defaults.
type file struct {
	Window   *Config         `yaml:"window"`
	Ball     *BallConfig     `yaml:"ball"`
	Motion   *MotionConfig   `yaml:"motion"`
	Platform *PlatformConfig `yaml:"platform"`
	Physics  *PhysicsConfig  `yaml:"physics"`
	Camera   *CameraConfig   `yaml:"camera"`
	Debug    *DebugConfig    `yaml:"debug"`
	Input    *InputConfig    `yaml:"input"`
}

// Load overlays the YAML file at path onto the current configuration.
// Search order: path -> DefaultPath -> built-in defaults. It returns the path
// actually read, or "" when defaults were kept.
func Load(path string) (string, error) {
	if path == "" {
		if _, err := os.Stat(DefaultPath); err != nil {
			return "", Validate()
		}
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read config %s", path)
	}
	if err := Parse(data); err != nil {
		return "", errors.Wrapf(err, "config %s", path)
	}
	return path, nil
}

// Parse overlays YAML data onto the current configuration and validates it.
func Parse(data []byte) error {
	f := file{
		Window:   C,
		Ball:     &Ball,
		Motion:   &Motion,
		Platform: &Platform,
		Physics:  &Physics,
		Camera:   &Camera,
		Debug:    &Debug,
		Input:    &Input,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return errors.Wrap(err, "parse yaml")
	}
	Input.rebuild()
	return Validate()
}

// Validate rejects values the simulation cannot run with.
func Validate() error {
	switch {
	case C.TPS <= 0:
		return errors.Errorf("window.tps must be positive, got %d", C.TPS)
	case Ball.Radius <= 0:
		return errors.Errorf("ball.radius must be positive, got %g", Ball.Radius)
	case Ball.Mass <= 0:
		return errors.Errorf("ball.mass must be positive, got %g", Ball.Mass)
	case Motion.Speed <= 0:
		return errors.Errorf("motion.speed must be positive, got %g", Motion.Speed)
	case Motion.JumpCooldown < 0:
		return errors.Errorf("motion.jump_cooldown must not be negative, got %s", Motion.JumpCooldown)
	case Motion.Forward.Cross(Motion.Up).Len() == 0:
		return errors.New("motion.forward and motion.up must not be parallel")
	}
	for i, p := range Platform.Platforms {
		if p.HalfExtents.X() <= 0 || p.HalfExtents.Y() <= 0 || p.HalfExtents.Z() <= 0 {
			return errors.Errorf("platform.platforms[%d].half_extents must be positive, got %v", i, p.HalfExtents)
		}
	}
	return nil
}
