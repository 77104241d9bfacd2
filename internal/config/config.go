package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/annel0/isocity/internal/iso"
	"github.com/annel0/isocity/internal/logging"
	"github.com/annel0/isocity/internal/world"
)

// Config корневая структура конфигурации приложения.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	View      ViewConfig      `yaml:"view"`
	Sculpt    SculptConfig    `yaml:"sculpt"`
	Session   SessionConfig   `yaml:"session"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// BoardConfig задаёт размер поля и стартовый рельеф
type BoardConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Generator  string  `yaml:"generator"` // fixture | noise
	Seed       int64   `yaml:"seed"`
	NoiseScale float64 `yaml:"noise_scale"`
}

// ViewConfig задаёт окно и параметры изометрии
type ViewConfig struct {
	WindowWidth  int     `yaml:"window_width"`
	WindowHeight int     `yaml:"window_height"`
	SidebarWidth int     `yaml:"sidebar_width"`
	AngleDeg     float64 `yaml:"angle_deg"`
	GridScale    float64 `yaml:"grid_scale"`
	HeightUnit   float64 `yaml:"height_unit"`
}

// SculptConfig задаёт политику фиксации скульптора
type SculptConfig struct {
	CommitPolicy string `yaml:"commit_policy"` // atomic | partial
}

// SessionConfig задаёт начальное состояние сессии
type SessionConfig struct {
	FocalX    int    `yaml:"focal_x"`
	FocalY    int    `yaml:"focal_y"`
	StartTool string `yaml:"start_tool"` // navigation | building | terrain
}

// LoggingConfig задаёт уровни и каталог логов
type LoggingConfig struct {
	ConsoleLevel string `yaml:"console_level"`
	FileLevel    string `yaml:"file_level"`
	Dir          string `yaml:"dir"`
	// Components переопределяет консольный уровень отдельных компонентов
	Components map[string]string `yaml:"components"`
}

// MetricsConfig задаёт адрес Prometheus /metrics; пусто - выключено
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// TelemetryConfig задаёт экспорт трейсов OpenTelemetry
type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Service  string `yaml:"service"`
	Endpoint string `yaml:"endpoint"`
	Insecure bool   `yaml:"insecure"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Board: BoardConfig{
			Width:      100,
			Height:     100,
			Generator:  "fixture",
			Seed:       12345,
			NoiseScale: 0.05,
		},
		View: ViewConfig{
			WindowWidth:  640,
			WindowHeight: 480,
			SidebarWidth: 160,
			AngleDeg:     iso.DefaultAngleDeg,
			GridScale:    iso.DefaultGridScale,
			HeightUnit:   iso.DefaultHeightUnit,
		},
		Sculpt: SculptConfig{
			CommitPolicy: world.CommitAtomic.String(),
		},
		Session: SessionConfig{
			FocalX:    10,
			FocalY:    20,
			StartTool: "navigation",
		},
		Logging: LoggingConfig{
			ConsoleLevel: "info",
			FileLevel:    "debug",
		},
		Telemetry: TelemetryConfig{
			Service:  "isocity",
			Insecure: true,
		},
	}
}

// Load читает YAML файл конфигурации поверх значений по умолчанию.
// Если path == "", пытается прочитать путь из ENV GAME_CONFIG;
// если и он пуст, возвращает Default().
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("GAME_CONFIG")
		if path == "" {
			return Default(), nil // конфиг не задан - использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse разбирает YAML поверх значений по умолчанию и проверяет результат
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	var errs []error

	if c.Board.Width < 1 || c.Board.Height < 1 {
		errs = append(errs, fmt.Errorf("board: size must be positive, got %dx%d", c.Board.Width, c.Board.Height))
	}
	switch c.Board.Generator {
	case "fixture", "noise":
	default:
		errs = append(errs, fmt.Errorf("board: unknown generator %q", c.Board.Generator))
	}

	if c.View.WindowWidth <= c.View.SidebarWidth || c.View.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("view: window %dx%d leaves no room next to a %dpx sidebar",
			c.View.WindowWidth, c.View.WindowHeight, c.View.SidebarWidth))
	}
	if c.View.SidebarWidth < 0 {
		errs = append(errs, errors.New("view: sidebar width must not be negative"))
	}
	if err := c.Projection().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("view: %w", err))
	}

	if _, err := c.Sculpt.Policy(); err != nil {
		errs = append(errs, fmt.Errorf("sculpt: %w", err))
	}

	focal := world.Vertex{X: c.Session.FocalX, Y: c.Session.FocalY}
	if focal.X < 0 || focal.Y < 0 || focal.X > c.Board.Width || focal.Y > c.Board.Height {
		errs = append(errs, fmt.Errorf("session: focal point %v is off the board", focal))
	}
	switch c.Session.StartTool {
	case "navigation", "building", "terrain":
	default:
		errs = append(errs, fmt.Errorf("session: unknown start tool %q", c.Session.StartTool))
	}

	if _, err := logging.ParseLevel(c.Logging.ConsoleLevel); err != nil {
		errs = append(errs, fmt.Errorf("logging: console: %w", err))
	}
	if _, err := logging.ParseLevel(c.Logging.FileLevel); err != nil {
		errs = append(errs, fmt.Errorf("logging: file: %w", err))
	}

	for component, level := range c.Logging.Components {
		if _, err := logging.ParseLevel(level); err != nil {
			errs = append(errs, fmt.Errorf("logging: component %s: %w", component, err))
		}
	}

	if c.Telemetry.Enabled && c.Telemetry.Service == "" {
		errs = append(errs, errors.New("telemetry: service name is required when enabled"))
	}

	return errors.Join(errs...)
}

// Projection возвращает параметры изометрии
func (c *Config) Projection() iso.Params {
	return iso.Params{
		AngleDeg:   c.View.AngleDeg,
		GridScale:  c.View.GridScale,
		HeightUnit: c.View.HeightUnit,
	}
}

// ViewportSize возвращает размер области мира без боковой панели
func (v ViewConfig) ViewportSize() (int, int) {
	return v.WindowWidth - v.SidebarWidth, v.WindowHeight
}

// Policy разбирает политику фиксации
func (s SculptConfig) Policy() (world.CommitPolicy, error) {
	return world.ParseCommitPolicy(s.CommitPolicy)
}

// NewGenerator создаёт генератор стартового рельефа
func (b BoardConfig) NewGenerator() world.Generator {
	if b.Generator == "noise" {
		return world.NewNoiseGenerator(b.Seed, b.NoiseScale)
	}
	return world.FixtureGenerator{}
}

// LoggingOptions переводит секцию логирования в параметры логгеров.
// Уровни уже проверены Validate.
func (l LoggingConfig) LoggingOptions() logging.Options {
	console, _ := logging.ParseLevel(l.ConsoleLevel)
	file, _ := logging.ParseLevel(l.FileLevel)
	return logging.Options{
		Dir:          l.Dir,
		ConsoleLevel: console,
		FileLevel:    file,
	}
}

// ApplyComponentLevels передаёт переопределения уровней менеджеру логгеров
func (l LoggingConfig) ApplyComponentLevels(lm *logging.LoggerManager) {
	file, _ := logging.ParseLevel(l.FileLevel)
	for component, level := range l.Components {
		console, _ := logging.ParseLevel(level)
		lm.Override(component, console, file)
	}
}
