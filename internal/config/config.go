package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/Lkuropatkina/HSEproject/internal/parser"
)

// FileName — имя манифеста, который ищет Discover.
const FileName = "calc.toml"

// Режимы вычисления ([eval].mode).
const (
	ModeIEEE   = "ieee"
	ModeStrict = "strict"
)

// Режимы раскраски вывода ([output].color).
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// Config — настройки из calc.toml. Флаги CLI имеют приоритет над манифестом.
type Config struct {
	Eval   EvalConfig
	Output OutputConfig

	// Path — путь загруженного манифеста, пустой для Default.
	Path string
}

type EvalConfig struct {
	Mode     string
	MaxDepth uint
}

type OutputConfig struct {
	Color string
	TeX   bool
}

// Strict сообщает, выбран ли строгий режим вычисления.
func (c *Config) Strict() bool {
	return c.Eval.Mode == ModeStrict
}

// Default возвращает настройки, действующие без манифеста.
func Default() *Config {
	return &Config{
		Eval: EvalConfig{
			Mode:     ModeIEEE,
			MaxDepth: parser.DefaultMaxDepth,
		},
		Output: OutputConfig{
			Color: ColorAuto,
		},
	}
}

// Файловая форма манифеста. Секции и ключи необязательны, поэтому
// поверх Default накладываются только явно заданные значения.
type fileConfig struct {
	Eval struct {
		Mode     string `toml:"mode"`
		MaxDepth uint   `toml:"max-depth"`
	} `toml:"eval"`
	Output struct {
		Color string `toml:"color"`
		TeX   bool   `toml:"tex"`
	} `toml:"output"`
}

// Load читает calc.toml по указанному пути.
func Load(path string) (*Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	cfg := Default()
	cfg.Path = path

	if meta.IsDefined("eval", "mode") {
		switch raw.Eval.Mode {
		case ModeIEEE, ModeStrict:
			cfg.Eval.Mode = raw.Eval.Mode
		default:
			return nil, fmt.Errorf("%s: [eval].mode must be %q or %q, got %q",
				path, ModeIEEE, ModeStrict, raw.Eval.Mode)
		}
	}
	if meta.IsDefined("eval", "max-depth") {
		if raw.Eval.MaxDepth == 0 {
			return nil, fmt.Errorf("%s: [eval].max-depth must be positive", path)
		}
		cfg.Eval.MaxDepth = raw.Eval.MaxDepth
	}
	if meta.IsDefined("output", "color") {
		switch raw.Output.Color {
		case ColorAuto, ColorOn, ColorOff:
			cfg.Output.Color = raw.Output.Color
		default:
			return nil, fmt.Errorf("%s: [output].color must be %q, %q or %q, got %q",
				path, ColorAuto, ColorOn, ColorOff, raw.Output.Color)
		}
	}
	if meta.IsDefined("output", "tex") {
		cfg.Output.TeX = raw.Output.TeX
	}
	return cfg, nil
}
