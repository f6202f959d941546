// Package presets holds the registry of scaffold variants. A preset knows
// which template tree to copy, which questions to ask and what to tell the
// operator once the project exists.
package presets

import (
	"fmt"

	"github.com/lnsy/pochade/internal/config"
	"github.com/lnsy/pochade/internal/scaffold/prompts"
	"github.com/lnsy/pochade/internal/scaffold/types"
)

// Rename moves a file relative to the project root.
type Rename struct {
	From string
	To   string
}

// NextStep is one line of the post-scaffold summary.
type NextStep struct {
	Command string
	Comment string
}

type Preset interface {
	Name() types.Variant
	Description() string
	// TemplateRoot is the directory inside the template FS to copy.
	TemplateRoot() string
	Greeting() string
	Questions(projectName string, defaults *config.Config) []prompts.Question
	// TextExtensions is the allow-list of extensions that get token substitution.
	TextExtensions() []string
	Renames(cfg types.VariantConfig) []Rename
	NextSteps(projectName, packageManager string) []NextStep
}

// DotfileRenames restores dotfiles stored under staging names in templates.
var DotfileRenames = []Rename{
	{From: "gitignore", To: ".gitignore"},
	{From: "npmignore", To: ".npmignore"},
}

type Manager struct {
	presets map[types.Variant]Preset
	order   []types.Variant
}

func NewManager() *Manager {
	m := &Manager{
		presets: make(map[types.Variant]Preset),
	}
	for _, p := range builtInPresets {
		m.Register(p)
	}
	return m
}

// builtInPresets lists the shipped variants. The first entry is the default.
var builtInPresets = []Preset{
	NewNodePlugin(),
	NewWeb(),
}

func (m *Manager) Register(preset Preset) {
	if _, exists := m.presets[preset.Name()]; !exists {
		m.order = append(m.order, preset.Name())
	}
	m.presets[preset.Name()] = preset
}

func (m *Manager) Get(name string) (Preset, bool) {
	preset, ok := m.presets[types.Variant(name)]
	return preset, ok
}

// Resolve returns the named preset, or the default preset for "".
func (m *Manager) Resolve(name string) (Preset, error) {
	if name == "" {
		if len(m.order) == 0 {
			return nil, fmt.Errorf("no variants registered")
		}
		return m.presets[m.order[0]], nil
	}
	if preset, ok := m.Get(name); ok {
		return preset, nil
	}
	return nil, fmt.Errorf("unknown variant %q (available: %v)", name, m.Available())
}

// Available returns variant names in registration order.
func (m *Manager) Available() []string {
	names := make([]string, 0, len(m.order))
	for _, v := range m.order {
		names = append(names, string(v))
	}
	return names
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func defaultsOrBuiltIn(defaults *config.Config) *config.Config {
	if defaults == nil {
		return config.Defaults()
	}
	return defaults
}
