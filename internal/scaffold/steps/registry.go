package steps

import (
	"fmt"
	"sort"

	"github.com/lnsy/pochade/internal/scaffold/types"
)

type StepFactory func(env *Env) types.ScaffoldStep

var registry = make(map[string]StepFactory)

func Register(name string, factory StepFactory) {
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("step %q already registered", name))
	}
	registry[name] = factory
}

func Create(name string, env *Env) (types.ScaffoldStep, error) {
	if factory, ok := registry[name]; ok {
		return factory(env), nil
	}
	return nil, fmt.Errorf("unknown step %q (available: %v)", name, ListRegistered())
}

func ListRegistered() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(string(types.ValidatingName), func(env *Env) types.ScaffoldStep {
		return NewValidateNameStep(env)
	})
	Register(string(types.CheckingTarget), func(env *Env) types.ScaffoldStep {
		return NewCheckTargetStep(env)
	})
	Register(string(types.Prompting), func(env *Env) types.ScaffoldStep {
		return NewPromptStep(env)
	})
	Register(string(types.CopyingTemplate), func(env *Env) types.ScaffoldStep {
		return NewCopyTemplateStep(env)
	})
	Register(string(types.RenamingEntryFiles), func(env *Env) types.ScaffoldStep {
		return NewRenameStep(env)
	})
	Register(string(types.TransformingTree), func(env *Env) types.ScaffoldStep {
		return NewTransformStep(env)
	})
	Register(string(types.PatchingManifest), func(env *Env) types.ScaffoldStep {
		return NewManifestStep(env)
	})
	Register(string(types.InstallingDependencies), func(env *Env) types.ScaffoldStep {
		return NewInstallStep(env)
	})
	Register(string(types.Done), func(env *Env) types.ScaffoldStep {
		return NewDoneStep(env)
	})
}
