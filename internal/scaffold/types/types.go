package types

import (
	"context"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Variant names a scaffold flavour.
type Variant string

const (
	NodePlugin Variant = "node-plugin"
	Web        Variant = "web"
)

// State is a stage of a scaffold run.
type State string

const (
	ValidatingName         State = "ValidatingName"
	CheckingTarget         State = "CheckingTarget"
	Prompting              State = "Prompting"
	CopyingTemplate        State = "CopyingTemplate"
	RenamingEntryFiles     State = "RenamingEntryFiles"
	TransformingTree       State = "TransformingTree"
	PatchingManifest       State = "PatchingManifest"
	InstallingDependencies State = "InstallingDependencies"
	Done                   State = "Done"
)

// Pipeline is the fixed order a scaffold run moves through.
var Pipeline = []State{
	ValidatingName,
	CheckingTarget,
	Prompting,
	CopyingTemplate,
	RenamingEntryFiles,
	TransformingTree,
	PatchingManifest,
	InstallingDependencies,
	Done,
}

// VariantConfig is the typed configuration collected for one variant.
type VariantConfig interface {
	Variant() Variant
	// ToTokens returns the placeholder vocabulary for template files.
	ToTokens() map[string]string
}

// NodePluginConfig is collected for the node-plugin variant.
type NodePluginConfig struct {
	ProjectName        string `mapstructure:"project_name"`
	ProjectDescription string `mapstructure:"project_description"`
	NodeSidebarTitle   string `mapstructure:"node_sidebar_title"`
	NodeName           string `mapstructure:"node_name"`
	NodePurpose        string `mapstructure:"node_purpose"`
	AuthorName         string `mapstructure:"author_name"`
	License            string `mapstructure:"license"`
}

func (c *NodePluginConfig) Variant() Variant { return NodePlugin }

func (c *NodePluginConfig) ToTokens() map[string]string {
	return map[string]string{
		"project_name":        c.ProjectName,
		"project_description": c.ProjectDescription,
		"node_sidebar_title":  c.NodeSidebarTitle,
		"node_name":           c.NodeName,
		"node_purpose":        c.NodePurpose,
		"author_name":         c.AuthorName,
		"license":             c.License,
	}
}

// WebConfig is collected for the web variant.
type WebConfig struct {
	ProjectName        string `mapstructure:"project_name"`
	ProjectDescription string `mapstructure:"project_description"`
	AuthorName         string `mapstructure:"author_name"`
	AuthorEmail        string `mapstructure:"author_email"`
	GitHubUsername     string `mapstructure:"github_username"`
	License            string `mapstructure:"license"`
}

func (c *WebConfig) Variant() Variant { return Web }

func (c *WebConfig) ToTokens() map[string]string {
	return map[string]string{
		"project_name":        c.ProjectName,
		"project_description": c.ProjectDescription,
		"author_name":         c.AuthorName,
	}
}

// DecodeConfig decodes a flat answer mapping into the variant's typed
// config. Every field must be present in values.
func DecodeConfig(variant Variant, values map[string]string) (VariantConfig, error) {
	var target VariantConfig
	switch variant {
	case NodePlugin:
		target = &NodePluginConfig{}
	case Web:
		target = &WebConfig{}
	default:
		return nil, fmt.Errorf("unknown variant %q", variant)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      target,
		ErrorUnset:  true,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating decoder: %w", err)
	}
	if err := decoder.Decode(values); err != nil {
		return nil, fmt.Errorf("decoding %s config: %w", variant, err)
	}

	return target, nil
}

// ScaffoldContext carries the state of one scaffold run between steps.
type ScaffoldContext struct {
	ProjectName    string
	TargetDir      string
	Variant        Variant
	PackageManager string
	Answers        map[string]string
	Config         VariantConfig
}

// Tokens returns the placeholder vocabulary, or an empty map before prompting.
func (ctx *ScaffoldContext) Tokens() map[string]string {
	if ctx.Config == nil {
		return map[string]string{}
	}
	return ctx.Config.ToTokens()
}

type PromptMode struct {
	Interactive   bool // terminal attached
	NoInteractive bool
	CI            bool
}

func (p PromptMode) Allow() bool {
	if p.NoInteractive || p.CI {
		return false
	}
	return p.Interactive
}

type StepOptions struct {
	DryRun      bool
	Verbose     bool
	Quiet       bool
	SkipInstall bool
}

type ScaffoldStep interface {
	Name() string
	Run(ctx context.Context, sc *ScaffoldContext, opts StepOptions) error
	Condition(sc *ScaffoldContext, opts StepOptions) bool
}
