package presets

import (
	"path"

	"github.com/lnsy/pochade/internal/config"
	"github.com/lnsy/pochade/internal/scaffold/prompts"
	"github.com/lnsy/pochade/internal/scaffold/types"
	"github.com/lnsy/pochade/internal/scaffold/validation"
)

type NodePlugin struct{}

func NewNodePlugin() *NodePlugin {
	return &NodePlugin{}
}

func (p *NodePlugin) Name() types.Variant { return types.NodePlugin }

func (p *NodePlugin) Description() string { return "Node-RED node package" }

func (p *NodePlugin) TemplateRoot() string { return "node-plugin" }

func (p *NodePlugin) Greeting() string { return "Let's set up your Node-RED Plugin project!" }

func (p *NodePlugin) Questions(projectName string, defaults *config.Config) []prompts.Question {
	defaults = defaultsOrBuiltIn(defaults)
	return []prompts.Question{
		{Key: "project_description", Question: "Project description", Default: "A Node-RED node"},
		{Key: "node_sidebar_title", Question: "Sidebar title (category)", Default: "function"},
		{
			Key:      "node_name",
			Question: "Node name",
			Default:  prompts.DefaultNodeName(projectName),
			Validate: validation.ValidateNodeName,
		},
		{Key: "node_purpose", Question: "Node purpose", Default: "Processes messages"},
		{Key: "author_name", Question: "Author name", Default: defaults.AuthorName},
		{Key: "license", Question: "License", Default: orDefault(defaults.License, config.DefaultLicense)},
	}
}

func (p *NodePlugin) TextExtensions() []string {
	return []string{".js", ".html", ".json", ".md"}
}

// Renames restores dotfiles and renames the sample node pair after the node.
func (p *NodePlugin) Renames(cfg types.VariantConfig) []Rename {
	renames := append([]Rename{}, DotfileRenames...)

	np, ok := cfg.(*types.NodePluginConfig)
	if !ok || np.NodeName == "" {
		return renames
	}
	return append(renames,
		Rename{From: path.Join("src", "sample.js"), To: path.Join("src", np.NodeName+".js")},
		Rename{From: path.Join("src", "sample.html"), To: path.Join("src", np.NodeName+".html")},
	)
}

func (p *NodePlugin) NextSteps(projectName, packageManager string) []NextStep {
	pm := orDefault(packageManager, config.DefaultPackageManager)
	return []NextStep{
		{Command: "cd " + projectName},
		{Command: pm + " run install-plugin", Comment: "Installs this node to your local Node-RED"},
		{Command: pm + " run watch", Comment: "Develop with auto-restart"},
	}
}
