package presets

import (
	"github.com/lnsy/pochade/internal/config"
	"github.com/lnsy/pochade/internal/scaffold/prompts"
	"github.com/lnsy/pochade/internal/scaffold/types"
)

type Web struct{}

func NewWeb() *Web {
	return &Web{}
}

func (p *Web) Name() types.Variant { return types.Web }

func (p *Web) Description() string { return "Static web project" }

func (p *Web) TemplateRoot() string { return "web" }

func (p *Web) Greeting() string { return "Let's set up your web project!" }

func (p *Web) Questions(projectName string, defaults *config.Config) []prompts.Question {
	defaults = defaultsOrBuiltIn(defaults)
	return []prompts.Question{
		{Key: "project_description", Question: "Project description", Default: "A web project"},
		{Key: "author_name", Question: "Author name", Default: defaults.AuthorName},
		{Key: "author_email", Question: "Author email", Default: defaults.AuthorEmail},
		{Key: "github_username", Question: "GitHub username", Default: defaults.GitHubUsername},
		{Key: "license", Question: "License", Default: orDefault(defaults.License, config.DefaultLicense)},
	}
}

// TextExtensions covers only the entry page; package.json is patched separately.
func (p *Web) TextExtensions() []string {
	return []string{".html"}
}

func (p *Web) Renames(types.VariantConfig) []Rename {
	return append([]Rename{}, DotfileRenames...)
}

func (p *Web) NextSteps(projectName, packageManager string) []NextStep {
	pm := orDefault(packageManager, config.DefaultPackageManager)
	return []NextStep{
		{Command: "cd " + projectName},
		{Command: pm + " run dev", Comment: "Start the development server"},
		{Command: pm + " run build", Comment: "Build for production"},
	}
}
