package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lnsy/pochade/internal/config"
	"github.com/lnsy/pochade/internal/scaffold/types"
)

func keys(p Preset, project string, defaults *config.Config) []string {
	var out []string
	for _, q := range p.Questions(project, defaults) {
		out = append(out, q.Key)
	}
	return out
}

func TestManager(t *testing.T) {
	m := NewManager()

	assert.Equal(t, []string{"node-plugin", "web"}, m.Available())

	p, err := m.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, types.NodePlugin, p.Name())

	p, err = m.Resolve("web")
	require.NoError(t, err)
	assert.Equal(t, types.Web, p.Name())

	_, err = m.Resolve("desktop")
	assert.ErrorContains(t, err, "unknown variant")

	_, ok := m.Get("node-plugin")
	assert.True(t, ok)
}

func TestManager_RegisterReplaces(t *testing.T) {
	m := NewManager()
	m.Register(NewWeb())
	assert.Equal(t, []string{"node-plugin", "web"}, m.Available())
}

func TestNodePlugin_Questions(t *testing.T) {
	p := NewNodePlugin()

	assert.Equal(t, []string{
		"project_description",
		"node_sidebar_title",
		"node_name",
		"node_purpose",
		"author_name",
		"license",
	}, keys(p, "node-red-contrib-filter", nil))

	qs := p.Questions("node-red-contrib-filter", &config.Config{AuthorName: "Ada"})
	assert.Equal(t, "filter", qs[2].Default)
	require.NotNil(t, qs[2].Validate)
	assert.Error(t, qs[2].Validate("Bad_Name"))
	assert.Equal(t, "Ada", qs[4].Default)
	assert.Equal(t, "MIT", qs[5].Default)
}

func TestNodePlugin_Renames(t *testing.T) {
	p := NewNodePlugin()

	renames := p.Renames(&types.NodePluginConfig{NodeName: "my-filter"})
	assert.Equal(t, []Rename{
		{From: "gitignore", To: ".gitignore"},
		{From: "npmignore", To: ".npmignore"},
		{From: "src/sample.js", To: "src/my-filter.js"},
		{From: "src/sample.html", To: "src/my-filter.html"},
	}, renames)

	assert.Len(t, DotfileRenames, 2, "shared table must not be mutated")
}

func TestWeb(t *testing.T) {
	p := NewWeb()

	assert.Equal(t, []string{
		"project_description",
		"author_name",
		"author_email",
		"github_username",
		"license",
	}, keys(p, "site", nil))

	qs := p.Questions("site", &config.Config{GitHubUsername: "ada", License: "Apache-2.0"})
	assert.Equal(t, "ada", qs[3].Default)
	assert.Equal(t, "Apache-2.0", qs[4].Default)

	assert.Equal(t, []string{".html"}, p.TextExtensions())
	assert.Equal(t, DotfileRenames, p.Renames(nil))
}

func TestNextSteps(t *testing.T) {
	steps := NewNodePlugin().NextSteps("my-app", "")
	assert.Equal(t, "cd my-app", steps[0].Command)
	assert.Equal(t, "npm run install-plugin", steps[1].Command)
	assert.Equal(t, "npm run watch", steps[2].Command)

	steps = NewWeb().NextSteps("site", "pnpm")
	assert.Equal(t, []string{"cd site", "pnpm run dev", "pnpm run build"},
		[]string{steps[0].Command, steps[1].Command, steps[2].Command})
}
