// Package manifest patches a generated project's package.json.
//
// Patching edits the document in place with gjson/sjson so that fields the
// template author ordered stay in their original order.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/lnsy/pochade/internal/scaffold/types"
)

const (
	// FileName is the manifest path relative to the project root.
	FileName = "package.json"

	// InitialVersion is written to web projects.
	InitialVersion = "0.1.0"

	githubBase = "https://github.com"
)

var ErrNotObject = errors.New("manifest is not a JSON object")

var formatOptions = &pretty.Options{Width: 0, Prefix: "", Indent: "  ", SortKeys: false}

type repository struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type bugs struct {
	URL string `json:"url"`
}

// Patch applies cfg to the manifest document and returns the formatted
// result with a trailing newline.
func Patch(data []byte, cfg types.VariantConfig) ([]byte, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parsing %s: invalid JSON", FileName)
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, ErrNotObject
	}

	p := &patcher{data: data}

	switch c := cfg.(type) {
	case *types.NodePluginConfig:
		p.set("name", c.ProjectName)
		p.set("author", c.AuthorName)
		p.set("license", c.License)
		if gjson.GetBytes(p.data, "node-red.nodes").IsObject() {
			p.setRaw("node-red.nodes", encode(map[string]string{
				c.NodeName: "src/" + c.NodeName + ".js",
			}))
		}
	case *types.WebConfig:
		p.set("name", c.ProjectName)
		p.set("license", c.License)
		p.set("version", InitialVersion)
		p.set("description", c.ProjectDescription)
		if author, ok := Author(c.AuthorName, c.AuthorEmail); ok {
			p.set("author", author)
		}
		if c.GitHubUsername != "" {
			base := RepositoryBase(c.GitHubUsername, c.ProjectName)
			p.setRaw("repository", encode(repository{Type: "git", URL: "git+" + base + ".git"}))
			p.setRaw("bugs", encode(bugs{URL: base + "/issues"}))
			p.set("homepage", base+"#readme")
		}
		p.delete("bin")
	default:
		return nil, fmt.Errorf("unsupported config type %T", cfg)
	}

	if p.err != nil {
		return nil, p.err
	}

	return Format(p.data), nil
}

// Format pretty-prints data with a 2-space indent and a trailing newline.
func Format(data []byte) []byte {
	out := pretty.PrettyOptions(data, formatOptions)
	if !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}
	return out
}

// Author composes "name <email>". ok is false when both are empty.
func Author(name, email string) (string, bool) {
	switch {
	case name == "" && email == "":
		return "", false
	case email == "":
		return name, true
	case name == "":
		return "<" + email + ">", true
	}
	return name + " <" + email + ">", true
}

// RepositoryBase returns the hosted repository URL for user/project.
func RepositoryBase(user, project string) string {
	return githubBase + "/" + user + "/" + project
}

type patcher struct {
	data []byte
	err  error
}

func (p *patcher) set(path, value string) {
	p.setRaw(path, encode(value))
}

func (p *patcher) setRaw(path string, raw []byte) {
	if p.err != nil {
		return
	}
	p.data, p.err = sjson.SetRawBytes(p.data, path, raw)
	if p.err != nil {
		p.err = fmt.Errorf("setting %s: %w", path, p.err)
	}
}

func (p *patcher) delete(path string) {
	if p.err != nil || !gjson.GetBytes(p.data, path).Exists() {
		return
	}
	p.data, p.err = sjson.DeleteBytes(p.data, path)
	if p.err != nil {
		p.err = fmt.Errorf("deleting %s: %w", path, p.err)
	}
}

// encode marshals v without HTML escaping so "<email>" survives verbatim.
func encode(v any) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		panic(fmt.Sprintf("encoding %T: %v", v, err))
	}
	return bytes.TrimRight(buf.Bytes(), "\n")
}
