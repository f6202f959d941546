package template

import (
	"fmt"
	"path/filepath"

	"github.com/lnsy/pochade/internal/fs"
)

// Kind classifies an entry of a project tree.
type Kind int

const (
	Directory Kind = iota
	AllowListedFile
	OpaqueFile
)

func (k Kind) String() string {
	switch k {
	case Directory:
		return "directory"
	case AllowListedFile:
		return "allow-listed file"
	case OpaqueFile:
		return "opaque file"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Classify decides how an entry is treated. Files are allow-listed when
// their extension appears in allowList, compared case-sensitively;
// everything else passes through.
func Classify(name string, isDir bool, allowList []string) Kind {
	if isDir {
		return Directory
	}
	ext := filepath.Ext(name)
	if ext == "" {
		return OpaqueFile
	}
	for _, allowed := range allowList {
		if ext == allowed {
			return AllowListedFile
		}
	}
	return OpaqueFile
}

// Node is a single visited entry.
type Node struct {
	Path string
	Kind Kind
}

// Visitor is called once per entry below the walk root.
type Visitor func(node Node) error

// Walk visits every entry below root depth-first. Directories are visited
// before their children. The root itself is not visited.
func Walk(fsys fs.FS, root string, allowList []string, visit Visitor) error {
	names, err := fsys.ReadDir(root)
	if err != nil {
		return fmt.Errorf("listing %s: %w", root, err)
	}

	for _, name := range names {
		p := filepath.Join(root, name)
		info, err := fsys.Stat(p)
		if err != nil {
			return fmt.Errorf("stat %s: %w", p, err)
		}

		kind := Classify(name, info.IsDir(), allowList)
		if err := visit(Node{Path: p, Kind: kind}); err != nil {
			return err
		}
		if kind == Directory {
			if err := Walk(fsys, p, allowList, visit); err != nil {
				return err
			}
		}
	}

	return nil
}

// Report summarises a Transform run.
type Report struct {
	Substituted []string
	Opaque      []string
	// Orphans maps a file path to the unknown token keys it contained.
	Orphans map[string][]string
}

// Transform substitutes tokens in place in every allow-listed file below
// root. Opaque files are never read or written.
func Transform(fsys fs.FS, root string, tokens map[string]string, allowList []string) (*Report, error) {
	report := &Report{Orphans: make(map[string][]string)}

	err := Walk(fsys, root, allowList, func(node Node) error {
		switch node.Kind {
		case OpaqueFile:
			report.Opaque = append(report.Opaque, node.Path)
		case AllowListedFile:
			data, err := fsys.ReadFile(node.Path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", node.Path, err)
			}
			text := string(data)
			if orphans := Orphans(text, tokens); len(orphans) > 0 {
				report.Orphans[node.Path] = orphans
			}
			if err := fsys.WriteFile(node.Path, []byte(Substitute(text, tokens)), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", node.Path, err)
			}
			report.Substituted = append(report.Substituted, node.Path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}
