// Package project holds the in-memory file tree of an open project.
//
// A Project is treated as a value: Edit returns a new Project sharing every
// node except the edited one, so a snapshot handed to a build never changes
// underneath it.
package project

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// NodeKind distinguishes files from folders.
type NodeKind string

const (
	KindFile   NodeKind = "file"
	KindFolder NodeKind = "folder"
)

// RootID is the id of every template's root folder.
const RootID = "root"

// DefaultFileID is the file opened when a project is created.
const DefaultFileID = "prog"

// FileNode is a file or folder. Children is only populated for folders and
// Content is only meaningful for files.
type FileNode struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Kind     NodeKind `json:"type"`
	Content  string   `json:"content,omitempty"`
	ParentID string   `json:"parentId,omitempty"` // "" for the root
	Children []string `json:"children,omitempty"`
}

// IsFolder reports whether n is a folder.
func (n *FileNode) IsFolder() bool {
	return n.Kind == KindFolder
}

func (n *FileNode) clone() *FileNode {
	c := *n
	c.Children = append([]string(nil), n.Children...)
	return &c
}

// Project is an open project.
type Project struct {
	ID       string
	Name     string
	Template TemplateKind
	Files    map[string]*FileNode
	RootID   string
}

// New creates a project from a deep copy of the template's files.
func New(kind TemplateKind) (*Project, error) {
	t := GetTemplate(kind)
	if t == nil {
		return nil, fmt.Errorf("unknown template %q", kind)
	}

	files := make(map[string]*FileNode, len(t.files))
	for _, n := range t.files {
		files[n.ID] = n.clone()
	}

	return &Project{
		ID:       uuid.New().String(),
		Name:     defaultName(kind),
		Template: kind,
		Files:    files,
		RootID:   RootID,
	}, nil
}

// defaultName builds "My<Kind>App" with the first letter of kind upper-cased.
func defaultName(kind TemplateKind) string {
	r := []rune(string(kind))
	if len(r) > 0 {
		r[0] = unicode.ToUpper(r[0])
	}
	return "My" + string(r) + "App"
}

// IsWeb reports whether the project shows a preview column.
func (p *Project) IsWeb() bool {
	return p.Template.IsWeb()
}

// Root returns the root folder.
func (p *Project) Root() *FileNode {
	return p.Files[p.RootID]
}

// Get returns the node with id, or nil.
func (p *Project) Get(id string) *FileNode {
	return p.Files[id]
}

// Selectable reports whether id names a file that can become the active file.
func (p *Project) Selectable(id string) bool {
	n := p.Files[id]
	return n != nil && n.Kind == KindFile
}

// Edit returns a copy of p in which only the content of file id differs.
// p itself is left unchanged. Editing a folder or an unknown id returns p.
func (p *Project) Edit(id, content string) *Project {
	n := p.Files[id]
	if n == nil || n.Kind != KindFile {
		return p
	}

	files := make(map[string]*FileNode, len(p.Files))
	for k, v := range p.Files {
		files[k] = v
	}
	edited := n.clone()
	edited.Content = content
	files[id] = edited

	next := *p
	next.Files = files
	return &next
}

// Path returns the slash-joined path of id starting at the root folder name.
func (p *Project) Path(id string) string {
	var parts []string
	for n := p.Files[id]; n != nil; n = p.Files[n.ParentID] {
		parts = append(parts, n.Name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}

// SourceFile is a file with its full path.
type SourceFile struct {
	ID      string
	Path    string
	Content string
}

// SourceFiles returns every file ordered by path.
func (p *Project) SourceFiles() []SourceFile {
	var out []SourceFile
	for id, n := range p.Files {
		if n.Kind != KindFile {
			continue
		}
		out = append(out, SourceFile{ID: id, Path: p.Path(id), Content: n.Content})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Row is one visible line of the file tree.
type Row struct {
	Node  *FileNode
	Depth int
	Open  bool
}

// Walk returns the visible rows depth-first, in children order. A folder's
// children are listed only if open(folderID) is true.
func (p *Project) Walk(open func(id string) bool) []Row {
	var rows []Row
	var visit func(id string, depth int)
	visit = func(id string, depth int) {
		n := p.Files[id]
		if n == nil {
			return
		}
		isOpen := n.IsFolder() && open(id)
		rows = append(rows, Row{Node: n, Depth: depth, Open: isOpen})
		if !isOpen {
			return
		}
		for _, child := range n.Children {
			visit(child, depth+1)
		}
	}
	visit(p.RootID, 0)
	return rows
}

// Validate checks the tree invariants: exactly one root, every non-root node
// listed in exactly one parent's children, children only on folders.
func (p *Project) Validate() error {
	root := p.Files[p.RootID]
	if root == nil {
		return fmt.Errorf("root %q missing", p.RootID)
	}

	listed := make(map[string]int)
	for id, n := range p.Files {
		if n.ID != id {
			return fmt.Errorf("node %q stored under key %q", n.ID, id)
		}
		if n.ParentID == "" && id != p.RootID {
			return fmt.Errorf("second root %q", id)
		}
		if n.Kind == KindFile && len(n.Children) > 0 {
			return fmt.Errorf("file %q has children", id)
		}
		for _, c := range n.Children {
			child := p.Files[c]
			if child == nil {
				return fmt.Errorf("folder %q lists missing child %q", id, c)
			}
			if child.ParentID != id {
				return fmt.Errorf("child %q of %q points at parent %q", c, id, child.ParentID)
			}
			listed[c]++
		}
	}

	for id := range p.Files {
		if id == p.RootID {
			continue
		}
		if listed[id] != 1 {
			return fmt.Errorf("node %q listed %d times", id, listed[id])
		}
	}
	return nil
}
