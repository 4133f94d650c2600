// Package dotbot maintains a dotbot link configuration file: an ordered
// YAML sequence of task mappings. The synchronizer appends link tasks
// for newly added dotfiles while leaving every other task kind intact.
package dotbot

import (
	"bytes"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/autobot/pkg/errors"
)

// LinkTaskName is the task kind the synchronizer understands
const LinkTaskName = "link"

// Link is one destination → source mapping inside a link task
type Link struct {
	// To is the destination path, e.g. ~/.bashrc
	To string

	// From is the source file name relative to the repo, e.g. bashrc
	From string
}

// Document is a dotbot config held as a YAML node tree. Task kinds the
// synchronizer does not understand round-trip verbatim, comments
// included.
type Document struct {
	tasks *yaml.Node
}

// LoadDocument reads and parses a dotbot config file. An empty file
// loads as the empty task sequence.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path)
	}
	return parseDocument(data)
}

// parseDocument parses config bytes into a Document
func parseDocument(data []byte) (*Document, error) {
	if strings.TrimSpace(string(data)) == "" {
		return &Document{tasks: emptySequence()}, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse config file")
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return &Document{tasks: emptySequence()}, nil
	}

	tasks := root.Content[0]
	if tasks.Kind == yaml.ScalarNode && tasks.Tag == "!!null" {
		return &Document{tasks: emptySequence()}, nil
	}
	if tasks.Kind != yaml.SequenceNode {
		return nil, errors.New(errors.ErrConfigParse, "config document is not a task sequence")
	}

	return &Document{tasks: tasks}, nil
}

// TaskCount returns the number of tasks in the document
func (d *Document) TaskCount() int {
	return len(d.tasks.Content)
}

// LinkDestinations collects the destination keys of every link task in
// the document. All link tasks are scanned, not just the last one, so a
// destination introduced anywhere is never duplicated.
func (d *Document) LinkDestinations() map[string]bool {
	dests := make(map[string]bool)
	for _, task := range d.tasks.Content {
		payload := linkPayload(task)
		if payload == nil {
			continue
		}
		// Mapping node content alternates key, value
		for i := 0; i+1 < len(payload.Content); i += 2 {
			dests[payload.Content[i].Value] = true
		}
	}
	return dests
}

// AppendLinkTask appends one new link task containing the given links,
// preserving their order. Appending an empty slice is a no-op.
func (d *Document) AppendLinkTask(links []Link) {
	if len(links) == 0 {
		return
	}

	payload := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, l := range links {
		payload.Content = append(payload.Content,
			scalar(l.To),
			scalar(l.From),
		)
	}

	task := &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
		Content: []*yaml.Node{scalar(LinkTaskName), payload},
	}
	d.tasks.Content = append(d.tasks.Content, task)
}

// Marshal serializes the document in block style
func (d *Document) Marshal() ([]byte, error) {
	// A config that started out in flow style (e.g. a literal "[]")
	// would otherwise drag the appended tasks into flow style too.
	d.tasks.Style = 0

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d.tasks); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigWrite, "failed to serialize config")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigWrite, "failed to serialize config")
	}
	return buf.Bytes(), nil
}

// Save writes the document back to path, keeping the file's mode when
// it already exists.
func (d *Document) Save(path string) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}

	if err := os.WriteFile(path, data, mode); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write config file %s", path)
	}
	return nil
}

// linkPayload returns the mapping node of a link task, or nil when the
// task is not a link task.
func linkPayload(task *yaml.Node) *yaml.Node {
	if task.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(task.Content); i += 2 {
		if task.Content[i].Value == LinkTaskName && task.Content[i+1].Kind == yaml.MappingNode {
			return task.Content[i+1]
		}
	}
	return nil
}

// scalar builds a plain string scalar node
func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// emptySequence builds an empty task sequence node
func emptySequence() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
}
