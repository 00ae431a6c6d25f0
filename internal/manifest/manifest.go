// Package manifest loads a YAML task manifest into a steps definition.
//
// A manifest mirrors the three declaration shapes of pkg/steps: a
// string value is a shell command leaf, a two-element [label, command]
// sequence is a labeled leaf, and a nested mapping is a group:
//
//	fetchDeps: go mod download
//	build:
//	  compile: go build ./...
//	  test: [Run tests, go test ./...]
//
// Mapping order in the file is execution order, which is why this
// decodes yaml.Node trees instead of maps. Entries matching none of
// the three shapes are skipped, same policy as steps.Parse.
package manifest

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ShayCichocki/pacer/internal/exec"
	"github.com/ShayCichocki/pacer/pkg/steps"
)

// Load reads a manifest file and converts it to a steps definition
// whose leaves run their commands through sh in workDir.
func Load(path string, sh exec.CommandRunner, workDir string) (steps.Def, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	def, err := Parse(data, sh, workDir)
	if err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return def, nil
}

// Parse converts manifest bytes to a steps definition.
func Parse(data []byte, sh exec.CommandRunner, workDir string) (steps.Def, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return steps.Def{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("manifest root must be a mapping, got %s", kindName(root.Kind))
	}

	return buildDef(root, sh, workDir), nil
}

// buildDef walks a mapping node's key/value pairs in document order.
func buildDef(m *yaml.Node, sh exec.CommandRunner, workDir string) steps.Def {
	def := make(steps.Def, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		key := m.Content[i].Value
		val := m.Content[i+1]

		switch {
		case isCommand(val):
			def = append(def, steps.Entry{
				Key:   key,
				Value: steps.Do(commandWork(val.Value, sh, workDir)),
			})
		case isLabelPair(val):
			def = append(def, steps.Entry{
				Key:   key,
				Value: steps.Labeled(val.Content[0].Value, commandWork(val.Content[1].Value, sh, workDir)),
			})
		case val.Kind == yaml.MappingNode:
			def = append(def, steps.Entry{
				Key:   key,
				Value: steps.Group(buildDef(val, sh, workDir)),
			})
		default:
			// Unrecognized shape: dropped, matching steps.Parse.
			continue
		}
	}
	return def
}

// isCommand reports whether the node is a non-empty string scalar.
func isCommand(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!str" && strings.TrimSpace(n.Value) != ""
}

// isLabelPair reports whether the node is a [label, command] sequence.
func isLabelPair(n *yaml.Node) bool {
	return n.Kind == yaml.SequenceNode &&
		len(n.Content) == 2 &&
		n.Content[0].Kind == yaml.ScalarNode && n.Content[0].Tag == "!!str" &&
		isCommand(n.Content[1])
}

// commandWork wraps a shell command as a step work function. Command
// output is discarded on success and folded into the error on failure.
func commandWork(command string, sh exec.CommandRunner, workDir string) steps.Work {
	return func(ctx context.Context) error {
		out, err := sh.RunShell(ctx, workDir, command)
		if err != nil {
			if msg := strings.TrimSpace(string(out)); msg != "" {
				return fmt.Errorf("%s: %w", msg, err)
			}
			return err
		}
		return nil
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
