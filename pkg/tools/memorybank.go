package tools

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
)

// MemoryBank resolves tools from a directory of note files when the registry
// misses. Each file becomes a read-only tool returning its content; the
// first non-empty line doubles as the description.
type MemoryBank struct {
	dir string
}

// NewMemoryBank creates a bank over dir. The directory need not exist yet.
func NewMemoryBank(dir string) *MemoryBank {
	return &MemoryBank{dir: dir}
}

var memoryBankExtensions = []string{".md", ".txt", ".yaml", ".yml", ".json"}

// Resolve returns a descriptor for the named note, or nil when absent.
func (m *MemoryBank) Resolve(name string) *ToolDescriptor {
	if m == nil || m.dir == "" || !validNoteName(name) {
		return nil
	}
	for _, ext := range memoryBankExtensions {
		path := filepath.Join(m.dir, name+ext)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		return m.descriptor(name, path)
	}
	return nil
}

// List returns descriptors for every note in the bank.
func (m *MemoryBank) List() []*ToolDescriptor {
	if m == nil || m.dir == "" {
		return nil
	}
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil
	}
	var out []*ToolDescriptor
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if !hasMemoryBankExtension(ext) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		out = append(out, m.descriptor(name, filepath.Join(m.dir, entry.Name())))
	}
	return out
}

func (m *MemoryBank) descriptor(name, path string) *ToolDescriptor {
	return &ToolDescriptor{
		Name:        name,
		Description: firstLine(path),
		Type:        ToolTypeFunction,
		Parameters:  map[string]any{"type": "object", "properties": map[string]any{}},
		Handler: func(ctx context.Context, _ map[string]any) (any, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			return string(data), nil
		},
	}
}

func firstLine(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(strings.TrimLeft(scanner.Text(), "# "))
		if line != "" {
			return line
		}
	}
	return ""
}

// validNoteName rejects anything that could escape the bank directory.
func validNoteName(name string) bool {
	return name != "" && !strings.ContainsAny(name, `/\`) && name != ".." && !strings.HasPrefix(name, ".")
}

func hasMemoryBankExtension(ext string) bool {
	for _, e := range memoryBankExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
