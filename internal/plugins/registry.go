package plugins

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cloudwego/eino/components/tool"
)

// ToolRegistry is the registry for all native tools.
type ToolRegistry struct {
	tools       map[string]tool.InvokableTool
	manifests   map[string]*PluginManifest // tool name → parent manifest
	specs       map[string]*ToolSpec       // tool name → specific ToolSpec
	pluginTools map[string][]string        // plugin name → tool names
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools:       make(map[string]tool.InvokableTool),
		manifests:   make(map[string]*PluginManifest),
		specs:       make(map[string]*ToolSpec),
		pluginTools: make(map[string][]string),
	}
}

// RegisterNative registers a Go-native tool with its manifest.
func (r *ToolRegistry) RegisterNative(name string, t tool.InvokableTool, manifest *PluginManifest) error {
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool %q already registered", name)
	}
	r.tools[name] = t
	r.manifests[name] = manifest
	// Find matching ToolSpec by name
	for i := range manifest.Tools {
		if manifest.Tools[i].Name == name {
			r.specs[name] = &manifest.Tools[i]
			break
		}
	}
	r.pluginTools[manifest.Name] = append(r.pluginTools[manifest.Name], name)
	return nil
}

// Tools returns all registered tools as a slice for the agent.
func (r *ToolRegistry) Tools() []tool.InvokableTool {
	result := make([]tool.InvokableTool, 0, len(r.tools))
	for _, t := range r.tools {
		result = append(result, t)
	}
	return result
}

// Tool returns the InvokableTool for a given name, or nil if not found.
func (r *ToolRegistry) Tool(name string) tool.InvokableTool {
	return r.tools[name]
}

// Manifest returns the parent manifest for a given tool name.
func (r *ToolRegistry) Manifest(name string) *PluginManifest {
	return r.manifests[name]
}

// ToolSpec returns the specific ToolSpec for a given tool name.
func (r *ToolRegistry) ToolSpec(name string) *ToolSpec {
	return r.specs[name]
}

// PluginTools returns the tool names registered by a given plugin.
func (r *ToolRegistry) PluginTools(pluginName string) []string {
	return r.pluginTools[pluginName]
}

// ToolNames returns all registered tool names.
func (r *ToolRegistry) ToolNames() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	return names
}

// AllToolDescriptions returns a map of tool name → description for
// every registered tool. Tools without a ToolSpec get an empty
// description.
func (r *ToolRegistry) AllToolDescriptions() map[string]string {
	descs := make(map[string]string, len(r.tools))
	for name := range r.tools {
		if spec, ok := r.specs[name]; ok {
			descs[name] = spec.Description
		} else {
			descs[name] = ""
		}
	}
	return descs
}

// LoadManifestsDir scans a directory for tool manifests and returns
// them, keyed by plugin name. It looks for manifest.jsonc files in
// immediate subdirectories; native tools registered later can attach
// to these manifests by name. A missing directory is not an error.
func LoadManifestsDir(dir string) (map[string]*PluginManifest, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("manifest directory not found, skipping", "dir", dir)
			return nil, nil
		}
		return nil, fmt.Errorf("read manifests dir: %w", err)
	}

	out := make(map[string]*PluginManifest)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		manifestPath := filepath.Join(dir, entry.Name(), "manifest.jsonc")
		if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
			continue
		}
		m, err := LoadManifest(manifestPath)
		if err != nil {
			slog.Warn("failed to load manifest", "name", entry.Name(), "error", err)
			continue
		}
		out[m.Name] = m
	}
	return out, nil
}
