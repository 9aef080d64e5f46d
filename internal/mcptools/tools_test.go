package mcptools

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"depctl/internal/config"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callToolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

// resultJSON unmarshals the text content of a successful tool result.
func resultJSON(t *testing.T, result *mcp.CallToolResult) map[string]interface{} {
	t.Helper()
	require.False(t, result.IsError)
	require.NotEmpty(t, result.Content)

	textContent, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(textContent.Text), &parsed))
	return parsed
}

func resultErrorText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.True(t, result.IsError)
	require.NotEmpty(t, result.Content)

	textContent, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	return textContent.Text
}

func testConfig(manifestPath string) config.Config {
	return config.Config{
		Manifest:        manifestPath,
		CorePackages:    []string{"drupal/core"},
		ProjectPackages: []string{"drupal/lightning"},
	}
}

func TestHandleConstraintRewrite(t *testing.T) {
	ct := NewConstraintTools(testConfig("composer.json"))

	// The project policy is the default.
	result, err := ct.HandleConstraintRewrite(context.Background(), callToolRequest("constraint_rewrite", map[string]interface{}{
		"constraint": "^8.5.3",
	}))
	require.NoError(t, err)

	parsed := resultJSON(t, result)
	assert.Equal(t, "^8.5.3", parsed["constraint"])
	assert.Equal(t, "project", parsed["policy"])
	assert.Equal(t, "8.x-dev", parsed["dev"])

	result, err = ct.HandleConstraintRewrite(context.Background(), callToolRequest("constraint_rewrite", map[string]interface{}{
		"constraint": "^8.5.3",
		"policy":     "core",
	}))
	require.NoError(t, err)

	parsed = resultJSON(t, result)
	assert.Equal(t, "core", parsed["policy"])
	assert.Equal(t, "8.5.x-dev", parsed["dev"])
}

func TestHandleConstraintRewrite_MissingConstraint(t *testing.T) {
	ct := NewConstraintTools(testConfig("composer.json"))

	result, err := ct.HandleConstraintRewrite(context.Background(), callToolRequest("constraint_rewrite", nil))
	require.NoError(t, err)
	assert.Contains(t, resultErrorText(t, result), "constraint is required")
}

func TestHandleConstraintRewrite_InvalidPolicy(t *testing.T) {
	ct := NewConstraintTools(testConfig("composer.json"))

	result, err := ct.HandleConstraintRewrite(context.Background(), callToolRequest("constraint_rewrite", map[string]interface{}{
		"constraint": "^8.5.3",
		"policy":     "stable",
	}))
	require.NoError(t, err)
	assert.Contains(t, resultErrorText(t, result), "Invalid policy")
}

func TestHandleConstraintInspect(t *testing.T) {
	ct := NewConstraintTools(testConfig("composer.json"))

	result, err := ct.HandleConstraintInspect(context.Background(), callToolRequest("constraint_inspect", map[string]interface{}{
		"constraint": "^1.3.0 || ~2.3.0",
	}))
	require.NoError(t, err)

	parsed := resultJSON(t, result)
	assert.Equal(t, "^1.3.0 || ~2.3.0", parsed["constraint"])
	assert.Equal(t, "1.x-dev || 2.x-dev", parsed["project_dev"])
	assert.Equal(t, "1.3.x-dev || 2.3.x-dev", parsed["core_dev"])
	assert.Equal(t, float64(2), parsed["total"])

	ranges, ok := parsed["ranges"].([]interface{})
	require.True(t, ok)
	require.Len(t, ranges, 2)

	first, ok := ranges[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "^1.3.0", first["range"])
	assert.Equal(t, "1.3.0", first["version"])
	assert.Equal(t, "1.3.x-dev", first["core_dev"])
	assert.Equal(t, "1.x-dev", first["project_dev"])
}

func TestHandleManifestPreview(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "composer.json")
	content := `{
    "name": "acme/site",
    "require": {
        "drupal/core": "^8.5.3",
        "drupal/lightning": "^1.3.0 || ~2.3.0",
        "composer/installers": "^1.9"
    }
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	ct := NewConstraintTools(testConfig(path))

	// No path argument falls back to the configured manifest.
	result, err := ct.HandleManifestPreview(context.Background(), callToolRequest("manifest_preview", nil))
	require.NoError(t, err)

	parsed := resultJSON(t, result)
	assert.Equal(t, path, parsed["manifest"])
	assert.Equal(t, "acme/site", parsed["name"])
	assert.Equal(t, float64(2), parsed["total"])

	edits, ok := parsed["edits"].([]interface{})
	require.True(t, ok)
	require.Len(t, edits, 2)

	first, ok := edits[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "drupal/core", first["package"])
	assert.Equal(t, "^8.5.3", first["old"])
	assert.Equal(t, "8.5.x-dev", first["new"])

	// The preview never writes anything back.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestHandleManifestPreview_MissingManifest(t *testing.T) {
	ct := NewConstraintTools(testConfig(filepath.Join(t.TempDir(), "composer.json")))

	result, err := ct.HandleManifestPreview(context.Background(), callToolRequest("manifest_preview", nil))
	require.NoError(t, err)
	assert.Contains(t, resultErrorText(t, result), "Failed to load manifest")
}

func TestGetConstraintTools(t *testing.T) {
	ct := NewConstraintTools(testConfig("composer.json"))

	tools := ct.GetConstraintTools()
	require.Len(t, tools, 3)

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{"constraint_rewrite", "constraint_inspect", "manifest_preview"}, names)
}

func TestNewServer(t *testing.T) {
	s := NewServer(testConfig("composer.json"), "1.2.3")
	require.NotNil(t, s)
}
