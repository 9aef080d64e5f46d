// Package mcptools exposes depctl's constraint rewriting over the Model
// Context Protocol. Every tool is read-only: agents can inspect constraints
// and preview manifest rewrites, but writing stays with the CLI.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"

	"depctl/internal/config"
	"depctl/internal/manifest"
	"depctl/pkg/composer"

	"github.com/mark3labs/mcp-go/mcp"
)

// ConstraintTools provides MCP tools for constraint rewriting
type ConstraintTools struct {
	cfg config.Config
}

// NewConstraintTools creates constraint tools backed by the given configuration
func NewConstraintTools(cfg config.Config) *ConstraintTools {
	return &ConstraintTools{cfg: cfg}
}

// GetConstraintTools returns all constraint tools
func (ct *ConstraintTools) GetConstraintTools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("constraint_rewrite",
			mcp.WithDescription("Rewrite a Composer version constraint to its dev equivalent"),
			mcp.WithString("constraint",
				mcp.Required(),
				mcp.Description("Composer version constraint, e.g. ^8.5.3"),
			),
			mcp.WithString("policy",
				mcp.Description("Rewrite policy: core keeps the minor version, project keeps only the major (default)"),
				mcp.Enum("core", "project"),
			),
		),
		mcp.NewTool("constraint_inspect",
			mcp.WithDescription("Split a Composer constraint into its ranges and show every rewrite"),
			mcp.WithString("constraint",
				mcp.Required(),
				mcp.Description("Composer version constraint to inspect"),
			),
		),
		mcp.NewTool("manifest_preview",
			mcp.WithDescription("Preview the dev constraint rewrites for a composer.json without modifying it"),
			mcp.WithString("path",
				mcp.Description("Manifest path; defaults to the configured manifest"),
			),
		),
	}
}

// HandleConstraintRewrite handles the constraint_rewrite tool call
func (ct *ConstraintTools) HandleConstraintRewrite(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("constraint")
	if err != nil {
		return mcp.NewToolResultError("constraint is required"), nil
	}

	policy, err := composer.ParsePolicy(req.GetString("policy", string(composer.PolicyProject)))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid policy: %v", err)), nil
	}

	result := map[string]interface{}{
		"constraint": raw,
		"policy":     string(policy),
		"dev":        composer.NewConstraint(raw).Dev(policy),
	}

	resultJSON, _ := json.MarshalIndent(result, "", "  ")
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(string(resultJSON)),
		},
	}, nil
}

// HandleConstraintInspect handles the constraint_inspect tool call
func (ct *ConstraintTools) HandleConstraintInspect(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("constraint")
	if err != nil {
		return mcp.NewToolResultError("constraint is required"), nil
	}

	c := composer.NewConstraint(raw)
	ranges := c.Ranges()

	rangeList := make([]map[string]interface{}, 0, len(ranges))
	for _, r := range ranges {
		rangeList = append(rangeList, map[string]interface{}{
			"range":       string(r),
			"version":     r.Version(),
			"core_dev":    r.CoreDev(),
			"project_dev": r.ProjectDev(),
		})
	}

	result := map[string]interface{}{
		"constraint":  raw,
		"core_dev":    c.CoreDev(),
		"project_dev": c.ProjectDev(),
		"ranges":      rangeList,
		"total":       len(rangeList),
	}

	resultJSON, _ := json.MarshalIndent(result, "", "  ")
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(string(resultJSON)),
		},
	}, nil
}

// HandleManifestPreview handles the manifest_preview tool call
func (ct *ConstraintTools) HandleManifestPreview(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := req.GetString("path", ct.cfg.Manifest)

	m, err := manifest.Load(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to load manifest: %v", err)), nil
	}

	edits := m.Plan(ct.cfg.PolicyFor)
	editList := make([]map[string]interface{}, 0, len(edits))
	for _, e := range edits {
		editList = append(editList, map[string]interface{}{
			"package": e.Package,
			"old":     e.Old,
			"new":     e.New,
		})
	}

	result := map[string]interface{}{
		"manifest": m.Path(),
		"name":     m.Name(),
		"edits":    editList,
		"total":    len(editList),
	}

	resultJSON, _ := json.MarshalIndent(result, "", "  ")
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(string(resultJSON)),
		},
	}, nil
}
