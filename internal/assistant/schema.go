package assistant

import (
	"github.com/google/generative-ai-go/genai"
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Declarations converts MCP tools into Gemini function declarations
func Declarations(tools []*mcp.Tool) []*genai.Tool {
	out := make([]*genai.Tool, 0, len(tools))
	for _, tool := range tools {
		out = append(out, &genai.Tool{
			FunctionDeclarations: []*genai.FunctionDeclaration{{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  Schema(tool.InputSchema),
			}},
		})
	}
	return out
}

// Schema converts a decoded JSON schema into a Gemini schema. Unknown
// shapes become an empty object.
func Schema(schema any) *genai.Schema {
	m, ok := schema.(map[string]any)
	if !ok {
		return &genai.Schema{Type: genai.TypeObject}
	}

	out := &genai.Schema{Type: schemaType(m["type"])}
	if desc, ok := m["description"].(string); ok {
		out.Description = desc
	}

	if props, ok := m["properties"].(map[string]any); ok && len(props) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(props))
		for name, prop := range props {
			out.Properties[name] = Schema(prop)
		}
	}
	if required, ok := m["required"].([]any); ok {
		for _, r := range required {
			if s, ok := r.(string); ok {
				out.Required = append(out.Required, s)
			}
		}
	}
	if items, ok := m["items"]; ok {
		out.Items = Schema(items)
	}
	return out
}

// schemaType maps a JSON schema type. Nullable types such as
// ["null", "number"] use their first non-null member.
func schemaType(v any) genai.Type {
	name, _ := v.(string)
	if list, ok := v.([]any); ok {
		for _, item := range list {
			if s, ok := item.(string); ok && s != "null" {
				name = s
				break
			}
		}
	}

	switch name {
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	default:
		return genai.TypeObject
	}
}
