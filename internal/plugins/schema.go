package plugins

import "github.com/cloudwego/eino/schema"

// toolSpecToToolInfo converts a ToolSpec to an Eino schema.ToolInfo.
func toolSpecToToolInfo(spec *ToolSpec) *schema.ToolInfo {
	info := &schema.ToolInfo{
		Name: spec.Name,
		Desc: spec.Description,
	}

	if len(spec.Parameters) > 0 {
		params := make(map[string]*schema.ParameterInfo, len(spec.Parameters))
		for name, p := range spec.Parameters {
			params[name] = paramSpecToParameterInfo(p)
		}
		info.ParamsOneOf = schema.NewParamsOneOfByParams(params)
	}

	return info
}

// paramSpecToParameterInfo converts a ParamSpec, recursing into array
// element and object sub-property schemas.
func paramSpecToParameterInfo(p ParamSpec) *schema.ParameterInfo {
	info := &schema.ParameterInfo{
		Type:     paramTypeToDataType(p.Type),
		Desc:     p.Description,
		Required: p.Required,
		Enum:     p.Enum,
	}
	if p.Items != nil {
		info.ElemInfo = paramSpecToParameterInfo(*p.Items)
	}
	if len(p.Properties) > 0 {
		sub := make(map[string]*schema.ParameterInfo, len(p.Properties))
		for name, sp := range p.Properties {
			sub[name] = paramSpecToParameterInfo(sp)
		}
		info.SubParams = sub
	}
	return info
}

// paramTypeToDataType maps string type names to Eino DataType constants.
func paramTypeToDataType(t string) schema.DataType {
	switch t {
	case "string":
		return schema.String
	case "number":
		return schema.Number
	case "integer":
		return schema.Integer
	case "boolean":
		return schema.Boolean
	case "array":
		return schema.Array
	case "object":
		return schema.Object
	default:
		return schema.String
	}
}
