package tools

import (
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/shared/constant"
)

// ChatTools converts the fixed tool table to OpenAI Chat Completions
// function-tool parameters.
func ChatTools() []openai.ChatCompletionToolUnionParam {
	definitions := Definitions()
	result := make([]openai.ChatCompletionToolUnionParam, 0, len(definitions))
	for _, definition := range definitions {
		function := openai.FunctionDefinitionParam{
			Name: string(definition.Name),
		}
		if definition.Description != "" {
			function.Description = openai.String(definition.Description)
		}
		if definition.Parameters != nil {
			function.Parameters = openai.FunctionParameters(definition.Parameters)
		}
		result = append(result, openai.ChatCompletionToolUnionParam{
			OfFunction: &openai.ChatCompletionFunctionToolParam{
				Function: function,
				Type:     constant.ValueOf[constant.Function](),
			},
		})
	}
	return result
}
