package json

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/mdnotion"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "https://github.com/fwojciec/mdnotion/result.schema.json"

// Schema is the JSON schema of the v1 envelope.
const Schema = `{
  "type": "object",
  "required": ["version", "tokens"],
  "properties": {
    "version": {"const": 1},
    "source": {"type": "string"},
    "meta": {"type": "object"},
    "tokens": {"type": "array", "items": {"$ref": "#/$defs/token"}}
  },
  "$defs": {
    "span": {
      "type": "object",
      "required": ["type", "text"],
      "properties": {
        "type": {"enum": ["code", "bold", "italic", "strikethrough", "link", "text"]},
        "text": {"type": "string"},
        "link": {"type": "string", "minLength": 1}
      },
      "additionalProperties": false
    },
    "token": {
      "type": "object",
      "required": ["type"],
      "properties": {
        "type": {"enum": ["heading", "code_block", "bullet_list", "numbered_list", "image", "quote", "embedded_file", "paragraph"]},
        "level": {"type": "integer", "minimum": 1, "maximum": 3},
        "rich_text": {"type": "array", "items": {"$ref": "#/$defs/span"}},
        "text": {"type": "string"},
        "lang": {"type": "string"},
        "ordinal": {"type": "integer", "minimum": 0},
        "nesting": {"type": "integer", "minimum": 0},
        "url": {"type": "string", "minLength": 1}
      },
      "additionalProperties": false,
      "allOf": [
        {"if": {"properties": {"type": {"const": "heading"}}}, "then": {"required": ["level"]}},
        {"if": {"properties": {"type": {"const": "code_block"}}}, "then": {"required": ["text"]}},
        {"if": {"properties": {"type": {"enum": ["image", "embedded_file"]}}}, "then": {"required": ["url"]}}
      ]
    }
  }
}`

var schema = mustCompile()

func mustCompile() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, strings.NewReader(Schema)); err != nil {
		panic(fmt.Sprintf("add schema resource: %v", err))
	}
	s, err := compiler.Compile(schemaURL)
	if err != nil {
		panic(fmt.Sprintf("compile schema: %v", err))
	}
	return s
}

// Validate checks a JSON payload against Schema. Failures wrap
// mdnotion.ErrValidation.
func Validate(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: decode payload: %w", mdnotion.ErrValidation, err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %w", mdnotion.ErrValidation, err)
	}
	return nil
}
