package view

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-uikit/pkg/component"
	"github.com/goliatone/go-uikit/pkg/kit"
)

// Issue describes a single validation finding inside a document.
type Issue struct {
	Path    string `json:"path"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Result aggregates the issues found while validating a document.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Validate checks a document against the kit's registered components and
// their props contracts. Elements naming an unregistered component, and
// props rejected by a component's schema, each produce an issue. Spacing
// props are presentation hints and are never validated.
func Validate(doc Document, registry *kit.Registry) Result {
	var issues []Issue
	if strings.TrimSpace(doc.Name) == "" {
		issues = append(issues, Issue{Path: "name", Message: "document name is required"})
	}
	issues = append(issues, validateElements(doc.Elements, "elements", registry)...)
	return Result{Valid: len(issues) == 0, Issues: issues}
}

func validateElements(elements []Element, prefix string, registry *kit.Registry) []Issue {
	var issues []Issue
	for i, element := range elements {
		path := fmt.Sprintf("%s[%d]", prefix, i)
		issues = append(issues, validateElement(element, path, registry)...)
	}
	return issues
}

func validateElement(element Element, path string, registry *kit.Registry) []Issue {
	var issues []Issue

	name := strings.TrimSpace(element.Component)
	if name == "" && len(element.Children) == 0 {
		issues = append(issues, Issue{Path: path, Message: "element needs a component or children"})
	}

	if name != "" && registry != nil {
		descriptor, ok := registry.Descriptor(name)
		if !ok {
			issues = append(issues, Issue{Path: path, Message: fmt.Sprintf("unknown component %q", name)})
		} else if descriptor.Props != nil {
			issues = append(issues, validateProps(element.Props, descriptor.Props, path)...)
		}
	}

	issues = append(issues, validateElements(element.Children, path+".children", registry)...)
	return issues
}

func validateProps(props component.Props, schema *openapi3.Schema, path string) []Issue {
	candidate := make(map[string]any, len(props))
	for key, value := range props {
		if key == component.KeySpaceTop || key == component.KeySpaceBottom {
			continue
		}
		candidate[key] = value
	}

	normalized, err := normalizeProps(candidate)
	if err != nil {
		return []Issue{{Path: path, Message: fmt.Sprintf("props are not serializable: %v", err)}}
	}

	if err := schema.VisitJSON(normalized, openapi3.MultiErrors()); err != nil {
		return issuesFromSchemaError(err, path)
	}
	return nil
}

// normalizeProps round-trips props through JSON so schema validation sees the
// same value shapes a decoded document would carry.
func normalizeProps(props map[string]any) (map[string]any, error) {
	data, err := json.Marshal(props)
	if err != nil {
		return nil, err
	}
	var normalized map[string]any
	if err := json.Unmarshal(data, &normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

func issuesFromSchemaError(err error, path string) []Issue {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		var issues []Issue
		for _, item := range multi {
			issues = append(issues, issuesFromSchemaError(item, path)...)
		}
		return issues
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		issue := Issue{Path: path, Message: schemaErr.Reason}
		if issue.Message == "" {
			issue.Message = schemaErr.Error()
		}
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
			issue.Field = strings.Join(pointer, ".")
		}
		return []Issue{issue}
	}

	return []Issue{{Path: path, Message: err.Error()}}
}
