package ai

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/xeipuuv/gojsonschema"
)

var fence = regexp.MustCompile("```(?:json)?\\s*")

// StripCodeFences removes markdown code fences models like to wrap JSON in.
func StripCodeFences(s string) string {
	return strings.TrimSpace(fence.ReplaceAllString(s, ""))
}

type SchemaError struct {
	Fields []string
}

func (e *SchemaError) Error() string {
	return "response does not match schema: " + strings.Join(e.Fields, "; ")
}

// decode validates model output against schema and maps it onto out. Decoding is
// weakly typed so "85" fills an int and a lone string fills a []string.
func decode(content, schema string, out any) error {
	doc := StripCodeFences(content)
	if doc == "" {
		return fmt.Errorf("empty response")
	}

	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(schema), gojsonschema.NewStringLoader(doc))
	if err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	if !result.Valid() {
		fields := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			fields = append(fields, desc.String())
		}
		return &SchemaError{Fields: fields}
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       yearHook,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// yearHook lets "2019 - 2023" or "Present" decode into an int field: the last
// four-digit year wins and anything without one becomes 0.
func yearHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Int {
		return data, nil
	}
	s := strings.TrimSpace(data.(string))
	if _, err := strconv.Atoi(s); err == nil {
		return s, nil
	}
	years := yearPattern.FindAllString(s, -1)
	if len(years) == 0 {
		return 0, nil
	}
	return years[len(years)-1], nil
}
