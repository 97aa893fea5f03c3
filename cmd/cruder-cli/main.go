// Command cruder-cli scaffolds resource configuration files. Run it without
// flags for interactive prompts, or pass -name and -fields to generate a
// file non-interactively.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-cruder/pkg/crud"
	"github.com/goliatone/go-cruder/pkg/entity"
	"github.com/goliatone/go-cruder/pkg/styles"
)

func main() {
	name := flag.String("name", "", "entity name (e.g. contact)")
	fields := flag.String("fields", "", "comma-separated name:type pairs (e.g. name:string,email:email)")
	style := flag.String("style", "", "style profile (default, bootstrap, bulma)")
	perPage := flag.Int("per-page", 0, "items per page")
	search := flag.String("search", "", "comma-separated searchable field names")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	var config crud.ResourceConfig
	var err error
	if strings.TrimSpace(*name) == "" {
		config, err = promptConfig()
	} else {
		config, err = buildConfig(*name, *fields, *style, *perPage, *search)
	}
	if err != nil {
		log.Fatalf("Failed to build resource config: %v", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		log.Fatalf("Failed to encode config: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, data, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Resource config written to %s\n", *output)
	} else {
		fmt.Print(string(data))
	}
}

func buildConfig(name, fields, style string, perPage int, search string) (crud.ResourceConfig, error) {
	schema, err := parseSchema(name, fields)
	if err != nil {
		return crud.ResourceConfig{}, err
	}
	return crud.ResourceConfig{
		Schema:       schema,
		Style:        strings.TrimSpace(style),
		PerPage:      perPage,
		SearchFields: splitList(search),
	}, nil
}

func parseSchema(name, fields string) (entity.Schema, error) {
	schema := entity.Schema{Name: strings.ToLower(strings.TrimSpace(name))}
	if schema.Name == "" {
		return entity.Schema{}, fmt.Errorf("entity name is required")
	}

	schema.Fields = append(schema.Fields, entity.Field{Name: "id", Type: entity.TypeInteger})
	for _, pair := range splitList(fields) {
		fieldName, fieldType, found := strings.Cut(pair, ":")
		if !found {
			return entity.Schema{}, fmt.Errorf("field %q is not a name:type pair", pair)
		}
		field, err := parseField(fieldName, fieldType)
		if err != nil {
			return entity.Schema{}, err
		}
		schema.Fields = append(schema.Fields, field)
	}
	if len(schema.Fields) == 1 {
		return entity.Schema{}, fmt.Errorf("at least one field is required")
	}
	return schema, nil
}

func parseField(name, rawType string) (entity.Field, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return entity.Field{}, fmt.Errorf("field name is required")
	}
	fieldType := entity.Type(strings.ToLower(strings.TrimSpace(rawType)))
	switch fieldType {
	case entity.TypeString, entity.TypeText, entity.TypeEmail, entity.TypeURL,
		entity.TypeInteger, entity.TypeDecimal, entity.TypeBoolean,
		entity.TypeDate, entity.TypeDateTime, entity.TypeTime, entity.TypeFile:
		return entity.Field{Name: name, Type: fieldType}, nil
	}
	return entity.Field{}, fmt.Errorf("field %q has unknown type %q", name, rawType)
}

func promptConfig() (crud.ResourceConfig, error) {
	var name string
	if err := survey.AskOne(&survey.Input{Message: "Entity name:"}, &name, survey.WithValidator(survey.Required)); err != nil {
		return crud.ResourceConfig{}, err
	}

	var fields string
	if err := survey.AskOne(&survey.Input{
		Message: "Fields (name:type, comma separated):",
		Help:    "Types: string, text, email, url, integer, decimal, boolean, date, datetime, time, file",
	}, &fields, survey.WithValidator(survey.Required)); err != nil {
		return crud.ResourceConfig{}, err
	}

	var style string
	if err := survey.AskOne(&survey.Select{
		Message: "Style profile:",
		Options: styles.NewRegistry().List(),
		Default: "bootstrap",
	}, &style); err != nil {
		return crud.ResourceConfig{}, err
	}

	var perPageRaw string
	if err := survey.AskOne(&survey.Input{Message: "Items per page:", Default: "25"}, &perPageRaw); err != nil {
		return crud.ResourceConfig{}, err
	}
	perPage, err := strconv.Atoi(strings.TrimSpace(perPageRaw))
	if err != nil {
		return crud.ResourceConfig{}, fmt.Errorf("per page must be a number: %w", err)
	}

	var search string
	if err := survey.AskOne(&survey.Input{Message: "Searchable fields (comma separated, empty to skip):"}, &search); err != nil {
		return crud.ResourceConfig{}, err
	}

	return buildConfig(name, fields, style, perPage, search)
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
