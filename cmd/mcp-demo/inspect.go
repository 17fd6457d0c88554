package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/marvinmarnold/mcp-demo/internal/fxapi"
	"github.com/marvinmarnold/mcp-demo/internal/lang"
	"github.com/marvinmarnold/mcp-demo/internal/prompt"
)

// promptFlags contains flags for the prompt command.
type promptFlags struct {
	endpoint     string
	language     string
	includeTypes bool
	templateFile string
}

func setupPromptFlags() (*flag.FlagSet, *promptFlags) {
	fs := flag.NewFlagSet("prompt", flag.ContinueOnError)
	flags := &promptFlags{}

	fs.StringVar(&flags.endpoint, "endpoint", fxapi.QuotesPath, "endpoint path (/quotes or /payments)")
	fs.StringVar(&flags.language, "language", "python", "target language")
	fs.BoolVar(&flags.includeTypes, "types", true, "include typed model guidance")
	fs.StringVar(&flags.templateFile, "template", "", "prompt template override file")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: mcp-demo prompt [flags]\n\n")
		_, _ = fmt.Fprintf(output, "Print the assembled prompt for an endpoint and language without calling the code generator.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

func handlePrompt(args []string, w io.Writer) error {
	fs, flags := setupPromptFlags()
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	language, err := lang.Parse(flags.language)
	if err != nil {
		return err
	}

	guidance := "Preview prompt assembled by the mcp-demo CLI."
	typesGuidance := "Define typed request/response models mirroring the schemas in the API description."
	if !flags.includeTypes {
		typesGuidance = "Use plain untyped structures; do not define extra model types."
	}

	assembled, err := prompt.Assemble(prompt.Load(flags.templateFile), fxapi.Document(),
		flags.endpoint, language, typesGuidance, guidance)
	if err != nil {
		return fmt.Errorf("assembling prompt: %w", err)
	}

	_, err = fmt.Fprintln(w, assembled)
	return err
}

// specFlags contains flags for the spec command.
type specFlags struct {
	endpoint string
	format   string
}

func setupSpecFlags() (*flag.FlagSet, *specFlags) {
	fs := flag.NewFlagSet("spec", flag.ContinueOnError)
	flags := &specFlags{}

	fs.StringVar(&flags.endpoint, "endpoint", "", "narrow the description to one endpoint path")
	fs.StringVar(&flags.format, "format", "yaml", "output format: yaml or json")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: mcp-demo spec [flags]\n\n")
		_, _ = fmt.Fprintf(output, "Print the FX payments API description, optionally narrowed to one endpoint.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

func handleSpec(args []string, w io.Writer) error {
	fs, flags := setupSpecFlags()
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	doc := fxapi.Document()
	if flags.endpoint != "" {
		if _, err := fxapi.ExtractOperation(doc, flags.endpoint); err != nil {
			return err
		}
		doc = fxapi.Narrow(doc, flags.endpoint)
	}

	out, err := marshalSpec(doc, flags.format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func marshalSpec(doc *openapi3.T, format string) ([]byte, error) {
	switch format {
	case "yaml":
		return fxapi.MarshalYAML(doc)
	case "json":
		data, err := doc.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("marshaling to JSON: %w", err)
		}
		var buf []byte
		buf, err = indentJSON(data)
		if err != nil {
			return nil, err
		}
		return buf, nil
	default:
		return nil, fmt.Errorf("invalid format '%s'. Valid formats: yaml, json", format)
	}
}

func indentJSON(data []byte) ([]byte, error) {
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("reindenting JSON: %w", err)
	}
	return json.MarshalIndent(tree, "", "  ")
}
