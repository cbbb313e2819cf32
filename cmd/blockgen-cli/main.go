package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	blockgen "github.com/goliatone/go-blockgen"
	"github.com/goliatone/go-blockgen/pkg/codeblock"
	"github.com/goliatone/go-blockgen/pkg/markdown"
	"github.com/goliatone/go-blockgen/pkg/orchestrator"
	"github.com/goliatone/go-blockgen/pkg/prompt"
	pkgtemplate "github.com/goliatone/go-blockgen/pkg/template"
)

func main() {
	blockPath := flag.String("block", "", "path to the codeblock file")
	templatePath := flag.String("template", "", "path to a template file (wins over -name and -widget)")
	templateName := flag.String("name", "", "template name resolved inside -templates")
	widget := flag.String("widget", "", "widget name resolved through manifests inside -templates")
	templatesDir := flag.String("templates", ".", "directory holding templates and manifests")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "prompt for missing required placeholder values")
	flag.Parse()

	if *blockPath == "" {
		log.Fatal("-block is required")
	}
	block, err := os.ReadFile(*blockPath)
	if err != nil {
		log.Fatalf("Failed to read codeblock: %v", err)
	}

	ctx := context.Background()

	req := orchestrator.Request{
		Block:        string(block),
		TemplateName: *templateName,
		Widget:       *widget,
	}
	if *templatePath != "" {
		text, err := os.ReadFile(*templatePath)
		if err != nil {
			log.Fatalf("Failed to read template: %v", err)
		}
		req.Template = string(text)
	}

	fsys := os.DirFS(*templatesDir)
	gen := blockgen.NewOrchestrator(
		orchestrator.WithTemplateFS(fsys),
		orchestrator.WithManifestFS(fsys),
		orchestrator.WithMarkdownRenderer(markdown.NewCommonMark()),
	)

	result, err := gen.Generate(ctx, req)
	if err != nil && *interactive {
		result, err = retryWithPrompts(ctx, gen, req, err)
	}
	if err != nil {
		log.Fatalf("Failed to generate widget: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, result, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Widget written to %s\n", *output)
	} else {
		fmt.Println(string(result))
	}
}

// retryWithPrompts asks the user for each missing required value, appends
// the answers to the codeblock, and runs the pipeline once more.
func retryWithPrompts(ctx context.Context, gen *orchestrator.Orchestrator, req orchestrator.Request, genErr error) ([]byte, error) {
	var missing *pkgtemplate.MissingRequiredError
	if !errors.As(genErr, &missing) {
		return nil, genErr
	}

	parser := blockgen.NewParser()
	properties, err := parser.Parse(req.Block)
	if err != nil {
		return nil, err
	}

	properties, err = prompt.FillMissing(ctx, prompt.NewSurveyDriver(), properties, missing.Names)
	if err != nil {
		return nil, err
	}

	req.Block = codeblock.Format(properties)
	return gen.Generate(ctx, req)
}
