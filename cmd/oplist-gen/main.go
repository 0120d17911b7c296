package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	pkgmanifest "github.com/goliatone/go-oplist/pkg/manifest"
	"github.com/goliatone/go-oplist/pkg/orchestrator"
)

func main() {
	outputDir := flag.String("output-dir", "", "directory to store the generated artifacts")
	modelFileList := flag.String("model-file-list", "", "path to a model manifest, or @file listing manifest paths")
	allowOverloads := flag.Bool("allow-include-all-overloads", false, "permit operators that include all overloads")
	banner := flag.String("banner", "", "override the generated-by banner in artifacts")
	interactive := flag.Bool("interactive", false, "prompt for missing flags instead of failing")
	flag.Parse()

	ctx := context.Background()

	if *interactive {
		if err := promptMissing(outputDir, modelFileList); err != nil {
			log.Fatalf("prompt: %v", err)
		}
	}
	if *outputDir == "" {
		log.Fatal("missing required flag: -output-dir")
	}
	if *modelFileList == "" {
		log.Fatal("missing required flag: -model-file-list")
	}

	src := parseSource(*modelFileList)
	if src == nil {
		log.Fatalf("invalid model file list: %q", *modelFileList)
	}

	if *interactive {
		proceed, err := confirmOverwrite(*outputDir)
		if err != nil {
			log.Fatalf("prompt: %v", err)
		}
		if !proceed {
			fmt.Println("Aborted.")
			return
		}
	}

	gen := orchestrator.New(
		orchestrator.WithAllowIncludeAllOverloads(*allowOverloads),
		orchestrator.WithBanner(*banner),
	)

	result, err := gen.Generate(ctx, orchestrator.Request{
		Sources: []pkgmanifest.Source{src},
	})
	if err != nil {
		log.Fatalf("Failed to generate operator lists: %v", err)
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	names := make([]string, 0, len(result.Artifacts))
	for name := range result.Artifacts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		artifact := result.Artifacts[name]
		target := filepath.Join(*outputDir, artifact.FileName)
		if err := os.WriteFile(target, artifact.Data, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", artifact.FileName, err)
		}
		fmt.Printf("Wrote %s\n", target)
	}
	fmt.Printf("Selected %d operators\n", result.Descriptor.Len())
}

func parseSource(raw string) pkgmanifest.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "@") {
		return pkgmanifest.SourceFromList(path)
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return pkgmanifest.SourceFromURL(path)
	}
	return pkgmanifest.SourceFromFile(path)
}
