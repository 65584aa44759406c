// Command ddc-statusgen generates status code tables for pkg/status from
// the YAML files in pkg/status/tables.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

func main() {
	tablePath := flag.String("table", "", "Path to a status table YAML")
	outputDir := flag.String("output", "", "Output directory for the generated Go file")
	pkg := flag.String("package", "status", "Package name of the generated file")
	flag.Parse()

	if *tablePath == "" || *outputDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: ddc-statusgen -table <path> -output <dir> [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*tablePath, *outputDir, *pkg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(tablePath, outputDir, pkg string) error {
	table, err := LoadTable(tablePath)
	if err != nil {
		return fmt.Errorf("loading table: %w", err)
	}

	code, err := GenerateTable(table, pkg)
	if err != nil {
		return fmt.Errorf("generating %s: %w", table.File, err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	outPath := filepath.Join(outputDir, table.File)
	if err := writeFormatted(outPath, code); err != nil {
		return fmt.Errorf("writing %s: %w", table.File, err)
	}
	fmt.Printf("  generated %s\n", outPath)
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
