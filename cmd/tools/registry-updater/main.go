// cmd/tools/registry-updater/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"talenthub-dashboard/pkg/registry"
)

func main() {
	generateCmd := flag.NewFlagSet("generate", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	generatePath := generateCmd.String("path", "configs/collections.json", "Output path for the registry file")
	validatePath := validateCmd.String("path", "configs/collections.json", "Path to registry file")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate":
		generateCmd.Parse(os.Args[2:])
		if err := generate(*generatePath); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Registry written to %s\n", *generatePath)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		if err := validate(*validatePath); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Registry %s is valid\n", *validatePath)

	case "list":
		list()

	default:
		help()
		os.Exit(1)
	}
}

// generate writes the built-in registry out as a starting point for
// deployments that need to add collections.
func generate(path string) error {
	reg := registry.Default()
	reg.LastUpdated = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func validate(path string) error {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	for _, c := range reg.Collections {
		if c.Name == "" || c.Children == "" || c.OwnerField == "" || c.IDsParam == "" {
			return fmt.Errorf("collection %q: name, children, ownerField, and idsParam are all required", c.Name)
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate collection %q", c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

func list() {
	for _, c := range registry.Default().Collections {
		fmt.Printf("%-14s children=%-24s owner=%-12s idsParam=%s\n", c.Name, c.Children, c.OwnerField, c.IDsParam)
	}
}

func help() {
	fmt.Println("Usage: registry-updater <command> [flags]")
	fmt.Println("Commands:")
	fmt.Println("  generate  Write the built-in collection registry to a file")
	fmt.Println("  validate  Check a registry file for missing or duplicate entries")
	fmt.Println("  list      Print the built-in collections")
}
