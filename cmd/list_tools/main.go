package main

import (
	"fmt"
	"os"
	"strings"

	"tool-borrowing/toolshed"
)

func main() {
	store, err := toolshed.NewDatabase(toolshed.SeedTools())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating database: %v\n", err)
		os.Exit(1)
	}
	catalog := toolshed.NewCatalog(store)
	defer catalog.Close()

	entries, err := catalog.ListAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving tools: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seed catalog (%d tools):\n", len(entries))
	fmt.Printf("%-3s %-25s %-14s %s\n", "No", "Tool", "Category", "Special Handling")
	fmt.Println(strings.Repeat("-", 60))
	for _, e := range entries {
		special := "No"
		if e.Tool.NeedsSpecialHandling() {
			special = "Yes"
		}
		fmt.Printf("%-3d %-25s %-14s %s\n", e.Index, truncateString(e.Tool.Name, 25), e.Tool.Category, special)
	}

	workers := toolshed.NewDirectory(toolshed.SeedWorkers()).All()
	fmt.Printf("\nWorker roster (%d workers):\n", len(workers))
	fmt.Printf("%-5s %-30s\n", "ID", "Name")
	fmt.Println(strings.Repeat("-", 36))
	for _, w := range workers {
		fmt.Printf("%-5d %-30s\n", w.ID, truncateString(w.Name, 30))
	}
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
