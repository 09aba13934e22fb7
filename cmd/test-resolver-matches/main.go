// Test program to demonstrate catalog matching
// This shows which questions hit a catalog entry and which fall back
package main

import (
	"fmt"
	"strings"

	"github.com/ppiankov/floatchat/internal/catalog"
	"github.com/ppiankov/floatchat/internal/fleet"
	"github.com/ppiankov/floatchat/internal/resolve"
	"github.com/ppiankov/floatchat/internal/score"
	"github.com/ppiankov/floatchat/internal/validate"
)

func main() {
	fmt.Print("=== Catalog Matching Test ===\n\n")

	queries := append(catalog.SuggestedQueries(),
		"Show me salinity profiles near equator March 2023",
		"what is the weather today",
		"",
	)

	r := resolve.New(catalog.Default())

	for _, q := range queries {
		fmt.Printf("Query: %q\n", q)
		fmt.Println(strings.Repeat("-", 60))

		res := r.Resolve(q)
		if res.Matched {
			fmt.Printf("  ✓ Matched key: %s\n", res.Key)
		} else {
			fmt.Println("  ⚠️  No catalog match (generic answer)")
		}
		fmt.Printf("     - Confidence: %d%% (%s)\n", score.Percent(res.Record.Confidence), score.Band(res.Record.Confidence))
		fmt.Printf("     - Cited floats: %s\n", strings.Join(res.Record.CitedFloats, ", "))
		fmt.Printf("     - Visual: %s\n", res.Record.VisualLink)
		fmt.Println()
	}

	fmt.Println("=== Catalog Check ===")
	findings := validate.NewValidator(fleet.Default()).Validate(catalog.Default())
	if len(findings) == 0 {
		fmt.Println("  ✓ No findings")
	}
	for _, f := range findings {
		fmt.Printf("  %s\n", f)
	}

	fmt.Println("\n=== Test Complete ===")
}
