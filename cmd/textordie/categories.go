package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List all available categories",
	Long: `Shows every category of the configured word source with its prompt and
word count. The source is set by words.source in the config file or
TOD_WORDS_SOURCE ("files" or "db").`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func runCategories(_ *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}

	provider, err := a.provider()
	if err != nil {
		return err
	}

	cats := provider.Categories()
	if len(cats) == 0 {
		fmt.Println("No categories available.")
		return nil
	}

	fmt.Printf("Categories (%s):\n", a.cfg.Words.Source)
	fmt.Println()

	// Calculate column widths
	maxKeyLen := 3 // "Key" header
	for _, c := range cats {
		if len(c.Key) > maxKeyLen {
			maxKeyLen = len(c.Key)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %5s  %s\n", maxKeyLen, "Key", "Words", "Prompt")
	fmt.Printf("  %-*s  %5s  %s\n", maxKeyLen, "---", "-----", "------")

	for _, c := range cats {
		fmt.Printf("  %-*s  %5d  %s\n", maxKeyLen, c.Key, provider.Words(c.Key).Len(), c.Prompt)
	}

	fmt.Println()
	fmt.Println("Run 'textordie play <key>' to play a category.")
	return nil
}
