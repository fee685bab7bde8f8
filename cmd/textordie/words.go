package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/text-or-die/internal/words"
)

var flagWordsDB string

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage the SQLite word bank",
	Long: `Import, inspect and remove categories in the word bank. Play from it
with 'textordie play --db <path>' or words.source: db in the config.

Examples:
  textordie words import ./cars.txt ./pack.yaml
  textordie words show car_brands
  textordie words remove car_brands`,
}

var wordsImportCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import .txt or .yaml word files",
	Long: `Import word files into the word bank. A .txt file is one category named
after the file, one word per line, with an optional "# prompt: ..." header.
A .yaml pack holds several categories. Words merge with what is stored.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWordsImport,
}

var wordsShowCmd = &cobra.Command{
	Use:   "show <category>",
	Short: "Print the words of a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runWordsShow,
}

var wordsRemoveCmd = &cobra.Command{
	Use:   "remove <category>",
	Short: "Delete a category and its words",
	Args:  cobra.ExactArgs(1),
	RunE:  runWordsRemove,
}

func init() {
	wordsCmd.PersistentFlags().StringVar(&flagWordsDB, "db", "", "Path to the word bank (default from config)")

	wordsCmd.AddCommand(wordsImportCmd)
	wordsCmd.AddCommand(wordsShowCmd)
	wordsCmd.AddCommand(wordsRemoveCmd)
}

// storeApp loads the configuration and points it at the --db override.
func storeApp() (*app, error) {
	a, err := setup()
	if err != nil {
		return nil, err
	}
	if flagWordsDB != "" {
		a.cfg.Words.DB = flagWordsDB
	}
	return a, nil
}

func runWordsImport(_ *cobra.Command, args []string) error {
	a, err := storeApp()
	if err != nil {
		return err
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	for _, path := range args {
		pack, err := words.LoadFile(path)
		if err != nil {
			return err
		}
		res, err := store.ImportPack(pack)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d categories, %d new words\n", path, res.Categories, res.Added)
	}
	return nil
}

func runWordsShow(_ *cobra.Command, args []string) error {
	a, err := storeApp()
	if err != nil {
		return err
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	key := words.Normalize(args[0])
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	for _, st := range stats {
		if st.Category.Key != key {
			continue
		}

		list, err := store.WordList(key)
		if err != nil {
			return err
		}

		fmt.Printf("%s - %s\n", st.Category.Key, st.Category.Prompt)
		if !st.UpdatedAt.IsZero() {
			fmt.Printf("Updated: %s\n", st.UpdatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Println()
		if len(list) == 0 {
			fmt.Println("No words stored yet.")
			return nil
		}
		fmt.Println(strings.Join(list, "\n"))
		fmt.Println()
		fmt.Printf("%d words\n", len(list))
		return nil
	}

	return fmt.Errorf("%q: %w", key, words.ErrUnknownCategory)
}

func runWordsRemove(_ *cobra.Command, args []string) error {
	a, err := storeApp()
	if err != nil {
		return err
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	key := words.Normalize(args[0])
	if err := store.RemoveCategory(key); err != nil {
		return err
	}
	fmt.Printf("Removed %s\n", key)
	return nil
}
