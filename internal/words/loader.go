package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Pack is a collection of categories as stored in a YAML word pack.
type Pack struct {
	Categories []PackCategory `yaml:"categories"`
}

// PackCategory is one category inside a pack.
type PackCategory struct {
	Key    string   `yaml:"key"`
	Prompt string   `yaml:"prompt,omitempty"`
	Words  []string `yaml:"words"`
}

// promptHeader marks the optional prompt line at the top of a text word list.
const promptHeader = "prompt:"

// ParseYAML parses a YAML word pack. Categories without a key are rejected.
func ParseYAML(data []byte) (Pack, error) {
	var p Pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Pack{}, fmt.Errorf("words: parsing yaml: %w", err)
	}
	for i := range p.Categories {
		c := &p.Categories[i]
		c.Key = strings.TrimSpace(c.Key)
		if c.Key == "" {
			return Pack{}, fmt.Errorf("words: category %d has no key", i)
		}
		c.Words = normalizeList(c.Words)
	}
	return p, nil
}

// ParseText reads a plain word list: one word per line, blank lines and
// lines starting with '#' skipped. A "# prompt: ..." comment sets the prompt.
func ParseText(key string, r io.Reader) (PackCategory, error) {
	pc := PackCategory{Key: key}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			comment := strings.TrimSpace(strings.TrimPrefix(line, "#"))
			if strings.HasPrefix(strings.ToLower(comment), promptHeader) {
				pc.Prompt = strings.TrimSpace(comment[len(promptHeader):])
			}
			continue
		}
		if w := Normalize(line); w != "" {
			pc.Words = append(pc.Words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return PackCategory{}, fmt.Errorf("words: reading %s: %w", key, err)
	}
	return pc, nil
}

// LoadFile loads a .txt word list or a .yaml/.yml pack.
func LoadFile(path string) (Pack, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !isSupportedExtension(ext) {
		return Pack{}, fmt.Errorf("words: unsupported file extension %q", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, fmt.Errorf("words: reading %s: %w", path, err)
	}

	if ext == ".txt" {
		key := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		pc, err := ParseText(key, strings.NewReader(string(data)))
		if err != nil {
			return Pack{}, err
		}
		return Pack{Categories: []PackCategory{pc}}, nil
	}

	p, err := ParseYAML(data)
	if err != nil {
		return Pack{}, fmt.Errorf("%w (file %s)", err, path)
	}
	return p, nil
}

// Loader reads every word file under a directory.
type Loader struct {
	Root   string
	Logger *log.Logger
}

// NewLoader creates a loader rooted at dir.
func NewLoader(root string, logger *log.Logger) *Loader {
	return &Loader{Root: root, Logger: loggerOrDefault(logger)}
}

// LoadAll walks the root directory and parses every supported file, in
// lexical path order. Invalid files are skipped with a warning. A missing
// root is reported as fs.ErrNotExist.
func (l *Loader) LoadAll() ([]Pack, error) {
	var paths []string
	err := filepath.WalkDir(l.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("words: walking %s: %w", l.Root, err)
	}
	sort.Strings(paths)

	packs := make([]Pack, 0, len(paths))
	for _, path := range paths {
		p, err := LoadFile(path)
		if err != nil {
			l.Logger.Warn("skipping word file", "path", path, "err", err)
			continue
		}
		packs = append(packs, p)
	}
	return packs, nil
}

// LoadCatalog builds a catalog from the embedded default pack, then merges
// every word file found under dir. An empty dir means defaults only; a
// missing dir is logged and ignored. Categories that end up empty are
// reported so the operator knows those rounds cannot be won.
func LoadCatalog(dir string, logger *log.Logger) (*Catalog, error) {
	logger = loggerOrDefault(logger)

	c := NewCatalog()
	def, err := DefaultPack()
	if err != nil {
		return nil, err
	}
	c.AddPack(def)

	if dir != "" {
		packs, err := NewLoader(dir, logger).LoadAll()
		switch {
		case errors.Is(err, fs.ErrNotExist):
			logger.Warn("word directory not found, using built-in categories", "dir", dir)
		case err != nil:
			return nil, err
		default:
			for _, p := range packs {
				c.AddPack(p)
			}
			logger.Debug("loaded word files", "dir", dir, "packs", len(packs))
		}
	}

	WarnEmpty(c, logger)
	return c, nil
}

// WarnEmpty logs a warning for every category without words.
func WarnEmpty(p Provider, logger *log.Logger) {
	for _, cat := range p.Categories() {
		if p.Words(cat.Key).Len() == 0 {
			loggerOrDefault(logger).Warn("category has no words; every answer will be wrong", "category", cat.Key)
		}
	}
}

func isSupportedExtension(ext string) bool {
	switch ext {
	case ".txt", ".yaml", ".yml":
		return true
	}
	return false
}

func normalizeList(list []string) []string {
	out := list[:0]
	for _, w := range list {
		if n := Normalize(w); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func loggerOrDefault(l *log.Logger) *log.Logger {
	if l == nil {
		return log.Default()
	}
	return l
}
