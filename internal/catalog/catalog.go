package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/catalog.json
var catalogData embed.FS

var (
	languages []Language
	byName    map[string]*Language
	quizzes   map[string][]Question
)

func init() {
	doc, err := decode(catalogData, "data/catalog.json")
	if err != nil {
		panic(fmt.Sprintf("lingo: load catalog: %v", err))
	}
	load(doc)
}

func decode(fsys embed.FS, path string) (*document, error) {
	raw, err := fsys.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &doc, nil
}

func load(doc *document) {
	languages = doc.Languages
	byName = make(map[string]*Language, len(languages))
	for i := range languages {
		byName[languages[i].Name] = &languages[i]
	}
	quizzes = doc.Quizzes
}

// Languages returns the catalog in display order. The returned slice is a copy.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// Lookup returns the language with the given name. Names are matched exactly.
func Lookup(name string) (*Language, bool) {
	l, ok := byName[name]
	if !ok {
		return nil, false
	}
	cp := *l
	return &cp, true
}

// Quiz returns the ordered questions for a language name.
func Quiz(name string) ([]Question, bool) {
	qs, ok := quizzes[name]
	if !ok {
		return nil, false
	}
	out := make([]Question, len(qs))
	copy(out, qs)
	return out, true
}

// Names returns every language name that has a quiz, in catalog order.
func Names() []string {
	var names []string
	for _, l := range languages {
		if _, ok := quizzes[l.Name]; ok {
			names = append(names, l.Name)
		}
	}
	return names
}
