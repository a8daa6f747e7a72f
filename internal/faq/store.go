package faq

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
)

// QA is a single question/answer pair.
type QA struct {
	Question string
	Answer   string
}

// Category groups the QA pairs shown under one menu entry.
type Category struct {
	Name    string
	Entries []QA
}

// Corpus is the FAQ knowledge base. It is loaded once at boot and read-only
// afterwards; menus are numbered by document order, so both categories and
// questions keep the order they have in the JSON file.
type Corpus struct {
	categories []Category
	byName     map[string]int
}

// Load reads the FAQ file at path. Any read or parse failure is logged and
// an empty corpus is returned; the caller decides whether an empty corpus is
// fatal (it is at boot).
func Load(path string) *Corpus {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("❌ Failed to open FAQ file %s: %v", path, err)
		return &Corpus{byName: map[string]int{}}
	}
	defer f.Close()

	corpus, err := parse(f)
	if err != nil {
		log.Printf("❌ Failed to parse FAQ file %s: %v", path, err)
		return &Corpus{byName: map[string]int{}}
	}
	return corpus
}

// parse walks the JSON token stream instead of unmarshaling into maps, so
// the document order of categories and questions survives.
func parse(r io.Reader) (*Corpus, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("top-level object: %w", err)
	}

	corpus := &Corpus{byName: map[string]int{}}
	for dec.More() {
		name, err := stringToken(dec)
		if err != nil {
			return nil, fmt.Errorf("category name: %w", err)
		}

		cat := Category{Name: name}
		if err := expectDelim(dec, '{'); err != nil {
			return nil, fmt.Errorf("category %q: %w", name, err)
		}
		for dec.More() {
			question, err := stringToken(dec)
			if err != nil {
				return nil, fmt.Errorf("category %q question: %w", name, err)
			}
			answer, err := stringToken(dec)
			if err != nil {
				return nil, fmt.Errorf("answer for %q: %w", question, err)
			}
			cat.Entries = append(cat.Entries, QA{Question: question, Answer: answer})
		}
		if err := expectDelim(dec, '}'); err != nil {
			return nil, fmt.Errorf("category %q: %w", name, err)
		}

		if _, dup := corpus.byName[name]; dup {
			return nil, fmt.Errorf("duplicate category %q", name)
		}
		corpus.byName[name] = len(corpus.categories)
		corpus.categories = append(corpus.categories, cat)
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, fmt.Errorf("top-level object: %w", err)
	}
	return corpus, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func stringToken(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %v", tok)
	}
	return s, nil
}

// Empty reports whether the corpus has no categories.
func (c *Corpus) Empty() bool {
	return len(c.categories) == 0
}

// Len returns the number of categories.
func (c *Corpus) Len() int {
	return len(c.categories)
}

// Categories returns all categories in document order. The returned slice
// must not be mutated.
func (c *Corpus) Categories() []Category {
	return c.categories
}

// Category looks up a category by name.
func (c *Corpus) Category(name string) (Category, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// Answer looks up the answer for a (category, question) pair.
func (c *Corpus) Answer(category, question string) (string, bool) {
	cat, ok := c.Category(category)
	if !ok {
		return "", false
	}
	for _, qa := range cat.Entries {
		if qa.Question == question {
			return qa.Answer, true
		}
	}
	return "", false
}
