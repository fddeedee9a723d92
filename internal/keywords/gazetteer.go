package keywords

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed gazetteer.json
var gazetteerFiles embed.FS

// trieNode is one node of the phrase automaton, keyed by token lemma.
type trieNode struct {
	children map[string]*trieNode
	terminal bool
}

// Gazetteer is a fixed vocabulary of domain phrases compiled into a token
// trie. Matching walks the trie over annotated tokens, so a document is
// scanned once regardless of vocabulary size.
type Gazetteer struct {
	root *trieNode
	size int
}

// LoadDefaultGazetteer compiles the embedded domain vocabulary.
func LoadDefaultGazetteer(annotator Annotator) (*Gazetteer, error) {
	data, err := gazetteerFiles.ReadFile("gazetteer.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded gazetteer: %w", err)
	}
	return loadGazetteer(data, annotator)
}

// LoadGazetteerFile compiles a user-supplied vocabulary file. The file is a
// JSON array of phrase strings.
func LoadGazetteerFile(path string, annotator Annotator) (*Gazetteer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gazetteer file %s: %w", path, err)
	}
	return loadGazetteer(data, annotator)
}

// NewGazetteer compiles the given phrases into a trie. Each phrase is run
// through the annotator so matching is lemma-based and case-insensitive
// (plural and inflected variants of gazetteer terms still match).
func NewGazetteer(phrases []string, annotator Annotator) (*Gazetteer, error) {
	g := &Gazetteer{root: &trieNode{children: make(map[string]*trieNode)}}

	for _, phrase := range phrases {
		tokens, err := annotator.Annotate(phrase)
		if err != nil {
			return nil, fmt.Errorf("failed to annotate gazetteer phrase %q: %w", phrase, err)
		}
		if len(tokens) == 0 {
			continue
		}

		node := g.root
		for _, tok := range tokens {
			child, ok := node.children[tok.Lemma]
			if !ok {
				child = &trieNode{children: make(map[string]*trieNode)}
				node.children[tok.Lemma] = child
			}
			node = child
		}
		if !node.terminal {
			node.terminal = true
			g.size++
		}
	}

	return g, nil
}

// Size returns the number of distinct phrases in the gazetteer.
func (g *Gazetteer) Size() int {
	return g.size
}

// Match is one gazetteer phrase occurrence over the token stream. Start and
// End are token indices; End is exclusive.
type Match struct {
	Start int
	End   int
}

// MatchTokens finds every gazetteer phrase occurrence in the token stream.
// Overlapping matches are all reported: with "machine learning" and
// "learning" both in the gazetteer, "machine learning" yields two matches.
func (g *Gazetteer) MatchTokens(tokens []Token) []Match {
	var matches []Match
	for start := range tokens {
		node := g.root
		for end := start; end < len(tokens); end++ {
			child, ok := node.children[tokens[end].Lemma]
			if !ok {
				break
			}
			node = child
			if node.terminal {
				matches = append(matches, Match{Start: start, End: end + 1})
			}
		}
	}
	return matches
}

func loadGazetteer(data []byte, annotator Annotator) (*Gazetteer, error) {
	var phrases []string
	if err := json.Unmarshal(data, &phrases); err != nil {
		return nil, fmt.Errorf("failed to parse gazetteer JSON: %w", err)
	}
	return NewGazetteer(phrases, annotator)
}
