package recommend

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

var stopWords = map[string]struct{}{
	"an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {}, "by": {}, "for": {},
	"from": {}, "has": {}, "have": {}, "in": {}, "is": {}, "it": {}, "its": {}, "of": {},
	"on": {}, "or": {}, "that": {}, "the": {}, "this": {}, "to": {}, "was": {}, "we": {},
	"were": {}, "will": {}, "with": {}, "you": {}, "your": {}, "our": {}, "i": {}, "me": {},
	"my": {}, "am": {},
}

// Tokenize splits text into lowercase terms on anything that is not a letter or digit.
// One-rune terms and common English stop words are dropped.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := fields[:0]
	for _, field := range fields {
		if utf8.RuneCountInString(field) < 2 {
			continue
		}
		if _, stop := stopWords[field]; stop {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

// VectorSpace is a tf-idf model over a small corpus built for a single request.
type VectorSpace struct {
	vectors [][]weightedTerm
	norms   []float64
}

// weightedTerm is a vector component. Vectors are kept sorted by term so
// that sums run in a fixed order and scores are reproducible bit for bit.
type weightedTerm struct {
	term   string
	weight float64
}

// NewVectorSpace weights every term of every document by its raw count times
// the smoothed inverse document frequency ln((1+n)/(1+df)) + 1.
func NewVectorSpace(docs []string) *VectorSpace {
	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tf := make(map[string]int)
		for _, token := range Tokenize(doc) {
			tf[token]++
		}
		for term := range tf {
			df[term]++
		}
		counts[i] = tf
	}

	n := float64(len(docs))
	space := &VectorSpace{
		vectors: make([][]weightedTerm, len(docs)),
		norms:   make([]float64, len(docs)),
	}
	for i, tf := range counts {
		vector := make([]weightedTerm, 0, len(tf))
		for term, count := range tf {
			idf := math.Log((1+n)/(1+float64(df[term]))) + 1
			vector = append(vector, weightedTerm{term: term, weight: float64(count) * idf})
		}
		sort.Slice(vector, func(a, b int) bool { return vector[a].term < vector[b].term })

		sum := 0.0
		for _, c := range vector {
			sum += c.weight * c.weight
		}
		space.vectors[i] = vector
		space.norms[i] = math.Sqrt(sum)
	}

	return space
}

func (s *VectorSpace) Len() int {
	return len(s.vectors)
}

// Similarity returns the cosine similarity of documents i and j in [0, 1].
// Empty documents have no direction and are similar to nothing.
func (s *VectorSpace) Similarity(i, j int) float64 {
	if i < 0 || j < 0 || i >= len(s.vectors) || j >= len(s.vectors) {
		return 0
	}
	if s.norms[i] == 0 || s.norms[j] == 0 {
		return 0
	}

	a, b := s.vectors[i], s.vectors[j]
	dot := 0.0
	for x, y := 0, 0; x < len(a) && y < len(b); {
		switch {
		case a[x].term == b[y].term:
			dot += a[x].weight * b[y].weight
			x++
			y++
		case a[x].term < b[y].term:
			x++
		default:
			y++
		}
	}

	return clamp(dot/(s.norms[i]*s.norms[j]), 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
