package recommend

import (
	"math"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	got := Tokenize("Node.js & C++, Go! The REST-API of 2024")
	want := []string{"node", "js", "go", "rest", "api", "2024"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tokens: %q", got)
	}

	if got := Tokenize("  "); len(got) != 0 {
		t.Fatalf("expected no tokens, got %q", got)
	}
}

func TestVectorSpaceSimilarity(t *testing.T) {
	t.Parallel()

	space := NewVectorSpace([]string{
		"golang kubernetes microservices",
		"golang kubernetes microservices",
		"react typescript css",
		"golang react",
		"",
	})

	if space.Len() != 5 {
		t.Fatalf("expected 5 documents, got %d", space.Len())
	}

	if got := space.Similarity(0, 1); math.Abs(got-1) > 1e-9 {
		t.Fatalf("identical documents must have similarity 1, got %v", got)
	}

	if got := space.Similarity(0, 2); got != 0 {
		t.Fatalf("disjoint documents must have similarity 0, got %v", got)
	}

	partial := space.Similarity(0, 3)
	if partial <= 0 || partial >= 1 {
		t.Fatalf("expected partial similarity in (0, 1), got %v", partial)
	}
	if partial != space.Similarity(3, 0) {
		t.Fatal("similarity must be symmetric")
	}

	if got := space.Similarity(0, 4); got != 0 {
		t.Fatalf("empty document must have similarity 0, got %v", got)
	}
	if got := space.Similarity(0, 5); got != 0 {
		t.Fatalf("out of range document must have similarity 0, got %v", got)
	}
}

func TestVectorSpaceIgnoresDocumentOrder(t *testing.T) {
	t.Parallel()

	candidate := "go backend engineer kubernetes"
	a := "senior go engineer"
	b := "frontend engineer react"
	c := "kubernetes platform team"

	first := NewVectorSpace([]string{candidate, a, b, c})
	second := NewVectorSpace([]string{candidate, c, a, b})

	if first.Similarity(0, 1) != second.Similarity(0, 2) {
		t.Fatal("similarity of a must not depend on its position")
	}
	if first.Similarity(0, 2) != second.Similarity(0, 3) {
		t.Fatal("similarity of b must not depend on its position")
	}
	if first.Similarity(0, 3) != second.Similarity(0, 1) {
		t.Fatal("similarity of c must not depend on its position")
	}
}

func TestVectorSpaceAllEmpty(t *testing.T) {
	t.Parallel()

	space := NewVectorSpace([]string{"", ""})
	if got := space.Similarity(0, 1); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}
