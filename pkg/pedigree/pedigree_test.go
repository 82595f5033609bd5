package pedigree

import (
	"errors"
	"strings"
	"testing"

	"github.com/mutk-project/relgraph/pkg/graph"
)

func TestBuildTrio(t *testing.T) {
	p := Pedigree{Members: []Member{
		{Name: "dad", Sex: graph.SexMale, Tags: []string{"diploid"}},
		{Name: "mom", Sex: graph.SexFemale, Tags: []string{"diploid"}},
		{Name: "child", Dad: "dad", Mom: "mom"},
	}}

	g, err := Build(p)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if g.NumVertices() != 3 {
		t.Fatalf("NumVertices() = %d, want 3", g.NumVertices())
	}
	child, _ := g.Vertex(2)
	if child.Ploidy != 2 {
		t.Fatalf("child ploidy = %d, want 2", child.Ploidy)
	}
	if got := g.InDegree(2); got != 2 {
		t.Fatalf("child in-degree = %d, want 2", got)
	}
}

func TestBuildCloneInheritsParent(t *testing.T) {
	p := Pedigree{Members: []Member{
		{Name: "A", Sex: graph.SexMale, Tags: []string{"diploid"}},
		{Name: "B", Dad: "A", Tags: []string{"clone"}},
	}}

	g, err := Build(p)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	b, _ := g.Vertex(1)
	if b.Ploidy != 2 || b.Sex != graph.SexMale {
		t.Fatalf("clone B = %+v, want ploidy 2, sex male", b)
	}
	if got := g.InDegree(1); got != 1 {
		t.Fatalf("B in-degree = %d, want 1", got)
	}
}

func TestBuildRejectsMaleMother(t *testing.T) {
	p := Pedigree{Members: []Member{
		{Name: "dad", Sex: graph.SexMale, Tags: []string{"diploid"}},
		{Name: "mom", Sex: graph.SexMale, Tags: []string{"diploid"}},
		{Name: "child", Dad: "dad", Mom: "mom"},
	}}

	_, err := Build(p)
	var invalid *InvalidPedigreeError
	if !errors.As(err, &invalid) {
		t.Fatalf("Build() error = %v, want *InvalidPedigreeError", err)
	}
	msg := strings.ToLower(invalid.Error())
	if !strings.Contains(msg, "mother") || !strings.Contains(msg, "male") {
		t.Fatalf("error message %q must mention mother and male", invalid.Error())
	}
}

func TestBuildRejectsCloneWithTwoParents(t *testing.T) {
	p := Pedigree{Members: []Member{
		{Name: "dad", Sex: graph.SexMale, Tags: []string{"diploid"}},
		{Name: "mom", Sex: graph.SexFemale, Tags: []string{"diploid"}},
		{Name: "B", Dad: "dad", Mom: "mom", Tags: []string{"clone"}},
	}}

	_, err := Build(p)
	if err == nil {
		t.Fatal("Build() error = nil, want two-parents-instead-of-one error")
	}
}

func TestPloidyFromTagsPrecedence(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want int
	}{
		{"default", nil, 2},
		{"haploid", []string{"HAPLOID"}, 1},
		{"gamete alias", []string{"Gamete"}, 1},
		{"explicit diploid", []string{"diploid"}, 2},
		{"clone", []string{"clone"}, 0},
		{"haploid overrides clone", []string{"clone", "haploid"}, 1},
		{"diploid overrides clone", []string{"clone", "diploid"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ploidyFromTags(tt.tags); got != tt.want {
				t.Errorf("ploidyFromTags(%v) = %d, want %d", tt.tags, got, tt.want)
			}
		})
	}
}

func TestBuildSkipsFounderTaggedMembers(t *testing.T) {
	p := Pedigree{Members: []Member{
		{Name: "dad", Sex: graph.SexMale, Tags: []string{"diploid"}},
		{Name: "mom", Sex: graph.SexFemale, Tags: []string{"diploid"}},
		{Name: "child", Dad: "dad", Mom: "mom", Tags: []string{"founder"}},
	}}

	g, err := Build(p)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := g.InDegree(2); got != 0 {
		t.Fatalf("founder-tagged child in-degree = %d, want 0", got)
	}
}
