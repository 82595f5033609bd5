package tomlfixture

import (
	"testing"

	"github.com/mutk-project/relgraph/pkg/errors"
	"github.com/mutk-project/relgraph/pkg/graph"
	"github.com/mutk-project/relgraph/pkg/transform"
)

const trioFixture = `
model = "y-linked"
mu_germ = 2.0
mu_soma = 0.5
normalize_somatic_trees = true

[known_samples]
kid = true

[[member]]
name = "dad"
sex = "male"
tags = ["founder"]

[[member]]
name = "mom"
sex = "female"
tags = ["founder"]

[[member]]
name = "kid"
sex = "male"
dad = "dad"
mom = "mom"
dad_length = 1.5
mom_length = 1.5
samples = ["kid-tumor"]
`

func TestParseRoundTripsEveryField(t *testing.T) {
	fx, err := Parse([]byte(trioFixture))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if fx.Options.Model != transform.YLinked {
		t.Errorf("Model = %v, want YLinked", fx.Options.Model)
	}
	if fx.Options.MuGerm != 2.0 || fx.Options.MuSoma != 0.5 {
		t.Errorf("MuGerm/MuSoma = %v/%v, want 2.0/0.5", fx.Options.MuGerm, fx.Options.MuSoma)
	}
	if !fx.Options.NormalizeSomaticTrees {
		t.Error("NormalizeSomaticTrees = false, want true")
	}
	if !fx.Options.KnownSamples["kid"] {
		t.Error("KnownSamples[\"kid\"] = false, want true")
	}

	if len(fx.Pedigree.Members) != 3 {
		t.Fatalf("len(Members) = %d, want 3", len(fx.Pedigree.Members))
	}
	kid := fx.Pedigree.Members[2]
	if kid.Dad != "dad" || kid.Mom != "mom" {
		t.Errorf("kid parents = %q/%q, want dad/mom", kid.Dad, kid.Mom)
	}
	if kid.DadLength != 1.5 || kid.MomLength != 1.5 {
		t.Errorf("kid parent lengths = %v/%v, want 1.5/1.5", kid.DadLength, kid.MomLength)
	}
	if kid.Sex != graph.SexMale {
		t.Errorf("kid.Sex = %v, want SexMale", kid.Sex)
	}
	if len(kid.Samples) != 1 || kid.Samples[0] != "kid-tumor" {
		t.Errorf("kid.Samples = %v, want [kid-tumor]", kid.Samples)
	}

	dad := fx.Pedigree.Members[0]
	if len(dad.Tags) != 1 || dad.Tags[0] != "founder" {
		t.Errorf("dad.Tags = %v, want [founder]", dad.Tags)
	}
}

func TestParseDefaultsMuToOne(t *testing.T) {
	fx, err := Parse([]byte(`
[[member]]
name = "solo"
sex = "unknown"
tags = ["founder"]
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if fx.Options.MuGerm != 1.0 || fx.Options.MuSoma != 1.0 {
		t.Errorf("MuGerm/MuSoma = %v/%v, want 1.0/1.0", fx.Options.MuGerm, fx.Options.MuSoma)
	}
	if fx.Options.Model != transform.Autosomal {
		t.Errorf("Model = %v, want Autosomal (default)", fx.Options.Model)
	}
}

func TestParseRejectsUnknownModel(t *testing.T) {
	_, err := Parse([]byte(`model = "nonsense"`))
	if err == nil {
		t.Fatal("Parse() error = nil, want an error for an unknown model")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidModel {
		t.Errorf("GetCode() = %v, want ErrCodeInvalidModel", errors.GetCode(err))
	}
}

func TestParseRejectsUnknownSex(t *testing.T) {
	_, err := Parse([]byte(`
[[member]]
name = "x"
sex = "nonbinary-but-unsupported-value"
`))
	if err == nil {
		t.Fatal("Parse() error = nil, want an error for an unknown sex")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Errorf("GetCode() = %v, want ErrCodeInvalidInput", errors.GetCode(err))
	}
}

func TestLoadMissingFileReturnsFileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/fixture.toml")
	if err == nil {
		t.Fatal("Load() error = nil, want an error for a missing file")
	}
	if errors.GetCode(err) != errors.ErrCodeFileNotFound {
		t.Errorf("GetCode() = %v, want ErrCodeFileNotFound", errors.GetCode(err))
	}
}
