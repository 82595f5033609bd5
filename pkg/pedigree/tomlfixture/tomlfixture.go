// Package tomlfixture loads the minimal demo pedigree format the relgraph
// CLI's compile/render/inspect subcommands consume. It is deliberately not
// "the pedigree parser" — spec.md places production pedigree file formats
// out of scope — just fixture tooling so the CLI has something to load.
package tomlfixture

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mutk-project/relgraph/pkg/compiler"
	"github.com/mutk-project/relgraph/pkg/errors"
	"github.com/mutk-project/relgraph/pkg/graph"
	"github.com/mutk-project/relgraph/pkg/pedigree"
	"github.com/mutk-project/relgraph/pkg/transform"
)

type member struct {
	Name      string   `toml:"name"`
	Sex       string   `toml:"sex"`
	Dad       string   `toml:"dad"`
	Mom       string   `toml:"mom"`
	DadLength float64  `toml:"dad_length"`
	MomLength float64  `toml:"mom_length"`
	Tags      []string `toml:"tags"`
	Samples   []string `toml:"samples"`
}

type document struct {
	Model                 string          `toml:"model"`
	MuGerm                float64         `toml:"mu_germ"`
	MuSoma                float64         `toml:"mu_soma"`
	NormalizeSomaticTrees bool            `toml:"normalize_somatic_trees"`
	KnownSamples          map[string]bool `toml:"known_samples"`
	Members               []member        `toml:"member"`
}

// Fixture bundles the pedigree and compiler options one TOML file
// describes, mirroring the two arguments Construct takes.
type Fixture struct {
	Pedigree pedigree.Pedigree
	Options  compiler.Options
}

// Load reads and decodes the TOML fixture at path.
func Load(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "reading fixture %s", path)
	}
	return Parse(data)
}

// Parse decodes raw TOML fixture bytes into a Fixture.
func Parse(data []byte) (Fixture, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return Fixture{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parsing pedigree fixture")
	}

	model, ok := transform.ModelFromName(doc.Model)
	if doc.Model != "" && !ok {
		return Fixture{}, errors.New(errors.ErrCodeInvalidModel, "unknown inheritance model: %s", doc.Model)
	}

	muGerm, muSoma := doc.MuGerm, doc.MuSoma
	if muGerm == 0 {
		muGerm = 1.0
	}
	if muSoma == 0 {
		muSoma = 1.0
	}

	members := make([]pedigree.Member, 0, len(doc.Members))
	for _, m := range doc.Members {
		sex, ok := sexFromName(m.Sex)
		if !ok {
			return Fixture{}, errors.New(errors.ErrCodeInvalidInput, "member %q: unknown sex %q", m.Name, m.Sex)
		}
		members = append(members, pedigree.Member{
			Name:      m.Name,
			Sex:       sex,
			Dad:       m.Dad,
			Mom:       m.Mom,
			DadLength: m.DadLength,
			MomLength: m.MomLength,
			Tags:      m.Tags,
			Samples:   m.Samples,
		})
	}

	return Fixture{
		Pedigree: pedigree.Pedigree{Members: members},
		Options: compiler.Options{
			Model:                 model,
			MuGerm:                muGerm,
			MuSoma:                muSoma,
			NormalizeSomaticTrees: doc.NormalizeSomaticTrees,
			KnownSamples:          doc.KnownSamples,
		},
	}, nil
}

func sexFromName(name string) (graph.Sex, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "autosomal":
		return graph.SexAutosomal, true
	case "male":
		return graph.SexMale, true
	case "female":
		return graph.SexFemale, true
	case "unknown":
		return graph.SexUnknown, true
	default:
		return graph.SexAutosomal, false
	}
}
