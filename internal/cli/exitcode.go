package cli

import (
	"errors"

	relerrors "github.com/mutk-project/relgraph/pkg/errors"
	"github.com/mutk-project/relgraph/pkg/pedigree"
)

// ExitCode maps a command error to a Unix exit code. It keeps the
// library's single-error-kind contract (pedigree.InvalidPedigreeError)
// intact — this mapping happens only here, at the CLI boundary — while
// giving the shell typical validation-vs-I/O exit-code hygiene:
// validation errors exit 2, everything else exits 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var invalid *pedigree.InvalidPedigreeError
	if errors.As(err, &invalid) {
		return 2
	}

	switch relerrors.GetCode(err) {
	case relerrors.ErrCodeInvalidInput, relerrors.ErrCodeInvalidModel, relerrors.ErrCodeInvalidFormat,
		relerrors.ErrCodeInvalidManifest, relerrors.ErrCodeInvalidPath:
		return 2
	default:
		return 1
	}
}
