package scaffolder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pds-go/skeleton/internal/domain"
)

const (
	dirMode  = 0755
	fileMode = 0644
)

// FSScaffolder implements domain.Scaffolder on the local filesystem.
type FSScaffolder struct{}

func New() *FSScaffolder {
	return &FSScaffolder{}
}

// Create makes each target under root. Directories are created with a single
// Mkdir so an existing path is reported, not silently reused. Files are
// created empty and exclusively, so nothing is ever overwritten. A failure
// does not stop the remaining targets.
func (s *FSScaffolder) Create(root string, targets []domain.ScaffoldTarget) ([]domain.Artifact, error) {
	var (
		created []domain.Artifact
		errs    []error
	)

	for _, t := range targets {
		path := filepath.Join(root, filepath.FromSlash(t.Path))

		var err error
		if t.Kind == domain.KindDirectory {
			err = os.Mkdir(path, dirMode)
		} else {
			err = createEmpty(path)
		}
		if err != nil {
			errs = append(errs, &domain.TargetError{Target: t, Err: err})
			continue
		}

		created = append(created, domain.Artifact{
			Category: t.Category,
			Kind:     t.Kind,
			Path:     t.Path,
		})
	}

	return created, errors.Join(errs...)
}

func createEmpty(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileMode)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// OpenFile's mode is filtered by the umask.
	return os.Chmod(path, fileMode)
}
