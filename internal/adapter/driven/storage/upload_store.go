// Package storage guarda uploads em arquivos temporários até o fim do
// processamento. O core de ingestão não é responsável pela durabilidade:
// cada arquivo é removido após sucesso ou falha.
package storage

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// UploadStore saves incoming multipart streams into a temp directory and
// cleans them up once the pipeline is done with them.
type UploadStore struct {
	dir    string
	logger logrus.FieldLogger
}

// NewUploadStore creates the temp directory if needed.
func NewUploadStore(dir string, logger logrus.FieldLogger) (*UploadStore, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating upload directory %s: %w", dir, err)
	}
	return &UploadStore{dir: dir, logger: logger}, nil
}

// Save copies the upload stream to a temp file and returns its path.
func (s *UploadStore) Save(r io.Reader) (string, error) {
	f, err := os.CreateTemp(s.dir, "upload-*.csv")
	if err != nil {
		return "", fmt.Errorf("error creating temp file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		// Um upload pela metade não serve para nada; remove na hora.
		os.Remove(f.Name())
		return "", fmt.Errorf("error writing upload to temp file: %w", err)
	}
	return f.Name(), nil
}

// Remove deletes a stored upload. Best effort: a leftover temp file is only
// worth a warning, never a failed request.
func (s *UploadStore) Remove(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.WithError(err).Warnf("failed to remove temp upload %s", path)
	}
}
