package pipeline

import (
	"github.com/PhantomInsights/baby-names-analysis/internal/archive"
	"github.com/PhantomInsights/baby-names-analysis/internal/dataset"
	"github.com/PhantomInsights/baby-names-analysis/internal/domain"
)

// ArchiveNormalizer adapts archive.Normalize to the Normalizer interface.
type ArchiveNormalizer struct{}

func (ArchiveNormalizer) Normalize(archiveBytes []byte) ([]domain.Record, error) {
	return archive.Normalize(archiveBytes)
}

// CSVLoader writes the flat table to a fixed path.
type CSVLoader struct {
	Path string
}

func (l CSVLoader) Load(records []domain.Record) error {
	return dataset.WriteFile(l.Path, records)
}
