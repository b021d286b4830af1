package artifacts

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/logger"
	"github.com/jimlawless/whereami"
)

const (
	VectorsFile  = "vectors.bin"
	PathsFile    = "image_paths.txt"
	MetadataFile = "metadata.json"
)

// Store хранит артефакты индекса на диске тремя файлами:
// бинарные векторы, список локальных путей и метаданные каталога.
// Все три файла позиционно согласованы друг с другом.
type Store struct {
	dataDir string
	log     logger.Logger
}

func NewStore(dataDir string, log logger.Logger) *Store {
	return &Store{
		dataDir: dataDir,
		log:     log,
	}
}

// Save записывает все записи индекса на диск. Каждый файл сначала
// пишется во временный и затем переименовывается, чтобы не оставить
// наполовину записанный артефакт при сбое.
func (s *Store) Save(_ context.Context, records []domain.IndexRecord) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	vectors, err := encodeVectors(records)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	paths := make([]string, 0, len(records))
	metas := make([]domain.ItemMeta, 0, len(records))
	for _, rec := range records {
		paths = append(paths, rec.LocalPath)
		metas = append(metas, rec.Meta)
	}

	metadata, err := json.MarshalIndent(metas, "", "  ")
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	files := map[string][]byte{
		VectorsFile:  vectors,
		PathsFile:    []byte(strings.Join(paths, "\n")),
		MetadataFile: metadata,
	}
	for name, data := range files {
		if err := writeAtomic(filepath.Join(s.dataDir, name), data); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	s.log.Infof("artifacts: saved %d records to %s", len(records), s.dataDir)

	return nil
}

// Load читает записи индекса с диска. Отсутствие любого из файлов
// означает, что индекс ещё не строился: возвращается пустой срез.
// Расхождение длин между файлами означает повреждённые артефакты.
func (s *Store) Load(_ context.Context) ([]domain.IndexRecord, error) {
	vecData, err := os.ReadFile(filepath.Join(s.dataDir, VectorsFile))
	if os.IsNotExist(err) {
		s.log.Warnf("artifacts: %s not found in %s, index is empty", VectorsFile, s.dataDir)
		return []domain.IndexRecord{}, nil
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	pathData, err := os.ReadFile(filepath.Join(s.dataDir, PathsFile))
	if os.IsNotExist(err) {
		s.log.Warnf("artifacts: %s not found in %s, index is empty", PathsFile, s.dataDir)
		return []domain.IndexRecord{}, nil
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	metaData, err := os.ReadFile(filepath.Join(s.dataDir, MetadataFile))
	if os.IsNotExist(err) {
		s.log.Warnf("artifacts: %s not found in %s, index is empty", MetadataFile, s.dataDir)
		return []domain.IndexRecord{}, nil
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	vectors, err := decodeVectors(vecData)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	paths := splitLines(string(pathData))

	var metas []domain.ItemMeta
	if err := json.Unmarshal(metaData, &metas); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrArtifactsCorrupt)
	}

	if len(vectors) != len(paths) || len(vectors) != len(metas) {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrArtifactsCorrupt)
	}

	records := make([]domain.IndexRecord, 0, len(vectors))
	for i := range vectors {
		records = append(records, domain.NewIndexRecord(vectors[i], paths[i], metas[i]))
	}

	return records, nil
}

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

// encodeVectors сериализует векторы: dim, count и значения подряд (little-endian).
func encodeVectors(records []domain.IndexRecord) ([]byte, error) {
	dim := 0
	if len(records) > 0 {
		dim = len(records[0].Vector)
	}

	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, uint32(dim)); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, uint32(len(records))); err != nil {
		return nil, err
	}
	for _, rec := range records {
		if len(rec.Vector) != dim {
			return nil, e.ErrVectorDimMismatch
		}
		if err := binary.Write(buf, binary.LittleEndian, rec.Vector); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

func decodeVectors(data []byte) ([][]float32, error) {
	buf := bytes.NewReader(data)

	var dim, count uint32
	if err := binary.Read(buf, binary.LittleEndian, &dim); err != nil {
		return nil, e.ErrArtifactsCorrupt
	}
	if err := binary.Read(buf, binary.LittleEndian, &count); err != nil {
		return nil, e.ErrArtifactsCorrupt
	}
	if buf.Len() != int(dim)*int(count)*4 {
		return nil, e.ErrArtifactsCorrupt
	}

	vectors := make([][]float32, 0, count)
	for i := uint32(0); i < count; i++ {
		vector := make([]float32, dim)
		if err := binary.Read(buf, binary.LittleEndian, vector); err != nil {
			return nil, e.ErrArtifactsCorrupt
		}
		vectors = append(vectors, vector)
	}

	return vectors, nil
}

func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}

	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, strings.TrimSpace(line))
	}

	return out
}
