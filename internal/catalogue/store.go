package catalogue

import (
	"encoding/binary"
	"math"
	"os"
	"sort"

	"github.com/mdobak/go-xerrors"
	"github.com/tidwall/gjson"

	"github.com/chimera-audio/trinity-api/internal/engines"
	"github.com/chimera-audio/trinity-api/internal/logger"
)

// VectorDim is the fixed dimensionality of catalogue vectors.
const VectorDim = 53

// ErrNotFound is returned by Get for out-of-range catalogue ordinals.
var ErrNotFound = xerrors.New("catalogue: record not found")

// Neighbor is one nearest-neighbor hit. Index is the ORIGINAL vector-index
// ordinal, not the filtered catalogue ordinal; translate it with Resolve.
type Neighbor struct {
	Distance float64
	Index    int
}

// Store holds the loaded catalogue, metadata and vector index. It is built
// once at startup and read-only thereafter, so it is safe for unlimited
// concurrent queries.
//
// Entries whose engine set intersects the utility id set are removed from the
// addressable catalogue before ranking; vectors keep their original ordering
// and origToFiltered translates hits back to filtered ordinals. Utility
// engines are structural, not a creative voice, and must never come back as
// the primary match.
type Store struct {
	records  []Record
	metadata []gjson.Result // aligned with records (filtered order)
	vectors  [][]float64    // original, unfiltered order
	dim      int

	origToFiltered map[int]int
}

// New builds a store from already-decoded records, index-aligned metadata and
// vectors. records, metadata and vectors are index-aligned in original order;
// the utility filter is applied here.
func New(registry *engines.Registry, records []Record, metadata []gjson.Result, vectors [][]float64) *Store {
	utility := registry.UtilityIDs()
	s := &Store{
		vectors:        vectors,
		dim:            VectorDim,
		origToFiltered: make(map[int]int),
	}
	excluded := 0
	for i, rec := range records {
		if intersects(rec.EngineIDs(), utility) {
			excluded++
			continue
		}
		s.origToFiltered[i] = len(s.records)
		s.records = append(s.records, rec)
		if i < len(metadata) {
			s.metadata = append(s.metadata, metadata[i])
		} else {
			s.metadata = append(s.metadata, gjson.Result{})
		}
	}
	if excluded > 0 {
		logger.Info("Excluded utility-only catalogue entries", logger.Fields{
			"excluded": excluded, "remaining": len(s.records),
		})
	}
	return s
}

// NewEmpty returns a store with no records and no vectors. A store loaded
// from missing files behaves identically to this one.
func NewEmpty(registry *engines.Registry) *Store {
	return New(registry, nil, nil, nil)
}

// Load reads the catalogue document, the metadata document and the vector
// file. Missing or unreadable files degrade to an empty store with a log
// warning; downstream ranking then legitimately yields zero candidates.
func Load(registry *engines.Registry, cataloguePath, metadataPath, vectorPath string) *Store {
	records := loadRecords(cataloguePath)
	metadata := loadMetadata(metadataPath)
	vectors := loadVectors(vectorPath)

	if len(records) == 0 {
		logger.Warn("Catalogue is empty, retrieval will fall back to blueprint defaults", logger.Fields{
			"catalogue_path": cataloguePath,
		})
	}
	return New(registry, records, metadata, vectors)
}

// Size returns the number of addressable (filtered) catalogue records.
func (s *Store) Size() int {
	return len(s.records)
}

// VectorCount returns the number of rows in the vector index, including rows
// whose records were excluded by the utility filter. Neighbor budgets must be
// sized against this, not Size(), so hits on excluded rows cannot crowd out
// addressable records.
func (s *Store) VectorCount() int {
	return len(s.vectors)
}

// Get returns the record at a filtered catalogue ordinal.
func (s *Store) Get(i int) (Record, error) {
	if i < 0 || i >= len(s.records) {
		return Record{}, xerrors.New("catalogue: index out of range", ErrNotFound)
	}
	return s.records[i], nil
}

// Metadata returns the metadata document aligned with a filtered ordinal.
func (s *Store) Metadata(i int) gjson.Result {
	if i < 0 || i >= len(s.metadata) {
		return gjson.Result{}
	}
	return s.metadata[i]
}

// Resolve translates an original vector ordinal to a filtered catalogue
// ordinal. Hits on filtered-out entries resolve to false.
func (s *Store) Resolve(orig int) (int, bool) {
	i, ok := s.origToFiltered[orig]
	return i, ok
}

// Nearest returns up to k neighbors ordered ascending by Euclidean distance.
// Indices reference the original vector ordering.
func (s *Store) Nearest(query []float64, k int) []Neighbor {
	if k <= 0 || len(s.vectors) == 0 {
		return nil
	}
	neighbors := make([]Neighbor, 0, len(s.vectors))
	for i, vec := range s.vectors {
		neighbors = append(neighbors, Neighbor{Distance: euclidean(query, vec), Index: i})
	}
	sort.SliceStable(neighbors, func(a, b int) bool {
		return neighbors[a].Distance < neighbors[b].Distance
	})
	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	return neighbors
}

func euclidean(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	// Dimensions present on only one side count in full.
	for i := n; i < len(a); i++ {
		sum += a[i] * a[i]
	}
	for i := n; i < len(b); i++ {
		sum += b[i] * b[i]
	}
	return math.Sqrt(sum)
}

func intersects(a, b map[int]bool) bool {
	for id := range a {
		if b[id] {
			return true
		}
	}
	return false
}

func loadRecords(path string) []Record {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Catalogue document unreadable, using empty catalogue", logger.Fields{
			"path": path, "error": err.Error(),
		})
		return nil
	}
	root := gjson.ParseBytes(data)
	list := root
	if !root.IsArray() {
		list = root.Get("presets")
	}
	if !list.IsArray() {
		logger.Warn("Catalogue document has unexpected shape, using empty catalogue", logger.Fields{
			"path": path,
		})
		return nil
	}
	var records []Record
	list.ForEach(func(_, doc gjson.Result) bool {
		records = append(records, ParseRecord(doc))
		return true
	})
	return records
}

func loadMetadata(path string) []gjson.Result {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Metadata document unreadable, continuing without metadata", logger.Fields{
			"path": path, "error": err.Error(),
		})
		return nil
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil
	}
	var metadata []gjson.Result
	root.ForEach(func(_, doc gjson.Result) bool {
		metadata = append(metadata, doc)
		return true
	})
	return metadata
}

// loadVectors reads the vector file: a little-endian uint32 dimension header
// followed by float32 rows. Anything malformed degrades to an empty index.
func loadVectors(path string) [][]float64 {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Vector index unreadable, using empty index", logger.Fields{
			"path": path, "error": err.Error(),
		})
		return nil
	}
	if len(data) < 4 {
		logger.Warn("Vector index truncated, using empty index", logger.Fields{"path": path})
		return nil
	}
	dim := int(binary.LittleEndian.Uint32(data[:4]))
	if dim != VectorDim {
		logger.Warn("Vector index has unexpected dimension, using empty index", logger.Fields{
			"path": path, "dim": dim, "expected": VectorDim,
		})
		return nil
	}
	body := data[4:]
	rowBytes := dim * 4
	if len(body)%rowBytes != 0 {
		logger.Warn("Vector index size not a multiple of row size, using empty index", logger.Fields{
			"path": path,
		})
		return nil
	}
	count := len(body) / rowBytes
	vectors := make([][]float64, count)
	for i := 0; i < count; i++ {
		row := make([]float64, dim)
		for j := 0; j < dim; j++ {
			bits := binary.LittleEndian.Uint32(body[i*rowBytes+j*4:])
			row[j] = float64(math.Float32frombits(bits))
		}
		vectors[i] = row
	}
	return vectors
}
