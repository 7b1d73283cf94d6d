package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/hamza4344/Web-Scraper/internal/models"
	"github.com/hamza4344/Web-Scraper/internal/types"
)

// indexFile is the sqlite database holding documents and embeddings inside
// the store directory.
const indexFile = "index.db"

// minEmbedLength filters out chunks too short to embed usefully.
const minEmbedLength = 30

const docsSchema = `
CREATE TABLE IF NOT EXISTS docs (
	id TEXT PRIMARY KEY,
	content TEXT NOT NULL,
	meta TEXT,
	embedding BLOB NOT NULL
);`

// VectorStore is a bulk-built similarity index over chunk embeddings. The
// index lives in memory and is persisted wholesale to a directory as a sqlite
// file; queries run a brute-force inner-product scan, which on normalized
// vectors equals cosine similarity.
type VectorStore struct {
	embedder types.Embedder
	chunks   []models.Chunk
	vectors  [][]float32
}

func New(embedder types.Embedder) *VectorStore {
	return &VectorStore{embedder: embedder}
}

// Len reports how many documents are indexed.
func (s *VectorStore) Len() int {
	return len(s.chunks)
}

// Build embeds all chunks with meaningful content and replaces the in-memory
// index. It fails when nothing survives the length filter.
func (s *VectorStore) Build(ctx context.Context, chunks []models.Chunk) error {
	valid := make([]models.Chunk, 0, len(chunks))
	for _, chunk := range chunks {
		if len(strings.TrimSpace(chunk.PageContent)) > minEmbedLength {
			valid = append(valid, chunk)
		}
	}
	if len(valid) == 0 {
		return errors.New("no valid documents for vector store creation")
	}

	texts := make([]string, len(valid))
	for i, chunk := range valid {
		texts[i] = chunk.PageContent
	}

	vectors, err := s.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed documents: %w", err)
	}
	if len(vectors) != len(valid) {
		return fmt.Errorf("embedding count mismatch: %d texts, %d vectors", len(valid), len(vectors))
	}

	s.chunks = valid
	s.vectors = vectors
	return nil
}

// Persist writes the index to dir, replacing any previous index there.
func (s *VectorStore) Persist(dir string) error {
	if len(s.vectors) == 0 {
		return errors.New("no index to persist")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	dbPath := filepath.Join(dir, indexFile)
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to replace previous index: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open index database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(docsSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO docs(id, content, meta, embedding) VALUES(?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, chunk := range s.chunks {
		meta, err := json.Marshal(chunk.Metadata)
		if err != nil {
			return fmt.Errorf("failed to encode metadata: %w", err)
		}
		if _, err := stmt.Exec(uuid.NewString(), chunk.PageContent, string(meta), encodeVector(s.vectors[i])); err != nil {
			return fmt.Errorf("failed to insert document: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Load replaces the in-memory index with one previously written by Persist.
// The store must use the same embedding model that built the index.
func (s *VectorStore) Load(dir string) error {
	dbPath := filepath.Join(dir, indexFile)
	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("no vector store at %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open index database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT content, meta, embedding FROM docs ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("failed to read index: %w", err)
	}
	defer rows.Close()

	var chunks []models.Chunk
	var vectors [][]float32
	for rows.Next() {
		var content, meta string
		var blob []byte
		if err := rows.Scan(&content, &meta, &blob); err != nil {
			return fmt.Errorf("failed to scan row: %w", err)
		}

		metadata := make(map[string]string)
		if meta != "" {
			if err := json.Unmarshal([]byte(meta), &metadata); err != nil {
				return fmt.Errorf("failed to decode metadata: %w", err)
			}
		}

		vec, err := decodeVector(blob)
		if err != nil {
			return fmt.Errorf("failed to decode embedding: %w", err)
		}

		chunks = append(chunks, models.Chunk{PageContent: content, Metadata: metadata})
		vectors = append(vectors, vec)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read index: %w", err)
	}
	if len(chunks) == 0 {
		return fmt.Errorf("vector store at %s is empty", dir)
	}

	s.chunks = chunks
	s.vectors = vectors
	return nil
}

// Query embeds the text and returns the k most similar chunks, best first.
// An uninitialized store or a failing embedding backend yields an empty
// result, never an error.
func (s *VectorStore) Query(ctx context.Context, text string, k int) []models.ScoredChunk {
	if len(s.vectors) == 0 {
		log.Printf("store: query against uninitialized vector store")
		return nil
	}
	if k <= 0 {
		k = 5
	}

	query, err := s.embedder.EmbedQuery(ctx, text)
	if err != nil {
		log.Printf("store: query embedding failed: %v", err)
		return nil
	}

	scores := make([]float32, len(s.vectors))
	for i, vec := range s.vectors {
		scores[i] = dot(vec, query)
	}

	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})

	if k > len(idx) {
		k = len(idx)
	}
	results := make([]models.ScoredChunk, 0, k)
	for _, i := range idx[:k] {
		results = append(results, models.ScoredChunk{Chunk: s.chunks[i], Score: scores[i]})
	}
	return results
}

func dot(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float32
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
