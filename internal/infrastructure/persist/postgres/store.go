package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/klauspost/compress/zstd"

	"aquagest/internal/core/apperror"
)

// CompressionAlgo specifies the compression algorithm used on a slot row.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// slotRow maps the sys_slots table.
type slotRow struct {
	SlotKey         string          `db:"slot_key"`
	Payload         []byte          `db:"payload"`
	CompressionAlgo CompressionAlgo `db:"compression_algo"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// SlotStore persists slots in the sys_slots table, one row per key.
// Payloads above the threshold are zstd-compressed on the way in and
// decompressed transparently on the way out.
type SlotStore struct {
	pool              *Pool
	encoder           *zstd.Encoder
	decoder           *zstd.Decoder
	compressThreshold int
}

// NewSlotStore creates a slot store over the pool.
func NewSlotStore(pool *Pool) (*SlotStore, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &SlotStore{
		pool:              pool,
		encoder:           encoder,
		decoder:           decoder,
		compressThreshold: 10 * 1024, // 10KB
	}, nil
}

// Get returns the slot content, or (nil, nil) when the slot is empty.
func (s *SlotStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psql.
		Select("slot_key", "payload", "compression_algo", "updated_at").
		From("sys_slots").
		Where(sq.Eq{"slot_key": key}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var row slotRow
	if err := pgxscan.Get(ctx, s.pool, &row, query, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewStorage(err)
	}

	if row.CompressionAlgo == CompressionZstd {
		payload, err := s.decoder.DecodeAll(row.Payload, nil)
		if err != nil {
			return nil, apperror.NewStorage(fmt.Errorf("decompress slot %s: %w", key, err))
		}
		return payload, nil
	}
	return row.Payload, nil
}

// Set replaces the slot content, compressing large payloads.
func (s *SlotStore) Set(ctx context.Context, key string, data []byte) error {
	algo := CompressionNone
	payload := data
	if len(data) > s.compressThreshold {
		payload = s.encoder.EncodeAll(data, nil)
		algo = CompressionZstd
	}

	query, args, err := psql.
		Insert("sys_slots").
		Columns("slot_key", "payload", "compression_algo", "updated_at").
		Values(key, payload, algo, time.Now().UTC()).
		Suffix(`ON CONFLICT (slot_key) DO UPDATE SET
			payload = EXCLUDED.payload,
			compression_algo = EXCLUDED.compression_algo,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return apperror.NewInternal(err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return apperror.NewStorage(err)
	}
	return nil
}

// Delete clears the slot. Clearing an empty slot is not an error.
func (s *SlotStore) Delete(ctx context.Context, key string) error {
	query, args, err := psql.
		Delete("sys_slots").
		Where(sq.Eq{"slot_key": key}).
		ToSql()
	if err != nil {
		return apperror.NewInternal(err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return apperror.NewStorage(err)
	}
	return nil
}
