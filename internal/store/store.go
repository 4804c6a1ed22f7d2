package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sqlc-dev/pqtype"

	"studio/internal/model"
)

// Store persists sessions and their generation history. It owns no
// business logic; handlers call it directly.
type Store struct {
	DB *sql.DB
}

// New creates a Store on a shared *sql.DB with pooling.
func New(database *sql.DB) *Store {
	return &Store{DB: database}
}

func nullJSON(raw json.RawMessage) pqtype.NullRawMessage {
	if len(raw) == 0 {
		return pqtype.NullRawMessage{}
	}
	return pqtype.NullRawMessage{RawMessage: raw, Valid: true}
}

// CreateSession inserts a session. brandConfig may be nil.
func (s *Store) CreateSession(ctx context.Context, name string, brandConfig json.RawMessage) (model.Session, error) {
	var out model.Session
	var cfg pqtype.NullRawMessage

	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO sessions (id, name, brand_config)
		VALUES ($1, $2, $3)
		RETURNING id, name, brand_config, created_at, updated_at`,
		uuid.New(), name, nullJSON(brandConfig),
	).Scan(&out.ID, &out.Name, &cfg, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return model.Session{}, err
	}
	if cfg.Valid {
		out.BrandConfig = cfg.RawMessage
	}
	return out, nil
}

// ListSessions returns all sessions, newest first, each with at most
// its earliest generation as a preview.
func (s *Store) ListSessions(ctx context.Context) ([]model.SessionWithGenerations, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT s.id, s.name, s.brand_config, s.created_at, s.updated_at,
		       g.id, g.session_id, g.type, g.cloudinary_url, g.cloudinary_public_id,
		       g.original_url, g.width, g.height, g.model, g.prompt, g.options, g.created_at
		FROM sessions s
		LEFT JOIN LATERAL (
			SELECT * FROM generations
			WHERE session_id = s.id
			ORDER BY created_at ASC
			LIMIT 1
		) g ON true
		ORDER BY s.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SessionWithGenerations
	for rows.Next() {
		var sess model.SessionWithGenerations
		var cfg pqtype.NullRawMessage

		var gID, gSessionID uuid.NullUUID
		var gType, gCloudURL, gCloudID, gOrigURL, gModel, gPrompt sql.NullString
		var gWidth, gHeight sql.NullInt32
		var gOptions pqtype.NullRawMessage
		var gCreatedAt sql.NullTime

		if err := rows.Scan(
			&sess.ID, &sess.Name, &cfg, &sess.CreatedAt, &sess.UpdatedAt,
			&gID, &gSessionID, &gType, &gCloudURL, &gCloudID,
			&gOrigURL, &gWidth, &gHeight, &gModel, &gPrompt, &gOptions, &gCreatedAt,
		); err != nil {
			return nil, err
		}
		if cfg.Valid {
			sess.BrandConfig = cfg.RawMessage
		}
		sess.Generations = []model.Generation{}
		if gID.Valid {
			gen := model.Generation{
				ID:                 gID.UUID,
				SessionID:          gSessionID.UUID,
				Type:               gType.String,
				CloudinaryURL:      gCloudURL.String,
				CloudinaryPublicID: gCloudID.String,
				OriginalURL:        gOrigURL.String,
				Model:              gModel.String,
				Prompt:             gPrompt.String,
				CreatedAt:          gCreatedAt.Time,
			}
			if gWidth.Valid {
				w := gWidth.Int32
				gen.Width = &w
			}
			if gHeight.Valid {
				h := gHeight.Int32
				gen.Height = &h
			}
			if gOptions.Valid {
				gen.Options = gOptions.RawMessage
			}
			sess.Generations = append(sess.Generations, gen)
		}
		out = append(out, sess)
	}
	return out, rows.Err()
}

// GetSession fetches one session with its full generation history,
// newest generation first. Returns sql.ErrNoRows when absent.
func (s *Store) GetSession(ctx context.Context, id uuid.UUID) (model.SessionWithGenerations, error) {
	var sess model.SessionWithGenerations
	var cfg pqtype.NullRawMessage

	err := s.DB.QueryRowContext(ctx, `
		SELECT id, name, brand_config, created_at, updated_at
		FROM sessions WHERE id = $1`, id,
	).Scan(&sess.ID, &sess.Name, &cfg, &sess.CreatedAt, &sess.UpdatedAt)
	if err != nil {
		return model.SessionWithGenerations{}, err
	}
	if cfg.Valid {
		sess.BrandConfig = cfg.RawMessage
	}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, session_id, type, cloudinary_url, cloudinary_public_id,
		       original_url, width, height, model, prompt, options, created_at
		FROM generations
		WHERE session_id = $1
		ORDER BY created_at DESC`, id)
	if err != nil {
		return model.SessionWithGenerations{}, err
	}
	defer rows.Close()

	sess.Generations = []model.Generation{}
	for rows.Next() {
		gen, err := scanGeneration(rows)
		if err != nil {
			return model.SessionWithGenerations{}, err
		}
		sess.Generations = append(sess.Generations, gen)
	}
	return sess, rows.Err()
}

// DeleteSession removes a session; generations cascade. The bool is
// false when no row matched.
func (s *Store) DeleteSession(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// DeleteExpiredSessions removes sessions not updated since the cutoff.
// Their generations cascade.
func (s *Store) DeleteExpiredSessions(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM sessions WHERE updated_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// GenerationParams describes one generation to record.
type GenerationParams struct {
	SessionID          uuid.UUID
	Type               string
	CloudinaryURL      string
	CloudinaryPublicID string
	OriginalURL        string
	Width              *int32
	Height             *int32
	Model              string
	Prompt             string
	Options            json.RawMessage
}

// AddGeneration records one generated asset and touches the parent
// session's updated_at.
func (s *Store) AddGeneration(ctx context.Context, p GenerationParams) (model.Generation, error) {
	if p.Type == "" {
		p.Type = "image"
	}

	var width, height sql.NullInt32
	if p.Width != nil {
		width = sql.NullInt32{Int32: *p.Width, Valid: true}
	}
	if p.Height != nil {
		height = sql.NullInt32{Int32: *p.Height, Valid: true}
	}
	var prompt sql.NullString
	if p.Prompt != "" {
		prompt = sql.NullString{String: p.Prompt, Valid: true}
	}

	row := s.DB.QueryRowContext(ctx, `
		INSERT INTO generations (id, session_id, type, cloudinary_url, cloudinary_public_id,
		                         original_url, width, height, model, prompt, options)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, session_id, type, cloudinary_url, cloudinary_public_id,
		          original_url, width, height, model, prompt, options, created_at`,
		uuid.New(), p.SessionID, p.Type, p.CloudinaryURL, p.CloudinaryPublicID,
		p.OriginalURL, width, height, p.Model, prompt, nullJSON(p.Options))

	gen, err := scanGeneration(row)
	if err != nil {
		return model.Generation{}, err
	}

	_, err = s.DB.ExecContext(ctx, `UPDATE sessions SET updated_at = now() WHERE id = $1`, p.SessionID)
	return gen, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGeneration(row rowScanner) (model.Generation, error) {
	var gen model.Generation
	var width, height sql.NullInt32
	var prompt sql.NullString
	var options pqtype.NullRawMessage

	err := row.Scan(&gen.ID, &gen.SessionID, &gen.Type, &gen.CloudinaryURL, &gen.CloudinaryPublicID,
		&gen.OriginalURL, &width, &height, &gen.Model, &prompt, &options, &gen.CreatedAt)
	if err != nil {
		return model.Generation{}, err
	}
	if width.Valid {
		w := width.Int32
		gen.Width = &w
	}
	if height.Valid {
		h := height.Int32
		gen.Height = &h
	}
	gen.Prompt = prompt.String
	if options.Valid {
		gen.Options = options.RawMessage
	}
	return gen, nil
}
