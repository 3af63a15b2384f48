package sqlite

import (
	"context"
	"database/sql"
	"time"

	"microfeed/internal/feed/domain"
)

type postsRepo struct {
	db *sql.DB
}

// Create lets SQLite assign the id. AUTOINCREMENT never reissues the id of
// a deleted post, which is a strictly stronger uniqueness guarantee than
// the flat-file driver's count+1 derivation.
func (r *postsRepo) Create(ctx context.Context, username, content string) (domain.Post, error) {
	post := domain.Post{
		Username:  username,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO posts (username, content, created_at) VALUES (?, ?, ?) RETURNING id`,
		post.Username, post.Content, post.CreatedAt,
	).Scan(&post.ID)
	if err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

func (r *postsRepo) List(ctx context.Context) ([]domain.Post, error) {
	return r.query(ctx,
		`SELECT id, username, content, created_at FROM posts ORDER BY rowid`)
}

func (r *postsRepo) ListByUsername(ctx context.Context, username string) ([]domain.Post, error) {
	return r.query(ctx,
		`SELECT id, username, content, created_at FROM posts WHERE username = ? ORDER BY rowid`,
		username)
}

// Delete is a silent no-op when no row matches.
func (r *postsRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	return err
}

func (r *postsRepo) query(ctx context.Context, q string, args ...any) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.Username, &p.Content, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
