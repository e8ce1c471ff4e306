package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/lib/pq"

	"blogger/config"
	"blogger/internal/apperrors"
	"blogger/internal/model"

	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const uniqueViolation = "23505"

type Repository struct {
	db *sql.DB
}

// New connects to Postgres, applies pending migrations and returns the
// repository. The caller must not serve requests until New succeeds.
func New(conf config.Postgres) (*Repository, error) {
	url := fmt.Sprintf(
		"postgresql://%v:%v@%v:%v/%v?sslmode=disable&statement_timeout=%d",
		conf.User, conf.Pass, conf.Host, conf.Port, conf.DB, conf.Timeout.Milliseconds())

	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %v", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db.Ping: %v", err)
	}

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres.WithInstance: %v", err)
	}
	migrations := fmt.Sprintf("file://%v", conf.Migrations)
	m, err := migrate.NewWithDatabaseInstance(migrations, conf.DB, driver)
	if err != nil {
		return nil, fmt.Errorf("migrate.NewWithDatabaseInstance: %v", err)
	}
	log.Println("applying migrations...")
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("nothing to migrate")
		} else {
			return nil, fmt.Errorf("error when migrating: %v", err)
		}
	} else {
		log.Println("migrated successfully!")
	}

	return &Repository{db: db}, nil
}

// translate maps driver-level failures onto domain errors. Absent rows
// become NOT_FOUND and unique-index violations become CONFLICT; anything
// else stays an internal error.
func translate(err error, notFoundMsg string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.New(apperrors.CodeNotFound, notFoundMsg)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return apperrors.Wrap(apperrors.CodeConflict, "duplicate value", err)
	}
	return err
}

func (r *Repository) CreateUser(ctx context.Context, username, email, passwordHash string) (*model.User, error) {
	user := &model.User{Username: username, Email: email, PasswordHash: passwordHash}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		username, email, passwordHash).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return nil, translate(err, "user not found")
	}
	return user, nil
}

func (r *Repository) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, created_at FROM users WHERE email = $1`, email))
}

func (r *Repository) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, created_at FROM users WHERE username = $1`, username))
}

func (r *Repository) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, created_at FROM users WHERE id = $1`, id))
}

func (r *Repository) scanUser(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return nil, translate(err, "user not found")
	}
	return user, nil
}

func (r *Repository) CreatePost(ctx context.Context, userID int64, title, content string) (*model.Post, error) {
	post := &model.Post{UserID: userID, Title: title, Content: content}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO posts (user_id, title, content) VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		userID, title, content).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, translate(err, "post not found")
	}
	return post, nil
}

func (r *Repository) Posts(ctx context.Context) ([]model.Post, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.id, p.user_id, u.username, p.title, p.content, p.created_at, p.updated_at
		 FROM posts p JOIN users u ON u.id = p.user_id
		 ORDER BY p.created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []model.Post{}
	for rows.Next() {
		post := model.Post{}
		err = rows.Scan(&post.ID, &post.UserID, &post.Author, &post.Title, &post.Content,
			&post.CreatedAt, &post.UpdatedAt)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (r *Repository) PostByID(ctx context.Context, id int64) (*model.Post, error) {
	post := &model.Post{}
	err := r.db.QueryRowContext(ctx,
		`SELECT p.id, p.user_id, u.username, p.title, p.content, p.created_at, p.updated_at
		 FROM posts p JOIN users u ON u.id = p.user_id
		 WHERE p.id = $1`, id).Scan(
		&post.ID, &post.UserID, &post.Author, &post.Title, &post.Content,
		&post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, translate(err, "post not found")
	}
	return post, nil
}

func (r *Repository) UpdatePost(ctx context.Context, id int64, title, content string) (*model.Post, error) {
	post := &model.Post{ID: id, Title: title, Content: content}
	err := r.db.QueryRowContext(ctx,
		`UPDATE posts SET title = $2, content = $3, updated_at = NOW() WHERE id = $1
		 RETURNING user_id, created_at, updated_at`,
		id, title, content).Scan(&post.UserID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, translate(err, "post not found")
	}
	return post, nil
}

// DeletePost deletes the post and its comments atomically. The comment
// delete is issued explicitly even though the schema cascades, so the
// invariant does not depend on the foreign key definition alone.
func (r *Repository) DeletePost(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE post_id = $1`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.New(apperrors.CodeNotFound, "post not found")
	}
	return tx.Commit()
}

func (r *Repository) CreateComment(ctx context.Context, postID, userID int64, content string) (*model.Comment, error) {
	comment := &model.Comment{PostID: postID, UserID: userID, Content: content}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO comments (post_id, user_id, content) VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		postID, userID, content).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return nil, translate(err, "comment not found")
	}
	return comment, nil
}

func (r *Repository) CommentsByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.id, c.post_id, c.user_id, u.username, c.content, c.created_at, c.updated_at
		 FROM comments c JOIN users u ON u.id = c.user_id
		 WHERE c.post_id = $1
		 ORDER BY c.created_at`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		comment := model.Comment{}
		err = rows.Scan(&comment.ID, &comment.PostID, &comment.UserID, &comment.Author,
			&comment.Content, &comment.CreatedAt, &comment.UpdatedAt)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

func (r *Repository) CommentByID(ctx context.Context, id int64) (*model.Comment, error) {
	comment := &model.Comment{}
	err := r.db.QueryRowContext(ctx,
		`SELECT c.id, c.post_id, c.user_id, u.username, c.content, c.created_at, c.updated_at
		 FROM comments c JOIN users u ON u.id = c.user_id
		 WHERE c.id = $1`, id).Scan(
		&comment.ID, &comment.PostID, &comment.UserID, &comment.Author,
		&comment.Content, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return nil, translate(err, "comment not found")
	}
	return comment, nil
}

func (r *Repository) UpdateComment(ctx context.Context, id int64, content string) (*model.Comment, error) {
	comment := &model.Comment{ID: id, Content: content}
	err := r.db.QueryRowContext(ctx,
		`UPDATE comments SET content = $2, updated_at = NOW() WHERE id = $1
		 RETURNING post_id, user_id, created_at, updated_at`,
		id, content).Scan(&comment.PostID, &comment.UserID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return nil, translate(err, "comment not found")
	}
	return comment, nil
}

func (r *Repository) DeleteComment(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.New(apperrors.CodeNotFound, "comment not found")
	}
	return nil
}
