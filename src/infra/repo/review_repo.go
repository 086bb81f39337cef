package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"staffrecords/src/core/domain"
	"staffrecords/src/core/identity"
	"staffrecords/src/core/ports"
	"staffrecords/src/infra/db"
	"staffrecords/src/infra/logger"
)

var _ ports.ReviewRepository = (*ReviewRepository)(nil)

// ReviewRepository implements ports.ReviewRepository using pgx.
type ReviewRepository struct {
	db        db.DBTX
	employees domain.Resolver
	cache     *identity.Map[*domain.Review]
	log       *slog.Logger
}

// NewReviewRepository constructs a repository backed by Postgres.
// employees is usually the EmployeeRepository. A nil cache gets a fresh
// identity map.
func NewReviewRepository(conn db.DBTX, employees domain.Resolver, cache *identity.Map[*domain.Review], log *slog.Logger) *ReviewRepository {
	if cache == nil {
		cache = identity.New[*domain.Review]()
	}
	return &ReviewRepository{
		db:        conn,
		employees: employees,
		cache:     cache,
		log:       logger.WithComponent(log, "reviews"),
	}
}

func (r *ReviewRepository) CreateTable(ctx context.Context) error {
	const q = `
		CREATE TABLE IF NOT EXISTS reviews (
			id BIGSERIAL PRIMARY KEY,
			year INTEGER,
			summary TEXT,
			employee_id BIGINT,
			FOREIGN KEY (employee_id) REFERENCES employees(id)
		)
	`
	if _, err := r.db.Exec(ctx, q); err != nil {
		return fmt.Errorf("create reviews table: %w", err)
	}
	return nil
}

func (r *ReviewRepository) DropTable(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DROP TABLE IF EXISTS reviews`); err != nil {
		return fmt.Errorf("drop reviews table: %w", err)
	}
	r.cache.Clear()
	return nil
}

func (r *ReviewRepository) New(ctx context.Context, year int, summary string, employeeID int64) (*domain.Review, error) {
	return domain.NewReview(ctx, year, summary, employeeID, r.employees)
}

func (r *ReviewRepository) Create(ctx context.Context, year int, summary string, employeeID int64) (*domain.Review, error) {
	rev, err := r.New(ctx, year, summary, employeeID)
	if err != nil {
		return nil, err
	}
	return r.Save(ctx, rev)
}

func (r *ReviewRepository) Save(ctx context.Context, rev *domain.Review) (*domain.Review, error) {
	if rev.IsPersisted() {
		return r.Update(ctx, rev)
	}
	const q = `
		INSERT INTO reviews (year, summary, employee_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	rec := rev.Record()
	var id int64
	if err := r.db.QueryRow(ctx, q, rec.Year, rec.Summary, rec.EmployeeID).Scan(&id); err != nil {
		return nil, mapWriteError("insert review", err)
	}
	rev.MarkPersisted(id)
	r.cache.Put(id, rev)
	logger.Debug(r.log, "review inserted", "id", id, "employee_id", rec.EmployeeID)
	return rev, nil
}

func (r *ReviewRepository) Update(ctx context.Context, rev *domain.Review) (*domain.Review, error) {
	if !rev.IsPersisted() {
		return nil, domain.NewStateError("cannot update a review that has not been saved")
	}
	const q = `
		UPDATE reviews
		SET year = $2, summary = $3, employee_id = $4
		WHERE id = $1
	`
	rec := rev.Record()
	res, err := r.db.Exec(ctx, q, rec.ID, rec.Year, rec.Summary, rec.EmployeeID)
	if err != nil {
		return nil, mapWriteError("update review", err)
	}
	if res.RowsAffected() == 0 {
		return nil, domain.NewNotFoundError("review")
	}
	r.cache.Put(rec.ID, rev)
	logger.Debug(r.log, "review updated", "id", rec.ID)
	return rev, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, rev *domain.Review) error {
	if !rev.IsPersisted() {
		return nil
	}
	id := rev.ID()
	if _, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id); err != nil {
		return mapWriteError("delete review", err)
	}
	r.cache.Evict(id)
	rev.MarkDeleted()
	logger.Debug(r.log, "review deleted", "id", id)
	return nil
}

func (r *ReviewRepository) FromRecord(rec *domain.ReviewRecord) *domain.Review {
	if rec == nil {
		return nil
	}
	if rev, ok := r.cache.Get(rec.ID); ok {
		rev.Refresh(*rec)
		return rev
	}
	rev := domain.RestoreReview(*rec, r.employees)
	r.cache.Put(rec.ID, rev)
	return rev
}

func (r *ReviewRepository) FindByID(ctx context.Context, id int64) (*domain.Review, error) {
	const q = `
		SELECT id, year, summary, employee_id
		FROM reviews
		WHERE id = $1
	`
	var rec domain.ReviewRecord
	if err := r.db.QueryRow(ctx, q, id).Scan(&rec.ID, &rec.Year, &rec.Summary, &rec.EmployeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find review %d: %w", id, err)
	}
	return r.FromRecord(&rec), nil
}

func (r *ReviewRepository) GetAll(ctx context.Context) ([]*domain.Review, error) {
	const q = `
		SELECT id, year, summary, employee_id
		FROM reviews
		ORDER BY id
	`
	return r.list(ctx, "list reviews", q)
}

func (r *ReviewRepository) ForEmployee(ctx context.Context, e *domain.Employee) ([]*domain.Review, error) {
	if e == nil || !e.IsPersisted() {
		return []*domain.Review{}, nil
	}
	const q = `
		SELECT id, year, summary, employee_id
		FROM reviews
		WHERE employee_id = $1
		ORDER BY id
	`
	return r.list(ctx, "list employee reviews", q, e.ID())
}

func (r *ReviewRepository) list(ctx context.Context, action, q string, args ...any) ([]*domain.Review, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}
	defer rows.Close()

	reviews := []*domain.Review{}
	for rows.Next() {
		var rec domain.ReviewRecord
		if err := rows.Scan(&rec.ID, &rec.Year, &rec.Summary, &rec.EmployeeID); err != nil {
			return nil, fmt.Errorf("%s: %w", action, err)
		}
		reviews = append(reviews, r.FromRecord(&rec))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}
	return reviews, nil
}
