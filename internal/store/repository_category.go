package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-quiz-keeper/internal/logger"
	"github.com/MKhiriev/go-quiz-keeper/models"
)

// categoryRepository is the SQL implementation of [CategoryRepository].
type categoryRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCategoryRepository constructs a [CategoryRepository].
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCategories)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("failed to list categories")
		return nil, r.db.classify(ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0, 8)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("failed to scan category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, r.db.classify(ErrScanningRows, err)
	}

	return categories, nil
}

func (r *categoryRepository) GetCategory(ctx context.Context, id int64) (models.Category, error) {
	query, args, err := r.db.builder.
		Select(categoryColumns...).
		From(categoriesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var c models.Category
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Category{}, ErrCategoryNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*categoryRepository.GetCategory").Int64("category_id", id).Msg("failed to get category")
		return models.Category{}, r.db.classify(ErrScanningRow, err)
	}

	return c, nil
}

// CreateCategory inserts c and returns it with the database-assigned id and
// creation time. A duplicate name yields [ErrCategoryAlreadyExists].
func (r *categoryRepository) CreateCategory(ctx context.Context, c models.Category) (models.Category, error) {
	c.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	query, args, err := r.db.builder.
		Insert(categoriesTable).
		Columns("name", "description", "created_at").
		Values(c.Name, c.Description, c.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&c.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*categoryRepository.CreateCategory").Str("name", c.Name).Msg("failed to create category")
		if r.db.classification(err) == UniqueViolation {
			return models.Category{}, ErrCategoryAlreadyExists
		}
		return models.Category{}, r.db.classify(ErrExecutingStatement, err)
	}

	return c, nil
}
