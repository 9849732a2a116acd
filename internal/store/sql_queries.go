package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-quiz-keeper/models"
)

// Record kinds bound into the associated data of every sealed payload.
const (
	recordKindQuestion = "question"
	recordKindScore    = "score"
)

const (
	categoriesTable = "quiz_categories"
	questionsTable  = "questions"
	scoresTable     = "user_scores"
)

var (
	categoryColumns = []string{"id", "name", "description", "created_at"}
	questionColumns = []string{"id", "category_id", "difficulty", "encrypted_data", "created_at", "updated_at"}
	scoreColumns    = []string{"id", "category_id", "encrypted_data", "completed_at"}
)

// Placeholder-free queries shared by every driver.
const (
	listCategories = `SELECT id, name, description, created_at
		FROM quiz_categories
		ORDER BY id;`

	countQuestionsByCategory = `SELECT category_id, COUNT(*)
		FROM questions
		GROUP BY category_id;`
)

// buildListQuestionsQuery builds the SELECT behind ListQuestions. A zero
// category id selects every category; Random orders rows randomly, which
// both SQLite and PostgreSQL spell RANDOM().
func buildListQuestionsQuery(builder sq.StatementBuilderType, filter models.QuestionFilter) (string, []any, error) {
	query := builder.Select(questionColumns...).From(questionsTable)

	if filter.CategoryID != models.AllCategoriesID {
		query = query.Where(sq.Eq{"category_id": filter.CategoryID})
	}

	if filter.Random {
		query = query.OrderBy("RANDOM()")
	} else {
		query = query.OrderBy("created_at", "id")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query.ToSql()
}

// buildListScoresQuery builds the SELECT behind ListScores. Rows come back
// in completion order so that ties on percentage keep the earlier attempt
// first.
func buildListScoresQuery(builder sq.StatementBuilderType, filter models.ScoreFilter) (string, []any, error) {
	query := builder.Select(scoreColumns...).From(scoresTable)

	if filter.CategoryID != nil {
		query = query.Where(sq.Eq{"category_id": *filter.CategoryID})
	}

	return query.OrderBy("completed_at", "id").ToSql()
}
