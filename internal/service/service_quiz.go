package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/MKhiriev/go-quiz-keeper/internal/config"
	"github.com/MKhiriev/go-quiz-keeper/internal/logger"
	"github.com/MKhiriev/go-quiz-keeper/internal/store"
	"github.com/MKhiriev/go-quiz-keeper/internal/utils"
	"github.com/MKhiriev/go-quiz-keeper/internal/validators"
	"github.com/MKhiriev/go-quiz-keeper/models"
)

// quizService runs a quiz from start to submit. The questions drawn at start
// travel in a signed quiz token; the only per-player state kept here is the
// answers locked by CheckAnswer.
type quizService struct {
	questionRepository store.QuestionRepository
	categoryRepository store.CategoryRepository
	scoreRepository    store.ScoreRepository
	validator          validators.Validator
	ids                store.IDGenerator

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration
	questionLimit uint64

	// shuffle mixes questions drawn from several categories.
	shuffle func(n int, swap func(i, j int))

	locks *answerLocks

	logger *logger.Logger
}

func NewQuizService(
	questionRepository store.QuestionRepository,
	categoryRepository store.CategoryRepository,
	scoreRepository store.ScoreRepository,
	appCfg config.App,
	quizCfg config.Quiz,
	logger *logger.Logger,
) QuizService {
	return &quizService{
		questionRepository: questionRepository,
		categoryRepository: categoryRepository,
		scoreRepository:    scoreRepository,
		validator:          validators.NewQuizValidator(),
		ids:                utils.NewUUIDGenerator(),
		tokenSignKey:       appCfg.TokenSignKey,
		tokenIssuer:        appCfg.TokenIssuer,
		tokenDuration:      appCfg.QuizTokenDuration,
		questionLimit:      quizCfg.QuestionLimit,
		shuffle:            rand.Shuffle,
		locks:              newAnswerLocks(),
		logger:             logger,
	}
}

// StartQuiz draws random questions and opens a quiz session.
//
// For a single category at most limit questions are drawn. For
// [models.AllCategoriesID] up to limit questions are drawn from every
// category and the combined set is shuffled.
func (s *quizService) StartQuiz(ctx context.Context, req models.StartQuizRequest) (models.Quiz, error) {
	log := logger.FromContext(ctx)

	req.Username = strings.TrimSpace(req.Username)
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Quiz{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	limit := req.Limit
	if limit == 0 {
		limit = s.questionLimit
	}

	var (
		categoryName string
		questions    []models.Question
		err          error
	)
	if req.CategoryID == models.AllCategoriesID {
		categoryName = models.AllCategoriesName
		questions, err = s.drawFromEveryCategory(ctx, limit)
	} else {
		categoryName, questions, err = s.drawFromCategory(ctx, req.CategoryID, limit)
	}
	if err != nil {
		log.Err(err).Str("func", "*quizService.StartQuiz").Int64("category_id", req.CategoryID).Msg("failed to draw questions")
		return models.Quiz{}, err
	}

	if len(questions) == 0 {
		return models.Quiz{}, ErrNoQuestionsAvailable
	}

	session := models.QuizSession{
		ID:           s.ids.Generate(),
		Username:     req.Username,
		CategoryID:   req.CategoryID,
		CategoryName: categoryName,
		QuestionIDs:  make([]string, 0, len(questions)),
	}
	public := make([]models.PublicQuestion, 0, len(questions))
	for _, q := range questions {
		session.QuestionIDs = append(session.QuestionIDs, q.ID)
		public = append(public, q.Public())
	}

	token, err := utils.GenerateQuizToken(s.tokenIssuer, s.tokenDuration, s.tokenSignKey, session)
	if err != nil {
		log.Err(err).Str("func", "*quizService.StartQuiz").Msg("failed to sign quiz token")
		return models.Quiz{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().
		Str("func", "*quizService.StartQuiz").
		Str("quiz_id", session.ID).
		Int64("category_id", req.CategoryID).
		Int("questions", len(public)).
		Msg("quiz started")

	return models.Quiz{
		Token:        token.SignedString,
		CategoryID:   req.CategoryID,
		CategoryName: categoryName,
		Questions:    public,
	}, nil
}

func (s *quizService) drawFromCategory(ctx context.Context, categoryID int64, limit uint64) (string, []models.Question, error) {
	category, err := s.categoryRepository.GetCategory(ctx, categoryID)
	if err != nil {
		return "", nil, fmt.Errorf("error getting category: %w", err)
	}

	questions, err := s.questionRepository.ListQuestions(ctx, models.QuestionFilter{
		CategoryID: categoryID,
		Limit:      limit,
		Random:     true,
	})
	if err != nil {
		return "", nil, fmt.Errorf("error drawing questions: %w", err)
	}

	return category.Name, questions, nil
}

func (s *quizService) drawFromEveryCategory(ctx context.Context, limit uint64) ([]models.Question, error) {
	categories, err := s.categoryRepository.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}

	var questions []models.Question
	for _, c := range categories {
		drawn, err := s.questionRepository.ListQuestions(ctx, models.QuestionFilter{
			CategoryID: c.ID,
			Limit:      limit,
			Random:     true,
		})
		if err != nil {
			return nil, fmt.Errorf("error drawing questions for category %d: %w", c.ID, err)
		}
		questions = append(questions, drawn...)
	}

	s.shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	return questions, nil
}

// CheckAnswer reveals whether a single answer is right, for immediate
// feedback. The first answer checked for a question is locked: later checks
// report that answer again and SubmitQuiz grades it.
func (s *quizService) CheckAnswer(ctx context.Context, req models.CheckAnswerRequest) (models.AnswerResult, error) {
	session, err := s.parseQuizToken(ctx, req.Token)
	if err != nil {
		return models.AnswerResult{}, err
	}

	if !session.Contains(req.QuestionID) {
		return models.AnswerResult{}, ErrQuestionNotInQuiz
	}

	q, err := s.questionRepository.GetQuestion(ctx, req.QuestionID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*quizService.CheckAnswer").Str("question_id", req.QuestionID).Msg("failed to get question")
		return models.AnswerResult{}, fmt.Errorf("error getting question: %w", err)
	}

	answer := s.locks.lock(session, req.QuestionID, req.Answer)
	return grade(q, answer, true), nil
}

// SubmitQuiz grades every question of the session and records the score.
// Unanswered questions count as wrong; questions deleted since the quiz
// started are left out of the total. Answers locked by CheckAnswer take
// precedence over the submitted ones. A session can be submitted once.
func (s *quizService) SubmitQuiz(ctx context.Context, req models.SubmitQuizRequest) (models.QuizResult, error) {
	log := logger.FromContext(ctx)

	session, err := s.parseQuizToken(ctx, req.Token)
	if err != nil {
		return models.QuizResult{}, err
	}

	answers := maps.Clone(req.Answers)
	if answers == nil {
		answers = make(map[string]int)
	}
	maps.Copy(answers, s.locks.answers(session.ID))

	results := make([]models.AnswerResult, 0, len(session.QuestionIDs))
	correct := 0
	for _, id := range session.QuestionIDs {
		q, err := s.questionRepository.GetQuestion(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			log.Warn().Str("func", "*quizService.SubmitQuiz").Str("question_id", id).Msg("question deleted during quiz")
			continue
		}
		if err != nil {
			log.Err(err).Str("func", "*quizService.SubmitQuiz").Str("question_id", id).Msg("failed to get question")
			return models.QuizResult{}, fmt.Errorf("error getting question: %w", err)
		}

		answer, answered := answers[id]
		result := grade(q, answer, answered)
		if result.Correct {
			correct++
		}
		results = append(results, result)
	}

	if len(results) == 0 {
		return models.QuizResult{}, ErrNoQuestionsAvailable
	}

	score := models.Score{
		ID:             session.ID,
		Username:       session.Username,
		CategoryID:     session.CategoryID,
		Score:          correct,
		TotalQuestions: len(results),
	}
	if err := s.validator.Validate(ctx, score); err != nil {
		return models.QuizResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	saved, err := s.scoreRepository.PutScore(ctx, score)
	if errors.Is(err, store.ErrScoreAlreadyExists) {
		return models.QuizResult{}, ErrQuizAlreadySubmitted
	}
	if err != nil {
		log.Err(err).Str("func", "*quizService.SubmitQuiz").Str("quiz_id", session.ID).Msg("failed to save score")
		return models.QuizResult{}, fmt.Errorf("error saving score: %w", err)
	}
	s.locks.release(session.ID)

	percentage := roundToOneDecimal(saved.Percentage())
	log.Info().
		Str("func", "*quizService.SubmitQuiz").
		Str("quiz_id", session.ID).
		Int("score", saved.Score).
		Int("total", saved.TotalQuestions).
		Msg("quiz submitted")

	return models.QuizResult{
		ScoreID:        saved.ID,
		Username:       saved.Username,
		CategoryName:   session.CategoryName,
		Score:          saved.Score,
		TotalQuestions: saved.TotalQuestions,
		Percentage:     percentage,
		Message:        PerformanceMessage(percentage),
		Results:        results,
	}, nil
}

func (s *quizService) parseQuizToken(ctx context.Context, token string) (models.QuizSession, error) {
	if token == "" {
		return models.QuizSession{}, ErrTokenIsExpiredOrInvalid
	}

	session, err := utils.ParseQuizToken(token, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*quizService.parseQuizToken").Msg("quiz token rejected")
		return models.QuizSession{}, ErrTokenIsExpiredOrInvalid
	}

	return session, nil
}

func grade(q models.Question, answer int, answered bool) models.AnswerResult {
	if !answered {
		answer = -1
	}
	return models.AnswerResult{
		QuestionID:    q.ID,
		Selected:      answer,
		CorrectAnswer: q.CorrectAnswer,
		Correct:       answered && answer == q.CorrectAnswer,
		Explanation:   q.Explanation,
	}
}
