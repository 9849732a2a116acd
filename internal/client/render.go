package client

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-quiz-keeper/models"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Bold(true)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

func renderTitle(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
}

func renderDone(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf(format, args...)))
}

func renderCategories(w io.Writer, categories []models.Category) {
	t := newTable("ID", "NAME", "DESCRIPTION")
	for _, c := range categories {
		t.Row(strconv.FormatInt(c.ID, 10), c.Name, c.Description)
	}
	renderTitle(w, "Categories")
	fmt.Fprintln(w, t.String())
}

func renderQuestions(w io.Writer, questions []models.Question) {
	if len(questions) == 0 {
		fmt.Fprintln(w, helpStyle.Render("no questions"))
		return
	}

	t := newTable("ID", "CATEGORY", "DIFFICULTY", "QUESTION", "ANSWER")
	for _, q := range questions {
		t.Row(q.ID, strconv.FormatInt(q.CategoryID, 10), string(q.Difficulty), q.Prompt, answerText(q))
	}
	renderTitle(w, fmt.Sprintf("Questions (%d)", len(questions)))
	fmt.Fprintln(w, t.String())
}

func renderQuestion(w io.Writer, q models.Question) {
	renderTitle(w, q.Prompt)
	for i, option := range q.Options {
		marker := " "
		if i == q.CorrectAnswer {
			marker = "*"
		}
		fmt.Fprintf(w, " %s %d. %s\n", marker, i+1, option)
	}
	if q.Explanation != "" {
		fmt.Fprintln(w, helpStyle.Render(q.Explanation))
	}
	fmt.Fprintln(w, helpStyle.Render(fmt.Sprintf("id %s, category %d, %s", q.ID, q.CategoryID, q.Difficulty)))
}

func answerText(q models.Question) string {
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return "?"
	}
	return q.Options[q.CorrectAnswer]
}

func renderLeaderboard(w io.Writer, board models.Leaderboard) {
	if board.CategoryID != nil {
		t := newTable("#", "USER", "SCORE", "%", "COMPLETED")
		for i, e := range board.Entries {
			t.Row(strconv.Itoa(i+1), e.Username, fmt.Sprintf("%d/%d", e.Score, e.TotalQuestions),
				formatPercent(e.Percentage), formatTime(e.CompletedAt))
		}
		renderTitle(w, fmt.Sprintf("Leaderboard, category %d", *board.CategoryID))
		fmt.Fprintln(w, t.String())
		return
	}

	t := newTable("#", "USER", "AVG %", "QUIZZES", "LAST QUIZ")
	for i, e := range board.Overall {
		t.Row(strconv.Itoa(i+1), e.Username, formatPercent(e.AveragePercentage),
			strconv.Itoa(e.QuizzesTaken), formatTime(e.LastQuiz))
	}
	renderTitle(w, "Leaderboard, overall")
	fmt.Fprintln(w, t.String())
}

func renderStatistics(w io.Writer, stats models.Statistics) {
	t := newTable("CATEGORY", "QUESTIONS")
	for _, s := range stats.CategoryStats {
		t.Row(s.Name, strconv.Itoa(s.QuestionCount))
	}
	renderTitle(w, "Statistics")
	fmt.Fprintln(w, t.String())

	summary := []string{
		fmt.Sprintf("total questions: %d", stats.TotalQuestions),
		fmt.Sprintf("quizzes taken:   %d", stats.TotalScores),
		fmt.Sprintf("unique players:  %d", stats.UniqueUsers),
		fmt.Sprintf("average score:   %s%%", formatPercent(stats.AverageScore)),
	}
	fmt.Fprintln(w, strings.Join(summary, "\n"))
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
