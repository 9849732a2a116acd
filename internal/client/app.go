package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-quiz-keeper/internal/adapter"
	"github.com/MKhiriev/go-quiz-keeper/internal/config"
	"github.com/MKhiriev/go-quiz-keeper/internal/logger"
	"github.com/MKhiriev/go-quiz-keeper/models"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingFlag    = errors.New("missing required flag")
)

type App struct {
	adapter  adapter.ServerAdapter
	password PasswordReader

	adminPassword string

	out io.Writer

	// copyToClipboard is replaced in tests.
	copyToClipboard func(string) error

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, password PasswordReader, cfg config.ClientApp, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter:         serverAdapter,
		password:        password,
		adminPassword:   cfg.AdminPassword,
		out:             out,
		copyToClipboard: clipboard.WriteAll,
		logger:          logger,
	}
}

type command struct {
	name  string
	usage string
	admin bool
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = []command{
	{name: "version", usage: "print the server version", run: (*App).version},
	{name: "categories", usage: "list categories", run: (*App).categories},
	{name: "leaderboard", usage: "[-category N] [-limit N]  show a ranking", run: (*App).leaderboard},
	{name: "add-category", usage: "-name NAME [-description TEXT]", admin: true, run: (*App).addCategory},
	{name: "questions", usage: "[-category N]  list questions with answers", admin: true, run: (*App).questions},
	{name: "question", usage: "-id ID  show one question", admin: true, run: (*App).question},
	{name: "add-question", usage: "-file q.json", admin: true, run: (*App).addQuestion},
	{name: "update-question", usage: "-id ID -file q.json", admin: true, run: (*App).updateQuestion},
	{name: "delete-question", usage: "-id ID", admin: true, run: (*App).deleteQuestion},
	{name: "delete-score", usage: "-id ID", admin: true, run: (*App).deleteScore},
	{name: "stats", usage: "show statistics", admin: true, run: (*App).stats},
	{name: "token", usage: "[-copy]  print an admin token for the web UI", admin: true, run: (*App).token},
}

// Run executes the sub-command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.usage()
		return nil
	}

	idx := slices.IndexFunc(commands, func(c command) bool { return c.name == args[0] })
	if idx < 0 {
		a.usage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	cmd := commands[idx]

	if cmd.admin {
		if err := a.login(ctx); err != nil {
			return err
		}
	}

	a.logger.Debug().Str("func", "*App.Run").Str("command", cmd.name).Msg("running command")
	if err := cmd.run(a, ctx, args[1:]); err != nil {
		a.logger.Err(err).Str("func", "*App.Run").Str("command", cmd.name).Msg("command failed")
		return fmt.Errorf("%s: %w", cmd.name, err)
	}
	return nil
}

func (a *App) usage() {
	renderTitle(a.out, "usage: quiz-keeper-client <command> [flags]")
	for _, c := range commands {
		fmt.Fprintf(a.out, "  %-16s %s\n", c.name, helpStyle.Render(c.usage))
	}
}

func (a *App) login(ctx context.Context) error {
	if a.adapter.Token() != "" {
		return nil
	}

	password := a.adminPassword
	if password == "" {
		var err error
		if password, err = a.password.ReadPassword("Admin password: "); err != nil {
			return err
		}
	}

	if err := a.adapter.Login(ctx, password); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (a *App) version(ctx context.Context, _ []string) error {
	v, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, v)
	return nil
}

func (a *App) categories(ctx context.Context, _ []string) error {
	categories, err := a.adapter.ListCategories(ctx)
	if err != nil {
		return err
	}
	renderCategories(a.out, categories)
	return nil
}

func (a *App) leaderboard(ctx context.Context, args []string) error {
	fs := newFlagSet("leaderboard")
	category := fs.Int64("category", -1, "category id; 0 for mixed quizzes, omit for overall")
	limit := fs.Int("limit", 0, "number of rows")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var categoryID *int64
	if *category >= 0 {
		categoryID = category
	}

	board, err := a.adapter.GetLeaderboard(ctx, categoryID, *limit)
	if err != nil {
		return err
	}
	renderLeaderboard(a.out, board)
	return nil
}

func (a *App) addCategory(ctx context.Context, args []string) error {
	fs := newFlagSet("add-category")
	name := fs.String("name", "", "category name")
	description := fs.String("description", "", "category description")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*name) == "" {
		return fmt.Errorf("%w: -name", ErrMissingFlag)
	}

	created, err := a.adapter.CreateCategory(ctx, models.Category{Name: *name, Description: *description})
	if err != nil {
		return err
	}
	renderDone(a.out, "category %d %q created", created.ID, created.Name)
	return nil
}

func (a *App) questions(ctx context.Context, args []string) error {
	fs := newFlagSet("questions")
	category := fs.Int64("category", models.AllCategoriesID, "category id, 0 for all")
	if err := fs.Parse(args); err != nil {
		return err
	}

	questions, err := a.adapter.ListQuestions(ctx, *category)
	if err != nil {
		return err
	}
	renderQuestions(a.out, questions)
	return nil
}

func (a *App) question(ctx context.Context, args []string) error {
	id, err := parseID("question", args)
	if err != nil {
		return err
	}

	q, err := a.adapter.GetQuestion(ctx, id)
	if err != nil {
		return err
	}
	renderQuestion(a.out, q)
	return nil
}

func (a *App) addQuestion(ctx context.Context, args []string) error {
	fs := newFlagSet("add-question")
	file := fs.String("file", "", "JSON file holding the question")
	if err := fs.Parse(args); err != nil {
		return err
	}

	q, err := readQuestionFile(*file)
	if err != nil {
		return err
	}

	created, err := a.adapter.CreateQuestion(ctx, q)
	if err != nil {
		return err
	}
	renderDone(a.out, "question %s created", created.ID)
	return nil
}

func (a *App) updateQuestion(ctx context.Context, args []string) error {
	fs := newFlagSet("update-question")
	id := fs.String("id", "", "question id")
	file := fs.String("file", "", "JSON file holding the new question")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("%w: -id", ErrMissingFlag)
	}

	q, err := readQuestionFile(*file)
	if err != nil {
		return err
	}

	updated, err := a.adapter.UpdateQuestion(ctx, *id, q)
	if err != nil {
		return err
	}
	renderDone(a.out, "question %s updated", updated.ID)
	return nil
}

func (a *App) deleteQuestion(ctx context.Context, args []string) error {
	id, err := parseID("delete-question", args)
	if err != nil {
		return err
	}
	if err = a.adapter.DeleteQuestion(ctx, id); err != nil {
		return err
	}
	renderDone(a.out, "question %s deleted", id)
	return nil
}

func (a *App) deleteScore(ctx context.Context, args []string) error {
	id, err := parseID("delete-score", args)
	if err != nil {
		return err
	}
	if err = a.adapter.DeleteScore(ctx, id); err != nil {
		return err
	}
	renderDone(a.out, "score %s deleted", id)
	return nil
}

func (a *App) stats(ctx context.Context, _ []string) error {
	stats, err := a.adapter.GetStatistics(ctx)
	if err != nil {
		return err
	}
	renderStatistics(a.out, stats)
	return nil
}

// token prints the admin token, or copies it to the clipboard with -copy so
// it does not end up in the terminal scrollback.
func (a *App) token(_ context.Context, args []string) error {
	fs := newFlagSet("token")
	copyFlag := fs.Bool("copy", false, "copy to clipboard instead of printing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !*copyFlag {
		fmt.Fprintln(a.out, a.adapter.Token())
		return nil
	}

	if err := a.copyToClipboard(a.adapter.Token()); err != nil {
		return fmt.Errorf("copy token: %w", err)
	}
	renderDone(a.out, "admin token copied to clipboard")
	return nil
}

func parseID(name string, args []string) (string, error) {
	fs := newFlagSet(name)
	id := fs.String("id", "", "record id")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if *id == "" {
		return "", fmt.Errorf("%w: -id", ErrMissingFlag)
	}
	return *id, nil
}

func readQuestionFile(path string) (models.Question, error) {
	if path == "" {
		return models.Question{}, fmt.Errorf("%w: -file", ErrMissingFlag)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Question{}, fmt.Errorf("read question file: %w", err)
	}

	var q models.Question
	if err = json.Unmarshal(data, &q); err != nil {
		return models.Question{}, fmt.Errorf("decode question file: %w", err)
	}
	return q, nil
}
