package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/moodscreen/internal/client/api"
	"github.com/dmitrijs2005/moodscreen/internal/client/resultstore"
	"github.com/dmitrijs2005/moodscreen/internal/client/router"
	"github.com/google/uuid"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var (
	errPasswordMismatch = errors.New("passwords do not match")
	errNoToken          = errors.New("backend returned no token")
)

func (a *App) views() router.Views {
	return router.Views{
		Login:          a.screen("login", a.loginScreen),
		Register:       a.screen("register", a.registerScreen),
		Home:           a.screen("home", a.homeScreen),
		FaceDetection:  a.screen("face-detection", a.faceScreen),
		Questionnaire:  a.screen("questionnaire", a.questionnaireScreen),
		Result:         a.screen("result", a.resultScreen),
		CombinedResult: a.screen("combined-result", a.combinedScreen),
	}
}

func (a *App) screen(name string, v router.View) router.Loader {
	return func() (router.View, error) {
		a.log.Debug(context.Background(), "screen loaded", "screen", name)
		return v, nil
	}
}

func (a *App) loginScreen(ctx context.Context) error {
	fmt.Fprintln(a.out, "== Sign in ==")

	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer clear(password)

	env, err := a.backend.Login(ctx, api.LoginRequest{Username: username, Password: string(password)})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return a.signedIn(ctx, env)
}

func (a *App) registerScreen(ctx context.Context) error {
	fmt.Fprintln(a.out, "== Create account ==")

	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer clear(password)
	confirm, err := getPassword(a.out, "Repeat password")
	if err != nil {
		return err
	}
	defer clear(confirm)

	if string(password) != string(confirm) {
		return errPasswordMismatch
	}

	env, err := a.backend.Register(ctx, api.RegisterRequest{
		Username: username,
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return a.signedIn(ctx, env)
}

// signedIn stores the credential from a login or register answer and moves
// on to the home shell.
func (a *App) signedIn(ctx context.Context, env *api.Envelope[api.AuthData]) error {
	if err := env.Err(); err != nil {
		return err
	}
	if env.Data.Token == "" {
		return errNoToken
	}
	if err := a.session.SetToken(ctx, env.Data.Token); err != nil {
		return err
	}

	a.log.Info(ctx, "signed in", "user", env.Data.User.Username)
	fmt.Fprintf(a.out, "Welcome, %s!\n", env.Data.User.Username)

	return a.Open(ctx, router.HomePath)
}

func (a *App) homeScreen(ctx context.Context) error {
	name := a.session.Username(ctx)
	if name == "" {
		name = "you"
	}
	fmt.Fprintf(a.out, "== moodscreen: signed in as %s ==\n", name)
	fmt.Fprintln(a.out, "face | questionnaire | result | combined | history | total")
	return nil
}

func (a *App) faceScreen(ctx context.Context) error {
	fmt.Fprintln(a.out, "== Face detection ==")

	path, err := getSimpleText(a.reader, "Image file to upload (empty to skip)", a.out)
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	env, err := a.backend.UploadFaceImage(ctx, uploadName(path), f)
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	if err := env.Err(); err != nil {
		return err
	}

	printFaceDetection(a.out, env.Data)
	return nil
}

// uploadName is the file name sent with an image. Raw captures without an
// extension get a generated one so the backend accepts them.
func uploadName(path string) string {
	base := filepath.Base(path)
	if filepath.Ext(base) != "" {
		return base
	}
	return "capture_" + uuid.NewString()[:8] + ".jpg"
}

func (a *App) questionnaireScreen(ctx context.Context) error {
	fmt.Fprintln(a.out, "== Questionnaire ==")

	env, err := a.backend.GetQuestions(ctx)
	if err != nil {
		return fmt.Errorf("questions: %w", err)
	}
	if err := env.Err(); err != nil {
		return err
	}

	type askable struct {
		q       api.Question
		choices []string
	}
	var asks []askable
	for _, q := range env.Data {
		choices, err := q.Choices()
		if err != nil {
			return err
		}
		if len(choices) > 0 {
			asks = append(asks, askable{q: q, choices: choices})
		}
	}
	if len(asks) == 0 {
		fmt.Fprintln(a.out, "No questions available.")
		return nil
	}

	answers := make([]api.Answer, 0, len(asks))
	for i, ask := range asks {
		fmt.Fprintf(a.out, "\n%d/%d. %s\n", i+1, len(asks), ask.q.Title)
		if ask.q.Description != "" {
			fmt.Fprintln(a.out, ask.q.Description)
		}
		for n, c := range ask.choices {
			fmt.Fprintf(a.out, "  %d) %s\n", n+1, c)
		}

		v, err := GetChoice(a.reader, "Answer", len(ask.choices), a.out)
		if err != nil {
			return err
		}
		answers = append(answers, api.Answer{QuestionID: ask.q.ID, AnswerValue: v})
	}

	res, err := a.backend.SubmitAnswers(ctx, api.SubmitAnswersRequest{Answers: answers})
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	if err := res.Err(); err != nil {
		return err
	}

	if err := a.results.SetResult(ctx, resultstore.FromQuestionnaire(res.Data)); err != nil {
		return err
	}
	return a.Open(ctx, router.ResultPath)
}

func (a *App) resultScreen(ctx context.Context) error {
	fmt.Fprintln(a.out, "== Result ==")

	if err := a.results.LoadFromStorage(ctx); err != nil {
		return err
	}
	v, ok := a.results.Result()
	if !ok {
		fmt.Fprintln(a.out, "No result yet. Take the questionnaire first.")
		return nil
	}

	printAssessment(a.out, v)
	return nil
}

func (a *App) combinedScreen(ctx context.Context) error {
	fmt.Fprintln(a.out, "== Combined result ==")

	env, err := a.backend.GetResult(ctx)
	if err != nil {
		return fmt.Errorf("combined result: %w", err)
	}
	if err := env.Err(); err != nil {
		return err
	}

	if err := a.results.SetResult(ctx, resultstore.FromCombined(env.Data)); err != nil {
		return err
	}
	printCombined(a.out, env.Data)
	return nil
}
