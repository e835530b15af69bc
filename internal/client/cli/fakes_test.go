package cli

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/dmitrijs2005/moodscreen/internal/client/api"
	"github.com/dmitrijs2005/moodscreen/internal/client/metrics"
	"github.com/dmitrijs2005/moodscreen/internal/client/session"
	"github.com/dmitrijs2005/moodscreen/internal/client/storage"
	"github.com/dmitrijs2005/moodscreen/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func okEnv[T any](data T) *api.Envelope[T] {
	return &api.Envelope[T]{Code: 200, Message: "success", Data: data}
}

type fakeBackend struct {
	calls []string

	loginReq api.LoginRequest
	login    *api.Envelope[api.AuthData]
	loginErr error

	registerReq api.RegisterRequest
	register    *api.Envelope[api.AuthData]

	uploadName string
	uploadBody []byte
	upload     *api.Envelope[api.FaceDetection]

	questions *api.Envelope[[]api.Question]
	submitReq api.SubmitAnswersRequest
	submit    *api.Envelope[api.SubmitResult]
	submitErr error

	combined *api.Envelope[api.CombinedResult]

	historyPage, historySize int
	history                  *api.Envelope[api.Page[api.FaceDetection]]

	total *api.Envelope[api.CombinedResult]
}

func (f *fakeBackend) Login(_ context.Context, req api.LoginRequest) (*api.Envelope[api.AuthData], error) {
	f.calls = append(f.calls, "login")
	f.loginReq = req
	return f.login, f.loginErr
}

func (f *fakeBackend) Register(_ context.Context, req api.RegisterRequest) (*api.Envelope[api.AuthData], error) {
	f.calls = append(f.calls, "register")
	f.registerReq = req
	return f.register, nil
}

func (f *fakeBackend) UploadFaceImage(_ context.Context, filename string, image io.Reader) (*api.Envelope[api.FaceDetection], error) {
	f.calls = append(f.calls, "upload")
	f.uploadName = filename
	b, err := io.ReadAll(image)
	if err != nil {
		return nil, err
	}
	f.uploadBody = b
	return f.upload, nil
}

func (f *fakeBackend) GetQuestions(context.Context) (*api.Envelope[[]api.Question], error) {
	f.calls = append(f.calls, "questions")
	return f.questions, nil
}

func (f *fakeBackend) SubmitAnswers(_ context.Context, req api.SubmitAnswersRequest) (*api.Envelope[api.SubmitResult], error) {
	f.calls = append(f.calls, "submit")
	f.submitReq = req
	return f.submit, f.submitErr
}

func (f *fakeBackend) GetResult(context.Context) (*api.Envelope[api.CombinedResult], error) {
	f.calls = append(f.calls, "combined")
	return f.combined, nil
}

func (f *fakeBackend) GetFaceHistory(_ context.Context, page, pageSize int) (*api.Envelope[api.Page[api.FaceDetection]], error) {
	f.calls = append(f.calls, "history")
	f.historyPage, f.historySize = page, pageSize
	return f.history, nil
}

func (f *fakeBackend) GetAssessmentTotal(context.Context) (*api.Envelope[api.CombinedResult], error) {
	f.calls = append(f.calls, "total")
	return f.total, nil
}

// stubPassword makes every password prompt answer pw.
func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(w io.Writer, _ string) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func signedToken(t *testing.T, username string) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"username": username}).
		SignedString([]byte("test-key"))
	require.NoError(t, err)
	return tok
}

type testApp struct {
	*App
	backend *fakeBackend
	out     *bytes.Buffer
}

// newTestApp builds an App over an in-memory database. input feeds every
// prompt in order.
func newTestApp(t *testing.T, input string) *testApp {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	fb := &fakeBackend{}
	var out bytes.Buffer
	sess := session.New(storage.NewSQLiteRepository(db))

	a, err := newApp(db, sess, fb, metrics.New(), logging.Discard(), bytes.NewBufferString(input), &out)
	require.NoError(t, err)

	return &testApp{App: a, backend: fb, out: &out}
}

func (ta *testApp) signIn(t *testing.T, username string) {
	t.Helper()
	require.NoError(t, ta.session.SetToken(context.Background(), signedToken(t, username)))
}
