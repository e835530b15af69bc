package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loadCounter struct {
	calls map[string]int
	fail  map[string]error
}

func newLoadCounter() *loadCounter {
	return &loadCounter{calls: map[string]int{}, fail: map[string]error{}}
}

func (l *loadCounter) loader(name string) Loader {
	return func() (View, error) {
		l.calls[name]++
		if err := l.fail[name]; err != nil {
			return nil, err
		}
		return func(context.Context) error { return nil }, nil
	}
}

func (l *loadCounter) views() Views {
	return Views{
		Login:          l.loader("Login"),
		Register:       l.loader("Register"),
		Home:           l.loader("Home"),
		FaceDetection:  l.loader("FaceDetection"),
		Questionnaire:  l.loader("Questionnaire"),
		Result:         l.loader("Result"),
		CombinedResult: l.loader("CombinedResult"),
	}
}

func TestDefaultRoutes_Tree(t *testing.T) {
	r, err := New(DefaultRoutes(newLoadCounter().views()))
	require.NoError(t, err)

	var paths []string
	for _, rec := range r.Records() {
		paths = append(paths, rec.Path)
	}
	assert.Equal(t, []string{
		"/", "/login", "/register", "/home",
		"/home/face-detection", "/home/questionnaire", "/home/result", "/home/combined-result",
	}, paths)

	rec, ok := r.Lookup("CombinedResult")
	require.True(t, ok)
	assert.Equal(t, CombinedResultPath, rec.Path)
	require.NotNil(t, rec.Parent)
	assert.Equal(t, "Home", rec.Parent.Name)
}

func TestResolve_FollowsRecordRedirects(t *testing.T) {
	r, err := New(DefaultRoutes(newLoadCounter().views()))
	require.NoError(t, err)

	tests := []struct {
		in, want string
		matched  bool
	}{
		{"/", LoginPath, true},
		{"", LoginPath, true},
		{"/home", FaceDetectionPath, true},
		{"/home/", FaceDetectionPath, true},
		{"/home/result?x=1", ResultPath, true},
		{"home/questionnaire", QuestionnairePath, true},
		{"/missing", "/missing", false},
	}

	for _, tt := range tests {
		got, rec, err := r.Resolve(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.matched, rec != nil, tt.in)
	}
}

func TestResolve_RedirectLoop(t *testing.T) {
	r, err := New([]Route{
		{Path: "/a", Redirect: "/b"},
		{Path: "/b", Redirect: "/a"},
	})
	require.NoError(t, err)

	_, _, err = r.Resolve("/a")
	assert.ErrorIs(t, err, ErrRedirectLoop)
}

func TestNew_RejectsDuplicates(t *testing.T) {
	_, err := New([]Route{{Path: "/a"}, {Path: "/a/"}})
	assert.ErrorIs(t, err, ErrDuplicateRoute)

	_, err = New([]Route{{Path: "/a", Name: "X"}, {Path: "/b", Name: "X"}})
	assert.ErrorIs(t, err, ErrDuplicateRoute)
}

func TestRecordView_LazyAndCached(t *testing.T) {
	lc := newLoadCounter()
	r, err := New(DefaultRoutes(lc.views()))
	require.NoError(t, err)

	assert.Empty(t, lc.calls, "nothing is loaded up front")

	rec, _ := r.Lookup("Result")
	_, err = rec.View()
	require.NoError(t, err)
	_, err = rec.View()
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"Result": 1}, lc.calls)
}

func TestRecordView_FailedLoadIsRetried(t *testing.T) {
	lc := newLoadCounter()
	boom := errors.New("chunk missing")
	lc.fail["Login"] = boom

	r, err := New(DefaultRoutes(lc.views()))
	require.NoError(t, err)
	rec, _ := r.Lookup("Login")

	_, err = rec.View()
	require.ErrorIs(t, err, boom)

	delete(lc.fail, "Login")
	v, err := rec.View()
	require.NoError(t, err)
	assert.NotNil(t, v)
	assert.Equal(t, 2, lc.calls["Login"])
}

func TestRecordView_NoLoader(t *testing.T) {
	r, err := New([]Route{{Path: "/", Redirect: "/x"}, {Path: "/x"}})
	require.NoError(t, err)

	_, rec, err := r.Resolve("/x")
	require.NoError(t, err)
	v, err := rec.View()
	require.NoError(t, err)
	assert.Nil(t, v)
}
