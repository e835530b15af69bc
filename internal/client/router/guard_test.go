package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuard(t *testing.T) {
	dests := []string{
		"/", LoginPath, RegisterPath, HomePath, FaceDetectionPath, QuestionnairePath,
		ResultPath, CombinedResultPath, "/nowhere", "/login/extra",
	}

	for _, d := range dests {
		for _, has := range []bool{false, true} {
			got := Guard(d, has)
			public := d == LoginPath || d == RegisterPath

			if !public && !has {
				assert.Equal(t, Decision{Redirect: LoginPath}, got, "dest=%s credential=%v", d, has)
			} else {
				assert.Equal(t, Decision{Allowed: true}, got, "dest=%s credential=%v", d, has)
			}
		}
	}
}

func TestGuard_QuestionnaireWithoutCredential(t *testing.T) {
	assert.Equal(t, Decision{Redirect: "/login"}, Guard("/home/questionnaire", false))
}
