package resultstore

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/moodscreen/internal/client/api"
)

type Kind string

const (
	KindQuestionnaire Kind = "questionnaire"
	KindCombined      Kind = "combined"
)

// Assessment is the value the client keeps as "the result": exactly one of
// the two backend outcomes, tagged by Kind.
type Assessment struct {
	Kind          Kind                `json:"kind"`
	Questionnaire *api.SubmitResult   `json:"questionnaire,omitempty"`
	Combined      *api.CombinedResult `json:"combined,omitempty"`
}

func FromQuestionnaire(r api.SubmitResult) Assessment {
	return Assessment{Kind: KindQuestionnaire, Questionnaire: &r}
}

func FromCombined(r api.CombinedResult) Assessment {
	return Assessment{Kind: KindCombined, Combined: &r}
}

var errKindMismatch = errors.New("payload does not match kind")

func (a Assessment) Validate() error {
	switch a.Kind {
	case KindQuestionnaire:
		if a.Questionnaire == nil || a.Combined != nil {
			return fmt.Errorf("%s: %w", a.Kind, errKindMismatch)
		}
	case KindCombined:
		if a.Combined == nil || a.Questionnaire != nil {
			return fmt.Errorf("%s: %w", a.Kind, errKindMismatch)
		}
	default:
		return fmt.Errorf("unknown assessment kind %q", a.Kind)
	}
	return nil
}

// Score and Level give the headline numbers whatever the kind.
func (a Assessment) Score() int {
	switch {
	case a.Combined != nil:
		return a.Combined.CombinedScore
	case a.Questionnaire != nil:
		return a.Questionnaire.Score
	}
	return 0
}

func (a Assessment) Level() string {
	switch {
	case a.Combined != nil:
		return a.Combined.CombinedLevel
	case a.Questionnaire != nil:
		return a.Questionnaire.Level
	}
	return ""
}
