package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/moodscreen/internal/client/api"
	"github.com/dmitrijs2005/moodscreen/internal/client/resultstore"
)

const dateLayout = "2006-01-02 15:04"

func printAssessment(w io.Writer, v resultstore.Assessment) {
	switch v.Kind {
	case resultstore.KindQuestionnaire:
		printSubmitResult(w, *v.Questionnaire)
	case resultstore.KindCombined:
		printCombined(w, *v.Combined)
	}
}

func printSubmitResult(w io.Writer, r api.SubmitResult) {
	fmt.Fprintf(w, "Score: %d (%s)\n", r.Score, r.Level)
	if r.Description != "" {
		fmt.Fprintln(w, r.Description)
	}
	if r.Suggestions != "" {
		fmt.Fprintf(w, "Suggestions: %s\n", r.Suggestions)
	}
}

func printCombined(w io.Writer, r api.CombinedResult) {
	fmt.Fprintf(w, "Combined score: %d (%s)\n", r.CombinedScore, r.CombinedLevel)
	fmt.Fprintf(w, "  questionnaire: %d (%s)%s\n", r.Questionnaire.Score, r.Questionnaire.Level, onDate(r.AssessmentDate))
	fmt.Fprintf(w, "  face:          %d (%s, %s)%s\n", r.FaceDetection.Score, r.FaceDetection.Level, r.FaceDetection.Emotion, onDate(r.DetectionDate))
	if r.Description != "" {
		fmt.Fprintln(w, r.Description)
	}
	if r.Suggestions != "" {
		fmt.Fprintf(w, "Suggestions: %s\n", r.Suggestions)
	}
}

func printFaceDetection(w io.Writer, d api.FaceDetection) {
	fmt.Fprintf(w, "Emotion: %s (confidence %.0f%%)\n", d.Emotion, d.Confidence*100)
	fmt.Fprintf(w, "Score: %d (%s)\n", d.Score, d.Level)
	if d.Result != "" {
		fmt.Fprintln(w, d.Result)
	}
}

func printHistory(w io.Writer, p api.Page[api.FaceDetection]) {
	if len(p.List) == 0 {
		fmt.Fprintln(w, "No face detections yet.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tEMOTION\tSCORE\tLEVEL")
	for _, d := range p.List {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", d.ID, d.CreatedAt.Local().Format(dateLayout), d.Emotion, d.Score, d.Level)
	}
	tw.Flush()
	fmt.Fprintf(w, "page %d, %d of %d shown\n", p.Page, len(p.List), p.Total)
}

func onDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return " on " + t.Local().Format(dateLayout)
}
