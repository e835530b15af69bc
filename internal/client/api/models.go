package api

import (
	"encoding/json"
	"fmt"
	"time"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Age      int    `json:"age,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type User struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Phone     string    `json:"phone"`
	Avatar    string    `json:"avatar"`
	Status    int       `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthData is returned by both login and register.
type AuthData struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type Question struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Options     string `json:"options"`
	Score       int    `json:"score"`
	OrderNum    int    `json:"order_num"`
	Status      int    `json:"status"`
}

// Choices decodes Options, a JSON array of labels. Answer values are
// 1-based positions in this list.
func (q Question) Choices() ([]string, error) {
	if q.Options == "" {
		return nil, nil
	}
	var choices []string
	if err := json.Unmarshal([]byte(q.Options), &choices); err != nil {
		return nil, fmt.Errorf("question %d options: %w", q.ID, err)
	}
	return choices, nil
}

type Answer struct {
	QuestionID  uint `json:"question_id"`
	AnswerValue int  `json:"answer_value"`
}

type SubmitAnswersRequest struct {
	Answers []Answer `json:"answers"`
}

// SubmitResult is the questionnaire outcome.
type SubmitResult struct {
	AssessmentID uint   `json:"assessment_id"`
	Score        int    `json:"score"`
	Level        string `json:"level"`
	Description  string `json:"description"`
	Suggestions  string `json:"suggestions"`
}

type FaceDetection struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	ImagePath  string    `json:"image_path"`
	ImageURL   string    `json:"image_url"`
	Emotion    string    `json:"emotion"`
	Confidence float64   `json:"confidence"`
	Score      int       `json:"score"`
	Level      string    `json:"level"`
	Result     string    `json:"result"`
	Status     int       `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type Page[T any] struct {
	List     []T   `json:"list"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

type ScoreLevel struct {
	Score int    `json:"score"`
	Level string `json:"level"`
}

type FaceSummary struct {
	Score   int    `json:"score"`
	Level   string `json:"level"`
	Emotion string `json:"emotion"`
}

// CombinedResult merges the latest questionnaire and face analysis.
type CombinedResult struct {
	CombinedScore  int         `json:"combined_score"`
	CombinedLevel  string      `json:"combined_level"`
	Description    string      `json:"description"`
	Suggestions    string      `json:"suggestions"`
	Questionnaire  ScoreLevel  `json:"questionnaire"`
	FaceDetection  FaceSummary `json:"face_detection"`
	AssessmentDate time.Time   `json:"assessment_date"`
	DetectionDate  time.Time   `json:"detection_date"`
}
