package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
)

const (
	OpLogin              = "login"
	OpRegister           = "register"
	OpUploadFaceImage    = "uploadFaceImage"
	OpGetQuestions       = "getQuestions"
	OpSubmitAnswers      = "submitAnswers"
	OpGetResult          = "getResult"
	OpGetFaceHistory     = "getFaceHistory"
	OpGetAssessmentTotal = "getAssessmentTotal"
)

// FaceImageField is the multipart field the backend reads the image from.
const FaceImageField = "image"

func call[T any](ctx context.Context, c *Client, cl Call) (*Envelope[T], error) {
	body, err := c.Do(ctx, cl)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope[T](cl.Operation, body)
}

func jsonCall(op, method, path string, payload any) (Call, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return Call{}, fmt.Errorf("%s: encode request: %w", op, err)
	}
	return Call{
		Operation:   op,
		Method:      method,
		Path:        path,
		Body:        bytes.NewReader(b),
		ContentType: "application/json",
	}, nil
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*Envelope[AuthData], error) {
	cl, err := jsonCall(OpLogin, http.MethodPost, "/auth/login", req)
	if err != nil {
		return nil, err
	}
	return call[AuthData](ctx, c, cl)
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Envelope[AuthData], error) {
	cl, err := jsonCall(OpRegister, http.MethodPost, "/auth/register", req)
	if err != nil {
		return nil, err
	}
	return call[AuthData](ctx, c, cl)
}

// UploadFaceImage posts the image as multipart/form-data under FaceImageField.
func (c *Client) UploadFaceImage(ctx context.Context, filename string, image io.Reader) (*Envelope[FaceDetection], error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile(FaceImageField, filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("%s: read image: %w", OpUploadFaceImage, err)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	return call[FaceDetection](ctx, c, Call{
		Operation:   OpUploadFaceImage,
		Method:      http.MethodPost,
		Path:        "/face/upload",
		Body:        &buf,
		ContentType: mw.FormDataContentType(),
	})
}

func (c *Client) GetQuestions(ctx context.Context) (*Envelope[[]Question], error) {
	return call[[]Question](ctx, c, Call{Operation: OpGetQuestions, Method: http.MethodGet, Path: "/questions"})
}

func (c *Client) SubmitAnswers(ctx context.Context, req SubmitAnswersRequest) (*Envelope[SubmitResult], error) {
	cl, err := jsonCall(OpSubmitAnswers, http.MethodPost, "/questionnaire/submit", req)
	if err != nil {
		return nil, err
	}
	return call[SubmitResult](ctx, c, cl)
}

func (c *Client) GetResult(ctx context.Context) (*Envelope[CombinedResult], error) {
	return call[CombinedResult](ctx, c, Call{Operation: OpGetResult, Method: http.MethodGet, Path: "/assessment/combined"})
}

// GetFaceHistory lists past detections, newest first. Zero page or pageSize
// leaves the choice to the backend.
func (c *Client) GetFaceHistory(ctx context.Context, page, pageSize int) (*Envelope[Page[FaceDetection]], error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("page_size", strconv.Itoa(pageSize))
	}
	return call[Page[FaceDetection]](ctx, c, Call{
		Operation: OpGetFaceHistory,
		Method:    http.MethodGet,
		Path:      "/face/history",
		Query:     q,
	})
}

func (c *Client) GetAssessmentTotal(ctx context.Context) (*Envelope[CombinedResult], error) {
	return call[CombinedResult](ctx, c, Call{Operation: OpGetAssessmentTotal, Method: http.MethodGet, Path: "/assessment/total"})
}
