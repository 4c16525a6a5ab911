package client

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"portfolio-backend/internal/domains/project"
	"portfolio-backend/internal/domains/user"
)

// Storage uploads media through the backend, which owns the bucket
// keys, cache headers and overwrite policy.
type Storage struct {
	client *Client
}

// UploadProjectImage stores an image in one of a project's two
// gallery slots and returns the project with the new public URL.
func (s *Storage) UploadProjectImage(ctx context.Context, projectID int64, index int, filename string, data []byte) (*project.Project, error) {
	path := fmt.Sprintf("/api/v1/projects/%d/images/%d", projectID, index)

	var result project.Project
	if err := s.upload(ctx, path, filename, data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UploadAvatar replaces the profile avatar and returns the updated
// profile.
func (s *Storage) UploadAvatar(ctx context.Context, filename string, data []byte) (*user.Profile, error) {
	var result user.Profile
	if err := s.upload(ctx, "/api/v1/profile/avatar", filename, data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Storage) upload(ctx context.Context, path, filename string, data []byte, out interface{}) error {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("client: build upload: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("client: build upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("client: build upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.client.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	s.client.prepare(req)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: upload failed: %w", err)
	}
	defer resp.Body.Close()

	return s.client.decode(resp, out)
}
