package file

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalAvatarStore writes uploaded avatars under BaseDir and returns
// the public URL path the web layer serves them from.
type LocalAvatarStore struct {
	BaseDir    string
	PublicPath string
}

func NewLocalAvatarStore(baseDir string) *LocalAvatarStore {
	if baseDir == "" {
		baseDir = "."
	}
	return &LocalAvatarStore{
		BaseDir:    baseDir,
		PublicPath: "/images/avatars",
	}
}

func (s *LocalAvatarStore) Save(ctx context.Context, originalName string, content io.Reader) (string, error) {
	_ = ctx

	if err := os.MkdirAll(s.BaseDir, 0o755); err != nil {
		return "", fmt.Errorf("create avatar dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.NewString() + ext
	target := filepath.Join(s.BaseDir, name)

	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create avatar file %s: %w", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, content); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("write avatar file %s: %w", target, err)
	}
	return path.Join(s.PublicPath, name), nil
}
