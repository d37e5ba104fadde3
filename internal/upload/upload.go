// Package upload writes invoice and document payloads to disk.  File
// contents arrive embedded in JSON bodies as base64 data URIs; this
// is the only real I/O in the system.  Writes are sequential and are
// neither retried nor checksummed.
package upload

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrBadPayload is returned when a payload is not decodable base64.
var ErrBadPayload = errors.New("invalid file payload")

// Saver stores uploaded files under a single directory.
type Saver struct {
	dir string
}

// NewSaver creates the uploads directory if needed and returns a
// Saver rooted at it.
func NewSaver(dir string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Saver{dir: dir}, nil
}

// Save decodes a base64 data URI and writes it under the uploads
// directory.  The stored name is the sanitized client filename
// prefixed with a nanosecond timestamp so repeated uploads of the
// same file never collide.  It returns the server-local path.
func (s *Saver) Save(filename, dataURI string) (string, error) {
	data, err := DecodeDataURI(dataURI)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), sanitize(filename))
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Remove deletes a previously stored file.  A missing file is not an
// error; the record it belonged to is already gone or being replaced.
func (s *Saver) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// DecodeDataURI accepts either a full data URI
// ("data:application/pdf;base64,....") or a bare base64 string and
// returns the decoded bytes.
func DecodeDataURI(s string) ([]byte, error) {
	if strings.HasPrefix(s, "data:") {
		i := strings.Index(s, ",")
		if i < 0 {
			return nil, ErrBadPayload
		}
		s = s[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, ErrBadPayload
	}
	return data, nil
}

// sanitize strips path separators and parent references from a
// client-supplied filename so it cannot escape the uploads directory.
func sanitize(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "..", "")
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "file"
	}
	return name
}
