package storeapi

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// saveUploadImage stores an uploaded product image in the upload directory
// under "<nom>_<original filename>" and returns that name. The bytes are
// written verbatim; an existing file with the same name is replaced.
func saveUploadImage(dir, nom string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	filename := fmt.Sprintf("%s_%s", nom, fh.Filename)
	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return filename, nil
}
