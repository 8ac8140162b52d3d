package form

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"domainsmarket/internal/pkg/storage"
)

// Files opens every file uploaded under the given multipart field. The
// caller must invoke the returned closer once the readers are consumed. A
// non-multipart request yields no files and no error.
func Files(c *gin.Context, field string) ([]storage.Upload, func(), error) {
	mf, err := c.MultipartForm()
	if err != nil {
		return nil, func() {}, nil
	}

	var (
		uploads []storage.Upload
		opened  []multipart.File
	)
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, fh := range mf.File[field] {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		opened = append(opened, f)
		uploads = append(uploads, storage.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Reader:      f,
		})
	}
	return uploads, closeAll, nil
}
