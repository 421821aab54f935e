package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"mom-planner/pkg/duedate"
)

func (h *handler) locale(c *gin.Context) language.Tag {
	return duedate.ParseLocale(c.GetHeader("Accept-Language"))
}

func (h *handler) processIndex(c *gin.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return 0, errInvalidIndex
	}
	return index, nil
}

// processGenerateReq accepts an empty body; all fields are optional.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}

// processUploadReq reads the multipart "file" field into memory, bounded by
// the configured upload size.
func (h *handler) processUploadReq(c *gin.Context) (string, *bytes.Reader, error) {
	if h.maxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload+1<<20)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", nil, errFileTooLarge
		}
		return "", nil, errMissingFile
	}
	if h.maxUpload > 0 && fh.Size > h.maxUpload {
		return "", nil, errFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", nil, err
	}
	return fh.Filename, bytes.NewReader(data), nil
}
