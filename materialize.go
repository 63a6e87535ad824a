// Copyright 2026 The httpcall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpcall

import (
	"io"
	"net/http"
	"os"

	"golang.org/x/net/html/charset"

	"github.com/hublet/httpcall/request"
)

// materialize turns a raw transport response into the uniform response
// wrapper. Exactly one of two paths runs, selected solely by whether
// the description names a download file: the buffered-text path reads
// and decodes the whole body into the wrapper, while the download path
// streams the body straight to disk and leaves the wrapper bodyless.
//
// The response body is closed on every path. An error return means an
// I/O failure while reading or writing the body, or an unsupported
// charset label; the caller classifies it as a transport failure.
func materialize(r *request.Request, raw *http.Response) (*request.Response, error) {
	resp := &request.Response{
		Request:    r,
		Status:     raw.Status,
		StatusCode: raw.StatusCode,
		Header:     raw.Header,
	}

	// Hand-built canned responses commonly omit the body.
	if raw.Body == nil {
		raw.Body = http.NoBody
	}

	if r.DownloadPath != "" {
		if err := streamToFile(r.DownloadPath, raw.Body); err != nil {
			return nil, err
		}
		return resp, nil
	}

	body, err := readBody(r.Charset, raw.Body)
	if err != nil {
		return nil, err
	}
	resp.Body = body
	return resp, nil
}

// readBody buffers the whole response body as text. With an explicit
// charset label the raw bytes are re-decoded through that encoding;
// otherwise they are taken as delivered.
func readBody(label string, body io.ReadCloser) (string, error) {
	defer func() {
		_ = body.Close()
	}()
	var rd io.Reader = body
	if label != "" {
		var err error
		rd, err = charset.NewReaderLabel(label, body)
		if err != nil {
			return "", err
		}
	}
	b, err := io.ReadAll(rd)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// streamToFile copies the response body directly into a freshly created
// file at path, replacing any existing file. Nothing is buffered in
// memory beyond the copy buffer, and both the body and the file are
// closed on every exit path. A close error on the file surfaces unless
// the copy already failed.
func streamToFile(path string, body io.ReadCloser) (err error) {
	defer func() {
		_ = body.Close()
	}()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()
	_, err = io.Copy(f, body)
	return
}
