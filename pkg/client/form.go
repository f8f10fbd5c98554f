/*
Copyright 2026 the PetFriends QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package client

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// PhotoFieldName is the form field carrying a pet photo.
const PhotoFieldName = "pet_photo"

var ErrPhotoNotFound = errors.New("photo not found")

// PetFields are the user supplied attributes of a pet.  Age is not
// validated here, the service is the judge of that.
type PetFields struct {
	Name       string
	AnimalType string
	Age        string
}

func (p PetFields) values() url.Values {
	return url.Values{
		"name":        []string{p.Name},
		"animal_type": []string{p.AnimalType},
		"age":         []string{p.Age},
	}
}

// urlencodedBody encodes the pet for the simple create and update endpoints.
func urlencodedBody(pet PetFields) (io.Reader, string) {
	return strings.NewReader(pet.values().Encode()), "application/x-www-form-urlencoded"
}

// multipartBody encodes the pet, if any, and the photo, if any, as form data.
func multipartBody(pet *PetFields, photoPath string) (io.Reader, string, error) {
	buffer := &bytes.Buffer{}
	writer := multipart.NewWriter(buffer)

	if pet != nil {
		fields := []struct{ name, value string }{
			{"name", pet.Name},
			{"animal_type", pet.AnimalType},
			{"age", pet.Age},
		}

		for _, field := range fields {
			if err := writer.WriteField(field.name, field.value); err != nil {
				return nil, "", fmt.Errorf("writing field %s: %w", field.name, err)
			}
		}
	}

	if photoPath != "" {
		if err := writePhoto(writer, photoPath); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}

	return buffer, writer.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writePhoto(writer *multipart.Writer, photoPath string) error {
	data, err := os.ReadFile(photoPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %w", ErrPhotoNotFound, err)
		}

		return fmt.Errorf("reading photo: %w", err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, PhotoFieldName, quoteEscaper.Replace(filepath.Base(photoPath))))
	header.Set("Content-Type", photoContentType(photoPath, data))

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("creating photo part: %w", err)
	}

	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("writing photo: %w", err)
	}

	return nil
}

// photoContentType goes by the extension, then by the content.
func photoContentType(photoPath string, data []byte) string {
	if contentType := mime.TypeByExtension(filepath.Ext(photoPath)); contentType != "" {
		if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
			return mediaType
		}
	}

	return http.DetectContentType(data)
}
