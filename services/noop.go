package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

var ErrStorageDisabled = fmt.Errorf("file storage is not configured")

type nopPublisher struct{}

func (nopPublisher) PublishEncode(string, interface{}) error { return nil }

type nopStorage struct{}

func (nopStorage) UploadFile(context.Context, string, io.Reader, string) (string, error) {
	return "", ErrStorageDisabled
}

func (nopStorage) GetFile(context.Context, string) (io.ReadCloser, error) {
	return nil, ErrStorageDisabled
}

func (nopStorage) DeleteFile(context.Context, string) error { return nil }

type nopCache struct{}

func (nopCache) Get(context.Context, string) ([]byte, error) { return nil, nil }
func (nopCache) Set(context.Context, string, []byte) error { return nil }
func (nopCache) Delete(context.Context, ...string) error { return nil }

func storageStatus(err error) int {
	if err == ErrStorageDisabled {
		return http.StatusServiceUnavailable
	}
	return http.StatusBadGateway
}
