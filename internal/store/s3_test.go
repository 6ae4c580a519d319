// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

package store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockS3Client struct {
	mock.Mock
}

func (m *mockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3.GetObjectOutput)
	return out, args.Error(1)
}

func (m *mockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3.PutObjectOutput)
	return out, args.Error(1)
}

func keyIs(bucket, key string) interface{} {
	return mock.MatchedBy(func(in interface{}) bool {
		switch v := in.(type) {
		case *s3.GetObjectInput:
			return *v.Bucket == bucket && *v.Key == key
		case *s3.PutObjectInput:
			return *v.Bucket == bucket && *v.Key == key
		}
		return false
	})
}

func TestS3Backend_Get(t *testing.T) {
	ctx := context.Background()
	client := new(mockS3Client)
	client.On("GetObject", ctx, keyIs("bkt", "prod/rooms.csv")).
		Return(&s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader([]byte("ID\nA\n")))}, nil).
		Once()

	b := NewS3Backend(client, "bkt", "prod")
	data, err := b.Get(ctx, "rooms.csv")
	require.NoError(t, err)
	assert.Equal(t, "ID\nA\n", string(data))
	client.AssertExpectations(t)
}

func TestS3Backend_GetNotFound(t *testing.T) {
	ctx := context.Background()

	for name, apiErr := range map[string]error{
		"NoSuchKey": &types.NoSuchKey{},
		"NotFound":  &types.NotFound{},
	} {
		t.Run(name, func(t *testing.T) {
			client := new(mockS3Client)
			client.On("GetObject", ctx, keyIs("bkt", "rooms.csv")).Return(nil, apiErr)

			_, err := NewS3Backend(client, "bkt", "").Get(ctx, "rooms.csv")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestS3Backend_Put(t *testing.T) {
	ctx := context.Background()
	client := new(mockS3Client)

	var body []byte
	client.On("PutObject", ctx, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return *in.Key == "rooms.csv" &&
			*in.ContentType == "text/csv" &&
			*in.ContentLength == 3
	})).
		Run(func(args mock.Arguments) {
			body, _ = io.ReadAll(args.Get(1).(*s3.PutObjectInput).Body)
		}).
		Return(&s3.PutObjectOutput{}, nil).
		Once()

	err := NewS3Backend(client, "bkt", "").Put(ctx, "rooms.csv", []byte("ID\n"))
	require.NoError(t, err)
	assert.Equal(t, "ID\n", string(body))
	client.AssertExpectations(t)
}

func TestS3Backend_StoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := new(mockS3Client)

	var saved []byte
	client.On("PutObject", ctx, keyIs("bkt", "rooms.csv")).
		Run(func(args mock.Arguments) {
			in := args.Get(1).(*s3.PutObjectInput)
			saved, _ = io.ReadAll(in.Body)
		}).
		Return(&s3.PutObjectOutput{}, nil)

	s := New(NewS3Backend(client, "bkt", ""), Config{Compression: CompressionZstd})
	for _, r := range sampleRooms() {
		s.Insert(r)
	}
	require.NoError(t, s.Save(ctx))
	require.True(t, bytes.HasPrefix(saved, zstdMagic))

	client.On("GetObject", ctx, keyIs("bkt", "rooms.csv")).
		Return(&s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(saved))}, nil)

	reloaded := New(NewS3Backend(client, "bkt", ""), Config{})
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, []string{"A", "B"}, ids(reloaded.All()))
}

func TestBreakerBackend_OpensOnFailures(t *testing.T) {
	ctx := context.Background()
	errDown := errors.New("connection refused")
	client := new(mockS3Client)
	client.On("GetObject", ctx, mock.Anything).Return(nil, errDown)

	b := NewBreakerBackend(NewS3Backend(client, "bkt", ""), BreakerConfig{FailureThreshold: 2})

	for i := 0; i < 2; i++ {
		_, err := b.Get(ctx, "rooms.csv")
		require.ErrorIs(t, err, errDown)
	}

	_, err := b.Get(ctx, "rooms.csv")
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	client.AssertNumberOfCalls(t, "GetObject", 2)
}

func TestBreakerBackend_NotFoundIsNotFailure(t *testing.T) {
	ctx := context.Background()
	client := new(mockS3Client)
	client.On("GetObject", ctx, mock.Anything).Return(nil, &types.NoSuchKey{})

	b := NewBreakerBackend(NewS3Backend(client, "bkt", ""), BreakerConfig{FailureThreshold: 1})

	for i := 0; i < 3; i++ {
		_, err := b.Get(ctx, "rooms.csv")
		require.ErrorIs(t, err, ErrNotFound)
	}
	client.AssertNumberOfCalls(t, "GetObject", 3)
}
