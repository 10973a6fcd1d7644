package cloudwriter

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Writer struct {
	client      *s3.Client
	bucket      string
	objectPath  string
	contentType string
	buffer      bytes.Buffer
}

type S3WriterFactory struct {
	client *s3.Client
}

func NewS3WriterFactory(region string) (*S3WriterFactory, error) {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %v", err)
	}

	client := s3.NewFromConfig(cfg)
	return &S3WriterFactory{client: client}, nil
}

func (f *S3WriterFactory) NewWriter(bucket, objectPath, contentType string) (CloudWriter, error) {
	return &S3Writer{
		client:      f.client,
		bucket:      bucket,
		objectPath:  objectPath,
		contentType: contentType,
	}, nil
}

func (w *S3Writer) Write(data []byte) (int, error) {
	return w.buffer.Write(data)
}

// Close uploads the buffered report as a single object.
func (w *S3Writer) Close() error {
	ctx := context.Background()
	input := &s3.PutObjectInput{
		Bucket: aws.String(w.bucket),
		Key:    aws.String(w.objectPath),
		Body:   bytes.NewReader(w.buffer.Bytes()),
	}
	if w.contentType != "" {
		input.ContentType = aws.String(w.contentType)
	}
	if _, err := w.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("unable to upload report to S3: %v", err)
	}
	return nil
}
