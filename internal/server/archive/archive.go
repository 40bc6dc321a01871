// Package archive stores the conflict ledger of committed pushes in an
// S3-compatible bucket, one JSON object per push.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/todosync/internal/server/config"
	"github.com/dmitrijs2005/todosync/internal/server/models"
)

// Archiver persists a push's ledger and returns the object key it used.
type Archiver interface {
	Archive(ctx context.Context, doc Document) (string, error)
}

// Document is the archived form of one push.
type Document struct {
	PushID    string                      `json:"pushId"`
	OwnerID   string                      `json:"ownerId"`
	PushedAt  time.Time                   `json:"pushedAt"`
	Conflicts []models.ConflictResolution `json:"conflicts"`
}

// ObjectKey returns ledgers/<owner>/<yyyy>/<m>/<d>/<pushID>.json for the
// push's UTC date.
func ObjectKey(doc Document) string {
	d := doc.PushedAt.UTC()
	return fmt.Sprintf("ledgers/%s/%d/%d/%d/%s.json", doc.OwnerID, d.Year(), d.Month(), d.Day(), doc.PushID)
}

// Nop discards every document. It is used when no bucket is configured.
type Nop struct{}

func (Nop) Archive(context.Context, Document) (string, error) { return "", nil }

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}
)

// S3Archiver writes documents to one bucket.
type S3Archiver struct {
	client *s3.Client
	bucket string
}

// NewS3Archiver builds a client from the S3 settings of cfg. Path-style
// addressing is used so MinIO endpoints work.
func NewS3Archiver(ctx context.Context, cfg *sc.Config) (*S3Archiver, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3RootUser,
			cfg.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	return &S3Archiver{client: client, bucket: cfg.S3Bucket}, nil
}

// Archive uploads doc as JSON.
func (a *S3Archiver) Archive(ctx context.Context, doc Document) (string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode ledger: %w", err)
	}

	key := ObjectKey(doc)
	_, err = putObject(a.client, ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}
	return key, nil
}
