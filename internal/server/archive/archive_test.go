package archive

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/todosync/internal/server/config"
	"github.com/dmitrijs2005/todosync/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *sc.Config {
	return &sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "ledgers",
	}
}

func testDoc() Document {
	return Document{
		PushID:   "0b9f0c1e-8a51-4e0c-9f3f-3b5f1f6b2d11",
		OwnerID:  "u1",
		PushedAt: time.Date(2026, 3, 7, 23, 30, 0, 0, time.UTC),
		Conflicts: []models.ConflictResolution{{
			RecordID: "t1", Collection: models.CollectionTodos, Winner: models.WinnerLocal,
			LocalUpdatedAt: 1000, RemoteUpdatedAt: 900, Reason: "local newer",
		}},
	}
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "ledgers/u1/2026/3/7/0b9f0c1e-8a51-4e0c-9f3f-3b5f1f6b2d11.json", ObjectKey(testDoc()))

	doc := testDoc()
	doc.PushedAt = time.Date(2026, 3, 8, 1, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))
	assert.Equal(t, "ledgers/u1/2026/3/7/"+doc.PushID+".json", ObjectKey(doc), "key uses the UTC date")
}

func TestNop(t *testing.T) {
	key, err := Nop{}.Archive(context.Background(), testDoc())
	require.NoError(t, err)
	assert.Empty(t, key)
}

func TestNewS3Archiver_AppliesConfig(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		require.NotNil(t, lo.Credentials)
		creds, err := lo.Credentials.Retrieve(ctx)
		require.NoError(t, err)
		assert.Equal(t, "minioadmin", creds.AccessKeyID)
		return aws.Config{Region: lo.Region}, nil
	}

	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return s3.NewFromConfig(cfg, optFns...)
	}

	a, err := NewS3Archiver(context.Background(), testConfig())
	require.NoError(t, err)
	assert.Equal(t, "ledgers", a.bucket)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:9000", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)
}

func TestNewS3Archiver_LoadError(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = origLoad })

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no config")
	}

	_, err := NewS3Archiver(context.Background(), testConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no config")
}

func TestS3Archiver_Archive(t *testing.T) {
	origPut := putObject
	t.Cleanup(func() { putObject = origPut })

	var gotIn *s3.PutObjectInput
	var gotBody []byte
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		gotIn = in
		var err error
		gotBody, err = io.ReadAll(in.Body)
		require.NoError(t, err)
		return &s3.PutObjectOutput{}, nil
	}

	a := &S3Archiver{bucket: "ledgers"}
	key, err := a.Archive(context.Background(), testDoc())
	require.NoError(t, err)

	assert.Equal(t, ObjectKey(testDoc()), key)
	require.NotNil(t, gotIn)
	assert.Equal(t, "ledgers", aws.ToString(gotIn.Bucket))
	assert.Equal(t, key, aws.ToString(gotIn.Key))
	assert.Equal(t, "application/json", aws.ToString(gotIn.ContentType))

	var decoded Document
	require.NoError(t, json.Unmarshal(gotBody, &decoded))
	assert.Equal(t, testDoc().Conflicts, decoded.Conflicts)
	assert.Equal(t, "u1", decoded.OwnerID)
}

func TestS3Archiver_PutError(t *testing.T) {
	origPut := putObject
	t.Cleanup(func() { putObject = origPut })

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return nil, errors.New("access denied")
	}

	a := &S3Archiver{bucket: "ledgers"}
	_, err := a.Archive(context.Background(), testDoc())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}
