package mirror

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"parking-backend/internal/config"
	"parking-backend/internal/models"
)

// backupKey is the fixed object key the snapshot lives under. Push is an
// idempotent replace of that one object, not a versioned upload.
const backupKey = "parking-backup.json"

// S3Mirror talks to any S3-compatible endpoint (Supabase storage, MinIO,
// AWS) selected by the configured base endpoint.
type S3Mirror struct {
	cfg *config.Config
}

func NewS3Mirror(cfg *config.Config) *S3Mirror {
	return &S3Mirror{cfg: cfg}
}

func (m *S3Mirror) client(ctx context.Context) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(m.cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			m.cfg.S3AccessKey,
			m.cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(m.cfg.S3Endpoint)
		o.UsePathStyle = true
	}), nil
}

func (m *S3Mirror) Push(ctx context.Context, snap *models.BackupSnapshot) Status {
	client, err := m.client(ctx)
	if err != nil {
		log.Printf("Backup upload failed: %v", err)
		return Status{OK: false, Reason: ReasonUploadFailed}
	}

	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("Backup upload failed: %v", err)
		return Status{OK: false, Reason: ReasonUploadFailed}
	}

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.cfg.S3Bucket),
		Key:         aws.String(backupKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		log.Printf("Backup upload failed: %v", err)
		return Status{OK: false, Reason: ReasonUploadFailed}
	}

	return Status{OK: true}
}

func (m *S3Mirror) Pull(ctx context.Context) (*models.BackupSnapshot, Status) {
	client, err := m.client(ctx)
	if err != nil {
		log.Printf("Backup download failed: %v", err)
		return nil, Status{OK: false, Reason: ReasonDownloadFailed}
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(m.cfg.S3Bucket),
		Key:    aws.String(backupKey),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, Status{OK: false, Reason: ReasonNotFound}
		}
		log.Printf("Backup download failed: %v", err)
		return nil, Status{OK: false, Reason: ReasonDownloadFailed}
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		log.Printf("Backup download failed: %v", err)
		return nil, Status{OK: false, Reason: ReasonDownloadFailed}
	}

	var snap models.BackupSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("Backup download failed: %v", err)
		return nil, Status{OK: false, Reason: ReasonDownloadFailed}
	}

	return &snap, Status{OK: true}
}

// isNotFound reports whether a GetObject error means the backup object does
// not exist yet. Callers treat that as "no backup", not as a fault.
func isNotFound(err error) bool {
	var noKey *types.NoSuchKey
	if errors.As(err, &noKey) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "NoSuchKey" || code == "NotFound"
	}
	return false
}
