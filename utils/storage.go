package utils

import (
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const intakeObjectPrefix = "intake/"

// R2Client wraps the S3 client + bucket so callers carry one handle.
type R2Client struct {
	S3     *s3.Client
	Bucket string
}

// NewCloudClient builds the R2 (S3-compatible) client from env config.
func NewCloudClient(ctx context.Context) (*R2Client, error) {
	bucket := os.Getenv("R2_BUCKET")
	accessKey := os.Getenv("R2_ACCESS_KEY_ID")
	secretKey := os.Getenv("R2_SECRET_ACCESS_KEY")
	endpoint := os.Getenv("R2_ENDPOINT") // https://<account-id>.r2.cloudflarestorage.com

	if bucket == "" || accessKey == "" || secretKey == "" || endpoint == "" {
		return nil, fmt.Errorf("missing R2 env vars (R2_BUCKET, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY, R2_ENDPOINT)")
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("r2 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true // required for R2
	})

	return &R2Client{S3: client, Bucket: bucket}, nil
}

// IntakeUpload describes a stored intake photo. FileID is what clients later
// reference as externalId in a quote request.
type IntakeUpload struct {
	FileID    string `json:"fileId"`
	Location  string `json:"location"`
	MimeType  string `json:"mimeType"`
	SizeBytes int64  `json:"sizeBytes"`
}

// UploadIntakeFile stores one photo upload under a fresh uuid-based object
// name and returns its id and public location.
func UploadIntakeFile(ctx context.Context, r2 *R2Client, fileHeader *multipart.FileHeader) (*IntakeUpload, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext == "" {
		ext = ".bin"
	}

	ct := fileHeader.Header.Get("Content-Type")
	if ct == "" {
		ct = mime.TypeByExtension(ext)
	}
	if ct == "" {
		ct = "application/octet-stream"
	}

	fileID := uuid.New().String() + ext

	f, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	_, err = r2.S3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(r2.Bucket),
		Key:          aws.String(intakeObjectPrefix + fileID),
		Body:         f,
		ContentType:  aws.String(ct),
		CacheControl: aws.String("no-cache"),
	})
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", fileHeader.Filename, err)
	}

	return &IntakeUpload{
		FileID:    fileID,
		Location:  publicURL(intakeObjectPrefix + fileID),
		MimeType:  ct,
		SizeBytes: fileHeader.Size,
	}, nil
}

// DeleteIntakeFile removes a previously uploaded, not-yet-referenced photo.
func DeleteIntakeFile(ctx context.Context, r2 *R2Client, fileID string) error {
	if fileID == "" || strings.Contains(fileID, "/") {
		return fmt.Errorf("invalid file id")
	}
	_, err := r2.S3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r2.Bucket),
		Key:    aws.String(intakeObjectPrefix + fileID),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", fileID, err)
	}
	return nil
}

// publicURL builds the public URL for a stored object. Set R2_PUBLIC_DOMAIN
// to your custom domain or r2.dev URL, e.g. "https://files.yourdomain.com".
func publicURL(objectName string) string {
	bucket := os.Getenv("R2_BUCKET")
	domain := strings.TrimRight(os.Getenv("R2_PUBLIC_DOMAIN"), "/")
	return fmt.Sprintf("%s/%s/%s", domain, bucket, objectName)
}
