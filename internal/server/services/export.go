package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/boardkeeper/internal/common"
	"github.com/dmitrijs2005/boardkeeper/internal/logging"
	sc "github.com/dmitrijs2005/boardkeeper/internal/server/config"
	"github.com/dmitrijs2005/boardkeeper/internal/server/models"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// BoardSource yields a composed board for one owner.
type BoardSource interface {
	GetBoard(ctx context.Context, boardID, userID string) (*models.Board, error)
}

// ExportService uploads JSON snapshots of composed boards to S3-compatible
// object storage and hands back a time-limited download link.
type ExportService struct {
	boards BoardSource
	config *sc.Config
	logger logging.Logger
	now    func() time.Time
}

func NewExportService(boards BoardSource, cfg *sc.Config, opts ...Option) *ExportService {
	o := newOptions("export_service", opts)
	return &ExportService{
		boards: boards,
		config: cfg,
		logger: o.logger,
		now:    o.now,
	}
}

// StorageKey places a snapshot under the owner and the UTC day of export.
func StorageKey(userID string, t time.Time) string {
	d := t.UTC()
	return fmt.Sprintf("boards/%s/%04d/%02d/%02d/%v.json", userID, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *ExportService) getClients(ctx context.Context) (*s3.Client, *s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return client, newS3PresignClient(client), nil
}

// ExportBoard snapshots the board as the owner sees it now. Board lookup
// errors (common.ErrorNotFound for foreign boards) are returned unchanged;
// storage failures match common.ErrorInternal.
func (s *ExportService) ExportBoard(ctx context.Context, boardID, userID string) (*models.BoardExport, error) {
	board, err := s.boards.GetBoard(ctx, boardID, userID)
	if err != nil {
		return nil, err
	}

	body, err := json.MarshalIndent(board, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: encode board: %v", common.ErrorInternal, err)
	}

	client, presignClient, err := s.getClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: s3 config: %v", common.ErrorInternal, err)
	}

	bucket := s.config.S3Bucket
	key := StorageKey(userID, s.now())

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: s3 put: %v", common.ErrorInternal, err)
	}

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.config.ExportURLValidity))
	if err != nil {
		return nil, fmt.Errorf("%w: s3 presign: %v", common.ErrorInternal, err)
	}

	s.logger.Info(ctx, "board exported", "board_id", boardID, "key", key)

	return &models.BoardExport{Key: key, URL: req.URL}, nil
}
