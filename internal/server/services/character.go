package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/teyvatdex/teyvatdex/internal/common"
	"github.com/teyvatdex/teyvatdex/internal/dbx"
	sc "github.com/teyvatdex/teyvatdex/internal/server/config"
	"github.com/teyvatdex/teyvatdex/internal/server/models"
	"github.com/teyvatdex/teyvatdex/internal/server/repositories/repomanager"
)

// catalogCacheTTL bounds how stale the in-process catalog copy may get.
// The catalog only changes when the import tool runs.
const catalogCacheTTL = 5 * time.Minute

// portraitURLValidity is the lifetime of a presigned portrait URL.
const portraitURLValidity = 15 * time.Minute

// Seams for testing the S3 presign path without network access.
var (
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// CharacterService serves the read-only character catalog: listing,
// lookup, presigned portrait URLs, and the bulk import used by the
// import tool.
type CharacterService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config

	mu       sync.RWMutex
	cached   []*models.Character
	cachedAt time.Time
}

// NewCharacterService constructs a CharacterService.
func NewCharacterService(db *sql.DB, m repomanager.RepositoryManager, cfg *sc.Config) *CharacterService {
	return &CharacterService{db: db, repomanager: m, config: cfg}
}

// List returns the full catalog ordered by name, served from an
// in-process cache while it is fresh.
func (s *CharacterService) List(ctx context.Context) ([]*models.Character, error) {
	s.mu.RLock()
	if s.cached != nil && time.Since(s.cachedAt) < catalogCacheTTL {
		result := s.cached
		s.mu.RUnlock()
		return result, nil
	}
	s.mu.RUnlock()

	result, err := s.repomanager.Characters(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing characters: %w", err)
	}

	s.mu.Lock()
	s.cached = result
	s.cachedAt = time.Now()
	s.mu.Unlock()

	return result, nil
}

// GetByID returns one catalog entry or common.ErrNotFound.
func (s *CharacterService) GetByID(ctx context.Context, id int64) (*models.Character, error) {
	if id <= 0 {
		return nil, common.ErrValidation
	}
	ch, err := s.repomanager.Characters(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ch, nil
}

func (s *CharacterService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// PortraitURL returns a presigned GET URL for the character's portrait
// object. Characters without an image key yield common.ErrNotFound.
func (s *CharacterService) PortraitURL(ctx context.Context, id int64) (string, error) {
	ch, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if ch.Image == "" {
		return "", common.ErrNotFound
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket
	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &ch.Image,
	}, s3.WithPresignExpires(portraitURLValidity))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

// Import upserts the given characters in one transaction and returns how
// many rows were written. Only the import tool calls this.
func (s *CharacterService) Import(ctx context.Context, chars []*models.Character) (int, error) {
	count := 0
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Characters(tx)
		for _, ch := range chars {
			if ch.Name == "" {
				return common.ErrValidation
			}
			if _, err := repo.Upsert(ctx, ch); err != nil {
				return fmt.Errorf("error importing %q: %w", ch.Name, err)
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()

	return count, nil
}
