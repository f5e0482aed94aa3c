package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/ikkim/storefront/config"
	"github.com/ikkim/storefront/pkg/logger"
)

// AssetResolver turns a product image reference into a URL a client can fetch
type AssetResolver interface {
	URL(ctx context.Context, ref string) string
}

// NewAssetResolver presigns from S3 when a bucket is configured and serves
// static URLs under cfg.BaseURL otherwise
func NewAssetResolver(ctx context.Context, cfg config.AssetsConfig) AssetResolver {
	static := NewStaticAssetResolver(cfg.BaseURL)
	if cfg.Bucket == "" {
		return static
	}

	resolver, err := NewS3AssetResolver(ctx, cfg, static)
	if err != nil {
		logger.Warn("S3 asset resolver unavailable, using static asset URLs", map[string]interface{}{
			"bucket": cfg.Bucket,
			"error":  err.Error(),
		})
		return static
	}
	return resolver
}

type staticAssetResolver struct {
	baseURL string
}

func NewStaticAssetResolver(baseURL string) AssetResolver {
	return &staticAssetResolver{baseURL: strings.TrimRight(baseURL, "/")}
}

func (r *staticAssetResolver) URL(_ context.Context, ref string) string {
	if ref == "" || isAbsoluteURL(ref) {
		return ref
	}
	return fmt.Sprintf("%s/%s", r.baseURL, strings.TrimLeft(ref, "/"))
}

type s3AssetResolver struct {
	presign  *s3.PresignClient
	bucket   string
	expiry   time.Duration
	fallback AssetResolver
}

// NewS3AssetResolver presigns GET requests for refs as object keys in cfg.Bucket
func NewS3AssetResolver(ctx context.Context, cfg config.AssetsConfig, fallback AssetResolver) (AssetResolver, error) {
	var awsCfg aws.Config

	// Static credentials win; otherwise use the default credential chain
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		awsCfg = aws.Config{
			Region: cfg.Region,
			Credentials: credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			),
		}
	} else {
		var err error
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
	}

	expiry := cfg.PresignExpiry
	if expiry <= 0 {
		expiry = time.Hour
	}

	return &s3AssetResolver{
		presign:  s3.NewPresignClient(s3.NewFromConfig(awsCfg)),
		bucket:   cfg.Bucket,
		expiry:   expiry,
		fallback: fallback,
	}, nil
}

func (r *s3AssetResolver) URL(ctx context.Context, ref string) string {
	if ref == "" || isAbsoluteURL(ref) {
		return ref
	}

	req, err := r.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(strings.TrimLeft(ref, "/")),
	}, s3.WithPresignExpires(r.expiry))
	if err != nil {
		logger.Warn("Failed to presign asset URL", map[string]interface{}{
			"ref":   ref,
			"error": err.Error(),
		})
		return r.fallback.URL(ctx, ref)
	}
	return req.URL
}

func isAbsoluteURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}
