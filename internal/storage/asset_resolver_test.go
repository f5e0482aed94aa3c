package storage

import (
	"context"
	"testing"
	"time"

	"github.com/ikkim/storefront/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticAssetResolver(t *testing.T) {
	resolver := NewStaticAssetResolver("/assets/")
	ctx := context.Background()

	assert.Equal(t, "/assets/products/lamp.jpg", resolver.URL(ctx, "products/lamp.jpg"))
	assert.Equal(t, "/assets/products/lamp.jpg", resolver.URL(ctx, "/products/lamp.jpg"))
	assert.Equal(t, "https://cdn.test/a.jpg", resolver.URL(ctx, "https://cdn.test/a.jpg"))
	assert.Equal(t, "", resolver.URL(ctx, ""))
}

func TestNewAssetResolver_NoBucketIsStatic(t *testing.T) {
	resolver := NewAssetResolver(context.Background(), config.AssetsConfig{BaseURL: "https://cdn.test"})

	assert.Equal(t, "https://cdn.test/p.jpg", resolver.URL(context.Background(), "p.jpg"))
}

func TestS3AssetResolver_Presigns(t *testing.T) {
	cfg := config.AssetsConfig{
		BaseURL:         "/assets",
		Region:          "ap-northeast-2",
		Bucket:          "storefront-assets",
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "wJalrXUtnFEMI/K7MDENG+bPxRfiCYEXAMPLEKEY",
		PresignExpiry:   10 * time.Minute,
	}
	resolver, err := NewS3AssetResolver(context.Background(), cfg, NewStaticAssetResolver(cfg.BaseURL))
	require.NoError(t, err)

	url := resolver.URL(context.Background(), "products/smart-watch.jpg")

	assert.Contains(t, url, "storefront-assets")
	assert.Contains(t, url, "products/smart-watch.jpg")
	assert.Contains(t, url, "X-Amz-Signature=")
	assert.Contains(t, url, "X-Amz-Expires=600")
}
