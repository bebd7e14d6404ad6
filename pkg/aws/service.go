package aws

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func mustGetEnv(envVar string) string {
	value := os.Getenv(envVar)
	if len(value) == 0 {
		panic(fmt.Errorf("missing env var: %s", envVar))
	}
	return value
}

// Config carries everything the lambdas need, resolved once at cold start.
type Config struct {
	Config                 aws.Config
	S3Options              []func(*s3.Options)
	DynamoOptions          []func(*dynamodb.Options)
	SentryDSN              string
	SentryEnvironment      string
	BlogsTableName         string
	StatusPublishedAtIndex string
	StatusCategoryIndex    string
	BlogImagesBucket       string
	MediaBucket            string
}

// FromEnv constructs the configuration from the environment. A missing
// required variable panics, failing the invocation at cold start.
func FromEnv(ctx context.Context) Config {
	awsConfig, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		panic(fmt.Errorf("loading aws default config: %w", err))
	}

	statusPublishedAtIndex := os.Getenv("STATUS_PUBLISHED_AT_INDEX")
	if len(statusPublishedAtIndex) == 0 {
		statusPublishedAtIndex = "statusPublishedAtIndex"
	}
	statusCategoryIndex := os.Getenv("STATUS_CATEGORY_INDEX")
	if len(statusCategoryIndex) == 0 {
		statusCategoryIndex = "statusCategoryIndex"
	}

	return Config{
		Config:                 awsConfig,
		SentryDSN:              os.Getenv("SENTRY_DSN"),
		SentryEnvironment:      os.Getenv("SENTRY_ENVIRONMENT"),
		BlogsTableName:         mustGetEnv("BLOGS_TABLE"),
		StatusPublishedAtIndex: statusPublishedAtIndex,
		StatusCategoryIndex:    statusCategoryIndex,
		BlogImagesBucket:       mustGetEnv("BLOG_IMAGES_BUCKET"),
		MediaBucket:            os.Getenv("MEDIA_BUCKET"),
	}
}
