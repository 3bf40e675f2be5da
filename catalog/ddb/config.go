/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/suparena/gesturerecognizer/errors"
)

// Config holds the connection settings for a binding table.
type Config struct {
	AccessKey string
	SecretKey string
	Region    string
	Table     string
	Endpoint  string
}

// LoadConfig loads the given .env files (".env" when none are given) into
// the process environment and reads the AWS_* variables. Missing files are
// ignored; variables already set in the environment win.
func LoadConfig(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := Config{
		AccessKey: os.Getenv("AWS_ACCESS_KEY"),
		SecretKey: os.Getenv("AWS_SECRET_KEY"),
		Region:    os.Getenv("AWS_REGION"),
		Table:     os.Getenv("AWS_DDB_TABLE"),
		Endpoint:  os.Getenv("AWS_DDB_ENDPOINT"),
	}
	return cfg, cfg.Validate()
}

// Validate checks that the required settings are present.
func (c Config) Validate() error {
	if c.Region == "" {
		return errors.NewValidationError("AWS_REGION", "must be set")
	}
	if c.Table == "" {
		return errors.NewValidationError("AWS_DDB_TABLE", "must be set")
	}
	if (c.AccessKey == "") != (c.SecretKey == "") {
		return errors.NewValidationError("AWS_ACCESS_KEY", "access key and secret key must be set together")
	}
	return nil
}

// NewClient initializes a DynamoDB client. Static credentials are used when
// the config carries them, the default credential chain otherwise.
func NewClient(ctx context.Context, cfg Config) (*sdk.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := sdk.NewFromConfig(awsCfg, func(o *sdk.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	zerolog.Ctx(ctx).Debug().
		Str("table", cfg.Table).
		Str("region", cfg.Region).
		Msg("DynamoDB client initialized")
	return client, nil
}
