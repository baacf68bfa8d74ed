package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/route53"

	"github.com/edvin/instance-dns/internal/config"
	"github.com/edvin/instance-dns/internal/logging"
	"github.com/edvin/instance-dns/internal/updater"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load AWS config")
	}

	// Clients are built once at cold start and shared across invocations.
	u := updater.New(
		logger,
		ec2.NewFromConfig(awsCfg),
		route53.NewFromConfig(awsCfg),
		cfg.HostedZoneID,
		cfg.DomainName,
	)

	lambda.Start(u.Handle)
}
