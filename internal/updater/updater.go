package updater

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/rs/zerolog"
)

// recordTTL is the TTL in seconds of the upserted A record.
const recordTTL = 120

var (
	// ErrInstanceNotFound indicates the compute lookup returned no instance
	// for the given identifier.
	ErrInstanceNotFound = errors.New("instance not found")
	// ErrNoPublicAddress indicates the instance exists but has no public
	// IPv4 address assigned.
	ErrNoPublicAddress = errors.New("instance has no public address")
)

// InstanceAPI is the subset of the EC2 API the updater reads from.
type InstanceAPI interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
}

// RecordAPI is the subset of the Route 53 API the updater writes through.
type RecordAPI interface {
	ChangeResourceRecordSets(ctx context.Context, params *route53.ChangeResourceRecordSetsInput, optFns ...func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error)
}

// Updater points a fixed domain name at whichever instance the current
// invocation names. It holds no mutable state across invocations; concurrent
// invocations race last-write-wins on the same record.
type Updater struct {
	logger       zerolog.Logger
	instances    InstanceAPI
	records      RecordAPI
	hostedZoneID string
	domainName   string
}

// New creates a new Updater.
func New(logger zerolog.Logger, instances InstanceAPI, records RecordAPI, hostedZoneID, domainName string) *Updater {
	return &Updater{
		logger:       logger.With().Str("component", "updater").Logger(),
		instances:    instances,
		records:      records,
		hostedZoneID: hostedZoneID,
		domainName:   domainName,
	}
}

// Handle processes one invocation: resolve the instance's public address,
// then submit a single UPSERT for the A record. Any failure propagates to
// the trigger layer unhandled; its retry policy applies.
func (u *Updater) Handle(ctx context.Context, event Event) error {
	instanceID, err := event.InstanceID()
	if err != nil {
		return err
	}

	addr, err := u.resolvePublicAddress(ctx, instanceID)
	if err != nil {
		return fmt.Errorf("resolve address for %s: %w", instanceID, err)
	}

	changeID, err := u.upsertRecord(ctx, addr)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", u.domainName, err)
	}

	u.logger.Info().
		Str("instance_id", instanceID).
		Str("address", addr).
		Str("change_id", changeID).
		Msg("updated A record")

	return nil
}

// resolvePublicAddress looks up the instance's current public IPv4 address.
// Fetched fresh per invocation, never cached.
func (u *Updater) resolvePublicAddress(ctx context.Context, instanceID string) (string, error) {
	out, err := u.instances.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return "", fmt.Errorf("describe instances: %w", err)
	}

	for _, reservation := range out.Reservations {
		for _, instance := range reservation.Instances {
			addr := aws.ToString(instance.PublicIpAddress)
			if addr == "" {
				return "", ErrNoPublicAddress
			}
			return addr, nil
		}
	}

	return "", ErrInstanceNotFound
}

// upsertRecord submits one UPSERT change for the configured domain name.
// Route 53 applies it create-or-replace, so repeated invocations converge on
// the same record. The change is not polled for propagation.
func (u *Updater) upsertRecord(ctx context.Context, addr string) (string, error) {
	out, err := u.records.ChangeResourceRecordSets(ctx, &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(u.hostedZoneID),
		ChangeBatch: &r53types.ChangeBatch{
			Comment: aws.String("Updating"),
			Changes: []r53types.Change{
				{
					Action: r53types.ChangeActionUpsert,
					ResourceRecordSet: &r53types.ResourceRecordSet{
						Name: aws.String(u.domainName),
						Type: r53types.RRTypeA,
						TTL:  aws.Int64(recordTTL),
						ResourceRecords: []r53types.ResourceRecord{
							{Value: aws.String(addr)},
						},
					},
				},
			},
		},
	})
	if err != nil {
		return "", err
	}

	var changeID string
	if out.ChangeInfo != nil {
		changeID = aws.ToString(out.ChangeInfo.Id)
	}
	return changeID, nil
}
