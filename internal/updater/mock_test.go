package updater

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/stretchr/testify/mock"
)

// ---------- Mock EC2 ----------

// mockInstanceAPI implements InstanceAPI for testing.
type mockInstanceAPI struct {
	mock.Mock
}

func (m *mockInstanceAPI) DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.DescribeInstancesOutput), args.Error(1)
}

// ---------- Mock Route 53 ----------

// mockRecordAPI implements RecordAPI for testing.
type mockRecordAPI struct {
	mock.Mock
}

func (m *mockRecordAPI) ChangeResourceRecordSets(ctx context.Context, params *route53.ChangeResourceRecordSetsInput, optFns ...func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route53.ChangeResourceRecordSetsOutput), args.Error(1)
}
