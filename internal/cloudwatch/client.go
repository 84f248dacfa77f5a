package cloudwatch

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	"github.com/rs/zerolog"
)

// Service defines the CloudWatch Logs operations the application consumes.
// This interface is implemented by *Client and can be stubbed for testing.
type Service interface {
	FetchRecentLogs(ctx context.Context, params FetchParams) ([]LogEntry, error)
	ListLogGroups(ctx context.Context, params ListGroupsParams) ([]string, error)
}

// Ensure Client implements Service at compile time.
var _ Service = (*Client)(nil)

// maxGroupPageSize is the largest page size DescribeLogGroups accepts.
const maxGroupPageSize = 50

// Client talks to CloudWatch Logs through the AWS SDK. Profile and region
// come in per call because the operator can switch them live, so an SDK
// client is built per request rather than held.
type Client struct {
	log zerolog.Logger
}

// NewClient builds a Client. The logger records request outcomes; pass
// zerolog.Nop() to silence it.
func NewClient(log zerolog.Logger) *Client {
	return &Client{log: log}
}

func (c *Client) api(ctx context.Context, profile, region string) (*cloudwatchlogs.Client, error) {
	var optFns []func(*awsconfig.LoadOptions) error
	if profile != "" {
		optFns = append(optFns, awsconfig.WithSharedConfigProfile(profile))
	}
	if region != "" {
		optFns = append(optFns, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, err
	}
	return cloudwatchlogs.NewFromConfig(cfg), nil
}

// FetchRecentLogs retrieves recent log events via FilterLogEvents, starting
// at now minus the configured lookback.
func (c *Client) FetchRecentLogs(ctx context.Context, params FetchParams) ([]LogEntry, error) {
	api, err := c.api(ctx, params.Profile, params.Region)
	if err != nil {
		return nil, &FetchError{LogGroup: params.LogGroup, Err: err}
	}

	input := &cloudwatchlogs.FilterLogEventsInput{
		LogGroupName: aws.String(params.LogGroup),
		StartTime:    aws.Int64(startTimeMillis(time.Now(), params.Lookback)),
	}
	if params.Limit > 0 {
		input.Limit = aws.Int32(params.Limit)
	}
	if pattern := strings.TrimSpace(params.FilterPattern); pattern != "" {
		input.FilterPattern = aws.String(pattern)
	}

	resp, err := api.FilterLogEvents(ctx, input)
	if err != nil {
		c.log.Error().Err(err).Str("log_group", params.LogGroup).Msg("filter log events failed")
		return nil, &FetchError{LogGroup: params.LogGroup, Err: err}
	}

	entries := make([]LogEntry, 0, len(resp.Events))
	for _, evt := range resp.Events {
		entries = append(entries, entryFromEvent(evt))
	}
	c.log.Debug().Str("log_group", params.LogGroup).Int("entries", len(entries)).Msg("fetched recent logs")
	return entries, nil
}

// ListLogGroups returns log group names via DescribeLogGroups. A limit of
// zero or less requests the service default page size; anything above the
// service maximum is capped.
func (c *Client) ListLogGroups(ctx context.Context, params ListGroupsParams) ([]string, error) {
	api, err := c.api(ctx, params.Profile, params.Region)
	if err != nil {
		return nil, &ListGroupsError{Region: params.Region, Err: err}
	}

	input := &cloudwatchlogs.DescribeLogGroupsInput{}
	if capped := CapGroupLimit(params.Limit); capped > 0 {
		input.Limit = aws.Int32(capped)
	}

	resp, err := api.DescribeLogGroups(ctx, input)
	if err != nil {
		c.log.Error().Err(err).Str("region", params.Region).Msg("describe log groups failed")
		return nil, &ListGroupsError{Region: params.Region, Err: err}
	}

	groups := make([]string, 0, len(resp.LogGroups))
	for _, lg := range resp.LogGroups {
		if name := strings.TrimSpace(aws.ToString(lg.LogGroupName)); name != "" {
			groups = append(groups, name)
		}
	}
	c.log.Debug().Str("region", params.Region).Int("groups", len(groups)).Msg("listed log groups")
	return groups, nil
}

// CapGroupLimit normalizes a DescribeLogGroups page size: non-positive values
// mean "unset", values above the service maximum are capped to it.
func CapGroupLimit(limit int32) int32 {
	if limit <= 0 {
		return 0
	}
	if limit > maxGroupPageSize {
		return maxGroupPageSize
	}
	return limit
}

// startTimeMillis computes the FilterLogEvents start time: now minus
// lookback in epoch milliseconds, clamped to zero on underflow.
func startTimeMillis(now time.Time, lookback time.Duration) int64 {
	ms := now.Add(-lookback).UnixMilli()
	if ms < 0 {
		return 0
	}
	return ms
}

func entryFromEvent(evt types.FilteredLogEvent) LogEntry {
	return LogEntry{
		TimestampMillis: aws.ToInt64(evt.Timestamp),
		Message:         aws.ToString(evt.Message),
		LogStreamName:   aws.ToString(evt.LogStreamName),
	}
}
