package cloudwatch

import (
	"fmt"
	"time"
)

// LogEntry is a single log event returned from CloudWatch Logs.
// An empty LogStreamName means the service did not report one.
type LogEntry struct {
	TimestampMillis int64
	Message         string
	LogStreamName   string
}

// FetchParams configures a FetchRecentLogs call. Empty Profile, Region, and
// FilterPattern mean "use the default credential/region chain" and "no
// server-side filter" respectively.
type FetchParams struct {
	Profile       string
	Region        string
	LogGroup      string
	FilterPattern string
	Lookback      time.Duration
	Limit         int32
}

// DefaultFetchParams returns the stock fetch configuration: the last five
// minutes, at most a thousand events.
func DefaultFetchParams() FetchParams {
	return FetchParams{
		Lookback: 5 * time.Minute,
		Limit:    1000,
	}
}

// ListGroupsParams configures a ListLogGroups call.
type ListGroupsParams struct {
	Profile string
	Region  string
	Limit   int32
}

// FetchError reports a failed FilterLogEvents call for a specific log group.
type FetchError struct {
	LogGroup string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("cloudwatch logs request failed for log group %q: %v", e.LogGroup, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ListGroupsError reports a failed DescribeLogGroups call. Region is empty
// when the default region chain was in effect.
type ListGroupsError struct {
	Region string
	Err    error
}

func (e *ListGroupsError) Error() string {
	region := e.Region
	if region == "" {
		region = "default"
	}
	return fmt.Sprintf("failed to list cloudwatch log groups in region %q: %v", region, e.Err)
}

func (e *ListGroupsError) Unwrap() error { return e.Err }
