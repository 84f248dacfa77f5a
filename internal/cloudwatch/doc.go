// Package cloudwatch provides the AWS CloudWatch Logs client for lumberjack.
//
// # Overview
//
// This package wraps the two remote operations the application needs:
// fetching recent log events from a group (FilterLogEvents) and listing
// available log groups (DescribeLogGroups). Everything else about the AWS
// surface - credentials, shared config profiles, region resolution - is
// delegated to the SDK's default configuration chain.
//
// # Client Usage
//
//	client := cloudwatch.NewClient(logger)
//
//	entries, err := client.FetchRecentLogs(ctx, cloudwatch.FetchParams{
//		LogGroup: "/my/group",
//		Lookback: 5 * time.Minute,
//		Limit:    1000,
//	})
//
//	groups, err := client.ListLogGroups(ctx, cloudwatch.ListGroupsParams{
//		Region: "eu-west-1",
//		Limit:  50,
//	})
//
// # Profile and Region Handling
//
// The operator can change profile and region between requests, so both
// travel in the per-call parameter structs instead of being baked into the
// client. An empty value defers to the SDK's env/config chain. A fresh SDK
// client is constructed per call; no credentials or connections are cached
// here.
//
// # Limits
//
// FilterLogEvents forwards the caller's limit as-is (zero means service
// default). DescribeLogGroups accepts at most 50 groups per page, so
// CapGroupLimit clamps anything larger before dispatch and treats
// non-positive values as unset.
//
// # Error Handling
//
// Failures surface as typed errors carrying enough context for a status
// line: FetchError names the log group, ListGroupsError names the region.
// Both unwrap to the underlying SDK error for errors.Is/As inspection.
// Nothing is retried here - retry policy belongs to the caller.
package cloudwatch
