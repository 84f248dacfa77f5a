// Command lumberjack-probe exercises the CloudWatch Logs calls from the
// command line. It is a credentials smoke test: with no -group it lists log
// groups, with a -group it fetches recent events and prints them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"lumberjack/internal/cloudwatch"
	"lumberjack/internal/view"
)

// maxFetchLimit is the largest event count FilterLogEvents accepts.
const maxFetchLimit = 10000

func main() {
	os.Exit(run())
}

// clampLimit keeps a user-supplied -limit inside what the service accepts:
// negative values mean "unset", oversized values are capped.
func clampLimit(v int) int32 {
	if v < 0 {
		return 0
	}
	if v > maxFetchLimit {
		return maxFetchLimit
	}
	return int32(v)
}

func run() int {
	profile := flag.String("profile", "", "AWS profile name (optional)")
	region := flag.String("region", "", "AWS region (optional)")
	group := flag.String("group", "", "log group to fetch; lists groups when empty")
	filter := flag.String("filter", "", "CloudWatch filter pattern (optional)")
	lookback := flag.Duration("lookback", 5*time.Minute, "how far back to fetch")
	limit := flag.Int("limit", 1000, "maximum events to fetch")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	client := cloudwatch.NewClient(log)

	if *group == "" {
		groups, err := client.ListLogGroups(ctx, cloudwatch.ListGroupsParams{
			Profile: *profile,
			Region:  *region,
			Limit:   50,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "lumberjack-probe: %v\n", err)
			return 1
		}
		for _, name := range groups {
			fmt.Println(name)
		}
		fmt.Fprintf(os.Stderr, "%d log groups\n", len(groups))
		return 0
	}

	entries, err := client.FetchRecentLogs(ctx, cloudwatch.FetchParams{
		Profile:       *profile,
		Region:        *region,
		LogGroup:      *group,
		FilterPattern: *filter,
		Lookback:      *lookback,
		Limit:         clampLimit(*limit),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "lumberjack-probe: %v\n", err)
		return 1
	}
	for _, entry := range entries {
		fmt.Printf("%s  (%s)  %s\n",
			view.FormatTimestampMillis(entry.TimestampMillis, false),
			entry.LogStreamName,
			entry.Message)
	}
	fmt.Fprintf(os.Stderr, "%d events from %s over the last %s\n", len(entries), *group, *lookback)
	return 0
}
